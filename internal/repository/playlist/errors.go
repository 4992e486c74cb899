package playlist

import "errors"

var (
	ErrNotFound      = errors.New("playlist does not exist")
	ErrAlreadyExists = errors.New("a playlist with the same name already exists")
)

package catalog

import "errors"

var (
	ErrVideoNotFound     = errors.New("video does not exist")
	ErrDuplicateID       = errors.New("duplicate video id")
	ErrMalformedRecord   = errors.New("malformed video record")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

package service

import (
	"fmt"

	"github.com/sharetube/videoconsole/internal/domain"
)

// VideoFlaggedError carries the flagged video so callers can report the reason.
// It matches domain.ErrVideoFlagged with errors.Is.
type VideoFlaggedError struct {
	Video *domain.Video
}

func (e *VideoFlaggedError) Error() string {
	return fmt.Sprintf("%s (reason: %s)", domain.ErrVideoFlagged, e.Video.FlagReason)
}

func (e *VideoFlaggedError) Unwrap() error {
	return domain.ErrVideoFlagged
}

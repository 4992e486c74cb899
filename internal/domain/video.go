package domain

import (
	"errors"
	"strings"
)

const DefaultFlagReason = "Not supplied"

var (
	ErrAlreadyFlagged = errors.New("video is already flagged")
	ErrNotFlagged     = errors.New("video is not flagged")
	ErrVideoFlagged   = errors.New("video is currently flagged")
)

type Video struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	Paused     bool     `json:"paused"`
	Flagged    bool     `json:"flagged"`
	FlagReason string   `json:"flag_reason,omitempty"`
}

func NewVideo(id, title string, tags []string) *Video {
	return &Video{
		ID:    id,
		Title: title,
		Tags:  append([]string(nil), tags...),
	}
}

// Flag marks the video as flagged. An empty reason is stored as DefaultFlagReason.
func (v *Video) Flag(reason string) error {
	if v.Flagged {
		return ErrAlreadyFlagged
	}

	if strings.TrimSpace(reason) == "" {
		reason = DefaultFlagReason
	}

	v.Flagged = true
	v.FlagReason = reason
	return nil
}

func (v *Video) Allow() error {
	if !v.Flagged {
		return ErrNotFlagged
	}

	v.Flagged = false
	v.FlagReason = ""
	return nil
}

// String returns "title (id) [tags]", with the flag reason appended for flagged videos.
func (v *Video) String() string {
	var b strings.Builder
	b.WriteString(v.Title)
	b.WriteString(" (")
	b.WriteString(v.ID)
	b.WriteString(") [")
	b.WriteString(strings.Join(v.Tags, " "))
	b.WriteString("]")
	if v.Flagged {
		b.WriteString(" - FLAGGED (reason: ")
		b.WriteString(v.FlagReason)
		b.WriteString(")")
	}

	return b.String()
}

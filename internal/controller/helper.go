package controller

import (
	"fmt"
	"io"
	"strings"
)

type playlistNameInput struct {
	PlaylistName string `json:"playlist_name" validate:"required,max=64"`
}

type videoIDInput struct {
	VideoID string `json:"video_id" validate:"required,max=128"`
}

type playlistVideoInput struct {
	PlaylistName string `json:"playlist_name" validate:"required,max=64"`
	VideoID      string `json:"video_id" validate:"required,max=128"`
}

type flagVideoInput struct {
	VideoID string `json:"video_id" validate:"required,max=128"`
	Reason  string `json:"reason" validate:"max=256"`
}

type searchInput struct {
	Term string `json:"search_term" validate:"required"`
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}

// validateInput reports validation failures as "<prefix>: <messages>".
func (c *controller) validateInput(w io.Writer, prefix string, input any) bool {
	validationErrors, ok := c.validate.Validate(input)
	if ok {
		return true
	}

	messages := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		messages = append(messages, ve.Message)
	}

	fmt.Fprintf(w, "%s: %s\n", prefix, strings.Join(messages, "; "))
	return false
}

func pluralVideos(n int) string {
	if n == 1 {
		return "1 video"
	}

	return fmt.Sprintf("%d videos", n)
}

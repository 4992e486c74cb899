package controller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
	"github.com/sharetube/videoconsole/internal/service"
)

func (c *controller) writePlayed(w io.Writer, resp service.PlayVideoResponse) {
	if resp.Stopped != nil {
		fmt.Fprintf(w, "Stopping video: %s\n", resp.Stopped.Title)
	}
	fmt.Fprintf(w, "Playing video: %s\n", resp.Played.Title)
}

// writePlayError prints the expected play failures and returns anything else.
func (c *controller) writePlayError(w io.Writer, err error) error {
	var flaggedErr *service.VideoFlaggedError
	switch {
	case errors.Is(err, catalog.ErrVideoNotFound):
		fmt.Fprintln(w, "Cannot play video: Video does not exist")
	case errors.As(err, &flaggedErr):
		fmt.Fprintf(w, "Cannot play video: Video is currently flagged (reason: %s)\n", flaggedErr.Video.FlagReason)
	default:
		return err
	}

	return nil
}

func (c *controller) handlePlay(ctx context.Context, w io.Writer, args []string) error {
	input := videoIDInput{VideoID: arg(args, 0)}
	if !c.validateInput(w, "Cannot play video", input) {
		return nil
	}

	resp, err := c.service.PlayVideo(ctx, input.VideoID)
	if err != nil {
		return c.writePlayError(w, err)
	}

	c.writePlayed(w, resp)
	return nil
}

func (c *controller) handlePlayRandom(ctx context.Context, w io.Writer, _ []string) error {
	resp, err := c.service.PlayRandomVideo(ctx)
	if errors.Is(err, domain.ErrNoVideosAvailable) {
		fmt.Fprintln(w, "No videos available")
		return nil
	}
	if err != nil {
		return err
	}

	c.writePlayed(w, resp)
	return nil
}

func (c *controller) handleStop(ctx context.Context, w io.Writer, _ []string) error {
	stopped, err := c.service.StopVideo(ctx)
	if errors.Is(err, domain.ErrNothingPlaying) {
		fmt.Fprintln(w, "Cannot stop video: No video is currently playing")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Stopping video: %s\n", stopped.Title)
	return nil
}

func (c *controller) handlePause(ctx context.Context, w io.Writer, _ []string) error {
	resp, err := c.service.PauseVideo(ctx)
	switch {
	case errors.Is(err, domain.ErrNothingPlaying):
		fmt.Fprintln(w, "Cannot pause video: No video is currently playing")
	case err != nil:
		return err
	case resp.AlreadyPaused:
		fmt.Fprintf(w, "Video already paused: %s\n", resp.Video.Title)
	default:
		fmt.Fprintf(w, "Pausing video: %s\n", resp.Video.Title)
	}

	return nil
}

func (c *controller) handleContinue(ctx context.Context, w io.Writer, _ []string) error {
	video, err := c.service.ContinueVideo(ctx)
	switch {
	case errors.Is(err, domain.ErrNothingPlaying):
		fmt.Fprintln(w, "Cannot continue video: No video is currently playing")
	case errors.Is(err, domain.ErrNotPaused):
		fmt.Fprintln(w, "Cannot continue video: Video is not paused")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Continuing video: %s\n", video.Title)
	}

	return nil
}

func (c *controller) handleShowPlaying(ctx context.Context, w io.Writer, _ []string) error {
	resp, err := c.service.ShowPlaying(ctx)
	if errors.Is(err, domain.ErrNothingPlaying) {
		fmt.Fprintln(w, "No video is currently playing")
		return nil
	}
	if err != nil {
		return err
	}

	if resp.Paused {
		fmt.Fprintf(w, "Currently playing: %s - PAUSED\n", resp.Video)
	} else {
		fmt.Fprintf(w, "Currently playing: %s\n", resp.Video)
	}

	return nil
}

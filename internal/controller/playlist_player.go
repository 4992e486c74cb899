package controller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/playlist"
	"github.com/sharetube/videoconsole/internal/service"
	"github.com/sharetube/videoconsole/pkg/cmdrouter"
)

func (c *controller) writeStep(w io.Writer, step domain.PlaylistStep) {
	if step.StoppedVideo != nil {
		fmt.Fprintf(w, "Stopping video: %s\n", step.StoppedVideo.Title)
	}
	fmt.Fprintf(w, "Playing video: %s\n", step.Played.Title)
}

func (c *controller) handlePlayPlaylist(ctx context.Context, w io.Writer, args []string) error {
	input := playlistNameInput{PlaylistName: arg(args, 0)}
	if !c.validateInput(w, "Cannot play playlist", input) {
		return nil
	}

	resp, err := c.service.PlayPlaylist(ctx, input.PlaylistName)
	return c.writePlaylistStarted(w, input.PlaylistName, resp, err)
}

func (c *controller) writePlaylistStarted(w io.Writer, name string, resp service.PlayPlaylistResponse, err error) error {
	var flaggedErr *service.VideoFlaggedError
	switch {
	case errors.Is(err, playlist.ErrNotFound):
		fmt.Fprintf(w, "Cannot play playlist '%s': Playlist does not exist\n", name)
	case errors.Is(err, domain.ErrEmptyPlaylist):
		fmt.Fprintf(w, "Cannot play playlist '%s': Playlist is empty\n", name)
	case errors.As(err, &flaggedErr):
		fmt.Fprintf(w, "Cannot play playlist '%s': Video is currently flagged (reason: %s)\n", name, flaggedErr.Video.FlagReason)
	case err != nil:
		return err
	default:
		if resp.Step.StoppedPlaylist != nil {
			fmt.Fprintf(w, "Stopping playlist: %s\n", resp.Step.StoppedPlaylist.Name)
		}
		fmt.Fprintf(w, "Playing playlist: %s\n", resp.Playlist.Name)
		c.writeStep(w, resp.Step)
	}

	return nil
}

func (c *controller) handleNext(ctx context.Context, w io.Writer, _ []string) error {
	step, err := c.service.NextPlaylistVideo(ctx)

	var flaggedErr *service.VideoFlaggedError
	switch {
	case errors.Is(err, domain.ErrNothingPlaying):
		fmt.Fprintln(w, "Cannot play next video: No playlist is currently playing")
	case errors.As(err, &flaggedErr):
		fmt.Fprintf(w, "Skipping video: %s is currently flagged (reason: %s)\n", flaggedErr.Video.Title, flaggedErr.Video.FlagReason)
	case errors.Is(err, domain.ErrEndOfPlaylist):
		fmt.Fprintln(w, "You are at the end of the playlist")
		fmt.Fprintln(w, "Would you like to replay the playlist? If yes, type 'y' otherwise we will assume you don't want to.")
		cmdrouter.Ask(ctx, c.replayFollowUp)
	case err != nil:
		return err
	default:
		c.writeStep(w, step)
	}

	return nil
}

func (c *controller) replayFollowUp(ctx context.Context, w io.Writer, answer string) error {
	if !isYes(answer) {
		return c.handleStopPlaylist(ctx, w, nil)
	}

	resp, err := c.service.RestartPlaylist(ctx)
	name := ""
	if resp.Playlist != nil {
		name = resp.Playlist.Name
	}

	return c.writePlaylistStarted(w, name, resp, err)
}

func (c *controller) handleStopPlaylist(ctx context.Context, w io.Writer, _ []string) error {
	stopped := c.service.StopPlaylist(ctx)
	if stopped == nil {
		fmt.Fprintln(w, "Cannot stop playlist: No playlist is currently playing")
		return nil
	}

	fmt.Fprintf(w, "Stopping playlist: %s\n", stopped.Name)
	return nil
}

func (c *controller) handleShowPlaylistPlaying(ctx context.Context, w io.Writer, _ []string) error {
	fmt.Fprintln(w, c.service.PlaylistStatus(ctx))
	return nil
}

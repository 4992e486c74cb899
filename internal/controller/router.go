package controller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sharetube/videoconsole/pkg/cmdrouter"
)

func (c *controller) getRouter() *cmdrouter.CmdRouter {
	mux := cmdrouter.New()

	mux.Use(c.requestIdMw)
	mux.Use(c.requestLoggingMw)

	mux.NotFound(c.handleUnknown)
	mux.OnError(c.handleError)

	// video
	mux.Handle("NUMBER_OF_VIDEOS", c.handleNumberOfVideos)
	mux.Handle("SHOW_ALL_VIDEOS", c.handleShowAllVideos)
	mux.Handle("SEARCH_VIDEOS", c.handleSearchVideos)
	mux.Handle("SEARCH_VIDEOS_WITH_TAG", c.handleSearchVideosWithTag)
	mux.Handle("FLAG_VIDEO", c.handleFlagVideo)
	mux.Handle("ALLOW_VIDEO", c.handleAllowVideo)

	// player
	mux.Handle("PLAY", c.handlePlay)
	mux.Handle("STOP", c.handleStop)
	mux.Handle("PLAY_RANDOM", c.handlePlayRandom)
	mux.Handle("PAUSE", c.handlePause)
	mux.Handle("CONTINUE", c.handleContinue)
	mux.Handle("SHOW_PLAYING", c.handleShowPlaying)

	// playlist
	mux.Handle("CREATE_PLAYLIST", c.handleCreatePlaylist)
	mux.Handle("ADD_TO_PLAYLIST", c.handleAddToPlaylist)
	mux.Handle("SHOW_ALL_PLAYLISTS", c.handleShowAllPlaylists)
	mux.Handle("SHOW_PLAYLIST", c.handleShowPlaylist)
	mux.Handle("REMOVE_FROM_PLAYLIST", c.handleRemoveFromPlaylist)
	mux.Handle("CLEAR_PLAYLIST", c.handleClearPlaylist)
	mux.Handle("DELETE_PLAYLIST", c.handleDeletePlaylist)

	// playlist playback
	mux.Handle("PLAY_PLAYLIST", c.handlePlayPlaylist)
	mux.Handle("NEXT", c.handleNext)
	mux.Handle("STOP_PLAYLIST", c.handleStopPlaylist)
	mux.Handle("SHOW_PLAYLIST_PLAYING", c.handleShowPlaylistPlaying)

	mux.Handle("HELP", c.handleHelp)
	mux.Handle("EXIT", c.handleExit)

	return mux
}

func (c *controller) handleUnknown(_ context.Context, w io.Writer, _ []string) error {
	fmt.Fprintln(w, "Please enter a valid command, type HELP for a list of available commands.")
	return nil
}

func (c *controller) handleError(ctx context.Context, w io.Writer, err error) {
	if errors.Is(err, cmdrouter.ErrLineTooLong) {
		c.logger.WarnContext(ctx, "input rejected", "error", err)
		fmt.Fprintf(w, "Input is too long, at most %d characters are accepted per line.\n", cmdrouter.MaxLineLength)
		return
	}

	c.logger.ErrorContext(ctx, "command failed", "error", err)
	fmt.Fprintf(w, "Unexpected error: %s\n", err)
}

func (c *controller) handleExit(_ context.Context, w io.Writer, _ []string) error {
	fmt.Fprintln(w, "Video console has now terminated its execution. Thank you and goodbye!")
	return cmdrouter.ErrExit
}

package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
	"github.com/sharetube/videoconsole/internal/repository/playlist"
	"github.com/sharetube/videoconsole/internal/service"
	"github.com/sharetube/videoconsole/pkg/cmdrouter"
)

func isYes(answer string) bool {
	return strings.EqualFold(answer, "y")
}

func (c *controller) handleCreatePlaylist(ctx context.Context, w io.Writer, args []string) error {
	input := playlistNameInput{PlaylistName: arg(args, 0)}
	if !c.validateInput(w, "Cannot create playlist", input) {
		return nil
	}

	p, err := c.service.CreatePlaylist(ctx, input.PlaylistName)
	if errors.Is(err, playlist.ErrAlreadyExists) {
		fmt.Fprintln(w, "Cannot create playlist: A playlist with the same name already exists")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Successfully created new playlist: %s\n", p.Name)
	return nil
}

func (c *controller) handleAddToPlaylist(ctx context.Context, w io.Writer, args []string) error {
	input := playlistVideoInput{PlaylistName: arg(args, 0), VideoID: arg(args, 1)}
	if !c.validateInput(w, "Cannot add video to playlist", input) {
		return nil
	}

	return c.addToPlaylist(ctx, w, input, true)
}

// addToPlaylist offers to create a missing playlist when offerCreate is set.
// Creating and adding are then two separate service calls.
func (c *controller) addToPlaylist(ctx context.Context, w io.Writer, input playlistVideoInput, offerCreate bool) error {
	name := input.PlaylistName
	resp, err := c.service.AddVideoToPlaylist(ctx, &service.AddVideoToPlaylistParams{
		PlaylistName: input.PlaylistName,
		VideoID:      input.VideoID,
	})

	var flaggedErr *service.VideoFlaggedError
	switch {
	case errors.Is(err, playlist.ErrNotFound):
		fmt.Fprintf(w, "Cannot add video to %s: Playlist does not exist\n", name)
		if !offerCreate {
			return nil
		}

		fmt.Fprintf(w, "Would you like to create the playlist '%s'? If yes, type 'y' otherwise we will assume you don't want to.\n", name)
		cmdrouter.Ask(ctx, func(ctx context.Context, w io.Writer, answer string) error {
			if !isYes(answer) {
				return nil
			}

			if err := c.handleCreatePlaylist(ctx, w, []string{name}); err != nil {
				return err
			}

			return c.addToPlaylist(ctx, w, input, false)
		})
	case errors.Is(err, catalog.ErrVideoNotFound):
		fmt.Fprintf(w, "Cannot add video to %s: Video does not exist\n", name)
	case errors.As(err, &flaggedErr):
		fmt.Fprintf(w, "Cannot add video to %s: Video is currently flagged (reason: %s)\n", name, flaggedErr.Video.FlagReason)
	case errors.Is(err, domain.ErrDuplicateVideo):
		fmt.Fprintf(w, "Cannot add video to %s: Video already added\n", name)
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Added video to %s: %s\n", name, resp.Video.Title)
	}

	return nil
}

func (c *controller) handleShowAllPlaylists(ctx context.Context, w io.Writer, _ []string) error {
	playlists := c.service.ListPlaylists(ctx)
	if len(playlists) == 0 {
		fmt.Fprintln(w, "No playlists exist yet")
		return nil
	}

	fmt.Fprintln(w, "Showing all playlists:")
	for _, p := range playlists {
		fmt.Fprintf(w, "%s (%s)\n", p.Name, pluralVideos(p.Length()))
	}

	return nil
}

func (c *controller) handleShowPlaylist(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return c.handleShowPlaylistPlaying(ctx, w, args)
	}

	input := playlistNameInput{PlaylistName: arg(args, 0)}
	if !c.validateInput(w, "Cannot show playlist", input) {
		return nil
	}

	p, err := c.service.ShowPlaylist(ctx, input.PlaylistName)
	if errors.Is(err, playlist.ErrNotFound) {
		fmt.Fprintf(w, "Cannot show playlist %s: Playlist does not exist\n", input.PlaylistName)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Showing playlist: %s\n", input.PlaylistName)
	if p.Length() == 0 {
		fmt.Fprintln(w, "No videos here yet")
		return nil
	}

	for _, video := range p.AsList() {
		fmt.Fprintln(w, video)
	}

	return nil
}

func (c *controller) handleRemoveFromPlaylist(ctx context.Context, w io.Writer, args []string) error {
	input := playlistVideoInput{PlaylistName: arg(args, 0), VideoID: arg(args, 1)}
	if !c.validateInput(w, "Cannot remove video from playlist", input) {
		return nil
	}

	name := input.PlaylistName
	video, err := c.service.RemoveFromPlaylist(ctx, &service.RemoveFromPlaylistParams{
		PlaylistName: input.PlaylistName,
		VideoID:      input.VideoID,
	})
	switch {
	case errors.Is(err, playlist.ErrNotFound):
		fmt.Fprintf(w, "Cannot remove video from %s: Playlist does not exist\n", name)
	case errors.Is(err, catalog.ErrVideoNotFound):
		fmt.Fprintf(w, "Cannot remove video from %s: Video does not exist\n", name)
	case errors.Is(err, domain.ErrVideoNotInPlaylist):
		fmt.Fprintf(w, "Cannot remove video from %s: Video is not in playlist\n", name)
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Removed video from %s: %s\n", name, video.Title)
	}

	return nil
}

func (c *controller) handleClearPlaylist(ctx context.Context, w io.Writer, args []string) error {
	input := playlistNameInput{PlaylistName: arg(args, 0)}
	if !c.validateInput(w, "Cannot clear playlist", input) {
		return nil
	}

	_, err := c.service.ClearPlaylist(ctx, input.PlaylistName)
	if errors.Is(err, playlist.ErrNotFound) {
		fmt.Fprintf(w, "Cannot clear playlist %s: Playlist does not exist\n", input.PlaylistName)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Successfully removed all videos from %s\n", input.PlaylistName)
	return nil
}

func (c *controller) handleDeletePlaylist(ctx context.Context, w io.Writer, args []string) error {
	input := playlistNameInput{PlaylistName: arg(args, 0)}
	if !c.validateInput(w, "Cannot delete playlist", input) {
		return nil
	}

	resp, err := c.service.DeletePlaylist(ctx, input.PlaylistName)
	if errors.Is(err, playlist.ErrNotFound) {
		fmt.Fprintf(w, "Cannot delete playlist %s: Playlist does not exist\n", input.PlaylistName)
		return nil
	}
	if err != nil {
		return err
	}

	if resp.PlaybackStopped {
		fmt.Fprintf(w, "Stopping playlist: %s\n", resp.Playlist.Name)
	}
	fmt.Fprintf(w, "Deleted playlist: %s\n", input.PlaylistName)
	return nil
}

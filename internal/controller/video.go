package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
	"github.com/sharetube/videoconsole/internal/service"
	"github.com/sharetube/videoconsole/pkg/cmdrouter"
)

func (c *controller) handleNumberOfVideos(ctx context.Context, w io.Writer, _ []string) error {
	fmt.Fprintf(w, "%d videos in the library\n", c.service.NumberOfVideos(ctx))
	return nil
}

func (c *controller) handleShowAllVideos(ctx context.Context, w io.Writer, _ []string) error {
	fmt.Fprintln(w, "Here's a list of all available videos:")
	for _, video := range c.service.ListVideos(ctx) {
		fmt.Fprintln(w, video)
	}

	return nil
}

func (c *controller) handleSearchVideos(ctx context.Context, w io.Writer, args []string) error {
	return c.search(ctx, w, strings.Join(args, " "), false)
}

func (c *controller) handleSearchVideosWithTag(ctx context.Context, w io.Writer, args []string) error {
	return c.search(ctx, w, arg(args, 0), true)
}

func (c *controller) search(ctx context.Context, w io.Writer, term string, byTag bool) error {
	if !c.validateInput(w, "Cannot search videos", searchInput{Term: term}) {
		return nil
	}

	results := c.service.SearchVideos(ctx, &service.SearchVideosParams{
		Term:  term,
		ByTag: byTag,
	})
	if len(results) == 0 {
		fmt.Fprintf(w, "No search results for %s\n", term)
		return nil
	}

	fmt.Fprintf(w, "Here are the results for %s:\n", term)
	for i, video := range results {
		fmt.Fprintf(w, "%d) %s\n", i+1, video)
	}
	fmt.Fprintln(w, "Would you like to play any of the above? If yes, specify the number of the video.")
	fmt.Fprintln(w, "If your answer is not a valid number, we will assume it's a no.")

	cmdrouter.Ask(ctx, func(ctx context.Context, w io.Writer, answer string) error {
		resp, err := c.service.PlaySearchResult(ctx, &service.PlaySearchResultParams{
			Results: results,
			Choice:  answer,
		})
		if err != nil {
			return c.writePlayError(w, err)
		}

		if resp.Played != nil {
			c.writePlayed(w, resp)
		}

		return nil
	})

	return nil
}

func (c *controller) handleFlagVideo(ctx context.Context, w io.Writer, args []string) error {
	input := flagVideoInput{
		VideoID: arg(args, 0),
		Reason:  strings.Join(args[min(1, len(args)):], " "),
	}
	if !c.validateInput(w, "Cannot flag video", input) {
		return nil
	}

	resp, err := c.service.FlagVideo(ctx, &service.FlagVideoParams{
		VideoID: input.VideoID,
		Reason:  input.Reason,
	})
	switch {
	case errors.Is(err, catalog.ErrVideoNotFound):
		fmt.Fprintln(w, "Cannot flag video: Video does not exist")
	case errors.Is(err, domain.ErrAlreadyFlagged):
		fmt.Fprintln(w, "Cannot flag video: Video is already flagged")
	case err != nil:
		return err
	default:
		if resp.Stopped {
			fmt.Fprintf(w, "Stopping video: %s\n", resp.Video.Title)
		}
		fmt.Fprintf(w, "Successfully flagged video: %s (reason: %s)\n", resp.Video.Title, resp.Video.FlagReason)
	}

	return nil
}

func (c *controller) handleAllowVideo(ctx context.Context, w io.Writer, args []string) error {
	input := videoIDInput{VideoID: arg(args, 0)}
	if !c.validateInput(w, "Cannot remove flag from video", input) {
		return nil
	}

	video, err := c.service.AllowVideo(ctx, input.VideoID)
	switch {
	case errors.Is(err, catalog.ErrVideoNotFound):
		fmt.Fprintln(w, "Cannot remove flag from video: Video does not exist")
	case errors.Is(err, domain.ErrNotFlagged):
		fmt.Fprintln(w, "Cannot remove flag from video: Video is not flagged")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Successfully removed flag from video: %s\n", video.Title)
	}

	return nil
}

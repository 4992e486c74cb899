package controller

import (
	"context"
	"fmt"
	"io"
)

var commandUsage = map[string]string{
	"NUMBER_OF_VIDEOS":       "NUMBER_OF_VIDEOS - Shows how many videos are in the library.",
	"SHOW_ALL_VIDEOS":        "SHOW_ALL_VIDEOS - Lists all videos from the library.",
	"PLAY":                   "PLAY <video_id> - Plays specified video.",
	"PLAY_RANDOM":            "PLAY_RANDOM - Plays a random video from the library.",
	"STOP":                   "STOP - Stop the current video.",
	"PAUSE":                  "PAUSE - Pause the current video.",
	"CONTINUE":               "CONTINUE - Resume the current paused video.",
	"SHOW_PLAYING":           "SHOW_PLAYING - Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused).",
	"CREATE_PLAYLIST":        "CREATE_PLAYLIST <playlist_name> - Creates a new (empty) playlist with the provided name.",
	"ADD_TO_PLAYLIST":        "ADD_TO_PLAYLIST <playlist_name> <video_id> - Adds the requested video to the playlist.",
	"REMOVE_FROM_PLAYLIST":   "REMOVE_FROM_PLAYLIST <playlist_name> <video_id> - Removes the specified video from the specified playlist.",
	"CLEAR_PLAYLIST":         "CLEAR_PLAYLIST <playlist_name> - Removes all videos from the playlist.",
	"DELETE_PLAYLIST":        "DELETE_PLAYLIST <playlist_name> - Deletes the playlist.",
	"SHOW_PLAYLIST":          "SHOW_PLAYLIST <playlist_name> - List all videos in this playlist.",
	"SHOW_ALL_PLAYLISTS":     "SHOW_ALL_PLAYLISTS - Display all the available playlists.",
	"PLAY_PLAYLIST":          "PLAY_PLAYLIST <playlist_name> - Plays the playlist from its first video.",
	"NEXT":                   "NEXT - Plays the next video of the playlist that is playing.",
	"STOP_PLAYLIST":          "STOP_PLAYLIST - Stops the playlist that is playing.",
	"SHOW_PLAYLIST_PLAYING":  "SHOW_PLAYLIST_PLAYING - Shows which playlist is playing.",
	"SEARCH_VIDEOS":          "SEARCH_VIDEOS <search_term> - Display all the videos whose titles contain the search_term.",
	"SEARCH_VIDEOS_WITH_TAG": "SEARCH_VIDEOS_WITH_TAG <tag_name> - Display all videos whose tags contains the provided tag.",
	"FLAG_VIDEO":             "FLAG_VIDEO <video_id> <flag_reason> - Mark a video as flagged.",
	"ALLOW_VIDEO":            "ALLOW_VIDEO <video_id> - Removes a flag from a video.",
	"HELP":                   "HELP - Displays help.",
	"EXIT":                   "EXIT - Terminates the program execution.",
}

// handleHelp lists every registered command in alphabetical order.
func (c *controller) handleHelp(_ context.Context, w io.Writer, _ []string) error {
	fmt.Fprintln(w, "Available commands:")
	for _, command := range c.router.Commands() {
		usage, ok := commandUsage[command]
		if !ok {
			usage = command
		}
		fmt.Fprintf(w, "    %s\n", usage)
	}

	return nil
}

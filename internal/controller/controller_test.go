package controller

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
	catalogInmemory "github.com/sharetube/videoconsole/internal/repository/catalog/inmemory"
	playlistInmemory "github.com/sharetube/videoconsole/internal/repository/playlist/inmemory"
	"github.com/sharetube/videoconsole/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) *controller {
	t.Helper()
	records, err := catalog.Default()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalogRepo, err := catalogInmemory.NewRepo(records, logger)
	require.NoError(t, err)

	player := domain.NewPlayerWithRand(func(int) int { return 0 })
	s := service.New(catalogRepo, playlistInmemory.NewRepo(logger), player, logger)
	return NewController(s, logger)
}

// run feeds the commands to the console and returns everything it printed.
func run(t *testing.T, c *controller, commands ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(commands, "\n") + "\n")
	require.NoError(t, c.Serve(context.Background(), in, &out, ""))

	return out.String()
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestNumberAndShowAllVideos(t *testing.T) {
	c := newTestController(t)

	out := run(t, c, "NUMBER_OF_VIDEOS", "SHOW_ALL_VIDEOS")
	assert.Equal(t, lines(
		"5 videos in the library",
		"Here's a list of all available videos:",
		"Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		"Another Cat Video (another_cat_video_id) [#cat #animal]",
		"Funny Dogs (funny_dogs_video_id) [#dog #animal]",
		"Life at Google (life_at_google_video_id) [#google #career]",
		"Video about nothing (nothing_video_id) []",
	), out)
}

func TestPlayback(t *testing.T) {
	c := newTestController(t)

	out := run(t, c,
		"PLAY amazing_cats_video_id",
		"PLAY funny_dogs_video_id",
		"PAUSE",
		"PAUSE",
		"SHOW_PLAYING",
		"CONTINUE",
		"CONTINUE",
		"STOP",
		"STOP",
		"PLAY does_not_exist",
		"SHOW_PLAYING",
	)
	assert.Equal(t, lines(
		"Playing video: Amazing Cats",
		"Stopping video: Amazing Cats",
		"Playing video: Funny Dogs",
		"Pausing video: Funny Dogs",
		"Video already paused: Funny Dogs",
		"Currently playing: Funny Dogs (funny_dogs_video_id) [#dog #animal] - PAUSED",
		"Continuing video: Funny Dogs",
		"Cannot continue video: Video is not paused",
		"Stopping video: Funny Dogs",
		"Cannot stop video: No video is currently playing",
		"Cannot play video: Video does not exist",
		"No video is currently playing",
	), out)
}

func TestFlagStopsPlayingVideo(t *testing.T) {
	c := newTestController(t)

	out := run(t, c,
		"PLAY funny_dogs_video_id",
		"FLAG_VIDEO funny_dogs_video_id dont_like_dogs",
		"SHOW_PLAYING",
		"PLAY funny_dogs_video_id",
		"FLAG_VIDEO funny_dogs_video_id",
		"ALLOW_VIDEO funny_dogs_video_id",
		"ALLOW_VIDEO funny_dogs_video_id",
		"FLAG_VIDEO another_cat_video_id",
		"FLAG_VIDEO missing",
	)
	assert.Equal(t, lines(
		"Playing video: Funny Dogs",
		"Stopping video: Funny Dogs",
		"Successfully flagged video: Funny Dogs (reason: dont_like_dogs)",
		"No video is currently playing",
		"Cannot play video: Video is currently flagged (reason: dont_like_dogs)",
		"Cannot flag video: Video is already flagged",
		"Successfully removed flag from video: Funny Dogs",
		"Cannot remove flag from video: Video is not flagged",
		"Successfully flagged video: Another Cat Video (reason: Not supplied)",
		"Cannot flag video: Video does not exist",
	), out)
}

func TestPlaylists(t *testing.T) {
	c := newTestController(t)

	out := run(t, c,
		"SHOW_ALL_PLAYLISTS",
		"CREATE_PLAYLIST my_PLAYlist",
		"CREATE_PLAYLIST my_playlist",
		"ADD_TO_PLAYLIST my_playlist amazing_cats_video_id",
		"ADD_TO_PLAYLIST my_playlist amazing_cats_video_id",
		"ADD_TO_PLAYLIST my_playlist missing",
		"CREATE_PLAYLIST another",
		"SHOW_ALL_PLAYLISTS",
		"SHOW_PLAYLIST my_playlist",
		"REMOVE_FROM_PLAYLIST my_playlist amazing_cats_video_id",
		"REMOVE_FROM_PLAYLIST my_playlist amazing_cats_video_id",
		"REMOVE_FROM_PLAYLIST my_playlist missing",
		"SHOW_PLAYLIST my_playlist",
		"CLEAR_PLAYLIST nope",
		"DELETE_PLAYLIST my_playlist",
		"DELETE_PLAYLIST my_playlist",
	)
	assert.Equal(t, lines(
		"No playlists exist yet",
		"Successfully created new playlist: my_PLAYlist",
		"Cannot create playlist: A playlist with the same name already exists",
		"Added video to my_playlist: Amazing Cats",
		"Cannot add video to my_playlist: Video already added",
		"Cannot add video to my_playlist: Video does not exist",
		"Successfully created new playlist: another",
		"Showing all playlists:",
		"another (0 videos)",
		"my_PLAYlist (1 video)",
		"Showing playlist: my_playlist",
		"Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		"Removed video from my_playlist: Amazing Cats",
		"Cannot remove video from my_playlist: Video is not in playlist",
		"Cannot remove video from my_playlist: Video does not exist",
		"Showing playlist: my_playlist",
		"No videos here yet",
		"Cannot clear playlist nope: Playlist does not exist",
		"Deleted playlist: my_playlist",
		"Cannot delete playlist my_playlist: Playlist does not exist",
	), out)
}

func TestAddToMissingPlaylistOffersCreate(t *testing.T) {
	c := newTestController(t)

	out := run(t, c,
		"ADD_TO_PLAYLIST fun funny_dogs_video_id",
		"y",
		"ADD_TO_PLAYLIST other funny_dogs_video_id",
		"n",
		"SHOW_ALL_PLAYLISTS",
	)
	assert.Equal(t, lines(
		"Cannot add video to fun: Playlist does not exist",
		"Would you like to create the playlist 'fun'? If yes, type 'y' otherwise we will assume you don't want to.",
		"Successfully created new playlist: fun",
		"Added video to fun: Funny Dogs",
		"Cannot add video to other: Playlist does not exist",
		"Would you like to create the playlist 'other'? If yes, type 'y' otherwise we will assume you don't want to.",
		"Showing all playlists:",
		"fun (1 video)",
	), out)
}

func TestSearchAndPick(t *testing.T) {
	c := newTestController(t)

	out := run(t, c,
		"SEARCH_VIDEOS cat",
		"2",
		"SEARCH_VIDEOS_WITH_TAG #CAT",
		"not a number",
		"SEARCH_VIDEOS blah",
	)
	assert.Equal(t, lines(
		"Here are the results for cat:",
		"1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		"2) Another Cat Video (another_cat_video_id) [#cat #animal]",
		"Would you like to play any of the above? If yes, specify the number of the video.",
		"If your answer is not a valid number, we will assume it's a no.",
		"Playing video: Another Cat Video",
		"Here are the results for #CAT:",
		"1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		"2) Another Cat Video (another_cat_video_id) [#cat #animal]",
		"Would you like to play any of the above? If yes, specify the number of the video.",
		"If your answer is not a valid number, we will assume it's a no.",
		"No search results for blah",
	), out)
}

func TestPlaylistPlayback(t *testing.T) {
	c := newTestController(t)

	out := run(t, c,
		"SHOW_PLAYLIST_PLAYING",
		"NEXT",
		"CREATE_PLAYLIST fun",
		"PLAY_PLAYLIST fun",
		"ADD_TO_PLAYLIST fun funny_dogs_video_id",
		"ADD_TO_PLAYLIST fun amazing_cats_video_id",
		"PLAY_PLAYLIST FUN",
		"SHOW_PLAYLIST",
		"NEXT",
		"NEXT",
		"y",
		"NEXT",
		"NEXT",
		"n",
		"SHOW_PLAYLIST_PLAYING",
		"PLAY_PLAYLIST missing",
	)
	assert.Equal(t, lines(
		"No playlist is currently playing",
		"Cannot play next video: No playlist is currently playing",
		"Successfully created new playlist: fun",
		"Cannot play playlist 'fun': Playlist is empty",
		"Added video to fun: Funny Dogs",
		"Added video to fun: Amazing Cats",
		"Playing playlist: fun",
		"Playing video: Funny Dogs",
		"Currently playing from: fun",
		"Stopping video: Funny Dogs",
		"Playing video: Amazing Cats",
		"You are at the end of the playlist",
		"Would you like to replay the playlist? If yes, type 'y' otherwise we will assume you don't want to.",
		"Playing playlist: fun",
		"Stopping video: Amazing Cats",
		"Playing video: Funny Dogs",
		"Stopping video: Funny Dogs",
		"Playing video: Amazing Cats",
		"You are at the end of the playlist",
		"Would you like to replay the playlist? If yes, type 'y' otherwise we will assume you don't want to.",
		"Stopping playlist: fun",
		"No playlist is currently playing",
		"Cannot play playlist 'missing': Playlist does not exist",
	), out)
}

func TestValidationAndUnknownCommands(t *testing.T) {
	c := newTestController(t)

	out := run(t, c, "PLAY", "CREATE_PLAYLIST", "unknown_command", "EXIT", "PLAY amazing_cats_video_id")
	assert.Equal(t, lines(
		"Cannot play video: video_id is required",
		"Cannot create playlist: playlist_name is required",
		"Please enter a valid command, type HELP for a list of available commands.",
		"Video console has now terminated its execution. Thank you and goodbye!",
	), out)
}

func TestPlayRandom(t *testing.T) {
	c := newTestController(t)

	out := run(t, c, "PLAY_RANDOM")
	assert.Equal(t, lines("Playing video: Funny Dogs"), out)

	for _, id := range []string{"funny_dogs_video_id", "amazing_cats_video_id", "another_cat_video_id", "life_at_google_video_id", "nothing_video_id"} {
		require.NoError(t, c.Dispatch(context.Background(), io.Discard, "FLAG_VIDEO "+id))
	}

	out = run(t, c, "PLAY_RANDOM")
	assert.Equal(t, lines("No videos available"), out)
}

func TestHelpListsRegisteredCommands(t *testing.T) {
	c := newTestController(t)

	out := run(t, c, "HELP")
	helpLines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Equal(t, "Available commands:", helpLines[0])

	commands := c.router.Commands()
	require.Len(t, helpLines, len(commands)+1)
	for i, command := range commands {
		assert.Equal(t, "    "+commandUsage[command], helpLines[i+1])
	}
	assert.Len(t, commandUsage, len(commands), "every command needs a usage line")
	assert.Contains(t, out, "    PLAY <video_id> - Plays specified video.\n")
}

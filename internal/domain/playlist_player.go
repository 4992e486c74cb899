package domain

import "errors"

var (
	ErrEmptyPlaylist = errors.New("playlist is empty")
	ErrEndOfPlaylist = errors.New("end of playlist")
)

// PlaylistPlayer walks a playlist in order and hands each video to the Player.
// cursor is the index of the next video to play.
type PlaylistPlayer struct {
	player   *Player
	playlist *Playlist
	cursor   int
}

func NewPlaylistPlayer(player *Player) *PlaylistPlayer {
	return &PlaylistPlayer{player: player}
}

// PlaylistStep describes one transition. Skipped is set instead of Played
// when the video under the cursor could not be played.
type PlaylistStep struct {
	Played          *Video
	Skipped         *Video
	StoppedVideo    *Video
	StoppedPlaylist *Playlist
}

func (pp *PlaylistPlayer) Current() *Playlist {
	return pp.playlist
}

// Cursor never exceeds the playlist length, even if videos were removed
// while the playlist was playing.
func (pp *PlaylistPlayer) Cursor() int {
	if pp.playlist == nil {
		return 0
	}

	return min(pp.cursor, pp.playlist.Length())
}

// Start begins playlist from its first video, replacing any playlist in progress.
// An empty playlist fails before anything changes.
func (pp *PlaylistPlayer) Start(playlist *Playlist) (PlaylistStep, error) {
	if playlist.Length() == 0 {
		return PlaylistStep{}, ErrEmptyPlaylist
	}

	first := playlist.At(0)
	stoppedVideo, err := pp.player.Play(first)
	if err != nil {
		return PlaylistStep{Skipped: first}, err
	}

	stoppedPlaylist := pp.playlist
	pp.playlist = playlist
	pp.cursor = 1
	return PlaylistStep{
		Played:          first,
		StoppedVideo:    stoppedVideo,
		StoppedPlaylist: stoppedPlaylist,
	}, nil
}

func (pp *PlaylistPlayer) Restart() (PlaylistStep, error) {
	if pp.playlist == nil {
		return PlaylistStep{}, ErrNothingPlaying
	}

	playlist := pp.playlist
	pp.playlist = nil
	step, err := pp.Start(playlist)
	if err != nil {
		pp.playlist = playlist
		return step, err
	}

	return step, nil
}

// Advance plays the video under the cursor. At the end it returns
// ErrEndOfPlaylist and leaves the caller to Restart or Stop. A flagged video is
// skipped: the cursor moves past it and ErrVideoFlagged is returned.
func (pp *PlaylistPlayer) Advance() (PlaylistStep, error) {
	if pp.playlist == nil {
		return PlaylistStep{}, ErrNothingPlaying
	}

	pp.cursor = pp.Cursor()
	if pp.cursor == pp.playlist.Length() {
		return PlaylistStep{}, ErrEndOfPlaylist
	}

	next := pp.playlist.At(pp.cursor)
	pp.cursor++

	stopped, err := pp.player.Play(next)
	if err != nil {
		return PlaylistStep{Skipped: next}, err
	}

	return PlaylistStep{Played: next, StoppedVideo: stopped}, nil
}

// Stop forgets the playlist in progress. It is safe to call when idle.
func (pp *PlaylistPlayer) Stop() *Playlist {
	stopped := pp.playlist
	pp.playlist = nil
	pp.cursor = 0
	return stopped
}

func (pp *PlaylistPlayer) StatusLabel() string {
	if pp.playlist == nil {
		return "No playlist is currently playing"
	}

	return "Currently playing from: " + pp.playlist.Name
}

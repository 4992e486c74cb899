package service

import "github.com/sharetube/videoconsole/internal/domain"

type PlayVideoResponse struct {
	Played  *domain.Video
	Stopped *domain.Video
}

type PauseVideoResponse struct {
	Video         *domain.Video
	AlreadyPaused bool
}

type ShowPlayingResponse struct {
	Video  *domain.Video
	Paused bool
}

type AddVideoToPlaylistParams struct {
	PlaylistName string
	VideoID      string
}

type AddVideoToPlaylistResponse struct {
	Playlist *domain.Playlist
	Video    *domain.Video
}

type RemoveFromPlaylistParams struct {
	PlaylistName string
	VideoID      string
}

type DeletePlaylistResponse struct {
	Playlist *domain.Playlist
	// PlaybackStopped reports that the deleted playlist was being played.
	PlaybackStopped bool
}

type SearchVideosParams struct {
	Term  string
	ByTag bool
}

type PlaySearchResultParams struct {
	Results []*domain.Video
	Choice  string
}

type FlagVideoParams struct {
	VideoID string
	Reason  string
}

type FlagVideoResponse struct {
	Video   *domain.Video
	Stopped bool
}

type PlayPlaylistResponse struct {
	Playlist *domain.Playlist
	Step     domain.PlaylistStep
}

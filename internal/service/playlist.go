package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
)

func (s service) CreatePlaylist(ctx context.Context, name string) (*domain.Playlist, error) {
	p, err := s.playlistRepo.Create(name)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "playlist created", "name", p.Name)
	return p, nil
}

func (s service) ListPlaylists(ctx context.Context) []*domain.Playlist {
	return s.playlistRepo.ListAll()
}

func (s service) ShowPlaylist(ctx context.Context, name string) (*domain.Playlist, error) {
	return s.playlistRepo.Get(name)
}

func (s service) AddVideoToPlaylist(ctx context.Context, params *AddVideoToPlaylistParams) (AddVideoToPlaylistResponse, error) {
	p, err := s.playlistRepo.Get(params.PlaylistName)
	if err != nil {
		return AddVideoToPlaylistResponse{}, err
	}

	video, err := s.catalogRepo.Get(params.VideoID)
	if err != nil {
		return AddVideoToPlaylistResponse{}, fmt.Errorf("failed to get video: %w", err)
	}

	if _, err := s.playlistRepo.AddVideo(p.Name, video); err != nil {
		if errors.Is(err, domain.ErrVideoFlagged) {
			return AddVideoToPlaylistResponse{}, &VideoFlaggedError{Video: video}
		}

		return AddVideoToPlaylistResponse{}, err
	}

	s.logger.DebugContext(ctx, "video added to playlist", "name", p.Name, "video_id", video.ID)
	return AddVideoToPlaylistResponse{Playlist: p, Video: video}, nil
}

func (s service) RemoveFromPlaylist(ctx context.Context, params *RemoveFromPlaylistParams) (*domain.Video, error) {
	if _, err := s.playlistRepo.Get(params.PlaylistName); err != nil {
		return nil, err
	}

	if !s.catalogRepo.Exists(params.VideoID) {
		return nil, fmt.Errorf("failed to get video: %w", catalog.ErrVideoNotFound)
	}

	video, err := s.playlistRepo.RemoveVideo(params.PlaylistName, params.VideoID)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "video removed from playlist", "name", params.PlaylistName, "video_id", video.ID)
	return video, nil
}

func (s service) ClearPlaylist(ctx context.Context, name string) (*domain.Playlist, error) {
	return s.playlistRepo.Clear(name)
}

func (s service) DeletePlaylist(ctx context.Context, name string) (DeletePlaylistResponse, error) {
	p, err := s.playlistRepo.Delete(name)
	if err != nil {
		return DeletePlaylistResponse{}, err
	}

	stopped := false
	if s.playlistPlayer.Current() == p {
		s.playlistPlayer.Stop()
		stopped = true
	}

	s.logger.InfoContext(ctx, "playlist deleted", "name", p.Name, "playback_stopped", stopped)
	return DeletePlaylistResponse{Playlist: p, PlaybackStopped: stopped}, nil
}

func (s service) PlayPlaylist(ctx context.Context, name string) (PlayPlaylistResponse, error) {
	p, err := s.playlistRepo.Get(name)
	if err != nil {
		return PlayPlaylistResponse{}, err
	}

	step, err := s.playlistPlayer.Start(p)
	if err != nil {
		return PlayPlaylistResponse{Playlist: p, Step: step}, s.playlistStepError(step, err)
	}

	s.logger.DebugContext(ctx, "playlist playing", "name", p.Name)
	return PlayPlaylistResponse{Playlist: p, Step: step}, nil
}

// NextPlaylistVideo returns domain.ErrEndOfPlaylist once the playlist is
// exhausted. The caller then either restarts or stops it.
func (s service) NextPlaylistVideo(ctx context.Context) (domain.PlaylistStep, error) {
	step, err := s.playlistPlayer.Advance()
	if err != nil {
		return step, s.playlistStepError(step, err)
	}

	return step, nil
}

func (s service) RestartPlaylist(ctx context.Context) (PlayPlaylistResponse, error) {
	step, err := s.playlistPlayer.Restart()
	p := s.playlistPlayer.Current()
	if err != nil {
		return PlayPlaylistResponse{Playlist: p, Step: step}, s.playlistStepError(step, err)
	}

	return PlayPlaylistResponse{Playlist: p, Step: step}, nil
}

// StopPlaylist stops the playlist in progress, if any, and returns it.
func (s service) StopPlaylist(ctx context.Context) *domain.Playlist {
	return s.playlistPlayer.Stop()
}

func (s service) PlaylistStatus(ctx context.Context) string {
	return s.playlistPlayer.StatusLabel()
}

func (s service) playlistStepError(step domain.PlaylistStep, err error) error {
	if errors.Is(err, domain.ErrVideoFlagged) && step.Skipped != nil {
		return &VideoFlaggedError{Video: step.Skipped}
	}

	return err
}

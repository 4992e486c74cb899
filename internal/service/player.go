package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sharetube/videoconsole/internal/domain"
)

func (s service) play(ctx context.Context, video *domain.Video) (PlayVideoResponse, error) {
	stopped, err := s.player.Play(video)
	if err != nil {
		if errors.Is(err, domain.ErrVideoFlagged) {
			return PlayVideoResponse{}, &VideoFlaggedError{Video: video}
		}

		return PlayVideoResponse{}, err
	}

	s.logger.DebugContext(ctx, "video playing", "video_id", video.ID)
	return PlayVideoResponse{Played: video, Stopped: stopped}, nil
}

func (s service) PlayVideo(ctx context.Context, videoID string) (PlayVideoResponse, error) {
	video, err := s.catalogRepo.Get(videoID)
	if err != nil {
		return PlayVideoResponse{}, fmt.Errorf("failed to get video: %w", err)
	}

	return s.play(ctx, video)
}

func (s service) PlayRandomVideo(ctx context.Context) (PlayVideoResponse, error) {
	played, stopped, err := s.player.PlayRandom(s.catalogRepo.All())
	if err != nil {
		s.logger.InfoContext(ctx, "failed to play random video", "error", err)
		return PlayVideoResponse{}, err
	}

	s.logger.DebugContext(ctx, "random video playing", "video_id", played.ID)
	return PlayVideoResponse{Played: played, Stopped: stopped}, nil
}

// PlaySearchResult plays the 1-based choice out of results. A choice that is
// not a number or is out of range is ignored and returns an empty response.
func (s service) PlaySearchResult(ctx context.Context, params *PlaySearchResultParams) (PlayVideoResponse, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(params.Choice))
	if err != nil || choice < 1 || choice > len(params.Results) {
		s.logger.DebugContext(ctx, "search result not chosen", "choice", params.Choice)
		return PlayVideoResponse{}, nil
	}

	return s.play(ctx, params.Results[choice-1])
}

func (s service) StopVideo(ctx context.Context) (*domain.Video, error) {
	stopped, err := s.player.Stop()
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "video stopped", "video_id", stopped.ID)
	return stopped, nil
}

func (s service) PauseVideo(ctx context.Context) (PauseVideoResponse, error) {
	video, alreadyPaused, err := s.player.Pause()
	if err != nil {
		return PauseVideoResponse{}, err
	}

	return PauseVideoResponse{Video: video, AlreadyPaused: alreadyPaused}, nil
}

func (s service) ContinueVideo(ctx context.Context) (*domain.Video, error) {
	return s.player.Resume()
}

func (s service) ShowPlaying(ctx context.Context) (ShowPlayingResponse, error) {
	video, paused := s.player.Current()
	if video == nil {
		return ShowPlayingResponse{}, domain.ErrNothingPlaying
	}

	return ShowPlayingResponse{Video: video, Paused: paused}, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
)

func (s service) NumberOfVideos(ctx context.Context) int {
	return s.catalogRepo.Length()
}

// ListVideos returns the whole catalog ordered by title, flagged videos included.
func (s service) ListVideos(ctx context.Context) []*domain.Video {
	videos := s.catalogRepo.All()
	catalog.SortByTitle(videos)
	return videos
}

func (s service) SearchVideos(ctx context.Context, params *SearchVideosParams) []*domain.Video {
	s.logger.DebugContext(ctx, "search videos", "term", params.Term, "by_tag", params.ByTag)
	if params.ByTag {
		return s.catalogRepo.Search(catalog.HasTag(params.Term))
	}

	return s.catalogRepo.Search(catalog.TitleContains(params.Term))
}

func (s service) FlagVideo(ctx context.Context, params *FlagVideoParams) (FlagVideoResponse, error) {
	video, err := s.catalogRepo.Get(params.VideoID)
	if err != nil {
		return FlagVideoResponse{}, fmt.Errorf("failed to get video: %w", err)
	}

	if err := video.Flag(params.Reason); err != nil {
		s.logger.InfoContext(ctx, "failed to flag video", "video_id", video.ID, "error", err)
		return FlagVideoResponse{Video: video}, err
	}

	// a flagged video must never stay in the player
	stopped := false
	if s.player.IsCurrent(video.ID) {
		if _, err := s.player.Stop(); err != nil {
			return FlagVideoResponse{}, fmt.Errorf("failed to stop flagged video: %w", err)
		}

		stopped = true
	}

	s.logger.InfoContext(ctx, "video flagged", "video_id", video.ID, "reason", video.FlagReason, "stopped", stopped)
	return FlagVideoResponse{Video: video, Stopped: stopped}, nil
}

func (s service) AllowVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	video, err := s.catalogRepo.Get(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	if err := video.Allow(); err != nil {
		s.logger.InfoContext(ctx, "failed to allow video", "video_id", video.ID, "error", err)
		return video, err
	}

	s.logger.InfoContext(ctx, "video allowed", "video_id", video.ID)
	return video, nil
}

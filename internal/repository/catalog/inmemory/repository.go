package inmemory

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
)

type repo struct {
	videos []*domain.Video
	byID   map[string]*domain.Video
	logger *slog.Logger
}

func NewRepo(records []catalog.Record, logger *slog.Logger) (*repo, error) {
	r := &repo{
		videos: make([]*domain.Video, 0, len(records)),
		byID:   make(map[string]*domain.Video, len(records)),
		logger: logger,
	}

	for _, record := range records {
		if _, ok := r.byID[record.ID]; ok {
			return nil, fmt.Errorf("%w: %s", catalog.ErrDuplicateID, record.ID)
		}

		video := domain.NewVideo(record.ID, record.Title, record.Tags)
		r.videos = append(r.videos, video)
		r.byID[video.ID] = video
	}

	logger.Debug("catalog.inmemory.NewRepo", "videos", len(r.videos))
	return r, nil
}

func (r *repo) Get(videoID string) (*domain.Video, error) {
	funcName := "catalog.inmemory.Get"
	video, ok := r.byID[videoID]
	if !ok {
		r.logger.Debug(funcName, "videoID", videoID, "error", catalog.ErrVideoNotFound)
		return nil, catalog.ErrVideoNotFound
	}

	return video, nil
}

func (r *repo) Exists(videoID string) bool {
	_, ok := r.byID[videoID]
	return ok
}

func (r *repo) Length() int {
	return len(r.videos)
}

// All returns every video in load order.
func (r *repo) All() []*domain.Video {
	return slices.Clone(r.videos)
}

// Search returns the unflagged videos matching match, ordered by title.
// Videos with equal titles keep their load order.
func (r *repo) Search(match func(*domain.Video) bool) []*domain.Video {
	result := make([]*domain.Video, 0)
	for _, video := range r.videos {
		if !video.Flagged && match(video) {
			result = append(result, video)
		}
	}

	catalog.SortByTitle(result)
	r.logger.Debug("catalog.inmemory.Search", "results", len(result))
	return result
}

package inmemory

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/playlist"
	"golang.org/x/exp/maps"
)

type repo struct {
	playlists map[string]*domain.Playlist
	logger    *slog.Logger
}

func NewRepo(logger *slog.Logger) *repo {
	return &repo{
		playlists: make(map[string]*domain.Playlist),
		logger:    logger,
	}
}

func (r *repo) Create(name string) (*domain.Playlist, error) {
	funcName := "playlist.inmemory.Create"
	r.logger.Debug(funcName, "name", name)

	p := domain.NewPlaylist(name)
	if _, ok := r.playlists[p.Key]; ok {
		r.logger.Info(funcName, "error", playlist.ErrAlreadyExists)
		return nil, playlist.ErrAlreadyExists
	}

	r.playlists[p.Key] = p

	r.logger.Debug(funcName, "result", "OK")
	return p, nil
}

func (r *repo) Get(name string) (*domain.Playlist, error) {
	p, ok := r.playlists[domain.PlaylistKey(name)]
	if !ok {
		return nil, playlist.ErrNotFound
	}

	return p, nil
}

func (r *repo) Delete(name string) (*domain.Playlist, error) {
	funcName := "playlist.inmemory.Delete"
	r.logger.Debug(funcName, "name", name)

	key := domain.PlaylistKey(name)
	p, ok := r.playlists[key]
	if !ok {
		r.logger.Info(funcName, "error", playlist.ErrNotFound)
		return nil, playlist.ErrNotFound
	}

	delete(r.playlists, key)

	r.logger.Debug(funcName, "result", "OK")
	return p, nil
}

// ListAll returns every playlist ordered by display name, ignoring case.
func (r *repo) ListAll() []*domain.Playlist {
	list := maps.Values(r.playlists)
	slices.SortFunc(list, func(a, b *domain.Playlist) int {
		if c := strings.Compare(a.Key, b.Key); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return list
}

func (r *repo) AddVideo(name string, video *domain.Video) (*domain.Playlist, error) {
	funcName := "playlist.inmemory.AddVideo"
	r.logger.Debug(funcName, "name", name, "videoID", video.ID)

	p, err := r.Get(name)
	if err != nil {
		r.logger.Info(funcName, "error", err)
		return nil, err
	}

	if err := p.Add(video); err != nil {
		r.logger.Info(funcName, "error", err)
		return p, err
	}

	r.logger.Debug(funcName, "result", "OK")
	return p, nil
}

func (r *repo) RemoveVideo(name, videoID string) (*domain.Video, error) {
	funcName := "playlist.inmemory.RemoveVideo"
	r.logger.Debug(funcName, "name", name, "videoID", videoID)

	p, err := r.Get(name)
	if err != nil {
		r.logger.Info(funcName, "error", err)
		return nil, err
	}

	video, err := p.RemoveByID(videoID)
	if err != nil {
		r.logger.Info(funcName, "error", err)
		return nil, err
	}

	r.logger.Debug(funcName, "result", "OK")
	return video, nil
}

func (r *repo) Clear(name string) (*domain.Playlist, error) {
	funcName := "playlist.inmemory.Clear"
	r.logger.Debug(funcName, "name", name)

	p, err := r.Get(name)
	if err != nil {
		r.logger.Info(funcName, "error", err)
		return nil, err
	}

	p.Clear()

	r.logger.Debug(funcName, "result", "OK")
	return p, nil
}

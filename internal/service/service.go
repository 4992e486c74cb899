package service

import (
	"log/slog"

	"github.com/sharetube/videoconsole/internal/domain"
)

type iCatalogRepo interface {
	Get(videoID string) (*domain.Video, error)
	Exists(videoID string) bool
	Length() int
	All() []*domain.Video
	Search(match func(*domain.Video) bool) []*domain.Video
}

type iPlaylistRepo interface {
	Create(name string) (*domain.Playlist, error)
	Get(name string) (*domain.Playlist, error)
	Delete(name string) (*domain.Playlist, error)
	ListAll() []*domain.Playlist
	AddVideo(name string, video *domain.Video) (*domain.Playlist, error)
	RemoveVideo(name, videoID string) (*domain.Video, error)
	Clear(name string) (*domain.Playlist, error)
}

// service owns the playback state and borrows videos and playlists from the
// repositories. It is not safe for concurrent use.
type service struct {
	catalogRepo    iCatalogRepo
	playlistRepo   iPlaylistRepo
	player         *domain.Player
	playlistPlayer *domain.PlaylistPlayer
	logger         *slog.Logger
}

func New(catalogRepo iCatalogRepo, playlistRepo iPlaylistRepo, player *domain.Player, logger *slog.Logger) *service {
	return &service{
		catalogRepo:    catalogRepo,
		playlistRepo:   playlistRepo,
		player:         player,
		playlistPlayer: domain.NewPlaylistPlayer(player),
		logger:         logger,
	}
}

package controller

import (
	"context"
	"io"
	"log/slog"

	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/service"
	"github.com/sharetube/videoconsole/pkg/cmdrouter"
	"github.com/sharetube/videoconsole/pkg/validator"
)

type iService interface {
	// video
	NumberOfVideos(context.Context) int
	ListVideos(context.Context) []*domain.Video
	SearchVideos(context.Context, *service.SearchVideosParams) []*domain.Video
	FlagVideo(context.Context, *service.FlagVideoParams) (service.FlagVideoResponse, error)
	AllowVideo(ctx context.Context, videoID string) (*domain.Video, error)
	// player
	PlayVideo(ctx context.Context, videoID string) (service.PlayVideoResponse, error)
	PlayRandomVideo(context.Context) (service.PlayVideoResponse, error)
	PlaySearchResult(context.Context, *service.PlaySearchResultParams) (service.PlayVideoResponse, error)
	StopVideo(context.Context) (*domain.Video, error)
	PauseVideo(context.Context) (service.PauseVideoResponse, error)
	ContinueVideo(context.Context) (*domain.Video, error)
	ShowPlaying(context.Context) (service.ShowPlayingResponse, error)
	// playlist
	CreatePlaylist(ctx context.Context, name string) (*domain.Playlist, error)
	ListPlaylists(context.Context) []*domain.Playlist
	ShowPlaylist(ctx context.Context, name string) (*domain.Playlist, error)
	AddVideoToPlaylist(context.Context, *service.AddVideoToPlaylistParams) (service.AddVideoToPlaylistResponse, error)
	RemoveFromPlaylist(context.Context, *service.RemoveFromPlaylistParams) (*domain.Video, error)
	ClearPlaylist(ctx context.Context, name string) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, name string) (service.DeletePlaylistResponse, error)
	// playlist playback
	PlayPlaylist(ctx context.Context, name string) (service.PlayPlaylistResponse, error)
	NextPlaylistVideo(context.Context) (domain.PlaylistStep, error)
	RestartPlaylist(context.Context) (service.PlayPlaylistResponse, error)
	StopPlaylist(context.Context) *domain.Playlist
	PlaylistStatus(context.Context) string
}

type controller struct {
	service  iService
	validate *validator.Validator
	logger   *slog.Logger
	router   *cmdrouter.CmdRouter
}

func NewController(s iService, logger *slog.Logger) *controller {
	c := &controller{
		service:  s,
		validate: validator.NewValidator(),
		logger:   logger,
	}
	c.router = c.getRouter()

	return c
}

// Serve runs the console until EXIT, end of input or ctx is cancelled.
func (c *controller) Serve(ctx context.Context, in io.Reader, out io.Writer, prompt string) error {
	c.logger.InfoContext(ctx, "console started")
	defer c.logger.InfoContext(ctx, "console stopped")

	return c.router.Serve(ctx, in, out, prompt)
}

// Dispatch runs a single command line.
func (c *controller) Dispatch(ctx context.Context, out io.Writer, line string) error {
	return c.router.Dispatch(ctx, out, line)
}

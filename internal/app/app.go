package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sharetube/videoconsole/internal/controller"
	"github.com/sharetube/videoconsole/internal/domain"
	"github.com/sharetube/videoconsole/internal/repository/catalog"
	catalogInmemory "github.com/sharetube/videoconsole/internal/repository/catalog/inmemory"
	playlistInmemory "github.com/sharetube/videoconsole/internal/repository/playlist/inmemory"
	"github.com/sharetube/videoconsole/internal/service"
	"github.com/sharetube/videoconsole/pkg/ctxlogger"
	"github.com/sharetube/videoconsole/pkg/validator"
)

type AppConfig struct {
	CatalogPath string `json:"catalog_path"`
	LogLevel    string `json:"log_level" validate:"required,oneof=DEBUG INFO WARN ERROR"`
	LogPath     string `json:"log_path"`
	Prompt      string `json:"prompt" validate:"max=32"`
}

func (cfg *AppConfig) Validate() error {
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)
	if validationErrors, ok := validator.NewValidator().Validate(cfg); !ok {
		return fmt.Errorf("invalid config: %s", validationErrors[0].Message)
	}

	return nil
}

// newLogger writes to the configured log file or to stderr. The returned closer
// is nil when no file was opened.
func newLogger(cfg *AppConfig) (*slog.Logger, io.Closer, error) {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}),
	}

	return slog.New(h), closer, nil
}

func loadCatalog(path string) ([]catalog.Record, error) {
	if path == "" {
		return catalog.Default()
	}

	return catalog.Load(path)
}

// Run wires the console and serves commands from in until EXIT, end of input
// or ctx is cancelled.
func Run(ctx context.Context, cfg *AppConfig, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	records, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	catalogRepo, err := catalogInmemory.NewRepo(records, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	playlistRepo := playlistInmemory.NewRepo(logger)
	videoService := service.New(catalogRepo, playlistRepo, domain.NewPlayer(), logger)
	controller := controller.NewController(videoService, logger)

	logger.InfoContext(ctx, "starting console", "videos", catalogRepo.Length())
	fmt.Fprintln(out, "Hello and welcome to the video console, what would you like to do?")
	fmt.Fprintln(out, "Enter HELP for list of available commands or EXIT to terminate.")

	if err := controller.Serve(ctx, in, out, cfg.Prompt); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

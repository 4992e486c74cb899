package controller

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sharetube/videoconsole/pkg/cmdrouter"
	"github.com/sharetube/videoconsole/pkg/ctxlogger"
)

func (c *controller) requestIdMw(next cmdrouter.HandlerFunc) cmdrouter.HandlerFunc {
	return func(ctx context.Context, w io.Writer, args []string) error {
		ctx = ctxlogger.AppendCtx(ctx, slog.String("request_id", uuid.NewString()))
		return next(ctx, w, args)
	}
}

func (c *controller) requestLoggingMw(next cmdrouter.HandlerFunc) cmdrouter.HandlerFunc {
	return func(ctx context.Context, w io.Writer, args []string) error {
		start := time.Now()
		err := next(ctx, w, args)
		c.logger.DebugContext(ctx, "command",
			"command", cmdrouter.GetCommandFromCtx(ctx),
			"args", args,
			"duration", time.Since(start),
		)
		return err
	}
}

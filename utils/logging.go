package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

func NewLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(NewLocalDevHandler(os.Stdout, slog.LevelDebug))
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(StoreLoggerInContext(c.Request.Context(), logger))
		c.Next()
	}
}

// LocalDevHandler prints "<time> <LEVEL> <message>" followed by the record attributes in text form.
type LocalDevHandler struct {
	attrs slog.Handler
	level slog.Leveler

	mu *sync.Mutex
	w  io.Writer
}

func NewLocalDevHandler(w io.Writer, level slog.Leveler) *LocalDevHandler {
	attrs := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return &LocalDevHandler{attrs: attrs, level: level, mu: &sync.Mutex{}, w: w}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.attrs.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s %s ", r.Time.Format(time.RFC3339), colorizeLevel(r.Level), r.Message)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.attrs.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{attrs: h.attrs.WithAttrs(attrs), level: h.level, mu: h.mu, w: h.w}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{attrs: h.attrs.WithGroup(name), level: h.level, mu: h.mu, w: h.w}
}

func colorizeLevel(level slog.Level) string {
	color := 31 // red
	switch {
	case level < slog.LevelInfo:
		color = 35
	case level < slog.LevelWarn:
		color = 34
	case level < slog.LevelError:
		color = 33
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, level.String())
}

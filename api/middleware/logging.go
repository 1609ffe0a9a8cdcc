package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/police-department/evidence-manager/utils"
)

type loggingConfig struct {
	logger      *slog.Logger
	skippedPath map[string]struct{}

	successLevel     slog.Level
	clientErrorLevel slog.Level
	serverErrorLevel slog.Level
}

type LoggingOption func(*loggingConfig)

func WithIgnorePath(paths []string) LoggingOption {
	return func(conf *loggingConfig) {
		for _, path := range paths {
			conf.skippedPath[path] = struct{}{}
		}
	}
}

func (conf loggingConfig) levelOf(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return conf.serverErrorLevel
	case status >= http.StatusBadRequest:
		return conf.clientErrorLevel
	default:
		return conf.successLevel
	}
}

// NewLogging writes one line per request once the handlers are done.
// The path is the route pattern, so case and evidence ids do not end up in the logs.
func NewLogging(logger *slog.Logger, options ...LoggingOption) gin.HandlerFunc {
	conf := &loggingConfig{
		logger:           logger,
		skippedPath:      make(map[string]struct{}),
		successLevel:     slog.LevelInfo,
		clientErrorLevel: slog.LevelWarn,
		serverErrorLevel: slog.LevelError,
	}
	for _, option := range options {
		option(conf)
	}

	return func(c *gin.Context) {
		if _, skipped := conf.skippedPath[c.Request.URL.Path]; skipped {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", route),
			slog.Int("data_length", max(c.Writer.Size(), 0)),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		if creds, found := utils.CredentialsFromCtx(c.Request.Context()); found {
			attributes = append(attributes, slog.String("officer_id", creds.OfficerId.String()))
		}
		if len(c.Errors) > 0 {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}

		conf.logger.LogAttrs(c.Request.Context(), conf.levelOf(status), c.Request.Method+" "+route, attributes...)
	}
}

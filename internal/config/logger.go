package config

import (
	"context"
	"os"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type ctxKey string

const userIDKey ctxKey = "log_user_id"

var (
	logger     = logrus.New()
	loggerOnce sync.Once
)

// Init configures the shared logger. Safe to call more than once.
func Init(level string) {
	loggerOnce.Do(func() {
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.JSONFormatter{})
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
}

func Logger() *logrus.Logger {
	return logger
}

// ContextWithUserID tags the context so WithContext adds user_id to entries.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// WithContext returns a log entry enriched with the request id and user id
// found in ctx.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	if userID, ok := ctx.Value(userIDKey).(string); ok && userID != "" {
		entry = entry.WithField("user_id", userID)
	}
	return entry
}

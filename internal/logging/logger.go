package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

type Logger struct {
	*slog.Logger
}

func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

func BuildLogger() *Logger {
	return New(os.Stdout, slog.LevelDebug)
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	return &Logger{Logger: logger.With("path", ctx.Request.URL.Path, "method", ctx.Request.Method)}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}

func (l *Logger) WithStats(stats any) *Logger {
	modifiedLogger := Logger{Logger: l.With("stats", stats)}
	return &modifiedLogger
}

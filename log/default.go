// Package log provides the default notify.Listener implementation backed by zap.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nielskrijger/sqs/notify"
)

// NewDefault returns a listener writing events through a production zap logger.
func NewDefault() *Default {
	logger, err := zap.NewProduction()
	if err != nil {
		// NewProduction only fails on invalid output paths, the defaults are valid.
		panic(err)
	}

	return New(logger)
}

// New returns a listener writing events through the given logger.
func New(logger *zap.Logger) *Default {
	return &Default{logger: logger}
}

// Default logs every event it is notified of.
type Default struct {
	logger *zap.Logger
}

// Notify implements notify.Listener.
func (d *Default) Notify(e notify.Event) {
	fields := make([]zap.Field, 0, len(e.Detail)+2)
	if e.Queue != "" {
		fields = append(fields, zap.String("queue", e.Queue))
	}
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}
	for k, v := range e.Detail {
		fields = append(fields, zap.String(k, v))
	}

	d.logger.Log(zapLevel(e.Level), e.Message, fields...)
}

func zapLevel(l notify.Level) zapcore.Level {
	switch l {
	case notify.LevelDebug:
		return zapcore.DebugLevel
	case notify.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

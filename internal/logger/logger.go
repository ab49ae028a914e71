package logger

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/threewisemonkeys-as/minigrep/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Handle is an opened logger together with the file behind it, if any.
type Handle struct {
	Base *zap.Logger
	file *os.File
}

// Open builds the logger described by s. In prod it appends JSON to s.LogFile,
// otherwise it writes a console log to stderr so stdout stays clean for matches.
func Open(s *config.Settings) (*Handle, error) {
	level, err := s.Level()
	if err != nil {
		return nil, err
	}

	switch s.Env {
	case "prod":
		if err := os.MkdirAll(filepath.Dir(s.LogFile), 0755); err != nil {
			return nil, err
		}

		file, err := os.OpenFile(s.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(file),
			level,
		)
		return &Handle{Base: zap.New(core), file: file}, nil

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		l, err := zapCfg.Build()
		if err != nil {
			return nil, err
		}
		return &Handle{Base: l}, nil
	}
}

// Sync flushes buffered entries. Sync on a console fd fails with EINVAL on some
// platforms, so that error is dropped.
func (h *Handle) Sync() {
	_ = h.Base.Sync()
}

// Close releases the log file. The logger must not be used afterwards.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	return h.file.Close()
}

// ProvideLogger tags every entry with a fresh run id and flushes on shutdown.
func ProvideLogger(lc fx.Lifecycle, h *Handle) *zap.Logger {
	l := h.Base.With(zap.String("run_id", uuid.NewString()))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			h.Sync()
			return nil
		},
	})
	return l
}

package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/threewisemonkeys-as/minigrep/internal/config"
	"github.com/threewisemonkeys-as/minigrep/internal/search"
	"go.uber.org/zap"
)

var (
	ErrSourceRead = errors.New("cannot read source")
	ErrNotText    = errors.New("stream did not contain valid UTF-8")
)

type Runner struct {
	logger *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run searches cfg.Filename and writes each matching line to out, in file order.
func (r *Runner) Run(cfg *config.Config, out io.Writer) error {
	contents, err := ReadSource(cfg.Filename)
	if err != nil {
		r.logger.Info("read source failed",
			zap.String("file", cfg.Filename),
			zap.Error(err),
		)
		return err
	}

	matches := search.Find(cfg.Query, contents, cfg.CaseSensitive)
	r.logger.Debug("search finished",
		zap.String("file", cfg.Filename),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
		zap.Int("bytes", len(contents)),
		zap.Int("matches", len(matches)),
	)

	for _, line := range matches {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// ReadSource loads the whole file as text.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: %w", ErrSourceRead, path, ErrNotText)
	}
	return string(data), nil
}

package di

import (
	"context"
	"fmt"
	"io"

	"github.com/threewisemonkeys-as/minigrep/internal/app"
	"github.com/threewisemonkeys-as/minigrep/internal/config"
	"github.com/threewisemonkeys-as/minigrep/internal/logger"
	"go.uber.org/dig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Execute runs one search for the given process arguments and returns the exit status.
// Arguments are resolved before anything is read from disk.
func Execute(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.FromEnv(args)
	if err != nil {
		return report(stderr, err)
	}

	settings, err := config.ProvideSettings()
	if err != nil {
		return report(stderr, err)
	}
	handle, err := logger.Open(settings)
	if err != nil {
		return report(stderr, err)
	}
	defer handle.Close()

	var (
		runner *app.Runner
		log    *zap.Logger
	)
	fxApp := fx.New(
		fx.Supply(handle),
		fx.Provide(
			logger.ProvideLogger,
			app.NewRunner,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Populate(&runner, &log),
	)
	if err := fxApp.Err(); err != nil {
		return report(stderr, dig.RootCause(err))
	}

	startCtx, cancel := context.WithTimeout(context.Background(), fxApp.StartTimeout())
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return report(stderr, dig.RootCause(err))
	}

	runErr := runner.Run(cfg, stdout)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		log.Debug("stop", zap.Error(err))
	}

	if runErr != nil {
		return report(stderr, runErr)
	}
	return 0
}

// report prints err with the prefix matching its kind and returns the exit status.
func report(stderr io.Writer, err error) int {
	prefix := "Application error"
	if config.IsConfigErr(err) {
		prefix = "Problem parsing arguments"
	}
	fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
	return 1
}

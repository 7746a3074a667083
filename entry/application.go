package entry

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type Application interface {
	Context() context.Context
	Log() *slog.Logger
	Fail(message string, err error)
	Stop()
}

// NewApplication initializes the process-wide state for a service named name: a
// JSON logger that writes records at or above level to stdout, and a context that's
// canceled when the process is asked to terminate
func NewApplication(name string, level slog.Level) Application {
	// Prepare a logger that we can write structured log messages to
	pid := os.Getpid()
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("app", name, "pid", pid)
	slog.SetDefault(logger)
	logger.Info("Process starting")

	// Shut down cleanly on signal
	ctx, close := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &application{
		ctx:      ctx,
		closeCtx: close,
		logger:   logger,
	}
}

type application struct {
	ctx      context.Context
	closeCtx context.CancelFunc
	logger   *slog.Logger
}

func (a *application) Context() context.Context {
	return a.ctx
}

func (a *application) Log() *slog.Logger {
	return a.logger
}

func (a *application) Fail(message string, err error) {
	a.logger.Error(message, "error", err)
	os.Exit(1)
}

func (a *application) Stop() {
	a.logger.Info("Process stopping")
	a.closeCtx()
}

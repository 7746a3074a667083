package entry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests are given to finish once the
// application is asked to stop
const shutdownTimeout = 10 * time.Second

// RunServer blocks while an HTTP server application runs
func RunServer(a Application, handler http.Handler, bindAddr string, listenPort int) {
	// Prepare an http.Server with reasonable default config, using our provided handler
	addr := fmt.Sprintf("%s:%d", bindAddr, listenPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           Middleware(a.Log())(handler),
		ErrorLog:          NewErrorLog(a.Log()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Kick off a goroutine which calls server.ListenAndServe(): if it fails, the group's
	// context is canceled along with it
	a.Log().Info("Now listening", "bindAddr", bindAddr, "listenPort", listenPort)
	wg, ctx := errgroup.WithContext(a.Context())
	wg.Go(server.ListenAndServe)

	// Block until our application-level context is closed (or the server fails), then
	// shut down
	<-ctx.Done()
	a.Log().Info("Closing server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Log().Error("Server did not shut down cleanly", "error", err)
	}

	// Block until ListenAndServe returns
	err := wg.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		a.Log().Info("Server closed")
	} else {
		a.Fail("error running server", err)
	}
}

// NewErrorLog adapts an slog.Logger to the simpler log.Logger interface used by
// http.Server's ErrorLog field
func NewErrorLog(s *slog.Logger) *log.Logger {
	w := errorLogWriter{s}
	return log.New(w, "", 0)
}

// errorLogWriter is an implementation of io.Writer that handles http server errors by
// writing them to an underlying slog.Logger
type errorLogWriter struct {
	logger *slog.Logger
}

func (w errorLogWriter) Write(data []byte) (int, error) {
	w.logger.Error("http.Server error", "error", string(data))
	return len(data), nil
}

package hmac

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

// LoggerFunc returns the logger to use while handling r, e.g. one carrying a request
// ID
type LoggerFunc func(r *http.Request) *slog.Logger

// Middleware rejects any request that doesn't carry a valid HMAC signature with a
// 401 response. The request body is buffered in order to verify it, then restored so
// that the next handler can read it. If maxBodyBytes is positive, larger bodies are
// rejected with a 413 response.
//
// The reason for a failure is logged via the logger that logFor returns (or
// slog.Default, if logFor is nil) but never sent to the client.
func Middleware(v Verifier, maxBodyBytes int64, logFor LoggerFunc) func(http.Handler) http.Handler {
	if logFor == nil {
		logFor = func(*http.Request) *slog.Logger { return slog.Default() }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logFor(r)

			body, err := readAndRestoreBody(w, r, maxBodyBytes)
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					logger.Warn("Rejecting request with oversized body", "limit", maxBytesErr.Limit)
					http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
					return
				}
				logger.Error("Failed to read request body", "error", err)
				http.Error(w, "failed to read request body", http.StatusBadRequest)
				return
			}

			if err := v.Verify(r, body); err != nil {
				reason, _ := FailureReason(err)
				attrs := []any{"reason", reason}
				if cause := errors.Unwrap(err); cause != nil {
					attrs = append(attrs, "error", cause)
				}
				logger.Warn("HMAC authentication failed", attrs...)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// readAndRestoreBody reads the entire request body and replaces it with a new reader
// so that it can be consumed again by downstream handlers
func readAndRestoreBody(w http.ResponseWriter, r *http.Request, maxBodyBytes int64) ([]byte, error) {
	if r.Body == nil {
		return []byte{}, nil
	}

	reader := r.Body
	if maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

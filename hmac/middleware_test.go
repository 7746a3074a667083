package hmac

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Middleware(t *testing.T) {
	v := NewVerifier([]byte(testSecret), clockAt(testSignedAt))

	// The wrapped handler echoes the request body, proving that it's still readable
	// after the middleware has consumed it
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		w.Write(body)
	})
	h := Middleware(v, 1024, nil)(echo)

	newSignedRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/somewhere", strings.NewReader(body))
		req.Header.Set(HeaderDate, testTimestamp)
		req.Header.Set(HeaderContentType, ContentTypeJSON)
		req.Header.Set(HeaderContentMD5, testDigest)
		req.Header.Set(HeaderSignature, testSignature)
		return req
	}

	t.Run("valid signed request passes through with its body intact", func(t *testing.T) {
		res := httptest.NewRecorder()
		h.ServeHTTP(res, newSignedRequest(testBody))
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, testBody, res.Body.String())
	})

	t.Run("unsigned request is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/somewhere", strings.NewReader(testBody))
		res := httptest.NewRecorder()
		h.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("response does not reveal why verification failed", func(t *testing.T) {
		tampered := httptest.NewRecorder()
		h.ServeHTTP(tampered, newSignedRequest(`{"hello":"there"}`))

		reqStale := newSignedRequest(testBody)
		reqStale.Header.Set(HeaderDate, "Sun, 06 Nov 1994 08:49:37 GMT")
		stale := httptest.NewRecorder()
		h.ServeHTTP(stale, reqStale)

		assert.Equal(t, http.StatusUnauthorized, tampered.Code)
		assert.Equal(t, http.StatusUnauthorized, stale.Code)
		assert.Equal(t, tampered.Body.String(), stale.Body.String())
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		res := httptest.NewRecorder()
		h.ServeHTTP(res, newSignedRequest(strings.Repeat("x", 2048)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, res.Code)
	})

	t.Run("no limit is applied when maxBodyBytes is zero", func(t *testing.T) {
		unlimited := Middleware(v, 0, nil)(echo)
		res := httptest.NewRecorder()
		unlimited.ServeHTTP(res, newSignedRequest(strings.Repeat("x", 2048)))
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("failure reason is logged through the supplied logger only", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))
		logged := Middleware(v, 1024, func(*http.Request) *slog.Logger { return logger })(echo)

		res := httptest.NewRecorder()
		logged.ServeHTTP(res, newSignedRequest(`{"hello":"there"}`))

		assert.Equal(t, http.StatusUnauthorized, res.Code)
		assert.Contains(t, logs.String(), string(ReasonBodyDigestMismatch))
		assert.NotContains(t, logs.String(), testSecret)
		assert.NotContains(t, res.Body.String(), string(ReasonBodyDigestMismatch))
	})
}

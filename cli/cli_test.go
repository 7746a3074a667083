package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golden-vcr/easy-hmac/hmac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func Test_headers(t *testing.T) {
	t.Run("headers are computed as expected", func(t *testing.T) {
		out, err := execute(t, `{"hello":"world"}`,
			"headers", "--secret", "my-secret", "--path", "/somewhere", "--date", "Wed, 06 Dec 2023 21:06:04 GMT")
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"Date: Wed, 06 Dec 2023 21:06:04 GMT",
			"Content-Type: application/json",
			"Content-Md5: +8JLzHoXlHWPwTJ/z+va9g==",
			"X-Hmac-Signature: aHuHLJBk/JvuMY9+7AfDLK3ajKQDjUvDDtvUxt6bdD0=",
		}, "\n")+"\n", out)
	})

	t.Run("secret is read from the environment", func(t *testing.T) {
		t.Setenv(SecretEnvVar, "my-secret")
		out, err := execute(t, `{"hello":"world"}`,
			"headers", "--path", "/somewhere", "--date", "Wed, 06 Dec 2023 21:06:04 GMT")
		require.NoError(t, err)
		assert.Contains(t, out, "X-Hmac-Signature: aHuHLJBk/JvuMY9+7AfDLK3ajKQDjUvDDtvUxt6bdD0=")
	})

	t.Run("body is read from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "payload.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"hello":"world"}`), 0o600))
		out, err := execute(t, "",
			"headers", "--secret", "my-secret", "--path", "/somewhere", "--date", "Wed, 06 Dec 2023 21:06:04 GMT", "-f", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Content-Md5: +8JLzHoXlHWPwTJ/z+va9g==")
	})

	t.Run("missing secret is an error", func(t *testing.T) {
		t.Setenv(SecretEnvVar, "")
		_, err := execute(t, "{}", "headers", "--path", "/somewhere")
		assert.ErrorContains(t, err, SecretEnvVar)
	})

	t.Run("path is required", func(t *testing.T) {
		_, err := execute(t, "{}", "headers", "--secret", "my-secret")
		assert.Error(t, err)
	})
}

func Test_send(t *testing.T) {
	v := hmac.NewVerifier([]byte("my-secret"))
	server := httptest.NewServer(hmac.Middleware(v, 0, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
		w.Write(body)
	})))
	defer server.Close()

	t.Run("signed request is accepted", func(t *testing.T) {
		out, err := execute(t, `{"event":"ping"}`, "send", "--secret", "my-secret", "--url", server.URL+"/webhooks/test")
		require.NoError(t, err)
		assert.Equal(t, "202 Accepted\n{\"event\":\"ping\"}", out)
	})

	t.Run("request signed with the wrong secret is reported as an error", func(t *testing.T) {
		out, err := execute(t, `{"event":"ping"}`, "send", "--secret", "not-my-secret", "--url", server.URL+"/webhooks/test")
		assert.Error(t, err)
		assert.True(t, strings.HasPrefix(out, "401 Unauthorized\n"))
	})
}

func Test_parseDate(t *testing.T) {
	for _, date := range []string{
		"Sun, 06 Nov 1994 08:49:37 GMT",
		"Sun Nov  6 08:49:37 1994",
	} {
		out, err := execute(t, "", "parse-date", date)
		require.NoError(t, err)
		assert.Equal(t, "784111777\n", out)
	}

	_, err := execute(t, "", "parse-date", "Monday, 14/12/2021 - 10:47:23")
	assert.Error(t, err)
}

package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockify-report/internal/config"
)

func fakeClockify(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"u1"}`)
	})
	mux.HandleFunc("/workspaces", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"ws1","name":"Main"}]`)
	})
	mux.HandleFunc("/workspaces/ws1/user/u1/time-entries", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"e1","description":"Review","workspaceId":"ws1",
			"timeInterval":{"start":"2024-01-01T09:00:00Z","end":"2024-01-01T10:30:15Z","duration":"PT1H30M15S"}}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.Config {
	var cfg config.Config
	cfg.Clockify.APIKey = "secret"
	cfg.Clockify.BaseURL = baseURL
	cfg.Clockify.Timeout = time.Second
	return cfg
}

func TestApp_RunOnceTable(t *testing.T) {
	srv := fakeClockify(t)
	var out bytes.Buffer
	a, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig(srv.URL), Options{Out: &out})
	require.NoError(t, err)

	require.NoError(t, a.RunOnce(context.Background()))
	require.NoError(t, a.Close())

	s := out.String()
	assert.Contains(t, s, "Workspace Main (ws1)")
	assert.Contains(t, s, "Review")
	assert.Contains(t, s, "01:30:15")
	assert.Contains(t, s, "Totals per date")
	assert.Less(t, strings.Index(s, "Workspace Main"), strings.Index(s, "Totals per date"))
}

func TestApp_RunOnceYAML(t *testing.T) {
	srv := fakeClockify(t)
	var out bytes.Buffer
	a, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig(srv.URL), Options{Out: &out, Format: FormatYAML})
	require.NoError(t, err)

	require.NoError(t, a.RunOnce(context.Background()))
	require.NoError(t, a.Close())

	assert.Contains(t, out.String(), "title: Totals per date")
	assert.Contains(t, out.String(), "description: Review")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig("http://x"), Options{Out: io.Discard, Format: "csv"})
	require.Error(t, err)
}

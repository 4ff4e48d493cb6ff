package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/phrazzld/coursebook/internal/api/feed"
	"github.com/phrazzld/coursebook/internal/config"
	"github.com/phrazzld/coursebook/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, path string) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080, LogLevel: "debug"},
		Storage: config.StorageConfig{Driver: driver, Path: path},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	app, err := newApplication(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	t.Cleanup(func() {
		cancel()
		app.cleanup()
	})
	return app
}

func TestOpenGateway(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr bool
	}{
		{"bolt", config.StorageConfig{Driver: config.DriverBolt, Path: filepath.Join(t.TempDir(), "coursebook.db")}, false},
		{"yaml", config.StorageConfig{Driver: config.DriverYAML, Path: t.TempDir()}, false},
		{"memory", config.StorageConfig{Driver: config.DriverMemory}, false},
		{"unknown", config.StorageConfig{Driver: "sqlite", Path: "x"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gw, closeFn, err := openGateway(tc.cfg, logger)
			require.NotNil(t, closeFn)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, gw)
			assert.NoError(t, closeFn())
		})
	}
}

func TestApplication_ServesAPI(t *testing.T) {
	app := newTestApp(t, testConfig(config.DriverMemory, ""))
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Post(srv.URL+"/api/courses", "application/json",
		strings.NewReader(`{"title":"Go 101","desc":"Intro to Go"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/courses/1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplication_FeedReceivesMutations(t *testing.T) {
	app := newTestApp(t, testConfig(config.DriverMemory, ""))
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/feed", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return app.feedHub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/api/courses", "application/json",
		strings.NewReader(`{"title":"Go 101","desc":"Intro to Go"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg feed.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "courses", msg.Data.Collection)
	assert.Equal(t, 1, msg.Data.RecordID)
}

func TestApplication_BoltSurvivesRestart(t *testing.T) {
	cfg := testConfig(config.DriverBolt, filepath.Join(t.TempDir(), "coursebook.db"))

	first := newTestApp(t, cfg)
	res := first.dispatcher.Execute(context.Background(), service.CreateCourse{Title: "Go 101", Description: "Intro to Go"})
	require.True(t, res.OK(), res.Message)
	first.cleanup()

	second := newTestApp(t, cfg)
	courses := second.catalog.Courses.List()
	require.Len(t, courses, 1)
	assert.Equal(t, "Go 101", courses[0].Title)
	assert.Equal(t, 1, second.catalog.Courses.LastID())
}

func TestNewApplication_BadStorage(t *testing.T) {
	// A directory cannot be opened as a bolt file.
	cfg := testConfig(config.DriverBolt, t.TempDir())

	_, err := newApplication(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

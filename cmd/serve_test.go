package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/readwise-api/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, ShutdownTimeout: time.Second},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   ":memory:",
		},
		Documents: config.DocumentsConfig{MaxUploadBytes: 1 << 20, MaxTextRunes: 10000},
		Render:    config.RenderConfig{Mode: "offsets", CacheTTL: time.Minute},
		Cache:     config.CacheConfig{MaxSizeMB: 1},
		Sessions:  config.SessionsConfig{TTL: time.Hour, SweepSchedule: "@every 10m"},
	}
}

func TestServeCommand_Help(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Start the Readwise Highlights API server")
}

func TestServeCommand_InvalidPort(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"serve", "--port", "invalid"})

	assert.Error(t, cmd.Execute())
}

func TestNewApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := newApplication(testConfig(), "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(app.close)

	engine := app.server.Engine()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/documents/sample", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Document struct {
			ID uint `json:"id"`
		} `json:"document"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Document.ID)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/documents/%d/render?format=html", created.Document.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
}

func TestNewApplication_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Render.Mode = "fuzzy"
	_, err := newApplication(cfg, "127.0.0.1:0")
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Database.Driver = "mysql"
	_, err = newApplication(cfg, "127.0.0.1:0")
	assert.Error(t, err)
}

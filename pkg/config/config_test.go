package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

func withConfigFile(t *testing.T, content string) {
	t.Helper()
	original := configPath
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	configPath = path
	t.Cleanup(func() {
		configPath = original
		Reset()
	})
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings.yaml",
			content: `
server:
  host: "127.0.0.1"
  port: 8081
render:
  mode: content
`,
			check: func(t *testing.T) {
				assert.Equal(t, 8081, GetInt("server.port"))
				assert.Equal(t, "127.0.0.1", GetString("server.host"))
				assert.Equal(t, "content", GetString("render.mode"))
			},
		},
		{
			name: "environment variable override",
			content: `
server:
  port: 8080
`,
			env: map[string]string{"READWISE_SERVER_PORT": "9090"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "missing config file with defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, "sqlite", GetString("database.driver"))
				assert.Equal(t, "offsets", GetString("render.mode"))
				assert.Equal(t, 24*time.Hour, GetDuration("sessions.ttl"))
				assert.True(t, GetBool("rate_limiting.enabled"))
			},
		},
		{
			name: "invalid render mode",
			content: `
render:
  mode: regex
`,
			wantErr: true,
		},
		{
			name: "postgres without dsn",
			content: `
database:
  driver: postgres
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			withConfigFile(t, tt.content)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Init()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	Reset()
	withConfigFile(t, "")
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "file::memory:?cache=shared", cfg.Database.Path)
	assert.Equal(t, int64(1048576), cfg.Documents.MaxUploadBytes)
	assert.Equal(t, "@every 10m", cfg.Sessions.SweepSchedule)
	assert.Equal(t, 10*time.Minute, cfg.Render.CacheTTL)
}

func TestInit_InvalidConfigIsConfigError(t *testing.T) {
	Reset()
	withConfigFile(t, "render:\n  mode: fuzzy\n")

	err := Init()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))
	assert.Contains(t, err.Error(), "render.mode")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 8080},
				Database: DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
			},
		},
		{
			name: "invalid port",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 0},
				Database: DatabaseConfig{Path: ":memory:"},
			},
			wantErr: true,
		},
		{
			name: "sqlite without path",
			config: &Config{
				Server: ServerConfig{Port: 8080},
			},
			wantErr: true,
		},
		{
			name: "postgres with dsn",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "postgres", DSN: "host=localhost user=readwise"},
			},
		},
		{
			name: "unknown driver",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "mysql", DSN: "x"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "offsets", tt.config.Render.Mode)
		})
	}
}

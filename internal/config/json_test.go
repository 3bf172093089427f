package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "2.0.0" },
		"storage": {
			"backend": "sqlite",
			"db": { "dsn": "file:counters?mode=memory" }
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"shutdown_timeout": 2000000000,
			"allowed_origins": ["http://ui.example"]
		},
		"log": {
			"level": "error",
			"file": "/tmp/c.log",
			"max_size_mb": 5,
			"max_backups": 1,
			"max_age_days": 3
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": "1s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "file:counters?mode=memory", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://ui.example"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/c.log", cfg.Log.File)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	assert.Equal(t, 1, cfg.Log.MaxBackups)
	assert.Equal(t, 3, cfg.Log.MaxAgeDays)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)

	assert.Empty(t, cfg.JSONFilePath, "JSON file must not point to another JSON file")
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": `), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000`, want: 1000},
		{name: "bool", input: `true`, wantErr: true},
		{name: "garbage string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(45 * time.Second))

	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(data))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"STORAGE_BACKEND": "sqlite",
		"STORAGE_DB_DSN":  "file::memory:",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",
		"SERVER_ALLOWED_ORIGINS":  "http://a.example,http://b.example",

		"LOG_LEVEL":        "debug",
		"LOG_FILE":         "/var/log/counters.log",
		"LOG_MAX_SIZE_MB":  "10",
		"LOG_MAX_BACKUPS":  "2",
		"LOG_MAX_AGE_DAYS": "7",

		"ADAPTER_ADDRESS":         "127.0.0.1:9000",
		"ADAPTER_REQUEST_TIMEOUT": "2s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "file::memory:", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/counters.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 2, cfg.Log.MaxBackups)
	assert.Equal(t, 7, cfg.Log.MaxAgeDays)

	assert.Equal(t, "127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS": "localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.Backend)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Nil(t, cfg.Server.AllowedOrigins)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"LOG_MAX_BACKUPS": "many",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

// setEnvVars clears every variable the config reads and then sets vars for
// the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION",
		"STORAGE_BACKEND",
		"STORAGE_DB_DSN",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT",
		"SERVER_ALLOWED_ORIGINS",
		"LOG_LEVEL",
		"LOG_FILE",
		"LOG_MAX_SIZE_MB",
		"LOG_MAX_BACKUPS",
		"LOG_MAX_AGE_DAYS",
		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		// t.Setenv restores the original value on cleanup.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
}

func TestLoadIgnoresInvalidInt(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NivelDeLogPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.App.LogLevel, "sin LOG_LEVEL el nivel por defecto es info")
}

func TestLoad_NivelDeLogDesdeEntorno(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

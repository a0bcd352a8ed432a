// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lafras/quaternions/internal/config"
)

type envTestConfig struct {
	Precision uint32 `env:"QUATDEMO_TEST_PRECISION" envDefault:"32"`
	Level     string `env:"QUATDEMO_TEST_LEVEL" envDefault:"info"`
}

// TestParseEnv_Defaults verifies envDefault values apply when nothing is set.
func TestParseEnv_Defaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, config.ParseEnv(&cfg))
	assert.Equal(t, uint32(32), cfg.Precision)
	assert.Equal(t, "info", cfg.Level)
}

// TestParseEnv_Overrides verifies set variables win over defaults.
func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("QUATDEMO_TEST_PRECISION", "48")
	t.Setenv("QUATDEMO_TEST_LEVEL", "debug")

	var cfg envTestConfig
	require.NoError(t, config.ParseEnv(&cfg))
	assert.Equal(t, uint32(48), cfg.Precision)
	assert.Equal(t, "debug", cfg.Level)
}

// TestParseEnv_Error checks malformed values surface with the "parse env:" prefix.
func TestParseEnv_Error(t *testing.T) {
	t.Setenv("QUATDEMO_TEST_PRECISION", "not-a-number")

	var cfg envTestConfig
	err := config.ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// When: the config file does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, "tictactoe.log", conf.LogFile)
		assert.False(t, conf.Game.HideLegend)
		assert.False(t, conf.Game.SingleGame)
		assert.Equal(t, 3, conf.Game.DefaultBoardSize)
	})

	t.Run("Values from the config file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
log-format: json
log-file: "-"
game:
  hide-legend: true
  single-game: true
  default-board-size: 5
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.Equal(t, "-", conf.LogFile)
		assert.True(t, conf.Game.HideLegend)
		assert.True(t, conf.Game.SingleGame)
		assert.Equal(t, 5, conf.Game.DefaultBoardSize)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "log-level: debug\n")
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("Invalid values are rejected", func(t *testing.T) {
		path := writeConfig(t, `
log-level: loud
game:
  default-board-size: 7
`)

		_, err := Load(path)

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Len(t, validationErrors, 2)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "log-format: xml\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Validate(t *testing.T) {
	// Given: a loaded config overridden from the command line
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	// When
	conf.LogLevel = "debug"
	require.NoError(t, conf.Validate())

	conf.LogLevel = "trace"
	err = conf.Validate()

	// Then
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "LogLevel", validationErrors[0].Field())
}

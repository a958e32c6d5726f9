package config

import (
	"os"
	"path/filepath"
	"testing"

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
	t.Run("Applies defaults to missing fields", func(t *testing.T) {
		// Given: a config file that only sets the seed
		path := writeConfig(t, "seed: 0\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.BoardSize)
		assert.Equal(t, uint64(0), conf.Seed)
		assert.Empty(t, conf.InputPath)
		assert.False(t, conf.NoColor)
		assert.Equal(t, Player{Name: "Player"}, conf.FirstPlayer)
		assert.Equal(t, Player{Name: "Computer", Automatic: true}, conf.SecondPlayer)
	})

	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, `
log-level: debug
board-size: 5
seed: 42
input-path: moves.txt
no-color: true
first-player:
  name: Alice
  automatic: true
second-player:
  name: Bob
  automatic: false
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values win
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.BoardSize)
		assert.Equal(t, uint64(42), conf.Seed)
		assert.Equal(t, "moves.txt", conf.InputPath)
		assert.True(t, conf.NoColor)
		assert.Equal(t, Player{Name: "Alice", Automatic: true}, conf.FirstPlayer)
		assert.Equal(t, Player{Name: "Bob"}, conf.SecondPlayer)
	})

	t.Run("Rejects a board size out of range", func(t *testing.T) {
		for _, content := range []string{"board-size: -1", "board-size: 10"} {
			// Given: a config with a bad board size
			path := writeConfig(t, content)

			// When: the config is loaded
			_, err := Load(path)

			// Then: ErrInvalidBoardSize is returned
			require.ErrorIs(t, err, ErrInvalidBoardSize, content)
		}
	})

	t.Run("Rejects duplicate player names", func(t *testing.T) {
		// Given: both players named alike
		path := writeConfig(t, `
first-player:
  name: Same
second-player:
  name: Same
`)

		// When: the config is loaded
		_, err := Load(path)

		// Then: ErrDuplicatePlayerName is returned
		require.ErrorIs(t, err, ErrDuplicatePlayerName)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
	})
}

func TestValidate(t *testing.T) {
	t.Run("Empty player name", func(t *testing.T) {
		conf := &Config{BoardSize: 3, FirstPlayer: Player{Name: "A"}}
		assert.ErrorIs(t, conf.Validate(), ErrEmptyPlayerName)
	})

	t.Run("Smallest board", func(t *testing.T) {
		conf := &Config{BoardSize: 1, FirstPlayer: Player{Name: "A"}, SecondPlayer: Player{Name: "B"}}
		assert.NoError(t, conf.Validate())
	})
}

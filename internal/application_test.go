package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(size int, firstAutomatic, secondAutomatic bool) *config.Config {
	return &config.Config{
		LogLevel:     "info",
		BoardSize:    size,
		Seed:         7,
		NoColor:      true,
		FirstPlayer:  config.Player{Name: "Player", Automatic: firstAutomatic},
		SecondPlayer: config.Player{Name: "Computer", Automatic: secondAutomatic},
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Plays a scripted game to the end", func(t *testing.T) {
		// Given: two manual players and a row win for the first one
		var out bytes.Buffer
		input := strings.NewReader("A1 A2 B1 B2 C1")

		// When: the game is run
		err := Run(context.Background(), logger, testConfig(3, false, false), input, &out)

		// Then: the result is printed
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Player wins\n"))
	})

	t.Run("Plays on a larger board without input", func(t *testing.T) {
		var out bytes.Buffer

		err := Run(context.Background(), logger, testConfig(5, true, true), strings.NewReader(""), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "   A B C D E\n")
	})

	t.Run("Canceled context is not an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, logger, testConfig(3, false, false), strings.NewReader("A1"), io.Discard)

		require.NoError(t, err)
	})

	t.Run("Exhausted input is reported", func(t *testing.T) {
		err := Run(context.Background(), logger, testConfig(3, false, false), strings.NewReader("A1"), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInputExhausted)
	})
}

func TestOpenInput(t *testing.T) {
	t.Run("Empty path means stdin", func(t *testing.T) {
		input, closeInput, err := openInput("")

		require.NoError(t, err)
		assert.Equal(t, os.Stdin, input)
		assert.NoError(t, closeInput())
	})

	t.Run("Reads a moves file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "moves.txt")
		require.NoError(t, os.WriteFile(path, []byte("A1\n"), 0o600))

		input, closeInput, err := openInput(path)
		require.NoError(t, err)

		content, err := io.ReadAll(input)
		require.NoError(t, err)
		assert.Equal(t, "A1\n", string(content))
		assert.NoError(t, closeInput())
	})

	t.Run("Missing file", func(t *testing.T) {
		_, _, err := openInput(filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)
	})
}

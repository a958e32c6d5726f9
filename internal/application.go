package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	input, closeInput, err := openInput(conf.InputPath)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeInput(); err != nil {
			log.Error("could not close input", "error", err)
		}
	}()

	return Run(ctx, logger, conf, input, os.Stdout)
}

// Run - plays one game configured by conf, reading moves from input and drawing to output.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, input io.Reader, output io.Writer) error {
	log := logger.With("component", "app")

	first := entity.NewPlayer(conf.FirstPlayer.Name, conf.FirstPlayer.Automatic)
	second := entity.NewPlayer(conf.SecondPlayer.Name, conf.SecondPlayer.Automatic)
	game := entity.NewGame(pkg.GenerateGameID(), conf.BoardSize, first, second, pkg.NewRandom(conf.Seed))

	renderer := console.NewRenderer(output, !conf.NoColor)
	gameManager := usecase.NewGameManager(logger, game, renderer, input)

	if err := gameManager.Play(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open input file: %w", err)
	}

	return file, file.Close, nil
}

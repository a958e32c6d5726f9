package usecase

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type renderer interface {
	ShowInstructions(size int) error
	ShowBoard(game *entity.Game) error
	ShowPrompt(player *entity.Player) error
	ShowMove(position entity.Position) error
	ShowInvalidInput() error
	ShowOccupied() error
	ShowResults(game *entity.Game) error
}

// maxTokenLen - longer words are cut to this length and the rest skipped, so they still
// reach the engine as a single invalid move instead of failing the scanner.
const maxTokenLen = 64

type token struct {
	value string
	err   error
}

// GameManager - drives a single game: prompts the current player, feeds moves to the engine
// and evaluates the state after every accepted move.
type GameManager struct {
	logger   *slog.Logger
	game     *entity.Game
	renderer renderer
	input    io.Reader

	tokens <-chan token
}

func NewGameManager(logger *slog.Logger, game *entity.Game, renderer renderer, input io.Reader) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		game:     game,
		renderer: renderer,
		input:    input,
	}
}

func (that *GameManager) Game() *entity.Game {
	return that.game
}

// Play - runs the game until it is won or tied. Returns apperror.ErrInputExhausted when the
// input ends first, or ctx.Err() when the context is canceled between moves.
func (that *GameManager) Play(ctx context.Context) error {
	log := that.logger.With("method", "Play", "gameID", that.game.ID)

	// stops the token reader once the game is over
	ctx, stop := context.WithCancel(ctx)
	defer func() {
		stop()
		that.tokens = nil
	}()

	players := that.game.Players()
	log.Info("game started",
		"size", that.game.Size(),
		"first", players[0].Name,
		"second", players[1].Name,
	)

	if err := that.renderer.ShowInstructions(that.game.Size()); err != nil {
		return err
	}

	for !that.game.IsTerminated() {
		if err := that.renderer.ShowBoard(that.game); err != nil {
			return err
		}

		if err := that.makeTurn(ctx, log); err != nil {
			log.Info("game interrupted", "error", err)
			return err
		}

		that.game.UpdateGameState()
	}

	if err := that.renderer.ShowBoard(that.game); err != nil {
		return err
	}

	if err := that.renderer.ShowResults(that.game); err != nil {
		return err
	}

	winner := entity.PlayerTie
	if that.game.Winner() != nil {
		winner = that.game.Winner().Name
	}
	log.Info("game finished", "winner", winner)

	return nil
}

// makeTurn - prompts until the engine accepts a move for the current player.
func (that *GameManager) makeTurn(ctx context.Context, log *slog.Logger) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := that.game.CurrentPlayer()
		if err := that.renderer.ShowPrompt(player); err != nil {
			return err
		}

		var move string
		if !player.IsAutomatic() {
			var err error
			if move, err = that.nextToken(ctx); err != nil {
				return err
			}
		}

		position, err := that.game.MakeTurn(move)
		switch {
		case errors.Is(err, apperror.ErrInvalidInput):
			log.Debug("move rejected", "player", player.Name, "input", move, "error", err)
			if err = that.renderer.ShowInvalidInput(); err != nil {
				return err
			}
			continue
		case errors.Is(err, apperror.ErrCellOccupied):
			log.Debug("move rejected", "player", player.Name, "input", move, "error", err)
			if err = that.renderer.ShowOccupied(); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("failed make turn: %w", err)
		}

		if player.IsAutomatic() {
			if err = that.renderer.ShowMove(position); err != nil {
				return err
			}
		}

		log.Debug("move accepted", "player", player.Name, "position", position.String())

		return nil
	}
}

func (that *GameManager) nextToken(ctx context.Context) (string, error) {
	if that.tokens == nil {
		that.tokens = scanTokens(ctx, that.input)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case t, ok := <-that.tokens:
		if !ok {
			return "", apperror.ErrInputExhausted
		}
		return t.value, t.err
	}
}

// scanTokens - reads whitespace separated tokens in the background so that a blocked read
// does not keep Play from noticing a canceled context. The reader exits once ctx is done.
func scanTokens(ctx context.Context, r io.Reader) <-chan token {
	tokens := make(chan token)

	send := func(t token) bool {
		select {
		case tokens <- t:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(tokens)

		scanner := bufio.NewScanner(r)
		scanner.Split(scanWords(maxTokenLen))
		for scanner.Scan() {
			if !send(token{value: scanner.Text()}) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			send(token{err: fmt.Errorf("failed to read input: %w", err)})
		}
	}()

	return tokens
}

// scanWords - bufio.ScanWords that yields the first limit bytes of an overlong word
// and drops the remainder up to the next space.
func scanWords(limit int) bufio.SplitFunc {
	skipping := false

	return func(data []byte, atEOF bool) (int, []byte, error) {
		if skipping {
			end := bytes.IndexFunc(data, unicode.IsSpace)
			if end < 0 {
				return len(data), nil, nil
			}

			skipping = false

			return end, nil, nil
		}

		advance, word, err := bufio.ScanWords(data, atEOF)
		if err == nil && word == nil && !atEOF && len(data)-advance > limit {
			skipping = true

			return len(data), data[advance : advance+limit], nil
		}

		if len(word) > limit {
			word = word[:limit]
		}

		return advance, word, err
	}
}

package entity

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

type Game struct {
	ID     string
	Board  [][]string
	Status string

	players      [2]*Player
	turn         *Player
	winner       *Player
	lastPosition *Position
	random       Random
}

// NewGame - creates an ongoing game on an empty size x size board.
// The first player gets PlayerX and moves first, the second gets PlayerO.
func NewGame(id string, size int, first, second *Player, rnd Random) *Game {
	board := make([][]string, size)
	for i := range board {
		board[i] = make([]string, size)
	}

	first.Symbol = PlayerX
	second.Symbol = PlayerO

	return &Game{
		ID:      id,
		Board:   board,
		Status:  StatusOngoing,
		players: [2]*Player{first, second},
		turn:    first,
		random:  rnd,
	}
}

func (that *Game) Size() int {
	return len(that.Board)
}

func (that *Game) Players() [2]*Player {
	return that.players
}

func (that *Game) CurrentPlayer() *Player {
	return that.turn
}

// LastPlayer - the player who made the last accepted move.
func (that *Game) LastPlayer() *Player {
	return that.opponent(that.turn)
}

// Winner - nil while the game is ongoing or when it ended in a tie.
func (that *Game) Winner() *Player {
	return that.winner
}

// LastPosition - nil until the first move is accepted.
func (that *Game) LastPosition() *Position {
	return that.lastPosition
}

func (that *Game) Cell(row, col int) string {
	return that.Board[row][col]
}

func (that *Game) IsAvailable(position Position) bool {
	return that.Board[position.Row][position.Col] == EmptyCell
}

func (that *Game) IsTerminated() bool {
	return that.Status == StatusFinished
}

// MakeTurn - registers a move for the current player and passes the turn.
// Automatic players ignore the token and pick a random free cell.
// A rejected token leaves the game unchanged. A finished game or a full board
// yields apperror.ErrGameFinished, even if UpdateGameState was never called.
func (that *Game) MakeTurn(token string) (Position, error) {
	if that.IsTerminated() || that.isFull() {
		return Position{}, apperror.ErrGameFinished
	}

	var position Position
	if that.turn.IsAutomatic() {
		position = that.randomAvailablePosition()
	} else {
		var ok bool
		if position, ok = ParsePosition(token, that.Size()); !ok {
			return Position{}, apperror.ErrInvalidInput
		}

		if !that.IsAvailable(position) {
			return Position{}, apperror.ErrCellOccupied
		}
	}

	that.Board[position.Row][position.Col] = that.turn.Symbol
	that.lastPosition = &position
	that.turn = that.opponent(that.turn)

	return position, nil
}

func (that *Game) randomAvailablePosition() Position {
	for {
		position := RandomPosition(that.random, that.Size())
		if that.IsAvailable(position) {
			return position
		}
	}
}

// UpdateGameState - looks for a completed line through the last position, then for a tie.
func (that *Game) UpdateGameState() {
	if that.lastPosition == nil {
		return
	}

	switch {
	case that.TraverseRow():
	case that.TraverseCol():
	case that.lastPosition.IsDiagonal() && that.TraverseDiag():
	case that.lastPosition.IsAntiDiagonal() && that.TraverseAntiDiag():
	default:
		that.IsTie()
	}
}

// TraverseRow - checks the row of the last position. Sets the winner when the row is complete.
func (that *Game) TraverseRow() bool {
	if that.lastPosition == nil {
		return false
	}

	row := that.lastPosition.Row
	return that.traverse(func(i int) string { return that.Board[row][i] })
}

// TraverseCol - checks the column of the last position. Sets the winner when the column is complete.
func (that *Game) TraverseCol() bool {
	if that.lastPosition == nil {
		return false
	}

	col := that.lastPosition.Col
	return that.traverse(func(i int) string { return that.Board[i][col] })
}

// TraverseDiag - checks the main diagonal, (0, 0) to (N-1, N-1).
func (that *Game) TraverseDiag() bool {
	return that.traverse(func(i int) string { return that.Board[i][i] })
}

// TraverseAntiDiag - checks the anti-diagonal, (0, N-1) to (N-1, 0).
func (that *Game) TraverseAntiDiag() bool {
	last := that.Size() - 1
	return that.traverse(func(i int) string { return that.Board[i][last-i] })
}

// traverse - a line is complete when its first cell is taken and all other cells match it.
func (that *Game) traverse(cell func(i int) string) bool {
	symbol := cell(0)
	if symbol == EmptyCell {
		return false
	}

	for i := 1; i < that.Size(); i++ {
		if cell(i) != symbol {
			return false
		}
	}

	that.setWinner()

	return true
}

// IsTie - true when no cell is empty. Finishes the game without a winner.
func (that *Game) IsTie() bool {
	if !that.isFull() {
		return false
	}

	that.Status = StatusFinished

	return true
}

func (that *Game) isFull() bool {
	for _, row := range that.Board {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Game) setWinner() {
	that.winner = that.LastPlayer()
	that.Status = StatusFinished
}

func (that *Game) opponent(player *Player) *Player {
	if player == that.players[0] {
		return that.players[1]
	}
	return that.players[0]
}

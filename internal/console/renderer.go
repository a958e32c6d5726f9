package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	colorX = "1" // red
	colorO = "4" // blue
)

// Renderer - writes the game screens to a terminal. Each call performs a single write.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer - colored output is only produced when color is true and w supports it.
func NewRenderer(w io.Writer, color bool) *Renderer {
	if !color {
		return &Renderer{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}

	return &Renderer{output: termenv.NewOutput(w)}
}

func (that *Renderer) ShowInstructions(size int) error {
	var sb strings.Builder

	sb.WriteString("************\n")
	sb.WriteString("Tic-Tac-Toe!\n")
	sb.WriteString("************\n")
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Please enter the column (%s) and then the row (%s) of your move.\n",
		choices('A', size), choices('1', size))

	return that.flush(&sb)
}

// ShowBoard - column letters on top, row digits on the left:
//
//	   A B C
//	1 |X| |O|
func (that *Renderer) ShowBoard(game *entity.Game) error {
	var sb strings.Builder

	size := game.Size()

	sb.WriteString("\n   ")
	sb.WriteString(sequence('A', size))
	sb.WriteString("\n")

	for row := range size {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := range size {
			sb.WriteString(that.symbol(game.Cell(row, col)))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return that.flush(&sb)
}

func (that *Renderer) ShowPrompt(player *entity.Player) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s Move (%s): ", player.Name, that.symbol(player.Symbol))

	return that.flush(&sb)
}

// ShowMove - echoes a move that was not typed by the user.
func (that *Renderer) ShowMove(position entity.Position) error {
	var sb strings.Builder

	sb.WriteString(position.String())
	sb.WriteString("\n")

	return that.flush(&sb)
}

func (that *Renderer) ShowInvalidInput() error {
	var sb strings.Builder

	sb.WriteString("\nInvalid Input: Please enter the column and row of your move (Example: A1).\n\n")

	return that.flush(&sb)
}

func (that *Renderer) ShowOccupied() error {
	var sb strings.Builder

	sb.WriteString("\nThe space entered is already taken.\n\n")

	return that.flush(&sb)
}

func (that *Renderer) ShowResults(game *entity.Game) error {
	var sb strings.Builder

	if winner := game.Winner(); winner != nil {
		fmt.Fprintf(&sb, "%s wins\n", that.output.String(winner.Name).Bold())
	} else {
		sb.WriteString("Tie!\n")
	}

	return that.flush(&sb)
}

func (that *Renderer) symbol(cell string) string {
	switch cell {
	case entity.PlayerX:
		return that.output.String(cell).Foreground(that.output.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.output.String(cell).Foreground(that.output.Color(colorO)).Bold().String()
	case entity.EmptyCell:
		return " "
	default:
		return cell
	}
}

func (that *Renderer) flush(sb *strings.Builder) error {
	if _, err := io.WriteString(that.output, sb.String()); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}

// sequence - "A B C" for size 3.
func sequence(first byte, size int) string {
	items := make([]string, size)
	for i := range items {
		items[i] = string(first + byte(i))
	}

	return strings.Join(items, " ")
}

// choices - "A, B, or C" for size 3.
func choices(first byte, size int) string {
	if size == 1 {
		return string(first)
	}

	items := make([]string, size)
	for i := range items {
		items[i] = string(first + byte(i))
	}
	items[size-1] = "or " + items[size-1]

	return strings.Join(items, ", ")
}

package entity

const (
	firstColumn = 'A'
	firstRow    = '1'
)

// Random - source of uniformly distributed ints in [0, n), satisfied by *rand.Rand from math/rand/v2.
type Random interface {
	IntN(n int) int
}

// Position - a single cell coordinate on a board of the given size.
type Position struct {
	Row int
	Col int

	size int
}

func NewPosition(row, col, size int) Position {
	return Position{Row: row, Col: col, size: size}
}

// ParsePosition - converts a "<Letter><Digit>" token (e.g. "A1") to a position.
// The second value is false when the token does not name a cell of the board.
func ParsePosition(token string, size int) (Position, bool) {
	if len(token) != 2 {
		return Position{}, false
	}

	letter, digit := token[0], token[1]
	if letter < firstColumn || int(letter) > firstColumn+size-1 {
		return Position{}, false
	}

	if digit < firstRow || int(digit) > firstRow+size-1 {
		return Position{}, false
	}

	return NewPosition(int(digit-firstRow), int(letter-firstColumn), size), true
}

// RandomPosition - draws row and column independently from [0, size).
func RandomPosition(rnd Random, size int) Position {
	return NewPosition(rnd.IntN(size), rnd.IntN(size), size)
}

func (that Position) Size() int {
	return that.size
}

func (that Position) IsDiagonal() bool {
	return that.Row == that.Col
}

func (that Position) IsAntiDiagonal() bool {
	return that.Row+that.Col == that.size-1
}

func (that Position) String() string {
	return string([]byte{byte(firstColumn + that.Col), byte(firstRow + that.Row)})
}

package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrInvalidInput   = errors.New("invalid input")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInputExhausted = errors.New("input exhausted before the game finished")
)

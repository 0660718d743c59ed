package apperror

import "errors"

var (
	ErrOutOfBounds  = errors.New("coordinates are out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrGameFinished = errors.New("game is already finished")
)

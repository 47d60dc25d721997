package apperror

import "errors"

var (
	ErrMatchFinished = errors.New("match is already finished")
	ErrInvalidMove   = errors.New("invalid move")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrQuit          = errors.New("player quit")
)

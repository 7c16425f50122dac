package engine

import "errors"

var (
	ErrIllegalMove = errors.New("invalid move")
	ErrCannotPass  = errors.New("cannot pass")
	ErrGameOver    = errors.New("game is already over")
)

package game

import "errors"

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrGameFinished   = errors.New("game already finished")
	ErrNotYourGame    = errors.New("player not in this game")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrIllegalMove    = errors.New("illegal move")
)

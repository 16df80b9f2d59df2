package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrIllegalAction   = errors.New("illegal action")
	ErrInvalidState    = errors.New("invalid state key")
	ErrAgentNotTrained = errors.New("agent is not trained")
	ErrGameNotFound    = errors.New("game not found")
)

package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrIllegalMove       = errors.New("move captures nothing")
	ErrNoActiveGames     = errors.New("no active games")
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrGameIsFull        = errors.New("game already has two players")
)

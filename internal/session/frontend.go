package session

//go:generate mockgen -source=frontend.go -destination=mocks/mock_frontend.go -package=mocks

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
)

// Side is the choice made on the side selection screen.
type Side int

const (
	SideX Side = iota
	SideO
	SideRandom
	SideAuto
)

func (s Side) String() string {
	switch s {
	case SideX:
		return "X"
	case SideO:
		return "O"
	case SideRandom:
		return "random"
	default:
		return "auto"
	}
}

// Stats counts the results of the matches played in a session.
type Stats struct {
	Played int
	XWins  int
	OWins  int
	Ties   int
}

// Frontend is everything the session needs from the terminal.
type Frontend interface {
	// MainMenu shows the title screen and reports whether to play another match.
	MainMenu(ctx context.Context, stats Stats) (bool, error)
	// PickSide asks which mark the human plays.
	PickSide(ctx context.Context) (Side, error)
	// Render redraws the board.
	Render(board *game.Board)
	// RequestHumanMove blocks until the human places a mark on an empty cell.
	RequestHumanMove(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Move, error)
	// AnnounceOutcome shows the result of a finished match.
	AnnounceOutcome(ctx context.Context, outcome game.Outcome) error
}

package player

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
)

// Kind tags the two player variants.
type Kind string

const (
	KindHuman    Kind = "human"
	KindComputer Kind = "computer"
)

// Player produces a move for the given mark on the current board.
// The returned move must point at an empty cell.
type Player interface {
	Kind() Kind
	TakeTurn(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Move, error)
}

// InputSource abstracts the terminal input used by human players. It owns
// its own retry loop and only returns empty, in-range cells.
type InputSource interface {
	RequestHumanMove(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Move, error)
}

// Human is a player driven by an InputSource.
type Human struct {
	input InputSource
}

// NewHuman creates a human player reading moves from input.
func NewHuman(input InputSource) *Human {
	return &Human{input: input}
}

func (h *Human) Kind() Kind { return KindHuman }

// TakeTurn blocks until the input source produces a move.
func (h *Human) TakeTurn(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Move, error) {
	return h.input.RequestHumanMove(ctx, board, mark)
}

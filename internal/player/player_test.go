package player

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/apperror"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	moves []game.Move
	marks []game.PlayerMark
}

func (s *scriptedInput) RequestHumanMove(_ context.Context, _ *game.Board, mark game.PlayerMark) (game.Move, error) {
	s.marks = append(s.marks, mark)
	if len(s.moves) == 0 {
		return game.Move{}, apperror.ErrQuit
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func TestHuman_TakeTurn(t *testing.T) {
	input := &scriptedInput{moves: []game.Move{{Row: 2, Col: 1}}}
	h := NewHuman(input)

	assert.Equal(t, KindHuman, h.Kind())

	move, err := h.TakeTurn(context.Background(), game.NewBoard(), game.PlayerO)
	require.NoError(t, err)
	assert.Equal(t, game.Move{Row: 2, Col: 1}, move)
	assert.Equal(t, []game.PlayerMark{game.PlayerO}, input.marks)

	_, err = h.TakeTurn(context.Background(), game.NewBoard(), game.PlayerO)
	assert.ErrorIs(t, err, apperror.ErrQuit)
}

package match

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/apperror"
	"ctchen222/Tic-Tac-Toe-Term/internal/bot"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
	"ctchen222/Tic-Tac-Toe-Term/internal/player"
	"errors"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	spans   = tracetest.NewSpanRecorder()
	metrics = sdkmetric.NewManualReader()
)

func TestMain(m *testing.M) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)))
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(metrics)))
	os.Exit(m.Run())
}

// scripted plays a fixed list of moves and then fails.
type scripted struct {
	moves []game.Move
}

func (s *scripted) Kind() player.Kind { return player.KindHuman }

func (s *scripted) TakeTurn(_ context.Context, _ *game.Board, _ game.PlayerMark) (game.Move, error) {
	if len(s.moves) == 0 {
		return game.Move{}, apperror.ErrQuit
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

type recorder struct {
	frames []string
}

func (r *recorder) Render(board *game.Board) {
	r.frames = append(r.frames, board.String())
}

func computer() player.Player {
	return bot.NewComputer(bot.NewSelector(bot.Hard, rand.New(rand.NewPCG(1, 2))))
}

func counterTotal(t *testing.T, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, metrics.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestMatch_ComputerVsComputer(t *testing.T) {
	// Given: two deterministic bots on a dirty board
	board := game.NewBoard()
	board.Set(0, 0, game.PlayerO)
	r := &recorder{}
	matchesBefore := counterTotal(t, "tictactoe.matches")

	m := New("cvc", board, computer(), computer(), WithRenderer(r))
	assert.Equal(t, game.NumCells, board.Remaining(), "New should reset the board")
	assert.Equal(t, AwaitingMove, m.State())
	assert.Equal(t, game.PlayerX, m.ActiveMark())

	// When: the match runs to completion
	outcome, err := m.Run(context.Background())

	// Then: X opens in the center and the perfect-priority bots draw in nine moves
	require.NoError(t, err)
	assert.Equal(t, game.Outcome{Result: game.Tie}, outcome)
	assert.Equal(t, Finished, m.State())
	assert.Equal(t, 9, m.Moves())
	assert.LessOrEqual(t, m.Moves(), game.NumCells)
	require.Len(t, r.frames, 10)
	assert.Equal(t, "___/___/___", r.frames[0])
	assert.Equal(t, "___/_X_/___", r.frames[1])
	assert.Equal(t, 0, board.Remaining())
	assert.Equal(t, matchesBefore+1, counterTotal(t, "tictactoe.matches"))
}

func TestMatch_HumanWins(t *testing.T) {
	human := &scripted{moves: []game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}
	other := &scripted{moves: []game.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}

	m := New("human-wins", game.NewBoard(), human, other)
	outcome, err := m.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, game.Outcome{Result: game.Win, Winner: game.PlayerX}, outcome)
	assert.Equal(t, 5, m.Moves())
	assert.Equal(t, 4, m.Board().Remaining())

	var found bool
	for _, s := range spans.Ended() {
		if s.Name() != "match.Run" {
			continue
		}
		for _, kv := range s.Attributes() {
			if kv == attribute.String("match.id", "human-wins") {
				found = true
				assert.Contains(t, s.Attributes(), attribute.String("match.winner", "X"))
			}
		}
	}
	assert.True(t, found, "match.Run span not recorded")
}

func TestMatch_Step(t *testing.T) {
	t.Run("Occupied cell is rejected without touching the board", func(t *testing.T) {
		first := &scripted{moves: []game.Move{{Row: 1, Col: 1}}}
		second := &scripted{moves: []game.Move{{Row: 1, Col: 1}}}
		m := New("occupied", game.NewBoard(), first, second)

		outcome, err := m.Step(context.Background())
		require.NoError(t, err)
		assert.Equal(t, game.InProgress, outcome)
		assert.Equal(t, game.PlayerO, m.ActiveMark())

		_, err = m.Step(context.Background())
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, game.NumCells-1, m.Board().Remaining())
		assert.Equal(t, game.PlayerO, m.ActiveMark())
		assert.Equal(t, AwaitingMove, m.State())
	})

	t.Run("Out of range move is a caller error", func(t *testing.T) {
		m := New("range", game.NewBoard(), &scripted{moves: []game.Move{{Row: 3, Col: 0}}}, computer())

		_, err := m.Step(context.Background())

		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, game.NumCells, m.Board().Remaining())
	})

	t.Run("Player error is propagated", func(t *testing.T) {
		m := New("quit", game.NewBoard(), &scripted{}, computer())

		_, err := m.Run(context.Background())

		assert.True(t, errors.Is(err, apperror.ErrQuit))
		assert.NotEqual(t, Finished, m.State())
	})

	t.Run("Stepping a finished match fails", func(t *testing.T) {
		m := New("finished", game.NewBoard(), computer(), computer())
		_, err := m.Run(context.Background())
		require.NoError(t, err)

		_, err = m.Step(context.Background())
		assert.ErrorIs(t, err, apperror.ErrMatchFinished)
	})
}

func TestMatch_BlocksHumanThreat(t *testing.T) {
	// X takes two corners of the top row; the bot (O) must block at (0, 1).
	human := &scripted{moves: []game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}}}
	m := New("block", game.NewBoard(), human, computer())

	for i := 0; i < 3; i++ {
		_, err := m.Step(context.Background())
		require.NoError(t, err)
	}
	require.Equal(t, game.PlayerO, m.ActiveMark())

	_, err := m.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.PlayerO, m.Board().Get(0, 1))
}

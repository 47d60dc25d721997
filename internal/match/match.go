package match

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/apperror"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
	"ctchen222/Tic-Tac-Toe-Term/internal/player"
	"ctchen222/Tic-Tac-Toe-Term/internal/validator"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("match")
	meter  = otel.Meter("match")

	moveCounter  = mustCounter("tictactoe.moves", "Moves applied, by player kind")
	matchCounter = mustCounter("tictactoe.matches", "Finished matches, by outcome")
)

func mustCounter(name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		panic(fmt.Errorf("failed to create counter %s: %w", name, err))
	}
	return c
}

// State is the turn engine's position in its cycle.
type State int

const (
	AwaitingMove State = iota
	Evaluating
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingMove:
		return "awaiting_move"
	case Evaluating:
		return "evaluating"
	default:
		return "finished"
	}
}

// Renderer redraws the board after every move.
type Renderer interface {
	Render(board *game.Board)
}

// Match drives a single game between two players. X always moves first.
type Match struct {
	ID       string
	board    *game.Board
	players  [2]player.Player
	marks    [2]game.PlayerMark
	active   int
	state    State
	outcome  game.Outcome
	moves    int
	renderer Renderer
}

// Option configures a Match.
type Option func(*Match)

// WithRenderer sets the renderer called after every move.
func WithRenderer(r Renderer) Option {
	return func(m *Match) {
		m.renderer = r
	}
}

// New resets board and sets up a match where first plays X and second plays O.
func New(id string, board *game.Board, first, second player.Player, opts ...Option) *Match {
	board.Reset()
	m := &Match{
		ID:      id,
		board:   board,
		players: [2]player.Player{first, second},
		marks:   [2]game.PlayerMark{game.PlayerX, game.PlayerO},
		state:   AwaitingMove,
		outcome: game.InProgress,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Match) State() State { return m.state }

func (m *Match) Outcome() game.Outcome { return m.outcome }

func (m *Match) Moves() int { return m.moves }

func (m *Match) Board() *game.Board { return m.board }

// ActiveMark returns the mark of the player whose turn it is.
func (m *Match) ActiveMark() game.PlayerMark { return m.marks[m.active] }

// Run plays the match to the end and returns its outcome.
func (m *Match) Run(ctx context.Context) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "match.Run", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("player.x", string(m.players[0].Kind())),
		attribute.String("player.o", string(m.players[1].Kind())),
	))
	defer span.End()

	slog.InfoContext(ctx, "Match started", "match.id", m.ID,
		"player.x", m.players[0].Kind(), "player.o", m.players[1].Kind())
	m.render()

	for m.state != Finished {
		if _, err := m.Step(ctx); err != nil {
			slog.ErrorContext(ctx, "match aborted", "match.id", m.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Match aborted")
			return game.InProgress, err
		}
	}

	span.SetAttributes(
		attribute.String("match.outcome", m.outcome.Result.String()),
		attribute.String("match.winner", string(m.outcome.Winner)),
		attribute.Int("match.moves", m.moves),
	)
	matchCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", m.outcome.Result.String()),
		attribute.String("winner", string(m.outcome.Winner)),
	))
	slog.InfoContext(ctx, "Match finished", "match.id", m.ID, "outcome", m.outcome.String(), "moves", m.moves)

	return m.outcome, nil
}

// Step asks the active player for one move, applies it and evaluates the
// board for the mark that just moved.
func (m *Match) Step(ctx context.Context) (game.Outcome, error) {
	if m.state == Finished {
		return m.outcome, apperror.ErrMatchFinished
	}

	mark := m.marks[m.active]
	p := m.players[m.active]

	ctx, span := tracer.Start(ctx, "match.move", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("player.mark", string(mark)),
		attribute.String("player.kind", string(p.Kind())),
		attribute.Int("match.move_number", m.moves+1),
	))
	defer span.End()

	move, err := p.TakeTurn(ctx, m.board, mark)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Player did not produce a move")
		return game.InProgress, fmt.Errorf("%s player %s: %w", p.Kind(), mark, err)
	}
	span.SetAttributes(attribute.Int("move.row", move.Row), attribute.Int("move.col", move.Col))

	if err := m.apply(move, mark); err != nil {
		slog.WarnContext(ctx, "invalid move from player", "match.id", m.ID, "player.mark", mark, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		return game.InProgress, fmt.Errorf("%s player %s: %w", p.Kind(), mark, err)
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	moveCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("player.kind", string(p.Kind()))))

	m.state = Evaluating
	outcome := game.OutcomeOf(m.board, mark)
	m.render()

	slog.DebugContext(ctx, "Move applied", "match.id", m.ID, "player.mark", mark,
		"move.row", move.Row, "move.col", move.Col, "board", m.board.String())

	if outcome.Finished() {
		m.state = Finished
		m.outcome = outcome
		return outcome, nil
	}

	m.active = 1 - m.active
	m.state = AwaitingMove
	return outcome, nil
}

func (m *Match) apply(move game.Move, mark game.PlayerMark) error {
	if err := validator.Struct(move); err != nil {
		return fmt.Errorf("%w %v: %w", apperror.ErrInvalidMove, move, err)
	}
	if !m.board.IsEmpty(move.Row, move.Col) {
		return fmt.Errorf("%w: %v", apperror.ErrCellOccupied, move)
	}

	m.board.Set(move.Row, move.Col, mark)
	m.moves++
	return nil
}

func (m *Match) render() {
	if m.renderer != nil {
		m.renderer.Render(m.board)
	}
}

package session

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/apperror"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
	"ctchen222/Tic-Tac-Toe-Term/internal/match"
	"ctchen222/Tic-Tac-Toe-Term/internal/player"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("session")

// ComputerFactory builds a fresh computer player for a match.
type ComputerFactory func() player.Player

// Session runs the menu -> side selection -> match -> result loop.
type Session struct {
	frontend    Frontend
	newComputer ComputerFactory
	rng         *rand.Rand
	board       *game.Board
	stats       Stats
}

// New creates a session. rng is used to resolve a random side choice.
func New(frontend Frontend, newComputer ComputerFactory, rng *rand.Rand) *Session {
	return &Session{
		frontend:    frontend,
		newComputer: newComputer,
		rng:         rng,
		board:       game.NewBoard(),
	}
}

// Stats returns the results so far.
func (s *Session) Stats() Stats {
	return s.stats
}

// Run loops until the player quits from the menu or in the middle of a match.
func (s *Session) Run(ctx context.Context) error {
	for {
		play, err := s.frontend.MainMenu(ctx, s.stats)
		if err != nil {
			return quitOrError("main menu", err)
		}
		if !play {
			slog.InfoContext(ctx, "Player left from the main menu", "matches.played", s.stats.Played)
			return nil
		}

		side, err := s.frontend.PickSide(ctx)
		if err != nil {
			return quitOrError("side selection", err)
		}

		outcome, err := s.PlayMatch(ctx, side)
		if err != nil {
			return quitOrError("match", err)
		}

		if err := s.frontend.AnnounceOutcome(ctx, outcome); err != nil {
			return quitOrError("outcome", err)
		}
	}
}

// PlayMatch runs one match for the chosen side and records its outcome.
func (s *Session) PlayMatch(ctx context.Context, side Side) (game.Outcome, error) {
	id := uuid.New().String()
	ctx, span := tracer.Start(ctx, "session.PlayMatch", trace.WithAttributes(
		attribute.String("match.id", id),
		attribute.String("session.side", side.String()),
	))
	defer span.End()

	side = s.resolveSide(side)
	x, o := s.players(side)
	slog.InfoContext(ctx, "Side selected", "match.id", id, "session.side", side)

	m := match.New(id, s.board, x, o, match.WithRenderer(s.frontend))
	outcome, err := m.Run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Match did not finish")
		return outcome, err
	}

	s.record(outcome)
	return outcome, nil
}

func (s *Session) resolveSide(side Side) Side {
	if side != SideRandom {
		return side
	}
	if s.rng.IntN(2) == 0 {
		return SideX
	}
	return SideO
}

// players returns the X and O players for a side. X always moves first.
func (s *Session) players(side Side) (player.Player, player.Player) {
	switch side {
	case SideX:
		return player.NewHuman(s.frontend), s.newComputer()
	case SideO:
		return s.newComputer(), player.NewHuman(s.frontend)
	default:
		return s.newComputer(), s.newComputer()
	}
}

func (s *Session) record(outcome game.Outcome) {
	s.stats.Played++
	switch {
	case outcome.Result == game.Tie:
		s.stats.Ties++
	case outcome.Winner == game.PlayerX:
		s.stats.XWins++
	case outcome.Winner == game.PlayerO:
		s.stats.OWins++
	}
}

func quitOrError(stage string, err error) error {
	if errors.Is(err, apperror.ErrQuit) {
		return nil
	}
	return fmt.Errorf("%s: %w", stage, err)
}

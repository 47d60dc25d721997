package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
	"ctchen222/Tic-Tac-Toe-Term/internal/player"
	"log/slog"
	"time"
)

// Computer is a player whose moves come from a Selector.
type Computer struct {
	selector   *Selector
	thinkDelay time.Duration
}

// ComputerOption configures a Computer.
type ComputerOption func(*Computer)

// WithThinkDelay makes the bot pause before each move so a human can follow
// the game on screen.
func WithThinkDelay(d time.Duration) ComputerOption {
	return func(c *Computer) {
		c.thinkDelay = d
	}
}

// NewComputer creates a computer player backed by selector.
func NewComputer(selector *Selector, opts ...ComputerOption) *Computer {
	c := &Computer{selector: selector}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Computer) Kind() player.Kind { return player.KindComputer }

// TakeTurn waits for the think delay and then runs the selector.
func (c *Computer) TakeTurn(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Move, error) {
	slog.DebugContext(ctx, "Bot is thinking...", "player.mark", mark, "bot.difficulty", c.selector.Difficulty())

	if c.thinkDelay > 0 {
		timer := time.NewTimer(c.thinkDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return game.Move{}, ctx.Err()
		case <-timer.C:
		}
	}

	decision := c.selector.Decide(board, mark)
	slog.DebugContext(ctx, "Bot chose move",
		"player.mark", mark,
		"move.row", decision.Move.Row,
		"move.col", decision.Move.Col,
		"bot.reason", decision.Reason,
	)
	return decision.Move, nil
}

package bot

import (
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
	"fmt"
	"math/rand/v2"
)

// Difficulty selects how the bot picks its moves.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Reason records which rule produced a decision.
type Reason string

const (
	ReasonWin    Reason = "win"
	ReasonBlock  Reason = "block"
	ReasonCenter Reason = "center"
	ReasonCorner Reason = "corner"
	ReasonFirst  Reason = "first_empty"
	ReasonRandom Reason = "random"
	ReasonFumble Reason = "fumble"
)

// Fumble holds the chances of deliberately playing a worse move.
// MissChance replaces a winning or blocking move with a random empty cell,
// CenterSkipChance passes over a free center.
type Fumble struct {
	MissChance       float64 `validate:"probability"`
	CenterSkipChance float64 `validate:"probability"`
}

// DefaultFumble returns the fumble chances used for a difficulty.
func DefaultFumble(d Difficulty) Fumble {
	if d == Medium {
		return Fumble{MissChance: 0.1, CenterSkipChance: 0.3}
	}
	return Fumble{}
}

var corners = [4]game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}

var center = game.Move{Row: game.Size / 2, Col: game.Size / 2}

// Decision is a chosen move together with the rule that chose it.
type Decision struct {
	Move   game.Move
	Reason Reason
}

// Selector picks moves for the computer player. It keeps no state between
// calls apart from the shared random source.
type Selector struct {
	difficulty Difficulty
	fumble     Fumble
	rng        *rand.Rand
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithFumble overrides the difficulty's default fumble chances.
func WithFumble(f Fumble) SelectorOption {
	return func(s *Selector) {
		s.fumble = f
	}
}

// NewSelector creates a selector. A nil rng falls back to the global source.
func NewSelector(difficulty Difficulty, rng *rand.Rand, opts ...SelectorOption) *Selector {
	s := &Selector{
		difficulty: difficulty,
		fumble:     DefaultFumble(difficulty),
		rng:        rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Difficulty returns the configured difficulty.
func (s *Selector) Difficulty() Difficulty {
	return s.difficulty
}

// Select returns the next move for mark.
func (s *Selector) Select(board *game.Board, mark game.PlayerMark) game.Move {
	return s.Decide(board, mark).Move
}

// Decide runs the heuristic for mark. The board is never modified. Calling
// it on a full board is a programming error.
func (s *Selector) Decide(board *game.Board, mark game.PlayerMark) Decision {
	if board.Remaining() == 0 {
		panic(fmt.Sprintf("bot: no empty cell for %s on %v", mark, board))
	}

	if s.difficulty == Easy {
		return Decision{Move: s.randomMove(board), Reason: ReasonRandom}
	}

	// 1. Win: take a cell that completes a line for the bot
	if move, ok := findWinningMove(board, mark); ok {
		if s.chance(s.fumble.MissChance) {
			return Decision{Move: s.randomMove(board), Reason: ReasonFumble}
		}
		return Decision{Move: move, Reason: ReasonWin}
	}

	// 2. Block: take the cell that would complete a line for the opponent
	if move, ok := findWinningMove(board, game.Opponent(mark)); ok {
		if s.chance(s.fumble.MissChance) {
			return Decision{Move: s.randomMove(board), Reason: ReasonFumble}
		}
		return Decision{Move: move, Reason: ReasonBlock}
	}

	// 3. Center
	if board.IsEmpty(center.Row, center.Col) && !s.chance(s.fumble.CenterSkipChance) {
		return Decision{Move: center, Reason: ReasonCenter}
	}

	// 4. Corners, in fixed order
	for _, corner := range corners {
		if board.IsEmpty(corner.Row, corner.Col) {
			return Decision{Move: corner, Reason: ReasonCorner}
		}
	}

	// 5. First empty cell
	return Decision{Move: board.EmptyCells()[0], Reason: ReasonFirst}
}

// findWinningMove tries mark on every empty cell, in row-major order, on a
// scratch copy of the board and returns the first placement that wins.
func findWinningMove(board *game.Board, mark game.PlayerMark) (game.Move, bool) {
	for _, move := range board.EmptyCells() {
		scratch := *board
		scratch.Set(move.Row, move.Col, mark)
		if game.Evaluate(&scratch, mark) == game.Win {
			return move, true
		}
	}
	return game.Move{}, false
}

func (s *Selector) randomMove(board *game.Board) game.Move {
	empty := board.EmptyCells()
	return empty[s.intN(len(empty))]
}

// chance reports true with probability p. p == 0 never draws from the source.
func (s *Selector) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if s.rng == nil {
		return rand.Float64() < p
	}
	return s.rng.Float64() < p
}

func (s *Selector) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

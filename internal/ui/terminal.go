// Package ui draws the game in a terminal with tcell and turns key presses
// into menu choices and moves.
package ui

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/apperror"
	"ctchen222/Tic-Tac-Toe-Term/internal/game"
	"ctchen222/Tic-Tac-Toe-Term/internal/session"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ErrScreenClosed is returned when the screen stops delivering events.
var ErrScreenClosed = errors.New("screen closed")

var (
	xStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Background(tcell.ColorBlack)
	oStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	bgStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
)

// Board geometry: a 9x9 block of grid lines with marks on the even offsets.
const (
	gridWidth  = 4 + 2*game.Size - 1
	gridHeight = 2*game.Size + 3
)

// Terminal is the tcell front-end. It is not safe for concurrent use.
type Terminal struct {
	screen     tcell.Screen
	rng        *rand.Rand
	background bool
	closeOnce  sync.Once
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithBackground toggles the random X/O background.
func WithBackground(enabled bool) Option {
	return func(t *Terminal) {
		t.background = enabled
	}
}

// Open initialises the real terminal.
func Open(rng *rand.Rand, opts ...Option) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise screen: %w", err)
	}
	return New(screen, rng, opts...), nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen, rng *rand.Rand, opts ...Option) *Terminal {
	t := &Terminal{
		screen:     screen,
		rng:        rng,
		background: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	screen.SetStyle(bgStyle)
	screen.HideCursor()
	return t
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(t.screen.Fini)
}

// MainMenu implements session.Frontend.
func (t *Terminal) MainMenu(ctx context.Context, stats session.Stats) (bool, error) {
	lines := []string{
		"                          ",
		" TERMINAL TIC TAC TOE     ",
		"                          ",
		"    (P)lay or (Q)uit?     ",
		"                          ",
	}
	if stats.Played > 0 {
		lines = append(lines,
			fmt.Sprintf(" X: %-3d O: %-3d Ties: %-3d ", stats.XWins, stats.OWins, stats.Ties),
			"                          ",
		)
	}

	var errLine int
	draw := func() {
		t.paintBackground()
		_, h := t.screen.Size()
		y := h/2 - 2
		for _, line := range lines {
			t.centerPrint(y, line, bgStyle)
			y++
		}
		errLine = y
		t.screen.Show()
	}
	draw()

	for {
		ev, err := t.nextKey(ctx, draw)
		if err != nil {
			return false, err
		}
		switch keyRune(ev) {
		case 'P':
			return true, nil
		case 'Q':
			return false, nil
		default:
			t.centerPrint(errLine, " Invalid Input! Press P or Q... ", bgStyle)
			t.screen.Show()
		}
	}
}

// PickSide implements session.Frontend.
func (t *Terminal) PickSide(ctx context.Context) (session.Side, error) {
	var msgLine int
	draw := func() {
		t.paintBackground()
		_, h := t.screen.Size()
		y := h/2 - 1
		t.centerPrint(y, "                                                         ", bgStyle)
		t.centerPrint(y+1, " Press 'X' for X, 'O' for O, 'R' for random, 'A' to watch ", bgStyle)
		t.centerPrint(y+2, "                                                         ", bgStyle)
		msgLine = y + 3
		t.screen.Show()
	}
	draw()

	for {
		ev, err := t.nextKey(ctx, draw)
		if err != nil {
			return 0, err
		}

		var side session.Side
		switch keyRune(ev) {
		case 'X':
			side = session.SideX
		case 'O':
			side = session.SideO
		case 'R':
			side = session.SideRandom
		case 'A':
			return session.SideAuto, nil
		default:
			t.centerPrint(msgLine, "      Invalid input! Try again...     ", bgStyle)
			t.screen.Show()
			continue
		}

		t.centerPrint(msgLine, " Good choice! Any key to continue... ", bgStyle)
		t.screen.Show()
		if _, err := t.nextKey(ctx, draw); err != nil {
			return 0, err
		}
		return side, nil
	}
}

// Render implements match.Renderer.
func (t *Terminal) Render(board *game.Board) {
	t.drawBoard(board, nil)
	t.screen.Show()
}

// RequestHumanMove moves a cursor over the board with the arrow keys and
// places the mark with P, Enter or Space. Occupied cells are refused here,
// so the returned move is always playable.
func (t *Terminal) RequestHumanMove(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Move, error) {
	cursor := game.Move{}
	hint := fmt.Sprintf(" %s: use arrow keys to move and 'P' to place! ", mark)

	draw := func() {
		t.drawBoard(board, &cursor)
		t.infoPrint(hint)
		t.screen.Show()
	}
	draw()
	defer t.screen.HideCursor()

	for {
		ev, err := t.nextKey(ctx, draw)
		if err != nil {
			return game.Move{}, err
		}

		var msg string
		switch ev.Key() {
		case tcell.KeyUp:
			msg = t.step(&cursor.Row, -1, hint)
		case tcell.KeyDown:
			msg = t.step(&cursor.Row, 1, hint)
		case tcell.KeyLeft:
			msg = t.step(&cursor.Col, -1, hint)
		case tcell.KeyRight:
			msg = t.step(&cursor.Col, 1, hint)
		case tcell.KeyEnter:
			if board.IsEmpty(cursor.Row, cursor.Col) {
				return cursor, nil
			}
			msg = "              Space already occupied!            "
		default:
			switch keyRune(ev) {
			case 'P', ' ':
				if board.IsEmpty(cursor.Row, cursor.Col) {
					return cursor, nil
				}
				msg = "              Space already occupied!            "
			default:
				msg = "                 Invalid input!                  "
			}
		}

		t.drawBoard(board, &cursor)
		t.infoPrint(msg)
		t.screen.Show()
	}
}

// AnnounceOutcome shows the final board, waits for a key, then shows the
// victory splash and waits again.
func (t *Terminal) AnnounceOutcome(ctx context.Context, outcome game.Outcome) error {
	gameOver := func() {
		t.infoPrint(" Game Over! Any key to continue... ")
		t.screen.Show()
	}
	gameOver()
	if _, err := t.nextKey(ctx, gameOver); err != nil {
		return err
	}

	result := "             A tie game!           "
	if outcome.Result == game.Win {
		result = fmt.Sprintf("              %s Wins!              ", outcome.Winner)
	}
	splash := func() {
		t.paintBackground()
		_, h := t.screen.Size()
		y := h/2 - 1
		t.centerPrint(y, "                                   ", bgStyle)
		t.centerPrint(y+1, result, bgStyle)
		t.centerPrint(y+2, "                                   ", bgStyle)
		t.centerPrint(y+3, "         any key to continue...    ", bgStyle)
		t.screen.Show()
	}
	splash()
	_, err := t.nextKey(ctx, splash)
	return err
}

func (t *Terminal) step(coord *int, delta int, hint string) string {
	next := *coord + delta
	if next < game.BorderMin || next > game.BorderMax {
		return "             You can't move that way!            "
	}
	*coord = next
	return hint
}

// nextKey blocks for the next key press. Resizes trigger redraw. Escape and
// Ctrl-C quit.
func (t *Terminal) nextKey(ctx context.Context, redraw func()) (*tcell.EventKey, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil, ErrScreenClosed
		case *tcell.EventResize:
			t.screen.Sync()
			redraw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil, apperror.ErrQuit
			}
			return ev, nil
		}
	}
}

func keyRune(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return unicode.ToUpper(ev.Rune())
}

// origin returns the top-left corner of the board grid.
func (t *Terminal) origin() (int, int) {
	w, h := t.screen.Size()
	return (w - gridWidth) / 2, h/2 - gridHeight/2
}

// cellPos maps a board coordinate to its screen position.
func (t *Terminal) cellPos(row, col int) (int, int) {
	x0, y0 := t.origin()
	return x0 + 2 + 2*col, y0 + 2 + 2*row
}

func (t *Terminal) drawBoard(board *game.Board, cursor *game.Move) {
	t.paintBackground()

	x0, y0 := t.origin()
	for dy := 0; dy < gridHeight; dy++ {
		for dx := 0; dx < gridWidth; dx++ {
			r := ' '
			switch {
			case dy == 0 || dy == gridHeight-1 || dx == 0 || dx == gridWidth-1:
			case dy%2 == 1:
				r = '-'
			case dx%2 == 1:
				r = '|'
			}
			t.screen.SetContent(x0+dx, y0+dy, r, nil, bgStyle)
		}
	}

	for row := game.BorderMin; row <= game.BorderMax; row++ {
		for col := game.BorderMin; col <= game.BorderMax; col++ {
			x, y := t.cellPos(row, col)
			mark := board.Get(row, col)
			style := markStyle(mark)
			if cursor != nil && cursor.Row == row && cursor.Col == col {
				style = style.Reverse(true)
			}
			r := ' '
			if mark != game.None {
				r = rune(mark[0])
			}
			t.screen.SetContent(x, y, r, nil, style)
		}
	}

	if cursor != nil {
		t.screen.ShowCursor(t.cellPos(cursor.Row, cursor.Col))
	}
}

func markStyle(mark game.PlayerMark) tcell.Style {
	switch mark {
	case game.PlayerX:
		return xStyle
	case game.PlayerO:
		return oStyle
	default:
		return bgStyle
	}
}

// infoPrint writes a message on the line below the board.
func (t *Terminal) infoPrint(msg string) {
	_, y0 := t.origin()
	t.centerPrint(y0+gridHeight+1, msg, bgStyle)
}

// paintBackground fills the screen with random coloured marks.
func (t *Terminal) paintBackground() {
	t.screen.Clear()
	if !t.background {
		t.screen.Fill(' ', bgStyle)
		return
	}

	runes := [3]rune{'X', 'O', ' '}
	styles := [3]tcell.Style{xStyle, oStyle, bgStyle}
	w, h := t.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := t.rng.IntN(len(runes))
			t.screen.SetContent(x, y, runes[n], nil, styles[n])
		}
	}
}

// centerPrint writes msg centred on line y.
func (t *Terminal) centerPrint(y int, msg string, style tcell.Style) {
	w, _ := t.screen.Size()
	runes := []rune(msg)
	x := (w - len(runes)) / 2
	for i, r := range runes {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

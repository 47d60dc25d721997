package game

import (
	"fmt"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	Size     = BorderMax + 1
	NumCells = Size * Size
)

// Opponent returns the other player's mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Move is a cell coordinate chosen by a player.
type Move struct {
	Row int `validate:"min=0,max=2"`
	Col int `validate:"min=0,max=2"`
}

// Index returns the row-major cell index of the move.
func (m Move) Index() int {
	return m.Row*Size + m.Col
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// MoveFromIndex converts a row-major cell index back into a Move.
func MoveFromIndex(i int) Move {
	return Move{Row: i / Size, Col: i % Size}
}

// Board is the 3x3 grid. Cells are stored row-major and remaining always
// equals the number of empty cells.
type Board struct {
	cells     [NumCells]PlayerMark
	remaining int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// FromCells builds a board from a row-major layout, keeping remaining in
// step with the empty cells.
func FromCells(cells [NumCells]PlayerMark) *Board {
	b := NewBoard()
	for i, cell := range cells {
		if cell != None {
			m := MoveFromIndex(i)
			b.Set(m.Row, m.Col, cell)
		}
	}
	return b
}

// Reset clears every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = None
	}
	b.remaining = NumCells
}

// Get returns the mark at row, col. Coordinates outside the board panic.
func (b *Board) Get(row, col int) PlayerMark {
	return b.cells[index(row, col)]
}

// At returns the mark at a row-major index.
func (b *Board) At(i int) PlayerMark {
	return b.cells[i]
}

// Set writes mark into an empty cell and returns the previous value.
// Writing None or writing over an occupied cell is a programming error.
func (b *Board) Set(row, col int, mark PlayerMark) PlayerMark {
	i := index(row, col)
	if mark != PlayerX && mark != PlayerO {
		panic(fmt.Sprintf("game: invalid mark %q", mark))
	}
	prev := b.cells[i]
	if prev != None {
		panic(fmt.Sprintf("game: cell (%d, %d) already holds %s", row, col, prev))
	}
	b.cells[i] = mark
	b.remaining--
	return prev
}

// Remaining returns the number of empty cells.
func (b *Board) Remaining() int {
	return b.remaining
}

// IsEmpty reports whether the cell at row, col is free.
func (b *Board) IsEmpty(row, col int) bool {
	return b.Get(row, col) == None
}

// EmptyCells lists the free cells in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, b.remaining)
	for i, cell := range b.cells {
		if cell == None {
			moves = append(moves, MoveFromIndex(i))
		}
	}
	return moves
}

// Cells returns a copy of the grid for renderers.
func (b *Board) Cells() [Size][Size]PlayerMark {
	var grid [Size][Size]PlayerMark
	for i, cell := range b.cells {
		grid[i/Size][i%Size] = cell
	}
	return grid
}

// String renders the board on a single line, e.g. "XO_/_X_/__O".
func (b *Board) String() string {
	var sb strings.Builder
	for i, cell := range b.cells {
		if i > 0 && i%Size == 0 {
			sb.WriteByte('/')
		}
		if cell == None {
			sb.WriteByte('_')
		} else {
			sb.WriteString(string(cell))
		}
	}
	return sb.String()
}

func index(row, col int) int {
	if row < BorderMin || row > BorderMax || col < BorderMin || col > BorderMax {
		panic(fmt.Sprintf("game: coordinate (%d, %d) out of range", row, col))
	}
	return row*Size + col
}

package game

// Result is what Evaluate reports for the mark that just moved.
type Result int

const (
	NoResult Result = iota
	Win
	Tie
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "in_progress"
	}
}

// Outcome is the state of a match after a move.
type Outcome struct {
	Result Result
	Winner PlayerMark
}

// InProgress is the outcome of a match that has not finished.
var InProgress = Outcome{Result: NoResult}

func (o Outcome) Finished() bool {
	return o.Result != NoResult
}

func (o Outcome) String() string {
	switch o.Result {
	case Win:
		return string(o.Winner) + " wins"
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

// Lines holds the eight winning index triples: both diagonals, then the
// rows, then the columns.
var Lines = [8][3]int{
	{0, 4, 8},
	{2, 4, 6},
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
}

// Evaluate checks the board from the point of view of the mark that just
// moved. It never looks for the other mark's lines.
func Evaluate(b *Board, mark PlayerMark) Result {
	for _, line := range Lines {
		if b.cells[line[0]] == mark && b.cells[line[1]] == mark && b.cells[line[2]] == mark {
			return Win
		}
	}

	if b.remaining == 0 {
		return Tie
	}

	return NoResult
}

// OutcomeOf wraps Evaluate into an Outcome for mark.
func OutcomeOf(b *Board, mark PlayerMark) Outcome {
	switch Evaluate(b, mark) {
	case Win:
		return Outcome{Result: Win, Winner: mark}
	case Tie:
		return Outcome{Result: Tie}
	default:
		return InProgress
	}
}

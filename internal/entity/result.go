package entity

// ResultKind tells whether a board is won, drawn or still in play.
type ResultKind int

const (
	ResultContinue ResultKind = iota
	ResultWin
	ResultDraw
)

func (that ResultKind) String() string {
	switch that {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "continue"
	}
}

// Result is the classification of a board. Winner is set only for ResultWin.
type Result struct {
	Kind   ResultKind
	Winner Mark
}

func Continue() Result {
	return Result{Kind: ResultContinue}
}

func Draw() Result {
	return Result{Kind: ResultDraw}
}

func Winner(mark Mark) Result {
	return Result{Kind: ResultWin, Winner: mark}
}

func (that Result) IsTerminal() bool {
	return that.Kind != ResultContinue
}

// WinLines holds the 8 winning lines: rows, then columns, then the two diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate - classifies the board. The first fully marked line in WinLines order
// decides the winner; otherwise a full board is a draw.
func Evaluate(board Board) Result {
	for _, line := range WinLines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]

		if mark, ok := a.Mark(); ok && a == b && b == c {
			return Winner(mark)
		}
	}

	// the game continues until all the cells are full
	if !board.IsFull() {
		return Continue()
	}

	return Draw()
}

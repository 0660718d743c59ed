package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const BoardSize = 3

const rowSeparator = "-+-+-"

// Move is a (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d %d", that.Row, that.Col)
}

// Board is a 3x3 grid of cells. It is a value: every update returns a new board
// and leaves the receiver untouched.
type Board [BoardSize][BoardSize]Cell

// NewBoard - returns a board with all cells empty.
func NewBoard() Board {
	return Board{}
}

func (that Board) Get(row, col int) (Cell, error) {
	if err := checkBounds(row, col); err != nil {
		return EmptyCell, err
	}

	return that[row][col], nil
}

// Set - overwrites the cell at (row, col) regardless of its content.
// Gameplay goes through ApplyMove, which adds the occupancy check.
func (that Board) Set(row, col int, mark Mark) (Board, error) {
	if err := checkBounds(row, col); err != nil {
		return that, err
	}

	if !mark.Valid() {
		return that, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(mark))
	}

	that[row][col] = CellOf(mark)

	return that, nil
}

// ApplyMove - places mark at (row, col) if the cell is inside the board and empty.
func (that Board) ApplyMove(row, col int, mark Mark) (Board, error) {
	cell, err := that.Get(row, col)
	if err != nil {
		return that, err
	}

	if !cell.IsEmpty() {
		return that, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	return that.Set(row, col, mark)
}

// ValidMoves - lists every empty cell in row-major order.
func (that Board) ValidMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col].IsEmpty() {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Result - classifies the board, see Evaluate.
func (that Board) Result() Result {
	return Evaluate(that)
}

// String renders the grid: cells joined by "|", rows by a separator line,
// empty cells as a blank space.
func (that Board) String() string {
	rows := make([]string, 0, BoardSize)
	for _, row := range that {
		cells := make([]string, 0, BoardSize)
		for _, cell := range row {
			if cell.IsEmpty() {
				cells = append(cells, " ")
				continue
			}
			cells = append(cells, string(cell))
		}
		rows = append(rows, strings.Join(cells, "|"))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func checkBounds(row, col int) error {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return nil
}

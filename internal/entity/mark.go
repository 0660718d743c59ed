package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the symbol a player places on the board.
type Mark string

const (
	X Mark = "X"
	O Mark = "O"
)

// Opposite returns the other player's mark.
func (that Mark) Opposite() Mark {
	if that == X {
		return O
	}
	return X
}

func (that Mark) Valid() bool {
	return that == X || that == O
}

func (that Mark) String() string {
	return string(that)
}

// ParseMark - reads a mark from user input, case-insensitive.
func ParseMark(input string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMark, input)
	}
}

// Cell is a single board position: empty or holding one mark.
type Cell string

const EmptyCell Cell = ""

// CellOf returns a cell occupied by mark.
func CellOf(mark Mark) Cell {
	return Cell(mark)
}

// Mark returns the mark held by the cell and whether the cell is occupied.
func (that Cell) Mark() (Mark, bool) {
	if that == EmptyCell {
		return "", false
	}
	return Mark(that), true
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

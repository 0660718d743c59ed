package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// ParseMove - reads "row col" from user input. Row and column may be separated
// by spaces and/or a comma. Range checks are left to the board.
func ParseMove(input string) (int, int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrInvalidInput, input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	return row, col, nil
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFrom(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, BoardSize)

	board := NewBoard()
	for row, line := range rows {
		require.Len(t, line, BoardSize)
		for col, r := range line {
			if r == '.' {
				continue
			}
			var err error
			board, err = board.Set(row, col, Mark(string(r)))
			require.NoError(t, err)
		}
	}

	return board
}

func TestEvaluate(t *testing.T) {
	t.Run("Empty board continues", func(t *testing.T) {
		assert.Equal(t, Continue(), Evaluate(NewBoard()))
	})

	t.Run("X on the top row wins", func(t *testing.T) {
		// Given: X on (0,0), (0,1), (0,2) and all else empty
		board := boardFrom(t, "XXX", "...", "...")

		// When: evaluating the board
		result := Evaluate(board)

		// Then: X is the winner
		assert.Equal(t, Winner(X), result)
		assert.True(t, result.IsTerminal())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := boardFrom(t, "XOX", "XOO", "OXX")

		for _, line := range WinLines {
			a := board[line[0].Row][line[0].Col]
			b := board[line[1].Row][line[1].Col]
			c := board[line[2].Row][line[2].Col]
			assert.False(t, a == b && b == c, "line %v is uniform", line)
		}

		assert.Equal(t, Draw(), Evaluate(board))
	})

	t.Run("Partially filled board without a line continues", func(t *testing.T) {
		board := boardFrom(t, "XO.", ".X.", "..O")

		assert.Equal(t, Continue(), board.Result())
	})

	t.Run("Full board with a line is a win, not a draw", func(t *testing.T) {
		board := boardFrom(t, "XOX", "OXO", "OXX")

		assert.Equal(t, Winner(X), Evaluate(board))
	})

	t.Run("First winning line in enumeration order decides", func(t *testing.T) {
		// Given: an unreachable board where O completes row 0 and X completes row 2
		board := boardFrom(t, "OOO", "...", "XXX")

		// Then: row 0 is scanned first
		assert.Equal(t, Winner(O), Evaluate(board))
	})
}

func TestEvaluate_EveryLine(t *testing.T) {
	for i, line := range WinLines {
		for _, mark := range []Mark{X, O} {
			// Given: a board where only this line is filled with mark
			board := NewBoard()
			for _, move := range line {
				var err error
				board, err = board.Set(move.Row, move.Col, mark)
				require.NoError(t, err)
			}

			// Then: mark wins
			assert.Equal(t, Winner(mark), Evaluate(board), "line %d", i)
		}
	}
}

func TestResultKind_String(t *testing.T) {
	assert.Equal(t, "continue", ResultContinue.String())
	assert.Equal(t, "win", ResultWin.String())
	assert.Equal(t, "draw", ResultDraw.String())
}

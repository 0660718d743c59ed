package tictactoe

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// RandomMove - picks one of the board's valid moves uniformly.
// It panics when the board has no valid moves.
func RandomMove(board entity.Board) entity.Move {
	return pickMove(board, rand.IntN)
}

// RandomMoveWith is RandomMove drawing from rng.
func RandomMoveWith(board entity.Board, rng *rand.Rand) entity.Move {
	return pickMove(board, rng.IntN)
}

func pickMove(board entity.Board, intN func(int) int) entity.Move {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		panic(fmt.Sprintf("tictactoe: random move requested on a board without moves:\n%s", board))
	}

	return moves[intN(len(moves))]
}

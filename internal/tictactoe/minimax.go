package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// BestMove - searches the whole remaining game tree and returns the best move for
// player together with its outcome. Victory is preferred over Tie over Defeat;
// among equal outcomes the first move in row-major order wins.
//
// The board must have at least one empty cell, otherwise BestMove panics.
func BestMove(board entity.Board, player entity.Mark) (entity.Move, Outcome) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		panic(fmt.Sprintf("tictactoe: best move requested on a board without moves:\n%s", board))
	}

	var victories, ties, defeats []entity.Move
	for _, move := range moves {
		switch scoreMove(board, move, player) {
		case Victory:
			victories = append(victories, move)
		case Tie:
			ties = append(ties, move)
		default:
			defeats = append(defeats, move)
		}
	}

	switch {
	case len(victories) > 0:
		return victories[0], Victory
	case len(ties) > 0:
		return ties[0], Tie
	default:
		return defeats[0], Defeat
	}
}

// scoreMove - outcome for player after playing move on board.
func scoreMove(board entity.Board, move entity.Move, player entity.Mark) Outcome {
	next, err := board.ApplyMove(move.Row, move.Col, player)
	if err != nil {
		// moves come from ValidMoves, so this can't happen
		panic(fmt.Errorf("tictactoe: generated move %v rejected: %w", move, err))
	}

	switch result := entity.Evaluate(next); result.Kind {
	case entity.ResultWin:
		if result.Winner == player {
			return Victory
		}
		return Defeat
	case entity.ResultDraw:
		return Tie
	default:
		_, outcome := BestMove(next, player.Opposite())
		return outcome.Invert()
	}
}

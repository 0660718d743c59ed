package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// WinnerTie is stored as the winner of a drawn session.
	WinnerTie = "-"
)

// Session is one human-versus-engine game. X always moves first.
type Session struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Human  Mark   `json:"human"`
	Turn   Mark   `json:"turn"`
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
}

func NewSession(id string, human Mark) *Session {
	return &Session{
		ID:     id,
		Board:  NewBoard(),
		Human:  human,
		Turn:   X,
		Status: StatusOngoing,
	}
}

// Opponent returns the engine's mark.
func (that *Session) Opponent() Mark {
	return that.Human.Opposite()
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Session) IsHumanTurn() bool {
	return !that.IsFinished() && that.Turn == that.Human
}

// MakeTurn - applies a move for mark and passes the turn to the other side.
func (that *Session) MakeTurn(mark Mark, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.ApplyMove(row, col, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = board
	that.Turn = mark.Opposite()
	that.UpdateState()

	return nil
}

// UpdateState - recomputes status and winner from the board.
func (that *Session) UpdateState() {
	switch result := Evaluate(that.Board); result.Kind {
	case ResultWin:
		that.Winner = string(result.Winner)
		that.Status = StatusFinished
		that.Turn = ""
	case ResultDraw:
		that.Winner = WinnerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Status = StatusOngoing
	}
}

// Verdict - a human readable description of the finished session.
func (that *Session) Verdict() string {
	switch that.Winner {
	case "":
		return "Game in progress"
	case WinnerTie:
		return "It's a draw!"
	default:
		return that.Winner + " wins!"
	}
}

package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StrategyPerfect = "perfect"
	StrategyRandom  = "random"
)

var ErrUnknownStrategy = errors.New("unknown bot strategy")

type BotService interface {
	MakeTurn(session *entity.Session) (entity.Move, error)
}

type botService struct {
	logger   *slog.Logger
	strategy string
	pickMove func(board entity.Board, mark entity.Mark) entity.Move
}

// NewBotService - creates the engine opponent. "perfect" plays the minimax move,
// "random" any empty cell.
func NewBotService(logger *slog.Logger, strategy string) (BotService, error) {
	bot := &botService{
		logger:   logger.With("component", "bot"),
		strategy: strategy,
	}

	switch strategy {
	case StrategyPerfect:
		bot.pickMove = bot.perfectMove
	case StrategyRandom:
		bot.pickMove = func(board entity.Board, _ entity.Mark) entity.Move {
			return tictactoe.RandomMove(board)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	return bot, nil
}

func (that *botService) MakeTurn(session *entity.Session) (entity.Move, error) {
	if session.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	botMark := session.Opponent()
	if session.Turn != botMark {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move := that.pickMove(session.Board, botMark)

	if err := session.MakeTurn(botMark, move.Row, move.Col); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

func (that *botService) perfectMove(board entity.Board, mark entity.Mark) entity.Move {
	move, outcome := tictactoe.BestMove(board, mark)

	that.logger.Debug("best move found",
		"method", "perfectMove",
		"mark", mark,
		"row", move.Row,
		"col", move.Col,
		"outcome", outcome.String(),
	)

	return move
}

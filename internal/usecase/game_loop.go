package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

const (
	markPrompt = "Choose your mark (X/O): "
	movePrompt = "Your move (row col): "
)

// Prompter is the line based input/output the game is played through.
type Prompter interface {
	// Prompt shows text and blocks until the player answers with one line.
	Prompt(ctx context.Context, text string) (string, error)
	// Display shows text without waiting for an answer.
	Display(ctx context.Context, text string) error
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(session *entity.Session) (entity.Move, error)
}

// GameLoop alternates turns between a human behind a Prompter and the bot.
type GameLoop struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	bot         botService
}

func NewGameLoop(logger *slog.Logger, sessionRepo sessionRepo, bot botService) *GameLoop {
	return &GameLoop{
		logger: logger.With("component", "game_loop"),

		sessionRepo: sessionRepo,
		bot:         bot,
	}
}

// Play - runs the game for sessionID until it is finished. An unfinished stored
// session with that id is resumed. The session is saved after every move and
// deleted once the game is over.
func (that *GameLoop) Play(ctx context.Context, prompter Prompter, sessionID string) (*entity.Session, error) {
	log := that.logger.With("method", "Play", "session_id", sessionID)

	session, err := that.getOrCreateSession(ctx, prompter, sessionID)
	if err != nil {
		return nil, err
	}

	for {
		if err = ctx.Err(); err != nil {
			return session, fmt.Errorf("game interrupted: %w", err)
		}

		if err = prompter.Display(ctx, session.Board.String()); err != nil {
			return session, fmt.Errorf("failed to display board: %w", err)
		}

		if session.IsFinished() {
			log.Info("game finished", "winner", session.Winner)
			that.deleteSession(ctx, session)

			if err = prompter.Display(ctx, session.Verdict()); err != nil {
				return session, fmt.Errorf("failed to display verdict: %w", err)
			}

			return session, nil
		}

		if session.IsHumanTurn() {
			err = that.humanTurn(ctx, prompter, session)
		} else {
			err = that.botTurn(ctx, prompter, session)
		}

		if err != nil {
			return session, err
		}

		if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
			return session, fmt.Errorf("failed to save session: %w", err)
		}
	}
}

func (that *GameLoop) getOrCreateSession(ctx context.Context, prompter Prompter, sessionID string) (*entity.Session, error) {
	log := that.logger.With("method", "getOrCreateSession", "session_id", sessionID)

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	switch {
	case err == nil && !session.IsFinished():
		log.Info("resuming session")

		text := fmt.Sprintf("Resuming game, you play %s.", session.Human)
		if err = prompter.Display(ctx, text); err != nil {
			return nil, fmt.Errorf("failed to display greeting: %w", err)
		}

		return session, nil
	case err != nil && !errors.Is(err, repository.ErrSessionNotFound):
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	human, err := that.chooseMark(ctx, prompter)
	if err != nil {
		return nil, err
	}

	session = entity.NewSession(sessionID, human)
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info("new session", "human", human)

	text := fmt.Sprintf("You play %s. %s moves first.", human, entity.X)
	if err = prompter.Display(ctx, text); err != nil {
		return nil, fmt.Errorf("failed to display greeting: %w", err)
	}

	return session, nil
}

func (that *GameLoop) chooseMark(ctx context.Context, prompter Prompter) (entity.Mark, error) {
	for {
		line, err := prompter.Prompt(ctx, markPrompt)
		if err != nil {
			return "", fmt.Errorf("failed to read mark: %w", err)
		}

		mark, err := entity.ParseMark(line)
		if err == nil {
			return mark, nil
		}

		if err = prompter.Display(ctx, "Please enter X or O."); err != nil {
			return "", fmt.Errorf("failed to display hint: %w", err)
		}
	}
}

func (that *GameLoop) humanTurn(ctx context.Context, prompter Prompter, session *entity.Session) error {
	log := that.logger.With("method", "humanTurn", "session_id", session.ID)

	for {
		line, err := prompter.Prompt(ctx, movePrompt)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		row, col, err := ParseMove(line)
		if err == nil {
			err = session.MakeTurn(session.Human, row, col)
		}

		if err == nil {
			log.Debug("human moved", "row", row, "col", col)
			return nil
		}

		hint, ok := moveHint(err)
		if !ok {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move rejected", "input", line, "error", err)

		if err = prompter.Display(ctx, hint); err != nil {
			return fmt.Errorf("failed to display hint: %w", err)
		}
	}
}

func (that *GameLoop) botTurn(ctx context.Context, prompter Prompter, session *entity.Session) error {
	move, err := that.bot.MakeTurn(session)
	if err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	that.logger.Debug("bot moved", "method", "botTurn", "session_id", session.ID, "row", move.Row, "col", move.Col)

	if err = prompter.Display(ctx, "Opponent plays "+move.String()); err != nil {
		return fmt.Errorf("failed to display bot move: %w", err)
	}

	return nil
}

func (that *GameLoop) deleteSession(ctx context.Context, session *entity.Session) {
	err := that.sessionRepo.DeleteByID(ctx, session.ID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		that.logger.Error("failed to delete session", "session_id", session.ID, "error", err)
	}
}

// moveHint - the message shown for a move the player may retry.
func moveHint(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		return "Enter the row and column as two numbers, e.g. 1 2.", true
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "Row and column must be between 0 and 2.", true
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken.", true
	default:
		return "", false
	}
}

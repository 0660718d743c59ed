package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/websocket"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	botService, err := service.NewBotService(logger, conf.Opponent)
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	gameLoop := usecase.NewGameLoop(logger, sessionRepo, botService)

	switch conf.Mode {
	case config.ModeWebsocket:
		log.Info("Starting WebSocket server", "port", conf.HTTPPort)

		wsServer := websocket.New(logger, gameLoop)
		if err = wsServer.Start(ctx, conf.HTTPPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}

		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return runConsole(ctx, log, gameLoop)
	}
}

func runConsole(ctx context.Context, log *slog.Logger, gameLoop *usecase.GameLoop) error {
	session, err := gameLoop.Play(ctx, console.New(os.Stdin, os.Stdout), uuid.NewString())
	switch {
	case err == nil:
		log.Info("Game finished", "winner", session.Winner)
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Info("Game abandoned", "reason", err)
		return nil
	default:
		return fmt.Errorf("game failed: %w", err)
	}
}

// newSessionRepository - redis backed when enabled, in memory otherwise.
func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewSessionRepository(client, conf.Redis.SessionTTL), client.Close, nil
}

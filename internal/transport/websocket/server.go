package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameLoop interface {
	Play(ctx context.Context, prompter usecase.Prompter, sessionID string) (*entity.Session, error)
}

// Server lets one human per connection play against the engine.
type Server struct {
	logger   *slog.Logger
	gameLoop gameLoop
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, gameLoop gameLoop) *Server {
	return &Server{
		logger:   logger.With("component", "websocket"),
		gameLoop: gameLoop,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Get("/ping", that.handlePing)
	router.Get("/ws", that.handleGame)

	return router
}

// Start - serves HTTP on port until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "method", "handlePing", "error", err)
	}
}

// handleGame - upgrades the connection and runs one game on it. A "session"
// query parameter resumes an unfinished game.
func (that *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleGame")

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	} else if _, err := uuid.Parse(sessionID); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log = log.With("session_id", sessionID)
	log.Info("websocket connection established")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// unblock a pending read when the server shuts down
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	prompter := newConnPrompter(log, conn)
	if err = prompter.sendMessage(ActionSession, Payload{SessionID: sessionID}); err != nil {
		log.Error("failed to send session id", "error", err)
		return
	}

	session, err := that.gameLoop.Play(ctx, prompter, sessionID)
	if err != nil {
		log.Info("game left unfinished", "error", err)
		return
	}

	log.Info("game finished", "winner", session.Winner)
	prompter.close("game over")
}

package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// connPrompter plays one game over a websocket connection: prompts and board
// updates go out as messages, answers come back as "input" messages.
type connPrompter struct {
	logger *slog.Logger
	conn   *websocket.Conn
}

func newConnPrompter(logger *slog.Logger, conn *websocket.Conn) *connPrompter {
	return &connPrompter{
		logger: logger,
		conn:   conn,
	}
}

func (that *connPrompter) Display(_ context.Context, text string) error {
	return that.sendMessage(ActionDisplay, Payload{Text: text})
}

// Prompt - sends the prompt and waits for the next "input" message.
// Messages with other actions or a broken payload are skipped.
func (that *connPrompter) Prompt(ctx context.Context, text string) (string, error) {
	log := that.logger.With("method", "Prompt")

	if err := that.sendMessage(ActionPrompt, Payload{Text: text}); err != nil {
		return "", err
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		_, data, err := that.conn.ReadMessage()
		if err != nil {
			return "", fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		if message.Action != ActionInput {
			log.Warn("unexpected action", "action", message.Action)
			continue
		}

		var payload Payload
		if err = json.Unmarshal(message.Payload, &payload); err != nil {
			log.Warn("failed to unmarshal payload", "error", err)
			continue
		}

		return payload.Line, nil
	}
}

func (that *connPrompter) sendMessage(action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to send %s message: %w", action, err)
	}

	return nil
}

func (that *connPrompter) close(reason string) {
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	if err := that.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(writeWait)); err != nil {
		that.logger.Debug("failed to send close message", "error", err)
	}
}

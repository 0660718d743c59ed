package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Console plays the game over a line based reader and writer, usually stdin and stdout.
type Console struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

func New(reader io.Reader, writer io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(reader),
		writer:  writer,
	}
}

func (that *Console) Display(_ context.Context, text string) error {
	if _, err := fmt.Fprintln(that.writer, text); err != nil {
		return fmt.Errorf("failed to write: %w", err)
	}

	return nil
}

// Prompt - writes text without a newline and reads the next line. A cancelled
// ctx releases the caller even while the read is still blocked.
func (that *Console) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(that.writer, text); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	lines := make(chan readResult, 1)
	go func() {
		lines <- that.readLine()
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-lines:
		return result.line, result.err
	}
}

type readResult struct {
	line string
	err  error
}

func (that *Console) readLine() readResult {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return readResult{err: fmt.Errorf("failed to read line: %w", err)}
		}
		return readResult{err: fmt.Errorf("failed to read line: %w", io.EOF)}
	}

	return readResult{line: strings.TrimRight(that.scanner.Text(), "\r")}
}

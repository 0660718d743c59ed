package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	ctx := context.Background()

	t.Run("Prompt writes the text and reads one line", func(t *testing.T) {
		// Given: two lines of input, one with a windows line ending
		var out bytes.Buffer
		c := New(strings.NewReader("x\r\n1 2\n"), &out)

		// When: prompting twice
		first, err := c.Prompt(ctx, "mark? ")
		require.NoError(t, err)
		second, err := c.Prompt(ctx, "move? ")
		require.NoError(t, err)

		// Then: each prompt gets its own line
		assert.Equal(t, "x", first)
		assert.Equal(t, "1 2", second)
		assert.Equal(t, "mark? move? ", out.String())
	})

	t.Run("Display ends the text with a newline", func(t *testing.T) {
		var out bytes.Buffer
		c := New(strings.NewReader(""), &out)

		require.NoError(t, c.Display(ctx, "X| | "))

		assert.Equal(t, "X| | \n", out.String())
	})

	t.Run("Prompt at end of input returns EOF", func(t *testing.T) {
		c := New(strings.NewReader(""), io.Discard)

		_, err := c.Prompt(ctx, "move? ")

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Prompt honours a cancelled context", func(t *testing.T) {
		c := New(strings.NewReader("1 1\n"), io.Discard)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.Prompt(cancelled, "move? ")

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Prompt returns when the context is cancelled during a read", func(t *testing.T) {
		// Given: an input that never delivers a line
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })
		c := New(reader, io.Discard)

		cancelled, cancel := context.WithCancel(ctx)
		time.AfterFunc(20*time.Millisecond, cancel)

		// When: prompting
		_, err := c.Prompt(cancelled, "move? ")

		// Then: the prompt gives up with the context error
		require.ErrorIs(t, err, context.Canceled)
	})
}

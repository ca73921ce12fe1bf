package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, "6 6 6 0 6 6 6 6 6 6 0 6 6 6 ", NewBoard().String())
}

func TestRender(t *testing.T) {
	t.Run("plain output without colors", func(t *testing.T) {
		out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

		require.Equal(t, NewBoard().String(), NewBoard().Render(out))
		require.Equal(t, "Player 2", Label(out, Second))
	})

	t.Run("colored output keeps the counts", func(t *testing.T) {
		out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI))

		rendered := NewBoard().Render(out)

		require.NotEqual(t, NewBoard().String(), rendered, "Output should carry escape sequences")
		require.Equal(t, 12, strings.Count(rendered, "6 "), "Every play pit should be rendered")
		require.Equal(t, 2, strings.Count(rendered, "0 "), "Both stores should be rendered")
	})
}

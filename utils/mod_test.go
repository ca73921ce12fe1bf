package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 5, 6}, 5))
	require.Equal(t, -1, FindIndex([]int{4, 5, 6}, 7))
	require.Equal(t, -1, FindIndex([]int{}, 7))
}

func TestContains(t *testing.T) {
	require.True(t, Contains([]string{"a", "b"}, "b"))
	require.False(t, Contains([]string{"a", "b"}, "c"))
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	require.Empty(t, Map([]int{}, strconv.Itoa))
}

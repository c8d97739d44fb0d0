package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatch(t *testing.T) {
	t.Parallel()

	ev := New(nil)
	l := ev.Latch(1, 2)

	_, ok := l.Last()
	require.False(t, ok)

	ev.Active(2)
	ev.Active(3)
	got, ok := l.Last()
	require.True(t, ok)
	require.Equal(t, uint32(2), got, "ids outside the set are ignored")

	ev.Active(1)
	got, _ = l.Last()
	require.Equal(t, uint32(1), got)
}

package b64pipe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestQueue(t *testing.T) {
	var q restQueue

	_, ok := q.pop()
	require.False(t, ok)

	for i := 0; i < 10; i++ {
		q.push(byte(i))
	}
	require.Equal(t, 10, q.len())
	require.Equal(t, 16, len(q.buf))

	for i := 0; i < 3; i++ {
		c, ok := q.pop()
		require.True(t, ok)
		require.Equal(t, byte(i), c)
	}

	// wraps around the end of buf
	for i := 10; i < 19; i++ {
		q.push(byte(i))
	}
	require.Equal(t, 16, q.len())
	require.Equal(t, 16, len(q.buf))

	dst := make([]byte, 5)
	require.Equal(t, 5, q.drain(dst))
	require.Equal(t, []byte{3, 4, 5, 6, 7}, dst)

	// grows while wrapped
	for i := 19; i < 25; i++ {
		q.push(byte(i))
	}
	require.Equal(t, 17, q.len())
	require.Equal(t, 32, len(q.buf))

	dst = make([]byte, 32)
	n := q.drain(dst)
	require.Equal(t, 17, n)
	for i, c := range dst[:n] {
		require.Equal(t, byte(8+i), c)
	}
	require.Equal(t, 0, q.len())

	q.push(42)
	q.reset()
	require.Equal(t, 0, q.len())
	require.Equal(t, 0, q.drain(dst))
}

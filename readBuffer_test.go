package b64pipe

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stalledReader struct{}

func (stalledReader) Read([]byte) (int, error) { return 0, nil }

func TestReadBufferCompacts(t *testing.T) {
	var rb readBuffer
	rb.init(4)
	require.Len(t, rb.buf, minReadBufSize)

	r := strings.NewReader("0123456789abcdefXYZ")

	n, err := rb.readMore(r)
	require.NoError(t, err)
	require.Equal(t, 16, n)

	// full and nothing consumed
	n, err = rb.readMore(r)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	rb.advance(10)
	n, err = rb.readMore(r)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 0, rb.start)
	require.Equal(t, "abcdefXYZ", string(rb.window()))

	rb.advance(rb.buffered())
	require.Equal(t, 0, rb.start)
	require.Equal(t, 0, rb.end)

	_, err = rb.readMore(r)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadBufferNoProgress(t *testing.T) {
	var rb readBuffer
	rb.init(defaultReadBufSize)

	_, err := rb.readMore(stalledReader{})
	require.ErrorIs(t, err, io.ErrNoProgress)
}

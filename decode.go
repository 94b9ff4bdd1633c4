package b64pipe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DecodeAll decodes all of src with alphabet a. It is a convenience over
// NewPipe and ReadInto for input that is already in memory.
func DecodeAll(src []byte, a Alphabet) ([]byte, error) {
	return decodeAll(bytes.NewReader(src), len(src), a)
}

// DecodeString is DecodeAll for string input.
func DecodeString(s string, a Alphabet) ([]byte, error) {
	return decodeAll(strings.NewReader(s), len(s), a)
}

func decodeAll(r io.Reader, size int, a Alphabet) ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("[b64pipe] %v: %w", a, ErrInvalidAlphabet)
	}

	// The read buffer never needs to be larger than the input it caches.
	bufSize := defaultReadBufSize
	if size < bufSize {
		bufSize = size
	}

	p := NewPipe(r, WithAlphabet(a), WithBufferSize(bufSize))
	dst, _, err := p.ReadInto(make([]byte, 0, DecodedLen(size)), -1)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeConcurrent decodes each of srcs on its own goroutine with its own
// Pipe, running at most limit at once (no limit when limit <= 0). The result
// at index i belongs to srcs[i]. After the first failure inputs that have not
// started yet are skipped, and that failure is returned.
func DecodeConcurrent(srcs [][]byte, a Alphabet, limit int) ([][]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("[b64pipe] %v: %w", a, ErrInvalidAlphabet)
	}

	out := make([][]byte, len(srcs))

	g, ctx := errgroup.WithContext(context.Background())
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, src := range srcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dst, err := DecodeAll(src, a)
			if err != nil {
				return fmt.Errorf("[b64pipe] input %d: %w", i, err)
			}
			out[i] = dst
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

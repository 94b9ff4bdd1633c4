package b64pipe

import (
	"io"
)

const (
	defaultReadBufSize = 512
	minReadBufSize     = 16

	// maxConsecutiveEmptyReads bounds how often a source may return (0, nil)
	// before the pipe gives up with io.ErrNoProgress.
	maxConsecutiveEmptyReads = 100
)

// readBuffer caches encoded bytes pulled from the source.
// Invariant: 0 <= start <= end <= len(buf).
type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) init(size int) {
	if size < minReadBufSize {
		size = minReadBufSize
	}
	if len(rb.buf) != size {
		rb.buf = make([]byte, size)
	}
	rb.start, rb.end = 0, 0
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) buffered() int {
	return rb.end - rb.start
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

// readMore appends bytes from r after the unconsumed region, compacting
// consumed bytes out first. It returns the number of bytes added; a full
// buffer adds nothing.
func (rb *readBuffer) readMore(r io.Reader) (int, error) {
	if rb.end == len(rb.buf) {
		rb.compact()
		if rb.end == len(rb.buf) {
			return 0, nil
		}
	}

	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.Read(rb.buf[rb.end:])
		if n < 0 || n > len(rb.buf)-rb.end {
			return 0, errNegativeRead
		}
		rb.end += n
		if n > 0 || err != nil {
			return n, err
		}
	}
	return 0, io.ErrNoProgress
}

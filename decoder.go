package b64pipe

import (
	"errors"
	"fmt"
	"io"
)

// Pipe decodes a base64 stream pulled from an underlying io.Reader.
//
// Decoded bytes that do not fit into the destination of the read call that
// produced them are queued and handed out first by the next read. A Pipe must
// not be used from several goroutines at once.
type Pipe struct {
	r        io.Reader
	rb       readBuffer
	rest     restQueue
	table    *[256]byte
	alphabet Alphabet
	bufSize  int

	offset int64 // encoded bytes consumed so far
	srcEOF bool  // r has returned io.EOF
	err    error // sticky
}

type PipeOption func(p *Pipe)

// NewPipe returns a Pipe decoding r with the standard alphabet unless
// WithAlphabet says otherwise.
func NewPipe(r io.Reader, opts ...PipeOption) *Pipe {
	p := &Pipe{bufSize: defaultReadBufSize}

	for _, opt := range opts {
		opt(p)
	}

	p.table = p.alphabet.table()
	p.Reset(r)

	return p
}

// WithAlphabet selects the decode table. It panics on an unknown Alphabet.
func WithAlphabet(a Alphabet) PipeOption {
	if !a.valid() {
		panic("b64pipe: invalid alphabet")
	}
	return func(p *Pipe) {
		p.alphabet = a
	}
}

// WithBufferSize sets the capacity of the read-ahead buffer. Sizes below 16
// are rounded up.
func WithBufferSize(size int) PipeOption {
	return func(p *Pipe) {
		p.bufSize = size
	}
}

var (
	ErrMalformed = errors.New("malformed base64 quadruplet")

	errReaderNil    = errors.New("reader is nil")
	errNegativeRead = errors.New("reader returned invalid count from Read")
)

// Reset discards the Pipe's state and makes it decode r instead, keeping its
// alphabet and reusing its buffers.
func (p *Pipe) Reset(r io.Reader) {
	p.r = r
	p.rb.init(p.bufSize)
	p.rest.reset()
	p.offset = 0
	p.srcEOF = false
	p.err = nil
}

// Alphabet reports the alphabet the Pipe was created with.
func (p *Pipe) Alphabet() Alphabet {
	return p.alphabet
}

// FillUpTo decodes up to len(dst) bytes into dst and returns how many were
// written. A short count without error means the end of the stream was
// reached. Bytes written before an error stay written.
func (p *Pipe) FillUpTo(dst []byte) (int, error) {
	n := p.rest.drain(dst)
	if n == len(dst) {
		return n, nil
	}
	if p.err != nil {
		return n, p.err
	}

	for n < len(dst) {
		m, end, err := p.decode(dst[n:])
		n += m
		if err != nil {
			p.err = err
			return n, err
		}
		if end {
			break
		}
	}

	return n, nil
}

// FillExact fills all of dst or fails. When the stream ends early the error
// wraps io.ErrUnexpectedEOF.
func (p *Pipe) FillExact(dst []byte) error {
	n, err := p.FillUpTo(dst)
	if err != nil {
		return err
	}
	if n < len(dst) {
		return fmt.Errorf("[b64pipe] stream ended after %d of %d requested bytes: %w", n, len(dst), io.ErrUnexpectedEOF)
	}
	return nil
}

// ReadByte returns the next decoded byte, or io.EOF at the end of the stream.
func (p *Pipe) ReadByte() (byte, error) {
	if c, ok := p.rest.pop(); ok {
		return c, nil
	}

	var b [1]byte
	n, err := p.FillUpTo(b[:])
	if n == 1 {
		return b[0], nil
	}
	if err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// ReadInto appends decoded bytes to dst until limit bytes were added or the
// stream ends, doubling dst's capacity as needed. A negative limit reads to the
// end of the stream. It returns the extended slice and the number of bytes added.
func (p *Pipe) ReadInto(dst []byte, limit int) ([]byte, int, error) {
	total := 0
	for limit < 0 || total < limit {
		if len(dst) == cap(dst) {
			dst = grow(dst)
		}
		free := dst[len(dst):cap(dst)]
		if limit >= 0 && len(free) > limit-total {
			free = free[:limit-total]
		}

		n, err := p.FillUpTo(free)
		dst = dst[:len(dst)+n]
		total += n
		if err != nil {
			return dst, total, err
		}
		if n < len(free) {
			break
		}
	}
	return dst, total, nil
}

func grow(b []byte) []byte {
	newCap := 2 * cap(b)
	if newCap == 0 {
		newCap = defaultReadBufSize
	}
	nb := make([]byte, len(b), newCap)
	copy(nb, b)
	return nb
}

// EOF reports whether every decoded byte has been delivered and the source is
// exhausted. When nothing is buffered it may block on one read from the source
// to find out.
func (p *Pipe) EOF() bool {
	if p.rest.len() > 0 || p.rb.buffered() > 0 {
		return false
	}
	if !p.srcEOF && p.err == nil {
		if err := p.fill(); err != nil {
			p.err = err
			return false
		}
	}
	return p.srcEOF && p.rb.buffered() == 0
}

// Read implements io.Reader.
func (p *Pipe) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n, err := p.FillUpTo(b)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// WriteTo implements io.WriterTo, so io.Copy drains the Pipe without an
// intermediate buffer of its own.
func (p *Pipe) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 3*len(p.rb.buf))
	var total int64
	for {
		n, err := p.FillUpTo(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			total += int64(m)
			if werr != nil {
				return total, werr
			}
			if m < n {
				return total, io.ErrShortWrite
			}
		}
		if err != nil {
			return total, err
		}
		if n < len(buf) {
			return total, nil
		}
	}
}

// Close does nothing; the Pipe owns no resources besides memory.
func (p *Pipe) Close() error {
	return nil
}

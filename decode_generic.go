package b64pipe

import (
	"fmt"
	"io"
)

// decode writes decoded bytes into dst: whole quadruplets straight from the
// read buffer while they are clean, then at most one quadruplet through step.
// end reports a clean end of stream.
func (p *Pipe) decode(dst []byte) (n int, end bool, err error) {
	if useFastPath {
		n = p.decodeFast(dst)
		if n == len(dst) {
			return n, false, nil
		}
	}

	m, end, err := p.step(dst[n:])
	return n + m, end, err
}

// step decodes one quadruplet, skipping ignorable bytes, and handles padding
// and the end of the stream. Bytes past the end of dst go to the rest queue.
func (p *Pipe) step(dst []byte) (int, bool, error) {
	var q [4]byte
	var at int64

	for i := range q {
		c, err := p.nextSymbol()
		if err != nil {
			return 0, false, err
		}
		if i == 0 {
			at = p.offset - 1
		}
		q[i] = c
		if c == classEnd {
			for j := i + 1; j < len(q); j++ {
				q[j] = classEnd
			}
			break
		}
	}

	var k int
	switch {
	case q[0]|q[1]|q[2]|q[3] < classPad:
		k = 3
	case q[0]|q[1]|q[2] < classPad && q[3] == classPad:
		k = 2
		q[3] = 0
	case q[0]|q[1] < classPad && q[2] == classPad && q[3] == classPad:
		k = 1
		q[2], q[3] = 0, 0
	case q[0] == classEnd:
		return 0, true, nil
	default:
		return 0, false, fmt.Errorf("[b64pipe] quadruplet at offset %d: %w", at, ErrMalformed)
	}

	out := [3]byte{
		q[0]<<2 | q[1]>>4,
		q[1]<<4 | q[2]>>2,
		q[2]<<6 | q[3],
	}
	n := copy(dst, out[:k])
	for _, c := range out[n:k] {
		p.rest.push(c)
	}
	return n, false, nil
}

// nextSymbol returns the class of the next byte that is not ignorable, or
// classEnd once the source is exhausted.
func (p *Pipe) nextSymbol() (byte, error) {
	for {
		for p.rb.start < p.rb.end {
			c := p.table[p.rb.buf[p.rb.start]]
			p.rb.advance(1)
			p.offset++
			if c != classIgnore {
				return c, nil
			}
		}
		if p.srcEOF {
			return classEnd, nil
		}
		if err := p.fill(); err != nil {
			return 0, err
		}
	}
}

// fill pulls more encoded bytes from the source. Reaching the end of the
// source is not an error; it is recorded in srcEOF.
func (p *Pipe) fill() error {
	if p.r == nil {
		return errReaderNil
	}
	_, err := p.rb.readMore(p.r)
	if err == io.EOF {
		p.srcEOF = true
		return nil
	}
	return err
}

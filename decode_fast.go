package b64pipe

// useFastPath enables decodeFast. Tests turn it off to push every quadruplet
// through step.
var useFastPath = true

// decodeFast decodes whole quadruplets of alphabet characters directly out
// of the read buffer while at least three bytes of dst remain. It stops at the
// first quadruplet holding padding or an ignorable byte, or when fewer than
// four bytes are buffered, and returns the number of bytes written.
func (p *Pipe) decodeFast(dst []byte) int {
	t := p.table
	w := p.rb.window()
	i, n := 0, 0

	for len(w)-i >= 4 && len(dst)-n >= 3 {
		a, b, c, d := t[w[i]], t[w[i+1]], t[w[i+2]], t[w[i+3]]
		if a|b|c|d >= classPad {
			break
		}
		dst[n] = a<<2 | b>>4
		dst[n+1] = b<<4 | c>>2
		dst[n+2] = c<<6 | d
		i += 4
		n += 3
	}

	p.rb.advance(i)
	p.offset += int64(i)
	return n
}

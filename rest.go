package b64pipe

// restQueue holds decoded bytes that did not fit into the caller's
// destination. It is a ring buffer whose capacity is a power of two.
type restQueue struct {
	buf        []byte
	head, size int
}

func (q *restQueue) len() int {
	return q.size
}

func (q *restQueue) reset() {
	q.head, q.size = 0, 0
}

func (q *restQueue) grow() {
	newCap := 2 * len(q.buf)
	if newCap == 0 {
		newCap = 4
	}
	nb := make([]byte, newCap)
	n := copy(nb, q.buf[q.head:])
	copy(nb[n:], q.buf[:q.head])
	q.buf = nb
	q.head = 0
}

func (q *restQueue) push(c byte) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)&(len(q.buf)-1)] = c
	q.size++
}

func (q *restQueue) pop() (byte, bool) {
	if q.size == 0 {
		return 0, false
	}
	c := q.buf[q.head]
	q.head = (q.head + 1) & (len(q.buf) - 1)
	q.size--
	return c, true
}

// drain moves queued bytes into dst in FIFO order and returns how many were moved.
func (q *restQueue) drain(dst []byte) int {
	n := 0
	for n < len(dst) && q.size > 0 {
		tail := q.head + q.size
		if tail > len(q.buf) {
			tail = len(q.buf)
		}
		m := copy(dst[n:], q.buf[q.head:tail])
		n += m
		q.size -= m
		q.head = (q.head + m) & (len(q.buf) - 1)
	}
	if q.size == 0 {
		q.head = 0
	}
	return n
}

package b64pipe

// DecodedLen returns the maximum number of bytes n encoded bytes decode to.
// Ignorable bytes and padding only make the real result shorter.
func DecodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n / 4 * 3
}

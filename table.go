package b64pipe

import "sync"

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	stdTable   [256]byte
	urlTable   [256]byte
	initTables sync.Once
)

func buildTable(t *[256]byte, alphabet string) {
	for i := range t {
		t[i] = classIgnore
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	t[PadChar] = classPad
}

func maybeInitTables() {
	initTables.Do(func() {
		buildTable(&stdTable, stdAlphabet)
		buildTable(&urlTable, urlAlphabet)
	})
}

// table returns the decode table for a. Unknown alphabets fall back to the
// standard one; callers validate before getting here.
func (a Alphabet) table() *[256]byte {
	maybeInitTables()
	if a == AlphabetURL {
		return &urlTable
	}
	return &stdTable
}

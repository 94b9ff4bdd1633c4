package b64pipe

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet selects the decode table a Pipe classifies input with.
type Alphabet int

const (
	AlphabetStd Alphabet = iota // RFC 4648 section 4, '+' and '/'
	AlphabetURL                 // RFC 4648 section 5, '-' and '_'
)

// PadChar is the padding character shared by both alphabets.
const PadChar = '='

var ErrInvalidAlphabet = errors.New("unknown alphabet")

func (a Alphabet) String() string {
	switch a {
	case AlphabetStd:
		return "std"
	case AlphabetURL:
		return "url"
	default:
		return fmt.Sprintf("Alphabet(%d)", int(a))
	}
}

func (a Alphabet) valid() bool {
	return a == AlphabetStd || a == AlphabetURL
}

// ParseAlphabet returns the Alphabet called name. It accepts "std", "standard",
// "url" and "urlsafe", ignoring case.
func ParseAlphabet(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "std", "standard":
		return AlphabetStd, nil
	case "url", "urlsafe", "url-safe":
		return AlphabetURL, nil
	}
	return 0, fmt.Errorf("[b64pipe] %q: %w", name, ErrInvalidAlphabet)
}

// Classes stored in a decode table besides the 6-bit values 0..63.
// A quadruplet is made only of valid values when the OR of its slots is below classPad.
const (
	classPad    byte = 0x40
	classIgnore byte = 0x80
	classEnd    byte = 0xC0 // source exhausted; never stored in a table
)

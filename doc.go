// Package b64pipe decodes base64 streams incrementally, as specified by
// RFC 4648, using either the standard or the URL-safe alphabet.
//
// A Pipe pulls encoded bytes from an io.Reader on demand and hands out
// decoded bytes through FillUpTo, FillExact, ReadByte, ReadInto or the io
// interfaces. Every byte that is neither in the alphabet nor the padding
// character is skipped, so line-wrapped input decodes as is:
//
//	p := b64pipe.NewPipe(r, b64pipe.WithAlphabet(b64pipe.AlphabetURL))
//	_, err := io.Copy(w, p)
//
// Padding is required: input whose final group has only two or three
// symbols and no '=' fails with ErrMalformed. Encoding is not provided; use
// encoding/base64.
package b64pipe

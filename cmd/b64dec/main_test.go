package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mnightingale/b64pipe"
	"github.com/stretchr/testify/require"
)

func TestDecodeStream(t *testing.T) {
	o := options{alphabet: b64pipe.AlphabetURL, bufferSize: 32}

	var out bytes.Buffer
	n, err := decodeStream(&out, strings.NewReader("-_-_\nTQ==\n"), o)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, []byte{0xfb, 0xff, 0xbf, 'M'}, out.Bytes())
}

func TestDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	o := options{alphabet: b64pipe.AlphabetStd, bufferSize: 64, jobs: 2}

	var paths []string
	var want bytes.Buffer
	for i, s := range []string{"first file\n", "", "third one, a little longer than the others"} {
		path := filepath.Join(dir, string(rune('a'+i))+".b64")
		require.NoError(t, os.WriteFile(path, []byte(base64.StdEncoding.EncodeToString([]byte(s))+"\n"), 0o600))
		paths = append(paths, path)
		want.WriteString(s)
	}

	var out bytes.Buffer
	require.NoError(t, decodeFiles(&out, paths, o))
	require.Equal(t, want.String(), out.String())

	bad := filepath.Join(dir, "bad.b64")
	require.NoError(t, os.WriteFile(bad, []byte("TQ=A"), 0o600))
	err := decodeFiles(&out, append(paths, bad), o)
	require.ErrorIs(t, err, b64pipe.ErrMalformed)
	require.Contains(t, err.Error(), "bad.b64")

	err = decodeFiles(&out, []string{filepath.Join(dir, "missing")}, o)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.b64")
	out := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(in, []byte("bGlnaHQgd29yay4=\n"), 0o600))

	require.NoError(t, app.Run([]string{"b64dec", "--log-level", "debug", "-o", out, in}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "light work.", string(b))

	require.Error(t, app.Run([]string{"b64dec", "--alphabet", "base32", in}))
}

// Command b64dec decodes base64 from stdin or from files and writes the raw
// bytes to stdout or to the file named by --output.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mnightingale/b64pipe"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"
)

var (
	app = cli.NewApp()
	log = logrus.New()
)

func init() {
	app.Name = "b64dec"
	app.Usage = "decode base64 streams"
	app.ArgsUsage = "[FILE...]"
	app.Version = "1.0.0"
	app.Action = run
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "alphabet, a", Value: "std", Usage: "alphabet: std or url", EnvVar: "B64DEC_ALPHABET"},
		cli.IntFlag{Name: "buffer-size", Value: 4096, Usage: "read-ahead buffer size in bytes", EnvVar: "B64DEC_BUFFER_SIZE"},
		cli.IntFlag{Name: "jobs, j", Value: 4, Usage: "files decoded at the same time", EnvVar: "B64DEC_JOBS"},
		cli.StringFlag{Name: "output, o", Usage: "write to this file instead of stdout"},
		cli.StringFlag{Name: "log-level", Value: "warning", Usage: "logrus level", EnvVar: "B64DEC_LOG_LEVEL"},
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	alphabet   b64pipe.Alphabet
	bufferSize int
	jobs       int
}

func run(c *cli.Context) error {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	alphabet, err := b64pipe.ParseAlphabet(c.String("alphabet"))
	if err != nil {
		return err
	}
	o := options{
		alphabet:   alphabet,
		bufferSize: c.Int("buffer-size"),
		jobs:       c.Int("jobs"),
	}

	var out io.Writer = os.Stdout
	if name := c.String("output"); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if c.NArg() == 0 {
		n, err := decodeStream(out, os.Stdin, o)
		log.WithFields(logrus.Fields{"file": "-", "bytes": n, "alphabet": o.alphabet}).Debug("decoded")
		return err
	}
	return decodeFiles(out, c.Args(), o)
}

func decodeStream(dst io.Writer, src io.Reader, o options) (int64, error) {
	p := b64pipe.NewPipe(src, b64pipe.WithAlphabet(o.alphabet), b64pipe.WithBufferSize(o.bufferSize))
	defer p.Close()

	return io.Copy(dst, p)
}

// decodeFiles decodes the files concurrently and writes their contents to dst
// in argument order.
func decodeFiles(dst io.Writer, paths []string, o options) error {
	results := make([][]byte, len(paths))

	var g errgroup.Group
	if o.jobs > 0 {
		g.SetLimit(o.jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			var buf bytes.Buffer
			n, err := decodeStream(&buf, f, o)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.WithFields(logrus.Fields{"file": path, "bytes": n, "alphabet": o.alphabet}).Debug("decoded")
			results[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, b := range results {
		if _, err := dst.Write(b); err != nil {
			return err
		}
	}
	return nil
}

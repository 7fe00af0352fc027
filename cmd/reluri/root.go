package main

//go:generate go tool errtrace -w .

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/reluri"
	"github.com/ghettovoice/reluri/internal/errorutil"
	"github.com/ghettovoice/reluri/internal/grammar"
	"github.com/ghettovoice/reluri/internal/log"
	"github.com/ghettovoice/reluri/internal/util"
)

const errNotRelative errorutil.Error = "not relative"

// maxReported limits the rejected references listed in the returned error.
const maxReported = 10

type options struct {
	json      bool
	verbose   bool
	logFormat string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "reluri [flags] [uri...]",
		Short: "Classify URI references as relative or absolute",
		Long: `Classify URI references as relative or absolute.

Each reference is printed with its kind: relative, network-path, absolute or invalid.
References are taken from the arguments or, when none are given, from stdin, one per line.

Examples:
  reluri ./beep/boop https://wikipedia.org
  reluri --json < links.txt
  reluri -v --log-format dev 'mailto:foo@bar.com'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts, stderr)
			if err != nil {
				return errtrace.Wrap(err)
			}
			c := &reluri.Classifier{Logger: logger}

			out := bufio.NewWriter(stdout)
			w := newResultWriter(out, opts.json)

			var (
				rejected  []error
				nrejected int
			)
			classify := func(input string) error {
				res := c.Classify(input)
				if !res.IsRelative() {
					nrejected++
					if len(rejected) < maxReported {
						rejected = append(rejected, fmt.Errorf("%q is %s", util.Ellipsis(input, 80), res.Kind))
					}
				}
				return errtrace.Wrap(w.write(input, res))
			}

			err = classifyAll(args, stdin, classify)
			if ferr := out.Flush(); err == nil {
				err = ferr
			}
			if err != nil {
				return errtrace.Wrap(err)
			}

			if nrejected > 0 {
				if n := nrejected - len(rejected); n > 0 {
					rejected = append(rejected, fmt.Errorf("and %d more", n))
				}
				err := errorutil.JoinPrefix(string(errNotRelative), rejected...)
				logger.Debug("some references are not relative", slog.Int("count", nrejected), slog.Any("error", err))
				return errtrace.Wrap(errorutil.NewWrapperError(errNotRelative, err))
			}
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&opts.json, "json", false, "print one JSON object per reference")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every decision to stderr")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log format: console or dev")
	return cmd
}

func newLogger(opts options, w io.Writer) (*slog.Logger, error) {
	switch {
	case !opts.verbose:
		return log.Noop, nil
	case util.EqFold(opts.logFormat, "console"):
		return log.NewConsole(w, slog.LevelDebug), nil
	case util.EqFold(opts.logFormat, "dev"):
		return log.NewDev(w, slog.LevelDebug), nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", opts.logFormat))
	}
}

func classifyAll(args []string, stdin io.Reader, fn func(input string) error) error {
	if len(args) == 0 {
		return errtrace.Wrap(scanLines(stdin, fn))
	}
	for _, arg := range args {
		if err := fn(arg); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// scanLines calls fn for every non-blank line of r.
// Lines are not limited in length.
func scanLines(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			if err := fn(line); err != nil {
				return errtrace.Wrap(err)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errtrace.Wrap(err)
		}
	}
}

type record struct {
	Input     string      `json:"input"`
	Kind      reluri.Kind `json:"kind"`
	Relative  bool        `json:"relative"`
	Scheme    string      `json:"scheme,omitempty"`
	Authority string      `json:"authority,omitempty"`
	Path      string      `json:"path,omitempty"`
	Error     string      `json:"error,omitempty"`
}

type resultWriter struct {
	w    io.Writer
	enc  *json.Encoder
	json bool
}

func newResultWriter(w io.Writer, asJSON bool) *resultWriter {
	rw := &resultWriter{w: w, json: asJSON}
	if asJSON {
		rw.enc = json.NewEncoder(w)
		rw.enc.SetEscapeHTML(false)
	}
	return rw
}

func (rw *resultWriter) write(input string, res reluri.Result) error {
	if !rw.json {
		_, err := fmt.Fprintf(rw.w, "%s\t%s\n", res.Kind, grammar.Escape(input, isIllegal))
		return errtrace.Wrap(err)
	}

	rec := record{
		Input:     input,
		Kind:      res.Kind,
		Relative:  res.IsRelative(),
		Scheme:    res.Components.Scheme,
		Authority: res.Components.Authority,
		Path:      res.Components.Path,
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	return errtrace.Wrap(rw.enc.Encode(rec))
}

func isIllegal(c byte) bool { return !grammar.IsURIChar(c) }

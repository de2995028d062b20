// Package shell implements the read-eval-print loop around package mathshell.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/mathshell"
)

// Shell evaluates one expression per line and writes each outcome.
type Shell struct {
	// Out receives results and errors.
	Out io.Writer
	// Log receives debug records for each evaluation. If nil, nothing is
	// logged.
	Log *slog.Logger
	// Format is the fmt verb for results. Empty means %g.
	Format string
	// Echo writes the scanned tokens of each line before its result.
	Echo bool
	// Prompt is passed to the LineReader for each line.
	Prompt string
}

// New creates a shell from a configuration.
func New(cfg *Config, out io.Writer, log *slog.Logger) *Shell {
	return &Shell{
		Out:    out,
		Log:    log,
		Format: cfg.Fmt,
		Echo:   cfg.Echo,
		Prompt: cfg.Prompt,
	}
}

// Run evaluates lines from in until the input ends, a line reads "exit", or
// ctx is cancelled. Blank lines are skipped. Invalid expressions are reported
// to Out and do not stop the loop. The result is nil when the input ends or on
// "exit", ctx.Err() on cancellation, or the error from reading input.
func (s *Shell) Run(ctx context.Context, in LineReader) error {
	s.logger().InfoContext(ctx, "session start")
	defer s.logger().InfoContext(ctx, "session end")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ReadLine(s.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit":
			return nil
		}
		s.Eval(ctx, line)
	}
}

// Eval evaluates one expression and writes the outcome to Out. The returned
// error is the scan or parse error, which has already been reported.
func (s *Shell) Eval(ctx context.Context, expr string) (float32, error) {
	log := s.logger().With(slog.String("expr", expr))
	tokens, err := mathshell.Scan(expr)
	if err != nil {
		log.DebugContext(ctx, "scan failed", slog.Any("error", err))
		fmt.Fprintf(s.Out, "Error encountered while parsing: %v\n", err)
		return 0, err
	}
	if s.Echo {
		fmt.Fprintln(s.Out, repr.String(tokens))
	}
	r, err := mathshell.Parse(tokens)
	if err != nil {
		log.DebugContext(ctx, "parse failed", slog.Int("tokens", len(tokens)), slog.Any("error", err))
		fmt.Fprintf(s.Out, "Error encountered while parsing: %v\n", err)
		return 0, err
	}
	log.DebugContext(ctx, "evaluated", slog.Int("tokens", len(tokens)), slog.Float64("result", float64(r)))
	verb := s.Format
	if verb == "" {
		verb = "%g"
	}
	fmt.Fprintf(s.Out, "Result: "+verb+"\n", r)
	return r, nil
}

// EvalAll evaluates each expression in turn, as for command-line arguments.
// The result is the number of expressions that failed.
func (s *Shell) EvalAll(ctx context.Context, exprs []string) int {
	n := 0
	for _, expr := range exprs {
		if _, err := s.Eval(ctx, expr); err != nil {
			n++
		}
	}
	return n
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (s *Shell) logger() *slog.Logger {
	if s.Log == nil {
		return discard
	}
	return s.Log
}

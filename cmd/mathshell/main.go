package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/zephyrtronium/mathshell/internal/shell"
)

func main() {
	log.SetFlags(0)
	opts := shell.Options(defaultConfigPaths()...)
	var cfg shell.Config
	kctx := kong.Parse(&cfg, opts...)

	logger, closer, err := shell.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFile)
	kctx.FatalIfErrorf(err)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(&cfg, os.Stdout, logger)
	if len(cfg.Exprs) > 0 {
		if n := sh.EvalAll(ctx, cfg.Exprs); n > 0 {
			stop()
			closer.Close()
			os.Exit(1)
		}
		return
	}

	in, done, err := input(&cfg)
	if err != nil {
		log.Fatal(err)
	}
	err = sh.Run(ctx, in)
	if cerr := done(); err == nil {
		err = cerr
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session failed", "error", err)
		log.Fatal(err)
	}
}

// input chooses where lines come from: the --in file, an interactive
// terminal, or plain stdin. done releases the input.
func input(cfg *shell.Config) (shell.LineReader, func() error, error) {
	switch {
	case cfg.In != "" && cfg.In != "-":
		f, err := os.Open(cfg.In)
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		return shell.NewLines(f), f.Close, nil
	case cfg.In == "" && term.IsTerminal(int(os.Stdin.Fd())):
		t, err := shell.NewTerminal(cfg.History)
		if err != nil {
			return nil, nil, err
		}
		return t, t.Close, nil
	default:
		return shell.NewLines(os.Stdin), func() error { return nil }, nil
	}
}

// defaultConfigPaths lists the JSON files consulted for defaults.
func defaultConfigPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "mathshell", "config.json")}
}

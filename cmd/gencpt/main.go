// Command gencpt generates random non-degenerate conditional preference
// tables, checks existing ones, and lists the runs kept in a store.
//
//	gencpt generate -d 3 -i 0.2 -c 0,1,2 -g 2 -store sqlite -db-path cpt.db
//	gencpt check -d 2 -c 1 1 2
//	gencpt runs -db-path cpt.db
//	gencpt show -db-path cpt.db -run <run-id>
//	gencpt pairs -n 5 -d 3 -hamming 2 -count 4
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "generate":
		return runGenerate(ctx, args[1:])
	case "check":
		return runCheck(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "pairs":
		return runPairs(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: gencpt <generate|check|runs|show|pairs> [flags]", msg)
}

// newLogger writes text records to terminals and JSON records otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

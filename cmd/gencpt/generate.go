package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gencpnet/config"
	"github.com/katalvlaran/gencpnet/generator"
	"github.com/katalvlaran/gencpnet/store"
)

func runGenerate(ctx context.Context, args []string) error {
	def := config.Default()

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional YAML run config; explicit flags override it")
	domainSize := fs.Int("d", def.DomainSize, "domain size of every variable")
	incompleteness := fs.Float64("i", def.Incompleteness, "incompleteness degree in [0,1)")
	arities := fs.String("c", formatArities(def.Arities), "comma-separated parent counts")
	count := fs.Int("g", def.Count, "tables per parent count")
	seed := fs.Int64("seed", def.Seed, "rng seed")
	maxAttempts := fs.Int("max-attempts", def.MaxAttempts, "attempt cap per table (0 disables)")
	maxRows := fs.Int("max-rows", def.MaxRows, "row budget for d^m")
	storeKind := fs.String("store", def.Store.Kind, "store backend: memory|sqlite")
	dbPath := fs.String("db-path", def.Store.Path, "sqlite database path")
	verbose := fs.Bool("v", false, "log rejected and accepted tables")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("generate: unexpected arguments %v", fs.Args())
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if setFlags["d"] {
		cfg.DomainSize = *domainSize
	}
	if setFlags["i"] {
		cfg.Incompleteness = *incompleteness
	}
	if setFlags["c"] {
		parsed, err := parseArities(*arities)
		if err != nil {
			return err
		}
		cfg.Arities = parsed
	}
	if setFlags["g"] {
		cfg.Count = *count
	}
	if setFlags["seed"] {
		cfg.Seed = *seed
	}
	if setFlags["max-attempts"] {
		cfg.MaxAttempts = *maxAttempts
	}
	if setFlags["max-rows"] {
		cfg.MaxRows = *maxRows
	}
	if setFlags["store"] {
		cfg.Store.Kind = *storeKind
	}
	if setFlags["db-path"] {
		cfg.Store.Path = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := store.NewRunID()
	logger := newLogger(os.Stderr, *verbose).With(
		slog.String("component", "generate"),
		slog.String("run_id", runID),
	)

	st, err := store.NewStore(cfg.Store.Kind, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.CloseIfSupported(st)
	}()
	if err := st.Init(ctx); err != nil {
		return err
	}

	gen, err := generator.New(cfg.DomainSize, cfg.Incompleteness,
		generator.WithSeed(cfg.Seed),
		generator.WithMaxAttempts(cfg.MaxAttempts),
		generator.WithMaxRows(cfg.MaxRows),
		generator.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var seq, rows, attempts int
	for _, m := range cfg.Arities {
		for k := 0; k < cfg.Count; k++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			sample, err := gen.Generate(m)
			if err != nil {
				return fmt.Errorf("arity=%d table=%d: %w", m, k, err)
			}
			logger.Debug("accepted table",
				slog.Int("arity", m),
				slog.Int("attempts", sample.Attempts),
				slog.String("outputs", sample.Table.String()),
			)
			fmt.Printf("arity=%d attempts=%d %s\n", m, sample.Attempts, sample.Table)

			rec := store.NewRecord(runID, seq, cfg.Incompleteness, sample.Attempts, sample.Table)
			if err := st.SaveRecord(ctx, rec); err != nil {
				return err
			}
			seq++
			rows += sample.Table.Rows()
			attempts += sample.Attempts
		}
	}

	logger.Info("run complete", slog.Int("tables", seq), slog.Int("rows", rows))
	fmt.Printf("run_id=%s store=%s tables=%d rows=%s attempts=%s\n",
		runID,
		cfg.Store.Kind,
		seq,
		humanize.Comma(int64(rows)),
		humanize.Comma(int64(attempts)),
	)
	return nil
}

func parseArities(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse arity %q: %w", p, err)
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, errors.New("at least one arity is required")
	}
	return out, nil
}

func formatArities(arities []int) string {
	parts := make([]string, len(arities))
	for i, m := range arities {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

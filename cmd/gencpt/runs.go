package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/katalvlaran/gencpnet/config"
	"github.com/katalvlaran/gencpnet/store"
)

func openStore(ctx context.Context, kind, path string) (store.Store, error) {
	st, err := store.NewStore(kind, path)
	if err != nil {
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		_ = store.CloseIfSupported(st)
		return nil, err
	}
	return st, nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", config.StoreSQLite, "store backend: memory|sqlite")
	dbPath := fs.String("db-path", config.Default().Store.Path, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := openStore(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.CloseIfSupported(st)
	}()

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("run_id=%s created_at=%s d=%d tables=%d\n",
			r.RunID,
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.DomainSize,
			r.Tables,
		)
	}
	return nil
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	runID := fs.String("run", "", "run id to print")
	storeKind := fs.String("store", config.StoreSQLite, "store backend: memory|sqlite")
	dbPath := fs.String("db-path", config.Default().Store.Path, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("show requires -run")
	}

	st, err := openStore(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.CloseIfSupported(st)
	}()

	records, err := st.ListRecords(ctx, *runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("run not found: %s", *runID)
	}
	for _, rec := range records {
		fmt.Printf("seq=%d arity=%d attempts=%d eps=%g %s\n",
			rec.Seq, rec.Arity, rec.Attempts, rec.Incompleteness, rec.Table())
	}
	return nil
}

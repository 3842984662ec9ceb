package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/gencpnet/assignment"
	"github.com/katalvlaran/gencpnet/cpt"
	"github.com/katalvlaran/gencpnet/degeneracy"
	"github.com/katalvlaran/gencpnet/outcome"
)

// noRuleArg is accepted in place of 0 for rows without a rule.
const noRuleArg = "*"

func runCheck(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	domainSize := fs.Int("d", 2, "domain size of every variable")
	arity := fs.Int("c", 1, "number of parents")
	maxRows := fs.Int("max-rows", assignment.DefaultMaxRows, "row budget for d^m")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *maxRows < 0 {
		return errors.New("max-rows must be >= 0")
	}

	outputs, err := parseOutputs(fs.Args())
	if err != nil {
		return err
	}
	tbl := &cpt.Table{DomainSize: *domainSize, Arity: *arity, Outputs: outputs}
	if err := tbl.Validate(); err != nil {
		return err
	}

	vacuous, err := degeneracy.VacuousParents(tbl.DomainSize, tbl.Arity, tbl.Outputs,
		degeneracy.WithMaxRows(*maxRows))
	if err != nil {
		return err
	}
	if vacuous == nil {
		vacuous = []int{}
	}
	fmt.Printf("degenerate=%t vacuous=%v\n", len(vacuous) > 0, vacuous)
	return nil
}

func parseOutputs(raw []string) ([]uint64, error) {
	if len(raw) == 0 {
		return nil, errors.New("check: outputs are required")
	}
	out := make([]uint64, len(raw))
	for i, s := range raw {
		if s == noRuleArg {
			out[i] = cpt.NoRule
			continue
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse output %d %q: %w", i, s, err)
		}
		out[i] = v
	}
	return out, nil
}

func runPairs(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("pairs", flag.ContinueOnError)
	features := fs.Int("n", 3, "number of features")
	domainSize := fs.Int("d", 2, "domain size of every feature")
	hamming := fs.Int("hamming", 0, "exact number of differing features (0: any distinct pair)")
	count := fs.Int("count", 1, "pairs to draw")
	seed := fs.Int64("seed", 1, "rng seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 1 {
		return errors.New("count must be > 0")
	}

	rng := rand.New(rand.NewSource(*seed))
	for k := 0; k < *count; k++ {
		a, b, err := outcome.RandomPair(rng, *features, *domainSize, *hamming)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s hamming=%d\n", a, b, a.Hamming(b))
	}
	return nil
}

// Package config loads the run configuration of the gencpt command from a
// YAML file.
//
// A run generates Count tables for each arity in Arities over one domain
// size and incompleteness degree, and archives them in the configured store.
//
//	domain_size: 3
//	incompleteness: 0.2
//	seed: 42
//	arities: [0, 1, 2, 3]
//	count: 2
//	max_attempts: 10000
//	max_rows: 16777216
//	store:
//	  kind: sqlite
//	  path: gencpt.db
//
// Absent keys keep the values of Default().
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gencpnet/assignment"
	"github.com/katalvlaran/gencpnet/permutation"
)

var (
	// ErrInvalidDomainSize indicates domain_size outside [2, 20].
	ErrInvalidDomainSize = errors.New("config: invalid domain size")
	// ErrInvalidIncompleteness indicates incompleteness outside [0, 1).
	ErrInvalidIncompleteness = errors.New("config: incompleteness out of range")
	// ErrInvalidArity indicates an empty arity list or a negative arity.
	ErrInvalidArity = errors.New("config: invalid arity")
	// ErrInvalidCount indicates count < 1, or negative max_attempts/max_rows.
	ErrInvalidCount = errors.New("config: invalid count")
	// ErrUnknownStore indicates a store kind other than memory or sqlite, or
	// sqlite without a path.
	ErrUnknownStore = errors.New("config: unknown store")
)

// Store kinds accepted in store.kind.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config is one generation run.
type Config struct {
	DomainSize     int     `yaml:"domain_size"`
	Incompleteness float64 `yaml:"incompleteness"`
	Seed           int64   `yaml:"seed"`
	Arities        []int   `yaml:"arities"`
	Count          int     `yaml:"count"`
	// MaxAttempts caps the rejection loop per table; 0 means no cap.
	MaxAttempts int `yaml:"max_attempts"`
	// MaxRows is the row budget for d^m; 0 selects assignment.DefaultMaxRows.
	MaxRows int   `yaml:"max_rows"`
	Store   Store `yaml:"store"`
}

// Store selects where generated tables are archived.
type Store struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

// Default returns binary domains, complete tables, one root and one
// single-parent table, kept in memory.
func Default() Config {
	return Config{
		DomainSize:     2,
		Incompleteness: 0,
		Seed:           1,
		Arities:        []int{0, 1},
		Count:          1,
		MaxRows:        assignment.DefaultMaxRows,
		Store:          Store{Kind: StoreMemory, Path: "gencpt.db"},
	}
}

// Load reads and validates the YAML file at path on top of Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// io.EOF means an empty or comment-only document: keep the defaults.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its documented range.
func (c Config) Validate() error {
	if c.DomainSize < 2 || c.DomainSize > permutation.MaxDomainSize {
		return fmt.Errorf("domain_size=%d not in [2,%d]: %w", c.DomainSize, permutation.MaxDomainSize, ErrInvalidDomainSize)
	}
	if math.IsNaN(c.Incompleteness) || c.Incompleteness < 0 || c.Incompleteness >= 1 {
		return fmt.Errorf("incompleteness=%g not in [0,1): %w", c.Incompleteness, ErrInvalidIncompleteness)
	}
	if len(c.Arities) == 0 {
		return fmt.Errorf("arities is empty: %w", ErrInvalidArity)
	}
	for _, m := range c.Arities {
		if m < 0 {
			return fmt.Errorf("arity %d < 0: %w", m, ErrInvalidArity)
		}
	}
	if c.Count < 1 {
		return fmt.Errorf("count=%d < 1: %w", c.Count, ErrInvalidCount)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts=%d < 0: %w", c.MaxAttempts, ErrInvalidCount)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("max_rows=%d < 0: %w", c.MaxRows, ErrInvalidCount)
	}
	switch c.Store.Kind {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for sqlite: %w", ErrUnknownStore)
		}
	default:
		return fmt.Errorf("store.kind=%q: %w", c.Store.Kind, ErrUnknownStore)
	}
	return nil
}

package bench

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sortsearch"
)

// ErrNoSizes is returned when a size list is empty.
var ErrNoSizes = errors.New("no sizes given")

// Config describes one benchmark run.
type Config struct {
	// ASizes are the reference sequence lengths (N).
	ASizes []int
	// VSizes are the query batch sizes (M).
	VSizes []int

	Side       sortsearch.Side
	Strategies []sortsearch.StrategyKind

	// Repeats is the number of timed calls per cell. Defaults to 10.
	Repeats int
	// Warmup is the number of untimed calls before timing. Defaults to 1.
	Warmup int
	// Seed seeds the data generator.
	Seed int64

	// Workers caps the worker goroutines of all searches in the run
	// together; every strategy shares one controller. 0 uses GOMAXPROCS.
	Workers int64
	// MemoryLimitBytes caps the scratch memory a search may reserve.
	// 0 disables the limit.
	MemoryLimitBytes int64
	// TrialsPerSecond paces timed calls. 0 disables pacing.
	TrialsPerSecond float64
}

// DefaultConfig returns the default sweep: N in {1e3, 1e4, 1e5, 1e6},
// M in {10, 100, 1000, 10000}, Left side, every strategy, 10 repeats.
func DefaultConfig() Config {
	return Config{
		ASizes:     []int{1_000, 10_000, 100_000, 1_000_000},
		VSizes:     []int{10, 100, 1_000, 10_000},
		Side:       sortsearch.Left,
		Strategies: append([]sortsearch.StrategyKind(nil), sortsearch.AllStrategies...),
		Repeats:    10,
		Warmup:     1,
		Seed:       42,
	}
}

// Validate checks the configuration before any search runs.
func (c Config) Validate() error {
	if len(c.ASizes) == 0 {
		return fmt.Errorf("a-sizes: %w", ErrNoSizes)
	}
	if len(c.VSizes) == 0 {
		return fmt.Errorf("v-sizes: %w", ErrNoSizes)
	}
	for _, n := range c.ASizes {
		if err := sortsearch.CheckSize("N", n); err != nil {
			return err
		}
	}
	for _, m := range c.VSizes {
		if err := sortsearch.CheckSize("M", m); err != nil {
			return err
		}
	}
	if !c.Side.Valid() {
		return fmt.Errorf("%w: %s", sortsearch.ErrInvalidSide, c.Side)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("%w: none selected", sortsearch.ErrUnknownStrategy)
	}
	if c.Repeats < 0 || c.Warmup < 0 {
		return fmt.Errorf("repeats and warmup must not be negative (got %d, %d)", c.Repeats, c.Warmup)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Repeats == 0 {
		c.Repeats = 10
	}
	return c
}

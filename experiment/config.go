package experiment

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// ErrInvalidConfig is returned for experiment configurations which cannot be
// run.
var ErrInvalidConfig = errors.New("experiment: invalid configuration")

const (
	DefaultRepetitions = 10
	DefaultMaxN        = 10000
	DefaultSampleStep  = 200
	DefaultSeed        = 12345
)

// Config describes an experiment. Zero values are replaced by defaults.
type Config struct {
	Repetitions int      // number of independent runs to average over
	MaxN        int      // largest tree size measured
	SampleStep  int      // distance between measured tree sizes
	Seed        int64    // seed of the key permutations
	Engines     []string // engine names, default is all engines
}

// DefaultConfig returns the configuration of the reference experiment.
func DefaultConfig() Config {
	return Config{}.normalized()
}

func (cfg Config) normalized() Config {
	if cfg.Repetitions == 0 {
		cfg.Repetitions = DefaultRepetitions
	}
	if cfg.MaxN == 0 {
		cfg.MaxN = DefaultMaxN
	}
	if cfg.SampleStep == 0 {
		cfg.SampleStep = DefaultSampleStep
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if len(cfg.Engines) == 0 {
		cfg.Engines = ordtrees.EngineNames()
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be positive, is %d", ErrInvalidConfig, cfg.Repetitions)
	}
	if cfg.MaxN < 1 {
		return fmt.Errorf("%w: maximum size must be positive, is %d", ErrInvalidConfig, cfg.MaxN)
	}
	if cfg.SampleStep < 1 || cfg.SampleStep > cfg.MaxN {
		return fmt.Errorf("%w: sample step must be in 1…%d, is %d", ErrInvalidConfig, cfg.MaxN, cfg.SampleStep)
	}
	seen := make(map[string]bool, len(cfg.Engines))
	for _, name := range cfg.Engines {
		if _, err := ordtrees.LookupEngine(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if seen[name] {
			return fmt.Errorf("%w: engine %q listed twice", ErrInvalidConfig, name)
		}
		seen[name] = true
	}
	return nil
}

// Samples is the number of tree sizes measured.
func (cfg Config) Samples() int {
	return cfg.MaxN / cfg.SampleStep
}

package btree

import "github.com/npillmayer/ordtrees/cost"

const (
	// MinDegree is the smallest admissible minimum degree.
	MinDegree = 1
	// DefaultDegree is a reasonable minimum degree for in-memory use.
	DefaultDegree = 5
)

// Config configures a B-tree.
type Config struct {
	// Degree is the minimum degree t. Values below MinDegree are clamped.
	Degree int
	// Meter receives the cost of tree operations. If nil, the tree creates a
	// private meter.
	Meter *cost.Meter
}

func (cfg Config) normalized() Config {
	if cfg.Degree < MinDegree {
		cfg.Degree = MinDegree
	}
	if cfg.Meter == nil {
		cfg.Meter = cost.New()
	}
	return cfg
}

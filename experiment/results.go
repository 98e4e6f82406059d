package experiment

import "fmt"

// Kind selects one of the two measured cost series.
type Kind int

const (
	Insertion Kind = iota
	Removal
)

func (k Kind) String() string {
	if k == Removal {
		return "remove"
	}
	return "insert"
}

// Results holds the averaged cost samples of an experiment.
type Results struct {
	Engines     []string // in configuration order
	Sizes       []int    // tree size of every sample
	Repetitions int
	insert      map[string][]int64
	remove      map[string][]int64
}

func newResults(cfg Config) *Results {
	n := cfg.Samples()
	r := &Results{
		Engines:     append([]string(nil), cfg.Engines...),
		Sizes:       make([]int, n),
		Repetitions: cfg.Repetitions,
		insert:      make(map[string][]int64, len(cfg.Engines)),
		remove:      make(map[string][]int64, len(cfg.Engines)),
	}
	for i := range n {
		r.Sizes[i] = (i + 1) * cfg.SampleStep
	}
	for _, name := range cfg.Engines {
		r.insert[name] = make([]int64, n)
		r.remove[name] = make([]int64, n)
	}
	return r
}

// Series returns the cost samples of one engine, one per entry of Sizes, or
// nil for an engine which was not measured.
func (r *Results) Series(kind Kind, engine string) []int64 {
	if kind == Removal {
		return r.remove[engine]
	}
	return r.insert[engine]
}

// Cost returns the sample of engine for tree size n.
func (r *Results) Cost(kind Kind, engine string, n int) (int64, error) {
	series := r.Series(kind, engine)
	if series == nil {
		return 0, fmt.Errorf("no results for engine %q", engine)
	}
	for i, size := range r.Sizes {
		if size == n {
			return series[i], nil
		}
	}
	return 0, fmt.Errorf("no sample for size %d", n)
}

// average turns accumulated sums into means, truncating.
func (r *Results) average() {
	d := int64(r.Repetitions)
	for _, m := range []map[string][]int64{r.insert, r.remove} {
		for _, series := range m {
			for i := range series {
				series[i] /= d
			}
		}
	}
}

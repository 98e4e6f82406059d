package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtrees"
	"golang.org/x/sync/errgroup"
)

// Progress is published to the caster handed to Run whenever an engine has
// completed a sample.
type Progress struct {
	Engine     string
	Repetition int // 1-based
	Size       int // tree size just measured
	MaxN       int
}

// Run performs the experiment described by cfg. If cast is non-nil, a
// Progress message is published after every sample; Run does not close
// cast. Subscribers have to keep draining their channels, as publishing
// blocks on slow subscribers.
//
// Run checks ctx between samples and returns ctx.Err() wrapped if it is
// cancelled.
func Run(ctx context.Context, cfg Config, cast *caster.Caster) (*Results, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tracer().Infof("experiment: %d repetitions, n ≤ %d in steps of %d, engines %v",
		cfg.Repetitions, cfg.MaxN, cfg.SampleStep, cfg.Engines)
	res := newResults(cfg)
	for rep := 1; rep <= cfg.Repetitions; rep++ {
		keys := Permutation(cfg.Seed+int64(rep-1), cfg.MaxN)
		g, gctx := errgroup.WithContext(ctx)
		for _, name := range cfg.Engines {
			// every engine accumulates into series of its own
			w := worker{
				engine: name,
				rep:    rep,
				cfg:    cfg,
				keys:   keys,
				insert: res.insert[name],
				remove: res.remove[name],
				cast:   cast,
			}
			g.Go(func() error {
				return w.measure(gctx)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("experiment: repetition %d: %w", rep, err)
		}
		tracer().Infof("experiment: repetition %d/%d done", rep, cfg.Repetitions)
	}
	res.average()
	return res, nil
}

// Permutation returns the keys 1…n in an order determined by seed.
func Permutation(seed int64, n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

type worker struct {
	engine string
	rep    int
	cfg    Config
	keys   []int // shared between workers, read-only
	insert []int64
	remove []int64
	cast   *caster.Caster
}

func (w worker) measure(ctx context.Context) error {
	tree, err := ordtrees.New[int](w.engine)
	if err != nil {
		return err
	}
	step := w.cfg.SampleStep
	for i, key := range w.keys {
		tree.Insert(key)
		n := i + 1
		if n%step != 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s := n/step - 1
		w.insert[s] += tree.DrainInsertCost()
		for _, k := range w.keys[:n] {
			tree.RemoveOne(k)
		}
		w.remove[s] += tree.DrainRemoveCost()
		tree.Clear()
		for _, k := range w.keys[:n] {
			tree.Insert(k)
		}
		tree.DrainInsertCost()
		tree.DrainRemoveCost()
		tracer().Debugf("experiment: %s rep %d n=%d insert=%d remove=%d",
			w.engine, w.rep, n, w.insert[s], w.remove[s])
		if w.cast != nil {
			w.cast.Pub(Progress{Engine: w.engine, Repetition: w.rep, Size: n, MaxN: w.cfg.MaxN})
		}
	}
	tree.Clear()
	return nil
}

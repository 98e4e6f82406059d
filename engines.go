package ordtrees

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/ordtrees/avl"
	"github.com/npillmayer/ordtrees/btree"
	"github.com/npillmayer/ordtrees/cost"
	"github.com/npillmayer/ordtrees/rbtree"
)

// Engine describes one tree configuration which may be measured.
type Engine struct {
	Name        string
	Description string
	degree      int // minimum degree for B-trees, 0 for binary trees
}

var engines = []Engine{
	{Name: "avl", Description: "height-balanced binary tree"},
	{Name: "rb", Description: "red-black binary tree"},
	{Name: "b1", Description: "B-tree of minimum degree 1", degree: 1},
	{Name: "b5", Description: "B-tree of minimum degree 5", degree: 5},
	{Name: "b10", Description: "B-tree of minimum degree 10", degree: 10},
}

// Engines lists all known engines, in the order they are reported.
func Engines() []Engine {
	return append([]Engine(nil), engines...)
}

// EngineNames lists the names of all known engines.
func EngineNames() []string {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Name
	}
	return names
}

// LookupEngine finds an engine by name.
func LookupEngine(name string) (Engine, error) {
	for _, e := range engines {
		if e.Name == name {
			return e, nil
		}
	}
	return Engine{}, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// New creates an empty multiset backed by the engine called name, with a
// private cost meter.
func New[K cmp.Ordered](name string) (Multiset[K], error) {
	return NewMetered[K](name, cost.New())
}

// NewMetered creates an empty multiset backed by the engine called name,
// charging its cost to m. A meter may be shared by several multisets.
func NewMetered[K cmp.Ordered](name string, m *cost.Meter) (Multiset[K], error) {
	e, err := LookupEngine(name)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("creating %s (%s)", e.Name, e.Description)
	switch {
	case e.Name == "avl":
		return avl.New[K](avl.Config{Meter: m}), nil
	case e.Name == "rb":
		return rbtree.New[K](rbtree.Config{Meter: m}), nil
	case e.degree > 0:
		return btree.New[K](btree.Config{Degree: e.degree, Meter: m}), nil
	}
	panic(fmt.Sprintf("engine %q registered without a constructor", name))
}

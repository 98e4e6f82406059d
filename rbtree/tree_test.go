package rbtree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func keysOf(tree *Tree[int]) []int {
	var keys []int
	tree.Walk(func(key, _ int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func mustCheck(t *testing.T, tree *Tree[int]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestInsertRecolorsAndRotates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	tree.Insert(10)
	if tree.root.color != Black {
		t.Fatalf("single root must be black")
	}
	tree.Insert(20)
	tree.Insert(30) // right-right: rotate at 10
	mustCheck(t, tree)
	if tree.root.key != 20 || tree.root.left.color != Red || tree.root.right.color != Red {
		t.Fatalf("expected black 20 with two red children")
	}
	tree.Insert(40) // red uncle: recolor only
	mustCheck(t, tree)
	if tree.root.left.color != Black || tree.root.right.color != Black {
		t.Fatalf("expected children of root to be recolored black")
	}
	tree.Insert(35) // inner grandchild: double rotation
	mustCheck(t, tree)
	if tree.root.right.key != 35 {
		t.Fatalf("expected 35 to be lifted by the double rotation, have %d", tree.root.right.key)
	}
}

func TestRemoveAllFixupCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		tree := New[int](Config{})
		keys := r.Perm(200)
		for _, k := range keys {
			tree.Insert(k)
		}
		mustCheck(t, tree)
		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for _, k := range keys {
			if !tree.RemoveOne(k) {
				t.Fatalf("seed %d: key %d missing", seed, k)
			}
			mustCheck(t, tree)
		}
		if !tree.IsEmpty() {
			t.Fatalf("seed %d: expected empty tree", seed)
		}
	}
}

func TestRemoveRedLeafNeedsNoFixup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{20, 10, 30} {
		tree.Insert(k)
	}
	tree.Meter().Reset()
	tree.RemoveOne(30) // red leaf
	mustCheck(t, tree)
	rem := tree.Meter().DrainRemove()
	if rem.Restructures != 0 || rem.Rebalances != 0 {
		t.Fatalf("removing a red leaf must not rebalance, have %s", rem)
	}
	if rem.Frees != 1 {
		t.Fatalf("expected one released node, have %d", rem.Frees)
	}
}

func TestMultiplicityRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k)
	}
	for range 3 {
		tree.Insert(4)
	}
	if tree.Count(4) != 4 || tree.Len() != 7 {
		t.Fatalf("expected count(4)=4 in 7 keys, have %d/%d", tree.Count(4), tree.Len())
	}
	for i := 1; i <= 4; i++ {
		if !tree.RemoveOne(4) {
			t.Fatalf("removal %d failed", i)
		}
		mustCheck(t, tree)
	}
	if tree.Count(4) != 0 {
		t.Fatalf("expected 4 to be gone")
	}
	if got := keysOf(tree); !slices.Equal(got, []int{1, 2, 3, 5, 6, 7}) {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestEmptyingAndClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	const N = 1000
	r := rand.New(rand.NewSource(99))
	tree := New[int](Config{})
	keys := r.Perm(N)
	for _, k := range keys {
		tree.Insert(k)
	}
	if bh := tree.BlackHeight(); bh < 2 {
		t.Fatalf("unexpected black-height %d", bh)
	}
	for _, k := range keys {
		tree.RemoveOne(k)
	}
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("expected empty tree")
	}
	tree.Meter().Reset()
	tree.Clear()
	if tree.DrainRemoveCost() != 0 {
		t.Fatalf("clear on an empty tree must be a no-op")
	}
	for _, k := range keys[:50] {
		tree.Insert(k)
	}
	tree.Clear()
	mustCheck(t, tree)
	if tree.Meter().DrainRemove().Frees != 50 {
		t.Fatalf("expected 50 nodes to be released")
	}
}

func TestFailedRemovalChargesComparisonsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for k := range 15 {
		tree.Insert(k * 2)
	}
	tree.Meter().Reset()
	if tree.RemoveOne(7) {
		t.Fatalf("7 is not in the tree")
	}
	rem := tree.Meter().DrainRemove()
	if rem.Compares == 0 || rem.Total() != rem.Compares {
		t.Fatalf("expected comparisons only, have %s", rem)
	}
}

func TestCheckDetectsRedRed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{20, 10, 30, 5} {
		tree.Insert(k)
	}
	tree.root.left.color = Red // 5 is red already
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, have %v", err)
	}
}

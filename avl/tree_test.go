package avl

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/ordtrees/cost"
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

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("expected empty tree, have len=%d height=%d", tree.Len(), tree.Height())
	}
	if tree.RemoveOne(1) {
		t.Fatalf("expected removal from empty tree to report false")
	}
	tree.Clear()
	mustCheck(t, tree)
}

func TestScenarioBalancedSevenKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(k)
		mustCheck(t, tree)
	}
	if tree.root.key != 50 {
		t.Errorf("expected root 50, have %d", tree.root.key)
	}
	if tree.Height() != 3 {
		t.Errorf("expected height 3, have %d", tree.Height())
	}
	for _, k := range []int{20, 30} {
		if !tree.RemoveOne(k) {
			t.Fatalf("expected key %d to be present", k)
		}
		mustCheck(t, tree)
	}
	want := []int{40, 50, 60, 70, 80}
	if got := keysOf(tree); !slices.Equal(got, want) {
		t.Fatalf("expected in-order keys %v, have %v", want, got)
	}
}

func TestAscendingInsertRotates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for k := 1; k <= 1023; k++ {
		tree.Insert(k)
	}
	mustCheck(t, tree)
	if tree.Height() != 10 {
		t.Errorf("1023 ascending keys should form a perfect tree of height 10, have %d", tree.Height())
	}
	ins := tree.Meter().DrainInsert()
	if ins.Restructures == 0 || ins.Allocs != 1023 {
		t.Errorf("unexpected insertion tally %s", ins)
	}
}

func TestDoubleRotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	for _, keys := range [][]int{{30, 10, 20}, {10, 30, 20}} {
		tree := New[int](Config{})
		for _, k := range keys {
			tree.Insert(k)
		}
		mustCheck(t, tree)
		if tree.root.key != 20 {
			t.Errorf("insert %v: expected root 20 after double rotation, have %d", keys, tree.root.key)
		}
		if r := tree.Meter().DrainInsert().Restructures; r != 2 {
			t.Errorf("insert %v: expected 2 rotations, have %d", keys, r)
		}
	}
}

func TestMultiplicityRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{5, 3, 8} {
		tree.Insert(k)
	}
	const m = 4
	for range m {
		tree.Insert(7)
	}
	if tree.Count(7) != m || tree.Len() != 4 {
		t.Fatalf("expected multiplicity %d in 4 distinct keys, have %d/%d", m, tree.Count(7), tree.Len())
	}
	for i := 1; i <= m; i++ {
		if !tree.RemoveOne(7) {
			t.Fatalf("removal %d of key 7 failed", i)
		}
		if i < m && tree.Count(7) != m-i {
			t.Fatalf("expected multiplicity %d after %d removals, have %d", m-i, i, tree.Count(7))
		}
		mustCheck(t, tree)
	}
	if tree.Count(7) != 0 || tree.RemoveOne(7) {
		t.Fatalf("expected key 7 to be absent")
	}
	if got := keysOf(tree); !slices.Equal(got, []int{3, 5, 8}) {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestSuccessorCarriesMultiplicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{20, 10, 30, 25, 25, 25} {
		tree.Insert(k)
	}
	tree.RemoveOne(20) // 20 has two children, successor 25 moves up
	mustCheck(t, tree)
	if tree.Count(25) != 3 || tree.Count(20) != 0 {
		t.Fatalf("expected successor multiplicity to survive, count(25)=%d", tree.Count(25))
	}
}

func TestEmptyingShuffled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	const N = 1000
	r := rand.New(rand.NewSource(4711))
	keys := r.Perm(N)
	tree := New[int](Config{})
	for _, k := range keys {
		tree.Insert(k)
	}
	mustCheck(t, tree)
	if tree.Len() != N {
		t.Fatalf("expected %d keys, have %d", N, tree.Len())
	}
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		if !tree.RemoveOne(k) {
			t.Fatalf("key %d not found", k)
		}
		if i%97 == 0 {
			mustCheck(t, tree)
		}
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected tree to be empty, len=%d", tree.Len())
	}
	tree.Meter().Reset()
	tree.Clear()
	if tree.DrainRemoveCost() != 0 {
		t.Fatalf("clearing an empty tree should not cost anything")
	}
}

func TestClearReleasesNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for k := range 100 {
		tree.Insert(k)
	}
	tree.Clear()
	mustCheck(t, tree)
	if rem := tree.Meter().DrainRemove(); rem.Frees != 100 {
		t.Fatalf("expected 100 released nodes, have %d", rem.Frees)
	}
	tree.Insert(1)
	if tree.Len() != 1 {
		t.Fatalf("tree not usable after Clear")
	}
}

func TestFailedRemovalChargesComparisonsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{50, 30, 70} {
		tree.Insert(k)
	}
	tree.DrainInsertCost()
	if tree.RemoveOne(60) {
		t.Fatalf("60 is not in the tree")
	}
	rem := tree.Meter().DrainRemove()
	if rem.Compares != 2 || rem.Total() != 2 {
		t.Fatalf("expected two comparisons only, have %s", rem)
	}
}

func TestSharedMeter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	m := cost.New()
	t1, t2 := New[int](Config{Meter: m}), New[int](Config{Meter: m})
	t1.Insert(1)
	t2.Insert(1)
	if ins := m.DrainInsert(); ins.Allocs != 2 {
		t.Fatalf("expected both trees to charge the shared meter, have %s", ins)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtrees")
	defer teardown()
	//
	tree := New[int](Config{})
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}
	tree.root.left.key = 5 // break BST order on purpose
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, have %v", err)
	}
}

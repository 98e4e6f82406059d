package rbtree

import (
	"math/rand"
	"testing"
)

// How to run:
//   - Fuzz test:
//     go test ./rbtree -run '^$' -fuzz FuzzOperations -fuzztime=10s

func applyAndCompare(t *testing.T, tree *Tree[int], model map[int]int, insert bool, key int) {
	t.Helper()
	if insert {
		tree.Insert(key)
		model[key]++
	} else {
		want := model[key] > 0
		if got := tree.RemoveOne(key); got != want {
			t.Fatalf("RemoveOne(%d) = %v, model says %v", key, got, want)
		}
		if want {
			if model[key]--; model[key] == 0 {
				delete(model, key)
			}
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("after op on %d: %v", key, err)
	}
	if tree.Len() != len(model) {
		t.Fatalf("len mismatch: tree=%d model=%d", tree.Len(), len(model))
	}
	for k, c := range model {
		if tree.Count(k) != c {
			t.Fatalf("multiplicity of %d: tree=%d model=%d", k, tree.Count(k), c)
		}
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for round := range 20 {
		tree := New[int](Config{})
		model := make(map[int]int)
		for range 400 {
			applyAndCompare(t, tree, model, r.Intn(3) > 0, r.Intn(64+round*8))
		}
	}
}

func FuzzOperations(f *testing.F) {
	f.Add([]byte{10, 20, 30, 40, 35, 0x8a, 0x94})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := New[int](Config{})
		model := make(map[int]int)
		for _, op := range ops {
			applyAndCompare(t, tree, model, op&0x80 == 0, int(op&0x7f))
		}
	})
}

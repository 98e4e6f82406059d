package btree

import (
	"github.com/npillmayer/ordtrees/cost"
)

// newNode materializes an empty node with fixed key and child capacities.
func (t *Tree[K]) newNode(leaf bool, c *cost.Tally) *node[K] {
	n := &node[K]{
		keys:   make([]K, 0, t.maxKeys()),
		counts: make([]int, 0, t.maxKeys()),
		leaf:   leaf,
	}
	if !leaf {
		n.children = make([]*node[K], 0, t.maxKeys()+1)
	}
	if c != nil {
		c.Allocs++
	}
	return n
}

func (t *Tree[K]) maxKeys() int {
	return 2*t.degree - 1
}

func (t *Tree[K]) minKeys() int {
	return t.degree - 1
}

func (t *Tree[K]) isFull(n *node[K]) bool {
	return len(n.keys) == t.maxKeys()
}

// insertAt inserts v into s at idx, shifting the tail up as one block. It
// returns the extended slice and the number of entries moved.
func insertAt[T any](s []T, idx int, v T) ([]T, int) {
	assert(idx >= 0 && idx <= len(s), "insertAt index out of range")
	var zero T
	s = append(s, zero)
	moved := copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s, moved
}

// removeAt removes the entry at idx, shifting the tail down as one block. It
// returns the shortened slice and the number of entries moved.
func removeAt[T any](s []T, idx int) ([]T, int) {
	assert(idx >= 0 && idx < len(s), "removeAt index out of range")
	moved := copy(s[idx:], s[idx+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1], moved
}

// truncate cuts s to length l, zeroing the dropped entries.
func truncate[T any](s []T, l int) []T {
	clear(s[l:])
	return s[:l]
}

// locate returns the position of the first key in n which is not less than
// key, and whether that key equals key. Every key examined is charged as a
// comparison.
func (t *Tree[K]) locate(n *node[K], key K, c *cost.Tally) (int, bool) {
	i := 0
	for i < len(n.keys) {
		c.Compares++
		if n.keys[i] >= key {
			return i, n.keys[i] == key
		}
		i++
	}
	return i, false
}

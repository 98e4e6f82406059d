package cost

import "fmt"

// Tally accumulates the structural work of one operation path.
type Tally struct {
	Compares     int64 // key comparisons and node visits
	Links        int64 // child-pointer or array-slot rewrites
	Rebalances   int64 // height or color updates
	Restructures int64 // rotations, splits, borrows and merges
	Allocs       int64 // nodes created
	Frees        int64 // nodes released
}

// Total sums up all categories of a tally.
func (t Tally) Total() int64 {
	return t.Compares + t.Links + t.Rebalances + t.Restructures + t.Allocs + t.Frees
}

// Add accumulates another tally into t.
func (t *Tally) Add(other Tally) {
	t.Compares += other.Compares
	t.Links += other.Links
	t.Rebalances += other.Rebalances
	t.Restructures += other.Restructures
	t.Allocs += other.Allocs
	t.Frees += other.Frees
}

func (t Tally) String() string {
	return fmt.Sprintf("{cmp=%d link=%d rebal=%d restr=%d alloc=%d free=%d | total=%d}",
		t.Compares, t.Links, t.Rebalances, t.Restructures, t.Allocs, t.Frees, t.Total())
}

// Meter holds the insertion and the removal tally of a tree.
//
// The zero value is ready to use.
type Meter struct {
	insert Tally
	remove Tally
}

// New creates an empty meter.
func New() *Meter {
	return &Meter{}
}

// Insertion returns the live tally charged by insert operations.
func (m *Meter) Insertion() *Tally {
	return &m.insert
}

// Removal returns the live tally charged by remove and clear operations.
func (m *Meter) Removal() *Tally {
	return &m.remove
}

// DrainInsert returns the insertion tally and resets it.
func (m *Meter) DrainInsert() Tally {
	t := m.insert
	m.insert = Tally{}
	return t
}

// DrainRemove returns the removal tally and resets it.
func (m *Meter) DrainRemove() Tally {
	t := m.remove
	m.remove = Tally{}
	return t
}

// Reset drops both tallies.
func (m *Meter) Reset() {
	m.insert, m.remove = Tally{}, Tally{}
}

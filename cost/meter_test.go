package cost

import "testing"

func TestTallyTotal(t *testing.T) {
	tally := Tally{Compares: 1, Links: 2, Rebalances: 3, Restructures: 4, Allocs: 5, Frees: 6}
	if tally.Total() != 21 {
		t.Fatalf("expected total of 21, got %d", tally.Total())
	}
	var sum Tally
	sum.Add(tally)
	sum.Add(tally)
	if sum.Total() != 42 || sum.Restructures != 8 {
		t.Fatalf("unexpected accumulated tally %s", sum)
	}
}

func TestMeterDrainResets(t *testing.T) {
	m := New()
	m.Insertion().Compares += 7
	m.Removal().Frees += 2
	if ins := m.DrainInsert(); ins.Total() != 7 {
		t.Fatalf("expected insertion total 7, got %d", ins.Total())
	}
	if ins := m.DrainInsert(); ins.Total() != 0 {
		t.Fatalf("expected drained insertion tally to be reset, got %s", ins)
	}
	if rem := m.Removal(); rem.Frees != 2 {
		t.Fatalf("draining insertion tally must not touch removal tally")
	}
	m.Reset()
	if m.DrainRemove().Total() != 0 {
		t.Fatalf("expected removal tally to be reset")
	}
}

func TestZeroMeterIsUsable(t *testing.T) {
	var m Meter
	m.Insertion().Allocs++
	if m.DrainInsert().Allocs != 1 {
		t.Fatalf("zero meter did not count")
	}
}

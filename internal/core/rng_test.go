package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := range 100 {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestRNGZeroSeed(t *testing.T) {
	r := NewRNG(0)
	if r.State() != 1 {
		t.Errorf("State() = %d, want 1 for zero seed", r.State())
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewRNG(7)
	seen := make(map[int]int)
	for range 4000 {
		v := r.Intn(4)
		if v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d out of range", v)
		}
		seen[v]++
	}
	for v := range 4 {
		if seen[v] < 700 {
			t.Errorf("value %d drawn only %d times out of 4000", v, seen[v])
		}
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn of non-positive n should be 0")
	}
}

func TestRNGFloat64Range(t *testing.T) {
	r := NewRNG(3)
	for range 1000 {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0,1)", f)
		}
	}
}

func TestRNGStateRoundTrip(t *testing.T) {
	r := NewRNG(11)
	r.Next()
	saved := r.State()
	want := r.Next()

	r.SetState(saved)
	if got := r.Next(); got != want {
		t.Errorf("after SetState Next() = %d, want %d", got, want)
	}
}

package core

import "testing"

func TestRNGReseedRepeats(t *testing.T) {
	r := NewRNG(42)
	first := []int{r.IntN(100), r.IntN(100), r.IntN(100)}
	r.Seed(42)
	for i, want := range first {
		if got := r.IntN(100); got != want {
			t.Fatalf("draw %d after reseed = %d, want %d", i, got, want)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}

package noise

import (
	"errors"
	"math"
	"testing"
)

func sources(t *testing.T) map[Kind]Source {
	t.Helper()
	out := map[Kind]Source{}
	for _, kind := range Kinds() {
		src, err := New(kind, NewCounter(12345))
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		out[kind] = src
	}
	return out
}

func TestSampleRepeatableWithinEpoch(t *testing.T) {
	for kind, src := range sources(t) {
		src.Seed()
		for i := 0; i < 100; i++ {
			u := float64(i)*0.13 + 0.05
			v := float64(i)*0.29 + 0.05
			if src.Sample(u, v) != src.Sample(u, v) {
				t.Fatalf("%s: Sample not repeatable at (%f, %f)", kind, u, v)
			}
		}
	}
}

func TestSameSeedSameField(t *testing.T) {
	for _, kind := range Kinds() {
		a, _ := New(kind, NewCounter(99))
		b, _ := New(kind, NewCounter(99))
		a.Seed()
		b.Seed()
		for i := 0; i < 100; i++ {
			u := float64(i) * 0.17
			v := float64(i) * 0.23
			if a.Sample(u, v) != b.Sample(u, v) {
				t.Fatalf("%s: equal seeds diverged at (%f, %f)", kind, u, v)
			}
		}
	}
}

func TestSampleRange(t *testing.T) {
	for kind, src := range sources(t) {
		for i := 0; i < 10000; i++ {
			u := float64(i)*0.37 - 500
			v := float64(i)*0.53 - 500
			s := src.Sample(u, v)
			if s < -1 || s > 1 {
				t.Fatalf("%s: Sample(%f, %f) = %f, out of [-1,1]", kind, u, v, s)
			}
		}
	}
}

func TestReseedChangesField(t *testing.T) {
	for kind, src := range sources(t) {
		src.Seed()
		before := make([]float64, 100)
		for i := range before {
			before[i] = src.Sample(float64(i)*0.1+0.05, float64(i)*0.2+0.05)
		}
		src.Seed()
		different := false
		for i := range before {
			if src.Sample(float64(i)*0.1+0.05, float64(i)*0.2+0.05) != before[i] {
				different = true
				break
			}
		}
		if !different {
			t.Errorf("%s: reseeding should change the field", kind)
		}
	}
}

func TestSampleSmoothness(t *testing.T) {
	for kind, src := range sources(t) {
		src.Seed()
		step := 0.001
		prev := src.Sample(0.05, 0.3)
		for i := 1; i < 3000; i++ {
			u := 0.05 + float64(i)*step
			curr := src.Sample(u, 0.3)
			if diff := math.Abs(curr - prev); diff > 0.05 {
				t.Fatalf("%s: noise jumped by %f at u=%f", kind, diff, u)
			}
			prev = curr
		}
	}
}

func TestSampleSeedsLazily(t *testing.T) {
	seeds := NewCounter(7)
	src := NewPerlin(seeds)
	src.Sample(0.5, 0.5)
	if src.CurrentSeed() != 7 {
		t.Fatalf("lazy seed = %d, want 7", src.CurrentSeed())
	}
	src.Seed()
	if src.CurrentSeed() != 8 {
		t.Fatalf("second seed = %d, want 8", src.CurrentSeed())
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{"": KindPerlin, "perlin": KindPerlin, " Simplex ": KindSimplex}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("value"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := New("worley", NewCounter(0)); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind from New, got %v", err)
	}
}

func TestConstant(t *testing.T) {
	c := NewConstant(3)
	if c.Sample(1, 2) != 1 {
		t.Fatalf("constant should clamp to 1, got %f", c.Sample(1, 2))
	}
	c.Seed()
	c.Seed()
	if c.Seeds != 2 {
		t.Fatalf("Seeds = %d, want 2", c.Seeds)
	}
}

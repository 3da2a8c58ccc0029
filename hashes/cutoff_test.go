package hashes

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"
)

func TestProportionCutoffBoundaries(t *testing.T) {
	if got := ProportionCutoff(0.0); got != 0 {
		t.Fatalf("cutoff(0.0) = %d, want 0", got)
	}
	if got := ProportionCutoff(1.0); got != math.MaxUint64 {
		t.Fatalf("cutoff(1.0) = %d, want MaxUint64", got)
	}
	// Half the range splits exactly.
	if got := ProportionCutoff(0.5); got != uint64(1)<<63 {
		t.Fatalf("cutoff(0.5) = %d, want 2^63", got)
	}
}

func TestProportionCutoffMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 37))
	ps := make([]float64, 0, 1002)
	ps = append(ps, 0.0, 1.0)
	for i := 0; i < 1000; i++ {
		ps = append(ps, rng.Float64())
	}
	sort.Float64s(ps)
	prev := ProportionCutoff(ps[0])
	for _, p := range ps[1:] {
		cur := ProportionCutoff(p)
		if cur < prev {
			t.Fatalf("cutoff not monotonic at p=%v: %d < %d", p, cur, prev)
		}
		prev = cur
	}
}

func TestProportionCutoffCalibration(t *testing.T) {
	const n = 1000000
	const tolerance = 0.005

	rng := rand.New(rand.NewPCG(2024, 6))
	samples := make([]uint64, n)
	for i := range samples {
		samples[i] = rng.Uint64()
	}

	for _, p := range []float64{0.1, 0.25, 0.5, 0.9} {
		cut := ProportionCutoff(p)
		hits := 0
		for _, s := range samples {
			if s < cut {
				hits++
			}
		}
		got := float64(hits) / n
		if math.Abs(got-p) > tolerance {
			t.Fatalf("p=%v: observed fraction %v outside ±%v", p, got, tolerance)
		}
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestProportionCutoffPrecondition(t *testing.T) {
	mustPanic(t, "negative", func() { ProportionCutoff(-0.1) })
	mustPanic(t, "above one", func() { ProportionCutoff(1.1) })
	mustPanic(t, "NaN", func() { ProportionCutoff(math.NaN()) })
	mustPanic(t, "+Inf", func() { ProportionCutoff(math.Inf(1)) })
}

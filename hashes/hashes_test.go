package hashes

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"xdao.co/flexhash/digest"
)

// word is a minimal Hashable for exercising the sequence functions without
// pulling in the concrete value model.
type word string

func (w word) Hash128() digest.Digest128 { return digest.OfBytes([]byte(w)) }
func (w word) Hash64() uint64            { return digest.OfBytes64([]byte(w)) }

func words(ss ...string) []word {
	out := make([]word, len(ss))
	for i, s := range ss {
		out[i] = word(s)
	}
	return out
}

func TestHashPassThrough(t *testing.T) {
	v := word("pass-through")
	if Hash128(v) != v.Hash128() {
		t.Fatalf("Hash128 altered the value's own digest")
	}
	if Hash64(v) != v.Hash64() {
		t.Fatalf("Hash64 altered the value's own digest")
	}
}

func TestHashSequenceDeterministic(t *testing.T) {
	seq := words("a", "b", "c")
	if HashSequence128(seq) != HashSequence128(seq) {
		t.Fatalf("HashSequence128 not deterministic")
	}
	if HashSequence64(seq) != HashSequence64(seq) {
		t.Fatalf("HashSequence64 not deterministic")
	}
}

func TestHashSequenceEmpty(t *testing.T) {
	want := digest.OfUint64(0)
	if got := HashSequence128([]word{}); got != want {
		t.Fatalf("empty sequence: got %v, want %v", got, want)
	}
	if got := HashSequence128([]word(nil)); got != want {
		t.Fatalf("nil sequence: got %v, want %v", got, want)
	}
}

func TestHashSequenceWidthConsistency(t *testing.T) {
	for _, seq := range [][]word{
		nil,
		words("x"),
		words("a", "b", "c"),
		words("a", "a", "a", "a"),
	} {
		want := digest.Fold64(HashSequence128(seq))
		if got := HashSequence64(seq); got != want {
			t.Fatalf("width divergence for %v: %x != %x", seq, got, want)
		}
	}
}

func TestHashSequenceOrderSensitive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for i := 0; i < 1000; i++ {
		a := word(strconv.FormatUint(rng.Uint64(), 16))
		b := word(strconv.FormatUint(rng.Uint64(), 16))
		if a == b {
			continue
		}
		if HashSequence128([]word{a, b}) == HashSequence128([]word{b, a}) {
			t.Fatalf("order-insensitive for %q, %q", a, b)
		}
	}
}

func TestHashSequenceLengthSensitive(t *testing.T) {
	a := word("repeat")
	one := HashSequence128([]word{a})
	two := HashSequence128([]word{a, a})
	if one == two {
		t.Fatalf("[a] and [a, a] collide")
	}
	// A sequence must also differ from its own head element's digest.
	if one == a.Hash128() {
		t.Fatalf("[a] collides with a")
	}
}

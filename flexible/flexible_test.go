package flexible

import (
	"math"
	"testing"

	"xdao.co/flexhash/digest"
	"xdao.co/flexhash/hashes"
)

func TestScalarDigestsDeterministic(t *testing.T) {
	values := []Value{
		Integer(0),
		Integer(-1),
		Integer(math.MaxInt64),
		Float(0),
		Float(3.14159),
		String(""),
		String("flexhash"),
		Undefined{},
		List{Integer(1), String("two")},
	}
	for _, v := range values {
		if v.Hash128() != v.Hash128() {
			t.Fatalf("%s %v: Hash128 not deterministic", v.Type(), v)
		}
		if v.Hash64() != v.Hash64() {
			t.Fatalf("%s %v: Hash64 not deterministic", v.Type(), v)
		}
	}
}

func TestTypeTagSeparatesDigests(t *testing.T) {
	// The same surface form under different types must hash differently.
	variants := []Value{Integer(1), Float(1), String("1"), List{Integer(1)}}
	for i, a := range variants {
		for _, b := range variants[i+1:] {
			if a.Hash128() == b.Hash128() {
				t.Fatalf("%s and %s collide on %q", a.Type(), b.Type(), a.String())
			}
		}
	}
}

func TestFloatNormalization(t *testing.T) {
	if Float(math.Copysign(0, -1)).Hash128() != Float(0).Hash128() {
		t.Fatalf("-0 and +0 hash differently")
	}
	nan1 := Float(math.NaN())
	nan2 := Float(math.Float64frombits(0x7ff8000000000001))
	if nan1.Hash128() != nan2.Hash128() {
		t.Fatalf("NaN payloads hash differently")
	}
	if Float(1.0).Hash128() == Float(2.0).Hash128() {
		t.Fatalf("distinct floats collide")
	}
}

func TestListHashesAsSequence(t *testing.T) {
	l := List{Integer(1), String("two"), Float(3)}
	if l.Hash128() != hashes.HashSequence128(l) {
		t.Fatalf("List.Hash128 diverges from sequence hashing")
	}
	if l.Hash64() != digest.Fold64(l.Hash128()) {
		t.Fatalf("List.Hash64 diverges from Fold64 of Hash128")
	}
	if (List{}).Hash128() != digest.OfUint64(0) {
		t.Fatalf("empty list digest is not the zero-length seed")
	}
}

func TestNestedListsDistinct(t *testing.T) {
	flat := List{Integer(1), Integer(2), Integer(3)}
	nested := List{List{Integer(1), Integer(2)}, Integer(3)}
	if flat.Hash128() == nested.Hash128() {
		t.Fatalf("flat and nested lists collide")
	}
	single := List{Integer(7)}
	if single.Hash128() == Integer(7).Hash128() {
		t.Fatalf("singleton list collides with its element")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"42", TypeInteger},
		{"-7", TypeInteger},
		{"3.5", TypeFloat},
		{"1e10", TypeFloat},
		{"hello", TypeString},
		{"", TypeString},
		{"12abc", TypeString},
	}
	for _, tc := range tests {
		if got := Parse(tc.in).Type(); got != tc.want {
			t.Fatalf("Parse(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
}

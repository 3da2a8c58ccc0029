// Package hashes is the hashing surface of the library. It digests single
// values and ordered sequences of values, and converts a proportion into a
// digest-space cutoff for sampling decisions.
//
// Values are opaque here. Anything that can digest itself to 64 and 128 bits
// participates; the concrete value model lives in package flexible.
package hashes

import "xdao.co/flexhash/digest"

// Hashable is the capability a value must expose to be hashed.
//
// Implementations must be deterministic per distinct logical value and
// stable across the process lifetime.
type Hashable interface {
	Hash64() uint64
	Hash128() digest.Digest128
}

// Hash128 returns the 128-bit digest of a single value.
func Hash128(v Hashable) digest.Digest128 {
	return v.Hash128()
}

// Hash64 returns the 64-bit digest of a single value.
func Hash64(v Hashable) uint64 {
	return v.Hash64()
}

// HashSequence128 digests an ordered sequence of values.
//
// The running digest is seeded with the element count, so sequences that are
// prefixes of one another, and the empty sequence in particular, stay
// distinct. Each element's digest is then folded in with digest.Combine, in
// order; permutations of distinct elements produce distinct digests.
//
// An empty (or nil) sequence hashes to digest.OfUint64(0).
func HashSequence128[V Hashable](seq []V) digest.Digest128 {
	h := digest.OfUint64(uint64(len(seq)))
	for _, x := range seq {
		h = digest.Combine(h, x.Hash128())
	}
	return h
}

// HashSequence64 digests an ordered sequence of values to 64 bits.
//
// The 128-bit sequence digest is computed first and then narrowed with
// digest.Fold64, so the two widths never diverge in collision behavior.
func HashSequence64[V Hashable](seq []V) uint64 {
	return digest.Fold64(HashSequence128(seq))
}

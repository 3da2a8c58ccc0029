// Package sampling makes deterministic inclusion decisions from hash
// digests: the same value, seed and proportion always decide the same way,
// across runs and across machines.
package sampling

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"xdao.co/flexhash/hashes"
)

// Decider draws deterministic include/skip decisions. The Seed partitions
// decisions into independent families: two Deciders with different seeds
// agree on any given value only by chance. The zero Decider is usable.
type Decider struct {
	Seed uint64
}

// Include reports whether v falls inside proportion p of the digest space.
// p outside [0, 1] panics, as in hashes.ProportionCutoff.
func (d Decider) Include(v hashes.Hashable, p float64) bool {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v.Hash64())
	return d.decide(b[:], p)
}

// IncludeKey is Include for a raw byte key.
func (d Decider) IncludeKey(key []byte, p float64) bool {
	return d.decide(key, p)
}

func (d Decider) decide(b []byte, p float64) bool {
	cut := hashes.ProportionCutoff(p)
	return xxh3.HashSeed(b, d.Seed) < cut
}

// Include decides with the zero seed.
func Include(v hashes.Hashable, p float64) bool {
	return Decider{}.Include(v, p)
}

// IncludeKey decides for a raw byte key with the zero seed.
func IncludeKey(key []byte, p float64) bool {
	return Decider{}.IncludeKey(key, p)
}

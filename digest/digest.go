// Package digest provides the fixed-width digest types and the combination
// primitives the rest of the library composes: a 128-bit digest, an
// order-sensitive pairwise combine, and a 128-to-64-bit reduction.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dgryski/go-farm"
)

// Digest128 is a 128-bit hash digest.
type Digest128 struct {
	Hi uint64
	Lo uint64
}

// Size is the byte length of an encoded Digest128.
const Size = 16

// String renders the digest as 32 lowercase hex digits, high word first.
func (d Digest128) String() string {
	return fmt.Sprintf("%016x%016x", d.Hi, d.Lo)
}

// Bytes returns the big-endian 16-byte encoding of d.
func (d Digest128) Bytes() []byte {
	b := make([]byte, Size)
	binary.BigEndian.PutUint64(b[:8], d.Hi)
	binary.BigEndian.PutUint64(b[8:], d.Lo)
	return b
}

// ErrBadEncoding reports a malformed digest encoding.
var ErrBadEncoding = errors.New("malformed digest encoding")

// FromBytes decodes the big-endian 16-byte encoding produced by Bytes.
func FromBytes(b []byte) (Digest128, error) {
	if len(b) != Size {
		return Digest128{}, fmt.Errorf("%w: want %d bytes, got %d", ErrBadEncoding, Size, len(b))
	}
	return Digest128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}, nil
}

// Parse decodes the 32-hex-digit form produced by String.
func Parse(s string) (Digest128, error) {
	if len(s) != 2*Size {
		return Digest128{}, fmt.Errorf("%w: want %d hex digits, got %d", ErrBadEncoding, 2*Size, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest128{}, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	return FromBytes(b)
}

// foldMul is the multiplier from CityHash's Hash128to64 reduction.
const foldMul = 0x9ddfea08eb382d69

func fold(lo, hi uint64) uint64 {
	a := (lo ^ hi) * foldMul
	a ^= a >> 47
	b := (hi ^ a) * foldMul
	b ^= b >> 47
	b *= foldMul
	return b
}

// Fold64 reduces a 128-bit digest to 64 bits. The reduction is the canonical
// one used everywhere a Digest128 is narrowed, so 64- and 128-bit digests of
// the same input never diverge in collision behavior.
func Fold64(d Digest128) uint64 {
	return fold(d.Lo, d.Hi)
}

// Combine mixes two digests into one. The operation is deterministic and
// order-sensitive: Combine(a, b) and Combine(b, a) differ for distinct
// operands, which keeps sequence hashing sensitive to element order.
func Combine(a, b Digest128) Digest128 {
	return Digest128{
		Hi: fold(a.Hi, b.Hi),
		Lo: fold(a.Lo, b.Lo),
	}
}

// OfUint64 hashes a plain unsigned integer, such as a sequence length.
func OfUint64(n uint64) Digest128 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return OfBytes(buf[:])
}

// OfBytes returns the 128-bit FarmHash fingerprint of b. Fingerprints are
// stable across processes, platforms and library versions.
func OfBytes(b []byte) Digest128 {
	lo, hi := farm.Fingerprint128(b)
	return Digest128{Hi: hi, Lo: lo}
}

// OfBytes64 returns the 64-bit FarmHash fingerprint of b.
func OfBytes64(b []byte) uint64 {
	return farm.Fingerprint64(b)
}

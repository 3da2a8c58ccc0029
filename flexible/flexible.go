// Package flexible implements a small dynamically-typed value model
// (integers, floats, strings, lists and an undefined marker) whose values
// digest themselves to 64 and 128 bits.
//
// Digests cover the value's full semantic content including its type tag:
// Integer(1), Float(1) and String("1") all hash differently. Digests are
// FarmHash fingerprints, stable across processes and platforms.
package flexible

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"xdao.co/flexhash/digest"
	"xdao.co/flexhash/hashes"
)

// Type tags a Value's runtime type. The tag byte is part of every digest
// input, so values of different types never hash alike by accident.
type Type uint8

const (
	TypeUndefined Type = iota
	TypeInteger
	TypeFloat
	TypeString
	TypeList
)

func (t Type) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is a dynamically-typed value. Every Value satisfies hashes.Hashable.
type Value interface {
	hashes.Hashable
	Type() Type
	String() string
}

// Integer is a signed 64-bit integer value.
type Integer int64

func (i Integer) Type() Type { return TypeInteger }

func (i Integer) encode() []byte {
	var b [9]byte
	b[0] = byte(TypeInteger)
	binary.LittleEndian.PutUint64(b[1:], uint64(i))
	return b[:]
}

func (i Integer) Hash128() digest.Digest128 { return digest.OfBytes(i.encode()) }
func (i Integer) Hash64() uint64            { return digest.OfBytes64(i.encode()) }
func (i Integer) String() string            { return strconv.FormatInt(int64(i), 10) }

// Float is a 64-bit floating-point value.
//
// The digest input normalizes the bit pattern first: negative zero hashes
// like positive zero, and every NaN hashes like the canonical quiet NaN, so
// logically equal floats always share a digest.
type Float float64

func (f Float) Type() Type { return TypeFloat }

func (f Float) encode() []byte {
	v := float64(f)
	var bits uint64
	switch {
	case v != v:
		bits = math.Float64bits(math.NaN())
	case v == 0:
		bits = 0
	default:
		bits = math.Float64bits(v)
	}
	var b [9]byte
	b[0] = byte(TypeFloat)
	binary.LittleEndian.PutUint64(b[1:], bits)
	return b[:]
}

func (f Float) Hash128() digest.Digest128 { return digest.OfBytes(f.encode()) }
func (f Float) Hash64() uint64            { return digest.OfBytes64(f.encode()) }
func (f Float) String() string            { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// String is a UTF-8 string value.
type String string

func (s String) Type() Type { return TypeString }

func (s String) encode() []byte {
	b := make([]byte, 1+len(s))
	b[0] = byte(TypeString)
	copy(b[1:], s)
	return b
}

func (s String) Hash128() digest.Digest128 { return digest.OfBytes(s.encode()) }
func (s String) Hash64() uint64            { return digest.OfBytes64(s.encode()) }
func (s String) String() string            { return string(s) }

// Undefined is the absent value.
type Undefined struct{}

func (Undefined) Type() Type                { return TypeUndefined }
func (Undefined) Hash128() digest.Digest128 { return digest.OfBytes([]byte{byte(TypeUndefined)}) }
func (Undefined) Hash64() uint64            { return digest.OfBytes64([]byte{byte(TypeUndefined)}) }
func (Undefined) String() string            { return "undefined" }

// List is an ordered sequence of values. Lists nest.
//
// A List hashes as a sequence: length-seeded, order-sensitive, elements
// folded in one by one. The element digests already carry their own type
// tags, so no extra tag byte is mixed in here; the length seed is what
// separates a list from its own single element.
type List []Value

func (l List) Type() Type                { return TypeList }
func (l List) Hash128() digest.Digest128 { return hashes.HashSequence128(l) }
func (l List) Hash64() uint64            { return hashes.HashSequence64(l) }

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Parse interprets s as the most specific scalar it can hold: an Integer if
// it parses as one, else a Float, else a String.
func Parse(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Integer(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return String(s)
}

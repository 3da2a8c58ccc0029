package hashes

import (
	"fmt"
	"math"
)

// ProportionCutoff converts a proportion in [0, 1] into a 64-bit threshold
// for use against uniformly distributed digests:
//
//	cut := hashes.ProportionCutoff(p)
//	if hashes.Hash64(v) < cut {
//		// taken with probability p
//	}
//
// A double carries ~53 bits of exact integer precision, so scaling straight
// to the full 2^64 range silently rounds. The proportion is instead scaled
// to half the range, where the product is still exact, and then doubled with
// each half clipped against its remaining headroom. proportion = 1.0
// saturates at exactly math.MaxUint64 and proportion = 0.0 yields 0.
//
// proportion outside [0, 1] (including NaN) is a caller bug and panics.
func ProportionCutoff(proportion float64) uint64 {
	if !(proportion >= 0.0 && proportion <= 1.0) {
		panic(fmt.Sprintf("hashes: ProportionCutoff: proportion %v outside [0, 1]", proportion))
	}

	const half = uint64(1) << 63
	xHalf := uint64(proportion * float64(half))

	const clip0 = half
	const clip1 = math.MaxUint64 - half

	return min(clip0, xHalf) + min(clip1, xHalf)
}

// Package fingerprint renders value digests as stable external identifiers
// for interchange with content-addressed systems.
package fingerprint

import (
	"crypto/sha256"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"

	"xdao.co/flexhash/hashes"
)

// CIDForBytes returns a CIDv1 string using the "raw" multicodec and a
// sha2-256 multihash over data.
func CIDForBytes(data []byte) (string, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("multihash: %w", err)
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}

// CID returns a CIDv1 (raw + sha2-256) fingerprint of v, derived from the
// canonical byte encoding of its 128-bit digest.
func CID(v hashes.Hashable) (string, error) {
	return CIDForBytes(v.Hash128().Bytes())
}

// Sum returns the fingerprint of v under the named hash algorithm.
// Supported: "sha256", "sha3-256".
func Sum(v hashes.Hashable, alg string) ([]byte, error) {
	b := v.Hash128().Bytes()
	switch alg {
	case "sha256":
		sum := sha256.Sum256(b)
		return sum[:], nil
	case "sha3-256":
		sum := sha3.Sum256(b)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("unsupported fingerprint algorithm %q", alg)
	}
}

// SumSHA3 returns the sha3-256 fingerprint of v.
func SumSHA3(v hashes.Hashable) []byte {
	sum := sha3.Sum256(v.Hash128().Bytes())
	return sum[:]
}

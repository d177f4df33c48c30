// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zeebo/blake3"
)

// Generator points. G is the bn254 base generator; H is derived by
// hash-to-curve so that nobody knows its discrete log relative to G.
var (
	genG bn254.G1Affine
	genH bn254.G1Affine
)

func init() {
	_, _, g1Gen, _ := bn254.Generators()
	genG = g1Gen
	genH = hashToG1("RGB_Pedersen_H_Generator")
}

// Commit creates a deterministic Pedersen commitment C = v*G + r*H.
// The blinding factor is interpreted as a big-endian scalar and reduced
// modulo the group order.
func Commit(value uint64, blinding [32]byte) Confidential {
	var v, r fr.Element
	v.SetUint64(value)
	r.SetBytes(blinding[:])

	var vG, rH bn254.G1Affine
	vG.ScalarMultiplication(&genG, v.BigInt(new(big.Int)))
	rH.ScalarMultiplication(&genH, r.BigInt(new(big.Int)))

	var commitment bn254.G1Affine
	commitment.Add(&vG, &rH)

	return Confidential{Commitment: commitment.Bytes()}
}

// VerifyCommitSum reports whether the two commitment multisets sum to the
// same group element. The check is order-independent and empty sums are the
// group identity. Commitments that do not decode to valid curve points fail
// the check.
func VerifyCommitSum(lhs, rhs []Confidential) bool {
	lhsSum, ok := sumCommitments(lhs)
	if !ok {
		return false
	}
	rhsSum, ok := sumCommitments(rhs)
	if !ok {
		return false
	}
	return lhsSum.Equal(&rhsSum)
}

func sumCommitments(commitments []Confidential) (bn254.G1Affine, bool) {
	var sum bn254.G1Jac
	for _, c := range commitments {
		var pt bn254.G1Affine
		if _, err := pt.SetBytes(c.Commitment[:]); err != nil {
			return bn254.G1Affine{}, false
		}
		var ptJac bn254.G1Jac
		ptJac.FromAffine(&pt)
		sum.AddAssign(&ptJac)
	}
	var aff bn254.G1Affine
	aff.FromJacobian(&sum)
	return aff, true
}

// hashToG1 derives a generator from a seed using try-and-increment: hash the
// seed with a counter until the digest is the x coordinate of a curve point.
func hashToG1(seed string) bn254.G1Affine {
	var point bn254.G1Affine

	seedBytes := []byte(seed)
	for counter := 0; counter < 256; counter++ {
		h := blake3.New()
		h.Write(seedBytes)
		h.Write([]byte{byte(counter)})
		var digest [32]byte
		h.Digest().Read(digest[:])

		var x fp.Element
		x.SetBytes(digest[:])

		// y^2 = x^3 + 3
		var x2, x3, rhs fp.Element
		x2.Square(&x)
		x3.Mul(&x2, &x)

		var three fp.Element
		three.SetInt64(3)
		rhs.Add(&x3, &three)

		var y fp.Element
		if y.Sqrt(&rhs) != nil {
			point.X = x
			point.Y = y
			if point.IsOnCurve() && !point.IsInfinity() {
				return point
			}
		}
	}

	// Unreachable with any reasonable seed.
	_, _, g1, _ := bn254.Generators()
	return g1
}

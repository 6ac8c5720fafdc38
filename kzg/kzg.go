// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package kzg

import (
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing/bn256"

	verkle "github.com/scaraven/verkle-tree-implementation"
	"github.com/scaraven/verkle-tree-implementation/crypto"
)

// KZG is a verkle.VectorCommitment backed by a Setup: committing is a
// single multi-scalar multiplication against the Lagrange SRS, opening
// is a quotient-polynomial commitment, and verifying is a single
// pairing check.
type KZG struct {
	setup *Setup
}

// New wraps setup as a VectorCommitment.
func New(setup *Setup) *KZG {
	return &KZG{setup: setup}
}

var _ verkle.VectorCommitment = (*KZG)(nil)

// Commitment is a KZG commitment: a single compressed G1 point.
type Commitment struct {
	point kyber.Point
}

// Bytes returns the commitment's canonical compressed serialization.
func (c Commitment) Bytes() []byte {
	b, err := c.point.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("kzg: commitment point failed to marshal: %v", err))
	}
	return b
}

// openingProof is a KZG opening proof: the commitment to the quotient
// polynomial (f(x) - f(z)) / (x - z), boxed so it satisfies
// verkle.Opening without leaking a bare kyber.Point through the
// VectorCommitment interface.
type openingProof struct {
	point kyber.Point
}

// CommitFromChildren commits to digests via a single MSM against the
// Lagrange-basis SRS: C = sum_i digests[i] * [L_i(s)]_1.
func (k *KZG) CommitFromChildren(digests [verkle.NodeWidth]verkle.Fr) verkle.Commitment {
	suite := k.setup.suite
	sum := suite.G1().Point().Null()
	for i, d := range digests {
		scalar := frToScalar(d)
		term := suite.G1().Point().Mul(scalar, k.setup.lbG1[i])
		sum = suite.G1().Point().Add(sum, term)
	}
	return Commitment{point: sum}
}

// OpenAt opens digests at index: it interpolates digests into monomial
// coefficients, divides by (x - domain[index]) via synthetic division,
// and commits the quotient's coefficients against the monomial SRS.
func (k *KZG) OpenAt(digests [verkle.NodeWidth]verkle.Fr, index uint8) (verkle.Fr, verkle.Opening) {
	suite := k.setup.suite

	coeffs := interpolate(suite, k.setup.domain, digests)
	quotient := syntheticDivide(suite, coeffs, k.setup.domain[index])

	sum := suite.G1().Point().Null()
	for i, q := range quotient {
		term := suite.G1().Point().Mul(q, k.setup.tau1[i])
		sum = suite.G1().Point().Add(sum, term)
	}
	return digests[index], openingProof{point: sum}
}

// VerifyAt checks that e(pi, (s - domain[index])*G2) equals
// e(c - value*G1, G2), the standard single-point KZG pairing check.
func (k *KZG) VerifyAt(c verkle.Commitment, index uint8, value verkle.Fr, proof verkle.Opening) bool {
	commit, ok := c.(Commitment)
	if !ok {
		return false
	}
	open, ok := proof.(openingProof)
	if !ok {
		return false
	}
	if int(index) >= len(k.setup.diff2) {
		return false
	}

	suite := k.setup.suite

	lhs := suite.Pair(open.point, k.setup.diff2[index])

	vG1 := suite.G1().Point().Mul(frToScalar(value), k.setup.g1Base)
	cMinusV := suite.G1().Point().Sub(commit.point, vG1)
	rhs := suite.Pair(cMinusV, k.setup.g2Base)

	return lhs.Equal(rhs)
}

// frToScalar reduces an Fr digest (32 little-endian bytes, per
// verkle.HashToField) to the scalar field.
func frToScalar(fr verkle.Fr) kyber.Scalar {
	s, err := crypto.FromLEBytes(fr[:])
	if err != nil {
		// fr is always exactly 32 bytes; FromLEBytes only rejects
		// longer input.
		panic(err)
	}
	return s
}

// interpolate returns the monomial coefficients of the unique
// polynomial of degree < len(domain) that evaluates to values[i] at
// domain[i], via the naive O(n^2) inverse DFT: c_j = (1/n) * sum_i
// values[i] * domain[i]^-j.
func interpolate(suite *bn256.Suite, domain []kyber.Scalar, values [verkle.NodeWidth]verkle.Fr) []kyber.Scalar {
	n := len(domain)
	invN := suite.G1().Scalar().Inv(suite.G1().Scalar().SetInt64(int64(n)))

	invDomain := make([]kyber.Scalar, n)
	for i, d := range domain {
		invDomain[i] = suite.G1().Scalar().Inv(d)
	}

	coeffs := make([]kyber.Scalar, n)
	for j := 0; j < n; j++ {
		sum := suite.G1().Scalar().Zero()
		power := suite.G1().Scalar().One()
		for i := 0; i < n; i++ {
			yi := frToScalar(values[i])
			term := suite.G1().Scalar().Mul(yi, power)
			sum = suite.G1().Scalar().Add(sum, term)
			power = suite.G1().Scalar().Mul(power, invDomain[j])
		}
		coeffs[j] = suite.G1().Scalar().Mul(sum, invN)
	}
	return coeffs
}

// syntheticDivide divides the polynomial with coefficients coeffs
// (ascending degree) by (x - z), discarding the remainder. The
// remainder is the polynomial's value at z, so the result is the
// quotient (p(x) - p(z)) / (x - z).
func syntheticDivide(suite *bn256.Suite, coeffs []kyber.Scalar, z kyber.Scalar) []kyber.Scalar {
	n := len(coeffs)
	quotient := make([]kyber.Scalar, n-1)
	quotient[n-2] = coeffs[n-1]
	for i := n - 2; i >= 1; i-- {
		quotient[i-1] = suite.G1().Scalar().Add(coeffs[i], suite.G1().Scalar().Mul(z, quotient[i]))
	}
	return quotient
}

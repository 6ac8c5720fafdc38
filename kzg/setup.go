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

// Package kzg is a KZG polynomial commitment backend for the verkle
// package's VectorCommitment interface, over the domain of 256th roots
// of unity in the BN256 pairing-friendly curve's scalar field.
package kzg

import (
	"io"
	"math/big"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing/bn256"

	"github.com/scaraven/verkle-tree-implementation/crypto"
)

// domainSize matches verkle.NodeWidth: one domain point per slot of
// the digest vectors this backend commits to.
const domainSize = 256

// frModulus is the order of the BN256 scalar field, the same curve
// family (and the same r) as go-ethereum's and x/crypto's bn256. It is
// only ever used locally to compute the exponent (r-1)/domainSize that
// derives a primitive domainSize-th root of unity; every other scalar
// operation goes through kyber's own field arithmetic.
var frModulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// frGenerator is a known generator of the BN256 scalar field's
// multiplicative group.
const frGenerator = 5

// Setup is a KZG trusted setup for a fixed domain of domainSize points.
// It carries everything CommitFromChildren, OpenAt and VerifyAt need:
// the domain points themselves, a Lagrange-basis SRS in G1 (so
// committing a digest vector is a single multi-scalar multiplication,
// with the IFFT folded into setup time), and a small per-domain-point
// precomputed G2 table for the pairing check in VerifyAt. The secret
// used to derive it (the "toxic waste") is never retained.
type Setup struct {
	suite *bn256.Suite

	domain []kyber.Scalar // domain[i] = ω^i
	lbG1   []kyber.Point  // lbG1[i] = [L_i(s)]_1

	// diff2[i] = [(s - ω^i)]_2, precomputed so VerifyAt needs no
	// secret-dependent computation at verify time.
	diff2 []kyber.Point

	// tau1[j] = [s^j]_1, the monomial-basis SRS. OpenAt needs this to
	// commit a quotient polynomial's coefficients directly; lbG1 alone
	// (already folded into Lagrange form) cannot cheaply produce it.
	tau1 []kyber.Point

	g1Base kyber.Point
	g2Base kyber.Point
}

// GenerateSetup runs a trusted setup ceremony: it samples a fresh
// secret scalar from rng, builds the monomial-basis SRS up to
// domainSize-1, and immediately folds it into Lagrange form. A real
// deployment would run this once, in a multi-party ceremony, and
// discard the secret; here a single party samples it and it goes out
// of scope at the end of this function.
func GenerateSetup(rng io.Reader) (*Setup, error) {
	suite := crypto.NewSuite()

	s, err := randomScalar(suite, rng)
	if err != nil {
		return nil, err
	}

	omega, err := primitiveRoot(suite, domainSize)
	if err != nil {
		return nil, err
	}

	domain := make([]kyber.Scalar, domainSize)
	domain[0] = suite.G1().Scalar().One()
	for i := 1; i < domainSize; i++ {
		domain[i] = suite.G1().Scalar().Mul(domain[i-1], omega)
	}

	g1Base := suite.G1().Point().Base()
	g2Base := suite.G2().Point().Base()

	// Monomial-basis SRS in G1: tau1[j] = [s^j]_1.
	tau1 := make([]kyber.Point, domainSize)
	acc := suite.G1().Scalar().One()
	for j := 0; j < domainSize; j++ {
		tau1[j] = suite.G1().Point().Mul(acc, g1Base)
		acc = suite.G1().Scalar().Mul(acc, s)
	}

	invOmega := suite.G1().Scalar().Inv(omega)
	invN := suite.G1().Scalar().Inv(intToScalar(suite, domainSize))

	// Fold the monomial SRS into Lagrange form: [L_i(s)]_1 =
	// (1/n) * sum_j (ω^-i)^j * [s^j]_1. This is the one-time,
	// setup-side IFFT; CommitFromChildren then needs no further
	// transform, only a single MSM against lbG1.
	lbG1 := make([]kyber.Point, domainSize)
	for i := 0; i < domainSize; i++ {
		invOmegaPowI := pow(suite, invOmega, i)

		sum := suite.G1().Point().Null()
		coeff := suite.G1().Scalar().One()
		for j := 0; j < domainSize; j++ {
			term := suite.G1().Point().Mul(coeff, tau1[j])
			sum = suite.G1().Point().Add(sum, term)
			coeff = suite.G1().Scalar().Mul(coeff, invOmegaPowI)
		}
		lbG1[i] = suite.G1().Point().Mul(invN, sum)
	}

	sG2 := suite.G2().Point().Mul(s, g2Base)
	diff2 := make([]kyber.Point, domainSize)
	for i := 0; i < domainSize; i++ {
		wG2 := suite.G2().Point().Mul(domain[i], g2Base)
		diff2[i] = suite.G2().Point().Sub(sG2, wG2)
	}

	return &Setup{
		suite:  suite,
		domain: domain,
		lbG1:   lbG1,
		diff2:  diff2,
		tau1:   tau1,
		g1Base: g1Base,
		g2Base: g2Base,
	}, nil
}

func randomScalar(suite *bn256.Suite, rng io.Reader) (kyber.Scalar, error) {
	buf := make([]byte, 32)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, err
	}
	return suite.G1().Scalar().SetBytes(buf), nil
}

// primitiveRoot returns a generator of the unique subgroup of order n
// in the BN256 scalar field, g^((r-1)/n) for the known generator g of
// the full multiplicative group. n must divide r-1.
func primitiveRoot(suite *bn256.Suite, n int) (kyber.Scalar, error) {
	exp := new(big.Int).Sub(frModulus, big.NewInt(1))
	exp.Div(exp, big.NewInt(int64(n)))

	g := intToScalar(suite, frGenerator)
	return scalarPow(suite, g, exp), nil
}

// scalarPow computes base^exp via square-and-multiply, using only
// kyber's field multiplication: kyber's Scalar interface has no
// exponentiation method of its own.
func scalarPow(suite *bn256.Suite, base kyber.Scalar, exp *big.Int) kyber.Scalar {
	result := suite.G1().Scalar().One()
	b := base.Clone()
	for _, word := range exp.Bits() {
		for i := 0; i < bitsPerWord; i++ {
			if word&1 == 1 {
				result = suite.G1().Scalar().Mul(result, b)
			}
			b = suite.G1().Scalar().Mul(b, b)
			word >>= 1
		}
	}
	return result
}

// pow computes base^n for a small non-negative int n.
func pow(suite *bn256.Suite, base kyber.Scalar, n int) kyber.Scalar {
	result := suite.G1().Scalar().One()
	b := base.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = suite.G1().Scalar().Mul(result, b)
		}
		b = suite.G1().Scalar().Mul(b, b)
		n >>= 1
	}
	return result
}

func intToScalar(suite *bn256.Suite, v int64) kyber.Scalar {
	return suite.G1().Scalar().SetInt64(v)
}

// bitsPerWord matches the width of big.Word on every platform this
// module targets (64-bit).
const bitsPerWord = 64

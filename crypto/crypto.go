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

// Package crypto isolates the concrete curve library the kzg backend
// is built on (go.dedis.ch/kyber/v3's bn256 suite) behind a few named
// helpers. kzg takes its suite and its digest-to-scalar reduction from
// here; for the rest it works with kyber's types directly.
package crypto

import (
	"errors"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing/bn256"
)

type (
	Fr    = kyber.Scalar
	Point = kyber.Point
)

// suite backs every Fr/Point constructed by this package. All groups
// of a bn256 suite share one scalar field, so which group's Scalar()
// factory mints a fresh scalar does not matter; G1 is used throughout
// for consistency.
var suite = bn256.NewSuite()

// NewSuite returns the pairing suite backing this package's helpers,
// for callers (kzg.GenerateSetup, kzg.KZG) that need direct access to
// G1, G2, GT and the pairing operation.
func NewSuite() *bn256.Suite {
	return suite
}

// CopyFr sets dst to src's value without aliasing.
func CopyFr(dst, src Fr) {
	dst.Set(src)
}

// CopyPoint sets dst to src's value without aliasing.
func CopyPoint(dst, src Point) {
	dst.Set(src)
}

// FromLEBytes reduces up to 32 little-endian bytes to a scalar field
// element. data longer than 32 bytes is rejected; shorter data is
// treated as zero-padded at the high end.
func FromLEBytes(data []byte) (Fr, error) {
	if len(data) > 32 {
		return nil, errors.New("crypto: data is too long")
	}
	var le [32]byte
	copy(le[:], data)

	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = le[31-i]
	}
	return suite.G1().Scalar().SetBytes(be[:]), nil
}

// Equal reports whether two points represent the same group element.
func Equal(a, b Point) bool {
	return a.Equal(b)
}

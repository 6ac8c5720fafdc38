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

package verkle

import "bytes"

// fakeVC is a full-disclosure, non-hiding VectorCommitment: its
// "commitment" is a hash of the whole digest array, and its "proof" is
// the array itself. It satisfies every invariant the real kzg backend
// does (binding, one proof per coordinate) without any curve
// arithmetic, so tree/proof logic can be tested on its own, fast and
// without a trusted setup. kzg_test.go in the kzg package is what
// actually exercises the real backend.
type fakeVC struct{}

type fakeCommitment struct {
	digests [NodeWidth]Fr
}

func (f fakeCommitment) Bytes() []byte {
	buf := make([]byte, 0, NodeWidth*32)
	for _, d := range f.digests {
		buf = append(buf, d[:]...)
	}
	h := HashToField(buf)
	return h[:]
}

func (fakeVC) CommitFromChildren(digests [NodeWidth]Fr) Commitment {
	return fakeCommitment{digests: digests}
}

func (fakeVC) OpenAt(digests [NodeWidth]Fr, index uint8) (Fr, Opening) {
	return digests[index], digests
}

func (fakeVC) VerifyAt(c Commitment, index uint8, value Fr, proof Opening) bool {
	arr, ok := proof.([NodeWidth]Fr)
	if !ok {
		return false
	}
	if !bytes.Equal((fakeCommitment{digests: arr}).Bytes(), c.Bytes()) {
		return false
	}
	return arr[index] == value
}

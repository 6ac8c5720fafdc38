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

import "github.com/zeebo/blake3"

// Fr is the wire representation of a scalar field element: a 32-byte
// little-endian digest, to be reduced modulo whatever scalar field a
// concrete VectorCommitment backend uses. Producers (HashToField, the
// tree's digest-array construction) never reduce; reduction happens
// once, inside the backend, when the bytes are consumed.
type Fr [32]byte

// Commitment is a backend's opaque commitment to a digest vector. It
// must expose a canonical, compressed serialization: that is what
// gets hashed into a parent node's digest array.
type Commitment interface {
	Bytes() []byte
}

// Opening is a backend's opaque single-coordinate opening proof.
// Nothing outside the backend ever inspects it; it is only ever
// handed back to VerifyAt.
type Opening any

// VectorCommitment is the pluggable commitment scheme every tree is
// parametric over. A conforming backend commits to a fixed-size vector
// of NodeWidth field elements evaluated at a fixed domain of
// NodeWidth-th roots of unity, and can open or verify any single
// coordinate of that vector against the commitment.
type VectorCommitment interface {
	// CommitFromChildren returns the commitment to digests, evaluated
	// at the backend's fixed domain points.
	CommitFromChildren(digests [NodeWidth]Fr) Commitment

	// OpenAt returns the value at domain point i (which must equal
	// digests[i]) together with a proof binding (commitment, i, value).
	OpenAt(digests [NodeWidth]Fr, index uint8) (Fr, Opening)

	// VerifyAt checks proof against (c, index, value).
	VerifyAt(c Commitment, index uint8, value Fr, proof Opening) bool
}

// HashToField reduces an arbitrary byte string to a scalar field
// digest: a 32-byte BLAKE3 hash, consumed little-endian mod the
// backend's scalar field. It never errors and never panics.
func HashToField(data []byte) Fr {
	return Fr(blake3.Sum256(data))
}

// digestCommitment folds a child or extension commitment into its
// parent's digest array: hash_to_field of the commitment's canonical
// compressed serialization.
func digestCommitment(c Commitment) Fr {
	return HashToField(c.Bytes())
}

// ZeroChild is the digest used for an internal node's absent children:
// hash_to_field of 32 zero bytes.
var ZeroChild = HashToField(make([]byte, 32))

// ZeroValue is the digest used for an extension's unset suffix slots:
// hash_to_field of the empty byte string.
var ZeroValue = HashToField(nil)

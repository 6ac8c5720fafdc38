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

// NodeWidth is the arity A of every internal node and the number of
// suffix slots in every extension: one byte of key material per level.
const NodeWidth = 256

// Stem is the first 31 bytes of a 32-byte key. It determines the path
// from the root down to the extension that would hold the key.
type Stem [31]byte

// Suffix is the 32nd byte of a key: the slot index within an extension.
type Suffix = byte

// splitKey splits a 32-byte key into its stem and suffix.
func splitKey(key [32]byte) (Stem, Suffix) {
	var stem Stem
	copy(stem[:], key[:31])
	return stem, key[31]
}

// node is the tagged union of internal and extension nodes. The
// variants carry data only: commitment recomputation (tree.go) and
// proof-step emission (proof.go) switch on the concrete type.
type node interface {
	isNode()
}

// internalNode holds up to NodeWidth children and a parallel array of
// per-slot digests. children[i] is nil when no subtree has been
// created at that branch yet; digests[i] is then ZeroChild.
type internalNode struct {
	children [NodeWidth]node
	digests  [NodeWidth]Fr
}

// extensionNode is a compressed leaf: a single stem shared by up to
// NodeWidth values, one per suffix. values[i] is nil for an unset
// slot, and digests[i] is then ZeroValue.
type extensionNode struct {
	stem    Stem
	values  [NodeWidth][]byte
	digests [NodeWidth]Fr
}

func (*internalNode) isNode()  {}
func (*extensionNode) isNode() {}

func newInternalNode() *internalNode {
	n := &internalNode{}
	for i := range n.digests {
		n.digests[i] = ZeroChild
	}
	return n
}

func newExtensionNode(stem Stem) *extensionNode {
	n := &extensionNode{stem: stem}
	for i := range n.digests {
		n.digests[i] = ZeroValue
	}
	return n
}

// firstDiffIndex returns the index of the first byte at which a and b
// differ, or 31 if they are equal (callers must not rely on the 31
// case; stems passed here are always known to differ, per Invariant 5).
func firstDiffIndex(a, b Stem) int {
	for i := 0; i < 31; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return 31
}

// splitExtension replaces an extension holding stem old.stem with an
// internal subtree that forks at the first byte where old.stem and
// newStem diverge. startDepth is the number of stem bytes already
// consumed on the path down to old (i.e. old's own depth). The
// returned node is the new subtree root, to be installed in place of
// old by the caller.
func splitExtension(startDepth int, old *extensionNode, newStem Stem) *internalNode {
	d := firstDiffIndex(old.stem, newStem)
	if d >= 31 {
		panic("splitExtension called with identical stems")
	}
	if startDepth > d {
		panic("splitExtension: startDepth past the divergence point")
	}

	root := newInternalNode()
	cur := root
	for i := startDepth; i < d; i++ {
		next := newInternalNode()
		cur.children[old.stem[i]] = next
		cur = next
	}

	freshStem := newStem
	cur.children[old.stem[d]] = old
	cur.children[newStem[d]] = newExtensionNode(freshStem)

	return root
}

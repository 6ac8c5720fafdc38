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

// Package verkle implements a Verkle tree: a 32-byte-keyed,
// authenticated key-value map in which every internal node is
// summarized by a vector commitment rather than a hash. It is
// parametric over the commitment scheme via the VectorCommitment
// interface; see the kzg subpackage for a concrete backend.
package verkle

// Tree is a Verkle tree over 32-byte keys. The zero value is not
// usable; construct one with New. A Tree is not safe for concurrent
// use: Get and ProveGet only read, but Insert and Commit mutate node
// state in place.
type Tree struct {
	root node
	vc   VectorCommitment
}

// New creates an empty tree backed by the given vector commitment
// scheme.
func New(vc VectorCommitment) *Tree {
	return &Tree{vc: vc}
}

// Get looks up key and reports whether a value is present.
func (t *Tree) Get(key [32]byte) ([]byte, bool) {
	stem, suffix := splitKey(key)
	return get(t.root, 0, stem, suffix)
}

func get(n node, depth int, stem Stem, suffix Suffix) ([]byte, bool) {
	switch cur := n.(type) {
	case nil:
		return nil, false
	case *internalNode:
		if depth >= 31 {
			return nil, false
		}
		return get(cur.children[stem[depth]], depth+1, stem, suffix)
	case *extensionNode:
		if cur.stem != stem {
			return nil, false
		}
		v := cur.values[suffix]
		if v == nil {
			return nil, false
		}
		return v, true
	default:
		panic("verkle: unknown node type")
	}
}

// Insert writes value at key, overwriting any existing value there.
// Every Insert recomputes the whole tree's commitments afterward; there
// is no incremental update.
func (t *Tree) Insert(key [32]byte, value []byte) {
	stem, suffix := splitKey(key)
	t.root = insert(t.root, 0, stem, suffix, value)
	t.Commit()
}

// insert walks down from n, creating or splitting nodes as needed, and
// returns the (possibly new) node that should replace n in its parent.
func insert(n node, depth int, stem Stem, suffix Suffix, value []byte) node {
	switch cur := n.(type) {
	case nil:
		// Case 1: empty subtree. Plant a fresh extension.
		ext := newExtensionNode(stem)
		ext.values[suffix] = value
		return ext

	case *internalNode:
		if depth >= 31 {
			panic("verkle: internal node found at maximum depth")
		}
		// Case 2: recurse into a (possibly absent) child.
		idx := stem[depth]
		cur.children[idx] = insert(cur.children[idx], depth+1, stem, suffix, value)
		return cur

	case *extensionNode:
		if cur.stem == stem {
			// Case 3: same stem, overwrite the suffix slot.
			cur.values[suffix] = value
			return cur
		}
		// Case 4: stems diverge, split and recurse into the fork.
		fork := splitExtension(depth, cur, stem)
		return insert(fork, depth, stem, suffix, value)

	default:
		panic("verkle: unknown node type")
	}
}

// Commit returns the tree's root commitment, recomputing every node's
// digest array along the way. An empty tree's commitment is the VC's
// commitment to an all-ZeroChild vector.
func (t *Tree) Commit() Commitment {
	if t.root == nil {
		var empty [NodeWidth]Fr
		for i := range empty {
			empty[i] = ZeroChild
		}
		return t.vc.CommitFromChildren(empty)
	}
	return computeCommitment(t.root, t.vc)
}

// computeCommitment recursively refreshes n's digest array and returns
// its commitment. Internal digests are the hash of each child's
// (recursively computed) commitment; extension digests mix in the
// extension's own stem so that two extensions holding the same values
// under different stems commit to different things.
func computeCommitment(n node, vc VectorCommitment) Commitment {
	switch cur := n.(type) {
	case *internalNode:
		for i, child := range cur.children {
			if child == nil {
				cur.digests[i] = ZeroChild
				continue
			}
			childCommit := computeCommitment(child, vc)
			cur.digests[i] = digestCommitment(childCommit)
		}
		return vc.CommitFromChildren(cur.digests)

	case *extensionNode:
		for i, v := range cur.values {
			if v == nil {
				cur.digests[i] = ZeroValue
				continue
			}
			cur.digests[i] = stemBoundDigest(cur.stem, v)
		}
		return vc.CommitFromChildren(cur.digests)

	default:
		panic("verkle: unknown node type")
	}
}

// stemBoundDigest is the per-slot digest of a populated extension
// value: hash_to_field(stem || value), not just hash_to_field(value).
// Binding the extension's own stem into every populated slot's digest
// is what makes a forged proof (reusing a real extension's commitment
// under a different, diverging key) fail at verification time.
func stemBoundDigest(stem Stem, value []byte) Fr {
	buf := make([]byte, 0, len(stem)+len(value))
	buf = append(buf, stem[:]...)
	buf = append(buf, value...)
	return HashToField(buf)
}

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

// maxSteps bounds a proof at one step per stem byte plus the terminal
// extension step.
const maxSteps = 32

// Step is one hop of a proof, chaining a parent commitment down to its
// child. Internal steps carry the child's digest and an opening of
// that digest at the branch index; the terminal Extension step instead
// opens the value digest at the suffix index.
type Step struct {
	Extension bool // true only for the last step in a Proof

	Commit      Commitment // parent_commit (Internal) or ext_commit (Extension)
	Index       uint8      // stem[depth] (Internal) or suffix (Extension)
	ChildDigest Fr         // meaningful only when !Extension
	Opening     Opening
}

// Proof is an ordered chain of Steps from the root down to the
// extension holding a key, plus the claimed value at that key's
// suffix.
type Proof struct {
	Steps []Step
	Value []byte
}

// ProveGet walks to key's extension exactly as Get does, emitting one
// Step per node visited, and reports false if the key is absent
// (empty tree, a missing internal child, a mismatched stem, or an
// unset suffix slot in a matching extension — this package defines no
// absence proof).
func (t *Tree) ProveGet(key [32]byte) (*Proof, bool) {
	stem, suffix := splitKey(key)

	var steps []Step
	cur := t.root
	depth := 0
	for {
		switch n := cur.(type) {
		case nil:
			return nil, false

		case *internalNode:
			if depth >= 31 {
				return nil, false
			}
			idx := stem[depth]
			parentCommit := t.vc.CommitFromChildren(n.digests)
			_, opening := t.vc.OpenAt(n.digests, idx)
			steps = append(steps, Step{
				Commit:      parentCommit,
				Index:       idx,
				ChildDigest: n.digests[idx],
				Opening:     opening,
			})
			cur = n.children[idx]
			depth++

		case *extensionNode:
			if n.stem != stem {
				return nil, false
			}
			v := n.values[suffix]
			if v == nil {
				return nil, false
			}
			extCommit := t.vc.CommitFromChildren(n.digests)
			_, opening := t.vc.OpenAt(n.digests, suffix)
			steps = append(steps, Step{
				Extension: true,
				Commit:    extCommit,
				Index:     suffix,
				Opening:   opening,
			})
			return &Proof{Steps: steps, Value: v}, true

		default:
			panic("verkle: unknown node type")
		}
	}
}

// VerifyProof checks proof against rootCommit for key, without access
// to the tree itself. A malformed or forged proof, including one with a
// nil commitment, is rejected by returning false; a panic raised inside
// the backend itself (for example by a Commitment's Bytes) is not
// recovered.
func VerifyProof(vc VectorCommitment, rootCommit Commitment, proof *Proof, key [32]byte) bool {
	if rootCommit == nil || proof == nil || len(proof.Steps) == 0 || len(proof.Steps) > maxSteps {
		return false
	}
	for _, s := range proof.Steps {
		if s.Commit == nil {
			return false
		}
	}
	if !proof.Steps[len(proof.Steps)-1].Extension {
		return false
	}
	for _, s := range proof.Steps[:len(proof.Steps)-1] {
		if s.Extension {
			return false
		}
	}

	stem, suffix := splitKey(key)

	var prevChildDigest Fr
	for i, step := range proof.Steps {
		if i == 0 {
			if !bytes.Equal(step.Commit.Bytes(), rootCommit.Bytes()) {
				return false
			}
		} else if digestCommitment(step.Commit) != prevChildDigest {
			return false
		}

		if !step.Extension {
			if int(step.Index) != int(stem[i]) {
				return false
			}
			if !vc.VerifyAt(step.Commit, step.Index, step.ChildDigest, step.Opening) {
				return false
			}
			prevChildDigest = step.ChildDigest
			continue
		}

		if step.Index != suffix {
			return false
		}
		expected := stemBoundDigest(stem, proof.Value)
		if !vc.VerifyAt(step.Commit, step.Index, expected, step.Opening) {
			return false
		}
	}
	return true
}

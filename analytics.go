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

// Stats summarizes the shape of a tree: how deep it is and how many
// nodes and values it holds. It is a read-only traversal, useful in
// tests and in cmd/verklebench to sanity-check a generated tree.
type Stats struct {
	DepthMin, DepthMax           int
	InternalCount, ExtensionCount int
	ValueCount                   int
}

// Stats walks the whole tree and reports its shape.
func (t *Tree) Stats() Stats {
	if t.root == nil {
		return Stats{}
	}
	return stats(t.root, 0)
}

func stats(n node, depth int) Stats {
	switch cur := n.(type) {
	case *internalNode:
		var s Stats
		first := true
		for _, child := range cur.children {
			if child == nil {
				continue
			}
			cs := stats(child, depth+1)
			if first {
				s.DepthMin, s.DepthMax = cs.DepthMin, cs.DepthMax
				first = false
			} else {
				if cs.DepthMin < s.DepthMin {
					s.DepthMin = cs.DepthMin
				}
				if cs.DepthMax > s.DepthMax {
					s.DepthMax = cs.DepthMax
				}
			}
			s.InternalCount += cs.InternalCount
			s.ExtensionCount += cs.ExtensionCount
			s.ValueCount += cs.ValueCount
		}
		s.InternalCount++
		if first {
			// No children at all: still count this node, depth is its own.
			s.DepthMin, s.DepthMax = depth, depth
		}
		return s

	case *extensionNode:
		count := 0
		for _, v := range cur.values {
			if v != nil {
				count++
			}
		}
		return Stats{
			DepthMin:       depth,
			DepthMax:       depth,
			ExtensionCount: 1,
			ValueCount:     count,
		}

	default:
		panic("verkle: unknown node type")
	}
}

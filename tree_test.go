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

import (
	"bytes"
	"math/rand"
	"testing"
)

var testValue = []byte("0123456789abcdef0123456789abcdef")

func key(stemByte, suffix byte) [32]byte {
	var k [32]byte
	for i := 0; i < 31; i++ {
		k[i] = stemByte
	}
	k[31] = suffix
	return k
}

func TestGetMissingFromEmptyTree(t *testing.T) {
	tree := New(fakeVC{})
	if _, ok := tree.Get(key(0, 0)); ok {
		t.Fatal("Get on empty tree should report absent")
	}
}

func TestInsertThenGet(t *testing.T) {
	tree := New(fakeVC{})
	k := key(0x11, 0x22)
	tree.Insert(k, testValue)

	got, ok := tree.Get(k)
	if !ok {
		t.Fatal("key not found after insert")
	}
	if !bytes.Equal(got, testValue) {
		t.Fatalf("got %x, want %x", got, testValue)
	}
}

func TestInsertOverwritesSameStemAndSuffix(t *testing.T) {
	tree := New(fakeVC{})
	k := key(0x11, 0x22)
	tree.Insert(k, testValue)
	tree.Insert(k, []byte("second value, also 32 bytes!!!!!"))

	got, ok := tree.Get(k)
	if !ok {
		t.Fatal("key not found")
	}
	if bytes.Equal(got, testValue) {
		t.Fatal("value was not overwritten")
	}
}

func TestInsertSameStemDifferentSuffix(t *testing.T) {
	tree := New(fakeVC{})
	k1 := key(0x11, 0x01)
	k2 := key(0x11, 0x02)
	tree.Insert(k1, testValue)
	tree.Insert(k2, testValue)

	if _, ok := tree.Get(k1); !ok {
		t.Fatal("k1 missing")
	}
	if _, ok := tree.Get(k2); !ok {
		t.Fatal("k2 missing")
	}

	// Both keys live in the same extension.
	ext, ok := tree.root.(*extensionNode)
	if !ok {
		t.Fatalf("root should be a single extension, got %T", tree.root)
	}
	if ext.values[0x01] == nil || ext.values[0x02] == nil {
		t.Fatal("expected both suffix slots populated in one extension")
	}
}

func TestInsertDivergingStemsForks(t *testing.T) {
	tree := New(fakeVC{})
	k1 := key(0x11, 0x01)
	k2 := key(0x22, 0x01)
	tree.Insert(k1, testValue)
	tree.Insert(k2, testValue)

	if _, ok := tree.root.(*internalNode); !ok {
		t.Fatalf("root should have forked into an internal node, got %T", tree.root)
	}
	if _, ok := tree.Get(k1); !ok {
		t.Fatal("k1 missing after fork")
	}
	if _, ok := tree.Get(k2); !ok {
		t.Fatal("k2 missing after fork")
	}
}

func TestGetAbsentSuffixInMatchingExtension(t *testing.T) {
	tree := New(fakeVC{})
	tree.Insert(key(0x11, 0x01), testValue)
	if _, ok := tree.Get(key(0x11, 0x02)); ok {
		t.Fatal("unset suffix slot should report absent")
	}
}

func TestGetWrongStemReportsAbsent(t *testing.T) {
	tree := New(fakeVC{})
	tree.Insert(key(0x11, 0x01), testValue)
	if _, ok := tree.Get(key(0x99, 0x01)); ok {
		t.Fatal("mismatched stem should report absent")
	}
}

func TestEmptyTreeCommitsToAllZeroChildVector(t *testing.T) {
	tree := New(fakeVC{})
	var want [NodeWidth]Fr
	for i := range want {
		want[i] = ZeroChild
	}
	got := tree.Commit().(fakeCommitment)
	for i := range want {
		if got.digests[i] != want[i] {
			t.Fatalf("empty tree digest[%d] = %x, want ZeroChild", i, got.digests[i])
		}
	}
}

func TestCommitIsDeterministic(t *testing.T) {
	tree := New(fakeVC{})
	tree.Insert(key(0x01, 0x01), testValue)
	tree.Insert(key(0x02, 0x01), testValue)

	a := tree.Commit().Bytes()
	b := tree.Commit().Bytes()
	if !bytes.Equal(a, b) {
		t.Fatal("Commit is not deterministic across repeated calls")
	}
}

// TestInsertionOrderDoesNotAffectRoot checks that the root commitment
// is a function of the key/value set alone, not insertion order,
// directly against the fake VC (cmd/orderfuzz does the same against
// the real kzg backend).
func TestInsertionOrderDoesNotAffectRoot(t *testing.T) {
	keys := make([][32]byte, 300)
	for i := range keys {
		var k [32]byte
		rand.New(rand.NewSource(int64(i))).Read(k[:])
		keys[i] = k
	}

	sorted := New(fakeVC{})
	for _, k := range keys {
		sorted.Insert(k, testValue)
	}

	shuffled := New(fakeVC{})
	order := rand.New(rand.NewSource(42)).Perm(len(keys))
	for _, idx := range order {
		shuffled.Insert(keys[idx], testValue)
	}

	if !bytes.Equal(sorted.Commit().Bytes(), shuffled.Commit().Bytes()) {
		t.Fatal("root commitment depends on insertion order")
	}
}

func TestDifferentStemSameValuesCommitDifferently(t *testing.T) {
	// Regression test for the stem-binding fix: two extensions holding
	// identical values under different stems must not collide on their
	// digest arrays, or a proof for one could be replayed against the
	// other.
	stemA := key(0x01, 0x00)
	stemB := key(0x02, 0x00)

	treeA := New(fakeVC{})
	treeA.Insert(stemA, testValue)

	treeB := New(fakeVC{})
	treeB.Insert(stemB, testValue)

	if bytes.Equal(treeA.Commit().Bytes(), treeB.Commit().Bytes()) {
		t.Fatal("two extensions with different stems but the same values must not commit equally")
	}
}

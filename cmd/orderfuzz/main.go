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

// orderfuzz checks that a tree's root commitment does not depend on
// the order keys were inserted in: it builds the same key/value set
// into two trees, one in sorted order and one shuffled, and compares
// their root commitments on every iteration.
package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"sort"

	verkle "github.com/scaraven/verkle-tree-implementation"
	"github.com/scaraven/verkle-tree-implementation/kzg"
)

type keyList [][32]byte

func (kl keyList) Len() int           { return len(kl) }
func (kl keyList) Less(i, j int) bool { return bytes.Compare(kl[i][:], kl[j][:]) < 0 }
func (kl keyList) Swap(i, j int)      { kl[i], kl[j] = kl[j], kl[i] }

func main() {
	setup, err := kzg.GenerateSetup(rand.Reader)
	if err != nil {
		panic(err)
	}
	vc := kzg.New(setup)

	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)

		keys := make(keyList, 2000)
		for i := range keys {
			rand.Read(keys[i][:])
		}
		sort.Sort(keys)

		shuffled := make(keyList, len(keys))
		copy(shuffled, keys)
		mrand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		sortedTree := verkle.New(vc)
		for _, k := range keys {
			sortedTree.Insert(k, valueFor(k))
		}

		shuffledTree := verkle.New(vc)
		for _, k := range shuffled {
			shuffledTree.Insert(k, valueFor(k))
		}

		a := sortedTree.Commit().Bytes()
		b := shuffledTree.Commit().Bytes()
		if !bytes.Equal(a, b) {
			panic("root commitment depends on insertion order")
		}
	}
}

// valueFor derives a deterministic value from a key, so both trees in
// one attempt store the same key -> value mapping.
func valueFor(key [32]byte) []byte {
	v := new(big.Int).SetBytes(key[:])
	v.Add(v, big.NewInt(1))
	return v.Bytes()
}

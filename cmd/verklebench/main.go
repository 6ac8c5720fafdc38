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

package main

import (
	"crypto/rand"
	"fmt"
	"time"

	verkle "github.com/scaraven/verkle-tree-implementation"
	"github.com/scaraven/verkle-tree-implementation/kzg"
)

func main() {
	benchmarkInsertCommitProve()
}

func benchmarkInsertCommitProve() {
	// Keys already in the tree before timing starts.
	n := 100000
	// Keys inserted afterwards, whose insert+commit cost is timed.
	toInsert := 1000

	setup, err := kzg.GenerateSetup(rand.Reader)
	if err != nil {
		panic(err)
	}
	vc := kzg.New(setup)

	value := []byte("value")

	for round := 0; round < 3; round++ {
		keys := make([][32]byte, n)
		for i := range keys {
			rand.Read(keys[i][:])
		}
		toInsertKeys := make([][32]byte, toInsert)
		for i := range toInsertKeys {
			rand.Read(toInsertKeys[i][:])
		}

		tree := verkle.New(vc)
		for _, k := range keys {
			tree.Insert(k, value)
		}

		start := time.Now()
		for _, k := range toInsertKeys {
			tree.Insert(k, value)
		}
		elapsed := time.Since(start)
		fmt.Printf("round %d: took %v to insert and commit %d more keys into a tree of %d\n",
			round, elapsed, toInsert, n)

		probe := toInsertKeys[0]
		start = time.Now()
		proof, ok := tree.ProveGet(probe)
		proveElapsed := time.Since(start)
		if !ok {
			panic("probe key missing after insert")
		}

		root := tree.Commit()
		start = time.Now()
		if !verkle.VerifyProof(vc, root, proof, probe) {
			panic("proof failed to verify")
		}
		verifyElapsed := time.Since(start)

		fmt.Printf("round %d: prove %v, verify %v\n", round, proveElapsed, verifyElapsed)

		stats := tree.Stats()
		fmt.Printf("round %d: depth %d-%d, %d internal nodes, %d extensions, %d values\n",
			round, stats.DepthMin, stats.DepthMax, stats.InternalCount, stats.ExtensionCount, stats.ValueCount)
	}
}

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

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromLEBytesRejectsOversizedInput(t *testing.T) {
	_, err := FromLEBytes(make([]byte, 33))
	require.Error(t, err)
}

func TestFromLEBytesZeroExtends(t *testing.T) {
	a, err := FromLEBytes([]byte{1, 2, 3})
	require.NoError(t, err)
	b, err := FromLEBytes([]byte{1, 2, 3, 0, 0})
	require.NoError(t, err)
	require.True(t, a.Equal(b), "short input should be equivalent to zero-padded input")
}

func TestCopyFrDoesNotAlias(t *testing.T) {
	src, err := FromLEBytes([]byte{9, 9, 9})
	require.NoError(t, err)
	dst := suite.G1().Scalar()
	CopyFr(dst, src)
	require.True(t, dst.Equal(src))

	// Mutating src afterward must not affect dst.
	src.Add(src, suite.G1().Scalar().One())
	require.False(t, dst.Equal(src))
}

func TestCopyPointDoesNotAlias(t *testing.T) {
	src := suite.G1().Point().Base()
	dst := suite.G1().Point()
	CopyPoint(dst, src)
	require.True(t, Equal(dst, src))

	src.Add(src, src)
	require.False(t, Equal(dst, src))
}

func TestEqualDistinguishesDifferentPoints(t *testing.T) {
	base := suite.G1().Point().Base()
	doubled := suite.G1().Point().Add(base, base)
	require.False(t, Equal(base, doubled))
}

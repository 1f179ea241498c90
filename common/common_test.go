// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSha256(t *testing.T) {
	sum := Sha256([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(sum))
}

func TestSha2Sum(t *testing.T) {
	sum := Sha2Sum(nil)
	assert.Equal(t, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456", hex.EncodeToString(sum[:]))
}

func TestRimp160AfterSha256(t *testing.T) {
	sum := Rimp160AfterSha256(nil)
	assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", hex.EncodeToString(sum[:]))
}

func TestHex(t *testing.T) {
	b, err := FromHex("0x1234ff")
	assert.NoError(t, err)
	assert.Equal(t, "0x1234ff", ToHex(b))

	b, err = FromHex("fff")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x0f, 0xff}, b)

	assert.Equal(t, "", ToHex(nil))
}

func TestCopyBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	assert.Equal(t, src, dst)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0])
	assert.Nil(t, CopyBytes(nil))
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/pgst/biosimd"
)

func TestPackUnpackSeqRoundTrip(t *testing.T) {
	src := []byte{1, 2, 4, 8, 1, 2, 4}
	dst := make([]byte, (len(src)+1)/2)
	biosimd.PackSeq(dst, src)
	back := make([]byte, len(src))
	biosimd.UnpackSeq(back, dst)
	assert.Equal(t, src, back)
}

func TestPackSeqEvenLength(t *testing.T) {
	src := []byte{1, 2, 4, 8}
	dst := make([]byte, 2)
	biosimd.PackSeq(dst, src)
	assert.Equal(t, []byte{0x12, 0x48}, dst)
}

func TestPackSeqPanicsOnMismatchedLength(t *testing.T) {
	assert.Panics(t, func() {
		biosimd.PackSeq(make([]byte, 1), make([]byte, 4))
	})
}

func TestCleanASCIISeqInplace(t *testing.T) {
	seq := []byte("acgtXNyz")
	biosimd.CleanASCIISeqInplace(seq)
	assert.Equal(t, "ACGTNNNN", string(seq))
}

func TestIsNonACGTPresent(t *testing.T) {
	assert.False(t, biosimd.IsNonACGTPresent([]byte("ACGTACGT")))
	assert.True(t, biosimd.IsNonACGTPresent([]byte("ACGTNACGT")))
}

func TestASCIITo2bit(t *testing.T) {
	dst := make([]byte, 1)
	biosimd.ASCIITo2bit(dst, []byte("ACGT"))
	assert.Equal(t, byte(0<<0|1<<2|2<<4|3<<6), dst[0])
}

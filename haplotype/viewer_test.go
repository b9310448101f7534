// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package haplotype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/haplotype"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/variant"
)

func TestMaterializeE1(t *testing.T) {
	r := rcms.New([]byte("AAAACCCCCGGGGGTTTTT"), 4)
	require.NoError(t, r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 5},
		AltSeq:     []byte("G"),
		Coverage:   coverage.FromBits(4, 1, 3),
	}))

	hap0, err := haplotype.Materialize(r, 0)
	require.NoError(t, err)
	assert.Equal(t, "AAAACCCCCGGGGGTTTTT", string(hap0))

	hap1, err := haplotype.Materialize(r, 1)
	require.NoError(t, err)
	assert.Equal(t, "AAAAGCCCCGGGGGTTTTT", string(hap1))
}

func TestMaterializeInsertion(t *testing.T) {
	r := rcms.New([]byte("ACGT"), 2)
	require.NoError(t, r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 2, High: 2},
		AltSeq:     []byte("TT"),
		Coverage:   coverage.FromBits(2, 0),
	}))

	hap0, err := haplotype.Materialize(r, 0)
	require.NoError(t, err)
	assert.Equal(t, "ACTTGT", string(hap0))

	hap1, err := haplotype.Materialize(r, 1)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", string(hap1))
}

func TestMaterializeOutOfRange(t *testing.T) {
	r := rcms.New([]byte("ACGT"), 2)
	_, err := haplotype.Materialize(r, 5)
	assert.Equal(t, haplotype.ErrHaplotypeOutOfRange, errorsCause(err))
}

func errorsCause(err error) error {
	type causer interface{ Cause() error }
	for {
		c, ok := err.(causer)
		if !ok {
			return err
		}
		err = c.Cause()
	}
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rcms_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/variant"
)

func newE1RCMS(t *testing.T) *rcms.RCMS {
	r := rcms.New([]byte("AAAACCCCCGGGGGTTTTT"), 4)
	err := r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 5},
		AltSeq:     []byte("G"),
		Coverage:   coverage.FromBits(4, 1, 3),
	})
	assert.NoError(t, err)
	return r
}

func TestInsertAndLookup(t *testing.T) {
	r := newE1RCMS(t)
	assert.Equal(t, 19, r.Len())
	assert.Equal(t, 1, r.VariantCount())
	assert.Equal(t, variant.Replacement, r.VariantAt(0).Kind)
}

func TestInsertRejectsOutOfBoundsBreakpoint(t *testing.T) {
	r := rcms.New([]byte("ACGT"), 2)
	err := r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 2, High: 10},
		AltSeq:     []byte("A"),
		Coverage:   coverage.New(2),
	})
	assert.Error(t, err)
	assert.Equal(t, rcms.ErrInvalidBreakpoint, errors.Cause(err))
}

func TestInsertRejectsCoverageDomainMismatch(t *testing.T) {
	r := rcms.New([]byte("ACGT"), 4)
	err := r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 0, High: 1},
		AltSeq:     []byte("A"),
		Coverage:   coverage.New(2),
	})
	assert.Error(t, err)
}

func TestRootedWrapsRootAndSink(t *testing.T) {
	r := newE1RCMS(t)
	rooted := rcms.NewRooted(r)

	assert.Equal(t, 3, rooted.Len())
	assert.Equal(t, uint32(0), rooted.Root().Low)
	assert.Equal(t, uint32(19), rooted.Sink().Low)
	assert.True(t, rooted.Root().Coverage.All())
	assert.True(t, rooted.Sink().Coverage.All())

	all := rooted.All()
	assert.Len(t, all, 3)
	assert.Equal(t, variant.Replacement, all[1].Kind)
}

func TestOverlapping(t *testing.T) {
	r := newE1RCMS(t)
	hits := r.Overlapping(variant.Breakpoint{Low: 3, High: 6})
	assert.Len(t, hits, 1)
}

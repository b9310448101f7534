// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/pst"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/variant"
)

// buildE1 constructs the E1 end-to-end scenario's RCMS: S =
// "AAAACCCCCGGGGGTTTTT", N=4, a single replacement variant at [4,5) -> "G"
// covering haplotypes 1 and 3.
func buildE1(t *testing.T) *rcms.Rooted {
	r := rcms.New([]byte("AAAACCCCCGGGGGTTTTT"), 4)
	err := r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 5},
		AltSeq:     []byte("G"),
		Coverage:   coverage.FromBits(4, 1, 3),
	})
	assert.NoError(t, err)
	return rcms.NewRooted(r)
}

func TestBaseTreeRootAndRef(t *testing.T) {
	rooted := buildE1(t)
	base := pst.NewBase(rooted)

	root := base.Root()
	assert.True(t, root.FromReference)
	assert.Equal(t, uint32(0), base.Pos(root.Low))
	assert.Equal(t, uint32(0), base.Pos(root.High))

	n1, ok := base.NextRef(root)
	assert.True(t, ok)
	assert.Equal(t, uint32(0), base.Pos(n1.Low))
	assert.Equal(t, uint32(4), base.Pos(n1.High))
}

func TestBaseTreeNextAltAtVariant(t *testing.T) {
	rooted := buildE1(t)
	base := pst.NewBase(rooted)

	n := base.Root()
	n, _ = base.NextRef(n) // [0,4)
	_, hasAlt := base.NextAlt(n)
	assert.True(t, hasAlt, "node whose high site is the variant's low end must offer an alt child")

	alt, _ := base.NextAlt(n)
	assert.False(t, alt.FromReference)
	assert.True(t, alt.OnAlternatePath)
}

func TestLabelledReferenceAndAltSequence(t *testing.T) {
	rooted := buildE1(t)
	base := pst.NewBase(rooted)
	labelled := pst.NewLabelled(base, pst.NodeOnly)

	n := labelled.Root()
	n, ok := labelled.NextRef(n)
	assert.True(t, ok)
	assert.Equal(t, "AAAA", string(n.Sequence))
	assert.True(t, n.Coverage.All())

	alt, ok := labelled.NextAlt(n)
	assert.True(t, ok)
	assert.Equal(t, "G", string(alt.Sequence))
	assert.Equal(t, []int{1, 3}, alt.Coverage.Bits())
}

func TestSeekableRoundTrip(t *testing.T) {
	rooted := buildE1(t)
	base := pst.NewBase(rooted)
	labelled := pst.NewLabelled(base, pst.NodeOnly)
	seekable := pst.NewSeekable(labelled)

	n := seekable.Root()
	pos := pst.NewSeekPosition(0)

	n1, ok := seekable.NextRef(n)
	assert.True(t, ok)
	pos = pos.AppendRef()

	n2, ok := seekable.NextAlt(n1)
	assert.True(t, ok)
	pos = pos.AppendAlt()

	got, ok := seekable.Seek(pos)
	assert.True(t, ok)
	assert.Equal(t, string(n2.Sequence), string(got.Sequence))
	assert.True(t, n2.Coverage.Equal(got.Coverage))
}

func TestSeekPositionOrdering(t *testing.T) {
	a := pst.NewSeekPosition(0).AppendRef()
	b := pst.NewSeekPosition(0).AppendAlt()
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 1, a.Compare(b))

	short := pst.NewSeekPosition(0)
	assert.Equal(t, -1, short.Compare(a))
}

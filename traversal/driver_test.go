// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/pst"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/traversal"
	"github.com/grailbio/pgst/variant"
)

type countingSubscriber struct {
	pushes, pops int
}

func (c *countingSubscriber) OnPush(n pst.Node) { c.pushes++ }
func (c *countingSubscriber) OnPop(n pst.Node)  { c.pops++ }

// buildThreeVariants grounds E5: 3 replacement variants covering disjoint
// haplotypes on a 6-haplotype store.
func buildThreeVariants(t *testing.T) *rcms.Rooted {
	r := rcms.New([]byte("AAAACCCCCGGGGGTTTTT"), 6)
	variants := []variant.Variant{
		{Breakpoint: variant.Breakpoint{Low: 4, High: 5}, AltSeq: []byte("G"), Coverage: coverage.FromBits(6, 0)},
		{Breakpoint: variant.Breakpoint{Low: 9, High: 10}, AltSeq: []byte("A"), Coverage: coverage.FromBits(6, 1)},
		{Breakpoint: variant.Breakpoint{Low: 14, High: 15}, AltSeq: []byte("C"), Coverage: coverage.FromBits(6, 2)},
	}
	for _, v := range variants {
		assert.NoError(t, r.Insert(v))
	}
	return rcms.NewRooted(r)
}

func TestDriverPushPopBalance(t *testing.T) {
	rooted := buildThreeVariants(t)
	base := pst.NewBase(rooted)
	labelled := pst.NewLabelled(base, pst.NodeOnly)
	coloured := pst.NewColoured(labelled)
	pruned := pst.NewPrune(coloured)

	sub := &countingSubscriber{}
	driver := traversal.NewDriver(pruned, sub)

	nodeCount := 0
	driver.Walk(func(n pst.Node) bool {
		nodeCount++
		return true
	})

	assert.Equal(t, sub.pushes, sub.pops)
	assert.Equal(t, 3, sub.pushes, "one alt child visited per variant")
	assert.True(t, nodeCount > 3)
}

func TestDriverVisitsAltSequences(t *testing.T) {
	rooted := buildThreeVariants(t)
	base := pst.NewBase(rooted)
	labelled := pst.NewLabelled(base, pst.NodeOnly)
	// Pruning drops alt-inside-alt branches (disjoint coverage) and the
	// empty alt into the sink, leaving one alt node per variant.
	pruned := pst.NewPrune(pst.NewColoured(labelled))

	driver := traversal.NewDriver(pruned)

	var altSeqs []string
	driver.Walk(func(n pst.Node) bool {
		if !n.FromReference {
			altSeqs = append(altSeqs, string(n.Sequence))
		}
		return true
	})

	assert.Equal(t, []string{"G", "A", "C"}, altSeqs)
}

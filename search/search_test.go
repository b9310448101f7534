// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package search_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/matcher"
	"github.com/grailbio/pgst/prefilter"
	"github.com/grailbio/pgst/pst"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/search"
	"github.com/grailbio/pgst/variant"
)

// buildE1Pipeline mirrors the E1 fixture: S="AAAACCCCCGGGGGTTTTT", 4
// haplotypes, one replacement variant at [4,5) substituting "G" on
// haplotypes {1,3}.
func buildE1Pipeline(t *testing.T) (*pst.BaseTree, pst.Tree, int) {
	r := rcms.New([]byte("AAAACCCCCGGGGGTTTTT"), 4)
	require.NoError(t, r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 5},
		AltSeq:     []byte("G"),
		Coverage:   coverage.FromBits(4, 1, 3),
	}))
	rooted := rcms.NewRooted(r)
	base := pst.NewBase(rooted)
	tree := search.Pipeline(base, 5) // windowSize = len("ACCCC")
	return base, tree, r.Len()
}

type memSink struct {
	mu   sync.Mutex
	hits []search.Hit
}

func (s *memSink) Emit(h search.Hit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits = append(s.hits, h)
}

func horspoolFactory(pattern []byte, _ int) (matcher.Matcher, error) {
	return matcher.NewHorspool(pattern)
}

func TestOrchestratorFindsReferenceBranchExactMatch(t *testing.T) {
	base, tree, length := buildE1Pipeline(t)
	bins := pst.Chunk(tree, base, length, 0)
	require.Len(t, bins, 1)

	cfg := prefilter.Config{BinSize: length, KmerSize: 3, HashFunctionCount: 3, IBFSizeBytes: 1 << 12}
	f := prefilter.Build(base, length, tree, cfg)

	sink := &memSink{}
	orch := &search.Orchestrator{
		Base:    base,
		Filter:  f,
		Bins:    bins,
		Factory: horspoolFactory,
		Sink:    sink,
		Options: search.Options{ThreadCount: 2},
	}

	// "ACCCC" occurs on the reference branch (haplotypes 0,2) at S[3:8);
	// the alt branch substitutes position 4 with "G" so it does not match.
	err := orch.Run([]search.Query{{ID: 0, Pattern: []byte("ACCCC")}})
	require.NoError(t, err)

	require.NotEmpty(t, sink.hits)
	for _, h := range sink.hits {
		assert.Equal(t, uint32(0), h.NeedleID)
	}
}

// buildE2Pipeline mirrors the E2 fixture: same S as E1, two variants
// sharing a low breakpoint at position 4 — a replacement covering
// haplotypes {2,3} and an insertion covering the complementary
// haplotypes {0,1} — so between them every haplotype takes one branch or
// the other and no haplotype is left on a pure-reference path at that
// locus.
func buildE2Pipeline(t *testing.T) (*pst.BaseTree, pst.Tree, int) {
	r := rcms.New([]byte("AAAACCCCCGGGGGTTTTT"), 4)
	require.NoError(t, r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 5},
		AltSeq:     []byte("G"),
		Coverage:   coverage.FromBits(4, 2, 3),
	}))
	require.NoError(t, r.Insert(variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 4},
		AltSeq:     []byte("TT"),
		Coverage:   coverage.FromBits(4, 0, 1),
	}))
	rooted := rcms.NewRooted(r)
	base := pst.NewBase(rooted)
	tree := search.Pipeline(base, 5) // windowSize = len("AATTC")
	return base, tree, r.Len()
}

func TestOrchestratorFindsInsertionBranchOnly(t *testing.T) {
	base, tree, length := buildE2Pipeline(t)
	bins := pst.Chunk(tree, base, length, 0)
	require.Len(t, bins, 1)

	cfg := prefilter.Config{BinSize: length, KmerSize: 3, HashFunctionCount: 3, IBFSizeBytes: 1 << 12}
	f := prefilter.Build(base, length, tree, cfg)

	sink := &memSink{}
	orch := &search.Orchestrator{
		Base:    base,
		Filter:  f,
		Bins:    bins,
		Factory: horspoolFactory,
		Sink:    sink,
		Options: search.Options{ThreadCount: 2},
	}

	// "AATTC" only appears once the insertion's "TT" has been spliced in
	// ahead of the C run; the replacement's single substituted "G" never
	// produces a "TT", and there is no haplotype left on a pure-reference
	// path at this locus for the pattern to spuriously match.
	err := orch.Run([]search.Query{{ID: 0, Pattern: []byte("AATTC")}})
	require.NoError(t, err)

	require.NotEmpty(t, sink.hits)
	var coveredUnion coverage.Coverage
	for i, h := range sink.hits {
		assert.Equal(t, uint32(0), h.NeedleID)
		assert.False(t, h.HaplotypeCoverage.Contains(2))
		assert.False(t, h.HaplotypeCoverage.Contains(3))
		if i == 0 {
			coveredUnion = h.HaplotypeCoverage
		} else {
			coveredUnion = coveredUnion.Or(h.HaplotypeCoverage)
		}
	}
	assert.Equal(t, 2, coveredUnion.PopCount())
	assert.True(t, coveredUnion.Contains(0))
	assert.True(t, coveredUnion.Contains(1))
}

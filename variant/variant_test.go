// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/variant"
)

func TestDeriveAltKind(t *testing.T) {
	assert.Equal(t, variant.Replacement, variant.DeriveAltKind(1, 1))
	assert.Equal(t, variant.Deletion, variant.DeriveAltKind(1, 0))
	assert.Equal(t, variant.Insertion, variant.DeriveAltKind(0, 1))
	assert.Equal(t, variant.Unknown, variant.DeriveAltKind(0, 0))
}

func TestStoreInsertCanonicalOrder(t *testing.T) {
	s := variant.NewStore(4)

	// Two variants anchored at the same position: insertion (effective
	// size 2) must sort before the replacement (effective size 0).
	repl := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 5},
		AltSeq:     []byte("G"),
		Coverage:   coverage.FromBits(4, 0, 1),
	}
	ins := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 4, High: 4},
		AltSeq:     []byte("TT"),
		Coverage:   coverage.FromBits(4, 2, 3),
	}
	assert.NoError(t, s.Insert(repl))
	assert.NoError(t, s.Insert(ins))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, variant.Insertion, s.At(0).Kind)
	assert.Equal(t, variant.Replacement, s.At(1).Kind)
}

func TestStoreRejectsInvalidBreakpoint(t *testing.T) {
	s := variant.NewStore(2)
	bad := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 5, High: 2},
		Coverage:   coverage.New(2),
	}
	assert.Error(t, s.Insert(bad))
}

func TestStoreRejectsCoverageDomainMismatch(t *testing.T) {
	s := variant.NewStore(4)
	v := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 0, High: 1},
		AltSeq:     []byte("A"),
		Coverage:   coverage.New(2),
	}
	assert.Error(t, s.Insert(v))
}

func TestStoreRejectsOverlapOnSharedHaplotype(t *testing.T) {
	s := variant.NewStore(4)
	a := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 0, High: 5},
		AltSeq:     []byte("AAAAA"),
		Coverage:   coverage.FromBits(4, 0, 1),
	}
	b := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 3, High: 8},
		AltSeq:     []byte("CCCCC"),
		Coverage:   coverage.FromBits(4, 1, 2), // shares bit 1 with a
	}
	assert.NoError(t, s.Insert(a))
	assert.Error(t, s.Insert(b))
}

func TestStoreAllowsOverlapOnDisjointHaplotypes(t *testing.T) {
	s := variant.NewStore(4)
	a := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 0, High: 5},
		AltSeq:     []byte("AAAAA"),
		Coverage:   coverage.FromBits(4, 0, 1),
	}
	b := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 3, High: 8},
		AltSeq:     []byte("CCCCC"),
		Coverage:   coverage.FromBits(4, 2, 3),
	}
	assert.NoError(t, s.Insert(a))
	assert.NoError(t, s.Insert(b))
}

func TestOverlapping(t *testing.T) {
	s := variant.NewStore(2)
	v := variant.Variant{
		Breakpoint: variant.Breakpoint{Low: 10, High: 15},
		AltSeq:     []byte("AAAAA"),
		Coverage:   coverage.FromBits(2, 0),
	}
	assert.NoError(t, s.Insert(v))

	hits := s.Overlapping(variant.Breakpoint{Low: 12, High: 20})
	assert.Len(t, hits, 1)

	none := s.Overlapping(variant.Breakpoint{Low: 20, High: 30})
	assert.Len(t, none, 0)
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matcher

import "github.com/pkg/errors"

// ErrNeedleShorterThanSeeds is returned by NewPigeonhole when a needle is
// too short to split into k+1 equal-length seeds.
var ErrNeedleShorterThanSeeds = errors.New("matcher: needle shorter than seed count")

// PigeonholeHit is one seed-level exact match reported by Pigeonhole.CallSeeds.
// A true occurrence of needle within k edits guarantees at least one exact
// seed hit by the pigeonhole principle, so these are candidates for
// downstream verification (e.g. with Myers), not confirmed approximate
// matches themselves.
type PigeonholeHit struct {
	NeedleID   int
	SeedOffset int
	EndPos     int
}

// Pigeonhole is the seed pre-filter from spec.md §4.8: each needle is split
// into k+1 equal-length, non-overlapping seeds, any one of which must match
// exactly if the full needle matches within k edits.
type Pigeonhole struct {
	needleID int
	seeds    []*Horspool
	offsets  []int
	window   int
}

// NewPigeonhole splits needle into k+1 seeds and builds a Horspool matcher
// for each. needleID is carried through to PigeonholeHit so a caller
// tracking many needles can tell seed hits apart.
func NewPigeonhole(needleID int, needle []byte, k int) (*Pigeonhole, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	nseeds := k + 1
	seedLen := len(needle) / nseeds
	if seedLen == 0 {
		return nil, ErrNeedleShorterThanSeeds
	}
	p := &Pigeonhole{needleID: needleID, window: len(needle)}
	for i := 0; i < nseeds; i++ {
		start := i * seedLen
		end := start + seedLen
		if i == nseeds-1 {
			end = len(needle)
		}
		h, err := NewHorspool(needle[start:end])
		if err != nil {
			return nil, err
		}
		p.seeds = append(p.seeds, h)
		p.offsets = append(p.offsets, start)
	}
	return p, nil
}

// WindowSize returns the full needle's length, i.e. the span a caller must
// keep in view to confirm any reported seed hit.
func (p *Pigeonhole) WindowSize() int { return p.window }

// CallSeeds reports every seed-level exact match via emitSeed.
func (p *Pigeonhole) CallSeeds(haystack []byte, emitSeed func(PigeonholeHit)) {
	for i, seed := range p.seeds {
		offset := p.offsets[i]
		seed.Call(haystack, func(h Hit) {
			emitSeed(PigeonholeHit{NeedleID: p.needleID, SeedOffset: offset, EndPos: h.EndPos})
		})
	}
}

// Call satisfies Matcher by reporting a Hit at each seed-level exact match;
// callers that need the seed offset or needle identity should use
// CallSeeds instead.
func (p *Pigeonhole) Call(haystack []byte, emit func(Hit)) {
	p.CallSeeds(haystack, func(h PigeonholeHit) {
		emit(Hit{EndPos: h.EndPos})
	})
}

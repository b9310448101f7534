// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

import (
	"sort"

	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/variant"
)

// BaseTree is the DAG-of-nodes view over a rooted RCMS (spec.md §4.4). It
// knows nothing about labels or coverage narrowing; Labelled adds those.
//
// Every breakend in the rooted sequence (two per variant: a low end and a
// high end) is precomputed into a single totally-ordered event list at
// construction time, so next_ref's "next breakend strictly greater than the
// current high_site" is an O(log n) search rather than an O(n) rescan.
type BaseTree struct {
	rooted *rcms.Rooted
	events []Site
}

// NewBase builds a BaseTree over rooted.
func NewBase(rooted *rcms.Rooted) *BaseTree {
	t := &BaseTree{rooted: rooted}
	n := rooted.Len()
	events := make([]Site, 0, 2*n)
	for i := 0; i < n; i++ {
		events = append(events, Site{VariantIndex: i, End: variant.LowEnd})
		events = append(events, Site{VariantIndex: i, End: variant.HighEnd})
	}
	sort.Slice(events, func(i, j int) bool { return t.siteLess(events[i], events[j]) })
	t.events = events
	return t
}

// Pos returns the reference-axis position of site s.
func (t *BaseTree) Pos(s Site) uint32 {
	v := t.rooted.At(s.VariantIndex)
	if s.End == variant.LowEnd {
		return v.Low
	}
	return v.High
}

// siteLess implements the tie-break order from spec.md §4.4: ascending
// position; at equal position, low-ends before high-ends; among low-end
// ties, descending effective size (insertions first).
func (t *BaseTree) siteLess(a, b Site) bool {
	pa, pb := t.Pos(a), t.Pos(b)
	if pa != pb {
		return pa < pb
	}
	if a.End != b.End {
		return a.End == variant.LowEnd
	}
	if a.End == variant.LowEnd {
		ea := t.rooted.At(a.VariantIndex).EffectiveSize()
		eb := t.rooted.At(b.VariantIndex).EffectiveSize()
		if ea != eb {
			return ea > eb
		}
	}
	return a.VariantIndex < b.VariantIndex
}

func (t *BaseTree) eventIndex(s Site) int {
	return sort.Search(len(t.events), func(i int) bool { return !t.siteLess(t.events[i], s) })
}

// Root returns the tree's root node: low_site and high_site both at the
// synthetic root variant, from_reference = true.
func (t *BaseTree) Root() Node {
	return Node{
		Low:           Site{VariantIndex: 0, End: variant.LowEnd},
		High:          Site{VariantIndex: 0, End: variant.HighEnd},
		FromReference: true,
	}
}

// IsSink reports whether n's high site is the synthetic sink's high
// breakend: the point past which next_ref is undefined.
func (t *BaseTree) IsSink(n Node) bool {
	sinkIdx := t.rooted.Len() - 1
	return n.High.VariantIndex == sinkIdx && n.High.End == variant.HighEnd
}

// NextRef implements spec.md §4.4's next_ref: always defined when not at
// the sink. The child's low_site is the current high_site; its high_site is
// the next breakend strictly greater than the current one.
func (t *BaseTree) NextRef(n Node) (Node, bool) {
	if t.IsSink(n) {
		return Node{}, false
	}
	idx := t.eventIndex(n.High)
	if idx+1 >= len(t.events) {
		return Node{}, false
	}
	return Node{
		Low:             n.High,
		High:            t.events[idx+1],
		FromReference:   true,
		OnAlternatePath: n.OnAlternatePath,
	}, true
}

// NextAlt implements spec.md §4.4's next_alt: defined iff from_reference and
// the current high_site is a low-end. The child's high_site is the mate
// (the same variant's high breakend).
func (t *BaseTree) NextAlt(n Node) (Node, bool) {
	if !n.FromReference || n.High.End != variant.LowEnd {
		return Node{}, false
	}
	return Node{
		Low:             n.High,
		High:            Site{VariantIndex: n.High.VariantIndex, End: variant.HighEnd},
		FromReference:   false,
		OnAlternatePath: true,
	}, true
}

// VariantAt exposes the rooted sequence's i-th variant; used by Labelled.
func (t *BaseTree) VariantAt(i int) variant.Variant { return t.rooted.At(i) }

// Reference exposes the rooted RCMS's reference bytes; used by Labelled.
func (t *BaseTree) Reference() []byte { return t.rooted.Inner().Reference() }

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package variant

import (
	"sort"

	"github.com/biogo/store/interval"
	"github.com/pkg/errors"

	"github.com/grailbio/pgst/coverage"
)

// Variant is a covered sequence variant: a breakpoint on the reference, an
// alternate sequence, an alt-kind tag, and a haplotype coverage.
type Variant struct {
	Breakpoint
	AltSeq   []byte
	Kind     AltKind
	Coverage coverage.Coverage
}

// Position returns the variant's low breakend, its anchor on the reference.
func (v Variant) Position() uint32 { return v.Low }

// EffectiveSize is |alt_seq| - breakend_span.
func (v Variant) EffectiveSize() int {
	return EffectiveSize(v.Span(), len(v.AltSeq))
}

// indexEntry adapts a Store index (a position into the ordered slice) to
// biogo/store/interval's IntInterface, so the store's breakpoints are
// queryable in an interval.IntTree the same way kortschak-ins and
// biogo-examples/brahma index genomic interval records.
type indexEntry struct {
	idx int
	rng interval.IntRange
}

func (e *indexEntry) Overlap(b interval.IntRange) bool {
	return e.rng.Start < b.End && b.Start < e.rng.End
}
func (e *indexEntry) ID() uintptr              { return uintptr(e.idx) }
func (e *indexEntry) Range() interval.IntRange { return e.rng }

// rangeQuery is an interval.IntOverlapper used to drive DoMatching, the same
// role brahma's own `query` type plays against its interval.IntTree.
type rangeQuery struct{ lo, hi int }

func (q rangeQuery) Overlap(b interval.IntRange) bool {
	return q.hi > b.Start && q.lo < b.End
}

// Store holds an RCMS's variants in canonical order: ascending by
// low_breakend, ties broken by descending effective size (so insertions
// precede replacements precede deletions at the same anchor).
//
// Internally a Store is one ordered slice of Variant values, each tagged by
// Kind (insertion, replacement or deletion); there is no separate SNV
// column. Insert places each new variant at its ordered position and
// rebuilds the interval index used by Overlapping.
type Store struct {
	n        int // haplotype domain size, shared by every Variant's Coverage
	variants []Variant
	index    *interval.IntTree
}

// NewStore returns an empty Store whose variants must all carry coverage of
// domain size n.
func NewStore(n int) *Store {
	return &Store{n: n, index: &interval.IntTree{}}
}

// HaplotypeCount returns N, the coverage domain size shared by every
// inserted variant.
func (s *Store) HaplotypeCount() int { return s.n }

// Len returns the number of variants in the store.
func (s *Store) Len() int { return len(s.variants) }

// At returns the i-th variant in canonical order.
func (s *Store) At(i int) Variant { return s.variants[i] }

// Variants returns the full ordered variant slice. Callers must not mutate
// the returned slice's contents.
func (s *Store) Variants() []Variant { return s.variants }

// Insert adds v to the store, enforcing spec.md §3/§4.3's invariants. It
// rejects variants whose breakpoint is malformed or whose coverage's domain
// doesn't match the store, and variants that would violate the
// no-overlap-under-shared-coverage invariant.
func (s *Store) Insert(v Variant) error {
	if v.Low > v.High {
		return errors.Errorf("variant: InvalidBreakpoint: low %d > high %d", v.Low, v.High)
	}
	if v.Coverage.Size() != s.n {
		return errors.Errorf("variant: CoverageDomainMismatch: got %d want %d", v.Coverage.Size(), s.n)
	}
	derived := DeriveAltKind(v.Span(), len(v.AltSeq))
	if derived == Unknown {
		return errors.Errorf("variant: UnknownAltKind: span=%d alt_len=%d", v.Span(), len(v.AltSeq))
	}
	v.Kind = derived

	if v.Span() > 0 {
		for _, existing := range s.overlapping(v.Breakpoint) {
			if existing.Span() == 0 {
				continue // insertions never conflict with the shared-bit overlap rule
			}
			if existing.Coverage.And(v.Coverage).Any() {
				return errors.Errorf(
					"variant: OrderingViolation: [%d,%d) overlaps [%d,%d) on a shared haplotype",
					v.Low, v.High, existing.Low, existing.High)
			}
		}
	}

	idx := sort.Search(len(s.variants), func(i int) bool {
		return less(v, s.variants[i])
	})
	s.variants = append(s.variants, Variant{})
	copy(s.variants[idx+1:], s.variants[idx:])
	s.variants[idx] = v
	s.rebuildIndex()
	return nil
}

// less implements the canonical RCMS ordering: ascending low_breakend, ties
// broken by descending effective size.
func less(a, b Variant) bool {
	if a.Low != b.Low {
		return a.Low < b.Low
	}
	return a.EffectiveSize() > b.EffectiveSize()
}

func (s *Store) rebuildIndex() {
	t := &interval.IntTree{}
	for i, v := range s.variants {
		high := v.High
		if high == v.Low {
			high = v.Low + 1 // zero-width insertions still need a queryable point range
		}
		e := &indexEntry{idx: i, rng: interval.IntRange{Start: int(v.Low), End: int(high)}}
		t.Insert(e, false)
	}
	s.index = t
}

// overlapping returns every stored variant whose breakpoint overlaps b.
func (s *Store) overlapping(b Breakpoint) []Variant {
	high := b.High
	if high == b.Low {
		high = b.Low + 1
	}
	var out []Variant
	s.index.DoMatching(func(e interval.IntInterface) bool {
		out = append(out, s.variants[e.(*indexEntry).idx])
		return false
	}, rangeQuery{lo: int(b.Low), hi: int(high)})
	return out
}

// Overlapping returns every variant whose breakpoint overlaps b, in
// canonical order.
func (s *Store) Overlapping(b Breakpoint) []Variant {
	vs := s.overlapping(b)
	sort.Slice(vs, func(i, j int) bool { return less(vs[i], vs[j]) })
	return vs
}

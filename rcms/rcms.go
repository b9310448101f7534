// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rcms implements the referentially compressed multi-sequence store:
// a reference sequence plus an ordered, coverage-indexed set of variants.
package rcms

import (
	"github.com/pkg/errors"

	"github.com/grailbio/pgst/biosimd"
	"github.com/grailbio/pgst/variant"
)

// RCMS owns a reference sequence S and the ordered variant store built over
// it. It is the only owner of S and the variant.Store; every tree view in
// package pst borrows from it without copying.
type RCMS struct {
	s     []byte
	store *variant.Store
}

// New builds an empty RCMS over reference sequence s with haplotype count n.
// s is cleaned in place (upper-cased, non-ACGT mapped to N) the same way the
// teacher's FASTA reader prepares sequence bytes before storage.
func New(s []byte, n int) *RCMS {
	biosimd.CleanASCIISeqInplace(s)
	return &RCMS{s: s, store: variant.NewStore(n)}
}

// Len returns |S|.
func (r *RCMS) Len() int { return len(r.s) }

// HaplotypeCount returns N.
func (r *RCMS) HaplotypeCount() int { return r.store.HaplotypeCount() }

// Reference returns a borrow of S; callers must not mutate it.
func (r *RCMS) Reference() []byte { return r.s }

// Insert adds v to the store, validating spec.md §3's invariants:
// 0 <= low <= high <= |S|, a matching coverage domain, and no overlap
// between two variants that share a coverage bit.
func (r *RCMS) Insert(v variant.Variant) error {
	if v.Low > v.High || int(v.High) > len(r.s) {
		return errors.Wrapf(ErrInvalidBreakpoint, "[%d,%d) against |S|=%d", v.Low, v.High, len(r.s))
	}
	if v.Coverage.Size() != r.store.HaplotypeCount() {
		return errors.Wrapf(ErrCoverageDomainMismatch, "got %d want %d", v.Coverage.Size(), r.store.HaplotypeCount())
	}
	if err := r.store.Insert(v); err != nil {
		return errors.Wrap(ErrOrderingViolation, err.Error())
	}
	return nil
}

// VariantCount returns the number of variants in the store.
func (r *RCMS) VariantCount() int { return r.store.Len() }

// VariantAt returns the i-th variant in canonical order.
func (r *RCMS) VariantAt(i int) variant.Variant { return r.store.At(i) }

// Variants returns every variant in canonical order. Callers must not
// mutate the returned slice's contents.
func (r *RCMS) Variants() []variant.Variant { return r.store.Variants() }

// Overlapping returns every variant whose breakpoint overlaps b.
func (r *RCMS) Overlapping(b variant.Breakpoint) []variant.Variant {
	return r.store.Overlapping(b)
}

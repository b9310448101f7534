// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rcms

import (
	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/variant"
)

// Rooted wraps an RCMS with a synthetic root variant at position 0 and a
// synthetic sink variant at |S|, both zero-width and fully covered, so the
// base breakpoint tree (package pst) has a unique root and sink regardless
// of what the store itself contains.
type Rooted struct {
	inner *RCMS
	root  variant.Variant
	sink  variant.Variant
}

// NewRooted builds a Rooted view over r.
func NewRooted(r *RCMS) *Rooted {
	n := r.HaplotypeCount()
	full := coverage.Full(n)
	length := uint32(r.Len())
	return &Rooted{
		inner: r,
		root: variant.Variant{
			Breakpoint: variant.Breakpoint{Low: 0, High: 0},
			Kind:       variant.Insertion,
			Coverage:   full,
		},
		sink: variant.Variant{
			Breakpoint: variant.Breakpoint{Low: length, High: length},
			Kind:       variant.Insertion,
			Coverage:   full,
		},
	}
}

// Inner returns the underlying RCMS.
func (rr *Rooted) Inner() *RCMS { return rr.inner }

// Root returns the synthetic root variant.
func (rr *Rooted) Root() variant.Variant { return rr.root }

// Sink returns the synthetic sink variant.
func (rr *Rooted) Sink() variant.Variant { return rr.sink }

// At returns the i-th variant of the rooted sequence: index 0 is the root,
// index VariantCount()+1 is the sink, and everything between is the
// underlying store's canonical order.
func (rr *Rooted) At(i int) variant.Variant {
	switch {
	case i == 0:
		return rr.root
	case i == rr.inner.VariantCount()+1:
		return rr.sink
	default:
		return rr.inner.VariantAt(i - 1)
	}
}

// Len returns the number of variants in the rooted sequence, including the
// synthetic root and sink.
func (rr *Rooted) Len() int { return rr.inner.VariantCount() + 2 }

// All returns the full rooted variant sequence: root, the store's variants
// in canonical order, sink.
func (rr *Rooted) All() []variant.Variant {
	out := make([]variant.Variant, 0, rr.Len())
	out = append(out, rr.root)
	out = append(out, rr.inner.Variants()...)
	out = append(out, rr.sink)
	return out
}

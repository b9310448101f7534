// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package haplotype materializes a single haplotype out of an RCMS by
// replaying, in store order, every variant whose coverage contains that
// haplotype's index.
package haplotype

import (
	"github.com/pkg/errors"

	"github.com/grailbio/pgst/rcms"
)

// ErrHaplotypeOutOfRange is returned when the requested index is not in
// [0, N) for the store's haplotype count.
var ErrHaplotypeOutOfRange = errors.New("haplotype: index out of range")

// Materialize returns the full sequence of haplotype hapIndex: the
// reference S with every variant v such that v.Coverage.Contains(hapIndex)
// applied in store order (ascending low_breakend, ties broken by
// descending effective size, exactly the RCMS's canonical order).
func Materialize(r *rcms.RCMS, hapIndex int) ([]byte, error) {
	if hapIndex < 0 || hapIndex >= r.HaplotypeCount() {
		return nil, errors.Wrapf(ErrHaplotypeOutOfRange, "index %d, N=%d", hapIndex, r.HaplotypeCount())
	}

	ref := r.Reference()
	var out []byte
	cursor := 0
	for _, v := range r.Variants() {
		if !v.Coverage.Contains(hapIndex) {
			continue
		}
		out = append(out, ref[cursor:v.Low]...)
		out = append(out, v.AltSeq...)
		cursor = int(v.High)
	}
	out = append(out, ref[cursor:]...)
	return out, nil
}

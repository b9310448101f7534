// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package variant

// AltKind classifies a variant's alternate sequence relative to the
// reference span it replaces.  Ordering matches the tie-break rule used when
// several variants share a breakend position: insertion < replacement <
// deletion, so insertions are visited first by the base breakpoint tree.
type AltKind uint8

const (
	// Insertion has a zero-width breakpoint and a non-empty alt sequence.
	Insertion AltKind = iota
	// Replacement has a non-zero breakend span and a non-empty alt sequence.
	Replacement
	// Deletion has a non-zero breakend span and an empty alt sequence.
	Deletion
	// Unknown is never a valid Variant's kind; it only appears transiently
	// while decoding malformed input.
	Unknown
)

func (k AltKind) String() string {
	switch k {
	case Insertion:
		return "insertion"
	case Replacement:
		return "replacement"
	case Deletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// DeriveAltKind fixes the alt_kind derivation from (breakend_span, |alt_seq|)
// per the spec's Open Question resolution: the source sometimes derives this
// from a stored field instead, but this system always computes it.
func DeriveAltKind(breakendSpan, altLen int) AltKind {
	switch {
	case breakendSpan > 0 && altLen > 0:
		return Replacement
	case breakendSpan > 0 && altLen == 0:
		return Deletion
	case breakendSpan == 0 && altLen > 0:
		return Insertion
	default:
		return Unknown
	}
}

// EffectiveSize is |alt_seq| - breakend_span, used both for AltKind-implied
// ordering and node-label sizing.
func EffectiveSize(breakendSpan, altLen int) int {
	return altLen - breakendSpan
}

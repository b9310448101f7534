// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// descriptorMaxBits bounds a SeekPosition's path descriptor, per spec.md
// §4.6's "≤256 bits (configurable)".
const descriptorMaxBits = 256

// SeekPosition is a stable, comparable encoding of a path from root to a
// node: an anchor breakend index plus a path descriptor bit-string where
// bit j = 1 means "took the reference child at depth j" and 0 means "took
// the alternate child". Grounded in
// original_source/jstmap-search/jstmap/search/seed_prefix_seek_position.hpp.
type SeekPosition struct {
	AnchorIndex uint32
	words       [descriptorMaxBits / 64]uint64
	length      int
}

// NewSeekPosition returns the zero-depth seek position anchored at the
// given variant index (the root's anchor is always 0).
func NewSeekPosition(anchor uint32) SeekPosition {
	return SeekPosition{AnchorIndex: anchor}
}

// AppendRef extends the descriptor with a "took reference child" step.
func (s SeekPosition) AppendRef() SeekPosition { return s.append(true) }

// AppendAlt extends the descriptor with a "took alternate child" step.
func (s SeekPosition) AppendAlt() SeekPosition { return s.append(false) }

func (s SeekPosition) append(ref bool) SeekPosition {
	if s.length >= descriptorMaxBits {
		return s
	}
	if ref {
		s.words[s.length/64] |= 1 << uint(s.length%64)
	}
	s.length++
	return s
}

// Bit returns the j-th descriptor bit (true = took the reference child).
func (s SeekPosition) Bit(j int) bool {
	return s.words[j/64]&(1<<uint(j%64)) != 0
}

// Len returns the descriptor's bit length: the node's depth from the root.
func (s SeekPosition) Len() int { return s.length }

// Compare implements spec.md §4.6's total ordering: first by anchor index,
// then by descriptor length (shorter < longer), then lexicographically over
// the shared prefix (alt/0 sorts before ref/1 at the first differing bit).
func (s SeekPosition) Compare(other SeekPosition) int {
	if s.AnchorIndex != other.AnchorIndex {
		if s.AnchorIndex < other.AnchorIndex {
			return -1
		}
		return 1
	}
	if s.length != other.length {
		if s.length < other.length {
			return -1
		}
		return 1
	}
	for j := 0; j < s.length; j++ {
		a, b := s.Bit(j), other.Bit(j)
		if a != b {
			if !a {
				return -1
			}
			return 1
		}
	}
	return 0
}

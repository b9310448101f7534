// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matcher

// ShiftOr is the bit-parallel exact matcher (Baeza-Yates/Gonnet): window_size
// = |needle|, state is a multi-word bitmask so arbitrarily long needles are
// supported (unlike Myers, which is pinned to a single 64-bit word).
type ShiftOr struct {
	needle  []byte
	masks   [256][]uint64
	nwords  int
	matchBit uint
	matchWord int
	r       []uint64
	pos     int
}

// NewShiftOr builds a ShiftOr matcher for needle.
func NewShiftOr(needle []byte) (*ShiftOr, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	m := len(needle)
	nwords := (m + 63) / 64
	s := &ShiftOr{
		needle: needle,
		nwords: nwords,
		r:      make([]uint64, nwords),
	}
	for c := range s.masks {
		w := make([]uint64, nwords)
		for i := range w {
			w[i] = ^uint64(0)
		}
		s.masks[c] = w
	}
	for i, c := range needle {
		word := i / 64
		bit := uint(i % 64)
		s.masks[c][word] &^= 1 << bit
	}
	s.matchWord = (m - 1) / 64
	s.matchBit = uint((m - 1) % 64)
	s.reset()
	return s, nil
}

// WindowSize returns |needle|.
func (s *ShiftOr) WindowSize() int { return len(s.needle) }

func (s *ShiftOr) reset() {
	for i := range s.r {
		s.r[i] = ^uint64(0)
	}
	s.pos = 0
}

// Reset clears all running state, restarting as if freshly constructed.
func (s *ShiftOr) Reset() { s.reset() }

// shiftLeft1 computes r << 1 across the multi-word state, propagating carry
// bits from the low word of each successive word up into the next.
func shiftLeft1(r []uint64) {
	var carry uint64
	for i := 0; i < len(r); i++ {
		next := r[i] >> 63
		r[i] = (r[i] << 1) | carry
		carry = next
	}
}

// Call feeds haystack into the running state, reporting every end position
// where needle occurs exactly. State persists across calls so a caller can
// stream a haystack one tree edge at a time; call Reset to start over.
func (s *ShiftOr) Call(haystack []byte, emit func(Hit)) {
	for _, c := range haystack {
		shiftLeft1(s.r)
		mask := s.masks[c]
		for w := 0; w < s.nwords; w++ {
			s.r[w] |= mask[w]
		}
		s.pos++
		if s.r[s.matchWord]&(1<<s.matchBit) == 0 {
			emit(Hit{EndPos: s.pos})
		}
	}
}

// shiftOrState is the opaque capture produced by Capture.
type shiftOrState struct {
	r   []uint64
	pos int
}

// Capture snapshots the running state so it can be restored after a
// traversal detour into an alt branch.
func (s *ShiftOr) Capture() State {
	cp := make([]uint64, len(s.r))
	copy(cp, s.r)
	return shiftOrState{r: cp, pos: s.pos}
}

// Restore reinstates a previously captured state.
func (s *ShiftOr) Restore(st State) {
	saved := st.(shiftOrState)
	copy(s.r, saved.r)
	s.pos = saved.pos
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matcher

import "github.com/pkg/errors"

// maxMyersNeedle is the largest needle Myers can hold in a single 64-bit
// word. Needles beyond this width would need the multi-word banded variant;
// callers needing longer approximate patterns should pre-filter with
// Pigeonhole and verify hits some other way instead.
const maxMyersNeedle = 64

// ErrNeedleTooLong is returned by NewMyers when the needle exceeds the
// single-word width this implementation supports.
var ErrNeedleTooLong = errors.New("matcher: needle exceeds 64 symbols")

// Myers is Myers' 1999 bit-vector algorithm for approximate string matching
// within a Hamming/Levenshtein-style edit budget k, restricted to needles
// that fit in one 64-bit word.
type Myers struct {
	needle []byte
	peq    [256]uint64
	m      int
	k      int

	vp, vn uint64
	score  int
	pos    int
}

// NewMyers builds a Myers matcher for needle, reporting every end position
// within k edits.
func NewMyers(needle []byte, k int) (*Myers, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	if len(needle) > maxMyersNeedle {
		return nil, ErrNeedleTooLong
	}
	my := &Myers{needle: needle, m: len(needle), k: k}
	for i, c := range needle {
		my.peq[c] |= 1 << uint(i)
	}
	my.reset()
	return my, nil
}

// WindowSize returns |needle|.
func (my *Myers) WindowSize() int { return my.m }

func (my *Myers) reset() {
	my.vp = ^uint64(0)
	my.vn = 0
	my.score = my.m
	my.pos = 0
}

// Reset clears all running state, restarting as if freshly constructed.
func (my *Myers) Reset() { my.reset() }

// Call feeds haystack into the running state, reporting every end position
// within k edits. State persists across calls so a caller can stream a
// haystack one tree edge at a time.
func (my *Myers) Call(haystack []byte, emit func(Hit)) {
	mmask := uint64(1) << uint(my.m-1)
	for _, c := range haystack {
		eq := my.peq[c]

		xv := eq | my.vn
		xh := (((eq & my.vp) + my.vp) ^ my.vp) | eq

		ph := my.vn | ^(xh | my.vp)
		mh := my.vp & xh

		if ph&mmask != 0 {
			my.score++
		} else if mh&mmask != 0 {
			my.score--
		}

		ph <<= 1
		mh <<= 1

		my.vp = (mh | ^(xv | ph)) & ^uint64(0)
		my.vn = ph & xv

		my.pos++
		if my.score <= my.k {
			emit(Hit{EndPos: my.pos, Edits: my.score})
		}
	}
}

// myersState is the opaque capture produced by Capture.
type myersState struct {
	vp, vn uint64
	score  int
	pos    int
}

// Capture snapshots the running state so it can be restored after a
// traversal detour into an alt branch.
func (my *Myers) Capture() State {
	return myersState{vp: my.vp, vn: my.vn, score: my.score, pos: my.pos}
}

// Restore reinstates a previously captured state.
func (my *Myers) Restore(st State) {
	saved := st.(myersState)
	my.vp, my.vn, my.score, my.pos = saved.vp, saved.vn, saved.score, saved.pos
}

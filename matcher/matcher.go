// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package matcher implements the online window-matcher family used by the
// traversal driver: exact matchers (Horspool, ShiftOr), an approximate
// bit-parallel matcher (Myers), and a seed pre-filter (Pigeonhole).
package matcher

import "github.com/pkg/errors"

// ErrEmptyNeedle is returned by every matcher constructor given a
// zero-length pattern; matchers never allocate after construction, so this
// check happens up front.
var ErrEmptyNeedle = errors.New("matcher: EmptyNeedle")

// Hit is one end-position match reported by Matcher.Call.
type Hit struct {
	EndPos int
	Edits  int
}

// Matcher is the common contract from spec.md §4.8: a window size and a
// streaming call that invokes emit for every end-position match.
type Matcher interface {
	WindowSize() int
	Call(haystack []byte, emit func(Hit))
}

// State is a matcher's captured internal state (spec.md §4.9).
type State interface{}

// Capturer is implemented by matchers whose state can be captured before
// descending into an alt branch and restored on return. Matchers without
// this are "oblivious": the traversal driver instead relies on
// pst.LeftExtend to keep enough left context in every label.
type Capturer interface {
	Capture() State
	Restore(State)
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package variant

import "github.com/grailbio/base/log"

// Breakpoint is a half-open interval [Low, High) on the reference sequence.
type Breakpoint struct {
	Low  uint32
	High uint32
}

// Span returns high - low, the breakend_span of the breakpoint.
func (b Breakpoint) Span() int {
	if b.High < b.Low {
		log.Panicf("breakpoint: high %d < low %d", b.High, b.Low)
	}
	return int(b.High - b.Low)
}

// Overlaps reports whether b and other share at least one reference
// position under half-open interval semantics.
func (b Breakpoint) Overlaps(other Breakpoint) bool {
	return b.Low < other.High && other.Low < b.High
}

// EndMarker names which end of a Breakpoint a tree node's site refers to.
type EndMarker uint8

const (
	// LowEnd designates a site at a breakpoint's low breakend.
	LowEnd EndMarker = iota
	// HighEnd designates a site at a breakpoint's high breakend.
	HighEnd
)

func (e EndMarker) String() string {
	if e == LowEnd {
		return "low"
	}
	return "high"
}

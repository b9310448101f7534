// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package search

// dedup tracks the last reported global begin position for one (query,
// bin) task. The breakpoint tree's branching means the same (reference
// span, alternate span) can be reachable by two distinct DFS paths whose
// coverages overlap; dedup suppresses the repeat. Scoped to a single task
// so it needs no synchronization even though tasks run concurrently.
type dedup struct {
	lastBeginPos int64
}

// newDedup returns a dedup state that has not seen any position yet.
func newDedup() *dedup {
	return &dedup{lastBeginPos: -1}
}

// seen reports whether globalBeginPos was already reported for this
// task's query, recording it as seen if not.
func (d *dedup) seen(globalBeginPos int64) bool {
	if d.lastBeginPos == globalBeginPos {
		return true
	}
	d.lastBeginPos = globalBeginPos
	return false
}

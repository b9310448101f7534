// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// LeftExtend prepends up to w preceding symbols from the parent's label to
// every child label, so a window of size <= w+1 ending at a variant stays
// visible to an oblivious (non-capturing) matcher after a branch.
type LeftExtend struct {
	inner Tree
	w     int
}

// NewLeftExtend wraps inner, prepending up to w bytes of left context.
func NewLeftExtend(w int, inner Tree) *LeftExtend { return &LeftExtend{inner: inner, w: w} }

func (l *LeftExtend) Root() Node        { return l.inner.Root() }
func (l *LeftExtend) IsSink(n Node) bool { return l.inner.IsSink(n) }

func (l *LeftExtend) NextRef(n Node) (Node, bool) {
	child, ok := l.inner.NextRef(n)
	if !ok {
		return Node{}, false
	}
	return l.extend(n, child), true
}

func (l *LeftExtend) NextAlt(n Node) (Node, bool) {
	child, ok := l.inner.NextAlt(n)
	if !ok {
		return Node{}, false
	}
	return l.extend(n, child), true
}

func (l *LeftExtend) extend(parent, child Node) Node {
	if l.w <= 0 || len(parent.Sequence) == 0 {
		return child
	}
	ctx := parent.Sequence
	if len(ctx) > l.w {
		ctx = ctx[len(ctx)-l.w:]
	}
	merged := make([]byte, 0, len(ctx)+len(child.Sequence))
	merged = append(merged, ctx...)
	merged = append(merged, child.Sequence...)
	child.Sequence = merged
	return child
}

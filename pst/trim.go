// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// Trim truncates a node's label to at most its trailing w bytes, capping
// the unbounded growth of a root_path label (or a long branch-free
// reference run) to just the context a window of size w needs once it
// reaches this node.
type Trim struct {
	inner Tree
	w     int
}

// NewTrim wraps inner, truncating every label to at most its last w bytes.
func NewTrim(w int, inner Tree) *Trim { return &Trim{inner: inner, w: w} }

func (t *Trim) Root() Node            { return t.clip(t.inner.Root()) }
func (t *Trim) IsSink(n Node) bool     { return t.inner.IsSink(n) }

func (t *Trim) NextRef(n Node) (Node, bool) {
	child, ok := t.inner.NextRef(n)
	if !ok {
		return Node{}, false
	}
	return t.clip(child), true
}

func (t *Trim) NextAlt(n Node) (Node, bool) {
	child, ok := t.inner.NextAlt(n)
	if !ok {
		return Node{}, false
	}
	return t.clip(child), true
}

func (t *Trim) clip(n Node) Node {
	if len(n.Sequence) > t.w {
		n.Sequence = n.Sequence[len(n.Sequence)-t.w:]
	}
	return n
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// Merge collapses a maximal chain of single-child reference nodes (nodes
// with no alt branch of their own) into one node whose label is their
// concatenation, preserving DFS ordering of the remaining branch points.
type Merge struct {
	inner Tree
}

// NewMerge wraps inner.
func NewMerge(inner Tree) *Merge { return &Merge{inner: inner} }

func (m *Merge) Root() Node         { return m.inner.Root() }
func (m *Merge) IsSink(n Node) bool  { return m.inner.IsSink(n) }
func (m *Merge) NextAlt(n Node) (Node, bool) { return m.inner.NextAlt(n) }

func (m *Merge) NextRef(n Node) (Node, bool) {
	child, ok := m.inner.NextRef(n)
	if !ok {
		return Node{}, false
	}
	for {
		if m.inner.IsSink(child) {
			return child, true
		}
		if _, hasAlt := m.inner.NextAlt(child); hasAlt {
			return child, true
		}
		next, ok := m.inner.NextRef(child)
		if !ok {
			return child, true
		}
		seq := make([]byte, 0, len(child.Sequence)+len(next.Sequence))
		seq = append(seq, child.Sequence...)
		seq = append(seq, next.Sequence...)
		next.Sequence = seq
		next.Low = child.Low
		child = next
	}
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// Prune implements prune / prune_unsupported: a branch is cut once its
// coverage becomes empty, or (for alt branches, which carry a Coloured
// Informative flag) once it provides no symbols beyond its sibling
// reference extension. Pruning never changes the set of distinct labelled
// sequences reachable from the root.
type Prune struct {
	inner Tree
}

// NewPrune wraps inner.
func NewPrune(inner Tree) *Prune { return &Prune{inner: inner} }

func (p *Prune) Root() Node        { return p.inner.Root() }
func (p *Prune) IsSink(n Node) bool { return p.inner.IsSink(n) }

func (p *Prune) NextRef(n Node) (Node, bool) {
	child, ok := p.inner.NextRef(n)
	if !ok || child.Coverage.None() {
		return Node{}, false
	}
	return child, true
}

func (p *Prune) NextAlt(n Node) (Node, bool) {
	child, ok := p.inner.NextAlt(n)
	if !ok || child.Coverage.None() || !child.Informative {
		return Node{}, false
	}
	return child, true
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

import "bytes"

// Coloured adds a derived Informative flag to alt-path nodes: whether the
// node's label differs from what continuing along the reference would show
// over the same span. Reference nodes are always informative. Prune uses
// this to stop non-informative branches.
type Coloured struct {
	inner Tree
}

// NewColoured wraps inner.
func NewColoured(inner Tree) *Coloured { return &Coloured{inner: inner} }

func (c *Coloured) Root() Node {
	n := c.inner.Root()
	n.Informative = true
	return n
}

func (c *Coloured) IsSink(n Node) bool { return c.inner.IsSink(n) }

func (c *Coloured) NextRef(n Node) (Node, bool) {
	child, ok := c.inner.NextRef(n)
	if !ok {
		return Node{}, false
	}
	child.Informative = true
	return child, true
}

func (c *Coloured) NextAlt(n Node) (Node, bool) {
	child, ok := c.inner.NextAlt(n)
	if !ok {
		return Node{}, false
	}
	refChild, refOK := c.inner.NextRef(n)
	child.Informative = !refOK || !bytes.Equal(child.Sequence, refChild.Sequence)
	return child, true
}

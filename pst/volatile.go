// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// Volatile documents and enforces the precondition Chunk and Seekable rely
// on: that a tree's nodes are cheap to copy. Node is already a plain value
// holding only a byte slice and a Coverage, so Volatile is the identity
// transformation; it exists as a pipeline marker, the same role the
// original's volatile_tree adaptor plays before chunk/seekable.
type Volatile struct {
	inner Tree
}

// NewVolatile wraps inner.
func NewVolatile(inner Tree) *Volatile { return &Volatile{inner: inner} }

func (v *Volatile) Root() Node                  { return v.inner.Root() }
func (v *Volatile) IsSink(n Node) bool           { return v.inner.IsSink(n) }
func (v *Volatile) NextRef(n Node) (Node, bool)  { return v.inner.NextRef(n) }
func (v *Volatile) NextAlt(n Node) (Node, bool)  { return v.inner.NextAlt(n) }

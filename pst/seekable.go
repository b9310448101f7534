// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// Seekable augments a tree with Seek(position), replaying the descriptor
// of reference/alternate choices recorded in a SeekPosition from the root.
// Cost is O(depth), matching the descriptor's own length.
type Seekable struct {
	inner Tree
}

// NewSeekable wraps inner.
func NewSeekable(inner Tree) *Seekable { return &Seekable{inner: inner} }

func (s *Seekable) Root() Node                 { return s.inner.Root() }
func (s *Seekable) IsSink(n Node) bool          { return s.inner.IsSink(n) }
func (s *Seekable) NextRef(n Node) (Node, bool) { return s.inner.NextRef(n) }
func (s *Seekable) NextAlt(n Node) (Node, bool) { return s.inner.NextAlt(n) }

// Seek replays pos's descriptor from the root and returns the node it
// names, or false if the descriptor does not name a reachable node (e.g. it
// was recorded against a different, unpruned tree).
func (s *Seekable) Seek(pos SeekPosition) (Node, bool) {
	n := s.inner.Root()
	for j := 0; j < pos.Len(); j++ {
		var ok bool
		if pos.Bit(j) {
			n, ok = s.inner.NextRef(n)
		} else {
			n, ok = s.inner.NextAlt(n)
		}
		if !ok {
			return Node{}, false
		}
	}
	return n, true
}

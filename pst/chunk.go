// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

// Bin is one contiguous partition of the reference axis produced by Chunk,
// together with the view restricting traversal to that span.
type Bin struct {
	ID    int
	Begin uint32
	End   uint32
	Tree  Tree
}

// Chunk partitions the reference axis into non-overlapping contiguous bins
// of binSize reference positions, each a forest tree covering its span
// together with every variant that intersects it (variants naturally stay
// in frame because BinView only filters on the node's own low position, not
// on which variant produced it).
func Chunk(inner Tree, base *BaseTree, length int, binSize int) []Bin {
	if binSize <= 0 {
		binSize = length
	}
	var bins []Bin
	for begin, id := 0, 0; begin < length; begin, id = begin+binSize, id+1 {
		end := begin + binSize
		if end > length {
			end = length
		}
		bins = append(bins, Bin{
			ID:    id,
			Begin: uint32(begin),
			End:   uint32(end),
			Tree:  newBinView(inner, base, uint32(begin), uint32(end)),
		})
	}
	return bins
}

// binView restricts an inner tree's traversal to nodes whose low breakend
// falls inside [begin, end).
type binView struct {
	inner      Tree
	base       *BaseTree
	begin, end uint32
}

func newBinView(inner Tree, base *BaseTree, begin, end uint32) *binView {
	return &binView{inner: inner, base: base, begin: begin, end: end}
}

func (b *binView) Root() Node { return b.inner.Root() }
func (b *binView) IsSink(n Node) bool { return b.inner.IsSink(n) }

func (b *binView) inFrame(n Node) bool {
	low := b.base.Pos(n.Low)
	return low >= b.begin && low < b.end
}

func (b *binView) NextRef(n Node) (Node, bool) {
	child, ok := b.inner.NextRef(n)
	if !ok || !b.inFrame(child) {
		return Node{}, false
	}
	return child, true
}

func (b *binView) NextAlt(n Node) (Node, bool) {
	child, ok := b.inner.NextAlt(n)
	if !ok || !b.inFrame(child) {
		return Node{}, false
	}
	return child, true
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

import (
	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/variant"
)

// Site names one breakend of one variant in a rooted variant sequence: the
// variant's index (0 is always the synthetic root, the last index is
// always the synthetic sink) and which of its two breakends.
type Site struct {
	VariantIndex int
	End          variant.EndMarker
}

// Node is the node type shared by every transformation in this package.
// Low/High/FromReference/OnAlternatePath are the base breakpoint tree's
// state (spec.md §4.4); Sequence/Coverage are filled in by Labelled and
// refined by the transformations composed after it; Informative is set by
// Coloured.
type Node struct {
	Low             Site
	High            Site
	FromReference   bool
	OnAlternatePath bool

	Sequence    []byte
	Coverage    coverage.Coverage
	Informative bool
}

// Tree is the contract every composable PST transformation implements: a
// root, a sink test, and single-step reference/alternate descent. Wrappers
// compose by holding an inner Tree and adapting its Node on the way out,
// the same shape as the teacher's own layered io.Reader/io.Writer wrappers.
type Tree interface {
	Root() Node
	IsSink(n Node) bool
	NextRef(n Node) (Node, bool)
	NextAlt(n Node) (Node, bool)
}

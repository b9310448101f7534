// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pst

import "github.com/grailbio/pgst/coverage"

// LabelMode selects how Labelled computes a node's sequence.
type LabelMode int

const (
	// NodeOnly labels a node with just its own segment of S or alt_seq.
	NodeOnly LabelMode = iota
	// RootPath labels a node with the concatenation of every label from
	// the root to this node.
	RootPath
)

// Labelled attaches a sequence and a coverage to every BaseTree node: the
// first transformation in every pipeline, since everything downstream only
// manipulates the label, never the underlying RCMS directly.
type Labelled struct {
	base *BaseTree
	mode LabelMode
}

// NewLabelled wraps base, producing labels in the given mode.
func NewLabelled(base *BaseTree, mode LabelMode) *Labelled {
	return &Labelled{base: base, mode: mode}
}

func (l *Labelled) Root() Node {
	return l.label(l.base.Root(), nil, coverage.Coverage{})
}

func (l *Labelled) IsSink(n Node) bool { return l.base.IsSink(strip(n)) }

func (l *Labelled) NextRef(n Node) (Node, bool) {
	child, ok := l.base.NextRef(strip(n))
	if !ok {
		return Node{}, false
	}
	return l.label(child, n.Sequence, n.Coverage), true
}

func (l *Labelled) NextAlt(n Node) (Node, bool) {
	child, ok := l.base.NextAlt(strip(n))
	if !ok {
		return Node{}, false
	}
	return l.label(child, n.Sequence, n.Coverage), true
}

// label computes the sequence/coverage for a freshly produced base node,
// given the parent's label (nil/zero at the root).
func (l *Labelled) label(n Node, parentSeq []byte, parentCov coverage.Coverage) Node {
	var seq []byte
	var cov coverage.Coverage
	if n.FromReference {
		p, q := l.base.Pos(n.Low), l.base.Pos(n.High)
		seq = l.base.Reference()[p:q]
		if parentCov.Size() == 0 {
			cov = l.base.VariantAt(0).Coverage // root: full coverage
		} else {
			cov = parentCov
		}
	} else {
		v := l.base.VariantAt(n.Low.VariantIndex)
		seq = v.AltSeq
		if parentCov.Size() == 0 {
			cov = v.Coverage
		} else {
			cov = parentCov.And(v.Coverage)
		}
	}
	if l.mode == RootPath && len(parentSeq) > 0 {
		full := make([]byte, 0, len(parentSeq)+len(seq))
		full = append(full, parentSeq...)
		full = append(full, seq...)
		seq = full
	}
	n.Sequence = seq
	n.Coverage = cov
	return n
}

// strip drops the label fields so the result can be passed back into the
// BaseTree's unlabelled contract.
func strip(n Node) Node {
	return Node{Low: n.Low, High: n.High, FromReference: n.FromReference, OnAlternatePath: n.OnAlternatePath}
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package search implements the orchestrator that pairs queries with
// candidate bins (as decided by the pre-filter), runs each pair through
// the traversal driver with a caller-chosen matcher, and deduplicates hits
// that the tree's branching structure would otherwise report twice.
package search

import "github.com/grailbio/pgst/coverage"

// Hit is one reported match, in the wire shape of spec.md's in-memory hit
// record.
type Hit struct {
	NeedleID          uint32
	BinID             uint32
	HaplotypeCoverage coverage.Coverage
	ReferenceBegin    uint64
	ReferenceEnd      uint64
	LabelOffset       int64
}

// Sink receives hits as they are produced. Implementations must be safe
// for concurrent use: the orchestrator calls Emit from multiple worker
// goroutines.
type Sink interface {
	Emit(Hit)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Hit)

// Emit calls f.
func (f SinkFunc) Emit(h Hit) { f(h) }

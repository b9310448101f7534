// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package search

import (
	"github.com/grailbio/base/traverse"

	"github.com/grailbio/pgst/matcher"
	"github.com/grailbio/pgst/pst"
	"github.com/grailbio/pgst/prefilter"
	"github.com/grailbio/pgst/traversal"
)

// MatcherFactory builds a fresh, independent Matcher instance for a given
// query pattern and error budget. The orchestrator calls this once per
// (query, bin) task since matcher state is never safe for concurrent
// reuse across goroutines.
type MatcherFactory func(pattern []byte, errorBudget int) (matcher.Matcher, error)

// Options configures one Orchestrator run.
type Options struct {
	ErrorBudget int
	ThreadCount int
}

// Orchestrator pairs queries against the bins a pre-filter IBF reports as
// candidates, runs each (query, bin) pair through the traversal driver
// with a matcher built by Factory, and writes deduplicated hits to Sink.
type Orchestrator struct {
	Base    *pst.BaseTree
	Filter  *prefilter.IBF
	Bins    []pst.Bin
	Factory MatcherFactory
	Sink    Sink
	Options Options
}

// task is one (query, bin) unit of work.
type task struct {
	query Query
	bin   pst.Bin
}

// Run executes every candidate (query, bin) task across a worker pool of
// Options.ThreadCount goroutines (per spec.md's "worker pool of size
// thread_count executes independent query x bin tasks" scheduling model).
// Each task emits its hits to Sink as they are found; hits from different
// tasks reach Sink in no fixed order.
func (o *Orchestrator) Run(queries []Query) error {
	var tasks []task
	for _, q := range queries {
		candidates := o.Filter.Query(q.Pattern, o.Options.ErrorBudget)
		for _, binID := range candidates {
			tasks = append(tasks, task{query: q, bin: o.Bins[binID]})
		}
	}

	parallelism := o.Options.ThreadCount
	if parallelism <= 0 {
		parallelism = 1
	}
	return traverse.Limit(parallelism).Each(len(tasks), func(idx int) error {
		t := tasks[idx]
		return o.runTask(t)
	})
}

func (o *Orchestrator) runTask(t task) error {
	m, err := o.Factory(t.query.Pattern, o.Options.ErrorBudget)
	if err != nil {
		return err
	}

	d := newDedup()
	windowSize := m.WindowSize()

	capturer, stateful := m.(matcher.Capturer)
	var saved []matcher.State
	var pathLen int64
	var pathLenAtPush []int64

	sub := &captureSubscriber{
		onPush: func(n pst.Node) {
			if stateful {
				saved = append(saved, capturer.Capture())
				pathLenAtPush = append(pathLenAtPush, pathLen)
			}
		},
		onPop: func(n pst.Node) {
			if stateful && len(saved) > 0 {
				last := len(saved) - 1
				capturer.Restore(saved[last])
				pathLen = pathLenAtPush[last]
				saved = saved[:last]
				pathLenAtPush = pathLenAtPush[:last]
			}
		},
	}

	driver := traversal.NewDriver(t.bin.Tree, sub)
	driver.Walk(func(n pst.Node) bool {
		beforeLen := pathLen
		refAnchor := int64(o.Base.Pos(n.Low))
		pathLen += int64(len(n.Sequence))

		m.Call(n.Sequence, func(h matcher.Hit) {
			localEnd := h.EndPos
			if stateful {
				localEnd = int(int64(h.EndPos) - beforeLen)
			}
			if localEnd < 0 || localEnd > len(n.Sequence) {
				return
			}
			refEnd := refAnchor + int64(localEnd)
			refBegin := refEnd - int64(windowSize)
			if refBegin < 0 {
				refBegin = 0
			}
			globalBegin := int64(h.EndPos) - int64(windowSize)
			if !stateful {
				globalBegin = refBegin
			}
			if d.seen(globalBegin) {
				return
			}
			o.Sink.Emit(Hit{
				NeedleID:          t.query.ID,
				BinID:             uint32(t.bin.ID),
				HaplotypeCoverage: n.Coverage,
				ReferenceBegin:    uint64(refBegin),
				ReferenceEnd:      uint64(refEnd),
				LabelOffset:       int64(len(n.Sequence)) - int64(localEnd),
			})
		})
		return true
	})
	return nil
}

// captureSubscriber adapts plain closures to traversal.Subscriber.
type captureSubscriber struct {
	onPush func(pst.Node)
	onPop  func(pst.Node)
}

func (s *captureSubscriber) OnPush(n pst.Node) { s.onPush(n) }
func (s *captureSubscriber) OnPop(n pst.Node)  { s.onPop(n) }

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package samsink renders search hits as github.com/biogo/hts/bam records,
// the one concrete implementation of external.Sink shipped for
// cmd/pgst-search's default HITS_OUT writer.
package samsink

import (
	"fmt"
	"io"
	"sync"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/grailbio/pgst/external"
	"github.com/grailbio/pgst/search"
)

// Sink renders each search.Hit as a sam.Record aligned against one
// synthetic reference spanning the RCMS's S, writing BAM to the
// constructor's io.Writer the same way markduplicates' test helpers build
// records field-by-field and encoding/bam's writer tests drive
// bam.NewWriter/.Write.
type Sink struct {
	mu sync.Mutex
	w  *bam.Writer
	ref *sam.Reference
}

var _ external.Sink = (*Sink)(nil)

// New opens a BAM writer over w with one reference named referenceName
// spanning referenceLength bases (the RCMS's |S|). parallelism is the
// writer's compression parallelism, per bam.NewWriter.
func New(w io.Writer, referenceName string, referenceLength, parallelism int) (*Sink, error) {
	ref, err := sam.NewReference(referenceName, "", "", referenceLength, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "samsink: new reference")
	}
	header, err := sam.NewHeader(nil, []*sam.Reference{ref})
	if err != nil {
		return nil, errors.Wrap(err, "samsink: new header")
	}
	bw, err := bam.NewWriter(w, header, parallelism)
	if err != nil {
		return nil, errors.Wrap(err, "samsink: new writer")
	}
	return &Sink{w: bw, ref: ref}, nil
}

// Emit renders h as a sam.Record spanning [ReferenceBegin, ReferenceEnd) on
// the sink's reference, named by its needle id, with the bin id and
// haplotype coverage popcount stashed as XB/XN aux tags. The orchestrator
// calls Emit from multiple worker goroutines with no way to observe a
// returned error, so a write failure is logged and the hit is dropped
// rather than panicking the caller's goroutine.
func (s *Sink) Emit(h search.Hit) {
	rec := &sam.Record{
		Name:  fmt.Sprintf("needle%d", h.NeedleID),
		Ref:   s.ref,
		Pos:   int(h.ReferenceBegin),
		MapQ:  255,
		Cigar: sam.Cigar{sam.NewCigarOp(sam.CigarMatch, int(h.ReferenceEnd-h.ReferenceBegin))},
	}
	if aux, err := sam.NewAux(sam.NewTag("XB"), int(h.BinID)); err == nil {
		rec.AuxFields = append(rec.AuxFields, aux)
	}
	if aux, err := sam.NewAux(sam.NewTag("XN"), h.HaplotypeCoverage.PopCount()); err == nil {
		rec.AuxFields = append(rec.AuxFields, aux)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.w.Write(rec); err != nil {
		log.Error.Printf("samsink: write hit for needle %d: %v", h.NeedleID, err)
	}
}

// Close flushes and closes the underlying BAM writer.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Close()
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fasta adapts the teacher's encoding/fasta reader to
// external.ReferenceSource, the one concrete reference-loading
// implementation shipped with pgst. Neither CLI tool imports it.
package fasta

import (
	"io"

	"github.com/pkg/errors"

	"github.com/grailbio/pgst/encoding/fasta"
	"github.com/grailbio/pgst/external"
)

// Source wraps a parsed FASTA file as an external.ReferenceSource.
type Source struct {
	f fasta.Fasta
}

var _ external.ReferenceSource = (*Source)(nil)

// Open reads every sequence in r into memory, cleaning bases the same way
// rcms.New does (upper-cased, non-ACGT mapped to N), and returns a Source
// over them.
func Open(r io.Reader) (*Source, error) {
	f, err := fasta.New(r, fasta.OptClean)
	if err != nil {
		return nil, errors.Wrap(err, "external/fasta: open")
	}
	return &Source{f: f}, nil
}

// Sequence returns seqName's full bytes.
func (s *Source) Sequence(seqName string) ([]byte, error) {
	n, err := s.f.Len(seqName)
	if err != nil {
		return nil, errors.Wrapf(err, "external/fasta: len %s", seqName)
	}
	str, err := s.f.Get(seqName, 0, n)
	if err != nil {
		return nil, errors.Wrapf(err, "external/fasta: get %s", seqName)
	}
	return []byte(str), nil
}

// SeqNames lists every sequence name in the FASTA file, in file order.
func (s *Source) SeqNames() []string { return s.f.SeqNames() }

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package external defines the interfaces that stand in for spec.md
// section 1's explicitly out-of-scope collaborators: VCF/FASTA ingestion
// and SAM/BAM output. package rcms, prefilter, and search never import this
// package or anything beneath it. package persist imports it for the
// Serializer interface that persist.RCMSSerializer implements, and
// cmd/pgst-search wires external/samsink in as its hit Sink.
package external

import "github.com/grailbio/pgst/variant"

// ReferenceSource supplies the reference sequence an RCMS is built over.
// external/fasta's implementation wraps the teacher's own encoding/fasta
// reader.
type ReferenceSource interface {
	// Sequence returns seqName's full bytes, ready for rcms.New.
	Sequence(seqName string) ([]byte, error)
	// SeqNames lists every sequence name the source can supply.
	SeqNames() []string
}

// VariantStream supplies already-parsed variants to insert into an RCMS.
// VCF parsing itself is out of scope (spec.md section 1); a VariantStream
// implementation is expected to have done that parsing already and just
// hand back variant.Variant values in any order (rcms.RCMS.Insert places
// each variant at its canonical position).
type VariantStream interface {
	// Next returns the next variant, or ok=false once the stream is
	// exhausted.
	Next() (v variant.Variant, ok bool, err error)
}

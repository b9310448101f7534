// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package persist implements the binary wire formats of spec.md section 6:
// a CRC-32-trailered RCMS file and a CRC-32-free, word-packed IBF file, each
// optionally wrapped in a compression envelope. The bytes inside the
// envelope are byte-for-byte the spec's layouts; the envelope is ambient
// I/O convenience, not part of the format itself.
package persist

import (
	"io"
	"io/ioutil"

	htsbgzf "github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	ourbgzf "github.com/grailbio/pgst/encoding/bgzf"
)

// Envelope selects the compression wrapper a persisted file is stored
// under. The on-disk payload format is identical in every case.
type Envelope int

const (
	// EnvelopeNone stores the payload uncompressed.
	EnvelopeNone Envelope = iota
	// EnvelopeGzip wraps the payload in a single klauspost/compress gzip
	// stream, for archives where random access isn't needed.
	EnvelopeGzip
	// EnvelopeBGZF wraps the payload in the teacher's bgzf block writer
	// (cgo builds use zlibng; see encoding/bgzf), giving the file the same
	// virtual-offset seekability bam/bai files rely on, read back with
	// biogo/hts/bgzf the same way the teacher's gindex reader does.
	EnvelopeBGZF
)

const bgzfCompressionLevel = 6

func envelopeWriter(w io.Writer, env Envelope) (io.WriteCloser, error) {
	switch env {
	case EnvelopeNone:
		return nopWriteCloser{w}, nil
	case EnvelopeGzip:
		return gzip.NewWriter(w), nil
	case EnvelopeBGZF:
		return ourbgzf.NewWriter(w, bgzfCompressionLevel)
	default:
		return nil, errors.Errorf("persist: unknown envelope %d", env)
	}
}

func envelopeReader(r io.Reader, env Envelope) (io.ReadCloser, error) {
	switch env {
	case EnvelopeNone:
		return ioutil.NopCloser(r), nil
	case EnvelopeGzip:
		return gzip.NewReader(r)
	case EnvelopeBGZF:
		rc, err := htsbgzf.NewReader(r, 1)
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, errors.Errorf("persist: unknown envelope %d", env)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package persist

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/grailbio/pgst/prefilter"
)

var ibfMagic = [4]byte{'J', 'I', 'B', 'F'}

const ibfVersion uint16 = 1

// WriteIBF writes f to w in spec.md section 6's IBF_IN layout: a fixed
// header followed by the filter's word-packed bit array. Unlike the RCMS
// format the IBF carries no trailing checksum (spec.md's layout omits one),
// so ReadIBF does not detect a corrupted bit array.
func WriteIBF(w io.Writer, env Envelope, binSize int, f *prefilter.IBF) error {
	ew, err := envelopeWriter(w, env)
	if err != nil {
		return errors.Wrap(err, "persist: open IBF envelope")
	}
	if err := writeIBFBody(ew, binSize, f); err != nil {
		ew.Close()
		return err
	}
	return ew.Close()
}

func writeIBFBody(w io.Writer, binSize int, f *prefilter.IBF) error {
	if _, err := w.Write(ibfMagic[:]); err != nil {
		return errors.Wrap(err, "persist: write IBF magic")
	}
	if err := binary.Write(w, binary.LittleEndian, ibfVersion); err != nil {
		return errors.Wrap(err, "persist: write IBF version")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(binSize)); err != nil {
		return errors.Wrap(err, "persist: write IBF bin_size")
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(f.KmerSize())); err != nil {
		return errors.Wrap(err, "persist: write IBF kmer")
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(f.HashCount())); err != nil {
		return errors.Wrap(err, "persist: write IBF hashes")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(f.Bins())); err != nil {
		return errors.Wrap(err, "persist: write IBF bins")
	}
	if err := binary.Write(w, binary.LittleEndian, f.BitsPerBin()); err != nil {
		return errors.Wrap(err, "persist: write IBF bits_per_bin")
	}
	if err := binary.Write(w, binary.LittleEndian, f.Words()); err != nil {
		return errors.Wrap(err, "persist: write IBF payload")
	}
	return nil
}

// ReadIBF reads an IBF previously written by WriteIBF. binSize is returned
// separately since prefilter.IBF itself has no notion of a reference-space
// bin width; it is the caller's job (typically cmd/pgst-search) to re-derive
// pst.Chunk's bins using the same binSize.
func ReadIBF(r io.Reader, env Envelope) (f *prefilter.IBF, binSize int, err error) {
	er, err := envelopeReader(r, env)
	if err != nil {
		return nil, 0, errors.Wrap(err, "persist: open IBF envelope")
	}
	defer er.Close()
	return readIBFBody(er)
}

func readIBFBody(r io.Reader) (*prefilter.IBF, int, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, 0, errors.Wrap(ErrFormat, "read IBF magic: "+err.Error())
	}
	if magic != ibfMagic {
		return nil, 0, errors.Wrapf(ErrFormat, "bad IBF magic %q", magic)
	}
	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, 0, errors.Wrap(ErrFormat, "read IBF version: "+err.Error())
	}
	if version != ibfVersion {
		return nil, 0, errors.Wrapf(ErrFormat, "unsupported IBF version %d", version)
	}
	var binSize64 uint64
	if err := binary.Read(r, binary.LittleEndian, &binSize64); err != nil {
		return nil, 0, errors.Wrap(ErrFormat, "read IBF bin_size: "+err.Error())
	}
	var kmer, hashes uint8
	if err := binary.Read(r, binary.LittleEndian, &kmer); err != nil {
		return nil, 0, errors.Wrap(ErrFormat, "read IBF kmer: "+err.Error())
	}
	if err := binary.Read(r, binary.LittleEndian, &hashes); err != nil {
		return nil, 0, errors.Wrap(ErrFormat, "read IBF hashes: "+err.Error())
	}
	var bins uint32
	if err := binary.Read(r, binary.LittleEndian, &bins); err != nil {
		return nil, 0, errors.Wrap(ErrFormat, "read IBF bins: "+err.Error())
	}
	var bitsPerBin uint64
	if err := binary.Read(r, binary.LittleEndian, &bitsPerBin); err != nil {
		return nil, 0, errors.Wrap(ErrFormat, "read IBF bits_per_bin: "+err.Error())
	}
	f := prefilter.New(int(bins), int(bitsPerBin), int(hashes), int(kmer))
	if uint64(f.BitsPerBin()) != bitsPerBin {
		f.Close()
		return nil, 0, errors.Wrapf(ErrFormat, "IBF bits_per_bin %d is not a power of two", bitsPerBin)
	}
	if err := binary.Read(r, binary.LittleEndian, f.Words()); err != nil {
		f.Close()
		return nil, 0, errors.Wrap(ErrFormat, "read IBF payload: "+err.Error())
	}
	return f, int(binSize64), nil
}

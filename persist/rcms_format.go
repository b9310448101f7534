// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package persist

import (
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/grailbio/pgst/biosimd"
	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/rcms"
	"github.com/grailbio/pgst/variant"
)

var rcmsMagic = [4]byte{'R', 'C', 'M', 'S'}

const rcmsVersion uint16 = 2

// ReferenceEncoding selects how an RCMS's reference sequence S is written to
// disk. It is recorded in the RCMS header so ReadRCMS can self-describe
// without the caller repeating the choice it was written with.
type ReferenceEncoding byte

const (
	// RefEncodingRaw stores S as one ASCII byte per base, unchanged.
	RefEncodingRaw ReferenceEncoding = iota
	// RefEncodingPacked4Bit stores S two bases to a byte, using the same
	// nt16 nibble code bam/biosimd use for packed SEQ fields. It requires
	// every base in S to be one of the 16 characters in
	// biosimd.SeqASCIITable.
	RefEncodingPacked4Bit
)

// nibbleForASCII is the inverse of biosimd.SeqASCIITable: it maps each of
// the 16 nt16 ASCII characters to its nibble code, and every other byte to
// invalidNibble.
var nibbleForASCII [256]byte

const invalidNibble = 0xff

func init() {
	for i := range nibbleForASCII {
		nibbleForASCII[i] = invalidNibble
	}
	for nibble := byte(0); nibble < 16; nibble++ {
		nibbleForASCII[biosimd.SeqASCIITable.Get(nibble)] = nibble
	}
}

// packReference converts s to nt16 nibble codes and packs two codes per
// byte. It fails if s contains a byte outside biosimd.SeqASCIITable's
// alphabet, since that byte has no nibble code to round-trip through.
func packReference(s []byte) ([]byte, error) {
	nibbles := make([]byte, len(s))
	for i, c := range s {
		nibble := nibbleForASCII[c]
		if nibble == invalidNibble {
			return nil, errors.Errorf("persist: reference byte %q at offset %d is not representable in packed 4-bit encoding", c, i)
		}
		nibbles[i] = nibble
	}
	packed := make([]byte, (len(nibbles)+1)/2)
	biosimd.PackSeq(packed, nibbles)
	return packed, nil
}

// unpackReference is the inverse of packReference: it expands packed back
// into n ASCII bytes via biosimd.SeqASCIITable.
func unpackReference(packed []byte, n int) []byte {
	s := make([]byte, n)
	biosimd.UnpackAndReplaceSeq(s, packed, &biosimd.SeqASCIITable)
	return s
}

// WriteRCMS writes r to w in spec.md section 6's RCMS_IN layout, wrapped in
// the given compression envelope, encoding the reference sequence per enc,
// and trailered with a CRC-32 of everything written inside the envelope.
func WriteRCMS(w io.Writer, env Envelope, r *rcms.RCMS, enc ReferenceEncoding) error {
	ew, err := envelopeWriter(w, env)
	if err != nil {
		return errors.Wrap(err, "persist: open RCMS envelope")
	}
	cw := newCRCWriter(ew)
	if err := writeRCMSBody(cw, r, enc); err != nil {
		ew.Close()
		return err
	}
	if err := binary.Write(ew, binary.LittleEndian, cw.Sum32()); err != nil {
		ew.Close()
		return errors.Wrap(err, "persist: write RCMS checksum")
	}
	return ew.Close()
}

func writeRCMSBody(w io.Writer, r *rcms.RCMS, enc ReferenceEncoding) error {
	if _, err := w.Write(rcmsMagic[:]); err != nil {
		return errors.Wrap(err, "persist: write RCMS magic")
	}
	if err := binary.Write(w, binary.LittleEndian, rcmsVersion); err != nil {
		return errors.Wrap(err, "persist: write RCMS version")
	}
	if _, err := w.Write([]byte{byte(enc)}); err != nil {
		return errors.Wrap(err, "persist: write RCMS reference encoding")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(r.HaplotypeCount())); err != nil {
		return errors.Wrap(err, "persist: write RCMS haplotype count")
	}
	s := r.Reference()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(s))); err != nil {
		return errors.Wrap(err, "persist: write RCMS |S|")
	}
	switch enc {
	case RefEncodingRaw:
		if _, err := w.Write(s); err != nil {
			return errors.Wrap(err, "persist: write RCMS S")
		}
	case RefEncodingPacked4Bit:
		packed, err := packReference(s)
		if err != nil {
			return err
		}
		if _, err := w.Write(packed); err != nil {
			return errors.Wrap(err, "persist: write packed RCMS S")
		}
	default:
		return errors.Errorf("persist: write RCMS: unknown reference encoding %d", enc)
	}
	vs := r.Variants()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(vs))); err != nil {
		return errors.Wrap(err, "persist: write RCMS variant count")
	}
	for i, v := range vs {
		if err := writeVariant(w, v); err != nil {
			return errors.Wrapf(err, "persist: write RCMS variant %d", i)
		}
	}
	return nil
}

func writeVariant(w io.Writer, v variant.Variant) error {
	if err := binary.Write(w, binary.LittleEndian, v.Low); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, v.High); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(v.Kind)}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(v.AltSeq))); err != nil {
		return err
	}
	if _, err := w.Write(v.AltSeq); err != nil {
		return err
	}
	return v.Coverage.Pack(w)
}

// ReadRCMS reads an RCMS previously written by WriteRCMS, verifying its
// magic, version, and trailing checksum. A mismatch on any of the three
// returns an error wrapping ErrFormat.
func ReadRCMS(r io.Reader, env Envelope) (*rcms.RCMS, error) {
	er, err := envelopeReader(r, env)
	if err != nil {
		return nil, errors.Wrap(err, "persist: open RCMS envelope")
	}
	defer er.Close()

	cr := newCRCReader(er)
	out, err := readRCMSBody(cr)
	if err != nil {
		return nil, err
	}
	var wantSum uint32
	if err := binary.Read(er, binary.LittleEndian, &wantSum); err != nil {
		return nil, errors.Wrap(ErrFormat, "read RCMS checksum: "+err.Error())
	}
	if gotSum := cr.Sum32(); gotSum != wantSum {
		return nil, errors.Wrapf(ErrFormat, "RCMS checksum mismatch: got %08x want %08x", gotSum, wantSum)
	}
	return out, nil
}

func readRCMSBody(r io.Reader) (*rcms.RCMS, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, errors.Wrap(ErrFormat, "read RCMS magic: "+err.Error())
	}
	if magic != rcmsMagic {
		return nil, errors.Wrapf(ErrFormat, "bad RCMS magic %q", magic)
	}
	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(ErrFormat, "read RCMS version: "+err.Error())
	}
	if version != rcmsVersion {
		return nil, errors.Wrapf(ErrFormat, "unsupported RCMS version %d", version)
	}
	var encByte [1]byte
	if _, err := io.ReadFull(r, encByte[:]); err != nil {
		return nil, errors.Wrap(ErrFormat, "read RCMS reference encoding: "+err.Error())
	}
	enc := ReferenceEncoding(encByte[0])
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, errors.Wrap(ErrFormat, "read RCMS haplotype count: "+err.Error())
	}
	var slen uint64
	if err := binary.Read(r, binary.LittleEndian, &slen); err != nil {
		return nil, errors.Wrap(ErrFormat, "read RCMS |S|: "+err.Error())
	}
	var s []byte
	switch enc {
	case RefEncodingRaw:
		raw, err := ioutil.ReadAll(io.LimitReader(r, int64(slen)))
		if err != nil {
			return nil, errors.Wrap(ErrFormat, "read RCMS S: "+err.Error())
		}
		if uint64(len(raw)) != slen {
			return nil, errors.Wrapf(ErrFormat, "truncated RCMS S, got %d want %d bytes", len(raw), slen)
		}
		s = raw
	case RefEncodingPacked4Bit:
		packedLen := (slen + 1) / 2
		packed, err := ioutil.ReadAll(io.LimitReader(r, int64(packedLen)))
		if err != nil {
			return nil, errors.Wrap(ErrFormat, "read packed RCMS S: "+err.Error())
		}
		if uint64(len(packed)) != packedLen {
			return nil, errors.Wrapf(ErrFormat, "truncated packed RCMS S, got %d want %d bytes", len(packed), packedLen)
		}
		s = unpackReference(packed, int(slen))
	default:
		return nil, errors.Wrapf(ErrFormat, "unknown RCMS reference encoding %d", encByte[0])
	}
	out := rcms.New(s, int(n))

	var nvariants uint64
	if err := binary.Read(r, binary.LittleEndian, &nvariants); err != nil {
		return nil, errors.Wrap(ErrFormat, "read RCMS variant count: "+err.Error())
	}
	for i := uint64(0); i < nvariants; i++ {
		v, err := readVariant(r, int(n))
		if err != nil {
			return nil, errors.Wrapf(err, "persist: read RCMS variant %d", i)
		}
		if err := out.Insert(v); err != nil {
			return nil, errors.Wrapf(err, "persist: reinsert RCMS variant %d", i)
		}
	}
	return out, nil
}

func readVariant(r io.Reader, n int) (variant.Variant, error) {
	var v variant.Variant
	if err := binary.Read(r, binary.LittleEndian, &v.Low); err != nil {
		return v, errors.Wrap(ErrFormat, "read variant low: "+err.Error())
	}
	if err := binary.Read(r, binary.LittleEndian, &v.High); err != nil {
		return v, errors.Wrap(ErrFormat, "read variant high: "+err.Error())
	}
	var kind [1]byte
	if _, err := io.ReadFull(r, kind[:]); err != nil {
		return v, errors.Wrap(ErrFormat, "read variant kind: "+err.Error())
	}
	v.Kind = variant.AltKind(kind[0])
	var altLen uint32
	if err := binary.Read(r, binary.LittleEndian, &altLen); err != nil {
		return v, errors.Wrap(ErrFormat, "read variant alt_len: "+err.Error())
	}
	v.AltSeq = make([]byte, altLen)
	if _, err := io.ReadFull(r, v.AltSeq); err != nil {
		return v, errors.Wrap(ErrFormat, "read variant alt: "+err.Error())
	}
	cov, err := coverage.Unpack(r, n)
	if err != nil {
		return v, errors.Wrap(err, "read variant coverage")
	}
	v.Coverage = cov
	return v, nil
}

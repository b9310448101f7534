// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package persist

import (
	"hash"
	"hash/crc32"
	"io"
)

// crcWriter tees every write through a running CRC-32 (IEEE) checksum, the
// trailer spec.md's wire formats append after the payload.
type crcWriter struct {
	w   io.Writer
	crc hash.Hash32
}

func newCRCWriter(w io.Writer) *crcWriter {
	return &crcWriter{w: w, crc: crc32.NewIEEE()}
}

func (c *crcWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.crc.Write(p[:n])
	return n, err
}

func (c *crcWriter) Sum32() uint32 { return c.crc.Sum32() }

// crcReader mirrors crcWriter on the read side, so a format's ReadFrom can
// recompute the checksum over exactly the bytes it consumed.
type crcReader struct {
	r   io.Reader
	crc hash.Hash32
}

func newCRCReader(r io.Reader) *crcReader {
	return &crcReader{r: r, crc: crc32.NewIEEE()}
}

func (c *crcReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.crc.Write(p[:n])
	return n, err
}

func (c *crcReader) Sum32() uint32 { return c.crc.Sum32() }

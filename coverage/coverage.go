// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package coverage implements the fixed-domain haplotype bit-vector shared by
// every variant in one RCMS.  A Coverage never changes its domain size N
// after construction; combining two Coverages of unequal N is a programmer
// error and panics rather than returning an error, matching the "fail loudly"
// contract for domain mismatches.
package coverage

import (
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

const wordBits = 64

// Coverage is a word-packed bit set over [0, N) haplotype indices.
type Coverage struct {
	n     int
	words []uint64
}

// New returns a Coverage of domain size n with every bit clear.
func New(n int) Coverage {
	if n < 0 {
		log.Panicf("coverage.New: negative domain size %d", n)
	}
	return Coverage{n: n, words: make([]uint64, numWords(n))}
}

// Full returns a Coverage of domain size n with every bit set.
func Full(n int) Coverage {
	c := New(n)
	for i := range c.words {
		c.words[i] = ^uint64(0)
	}
	c.maskTail()
	return c
}

// FromBits returns a Coverage of domain size n with bits set at the given
// indices.
func FromBits(n int, bitsSet ...int) Coverage {
	c := New(n)
	for _, i := range bitsSet {
		c.Set(i)
	}
	return c
}

func numWords(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Size returns N, the haplotype domain size.
func (c Coverage) Size() int { return c.n }

func (c Coverage) checkIndex(i int) {
	if i < 0 || i >= c.n {
		log.Panicf("coverage: index %d out of domain [0,%d)", i, c.n)
	}
}

func (c *Coverage) checkDomain(other Coverage) {
	if c.n != other.n {
		log.Panicf("coverage: domain mismatch %d vs %d", c.n, other.n)
	}
}

// Set sets bit i.
func (c *Coverage) Set(i int) {
	c.checkIndex(i)
	c.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i.
func (c *Coverage) Clear(i int) {
	c.checkIndex(i)
	c.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Contains reports whether bit i is set.
func (c Coverage) Contains(i int) bool {
	c.checkIndex(i)
	return c.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

func (c Coverage) maskTail() {
	if c.n%wordBits == 0 || len(c.words) == 0 {
		return
	}
	last := len(c.words) - 1
	validBits := uint(c.n % wordBits)
	c.words[last] &= (uint64(1) << validBits) - 1
}

// And returns c & other.
func (c Coverage) And(other Coverage) Coverage {
	c.checkDomain(other)
	out := New(c.n)
	for i := range out.words {
		out.words[i] = c.words[i] & other.words[i]
	}
	return out
}

// Or returns c | other.
func (c Coverage) Or(other Coverage) Coverage {
	c.checkDomain(other)
	out := New(c.n)
	for i := range out.words {
		out.words[i] = c.words[i] | other.words[i]
	}
	return out
}

// AndNot returns c &^ other.
func (c Coverage) AndNot(other Coverage) Coverage {
	c.checkDomain(other)
	out := New(c.n)
	for i := range out.words {
		out.words[i] = c.words[i] &^ other.words[i]
	}
	return out
}

// Xor returns c ^ other.
func (c Coverage) Xor(other Coverage) Coverage {
	c.checkDomain(other)
	out := New(c.n)
	for i := range out.words {
		out.words[i] = c.words[i] ^ other.words[i]
	}
	return out
}

// Not returns the bitwise complement of c, restricted to [0, N).
func (c Coverage) Not() Coverage {
	out := New(c.n)
	for i := range out.words {
		out.words[i] = ^c.words[i]
	}
	out.maskTail()
	return out
}

// PopCount returns the number of set bits.
func (c Coverage) PopCount() int {
	count := 0
	for _, w := range c.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// Any reports whether at least one bit is set.
func (c Coverage) Any() bool {
	for _, w := range c.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// All reports whether every bit in [0,N) is set.
func (c Coverage) All() bool {
	return c.PopCount() == c.n
}

// None reports whether no bit is set.
func (c Coverage) None() bool { return !c.Any() }

// Bits returns the indices of all set bits in ascending order.
func (c Coverage) Bits() []int {
	var out []int
	for wi, w := range c.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			idx := wi*wordBits + tz
			if idx < c.n {
				out = append(out, idx)
			}
			w &= w - 1
		}
	}
	return out
}

// Clone returns an independent copy of c.
func (c Coverage) Clone() Coverage {
	words := make([]uint64, len(c.words))
	copy(words, c.words)
	return Coverage{n: c.n, words: words}
}

// Equal reports whether c and other have the same domain and bits.
func (c Coverage) Equal(other Coverage) bool {
	if c.n != other.n {
		return false
	}
	for i := range c.words {
		if c.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// WriteTo serializes c as a u32 domain size followed by ceil(N/8) bytes in
// little-endian bit order (the same layout used for a Variant's on-disk
// coverage column in the RCMS wire format).
func (c Coverage) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint32(c.n)); err != nil {
		return 0, errors.Wrap(err, "coverage: write domain size")
	}
	packed := c.packBytes()
	n, err := w.Write(packed)
	return int64(4 + n), errors.Wrap(err, "coverage: write bytes")
}

func (c Coverage) packBytes() []byte {
	nbytes := (c.n + 7) / 8
	out := make([]byte, nbytes)
	for _, i := range c.Bits() {
		out[i/8] |= 1 << uint(i%8)
	}
	return out
}

// Pack writes c's ceil(N/8) bytes in little-endian bit order with no length
// prefix, for formats (like the RCMS wire format's per-variant coverage
// column) where N is already known from surrounding context.
func (c Coverage) Pack(w io.Writer) error {
	_, err := w.Write(c.packBytes())
	return errors.Wrap(err, "coverage: pack bytes")
}

// Unpack reads ceil(n/8) bytes written by Pack into a Coverage of domain n.
func Unpack(r io.Reader, n int) (Coverage, error) {
	nbytes := (n + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Coverage{}, errors.Wrap(err, "coverage: unpack bytes")
	}
	c := New(n)
	for i := 0; i < n; i++ {
		if buf[i/8]&(1<<uint(i%8)) != 0 {
			c.Set(i)
		}
	}
	return c, nil
}

// ReadFrom deserializes a Coverage previously written by WriteTo.
func ReadFrom(r io.Reader) (Coverage, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return Coverage{}, errors.Wrap(err, "coverage: read domain size")
	}
	nbytes := (int(n) + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Coverage{}, errors.Wrap(err, "coverage: read bytes")
	}
	c := New(int(n))
	for i := 0; i < int(n); i++ {
		if buf[i/8]&(1<<uint(i%8)) != 0 {
			c.Set(i)
		}
	}
	return c, nil
}

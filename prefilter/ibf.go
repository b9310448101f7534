// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package prefilter implements the interleaved Bloom filter (IBF) that
// decides which (query, bin) pairs are worth handing to the breakpoint
// tree's traversal driver. Bins are the output of pst.Chunk; each bin owns
// one column of the filter. All columns live in one word-packed bit array,
// but they are not interleaved: each column is a contiguous run of words,
// so a k-mer lookup touches a separate region of the array for every bin.
package prefilter

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/grailbio/pgst/circular"
)

const hugePageSize = 2 << 20

// IBF is a Bloom filter with one column per bin: bins columns, each
// bitsPerBin wide, laid out one after another in a single bit array, so
// bin b's bits start at bit b*wordsPerBin*64. Bits of different bins are
// not interleaved within a word.
type IBF struct {
	bins         int
	bitsPerBin   uint64
	hashCount    int
	kmerSize     int
	data        []uint64 // data[bin] is a sequential run of bitsPerBin/64 words
	wordsPerBin int
	region      []byte // backing anonymous mapping; kept alive for Close
}

// New allocates an IBF for the given number of bins. bitsPerBinHint is
// rounded up to the next power of two via circular.NextExp2 so bit
// addressing is a shift instead of a modulo.
func New(bins, bitsPerBinHint, hashCount, kmerSize int) *IBF {
	bitsPerBin := uint64(circular.NextExp2(bitsPerBinHint - 1))
	wordsPerBin := int((bitsPerBin + 63) / 64)
	totalWords := bins * wordsPerBin

	f := &IBF{
		bins:        bins,
		bitsPerBin:  bitsPerBin,
		hashCount:   hashCount,
		kmerSize:    kmerSize,
		wordsPerBin: wordsPerBin,
	}
	f.region, f.data = mmapWords(totalWords)
	return f
}

// Close unmaps the filter's backing memory. The IBF must not be used
// afterward.
func (f *IBF) Close() error {
	if f.region == nil {
		return nil
	}
	err := unix.Munmap(f.region)
	f.region, f.data = nil, nil
	return err
}

// mmapWords anonymously maps n*8 bytes (rounded up to a hugepage boundary)
// and advises the kernel to back it with transparent hugepages, the same
// idiom used for the gene k-mer hash table: large, write-once, read-heavy
// tables benefit from fewer TLB misses.
func mmapWords(n int) ([]byte, []uint64) {
	if n == 0 {
		n = 1
	}
	size := n*8 + hugePageSize
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(err)
	}
	if err := unix.Madvise(region, unix.MADV_HUGEPAGE); err != nil {
		panic(err)
	}
	// Round up to a hugepage boundary, mirroring the gene k-mer table's
	// alignment trick, then reinterpret as []uint64.
	start := ((uintptr(unsafe.Pointer(&region[0]))-1)/hugePageSize + 1) * hugePageSize
	words := (*[1 << 40]uint64)(unsafe.Pointer(start))[:n:n]
	return region, words
}

// Bins returns the number of bin columns.
func (f *IBF) Bins() int { return f.bins }

// BitsPerBin returns the (power-of-two) width of each bin column.
func (f *IBF) BitsPerBin() uint64 { return f.bitsPerBin }

// HashCount returns the number of hash functions per k-mer.
func (f *IBF) HashCount() int { return f.hashCount }

// KmerSize returns the configured k-mer length.
func (f *IBF) KmerSize() int { return f.kmerSize }

// Words returns the filter's backing word array for direct marshalling by
// package persist. Callers other than persist should use Insert/Contains.
func (f *IBF) Words() []uint64 { return f.data }

// Insert sets hashCount bits in bin's column for kmer.
func (f *IBF) Insert(bin int, kmer []byte) {
	var hashes [maxHashFunctions]uint64
	kmerHashes(kmer, f.hashCount, hashes[:])
	base := bin * f.wordsPerBin * 64
	mask := f.bitsPerBin - 1
	for i := 0; i < f.hashCount; i++ {
		bitIdx := base + int(hashes[i]&mask)
		f.data[bitIdx/64] |= 1 << uint(bitIdx%64)
	}
}

// Contains reports whether every hashCount bit for kmer is set in bin's
// column; a false positive is possible, a false negative is not.
func (f *IBF) Contains(bin int, kmer []byte) bool {
	var hashes [maxHashFunctions]uint64
	kmerHashes(kmer, f.hashCount, hashes[:])
	base := bin * f.wordsPerBin * 64
	mask := f.bitsPerBin - 1
	for i := 0; i < f.hashCount; i++ {
		bitIdx := base + int(hashes[i]&mask)
		if f.data[bitIdx/64]&(1<<uint(bitIdx%64)) == 0 {
			return false
		}
	}
	return true
}

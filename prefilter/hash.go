// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package prefilter

import (
	farm "github.com/dgryski/go-farm"
	"github.com/blainsmith/seahash"
	"github.com/minio/highwayhash"
)

// maxHashFunctions bounds hashFunctionCount; three independent hash families
// are wired in (farm, highwayhash, seahash), and kmerHashes derives every
// slot from those three base values.
const maxHashFunctions = 8

var highwayKey [highwayhash.Size]byte

// kmerHashes fills dst[:n] with n hash values for kmer: slot i is
// h1 + i*h2 + i*i*h3, where h1, h2 and h3 are the farm, highwayhash and
// seahash values of kmer.
func kmerHashes(kmer []byte, n int, dst []uint64) {
	h1 := farm.Hash64(kmer)
	h2 := sumHighway(kmer)
	h3 := seahash.Sum64(kmer)
	base := [3]uint64{h1, h2, h3}
	for i := 0; i < n; i++ {
		// Enhanced Kirsch-Mitzenmacher double hashing: combine three
		// independent base hashes with linear and quadratic terms in i.
		dst[i] = base[0] + uint64(i)*base[1] + uint64(i*i)*base[2]
	}
}

func sumHighway(data []byte) uint64 {
	sum := highwayhash.Sum(data, highwayKey[:])
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(sum[i]) << (8 * uint(i))
	}
	return v
}

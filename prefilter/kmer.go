// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package prefilter

// EnumerateKmers calls emit once per contiguous k-length window of seq, in
// left-to-right order. It is a no-op if seq is shorter than k.
func EnumerateKmers(seq []byte, k int, emit func(offset int, kmer []byte)) {
	if k <= 0 || len(seq) < k {
		return
	}
	for i := 0; i+k <= len(seq); i++ {
		emit(i, seq[i:i+k])
	}
}

// Threshold computes the k-mer lemma threshold T = |q| + 1 - (e+1)*k: the
// minimum number of a query's k-mers that must land in a bin for that bin
// to remain a candidate at error budget e.
func Threshold(queryLen, e, k int) int {
	return queryLen + 1 - (e+1)*k
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package prefilter

// Query returns the candidate bins for pattern at error budget e: every
// bin whose count of matching k-mers reaches the k-mer lemma threshold
// T = |pattern| + 1 - (e+1)*k.
func (f *IBF) Query(pattern []byte, e int) []int {
	threshold := Threshold(len(pattern), e, f.kmerSize)
	if threshold <= 0 {
		candidates := make([]int, f.bins)
		for i := range candidates {
			candidates[i] = i
		}
		return candidates
	}

	counts := make([]int, f.bins)
	EnumerateKmers(pattern, f.kmerSize, func(_ int, kmer []byte) {
		for bin := 0; bin < f.bins; bin++ {
			if f.Contains(bin, kmer) {
				counts[bin]++
			}
		}
	})

	var candidates []int
	for bin, c := range counts {
		if c >= threshold {
			candidates = append(candidates, bin)
		}
	}
	return candidates
}

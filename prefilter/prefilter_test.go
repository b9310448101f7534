// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package prefilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/pgst/prefilter"
)

func TestThreshold(t *testing.T) {
	// E4: bins of size 4, kmer=3, pattern "GGGT" (|q|=4), e=0.
	// T = 4 + 1 - (0+1)*3 = 2.
	assert.Equal(t, 2, prefilter.Threshold(4, 0, 3))
}

func TestEnumerateKmers(t *testing.T) {
	var got [][]byte
	prefilter.EnumerateKmers([]byte("GGGT"), 3, func(offset int, kmer []byte) {
		got = append(got, append([]byte(nil), kmer...))
	})
	require.Len(t, got, 2)
	assert.Equal(t, "GGG", string(got[0]))
	assert.Equal(t, "GGT", string(got[1]))
}

func TestEnumerateKmersShorterThanK(t *testing.T) {
	var got [][]byte
	prefilter.EnumerateKmers([]byte("GG"), 3, func(offset int, kmer []byte) {
		got = append(got, kmer)
	})
	assert.Empty(t, got)
}

// TestE4PrefilterScenario grounds the spec's bin-filtering example: a
// reference "AAAACCCCGGGTGGGT" (16 bases) split into 4 bins of size 4
// ("AAAA","CCCC","GGGT","GGGT"). Only bins containing "GGGT" verbatim (bins
// 2 and 3) should pass threshold T=2 for pattern "GGGT" at e=0; "AAAA" and
// "CCCC" should not.
func TestE4PrefilterScenario(t *testing.T) {
	const kmerSize = 3
	bins := []string{"AAAA", "CCCC", "GGGT", "GGGT"}

	f := prefilter.New(len(bins), 1<<10, 3, kmerSize)
	for id, seq := range bins {
		prefilter.EnumerateKmers([]byte(seq), kmerSize, func(_ int, kmer []byte) {
			f.Insert(id, kmer)
		})
	}

	candidates := f.Query([]byte("GGGT"), 0)
	assert.Equal(t, []int{2, 3}, candidates)
}

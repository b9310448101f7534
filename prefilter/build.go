// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package prefilter

import (
	"github.com/grailbio/pgst/pst"
	"github.com/grailbio/pgst/traversal"
)

// Config holds the options recognized by index construction: bin_size,
// bin_overlap, kmer_size, hash_function_count.
type Config struct {
	BinSize           int
	BinOverlap        int
	KmerSize          int
	HashFunctionCount int
	IBFSizeBytes      int
}

// Build constructs an IBF over bins of tree, one column per bin, by
// enumerating every k-mer in every reachable node's (trimmed+pruned+
// left-extended+merged) sequence and inserting it into the column of
// every bin whose [begin-overlap, end+overlap) span contains that node's
// low reference position. bin_overlap lets a query straddling a bin
// boundary still accumulate enough k-mer hits in both neighboring bins.
func Build(base *pst.BaseTree, length int, tree pst.Tree, cfg Config) *IBF {
	binSize := cfg.BinSize
	if binSize <= 0 {
		binSize = length
	}
	nbins := (length + binSize - 1) / binSize
	if nbins == 0 {
		nbins = 1
	}
	bitsPerBin := bitsPerBinFromBudget(cfg.IBFSizeBytes, nbins)
	f := New(nbins, bitsPerBin, cfg.HashFunctionCount, cfg.KmerSize)

	overlap := cfg.BinOverlap
	driver := traversal.NewDriver(tree)
	driver.Walk(func(n pst.Node) bool {
		pos := int(base.Pos(n.Low))
		for id := 0; id < nbins; id++ {
			begin := id*binSize - overlap
			end := (id+1)*binSize + overlap
			if pos < begin || pos >= end {
				continue
			}
			EnumerateKmers(n.Sequence, cfg.KmerSize, func(_ int, kmer []byte) {
				f.Insert(id, kmer)
			})
		}
		return true
	})
	return f
}

// bitsPerBinFromBudget spreads a total byte budget evenly across bins,
// falling back to a conservative default when no budget is given.
func bitsPerBinFromBudget(budgetBytes, bins int) int {
	const defaultBitsPerBin = 1 << 16
	if budgetBytes <= 0 || bins == 0 {
		return defaultBitsPerBin
	}
	bits := (budgetBytes * 8) / bins
	if bits < 64 {
		bits = 64
	}
	return bits
}

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package search

import "github.com/grailbio/pgst/pst"

// Pipeline composes the tree transformation chain a bin's traversal runs
// against, for a matcher whose window is windowSize bytes wide:
//
//	labelled(root_path) -> coloured -> trim(w-1) -> prune_unsupported ->
//	  left_extend(w-1) -> merge -> volatile
//
// trim caps each root_path label back down to just the trailing context a
// window needs; left_extend then restores exactly that much context across
// a branch so an oblivious matcher never loses a match that straddles a
// node boundary; merge collapses the branch-free reference runs that
// remain; volatile marks the finished pipeline safe to hand to Chunk and
// to share read-only across the worker pool's goroutines.
func Pipeline(base *pst.BaseTree, windowSize int) pst.Tree {
	w := windowSize - 1
	if w < 0 {
		w = 0
	}
	labelled := pst.NewLabelled(base, pst.RootPath)
	coloured := pst.NewColoured(labelled)
	trimmed := pst.NewTrim(w, coloured)
	pruned := pst.NewPrune(trimmed)
	extended := pst.NewLeftExtend(w, pruned)
	merged := pst.NewMerge(extended)
	return pst.NewVolatile(merged)
}

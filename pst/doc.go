// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pst implements the polymorphic sequence tree: a lazy DAG-of-views
// over a rooted RCMS (the base breakpoint tree, base.go) and a set of
// composable transformations (labelled, coloured, trim, left_extend, prune,
// merge, chunk, seekable, volatile) that each wrap the same Tree contract.
// Transformations compose by plain function application rather than
// inheritance, the idiomatic-Go replacement for the original's
// CRTP/tag-invoke pipeline.
package pst

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package search

// Query is one search pattern, identified by an index into the caller's
// query list (carried through to Hit.NeedleID).
type Query struct {
	ID      uint32
	Pattern []byte
}

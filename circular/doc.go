// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides small power-of-two sizing helpers used when
// allocating fixed-capacity ring buffers and bit-table storage, such as the
// interleaved Bloom filter's per-bin bit arrays.
package circular

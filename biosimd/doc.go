// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides vectorization-friendly byte-array operations for
// packing reference sequence data into the 4-bit RCMS representation and for
// normalizing raw ASCII sequence before it is stored in an rcms.RCMS.
package biosimd

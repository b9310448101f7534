// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package variant holds the covered-variant record type and its ordered,
// interval-indexed store, the building blocks an RCMS is assembled from.
package variant

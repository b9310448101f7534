// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rcms

import "github.com/pkg/errors"

// Sentinel error kinds from spec.md §7's taxonomy that rcms construction can
// surface to the caller.
var (
	// ErrInvalidBreakpoint is returned when a variant's low > high or
	// high > |S|.
	ErrInvalidBreakpoint = errors.New("rcms: InvalidBreakpoint")
	// ErrCoverageDomainMismatch is returned when a variant's coverage size
	// doesn't match the store's haplotype count.
	ErrCoverageDomainMismatch = errors.New("rcms: CoverageDomainMismatch")
	// ErrOrderingViolation is returned when an inserted variant breaks the
	// no-overlap-on-shared-coverage invariant.
	ErrOrderingViolation = errors.New("rcms: OrderingViolation")
)

// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pgsterr maps the core's sentinel errors (spec.md section 7's
// taxonomy) to cmd/pgst-index and cmd/pgst-search's shared exit-code
// convention (spec.md section 6): 0 success, 2 usage error, 3 input-format
// error, 4 I/O error, 5 domain-invariant violation.
package pgsterr

import (
	"github.com/pkg/errors"

	"github.com/grailbio/pgst/persist"
	"github.com/grailbio/pgst/rcms"
)

const (
	ExitSuccess     = 0
	ExitUsage       = 2
	ExitFormat      = 3
	ExitIO          = 4
	ExitDomainError = 5
)

// ExitCode classifies err into one of cmd's exit codes. A nil err is
// ExitSuccess; an error wrapping persist.ErrFormat is ExitFormat; an error
// wrapping one of rcms's insertion-invariant sentinels is ExitDomainError;
// anything else is treated as ExitIO, since by the time an error reaches
// main it is almost always a failed read/write/open.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch errors.Cause(err) {
	case persist.ErrFormat:
		return ExitFormat
	case rcms.ErrInvalidBreakpoint, rcms.ErrCoverageDomainMismatch, rcms.ErrOrderingViolation:
		return ExitDomainError
	default:
		return ExitIO
	}
}

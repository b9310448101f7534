// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pgsterr_test

import (
	"io"
	"testing"

	perrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/grailbio/pgst/persist"
	"github.com/grailbio/pgst/pgsterr"
	"github.com/grailbio/pgst/rcms"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, pgsterr.ExitSuccess, pgsterr.ExitCode(nil))
	assert.Equal(t, pgsterr.ExitFormat, pgsterr.ExitCode(perrors.Wrap(persist.ErrFormat, "bad magic")))
	assert.Equal(t, pgsterr.ExitDomainError, pgsterr.ExitCode(perrors.Wrap(rcms.ErrOrderingViolation, "overlap")))
	assert.Equal(t, pgsterr.ExitIO, pgsterr.ExitCode(io.ErrUnexpectedEOF))
}

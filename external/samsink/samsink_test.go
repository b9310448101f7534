// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package samsink_test

import (
	"bytes"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/pgst/coverage"
	"github.com/grailbio/pgst/external/samsink"
	"github.com/grailbio/pgst/search"
)

func TestSinkEmitWritesBAMRecord(t *testing.T) {
	var buf bytes.Buffer
	s, err := samsink.New(&buf, "ref", 19, 1)
	require.NoError(t, err)

	s.Emit(search.Hit{
		NeedleID:          0,
		BinID:             0,
		HaplotypeCoverage: coverage.FromBits(4, 0, 2),
		ReferenceBegin:    3,
		ReferenceEnd:      8,
	})
	require.NoError(t, s.Close())

	r, err := bam.NewReader(bytes.NewReader(buf.Bytes()), 1)
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "needle0", rec.Name)
	assert.Equal(t, 3, rec.Pos)
}

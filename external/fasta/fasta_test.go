// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fasta_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/pgst/external"
	"github.com/grailbio/pgst/external/fasta"
)

func TestSourceImplementsReferenceSource(t *testing.T) {
	src, err := fasta.Open(strings.NewReader(">chr1\nACGTacgt\nNNAC\n>chr2\nTTTT\n"))
	require.NoError(t, err)
	var _ external.ReferenceSource = src

	assert.ElementsMatch(t, []string{"chr1", "chr2"}, src.SeqNames())

	seq, err := src.Sequence("chr1")
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGTNNAC", string(seq))

	_, err = src.Sequence("missing")
	assert.Error(t, err)
}

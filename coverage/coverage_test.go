// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package coverage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/pgst/coverage"
)

func TestSetClearContains(t *testing.T) {
	c := coverage.New(10)
	assert.False(t, c.Contains(3))
	c.Set(3)
	assert.True(t, c.Contains(3))
	c.Clear(3)
	assert.False(t, c.Contains(3))
}

func TestFull(t *testing.T) {
	c := coverage.Full(70)
	assert.True(t, c.All())
	assert.Equal(t, 70, c.PopCount())
}

func TestBinaryOps(t *testing.T) {
	a := coverage.FromBits(8, 0, 1, 2)
	b := coverage.FromBits(8, 1, 2, 3)

	assert.Equal(t, []int{1, 2}, a.And(b).Bits())
	assert.Equal(t, []int{0, 1, 2, 3}, a.Or(b).Bits())
	assert.Equal(t, []int{0}, a.AndNot(b).Bits())
	assert.Equal(t, []int{0, 3}, a.Xor(b).Bits())
}

func TestNotMasksTail(t *testing.T) {
	c := coverage.New(4)
	c.Set(0)
	n := c.Not()
	assert.Equal(t, []int{1, 2, 3}, n.Bits())
	assert.Equal(t, 4, n.Size())
}

func TestAnyAllNone(t *testing.T) {
	empty := coverage.New(5)
	assert.True(t, empty.None())
	assert.False(t, empty.Any())

	full := coverage.Full(5)
	assert.True(t, full.All())
	assert.True(t, full.Any())
}

func TestDomainMismatchPanics(t *testing.T) {
	a := coverage.New(4)
	b := coverage.New(8)
	assert.Panics(t, func() { a.And(b) })
}

func TestIndexOutOfDomainPanics(t *testing.T) {
	c := coverage.New(4)
	assert.Panics(t, func() { c.Set(4) })
	assert.Panics(t, func() { c.Contains(-1) })
}

func TestRoundTrip(t *testing.T) {
	c := coverage.FromBits(19, 0, 5, 18)
	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	assert.NoError(t, err)

	got, err := coverage.ReadFrom(&buf)
	assert.NoError(t, err)
	assert.True(t, c.Equal(got))
}

func TestCloneIsIndependent(t *testing.T) {
	a := coverage.FromBits(8, 1)
	b := a.Clone()
	b.Set(2)
	assert.False(t, a.Contains(2))
	assert.True(t, b.Contains(2))
}

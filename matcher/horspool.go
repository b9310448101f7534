// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package matcher

// Horspool is the Boyer-Moore-Horspool exact matcher: window_size =
// |needle|, no capturable state.
type Horspool struct {
	needle []byte
	shift  [256]int
}

// NewHorspool builds a Horspool matcher for needle.
func NewHorspool(needle []byte) (*Horspool, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}
	h := &Horspool{needle: needle}
	m := len(needle)
	for i := range h.shift {
		h.shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		h.shift[needle[i]] = m - 1 - i
	}
	return h, nil
}

// WindowSize returns |needle|.
func (h *Horspool) WindowSize() int { return len(h.needle) }

// Call reports every end position where needle occurs exactly in haystack.
func (h *Horspool) Call(haystack []byte, emit func(Hit)) {
	m := len(h.needle)
	n := len(haystack)
	if m > n {
		return
	}
	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && haystack[i+j] == h.needle[j] {
			j--
		}
		if j < 0 {
			emit(Hit{EndPos: i + m})
			i++
			continue
		}
		i += h.shift[haystack[i+m-1]]
	}
}

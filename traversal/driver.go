// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package traversal implements the depth-first, stack-based iterator that
// visits every reachable labelled node of a pst.Tree, notifying subscribers
// on push/pop so stateful matchers can capture/restore around alt branches.
package traversal

import "github.com/grailbio/pgst/pst"

// frame is one stack entry: the node currently occupying it, and whether
// its (possibly absent) alt child has already been tried this visit.
type frame struct {
	node     pst.Node
	altTried bool
}

// Driver is a DFS iterator over a pst.Tree per spec.md §4.7's stepping
// rule: try the alt child first (pushing a new frame); otherwise tail-call
// advance to the ref child in place; otherwise pop.
type Driver struct {
	tree pst.Tree
	subs []Subscriber
}

// NewDriver returns a Driver over tree, notifying subs on push/pop.
func NewDriver(tree pst.Tree, subs ...Subscriber) *Driver {
	return &Driver{tree: tree, subs: subs}
}

// Walk visits every reachable node in DFS order, calling visit for each.
// Walk stops early if visit returns false.
func (d *Driver) Walk(visit func(pst.Node) bool) {
	root := d.tree.Root()
	if !visit(root) {
		return
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.altTried {
			top.altTried = true
			if alt, ok := d.tree.NextAlt(top.node); ok {
				d.notifyPush(alt)
				stack = append(stack, frame{node: alt})
				if !visit(alt) {
					return
				}
				continue
			}
		}
		if ref, ok := d.tree.NextRef(top.node); ok {
			top.node = ref
			top.altTried = false
			if !visit(ref) {
				return
			}
			continue
		}
		// The root frame was never announced with a push, so only frames
		// above it report a pop.
		if len(stack) > 1 {
			d.notifyPop(top.node)
		}
		stack = stack[:len(stack)-1]
	}
}

func (d *Driver) notifyPush(n pst.Node) {
	for _, s := range d.subs {
		s.OnPush(n)
	}
}

func (d *Driver) notifyPop(n pst.Node) {
	for _, s := range d.subs {
		s.OnPop(n)
	}
}

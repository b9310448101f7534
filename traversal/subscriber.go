// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package traversal

import "github.com/grailbio/pgst/pst"

// Subscriber receives OnPush/OnPop notifications exactly once per
// transition, in the order subscribers were attached. Stateful matchers use
// this to capture state before descending into an alt branch and restore it
// when the driver returns from that branch.
type Subscriber interface {
	OnPush(n pst.Node)
	OnPop(n pst.Node)
}

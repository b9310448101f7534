// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package external

import "github.com/grailbio/pgst/search"

// Sink is search.Sink, re-exported so cmd/pgst-search and the concrete
// implementations under external/ (e.g. external/samsink) have one name to
// import for the out-of-scope SAM/BAM hit-rendering boundary spec.md
// section 6 describes, without needing to import package search just for
// this one type.
type Sink = search.Sink

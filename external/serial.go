// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package external

import "io"

// Serializer stands in for the out-of-scope cereal-style archive
// collaborator spec.md section 9 mentions: something that can Save a value
// to a Writer and Load it back from a Reader. persist.RCMSSerializer
// implements it by delegating to persist.WriteRCMS/ReadRCMS; persist's own
// envelope and format code does not go through this interface.
type Serializer interface {
	Save(w io.Writer, v interface{}) error
	Load(r io.Reader, v interface{}) error
}

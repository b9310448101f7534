// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package persist

import "github.com/pkg/errors"

// ErrFormat is returned when a persisted file fails its magic, version, or
// checksum check. Per spec.md section 7's taxonomy, the caller should abort
// the load rather than attempt partial recovery.
var ErrFormat = errors.New("persist: FormatError")

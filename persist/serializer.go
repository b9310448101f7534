// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package persist

import (
	"io"

	"github.com/pkg/errors"

	"github.com/grailbio/pgst/external"
	"github.com/grailbio/pgst/rcms"
)

// RCMSSerializer adapts WriteRCMS/ReadRCMS to external.Serializer, so a
// caller that depends only on that interface can persist an RCMS without
// importing package rcms or persist's concrete functions directly.
type RCMSSerializer struct {
	Envelope Envelope
	// RefEncoding chooses how Save packs the reference sequence. The zero
	// value, RefEncodingRaw, writes one ASCII byte per base. Load never
	// needs this field: the RCMS header records the encoding it was
	// written with.
	RefEncoding ReferenceEncoding
}

var _ external.Serializer = RCMSSerializer{}

// Save writes v, which must be a *rcms.RCMS, to w.
func (s RCMSSerializer) Save(w io.Writer, v interface{}) error {
	r, ok := v.(*rcms.RCMS)
	if !ok {
		return errors.Errorf("persist: RCMSSerializer.Save: expected *rcms.RCMS, got %T", v)
	}
	return WriteRCMS(w, s.Envelope, r, s.RefEncoding)
}

// Load reads r into v, which must be a **rcms.RCMS.
func (s RCMSSerializer) Load(r io.Reader, v interface{}) error {
	out, ok := v.(**rcms.RCMS)
	if !ok {
		return errors.Errorf("persist: RCMSSerializer.Load: expected **rcms.RCMS, got %T", v)
	}
	loaded, err := ReadRCMS(r, s.Envelope)
	if err != nil {
		return err
	}
	*out = loaded
	return nil
}

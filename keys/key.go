// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys - fixed layout composite keys for record fragments
//
// A key always carries all four fields. Two byte layouts exist, they
// differ only in which of owner or issuer leads:
//
//   OwnerLayout:   owner(32) ⧺ issuer(16) ⧺ record(16) ⧺ field(32)
//   IssuerLayout:  issuer(16) ⧺ owner(32) ⧺ record(16) ⧺ field(32)
//
// so the record identifier is at the same offset in both.
package keys

import (
	"bytes"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
)

// Length - encoded size of every composite key
const Length = identifier.OwnerLength + identifier.IssuerLength + identifier.RecordLength + identifier.FieldLength

// Layout - selects the field order of the encoding
type Layout byte

// the layouts
const (
	OwnerLayout Layout = iota
	IssuerLayout
)

// offsets shared by both layouts
const (
	recordStart  = identifier.OwnerLength + identifier.IssuerLength
	recordFinish = recordStart + identifier.RecordLength
	fieldStart   = recordFinish
	fieldFinish  = fieldStart + identifier.FieldLength
)

// Key - a complete composite key
//
// only obtainable from a builder or from Parse
type Key struct {
	layout Layout
	owner  identifier.Owner
	issuer identifier.Issuer
	record identifier.Record
	field  identifier.Field
}

// Layout - the byte order of this key
func (k Key) Layout() Layout { return k.layout }

// Owner - the owner field
func (k Key) Owner() identifier.Owner { return k.owner }

// Issuer - the issuer field
func (k Key) Issuer() identifier.Issuer { return k.issuer }

// Record - the record field
func (k Key) Record() identifier.Record { return k.record }

// Field - the field name
func (k Key) Field() identifier.Field { return k.field }

// Bytes - encode the key in its layout
func (k Key) Bytes() []byte {
	buffer := make([]byte, 0, Length)
	switch k.layout {
	case OwnerLayout:
		buffer = append(buffer, k.owner[:]...)
		buffer = append(buffer, k.issuer[:]...)
	case IssuerLayout:
		buffer = append(buffer, k.issuer[:]...)
		buffer = append(buffer, k.owner[:]...)
	default:
		fault.Panicf("keys: unknown layout: %d", k.layout)
	}
	buffer = append(buffer, k.record[:]...)
	return append(buffer, k.field[:]...)
}

// Compare - byte order of two keys
func (k Key) Compare(other Key) int {
	return bytes.Compare(k.Bytes(), other.Bytes())
}

// Parse - decode a stored key
func Parse(layout Layout, buffer []byte) (Key, error) {
	if Length != len(buffer) {
		return Key{}, fault.ErrInvalidIdentifier
	}
	k := Key{layout: layout}
	switch layout {
	case OwnerLayout:
		copy(k.owner[:], buffer[:identifier.OwnerLength])
		copy(k.issuer[:], buffer[identifier.OwnerLength:recordStart])
	case IssuerLayout:
		copy(k.issuer[:], buffer[:identifier.IssuerLength])
		copy(k.owner[:], buffer[identifier.IssuerLength:recordStart])
	default:
		return Key{}, fault.ErrInvalidIdentifier
	}
	copy(k.record[:], buffer[recordStart:recordFinish])
	copy(k.field[:], buffer[fieldStart:fieldFinish])
	return k, nil
}

// Threshold - the leading field that is held fixed in a prefix scan
func (l Layout) Threshold(key []byte) []byte {
	n := identifier.OwnerLength
	if IssuerLayout == l {
		n = identifier.IssuerLength
	}
	if len(key) < n {
		return nil
	}
	return key[:n]
}

// Suffix - the record identifier that distinguishes logical items
func (l Layout) Suffix(key []byte) []byte {
	if len(key) < recordFinish {
		return nil
	}
	return key[recordStart:recordFinish]
}

// SameRecord - true if both encoded keys share owner, issuer and record
func SameRecord(a []byte, b []byte) bool {
	if len(a) < recordFinish || len(b) < recordFinish {
		return false
	}
	return bytes.Equal(a[:recordFinish], b[:recordFinish])
}

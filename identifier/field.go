// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"bytes"

	"github.com/baliola/medblock/fault"
)

// Field - a record field name stored NUL padded
type Field [FieldLength]byte

// FieldFromString - validate and convert a field name
//
// names are 1..FieldLength characters of: A-Z a-z 0-9 _ . -
func FieldFromString(name string) (Field, error) {
	f := Field{}
	if 0 == len(name) || len(name) > FieldLength {
		return f, fault.ErrInvalidFieldName
	}
	for i := 0; i < len(name); i += 1 {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '.' || c == '-':
		default:
			return f, fault.ErrInvalidFieldName
		}
	}
	copy(f[:], name)
	return f, nil
}

// MustField - for constant names only
func MustField(name string) Field {
	f, err := FieldFromString(name)
	if nil != err {
		panic("invalid constant field name: " + name)
	}
	return f
}

// FieldFromBytes - convert a stored byte slice to a field
func FieldFromBytes(buffer []byte) (Field, error) {
	f := Field{}
	if FieldLength != len(buffer) {
		return f, fault.ErrInvalidIdentifier
	}
	copy(f[:], buffer)
	return f, nil
}

// Bytes - byte slice copy of the field
func (f Field) Bytes() []byte { return append([]byte(nil), f[:]...) }

// IsZero - true for the unset field
func (f Field) IsZero() bool { return f == Field{} }

// String - the field name without padding
func (f Field) String() string {
	n := bytes.IndexByte(f[:], 0)
	if n < 0 {
		n = FieldLength
	}
	return string(f[:n])
}

// MarshalText - convert field to its name
func (f Field) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText - convert a name to a field
func (f *Field) UnmarshalText(s []byte) error {
	field, err := FieldFromString(string(s))
	if nil != err {
		return err
	}
	*f = field
	return nil
}

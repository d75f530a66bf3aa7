// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consent

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/baliola/medblock/fault"
)

// code length limits
const (
	MinimumDigits = 4
	MaximumDigits = 12
	DefaultDigits = 6
)

// Code - a fixed length decimal consent code
type Code string

// CodeFromString - validate a code received from a caller
func CodeFromString(s string) (Code, error) {
	if len(s) < MinimumDigits || len(s) > MaximumDigits {
		return "", fault.ErrInvalidCode
	}
	for i := 0; i < len(s); i += 1 {
		if s[i] < '0' || s[i] > '9' {
			return "", fault.ErrInvalidCode
		}
	}
	return Code(s), nil
}

// Bytes - stored form of a code
func (c Code) Bytes() []byte { return []byte(c) }

// String - printable form
func (c Code) String() string { return string(c) }

func codeFromBytes(buffer []byte) (Code, error) {
	return CodeFromString(string(buffer))
}

// RandomSource - supplies the values codes are derived from
type RandomSource interface {
	Uint64() uint64
}

type cryptoSource struct{}

// Uint64 - panics if the system random source fails
func (cryptoSource) Uint64() uint64 {
	buffer := make([]byte, 8)
	_, err := rand.Read(buffer)
	fault.PanicIfError("consent: random source", err)
	return binary.BigEndian.Uint64(buffer)
}

// the last digits of a random value, zero padded
func makeCode(v uint64, digits int) Code {
	modulus := uint64(1)
	for i := 0; i < digits; i += 1 {
		modulus *= 10
	}
	return Code(fmt.Sprintf("%0*d", digits, v%modulus))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/baliola/medblock/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidFragment  = fault.InvalidError("fragment must be: name=value")
	ErrMissingDatabase  = fault.InvalidError("database directory is required")
	ErrMissingParameter = fault.InvalidError("required parameter is missing")
	ErrNoOwnerOrIssuer  = fault.InvalidError("one of owner or issuer is required")
)

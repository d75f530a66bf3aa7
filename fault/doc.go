// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Classes:
//   NotFoundError   - the thing asked for does not exist
//   ExistsError     - the thing to be created already exists
//   PermissionError - the caller is not allowed to do this
//   InvalidError    - malformed input
//   ProcessError    - storage or encoding failure
//
// Broken invariants are not errors, they abort through Panicf.
package fault

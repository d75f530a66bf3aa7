// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ⧺          = concatenation of byte data
// 3. owner      = 32 byte SHA3-256(NIK)
// 4. issuer     = 16 byte provider UUID
// 5. record     = 16 byte record UUID
// 6. field      = 32 byte NUL padded field name
// 7. actor      = 29 byte principal
// 8. session    = 16 byte UUID
// 9. group      = big endian uint64 (8 bytes)
// 10. code      = ASCII decimal digits
//
// Records:
//
//   R ⧺ owner ⧺ issuer ⧺ record ⧺ field   - record fragments, one per field
//                                           data: value
//                                           the reserved field "__record__" marks existence
//   I ⧺ issuer ⧺ owner ⧺ record ⧺ field   - issuer index, existence markers only
//                                           data: empty
//
// Consent:
//
//   C ⧺ code                              - consent
//                                           data: owner ⧺ claimed ⧺ [session ⧺ actor]
//   S ⧺ session                           - session → code
//                                           data: code
//   A ⧺ actor ⧺ session                   - sessions held by an actor
//                                           data: empty
//   O ⧺ owner ⧺ code                      - outstanding codes of an owner
//                                           data: empty
//
// Groups:
//
//   G ⧺ group                             - group
//                                           data: packed group
//   M ⧺ owner ⧺ group                     - groups of a member
//                                           data: empty
//   X ⧺ granter ⧺ grantee                 - access grant
//                                           data: group
//   N ⧺ name                              - next value of a named counter
//                                           data: count
//
// Patients:
//
//   P ⧺ actor                             - actor → owner binding
//                                           data: owner
//   H ⧺ owner                             - owner → actor binding
//                                           data: actor
//
// Testing:
//
//   Z ⧺ key                               - testing data
package storage

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - fixed width opaque identifiers
//
// All identifiers compare byte-lexicographically and the all-zero
// value of each type sorts before any real identifier, so a zero
// trailing field is a valid "start of range" marker in composite keys.
//
//   Owner   - 32 bytes, SHA3-256 of the owner's NIK
//   Actor   - 29 bytes, authenticated principal (base58 text form)
//   Issuer  - 16 bytes, UUID of the issuing provider
//   Record  - 16 bytes, UUID of a record
//   Field   - 32 bytes, NUL padded ASCII field name
//   Session - 16 bytes, UUID of a claimed consent session
//   Group   - 8 bytes, big endian sequence number
package identifier

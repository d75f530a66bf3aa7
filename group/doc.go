// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package group - groups of owners and the access grants between them
//
// A group always has its leader as a member. When the last member
// leaves the group is deleted.
//
// Grants are stored apart from groups: granter ⧺ grantee → group.
// A grant lets the grantee read the records of the granter, never
// the reverse. Membership of both parties is checked by the caller
// when a grant is made, and grants are left in place when a member
// leaves a group.
//
// Stored data:
//
//   G ⧺ group             - varint name length ⧺ name ⧺ leader ⧺ varint count ⧺ (owner ⧺ relation)…
//   N ⧺ "group"           - last group number issued
//   M ⧺ owner ⧺ group     - groups of an owner
//   X ⧺ granter ⧺ grantee - group
package group

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consent - one time codes and the sessions they open
//
// An owner generates a code and passes it to another party out of
// band. The first actor to claim the code receives a session bound to
// that owner. The session lasts until the actor finishes it or the
// owner revokes the code.
//
//   Unclaimed --claim--> Claimed --finish--> (deleted)
//       |                   |
//       +------revoke-------+------revoke--> (deleted)
//
// Stored data:
//
//   C ⧺ code            - owner ⧺ state [⧺ session ⧺ actor]
//   S ⧺ session         - code
//   A ⧺ actor ⧺ session - actor sessions
//   O ⧺ owner ⧺ code    - outstanding codes of an owner
package consent

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - record fragments stored under composite keys
//
// A record is a set of fragments, one per field, all sharing
// owner ⧺ issuer ⧺ record. Every existing record also has a fragment
// under the reserved Marker field; a record without its marker does
// not exist whatever other fragments are present. The marker is never
// returned to callers.
//
// Marker fragments are mirrored into the issuer index in issuer
// layout so that records can be listed per issuer.
package registry

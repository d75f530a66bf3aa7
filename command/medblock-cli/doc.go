// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// medblock-cli - offline administration of a medblock database
//
// the daemon must be stopped first since LevelDB allows a single
// process to hold the database open
//
// all results are printed as JSON on stdout
package main

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/group"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func setup(t *testing.T, maximumMembers int) (*storage.Database, *group.Engine) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, group.New(db, maximumMembers)
}

func mustOwner(t *testing.T, nik string) identifier.Owner {
	o, err := identifier.OwnerFromNIK(nik)
	if nil != err {
		t.Fatalf("owner from: %q  error: %s", nik, err)
	}
	return o
}

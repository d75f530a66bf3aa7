// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package patient_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/patient"
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

func setup(t *testing.T) (*storage.Database, *patient.Registry) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, patient.New(db)
}

func makeActor(b byte) identifier.Actor {
	a := identifier.Actor{}
	a[0] = b
	return a
}

func TestBind(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	actor := makeActor(1)
	owner, err := r.Bind(actor, "3201010101010001")
	assert.Nil(t, err, "bind")

	expected, _ := identifier.OwnerFromNIK("3201010101010001")
	assert.Equal(t, expected, owner, "owner from NIK")

	o, err := r.OwnerOf(actor)
	assert.Nil(t, err, "owner of")
	assert.Equal(t, owner, o, "owner of value")

	a, err := r.ActorOf(owner)
	assert.Nil(t, err, "actor of")
	assert.Equal(t, actor, a, "actor of value")
}

func TestBindConflicts(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	_, err := r.Bind(makeActor(1), "100")
	assert.Nil(t, err, "bind")

	_, err = r.Bind(makeActor(1), "200")
	assert.Equal(t, fault.ErrOwnerAlreadyBound, err, "actor bound twice")

	_, err = r.Bind(makeActor(2), "100")
	assert.Equal(t, fault.ErrNIKAlreadyBound, err, "NIK bound twice")

	_, err = r.Bind(makeActor(3), "12x")
	assert.Equal(t, fault.ErrInvalidNIK, err, "bad NIK")
}

func TestUnbind(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	actor := makeActor(1)
	owner, _ := r.Bind(actor, "100")

	assert.Nil(t, r.Unbind(actor), "unbind")
	assert.Equal(t, fault.ErrOwnerNotFound, r.Unbind(actor), "unbind twice")

	_, err := r.OwnerOf(actor)
	assert.Equal(t, fault.ErrOwnerNotFound, err, "owner of")
	_, err = r.ActorOf(owner)
	assert.Equal(t, fault.ErrOwnerNotFound, err, "actor of")

	_, err = r.Bind(makeActor(2), "100")
	assert.Nil(t, err, "NIK free again")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/baliola/medblock/fault"
)

// Pools - the set of storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Fragments     *PoolHandle `prefix:"R"`
	IssuerIndex   *PoolHandle `prefix:"I"`
	Consents      *PoolHandle `prefix:"C"`
	Sessions      *PoolHandle `prefix:"S"`
	ActorSessions *PoolHandle `prefix:"A"`
	OwnerConsents *PoolHandle `prefix:"O"`
	Groups        *PoolHandle `prefix:"G"`
	MemberGroups  *PoolHandle `prefix:"M"`
	Grants        *PoolHandle `prefix:"X"`
	Counters      *PoolHandle `prefix:"N"`
	ActorOwner    *PoolHandle `prefix:"P"`
	OwnerActor    *PoolHandle `prefix:"H"`
	TestData      *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// Database - an open database and its pools
type Database struct {
	sync.RWMutex
	log  *logger.L
	db   *leveldb.DB
	Pool Pools

	// single writer
	trxLock  sync.Mutex
	trxInUse bool
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open up the database connection
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, name, readOnly)
}

// OpenMemory - a database that is discarded on Close
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", ReadWrite)
}

func setup(db *leveldb.DB, name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database: %q version: %d > current version: %d", name, version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q is empty and read only", name)
			return nil, fault.ErrDatabaseVersion
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	d := &Database{
		log: log,
		db:  db,
	}
	err = d.initialisePools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened database: %q  version: %d", name, currentDBVersion)

	ok = true // prevent db close
	return d, nil
}

// scan each field of the pool table and attach a handle
func (d *Database) initialisePools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	seen := make(map[byte]string)

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s duplicates prefix: %q of pool: %s", fieldInfo.Name, prefixTag, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
	}
}

// return version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

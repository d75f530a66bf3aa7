// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/keys"
	"github.com/baliola/medblock/storage"
)

// Marker - reserved field holding the existence marker of a record
var Marker = identifier.MustField("__record__")

// Fragment - one field of a record
type Fragment struct {
	Field identifier.Field `json:"field"`
	Value string           `json:"value"`
}

// Header - identifies one record
type Header struct {
	Owner  identifier.Owner  `json:"owner"`
	Issuer identifier.Issuer `json:"issuer"`
	Record identifier.Record `json:"record"`
}

// Record - a header and its fragments in field order
type Record struct {
	Header
	Fragments []Fragment `json:"fragments"`
}

// Registry - record store
type Registry struct {
	log         *logger.L
	database    *storage.Database
	fragments   *storage.PoolHandle
	issuerIndex *storage.PoolHandle
}

// New - create a registry on an open database
func New(database *storage.Database) *Registry {
	return &Registry{
		log:         logger.New("registry"),
		database:    database,
		fragments:   database.Pool.Fragments,
		issuerIndex: database.Pool.IssuerIndex,
	}
}

func markerKey(h Header) []byte {
	return keys.Fragment().Owner(h.Owner).Issuer(h.Issuer).Record(h.Record).Field(Marker).Build().Bytes()
}

func issuerMarkerKey(h Header) []byte {
	return keys.IssuerEntry().Issuer(h.Issuer).Owner(h.Owner).Record(h.Record).Field(Marker).Build().Bytes()
}

func fragmentKey(h Header, f identifier.Field) []byte {
	return keys.Fragment().Owner(h.Owner).Issuer(h.Issuer).Record(h.Record).Field(f).Build().Bytes()
}

// write fragments, dropping any that use the marker field
func (r *Registry) putFragments(trx storage.Transaction, h Header, fragments []Fragment) {
	for _, f := range fragments {
		if Marker == f.Field {
			r.log.Warnf("record: %s  dropped fragment using reserved field", h.Record)
			continue
		}
		trx.Put(r.fragments, fragmentKey(h, f.Field), []byte(f.Value))
	}
}

// Add - create a new record with its fragments
func (r *Registry) Add(owner identifier.Owner, issuer identifier.Issuer, record identifier.Record, fragments []Fragment) error {
	h := Header{Owner: owner, Issuer: issuer, Record: record}

	trx, err := r.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if trx.Has(r.fragments, markerKey(h)) {
		return fault.ErrRecordAlreadyExists
	}

	trx.Put(r.fragments, markerKey(h), []byte{})
	trx.Put(r.issuerIndex, issuerMarkerKey(h), []byte{})
	r.putFragments(trx, h, fragments)

	err = trx.Commit()
	if nil != err {
		return err
	}
	r.log.Debugf("add record: %s  owner: %s  issuer: %s  fragments: %d", record, owner, issuer, len(fragments))
	return nil
}

// Exists - check the marker of a record
func (r *Registry) Exists(owner identifier.Owner, issuer identifier.Issuer, record identifier.Record) bool {
	return r.fragments.Has(markerKey(Header{Owner: owner, Issuer: issuer, Record: record}))
}

// UpdateBatch - insert or overwrite fragments of an existing record
func (r *Registry) UpdateBatch(owner identifier.Owner, issuer identifier.Issuer, record identifier.Record, fragments []Fragment) (Header, error) {
	h := Header{Owner: owner, Issuer: issuer, Record: record}

	trx, err := r.database.Begin()
	if nil != err {
		return Header{}, err
	}
	defer trx.Abort()

	if !trx.Has(r.fragments, markerKey(h)) {
		return Header{}, fault.ErrRecordNotExist
	}

	r.putFragments(trx, h, fragments)

	err = trx.Commit()
	if nil != err {
		return Header{}, err
	}
	r.log.Debugf("update record: %s  fragments: %d", record, len(fragments))
	return h, nil
}

// every stored key of one record in field order, marker included
func (r *Registry) scanRecord(h Header, f func(key []byte, value []byte)) error {
	start := keys.RecordPrefix().Owner(h.Owner).Issuer(h.Issuer).Record(h.Record).Build().Bytes()
	return r.fragments.NewFetchCursor().Seek(start).Walk(func(key []byte, value []byte) bool {
		if !keys.SameRecord(key, start) {
			return false
		}
		f(key, value)
		return true
	})
}

// Remove - delete every fragment of a record including its marker
func (r *Registry) Remove(owner identifier.Owner, issuer identifier.Issuer, record identifier.Record) error {
	h := Header{Owner: owner, Issuer: issuer, Record: record}

	matched := make([][]byte, 0, 8)
	err := r.scanRecord(h, func(key []byte, _ []byte) {
		matched = append(matched, key)
	})
	if nil != err {
		return err
	}
	if 0 == len(matched) {
		return fault.ErrRecordNotExist
	}

	trx, err := r.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	for _, key := range matched {
		trx.Delete(r.fragments, key)
	}
	trx.Delete(r.issuerIndex, issuerMarkerKey(h))

	err = trx.Commit()
	if nil != err {
		return err
	}
	r.log.Debugf("remove record: %s  keys: %d", record, len(matched))
	return nil
}

// Read - all fragments of a record
func (r *Registry) Read(owner identifier.Owner, issuer identifier.Issuer, record identifier.Record) (*Record, error) {
	h := Header{Owner: owner, Issuer: issuer, Record: record}

	marked := false
	fragments := make([]Fragment, 0, 8)
	var decodeErr error
	err := r.scanRecord(h, func(key []byte, value []byte) {
		k, err := keys.Parse(keys.OwnerLayout, key)
		if nil != err {
			decodeErr = err
			return
		}
		if Marker == k.Field() {
			marked = true
			return
		}
		fragments = append(fragments, Fragment{
			Field: k.Field(),
			Value: string(value),
		})
	})
	if nil != err {
		return nil, err
	}
	if nil != decodeErr {
		return nil, decodeErr
	}

	if !marked || 0 == len(fragments) {
		return nil, fault.ErrRecordNotExist
	}

	return &Record{
		Header:    h,
		Fragments: fragments,
	}, nil
}

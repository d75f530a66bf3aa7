// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package patient - binds authenticated actors to owner identifiers
//
// The owner identifier of a patient is derived from their NIK. Each
// actor binds to at most one owner and each owner to at most one
// actor.
//
//   P ⧺ actor - owner
//   H ⧺ owner - actor
package patient

import (
	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/storage"
)

// Registry - actor and owner bindings
type Registry struct {
	log        *logger.L
	database   *storage.Database
	actorOwner *storage.PoolHandle
	ownerActor *storage.PoolHandle
}

// New - create the registry
func New(database *storage.Database) *Registry {
	return &Registry{
		log:        logger.New("patient"),
		database:   database,
		actorOwner: database.Pool.ActorOwner,
		ownerActor: database.Pool.OwnerActor,
	}
}

// Bind - bind an actor to the owner derived from a NIK
func (r *Registry) Bind(actor identifier.Actor, nik string) (identifier.Owner, error) {
	owner, err := identifier.OwnerFromNIK(nik)
	if nil != err {
		return identifier.Owner{}, err
	}

	trx, err := r.database.Begin()
	if nil != err {
		return identifier.Owner{}, err
	}
	defer trx.Abort()

	if trx.Has(r.actorOwner, actor[:]) {
		return identifier.Owner{}, fault.ErrOwnerAlreadyBound
	}
	if trx.Has(r.ownerActor, owner[:]) {
		return identifier.Owner{}, fault.ErrNIKAlreadyBound
	}

	trx.Put(r.actorOwner, actor[:], owner[:])
	trx.Put(r.ownerActor, owner[:], actor[:])

	err = trx.Commit()
	if nil != err {
		return identifier.Owner{}, err
	}
	r.log.Infof("bind actor: %s  owner: %s", actor, owner)
	return owner, nil
}

// OwnerOf - the owner bound to an actor
func (r *Registry) OwnerOf(actor identifier.Actor) (identifier.Owner, error) {
	buffer := r.actorOwner.Get(actor[:])
	if nil == buffer {
		return identifier.Owner{}, fault.ErrOwnerNotFound
	}
	return identifier.OwnerFromBytes(buffer)
}

// ActorOf - the actor bound to an owner
func (r *Registry) ActorOf(owner identifier.Owner) (identifier.Actor, error) {
	buffer := r.ownerActor.Get(owner[:])
	if nil == buffer {
		return identifier.Actor{}, fault.ErrOwnerNotFound
	}
	return identifier.ActorFromBytes(buffer)
}

// Unbind - remove the binding of an actor
func (r *Registry) Unbind(actor identifier.Actor) error {
	trx, err := r.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	buffer := trx.Get(r.actorOwner, actor[:])
	if nil == buffer {
		return fault.ErrOwnerNotFound
	}

	trx.Delete(r.actorOwner, actor[:])
	trx.Delete(r.ownerActor, buffer)

	err = trx.Commit()
	if nil != err {
		return err
	}
	r.log.Infof("unbind actor: %s", actor)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consent

import (
	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/storage"
)

// Engine - consent codes and sessions
type Engine struct {
	log      *logger.L
	database *storage.Database
	digits   int
	random   RandomSource

	consents      *storage.PoolHandle
	sessions      *storage.PoolHandle
	actorSessions *storage.PairStore[identifier.Actor, identifier.Session]
	ownerConsents *storage.PairStore[identifier.Owner, Code]
}

// New - create the engine
//
// digits is clamped to MinimumDigits..MaximumDigits, a nil random
// uses the system cryptographic source
func New(database *storage.Database, digits int, random RandomSource) *Engine {
	if digits < MinimumDigits {
		digits = MinimumDigits
	} else if digits > MaximumDigits {
		digits = MaximumDigits
	}
	if nil == random {
		random = cryptoSource{}
	}
	return &Engine{
		log:      logger.New("consent"),
		database: database,
		digits:   digits,
		random:   random,
		consents: database.Pool.Consents,
		sessions: database.Pool.Sessions,
		actorSessions: storage.NewPairStore(
			database.Pool.ActorSessions,
			identifier.ActorLength,
			identifier.ActorFromBytes,
			identifier.SessionFromBytes,
		),
		ownerConsents: storage.NewPairStore(
			database.Pool.OwnerConsents,
			identifier.OwnerLength,
			identifier.OwnerFromBytes,
			codeFromBytes,
		),
	}
}

// Generate - create an unclaimed code for an owner
//
// a code equal to an outstanding one is a fault of the random source
// and panics
func (e *Engine) Generate(owner identifier.Owner) (Code, error) {
	code := makeCode(e.random.Uint64(), e.digits)

	trx, err := e.database.Begin()
	if nil != err {
		return "", err
	}
	defer trx.Abort()

	if trx.Has(e.consents, code.Bytes()) {
		fault.Panicf("consent: generated code collides with outstanding code: %s", code)
	}

	c := Consent{
		Code:  code,
		Owner: owner,
	}
	trx.Put(e.consents, code.Bytes(), c.pack())
	e.ownerConsents.Insert(trx, owner, code)

	err = trx.Commit()
	if nil != err {
		return "", err
	}
	e.log.Debugf("generate code for owner: %s", owner)
	return code, nil
}

// Get - the current state of a code
func (e *Engine) Get(code Code) (*Consent, error) {
	buffer := e.consents.Get(code.Bytes())
	if nil == buffer {
		return nil, fault.ErrConsentNotFound
	}
	return unpack(code, buffer)
}

func (e *Engine) getInTransaction(trx storage.Transaction, code Code) (*Consent, error) {
	buffer := trx.Get(e.consents, code.Bytes())
	if nil == buffer {
		return nil, fault.ErrConsentNotFound
	}
	return unpack(code, buffer)
}

// Claim - bind an actor to the owner of an unclaimed code
func (e *Engine) Claim(code Code, actor identifier.Actor) (identifier.Session, identifier.Owner, error) {
	trx, err := e.database.Begin()
	if nil != err {
		return identifier.Session{}, identifier.Owner{}, err
	}
	defer trx.Abort()

	c, err := e.getInTransaction(trx, code)
	if nil != err {
		return identifier.Session{}, identifier.Owner{}, err
	}
	if c.Claimed {
		e.log.Warnf("claim of already claimed code by actor: %s", actor)
		return identifier.Session{}, identifier.Owner{}, fault.ErrConsentAlreadyClaimed
	}

	session := identifier.NewSession()
	c.Claimed = true
	c.Session = &session
	c.Actor = &actor

	trx.Put(e.consents, code.Bytes(), c.pack())
	trx.Put(e.sessions, session.Bytes(), code.Bytes())
	e.actorSessions.Insert(trx, actor, session)

	err = trx.Commit()
	if nil != err {
		return identifier.Session{}, identifier.Owner{}, err
	}
	e.log.Debugf("claim: session: %s  actor: %s", session, actor)
	return session, c.Owner, nil
}

// look up a consent through the reverse index, both must agree
func (e *Engine) bySession(session identifier.Session) (*Consent, bool) {
	buffer := e.sessions.Get(session.Bytes())
	if nil == buffer {
		return nil, false
	}
	code, err := codeFromBytes(buffer)
	fault.PanicIfError("consent: session index", err)

	c, err := e.Get(code)
	if nil != err || !c.Claimed || *c.Session != session {
		fault.Panicf("consent: session: %s  indexes code: %s  which does not hold it", session, code)
	}
	return c, true
}

// Resolve - the consent of a session, only for the actor that claimed it
func (e *Engine) Resolve(session identifier.Session, actor identifier.Actor) (*Consent, bool) {
	c, ok := e.bySession(session)
	if !ok {
		return nil, false
	}
	if *c.Actor != actor {
		e.log.Warnf("resolve: session: %s  refused for actor: %s", session, actor)
		return nil, false
	}
	return c, true
}

// Finish - end a session and delete its consent
//
// a session finished by an actor other than its claimer is a forgery
// and panics
func (e *Engine) Finish(session identifier.Session, actor identifier.Actor) error {
	c, ok := e.bySession(session)
	if !ok {
		return fault.ErrSessionNotFound
	}
	if *c.Actor != actor {
		fault.Panicf("consent: session: %s  finish by actor: %s  not the claimer: %s", session, actor, c.Actor)
	}

	err := e.delete(c)
	if nil != err {
		return err
	}
	e.log.Debugf("finish: session: %s", session)
	return nil
}

// Revoke - delete a code whether claimed or not
func (e *Engine) Revoke(code Code) error {
	c, err := e.Get(code)
	if nil != err {
		return err
	}

	err = e.delete(c)
	if nil != err {
		return err
	}
	e.log.Debugf("revoke: claimed: %t", c.Claimed)
	return nil
}

func (e *Engine) delete(c *Consent) error {
	trx, err := e.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	trx.Delete(e.consents, c.Code.Bytes())
	e.ownerConsents.Remove(trx, c.Owner, c.Code)
	if c.Claimed {
		trx.Delete(e.sessions, c.Session.Bytes())
		e.actorSessions.Remove(trx, *c.Actor, *c.Session)
	}
	return trx.Commit()
}

// ListByOwner - outstanding codes of an owner in code order
func (e *Engine) ListByOwner(owner identifier.Owner) ([]Code, error) {
	return e.ownerConsents.Values(owner)
}

// SessionsOf - open sessions of an actor
func (e *Engine) SessionsOf(actor identifier.Actor) ([]identifier.Session, error) {
	return e.actorSessions.Values(actor)
}

// HasSession - true if the actor holds at least one open session
func (e *Engine) HasSession(actor identifier.Actor) bool {
	return e.actorSessions.HasAny(actor)
}

// Statistics - sizes of the consent indexes
type Statistics struct {
	Outstanding int `json:"outstanding"`
	Sessions    int `json:"sessions"`
}

// Statistics - count outstanding codes and open sessions
func (e *Engine) Statistics() Statistics {
	return Statistics{
		Outstanding: e.ownerConsents.Count(),
		Sessions:    e.actorSessions.Count(),
	}
}

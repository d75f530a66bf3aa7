// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - the only path for reading records of another owner
//
// A caller reads the records of an owner either through a session
// opened by claiming that owner's consent code, or through a group
// grant the owner made to the caller. Permission failures are
// PermissionError faults so they can be told apart from missing
// records.
package access

//go:generate mockgen -destination=mocks/mock_access.go -package=mocks github.com/baliola/medblock/access Records,Sessions,Groups,Patients

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/counter"
	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/group"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/messagebus"
	"github.com/baliola/medblock/registry"
)

// Records - read side of the record registry
type Records interface {
	Read(identifier.Owner, identifier.Issuer, identifier.Record) (*registry.Record, error)
	ListByOwner(identifier.Owner, int, int) ([]registry.Header, bool)
}

// Sessions - consent claims and session lookup
type Sessions interface {
	Claim(consent.Code, identifier.Actor) (identifier.Session, identifier.Owner, error)
	Resolve(identifier.Session, identifier.Actor) (*consent.Consent, bool)
}

// Groups - group membership and grants
type Groups interface {
	Get(identifier.Group) (*group.Group, error)
	Grant(identifier.Owner, identifier.Owner, identifier.Group)
	Revoke(identifier.Owner, identifier.Owner)
	HasAccess(identifier.Owner, identifier.Owner) bool
}

// Patients - owner of an authenticated actor
type Patients interface {
	OwnerOf(identifier.Actor) (identifier.Owner, error)
}

// defaults for unset claim options
const (
	DefaultClaimRate  = 5.0
	DefaultClaimBurst = 10
)

// Options - limits applied by the controller
//
// a zero ClaimRate or ClaimBurst takes the default
type Options struct {
	ClaimRate    float64 // claims per second over all actors
	ClaimBurst   int
	MaximumLimit int             // largest page size
	Events       *messagebus.Bus // optional audit queue
}

// Controller - checks capabilities before reading
type Controller struct {
	log          *logger.L
	records      Records
	sessions     Sessions
	groups       Groups
	patients     Patients
	claims       *rate.Limiter
	maximumLimit int
	events       *messagebus.Bus

	allowed     counter.Counter
	refused     counter.Counter
	rateLimited counter.Counter
}

// New - create a controller
func New(records Records, sessions Sessions, groups Groups, patients Patients, options Options) *Controller {
	maximumLimit := options.MaximumLimit
	if maximumLimit < 1 {
		maximumLimit = 1
	}
	claimRate := options.ClaimRate
	if claimRate <= 0 {
		claimRate = DefaultClaimRate
	}
	claimBurst := options.ClaimBurst
	if claimBurst < 1 {
		claimBurst = DefaultClaimBurst
	}
	return &Controller{
		log:          logger.New("access"),
		records:      records,
		sessions:     sessions,
		groups:       groups,
		patients:     patients,
		claims:       rate.NewLimiter(rate.Limit(claimRate), claimBurst),
		maximumLimit: maximumLimit,
		events:       options.Events,
	}
}

// MaximumLimit - largest page size a listing returns
func (c *Controller) MaximumLimit() int {
	return c.maximumLimit
}

func (c *Controller) clamp(limit int) int {
	if limit > c.maximumLimit {
		return c.maximumLimit
	}
	return limit
}

// ClaimConsent - claim a code, refused when claims arrive too fast
func (c *Controller) ClaimConsent(code consent.Code, actor identifier.Actor) (identifier.Session, identifier.Owner, error) {
	if !c.claims.Allow() {
		c.log.Warnf("claim rate exceeded, actor: %s", actor)
		c.rateLimited.Increment()
		c.audit(ActionClaim, actor, identifier.Owner{}, false)
		return identifier.Session{}, identifier.Owner{}, fault.ErrRateLimited
	}
	session, owner, err := c.sessions.Claim(code, actor)
	c.audit(ActionClaim, actor, owner, nil == err)
	return session, owner, err
}

// ResolveSession - the owner a session gives the actor access to
func (c *Controller) ResolveSession(session identifier.Session, actor identifier.Actor) (identifier.Owner, bool) {
	held, ok := c.sessions.Resolve(session, actor)
	if !ok {
		return identifier.Owner{}, false
	}
	return held.Owner, true
}

func (c *Controller) sessionOwner(action Action, session identifier.Session, actor identifier.Actor) (identifier.Owner, error) {
	owner, ok := c.ResolveSession(session, actor)
	if !ok {
		c.log.Warnf("session: %s  refused for actor: %s", session, actor)
		c.audit(action, actor, identifier.Owner{}, false)
		return identifier.Owner{}, fault.ErrNotSessionOwner
	}
	c.audit(action, actor, owner, true)
	return owner, nil
}

// ReadWithSession - read a record of the owner of a session
func (c *Controller) ReadWithSession(session identifier.Session, actor identifier.Actor, issuer identifier.Issuer, record identifier.Record) (*registry.Record, error) {
	owner, err := c.sessionOwner(ActionSessionRead, session, actor)
	if nil != err {
		return nil, err
	}
	return c.records.Read(owner, issuer, record)
}

// ListWithSession - a page of records of the owner of a session
func (c *Controller) ListWithSession(session identifier.Session, actor identifier.Actor, page int, limit int) ([]registry.Header, bool, error) {
	owner, err := c.sessionOwner(ActionSessionList, session, actor)
	if nil != err {
		return nil, false, err
	}
	headers, ok := c.records.ListByOwner(owner, page, c.clamp(limit))
	return headers, ok, nil
}

// HasAccess - true if the actor holds a grant from the granter
func (c *Controller) HasAccess(granter identifier.Owner, actor identifier.Actor) bool {
	grantee, err := c.patients.OwnerOf(actor)
	if nil != err {
		return false
	}
	return c.groups.HasAccess(granter, grantee)
}

func (c *Controller) checkGrant(action Action, granter identifier.Owner, actor identifier.Actor) error {
	if !c.HasAccess(granter, actor) {
		c.log.Warnf("no grant from: %s  for actor: %s", granter, actor)
		c.audit(action, actor, granter, false)
		return fault.ErrNotPermitted
	}
	c.audit(action, actor, granter, true)
	return nil
}

// ReadAsGroupMember - read a record of a granter
func (c *Controller) ReadAsGroupMember(actor identifier.Actor, granter identifier.Owner, issuer identifier.Issuer, record identifier.Record) (*registry.Record, error) {
	err := c.checkGrant(ActionMemberRead, granter, actor)
	if nil != err {
		return nil, err
	}
	return c.records.Read(granter, issuer, record)
}

// ListAsGroupMember - a page of records of a granter
func (c *Controller) ListAsGroupMember(actor identifier.Actor, granter identifier.Owner, page int, limit int) ([]registry.Header, bool, error) {
	err := c.checkGrant(ActionMemberList, granter, actor)
	if nil != err {
		return nil, false, err
	}
	headers, ok := c.records.ListByOwner(granter, page, c.clamp(limit))
	return headers, ok, nil
}

// GrantGroupAccess - let another member of a group read the actor's records
func (c *Controller) GrantGroupAccess(actor identifier.Actor, id identifier.Group, grantee identifier.Owner) error {
	granter, err := c.patients.OwnerOf(actor)
	if nil != err {
		return err
	}
	g, err := c.groups.Get(id)
	if nil != err {
		return err
	}
	if !g.IsMember(granter) || !g.IsMember(grantee) {
		c.audit(ActionGrant, actor, granter, false)
		return fault.ErrNotGroupMember
	}
	c.groups.Grant(granter, grantee, id)
	c.audit(ActionGrant, actor, granter, true)
	return nil
}

// RevokeGroupAccess - withdraw a grant made by the actor
func (c *Controller) RevokeGroupAccess(actor identifier.Actor, grantee identifier.Owner) error {
	granter, err := c.patients.OwnerOf(actor)
	if nil != err {
		return err
	}
	c.groups.Revoke(granter, grantee)
	c.audit(ActionRevoke, actor, granter, true)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/registry"
)

type codeResult struct {
	Code  consent.Code     `json:"code"`
	Owner identifier.Owner `json:"owner"`
}

type sessionResult struct {
	Session identifier.Session `json:"session"`
	Actor   identifier.Actor   `json:"actor"`
	Owner   identifier.Owner   `json:"owner"`
}

func runConsentGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}
	code, err := m.consents.Generate(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, codeResult{Code: code, Owner: owner})
}

func runConsentShow(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	code, err := checkCode(c)
	if nil != err {
		return err
	}
	held, err := m.consents.Get(code)
	if nil != err {
		return err
	}
	return printJson(m.w, held)
}

func runConsentList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}
	codes, err := m.consents.ListByOwner(owner)
	if nil != err {
		return err
	}
	if nil == codes {
		codes = []consent.Code{}
	}
	return printJson(m.w, codes)
}

func runConsentRevoke(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	code, err := checkCode(c)
	if nil != err {
		return err
	}
	held, err := m.consents.Get(code)
	if nil != err {
		return err
	}
	if err := m.consents.Revoke(code); nil != err {
		return err
	}
	return printJson(m.w, held)
}

func runClaim(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	code, err := checkCode(c)
	if nil != err {
		return err
	}
	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	session, owner, err := m.access.ClaimConsent(code, actor)
	if nil != err {
		return err
	}
	return printJson(m.w, sessionResult{Session: session, Actor: actor, Owner: owner})
}

func runResolve(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	session, err := checkSession(c)
	if nil != err {
		return err
	}
	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	owner, ok := m.access.ResolveSession(session, actor)
	if !ok {
		return fault.ErrSessionNotFound
	}
	return printJson(m.w, sessionResult{Session: session, Actor: actor, Owner: owner})
}

func runFinish(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	session, err := checkSession(c)
	if nil != err {
		return err
	}
	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	owner, ok := m.access.ResolveSession(session, actor)
	if !ok {
		return fault.ErrNotSessionOwner
	}
	if err := m.consents.Finish(session, actor); nil != err {
		return err
	}
	return printJson(m.w, sessionResult{Session: session, Actor: actor, Owner: owner})
}

func runSessionsOf(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	sessions, err := m.consents.SessionsOf(actor)
	if nil != err {
		return err
	}
	if nil == sessions {
		sessions = []identifier.Session{}
	}
	return printJson(m.w, sessions)
}

func runSessionRead(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	session, err := checkSession(c)
	if nil != err {
		return err
	}
	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	issuer, err := checkIssuer(c)
	if nil != err {
		return err
	}
	record, err := checkRecord(c)
	if nil != err {
		return err
	}
	r, err := m.access.ReadWithSession(session, actor, issuer, record)
	if nil != err {
		return err
	}
	return printJson(m.w, r)
}

func runSessionList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	session, err := checkSession(c)
	if nil != err {
		return err
	}
	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	page := c.Int("page")
	headers, _, err := m.access.ListWithSession(session, actor, page, c.Int("limit"))
	if nil != err {
		return err
	}
	if nil == headers {
		headers = []registry.Header{}
	}

	// the session was just checked so resolving cannot fail
	owner, _ := m.access.ResolveSession(session, actor)
	return printJson(m.w, listResult{Page: page, Total: m.records.CountByOwner(owner), Headers: headers})
}

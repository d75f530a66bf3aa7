// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/registry"
)

// fetch a required string flag
func required(c *cli.Context, name string) (string, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return "", fmt.Errorf("%s: %s", ErrMissingParameter, name)
	}
	return s, nil
}

func checkOwner(c *cli.Context, name string) (identifier.Owner, error) {
	s, err := required(c, name)
	if nil != err {
		return identifier.Owner{}, err
	}
	return identifier.OwnerFromString(s)
}

func checkActor(c *cli.Context) (identifier.Actor, error) {
	s, err := required(c, "actor")
	if nil != err {
		return identifier.Actor{}, err
	}
	return identifier.ActorFromString(s)
}

func checkIssuer(c *cli.Context) (identifier.Issuer, error) {
	s, err := required(c, "issuer")
	if nil != err {
		return identifier.Issuer{}, err
	}
	return identifier.IssuerFromString(s)
}

func checkRecord(c *cli.Context) (identifier.Record, error) {
	s, err := required(c, "record")
	if nil != err {
		return identifier.Record{}, err
	}
	return identifier.RecordFromString(s)
}

func checkSession(c *cli.Context) (identifier.Session, error) {
	s, err := required(c, "session")
	if nil != err {
		return identifier.Session{}, err
	}
	return identifier.SessionFromString(s)
}

func checkGroup(c *cli.Context) (identifier.Group, error) {
	s, err := required(c, "group")
	if nil != err {
		return 0, err
	}
	return identifier.GroupFromString(s)
}

func checkCode(c *cli.Context) (consent.Code, error) {
	s, err := required(c, "code")
	if nil != err {
		return "", err
	}
	return consent.CodeFromString(s)
}

// the three parts of a record key
func checkHeader(c *cli.Context) (registry.Header, error) {
	owner, err := checkOwner(c, "owner")
	if nil != err {
		return registry.Header{}, err
	}
	issuer, err := checkIssuer(c)
	if nil != err {
		return registry.Header{}, err
	}
	record, err := checkRecord(c)
	if nil != err {
		return registry.Header{}, err
	}
	return registry.Header{Owner: owner, Issuer: issuer, Record: record}, nil
}

// decode a list of name=value items
func parseFragments(items []string) ([]registry.Fragment, error) {
	fragments := make([]registry.Fragment, 0, len(items))
	for _, item := range items {
		n := strings.IndexByte(item, '=')
		if n <= 0 {
			return nil, fmt.Errorf("%s: %q", ErrInvalidFragment, item)
		}
		field, err := identifier.FieldFromString(item[:n])
		if nil != err {
			return nil, err
		}
		fragments = append(fragments, registry.Fragment{
			Field: field,
			Value: item[n+1:],
		})
	}
	return fragments, nil
}

// flags shared by several commands
var (
	ownerFlag = cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: "*record owner `HEX`",
	}
	actorFlag = cli.StringFlag{
		Name:  "actor, a",
		Value: "",
		Usage: "*calling actor `BASE58`",
	}
	issuerFlag = cli.StringFlag{
		Name:  "issuer, i",
		Value: "",
		Usage: "*issuer `UUID`",
	}
	recordFlag = cli.StringFlag{
		Name:  "record, r",
		Value: "",
		Usage: "*record `UUID`",
	}
	sessionFlag = cli.StringFlag{
		Name:  "session, s",
		Value: "",
		Usage: "*session `UUID`",
	}
	groupFlag = cli.StringFlag{
		Name:  "group, g",
		Value: "",
		Usage: "*group `NUMBER`",
	}
	codeFlag = cli.StringFlag{
		Name:  "code, c",
		Value: "",
		Usage: "*consent `DIGITS`",
	}
	fieldFlag = cli.StringSliceFlag{
		Name:  "field, f",
		Usage: " fragment `NAME=VALUE` (repeatable)",
	}
	pageFlag = cli.IntFlag{
		Name:  "page, p",
		Value: 0,
		Usage: " zero based page `NUMBER`",
	}
	limitFlag = cli.IntFlag{
		Name:  "limit, l",
		Value: 10,
		Usage: " records per page `COUNT`",
	}
)

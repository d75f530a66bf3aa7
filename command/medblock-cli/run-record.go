// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/registry"
)

type listResult struct {
	Page    int               `json:"page"`
	Total   int               `json:"total"`
	Headers []registry.Header `json:"headers"`
}

func runAdd(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}

	issuer := identifier.NewIssuer()
	if s := strings.TrimSpace(c.String("issuer")); "" != s {
		issuer, err = identifier.IssuerFromString(s)
		if nil != err {
			return err
		}
	}

	record := identifier.NewRecord()
	if s := strings.TrimSpace(c.String("record")); "" != s {
		record, err = identifier.RecordFromString(s)
		if nil != err {
			return err
		}
	}

	fragments, err := parseFragments(c.StringSlice("field"))
	if nil != err {
		return err
	}

	if err := m.records.Add(owner, issuer, record, fragments); nil != err {
		return err
	}
	return printJson(m.w, registry.Header{Owner: owner, Issuer: issuer, Record: record})
}

func runUpdate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	h, err := checkHeader(c)
	if nil != err {
		return err
	}
	fragments, err := parseFragments(c.StringSlice("field"))
	if nil != err {
		return err
	}

	header, err := m.records.UpdateBatch(h.Owner, h.Issuer, h.Record, fragments)
	if nil != err {
		return err
	}
	return printJson(m.w, header)
}

func runRead(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	h, err := checkHeader(c)
	if nil != err {
		return err
	}
	record, err := m.records.Read(h.Owner, h.Issuer, h.Record)
	if nil != err {
		return err
	}
	return printJson(m.w, record)
}

func runRemove(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	h, err := checkHeader(c)
	if nil != err {
		return err
	}
	if err := m.records.Remove(h.Owner, h.Issuer, h.Record); nil != err {
		return err
	}
	return printJson(m.w, h)
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	page := c.Int("page")
	limit := c.Int("limit")
	if limit > m.access.MaximumLimit() {
		limit = m.access.MaximumLimit()
	}

	result := listResult{Page: page}

	switch {
	case "" != strings.TrimSpace(c.String("owner")):
		owner, err := checkOwner(c, "owner")
		if nil != err {
			return err
		}
		result.Headers, _ = m.records.ListByOwner(owner, page, limit)
		result.Total = m.records.CountByOwner(owner)

	case "" != strings.TrimSpace(c.String("issuer")):
		issuer, err := checkIssuer(c)
		if nil != err {
			return err
		}
		result.Headers, _ = m.records.ListByIssuer(issuer, page, limit)
		result.Total = m.records.CountByIssuer(issuer)

	default:
		return ErrNoOwnerOrIssuer
	}

	if nil == result.Headers {
		result.Headers = []registry.Header{}
	}
	return printJson(m.w, result)
}

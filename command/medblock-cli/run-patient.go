// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/baliola/medblock/identifier"
)

type bindingResult struct {
	Actor identifier.Actor `json:"actor"`
	Owner identifier.Owner `json:"owner"`
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printJson(m.w, m.consents.Statistics())
}

func runBind(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	nik, err := required(c, "nik")
	if nil != err {
		return err
	}

	owner, err := m.patients.Bind(actor, nik)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "bound actor: %s\n", actor)
	}
	return printJson(m.w, bindingResult{Actor: actor, Owner: owner})
}

func runUnbind(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	owner, err := m.patients.OwnerOf(actor)
	if nil != err {
		return err
	}
	if err := m.patients.Unbind(actor); nil != err {
		return err
	}
	return printJson(m.w, bindingResult{Actor: actor, Owner: owner})
}

func runOwnerOf(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	owner, err := m.patients.OwnerOf(actor)
	if nil != err {
		return err
	}
	return printJson(m.w, bindingResult{Actor: actor, Owner: owner})
}

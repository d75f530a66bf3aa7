// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/access"
	"github.com/baliola/medblock/messagebus"
)

// writes access decisions from the bus to the "audit" log channel
type auditor struct {
	log *logger.L
	bus *messagebus.Bus
}

func newAuditor(bus *messagebus.Bus) *auditor {
	return &auditor{
		log: logger.New("audit"),
		bus: bus,
	}
}

// Run - background process loop
func (a *auditor) Run(args interface{}, shutdown <-chan struct{}) {
	log := a.log
	queue := a.bus.Chan()

	log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m := <-queue:
			a.write(m)
		}
	}

	// flush what is already queued
	for {
		select {
		case m := <-queue:
			a.write(m)
		default:
			log.Info("shutdown")
			return
		}
	}
}

func (a *auditor) write(m messagebus.Message) {
	e, ok := m.Item.(access.Event)
	if !ok {
		a.log.Errorf("from: %s  unexpected item: %v", m.From, m.Item)
		return
	}
	if e.Allowed {
		a.log.Infof("%s allowed  actor: %s  owner: %s", e.Action, e.Actor, e.Owner)
	} else {
		a.log.Warnf("%s refused  actor: %s  owner: %s", e.Action, e.Actor, e.Owner)
	}
}

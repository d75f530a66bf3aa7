// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/access"
	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/messagebus"
)

// periodically log consent index sizes and access decision counts
type statusReporter struct {
	log      *logger.L
	interval time.Duration
	consents *consent.Engine
	access   *access.Controller
	bus      *messagebus.Bus
}

func newStatusReporter(interval time.Duration, consents *consent.Engine, controller *access.Controller, bus *messagebus.Bus) *statusReporter {
	return &statusReporter{
		log:      logger.New("status"),
		interval: interval,
		consents: consents,
		access:   controller,
		bus:      bus,
	}
}

// Run - background process loop
func (s *statusReporter) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.report()
		}
	}
	log.Info("shutdown")
}

func (s *statusReporter) report() {
	c := s.consents.Statistics()
	a := s.access.Statistics()
	s.log.Infof("outstanding consents: %d  open sessions: %d", c.Outstanding, c.Sessions)
	s.log.Infof("allowed: %d  refused: %d  rate limited: %d  audit dropped: %d", a.Allowed, a.Refused, a.RateLimited, s.bus.Dropped())
}

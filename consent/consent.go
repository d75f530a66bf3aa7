// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consent

import (
	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
)

// Consent - the state of one code
type Consent struct {
	Code    Code                `json:"code"`
	Owner   identifier.Owner    `json:"owner"`
	Claimed bool                `json:"claimed"`
	Session *identifier.Session `json:"session,omitempty"`
	Actor   *identifier.Actor   `json:"actor,omitempty"`
}

// stored state byte
const (
	stateUnclaimed = 0x00
	stateClaimed   = 0x01
)

const (
	unclaimedLength = identifier.OwnerLength + 1
	claimedLength   = unclaimedLength + identifier.SessionLength + identifier.ActorLength
)

func (c *Consent) pack() []byte {
	buffer := make([]byte, 0, claimedLength)
	buffer = append(buffer, c.Owner[:]...)
	if !c.Claimed {
		return append(buffer, stateUnclaimed)
	}
	buffer = append(buffer, stateClaimed)
	buffer = append(buffer, c.Session[:]...)
	return append(buffer, c.Actor[:]...)
}

func unpack(code Code, buffer []byte) (*Consent, error) {
	if len(buffer) < unclaimedLength {
		return nil, fault.ErrTruncatedRecord
	}

	c := &Consent{Code: code}
	copy(c.Owner[:], buffer[:identifier.OwnerLength])

	switch buffer[identifier.OwnerLength] {
	case stateUnclaimed:
		return c, nil

	case stateClaimed:
		if claimedLength != len(buffer) {
			return nil, fault.ErrTruncatedRecord
		}
		n := unclaimedLength
		session, err := identifier.SessionFromBytes(buffer[n : n+identifier.SessionLength])
		if nil != err {
			return nil, err
		}
		n += identifier.SessionLength
		actor, err := identifier.ActorFromBytes(buffer[n:])
		if nil != err {
			return nil, err
		}
		c.Claimed = true
		c.Session = &session
		c.Actor = &actor
		return c, nil

	default:
		return nil, fault.ErrTruncatedRecord
	}
}

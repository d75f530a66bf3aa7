// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/baliola/medblock/fault"
)

// identifier widths
const (
	OwnerLength   = 32
	ActorLength   = 29
	IssuerLength  = 16
	RecordLength  = 16
	FieldLength   = 32
	SessionLength = 16
	GroupLength   = 8
)

// Owner - the subject of a record
type Owner [OwnerLength]byte

// Actor - an already authenticated caller
type Actor [ActorLength]byte

// Issuer - the provider that created a record
type Issuer [IssuerLength]byte

// Record - a single record of an owner
type Record [RecordLength]byte

// Session - the binding created by claiming a consent code
type Session [SessionLength]byte

// Group - a group sequence number
type Group uint64

// OwnerFromNIK - derive the owner identifier from a national identity number
func OwnerFromNIK(nik string) (Owner, error) {
	if 0 == len(nik) {
		return Owner{}, fault.ErrInvalidNIK
	}
	for _, c := range nik {
		if c < '0' || c > '9' {
			return Owner{}, fault.ErrInvalidNIK
		}
	}
	return Owner(sha3.Sum256([]byte(nik))), nil
}

// OwnerFromBytes - convert a byte slice to an owner
func OwnerFromBytes(buffer []byte) (Owner, error) {
	o := Owner{}
	if OwnerLength != len(buffer) {
		return o, fault.ErrInvalidIdentifier
	}
	copy(o[:], buffer)
	return o, nil
}

// OwnerFromString - convert a hex string to an owner
func OwnerFromString(s string) (Owner, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return Owner{}, fault.ErrInvalidIdentifier
	}
	return OwnerFromBytes(buffer)
}

// Bytes - byte slice copy of the owner
func (o Owner) Bytes() []byte { return append([]byte(nil), o[:]...) }

// IsZero - true for the unset owner
func (o Owner) IsZero() bool { return o == Owner{} }

// String - hex representation
func (o Owner) String() string { return hex.EncodeToString(o[:]) }

// MarshalText - convert owner to hex text
func (o Owner) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText - convert hex text to owner
func (o *Owner) UnmarshalText(s []byte) error {
	owner, err := OwnerFromString(string(s))
	if nil != err {
		return err
	}
	*o = owner
	return nil
}

// ActorFromBytes - convert a byte slice to an actor
func ActorFromBytes(buffer []byte) (Actor, error) {
	a := Actor{}
	if ActorLength != len(buffer) {
		return a, fault.ErrInvalidIdentifier
	}
	copy(a[:], buffer)
	return a, nil
}

// ActorFromString - convert base58 text to an actor
func ActorFromString(s string) (Actor, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Actor{}, fault.ErrInvalidIdentifier
	}
	return ActorFromBytes(buffer)
}

// Bytes - byte slice copy of the actor
func (a Actor) Bytes() []byte { return append([]byte(nil), a[:]...) }

// IsZero - true for the unset actor
func (a Actor) IsZero() bool { return a == Actor{} }

// String - base58 representation
func (a Actor) String() string { return base58.Encode(a[:]) }

// MarshalText - convert actor to base58 text
func (a Actor) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText - convert base58 text to actor
func (a *Actor) UnmarshalText(s []byte) error {
	actor, err := ActorFromString(string(s))
	if nil != err {
		return err
	}
	*a = actor
	return nil
}

// NewIssuer - a random issuer
func NewIssuer() Issuer { return Issuer(uuid.New()) }

// IssuerFromBytes - convert a byte slice to an issuer
func IssuerFromBytes(buffer []byte) (Issuer, error) {
	i := Issuer{}
	if IssuerLength != len(buffer) {
		return i, fault.ErrInvalidIdentifier
	}
	copy(i[:], buffer)
	return i, nil
}

// IssuerFromString - convert UUID text to an issuer
func IssuerFromString(s string) (Issuer, error) {
	u, err := uuid.Parse(s)
	if nil != err {
		return Issuer{}, fault.ErrInvalidIdentifier
	}
	return Issuer(u), nil
}

// Bytes - byte slice copy of the issuer
func (i Issuer) Bytes() []byte { return append([]byte(nil), i[:]...) }

// IsZero - true for the unset issuer
func (i Issuer) IsZero() bool { return i == Issuer{} }

// String - UUID representation
func (i Issuer) String() string { return uuid.UUID(i).String() }

// MarshalText - convert issuer to UUID text
func (i Issuer) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText - convert UUID text to issuer
func (i *Issuer) UnmarshalText(s []byte) error {
	issuer, err := IssuerFromString(string(s))
	if nil != err {
		return err
	}
	*i = issuer
	return nil
}

// NewRecord - a random record identifier
func NewRecord() Record { return Record(uuid.New()) }

// RecordFromBytes - convert a byte slice to a record identifier
func RecordFromBytes(buffer []byte) (Record, error) {
	r := Record{}
	if RecordLength != len(buffer) {
		return r, fault.ErrInvalidIdentifier
	}
	copy(r[:], buffer)
	return r, nil
}

// RecordFromString - convert UUID text to a record identifier
func RecordFromString(s string) (Record, error) {
	u, err := uuid.Parse(s)
	if nil != err {
		return Record{}, fault.ErrInvalidIdentifier
	}
	return Record(u), nil
}

// Bytes - byte slice copy of the record identifier
func (r Record) Bytes() []byte { return append([]byte(nil), r[:]...) }

// IsZero - true for the unset record identifier
func (r Record) IsZero() bool { return r == Record{} }

// String - UUID representation
func (r Record) String() string { return uuid.UUID(r).String() }

// MarshalText - convert record identifier to UUID text
func (r Record) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText - convert UUID text to record identifier
func (r *Record) UnmarshalText(s []byte) error {
	record, err := RecordFromString(string(s))
	if nil != err {
		return err
	}
	*r = record
	return nil
}

// NewSession - a random session identifier
func NewSession() Session { return Session(uuid.New()) }

// SessionFromBytes - convert a byte slice to a session identifier
func SessionFromBytes(buffer []byte) (Session, error) {
	s := Session{}
	if SessionLength != len(buffer) {
		return s, fault.ErrInvalidIdentifier
	}
	copy(s[:], buffer)
	return s, nil
}

// SessionFromString - convert UUID text to a session identifier
func SessionFromString(s string) (Session, error) {
	u, err := uuid.Parse(s)
	if nil != err {
		return Session{}, fault.ErrInvalidIdentifier
	}
	return Session(u), nil
}

// Bytes - byte slice copy of the session identifier
func (s Session) Bytes() []byte { return append([]byte(nil), s[:]...) }

// String - UUID representation
func (s Session) String() string { return uuid.UUID(s).String() }

// MarshalText - convert session identifier to UUID text
func (s Session) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText - convert UUID text to session identifier
func (s *Session) UnmarshalText(text []byte) error {
	session, err := SessionFromString(string(text))
	if nil != err {
		return err
	}
	*s = session
	return nil
}

// GroupFromBytes - decode a big endian group number
func GroupFromBytes(buffer []byte) (Group, error) {
	if GroupLength != len(buffer) {
		return 0, fault.ErrInvalidIdentifier
	}
	return Group(binary.BigEndian.Uint64(buffer)), nil
}

// GroupFromString - decode a decimal group number
func GroupFromString(s string) (Group, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidIdentifier
	}
	return Group(n), nil
}

// Bytes - big endian encoding so that groups sort numerically
func (g Group) Bytes() []byte {
	buffer := make([]byte, GroupLength)
	binary.BigEndian.PutUint64(buffer, uint64(g))
	return buffer
}

// String - decimal representation
func (g Group) String() string { return strconv.FormatUint(uint64(g), 10) }

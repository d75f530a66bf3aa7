// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"github.com/baliola/medblock/identifier"
)

// Builders are chains of distinct types: each type only has the
// setter for the next field of its usage, and only the final type of
// a chain has Build. A key with a missing or out of order field does
// not compile. Unset trailing fields stay zero.
//
//   Fragment():      Owner → Issuer → Record → Field → Build   (owner layout)
//   RecordPrefix():  Owner → Issuer → Record → Build           (owner layout)
//   OwnerPrefix():   Owner → Build                             (owner layout)
//   IssuerEntry():   Issuer → Owner → Record → Field → Build   (issuer layout)
//   IssuerPrefix():  Issuer → Build                            (issuer layout)

// full fragment key

// FragmentStart - fragment key with nothing set
type FragmentStart struct{ k Key }

// FragmentOwner - fragment key with owner set
type FragmentOwner struct{ k Key }

// FragmentIssuer - fragment key with owner and issuer set
type FragmentIssuer struct{ k Key }

// FragmentRecord - fragment key with owner, issuer and record set
type FragmentRecord struct{ k Key }

// FragmentComplete - fragment key with all fields set
type FragmentComplete struct{ k Key }

// Fragment - begin a full owner layout key
func Fragment() FragmentStart { return FragmentStart{k: Key{layout: OwnerLayout}} }

// Owner - set the owner
func (b FragmentStart) Owner(o identifier.Owner) FragmentOwner {
	b.k.owner = o
	return FragmentOwner(b)
}

// Issuer - set the issuer
func (b FragmentOwner) Issuer(i identifier.Issuer) FragmentIssuer {
	b.k.issuer = i
	return FragmentIssuer(b)
}

// Record - set the record
func (b FragmentIssuer) Record(r identifier.Record) FragmentRecord {
	b.k.record = r
	return FragmentRecord(b)
}

// Field - set the field
func (b FragmentRecord) Field(f identifier.Field) FragmentComplete {
	b.k.field = f
	return FragmentComplete(b)
}

// Build - the finished key
func (b FragmentComplete) Build() Key { return b.k }

// record prefix: all fields of a record, field zero

// RecordPrefixStart - record prefix with nothing set
type RecordPrefixStart struct{ k Key }

// RecordPrefixOwner - record prefix with owner set
type RecordPrefixOwner struct{ k Key }

// RecordPrefixIssuer - record prefix with owner and issuer set
type RecordPrefixIssuer struct{ k Key }

// RecordPrefixComplete - record prefix ready to build
type RecordPrefixComplete struct{ k Key }

// RecordPrefix - begin a key that starts a scan of one record
func RecordPrefix() RecordPrefixStart { return RecordPrefixStart{k: Key{layout: OwnerLayout}} }

// Owner - set the owner
func (b RecordPrefixStart) Owner(o identifier.Owner) RecordPrefixOwner {
	b.k.owner = o
	return RecordPrefixOwner(b)
}

// Issuer - set the issuer
func (b RecordPrefixOwner) Issuer(i identifier.Issuer) RecordPrefixIssuer {
	b.k.issuer = i
	return RecordPrefixIssuer(b)
}

// Record - set the record
func (b RecordPrefixIssuer) Record(r identifier.Record) RecordPrefixComplete {
	b.k.record = r
	return RecordPrefixComplete(b)
}

// Build - the finished key
func (b RecordPrefixComplete) Build() Key { return b.k }

// owner prefix

// OwnerPrefixStart - owner prefix with nothing set
type OwnerPrefixStart struct{ k Key }

// OwnerPrefixComplete - owner prefix ready to build
type OwnerPrefixComplete struct{ k Key }

// OwnerPrefix - begin a key that starts a scan of one owner
func OwnerPrefix() OwnerPrefixStart { return OwnerPrefixStart{k: Key{layout: OwnerLayout}} }

// Owner - set the owner
func (b OwnerPrefixStart) Owner(o identifier.Owner) OwnerPrefixComplete {
	b.k.owner = o
	return OwnerPrefixComplete(b)
}

// Build - the finished key
func (b OwnerPrefixComplete) Build() Key { return b.k }

// full issuer layout key

// IssuerEntryStart - issuer entry with nothing set
type IssuerEntryStart struct{ k Key }

// IssuerEntryIssuer - issuer entry with issuer set
type IssuerEntryIssuer struct{ k Key }

// IssuerEntryOwner - issuer entry with issuer and owner set
type IssuerEntryOwner struct{ k Key }

// IssuerEntryRecord - issuer entry with issuer, owner and record set
type IssuerEntryRecord struct{ k Key }

// IssuerEntryComplete - issuer entry with all fields set
type IssuerEntryComplete struct{ k Key }

// IssuerEntry - begin a full issuer layout key
func IssuerEntry() IssuerEntryStart { return IssuerEntryStart{k: Key{layout: IssuerLayout}} }

// Issuer - set the issuer
func (b IssuerEntryStart) Issuer(i identifier.Issuer) IssuerEntryIssuer {
	b.k.issuer = i
	return IssuerEntryIssuer(b)
}

// Owner - set the owner
func (b IssuerEntryIssuer) Owner(o identifier.Owner) IssuerEntryOwner {
	b.k.owner = o
	return IssuerEntryOwner(b)
}

// Record - set the record
func (b IssuerEntryOwner) Record(r identifier.Record) IssuerEntryRecord {
	b.k.record = r
	return IssuerEntryRecord(b)
}

// Field - set the field
func (b IssuerEntryRecord) Field(f identifier.Field) IssuerEntryComplete {
	b.k.field = f
	return IssuerEntryComplete(b)
}

// Build - the finished key
func (b IssuerEntryComplete) Build() Key { return b.k }

// issuer prefix

// IssuerPrefixStart - issuer prefix with nothing set
type IssuerPrefixStart struct{ k Key }

// IssuerPrefixComplete - issuer prefix ready to build
type IssuerPrefixComplete struct{ k Key }

// IssuerPrefix - begin a key that starts a scan of one issuer
func IssuerPrefix() IssuerPrefixStart { return IssuerPrefixStart{k: Key{layout: IssuerLayout}} }

// Issuer - set the issuer
func (b IssuerPrefixStart) Issuer(i identifier.Issuer) IssuerPrefixComplete {
	b.k.issuer = i
	return IssuerPrefixComplete(b)
}

// Build - the finished key
func (b IssuerPrefixComplete) Build() Key { return b.k }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/keys"
	"github.com/baliola/medblock/storage"
)

// ListByOwner - a page of record headers of one owner
//
// the second result is false when the page holds nothing, that is
// for an unknown owner, a zero limit or a page beyond the end
func (r *Registry) ListByOwner(owner identifier.Owner, page int, limit int) ([]Header, bool) {
	start := keys.OwnerPrefix().Owner(owner).Build().Bytes()
	return r.headers(keys.OwnerLayout, r.fragments.Page(start, keys.OwnerLayout, page, limit))
}

// ListByIssuer - a page of record headers created by one issuer
func (r *Registry) ListByIssuer(issuer identifier.Issuer, page int, limit int) ([]Header, bool) {
	start := keys.IssuerPrefix().Issuer(issuer).Build().Bytes()
	return r.headers(keys.IssuerLayout, r.issuerIndex.Page(start, keys.IssuerLayout, page, limit))
}

// AllByOwner - every record header of one owner
func (r *Registry) AllByOwner(owner identifier.Owner) []Header {
	start := keys.OwnerPrefix().Owner(owner).Build().Bytes()
	headers, _ := r.headers(keys.OwnerLayout, r.fragments.All(start, keys.OwnerLayout))
	return headers
}

// CountByOwner - number of records of one owner
func (r *Registry) CountByOwner(owner identifier.Owner) int {
	start := keys.OwnerPrefix().Owner(owner).Build().Bytes()
	return r.fragments.Count(start, keys.OwnerLayout)
}

// CountByIssuer - number of records created by one issuer
func (r *Registry) CountByIssuer(issuer identifier.Issuer) int {
	start := keys.IssuerPrefix().Issuer(issuer).Build().Bytes()
	return r.issuerIndex.Count(start, keys.IssuerLayout)
}

func (r *Registry) headers(layout keys.Layout, elements []storage.Element) ([]Header, bool) {
	if 0 == len(elements) {
		return nil, false
	}
	headers := make([]Header, 0, len(elements))
	for _, e := range elements {
		k, err := keys.Parse(layout, e.Key)
		if nil != err {
			r.log.Errorf("list: bad key: %x  error: %s", e.Key, err)
			continue
		}
		headers = append(headers, Header{
			Owner:  k.Owner(),
			Issuer: k.Issuer(),
			Record: k.Record(),
		})
	}
	return headers, true
}

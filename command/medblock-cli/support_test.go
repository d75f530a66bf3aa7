// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/identifier"
)

func TestParseFragments(t *testing.T) {
	fragments, err := parseFragments([]string{"blood=O+", "note=a=b", "empty="})
	assert.Nil(t, err, "parse")
	assert.Equal(t, 3, len(fragments), "count")

	assert.Equal(t, identifier.MustField("blood"), fragments[0].Field, "first field")
	assert.Equal(t, "O+", fragments[0].Value, "first value")
	assert.Equal(t, "a=b", fragments[1].Value, "value keeps later separators")
	assert.Equal(t, "", fragments[2].Value, "empty value")
}

func TestParseFragmentsRejects(t *testing.T) {
	for _, item := range []string{"novalue", "=value", ""} {
		_, err := parseFragments([]string{item})
		assert.NotNil(t, err, "accepted: %q", item)
	}
}

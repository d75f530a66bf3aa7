// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/baliola/medblock/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

// a memory database with all engines and a captured stdout
type harness struct {
	app *cli.App
	out *bytes.Buffer
	m   *metadata
}

func setup(t *testing.T) *harness {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	t.Cleanup(db.Close)

	out := &bytes.Buffer{}
	app := cli.NewApp()
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}

	m := newMetadata(db, 6, 4, 3, false, app.ErrWriter, out)
	app.Metadata = map[string]interface{}{
		"config": m,
	}
	return &harness{app: app, out: out, m: m}
}

// run an action with string flags, page and limit are int flags and
// field is a string slice
func (h *harness) run(t *testing.T, action func(*cli.Context) error, flags map[string]string, fields ...string) error {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Int("page", 0, "")
	set.Int("limit", 10, "")
	slice := cli.StringSlice(fields)
	set.Var(&slice, "field", "")

	for name, value := range flags {
		switch name {
		case "page", "limit":
			if err := set.Set(name, value); nil != err {
				t.Fatalf("set %s error: %s", name, err)
			}
		default:
			set.String(name, value, "")
		}
	}

	h.out.Reset()
	return action(cli.NewContext(h.app, set, nil))
}

// decode the last printed result
func (h *harness) decode(t *testing.T, result interface{}) {
	if err := json.Unmarshal(h.out.Bytes(), result); nil != err {
		t.Fatalf("decode: %q error: %s", h.out.String(), err)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/baliola/medblock/access"
	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/group"
	"github.com/baliola/medblock/patient"
	"github.com/baliola/medblock/registry"
	"github.com/baliola/medblock/storage"
)

type metadata struct {
	database *storage.Database
	records  *registry.Registry
	consents *consent.Engine
	groups   *group.Engine
	patients *patient.Registry
	access   *access.Controller
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that only read
var readOnlyCommands = map[string]struct{}{
	"stats":        {},
	"owner-of":     {},
	"read":         {},
	"list":         {},
	"consent-show": {},
	"consent-list": {},
	"resolve":      {},
	"sessions-of":  {},
	"session-read": {},
	"session-list": {},
	"group-show":   {},
	"group-of":     {},
	"grants":       {},
	"has-access":   {},
	"member-read":  {},
	"member-list":  {},
}

func main() {

	app := cli.NewApp()
	app.Name = "medblock-cli"
	app.Usage = "inspect and modify a medblock database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: "*LevelDB database `DIRECTORY`",
		},
		cli.IntFlag{
			Name:  "code-digits",
			Value: consent.DefaultDigits,
			Usage: " digits in generated consent codes `N`",
		},
		cli.IntFlag{
			Name:  "maximum-members",
			Value: group.DefaultMembers,
			Usage: " largest group size `N`",
		},
		cli.IntFlag{
			Name:  "maximum-limit",
			Value: 100,
			Usage: " largest page size `N`",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress opening the database for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version":
			return nil
		}

		name := c.GlobalString("database")
		if "" == name {
			return ErrMissingDatabase
		}
		name, err := filepath.Abs(filepath.Clean(name))
		if nil != err {
			return err
		}

		level := "critical"
		if verbose {
			level = "info"
		}
		err = logger.Initialise(logger.Configuration{
			Directory: filepath.Dir(name),
			File:      app.Name + ".log",
			Size:      1048576,
			Count:     5,
			Levels: map[string]string{
				logger.DefaultTag: level,
			},
		})
		if nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		_, readOnly := readOnlyCommands[command]
		if verbose {
			fmt.Fprintf(e, "database: %q  read only: %t\n", name, readOnly)
		}

		database, err := storage.Open(name, readOnly)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = newMetadata(database, c.GlobalInt("code-digits"), c.GlobalInt("maximum-members"), c.GlobalInt("maximum-limit"), verbose, e, w)
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.database.Close()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// build the engines over an open database
func newMetadata(database *storage.Database, digits int, maximumMembers int, maximumLimit int, verbose bool, e io.Writer, w io.Writer) *metadata {
	m := &metadata{
		database: database,
		records:  registry.New(database),
		consents: consent.New(database, digits, nil),
		groups:   group.New(database, maximumMembers),
		patients: patient.New(database),
		verbose:  verbose,
		e:        e,
		w:        w,
	}
	m.access = access.New(m.records, m.consents, m.groups, m.patients, access.Options{
		ClaimRate:    1,
		ClaimBurst:   1,
		MaximumLimit: maximumLimit,
	})
	return m
}

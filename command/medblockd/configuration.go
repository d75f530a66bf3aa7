// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/access"
	"github.com/baliola/medblock/configuration"
	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/group"
	"github.com/baliola/medblock/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "medblock.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "medblockd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultMaximumLimit = 100

	defaultStatusInterval = 300 // seconds
	minimumStatusInterval = 10

	defaultAuditQueue = 1000

	maximumListingLimit = 1000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the LevelDB files live
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ConsentType - consent code and claim settings
type ConsentType struct {
	CodeDigits int     `gluamapper:"code_digits" json:"code_digits"`
	ClaimRate  float64 `gluamapper:"claim_rate" json:"claim_rate"`
	ClaimBurst int     `gluamapper:"claim_burst" json:"claim_burst"`
}

// GroupType - group limits
type GroupType struct {
	MaximumMembers int `gluamapper:"maximum_members" json:"maximum_members"`
}

// ListingType - paging limits
type ListingType struct {
	MaximumLimit int `gluamapper:"maximum_limit" json:"maximum_limit"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory  string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string       `gluamapper:"pidfile" json:"pidfile"`
	StatusInterval int          `gluamapper:"status_interval" json:"status_interval"`
	AuditQueue     int          `gluamapper:"audit_queue" json:"audit_queue"`
	Database       DatabaseType `gluamapper:"database" json:"database"`

	Consent ConsentType          `gluamapper:"consent" json:"consent"`
	Group   GroupType            `gluamapper:"group" json:"group"`
	Listing ListingType          `gluamapper:"listing" json:"listing"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		StatusInterval: defaultStatusInterval,
		AuditQueue:     defaultAuditQueue,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Consent: ConsentType{
			CodeDigits: consent.DefaultDigits,
			ClaimRate:  access.DefaultClaimRate,
			ClaimBurst: access.DefaultClaimBurst,
		},

		Group: GroupType{
			MaximumMembers: group.DefaultMembers,
		},

		Listing: ListingType{
			MaximumLimit: defaultMaximumLimit,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(map[string]string, len(defaultLogLevels)),
		},
	}

	// decoding fills the map in place so each load needs its own copy
	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// out of range values are errors rather than silently clamped
	if options.Consent.CodeDigits < consent.MinimumDigits || options.Consent.CodeDigits > consent.MaximumDigits {
		return nil, fmt.Errorf("consent.code_digits: %d is not in range %d..%d", options.Consent.CodeDigits, consent.MinimumDigits, consent.MaximumDigits)
	}
	if options.Consent.ClaimRate <= 0 || options.Consent.ClaimBurst < 1 {
		return nil, fmt.Errorf("consent: claim_rate: %g and claim_burst: %d must be positive", options.Consent.ClaimRate, options.Consent.ClaimBurst)
	}
	if options.Group.MaximumMembers < group.MinimumMembers || options.Group.MaximumMembers > group.MaximumMembers {
		return nil, fmt.Errorf("group.maximum_members: %d is not in range %d..%d", options.Group.MaximumMembers, group.MinimumMembers, group.MaximumMembers)
	}
	if options.Listing.MaximumLimit < 1 || options.Listing.MaximumLimit > maximumListingLimit {
		return nil, fmt.Errorf("listing.maximum_limit: %d is not in range 1..%d", options.Listing.MaximumLimit, maximumListingLimit)
	}
	if options.AuditQueue < 1 {
		return nil, fmt.Errorf("audit_queue: %d must be positive", options.AuditQueue)
	}
	if options.StatusInterval < minimumStatusInterval {
		options.StatusInterval = minimumStatusInterval
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		switch filepath.Dir(f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// done
	return options, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/configuration"
	"github.com/bitmark-inc/nftd/engine"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/rpc/listeners"
	"github.com/bitmark-inc/nftd/storage"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "nftd"

	defaultLogDirectory = "log"
	defaultLogFile      = "nftd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients       = 10
	defaultGarbageCollect   = 600 // seconds
	defaultEventSubscribers = 256
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - storage engine selection
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
	Engine    string `gluamapper:"engine" json:"engine"`
}

// LedgerType - ledger bounds and the selector seed
type LedgerType struct {
	Limits         ledger.Limits `gluamapper:"limits" json:"limits"`
	MaximumPayload int           `gluamapper:"maximum_payload" json:"maximum_payload"`
	Seed           string        `gluamapper:"seed" json:"-"`
}

// Configuration - the whole of the configuration file
type Configuration struct {
	DataDirectory  string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string       `gluamapper:"pidfile" json:"pidfile"`
	Database       DatabaseType `gluamapper:"database" json:"database"`
	Ledger         LedgerType   `gluamapper:"ledger" json:"ledger"`
	GarbageCollect int          `gluamapper:"garbage_collect" json:"garbage_collect"`
	EventQueue     int          `gluamapper:"event_queue" json:"event_queue"`
	ProfileHTTP    string       `gluamapper:"profile_http" json:"profile_http"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
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
		GarbageCollect: defaultGarbageCollect,
		EventQueue:     defaultEventSubscribers,

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
			Engine:    storage.EngineLevelDB,
		},

		Ledger: LedgerType{
			Limits:         ledger.DefaultLimits(),
			MaximumPayload: engine.DefaultMaximumPayload,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	switch options.Database.Engine {
	case storage.EngineLevelDB, storage.EngineBadger, storage.EngineMemory:
	default:
		return nil, fmt.Errorf("Database: engine %q is not supported", options.Database.Engine)
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

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = ensureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// certificates are read as PEM text, a plain name is a file
	// in the data directory
	for _, f := range []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
	} {
		if err := loadPEM(options.DataDirectory, f); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// replace a file name with its contents unless it is already PEM data
func loadPEM(directory string, item *string) error {
	if "" == *item || strings.HasPrefix(*item, pemPrefix) {
		return nil
	}
	data, err := os.ReadFile(ensureAbsolute(directory, *item))
	if nil != err {
		return err
	}
	*item = string(data)
	return nil
}

const pemPrefix = "-----BEGIN"

// make a path absolute relative to a directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

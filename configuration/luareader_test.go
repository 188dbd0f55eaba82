// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftd/configuration"
)

type listen struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
	Certificate        string   `gluamapper:"certificate"`
}

type sample struct {
	DataDirectory string   `gluamapper:"data_directory"`
	Seed          string   `gluamapper:"seed"`
	Client        listen   `gluamapper:"client_rpc"`
	Levels        []string `gluamapper:"levels"`
	Missing       string   `gluamapper:"missing"`
}

const sampleConfiguration = `
local M = {}
M.data_directory = arg[0] .. ".data"
M.seed = os.getenv("NFTD_TEST_SEED") or "none"
M.client_rpc = {
    maximum_connections = 50,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    certificate = read_file("rpc.crt"),
}
M.levels = { "info", "debug" }
M.missing = read_file("no-such-file") or "absent"
return M
`

func write(t *testing.T, directory string, name string, content string) string {
	fileName := filepath.Join(directory, name)
	err := os.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write file")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	directory := t.TempDir()
	fileName := write(t, directory, "nftd.conf", sampleConfiguration)
	write(t, directory, "rpc.crt", "CERTIFICATE")

	t.Setenv("NFTD_TEST_SEED", "abcdef")

	var s sample
	err := configuration.ParseConfigurationFile(fileName, &s)
	require.Nil(t, err, "parse")

	assert.Equal(t, fileName+".data", s.DataDirectory, "arg[0]")
	assert.Equal(t, "abcdef", s.Seed, "getenv")
	assert.Equal(t, uint64(50), s.Client.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, s.Client.Listen, "listen")
	assert.Equal(t, "CERTIFICATE", s.Client.Certificate, "read_file")
	assert.Equal(t, []string{"info", "debug"}, s.Levels, "levels")
	assert.Equal(t, "absent", s.Missing, "missing file")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	directory := t.TempDir()

	var s sample
	err := configuration.ParseConfigurationFile(filepath.Join(directory, "absent.conf"), &s)
	assert.NotNil(t, err, "missing file")

	fileName := write(t, directory, "syntax.conf", "return {")
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.NotNil(t, err, "syntax error")

	fileName = write(t, directory, "scalar.conf", "return 42")
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.NotNil(t, err, "not a table")
}

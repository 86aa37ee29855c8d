// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unityvault/unityvaultd/configuration"
	"github.com/unityvault/unityvaultd/fault"
)

type listenConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string              `gluamapper:"data_directory"`
	Database      string              `gluamapper:"database"`
	ClientRPC     listenConfiguration `gluamapper:"client_rpc"`
	Levels        map[string]string   `gluamapper:"levels"`
}

const script = `
local M = {}
M.data_directory = arg["dir"]
M.database = "vault"
M.client_rpc = {
    maximum_connections = 25,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
}
M.levels = { DEFAULT = "info", ledger = "debug" }
return M
`

func TestParseConfigurationString(t *testing.T) {
	c := testConfiguration{}
	err := configuration.ParseConfigurationString(script, &c, map[string]string{"dir": "/var/lib/vault"})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "/var/lib/vault", c.DataDirectory, "wrong data directory")
	assert.Equal(t, "vault", c.Database, "wrong database")
	assert.Equal(t, uint64(25), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, "debug", c.Levels["ledger"], "wrong level")
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(`return { database = "from-" .. arg[0]:match("([^/]+)$") }`), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	c := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "from-test.conf", c.Database, "wrong database")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &c, nil)
	assert.Equal(t, fault.ConfigurationFileNotFound, err, "missing file")

	err = configuration.ParseConfigurationFile(dir, &c, nil)
	assert.Equal(t, fault.ConfigurationFileNotFound, err, "directory as file")
}

func TestParseConfigurationNotTable(t *testing.T) {
	c := testConfiguration{}
	err := configuration.ParseConfigurationString(`return 42`, &c, nil)
	assert.Equal(t, fault.MissingParameters, err, "non table result")

	err = configuration.ParseConfigurationString(`return {`, &c, nil)
	assert.NotNil(t, err, "syntax error accepted")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for rpc package tests
package fixtures

import (
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// test directory and logger settings
const (
	dir         = "testing"
	LogCategory = "testing"
	database    = "rpc-test"
)

// SetupTestLogger - log into a local testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the testing directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// DatabaseName - storage name for tests that need a database
func DatabaseName() string {
	return database
}

// RemoveDatabase - delete the test database directory
func RemoveDatabase() {
	_ = os.RemoveAll(database + ".leveldb")
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// CertificatePair - a fresh self-signed certificate and key in PEM
func CertificatePair() (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("unityvaultd test", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}

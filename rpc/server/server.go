// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register the rpc services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/unityvault/unityvaultd/counter"
	"github.com/unityvault/unityvaultd/ledger"
	ledgerRPC "github.com/unityvault/unityvaultd/rpc/ledger"
	"github.com/unityvault/unityvaultd/rpc/node"
	tokenRPC "github.com/unityvault/unityvaultd/rpc/token"
	"github.com/unityvault/unityvaultd/storage"
)

// Create - a server with the Ledger, Token and Node services
func Create(log *logger.L, version string, connections *counter.Gauge, l *ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledgerRPC.New(log, storage.Pool.Records, storage.Pool.Instructions, l))
	_ = server.Register(tokenRPC.New(log, l))
	_ = server.Register(node.New(log, storage.Pool.Records, storage.Pool.Instructions, start, version, connections, l))

	return server
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/unityvault/unityvaultd/counter"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/rpc/ratelimit"
	"github.com/unityvault/unityvaultd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Counts - executed and rejected totals
type Counts interface {
	Counts() (uint64, uint64)
}

// Node - type for RPC calls
type Node struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Start        time.Time
	Version      string
	Records      storage.Handle
	Instructions storage.Handle
	connections  *counter.Gauge
	counts       Counts
}

// New - create the node rpc service
func New(log *logger.L, records storage.Handle, instructions storage.Handle, start time.Time, version string, connections *counter.Gauge, counts Counts) *Node {
	return &Node{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:        start,
		Version:      version,
		Records:      records,
		Instructions: instructions,
		connections:  connections,
		counts:       counts,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version      string      `json:"version"`
	Uptime       string      `json:"uptime"`
	RPCs         RPCInfo     `json:"rpcs"`
	Records      int         `json:"records"`
	Instructions int         `json:"instructions"`
	Counters     CounterInfo `json:"counters"`
}

// RPCInfo - live and peak client connections
type RPCInfo struct {
	Current uint64 `json:"current"`
	Peak    uint64 `json:"peak"`
}

// CounterInfo - execution totals since start
type CounterInfo struct {
	Executed uint64 `json:"executed"`
	Rejected uint64 `json:"rejected"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Records || nil == node.Instructions {
		return fault.DatabaseIsNotSet
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = RPCInfo{
		Current: node.connections.Current(),
		Peak:    node.connections.Peak(),
	}
	reply.Records = node.Records.Count()
	reply.Instructions = node.Instructions.Count()
	reply.Counters.Executed, reply.Counters.Rejected = node.counts.Counts()
	return nil
}

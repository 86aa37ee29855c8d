// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/unityvault/unityvaultd/counter"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/rpc/certificate"
	"github.com/unityvault/unityvaultd/rpc/fixtures"
	"github.com/unityvault/unityvaultd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	var connections counter.Gauge

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Error("register with error: ", err)
		t.FailNow()
	}

	cer, key := fixtures.CertificatePair()
	tlsCertificate, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if err != nil {
		t.Fatalf("get certificate with error: %s", err)
	}

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &connections, s, tlsCertificate)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", listen, &tlsConfig)
	if err != nil {
		t.Error("dial with error: ", err)
		t.FailNow()
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), connections.Peak(), "wrong peak connections")
}

func TestNewRPCInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tests := []struct {
		name          string
		configuration listeners.RPCConfiguration
		err           error
	}{
		{
			name:          "no connections",
			configuration: listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:2130"}},
			err:           fault.MissingParameters,
		},
		{
			name:          "no listen",
			configuration: listeners.RPCConfiguration{MaximumConnections: 1},
			err:           fault.MissingParameters,
		},
		{
			name:          "bad address",
			configuration: listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"localhost:2130"}},
			err:           fault.InvalidIpAddress,
		},
		{
			name:          "empty address",
			configuration: listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{""}},
			err:           fault.InvalidIpAddress,
		},
	}

	for _, test := range tests {
		var connections counter.Gauge
		_, err := listeners.NewRPC(&test.configuration, logger.New(fixtures.LogCategory), &connections, rpc.NewServer(), &tls.Config{})
		assert.Equal(t, test.err, err, test.name)
	}
}

func TestNewRPCListenForms(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"*:2130", "[::1]:2130", "0.0.0.0:2130"},
	}
	var connections counter.Gauge
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &connections, rpc.NewServer(), &tls.Config{})
	assert.Nil(t, err, "wrong NewRPC")
	assert.Equal(t, "*:2130", con.Listen[0], "configuration modified")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/ledger"
	"github.com/unityvault/unityvaultd/merkle"
	"github.com/unityvault/unityvaultd/rpc/ratelimit"
	"github.com/unityvault/unityvaultd/token"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Requester - applies a signed token request
type Requester interface {
	Token(*ledger.TokenRequest) (merkle.Digest, error)
}

// Token - type for RPC calls
type Token struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	requester Requester
}

// New - create the token rpc service
func New(log *logger.L, requester Requester) *Token {
	return &Token{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitToken, rateBurstToken),
		requester: requester,
	}
}

// ---

// BalanceArguments - token account to read
type BalanceArguments struct {
	Account account.Identity `json:"account"`
}

// BalanceReply - committed state of a token account
type BalanceReply struct {
	Account account.Identity `json:"account"`
	Owner   account.Identity `json:"owner"`
	Mint    account.Identity `json:"mint"`
	Amount  uint64           `json:"amount,string"`
}

// Balance - read a token account
func (t *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	h, err := token.Balance(arguments.Account)
	if nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Owner = h.Owner
	reply.Mint = h.Mint
	reply.Amount = h.Amount
	return nil
}

// ---

// SupplyArguments - mint to read
type SupplyArguments struct {
	Mint account.Identity `json:"mint"`
}

// SupplyReply - committed state of a mint
type SupplyReply struct {
	Mint      account.Identity `json:"mint"`
	Authority account.Identity `json:"authority"`
	Supply    uint64           `json:"supply,string"`
}

// Supply - read a mint
func (t *Token) Supply(arguments *SupplyArguments, reply *SupplyReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	m, err := token.Supply(arguments.Mint)
	if nil != err {
		return err
	}

	reply.Mint = arguments.Mint
	reply.Authority = m.Authority
	reply.Supply = m.Supply
	return nil
}

// ---

// ApplyReply - result of a token request
type ApplyReply struct {
	Id merkle.Digest `json:"id"`
}

// Apply - create a mint, open an account or mint tokens
func (t *Token) Apply(arguments *ledger.TokenRequest, reply *ApplyReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidArgument
	}
	if arguments.Signer.IsZero() {
		return fault.MissingSignature
	}

	id, err := t.requester.Token(arguments)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lending

import (
	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/guard"
	"github.com/unityvault/unityvaultd/record"
	"github.com/unityvault/unityvaultd/util"
)

// Transferer - moves tokens between token accounts
//
// authority must be the owner of the from account
type Transferer interface {
	Transfer(from account.Identity, to account.Identity, authority account.Identity, amount uint64) error
}

// PoolAccounts - the token accounts a pool is bound to at creation
type PoolAccounts struct {
	Mint            account.Identity
	Vault           account.Identity
	CollateralVault account.Identity
}

// PoolParameters - the terms of a new pool
type PoolParameters struct {
	Name            string
	Description     string
	AssetType       record.AssetType
	InterestPolicy  record.InterestPolicy
	InterestRate    uint64
	MinLoanAmount   uint64
	MaxLoanAmount   uint64
	LoanTerm        uint64
	CollateralRatio uint64
}

// CreatePool - initialise a lending pool
//
// the pool starts Active with its full maximum loan amount available
func CreatePool(pool *record.LendingPool, authority account.Identity, accounts PoolAccounts, parameters PoolParameters, now int64) error {
	if err := guard.RequireInitialised(pool, false); nil != err {
		return err
	}

	if "" == parameters.Name {
		return fault.MissingParameters
	}
	if !parameters.AssetType.IsValid() || !parameters.InterestPolicy.IsValid() {
		return fault.InvalidArgument
	}
	if 0 == parameters.MinLoanAmount || parameters.MinLoanAmount > parameters.MaxLoanAmount {
		return fault.InvalidLoanAmount
	}
	if 0 == parameters.CollateralRatio {
		return fault.InvalidArgument
	}
	if accounts.Vault == accounts.CollateralVault {
		return fault.DuplicateAccount
	}

	*pool = record.LendingPool{
		Header: record.Header{
			Initialised: true,
			Owner:       authority,
		},
		Mint:            accounts.Mint,
		Vault:           accounts.Vault,
		CollateralVault: accounts.CollateralVault,
		Name:            parameters.Name,
		Description:     parameters.Description,
		AssetType:       parameters.AssetType,
		InterestPolicy:  parameters.InterestPolicy,
		InterestRate:    parameters.InterestRate,
		MinLoanAmount:   parameters.MinLoanAmount,
		MaxLoanAmount:   parameters.MaxLoanAmount,
		LoanTerm:        parameters.LoanTerm,
		CollateralRatio: parameters.CollateralRatio,
		Status:          record.PoolActive,
		TotalAvailable:  parameters.MaxLoanAmount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return nil
}

// SetPoolStatus - pause, resume or close a pool
//
// Closed is terminal
func SetPoolStatus(pool *record.LendingPool, signer account.Identity, status record.PoolStatus, now int64) error {
	if err := guard.RequireInitialised(pool, true); nil != err {
		return err
	}
	if err := guard.RequireOwner(pool.Owner, signer); nil != err {
		return err
	}
	if !status.IsValid() {
		return fault.InvalidArgument
	}
	if record.PoolClosed == pool.Status {
		return fault.InvalidPoolStatus
	}

	pool.Status = status
	pool.UpdatedAt = now
	return nil
}

// Deposit - the pool authority adds liquidity to the vault
func Deposit(pool *record.LendingPool, signer account.Identity, source account.Identity, amount uint64, now int64, t Transferer) error {
	if err := guard.RequireInitialised(pool, true); nil != err {
		return err
	}
	if err := guard.RequireOwner(pool.Owner, signer); nil != err {
		return err
	}
	if record.PoolClosed == pool.Status {
		return fault.PoolNotActive
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	deposited, err := util.SafeAdd(pool.TotalDeposited, amount)
	if nil != err {
		return err
	}
	available, err := util.SafeAdd(pool.TotalAvailable, amount)
	if nil != err {
		return err
	}

	if err := t.Transfer(source, pool.Vault, signer, amount); nil != err {
		return err
	}

	pool.TotalDeposited = deposited
	pool.TotalAvailable = available
	pool.UpdatedAt = now
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/unityvault/unityvaultd/guard"
	"github.com/unityvault/unityvaultd/instruction"
	"github.com/unityvault/unityvaultd/lending"
	"github.com/unityvault/unityvaultd/record"
)

// pool(w), authority(s), mint, vault, collateral vault
//
// both vaults must already belong to the pool address so that the
// pool can later authorise transfers out of them
func (s *state) createPool(tx *instruction.CreatePool) error {
	pool := &record.LendingPool{}
	if err := s.load(0, pool); nil != err {
		return err
	}
	if err := guard.RequireInitialised(pool, false); nil != err {
		return err
	}

	poolAddress := s.key(0)
	mint := s.key(2)
	if _, err := s.host.SupplyOf(mint); nil != err {
		return err
	}
	vault, err := s.host.BalanceOf(s.key(3))
	if nil != err {
		return err
	}
	if err := guard.RequireAddress(vault.Owner, poolAddress); nil != err {
		return err
	}
	if err := guard.RequireAddress(vault.Mint, mint); nil != err {
		return err
	}
	collateralVault, err := s.host.BalanceOf(s.key(4))
	if nil != err {
		return err
	}
	if err := guard.RequireAddress(collateralVault.Owner, poolAddress); nil != err {
		return err
	}

	accounts := lending.PoolAccounts{
		Mint:            mint,
		Vault:           s.key(3),
		CollateralVault: s.key(4),
	}
	parameters := lending.PoolParameters{
		Name:            tx.Name,
		Description:     tx.Description,
		AssetType:       record.AssetType(tx.AssetType),
		InterestPolicy:  record.InterestPolicy(tx.InterestPolicy),
		InterestRate:    tx.InterestRate,
		MinLoanAmount:   tx.MinLoanAmount,
		MaxLoanAmount:   tx.MaxLoanAmount,
		LoanTerm:        tx.LoanTerm,
		CollateralRatio: tx.CollateralRatio,
	}
	return lending.CreatePool(pool, s.key(1), accounts, parameters, s.now)
}

// pool(w), authority(s), authority token, vault
func (s *state) deposit(tx *instruction.Deposit) error {
	pool, err := s.loadPool(0)
	if nil != err {
		return err
	}
	if err := guard.RequireAddress(s.key(3), pool.Vault); nil != err {
		return err
	}
	return lending.Deposit(pool, s.key(1), s.key(2), tx.Amount, s.now, s.host)
}

// pool(w), authority(s)
func (s *state) setPoolStatus(tx *instruction.SetPoolStatus) error {
	pool, err := s.loadPool(0)
	if nil != err {
		return err
	}
	return lending.SetPoolStatus(pool, s.key(1), record.PoolStatus(tx.Status), s.now)
}

// loan(w), pool(w), borrower(s)
func (s *state) requestLoan(tx *instruction.RequestLoan) error {
	loan := &record.Loan{}
	if err := s.load(0, loan); nil != err {
		return err
	}
	pool, err := s.loadPool(1)
	if nil != err {
		return err
	}
	return lending.RequestLoan(pool, loan, s.key(1), s.key(2), tx.Amount, tx.Duration, s.now)
}

// loan(w), pool(w), authority(s), borrower(s), borrower collateral,
// collateral vault, vault, borrower token
func (s *state) approveLoan() error {
	loan, pool, err := s.loadLoan()
	if nil != err {
		return err
	}
	if err := guard.RequireOwner(loan.Owner, s.key(3)); nil != err {
		return err
	}
	if err := guard.RequireAddress(s.key(5), pool.CollateralVault); nil != err {
		return err
	}
	if err := guard.RequireAddress(s.key(6), pool.Vault); nil != err {
		return err
	}
	borrower := lending.BorrowerAccounts{
		Token:      s.key(7),
		Collateral: s.key(4),
	}
	return lending.ApproveLoan(pool, loan, s.key(1), s.key(2), borrower, s.now, s.host)
}

// loan(w), pool(w), signer(s)
func (s *state) cancelLoan() error {
	loan, pool, err := s.loadLoan()
	if nil != err {
		return err
	}
	return lending.CancelLoan(pool, loan, s.key(1), s.key(2), s.now)
}

// loan(w), pool(w), borrower(s), borrower token, vault,
// collateral vault, borrower collateral
func (s *state) makePayment(tx *instruction.MakePayment) error {
	loan, pool, err := s.loadLoan()
	if nil != err {
		return err
	}
	if err := guard.RequireAddress(s.key(4), pool.Vault); nil != err {
		return err
	}
	if err := guard.RequireAddress(s.key(5), pool.CollateralVault); nil != err {
		return err
	}
	borrower := lending.BorrowerAccounts{
		Token:      s.key(3),
		Collateral: s.key(6),
	}
	return lending.MakePayment(pool, loan, s.key(1), s.key(2), borrower, tx.Amount, s.now, s.host)
}

// loan(w), pool(w), liquidator(s), vault, liquidator token
func (s *state) liquidateLoan() error {
	loan, pool, err := s.loadLoan()
	if nil != err {
		return err
	}
	if err := guard.RequireAddress(s.key(3), pool.Vault); nil != err {
		return err
	}
	return lending.LiquidateLoan(pool, loan, s.key(1), s.key(4), s.now, s.host)
}

// an initialised pool at the given position
func (s *state) loadPool(index int) (*record.LendingPool, error) {
	pool := &record.LendingPool{}
	if err := s.load(index, pool); nil != err {
		return nil, err
	}
	if err := guard.RequireInitialised(pool, true); nil != err {
		return nil, err
	}
	return pool, nil
}

// an initialised loan at position 0 and its pool at position 1
func (s *state) loadLoan() (*record.Loan, *record.LendingPool, error) {
	loan := &record.Loan{}
	if err := s.load(0, loan); nil != err {
		return nil, nil, err
	}
	if err := guard.RequireInitialised(loan, true); nil != err {
		return nil, nil, err
	}
	pool, err := s.loadPool(1)
	if nil != err {
		return nil, nil, err
	}
	return loan, pool, nil
}

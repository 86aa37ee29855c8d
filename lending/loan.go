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

// percentage scale for the collateral ratio
const collateralDivisor = 100

// BorrowerAccounts - the borrower's token accounts
type BorrowerAccounts struct {
	Token      account.Identity // receives principal, pays repayments
	Collateral account.Identity // supplies and receives back collateral
}

// check the loan belongs to the pool and both are live
func requireLoanOfPool(pool *record.LendingPool, loan *record.Loan, poolAddress account.Identity) error {
	if err := guard.RequireInitialised(pool, true); nil != err {
		return err
	}
	if err := guard.RequireInitialised(loan, true); nil != err {
		return err
	}
	return guard.RequireAddress(loan.Pool, poolAddress)
}

// RequestLoan - reserve pool funds for a new Pending loan
func RequestLoan(pool *record.LendingPool, loan *record.Loan, poolAddress account.Identity, borrower account.Identity, amount uint64, duration int64, now int64) error {
	if err := guard.RequireInitialised(pool, true); nil != err {
		return err
	}
	if err := guard.RequireInitialised(loan, false); nil != err {
		return err
	}
	if record.PoolActive != pool.Status {
		return fault.PoolNotActive
	}
	if amount < pool.MinLoanAmount || amount > pool.MaxLoanAmount {
		return fault.InvalidLoanAmount
	}
	if duration <= 0 {
		return fault.InvalidDuration
	}
	if amount > pool.TotalAvailable {
		return fault.InsufficientFunds
	}

	collateral, err := util.MulDiv(amount, pool.CollateralRatio, collateralDivisor)
	if nil != err {
		return err
	}

	requested := record.Loan{
		Header: record.Header{
			Initialised: true,
			Owner:       borrower,
		},
		Pool:             poolAddress,
		Amount:           amount,
		InterestRate:     pool.InterestRate,
		Term:             pool.LoanTerm,
		InterestPolicy:   pool.InterestPolicy,
		Duration:         duration,
		CollateralAmount: collateral,
		RemainingAmount:  amount,
		Status:           record.LoanPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// interest due at maturity must be representable
	matured := requested
	matured.StartTime = 0
	if _, err := Interest(&matured, duration); nil != err {
		return err
	}

	*loan = requested
	pool.TotalAvailable -= amount
	pool.UpdatedAt = now
	return nil
}

// ApproveLoan - lock the collateral, disburse the principal and start the loan clock
//
// the borrower authorises the collateral transfer and the pool
// address authorises the disbursement from its vault
func ApproveLoan(pool *record.LendingPool, loan *record.Loan, poolAddress account.Identity, signer account.Identity, borrower BorrowerAccounts, now int64, t Transferer) error {
	if err := requireLoanOfPool(pool, loan, poolAddress); nil != err {
		return err
	}
	if err := guard.RequireOwner(pool.Owner, signer); nil != err {
		return err
	}
	if record.LoanPending != loan.Status {
		return fault.InvalidLoanStatus
	}
	if record.PoolActive != pool.Status {
		return fault.PoolNotActive
	}

	due, err := util.SafeAddInt64(now, loan.Duration)
	if nil != err {
		return err
	}
	totalLoans, err := util.SafeAdd(pool.TotalLoans, 1)
	if nil != err {
		return err
	}
	totalBorrowed, err := util.SafeAdd(pool.TotalBorrowed, loan.Amount)
	if nil != err {
		return err
	}

	if loan.CollateralAmount > 0 {
		err := t.Transfer(borrower.Collateral, pool.CollateralVault, loan.Owner, loan.CollateralAmount)
		if nil != err {
			return err
		}
	}
	if err := t.Transfer(pool.Vault, borrower.Token, poolAddress, loan.Amount); nil != err {
		return err
	}

	loan.Status = record.LoanActive
	loan.StartTime = now
	loan.ApprovedAt = now
	loan.DueTime = due
	loan.UpdatedAt = now

	pool.TotalLoans = totalLoans
	pool.TotalBorrowed = totalBorrowed
	pool.UpdatedAt = now
	return nil
}

// CancelLoan - withdraw a Pending loan and release its reservation
//
// either the borrower or the pool authority may cancel
func CancelLoan(pool *record.LendingPool, loan *record.Loan, poolAddress account.Identity, signer account.Identity, now int64) error {
	if err := requireLoanOfPool(pool, loan, poolAddress); nil != err {
		return err
	}
	if signer != loan.Owner && signer != pool.Owner {
		return fault.IllegalOwner
	}
	if record.LoanPending != loan.Status {
		return fault.InvalidLoanStatus
	}

	available, err := util.SafeAdd(pool.TotalAvailable, loan.Amount)
	if nil != err {
		return err
	}

	loan.Status = record.LoanCancelled
	loan.UpdatedAt = now

	pool.TotalAvailable = available
	pool.UpdatedAt = now
	return nil
}

// MakePayment - repay principal together with any interest accrued and unpaid
//
// on the final payment the loan completes and its collateral is returned
func MakePayment(pool *record.LendingPool, loan *record.Loan, poolAddress account.Identity, signer account.Identity, borrower BorrowerAccounts, amount uint64, now int64, t Transferer) error {
	if err := requireLoanOfPool(pool, loan, poolAddress); nil != err {
		return err
	}
	if err := guard.RequireOwner(loan.Owner, signer); nil != err {
		return err
	}
	if record.LoanActive != loan.Status {
		return fault.InvalidLoanStatus
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	remaining, err := util.SafeSub(loan.RemainingAmount, amount)
	if nil != err {
		return err
	}
	owed, err := interestOwed(loan, now)
	if nil != err {
		return err
	}
	total, err := util.SafeAdd(amount, owed)
	if nil != err {
		return err
	}
	interestPaid, err := util.SafeAdd(loan.InterestPaid, owed)
	if nil != err {
		return err
	}
	totalInterest, err := util.SafeAdd(pool.TotalInterest, owed)
	if nil != err {
		return err
	}
	available, err := util.SafeAdd(pool.TotalAvailable, amount)
	if nil != err {
		return err
	}
	borrowed := pool.TotalBorrowed
	if 0 == remaining {
		borrowed, err = util.SafeSub(pool.TotalBorrowed, loan.Amount)
		if nil != err {
			return err
		}
	}

	if err := t.Transfer(borrower.Token, pool.Vault, signer, total); nil != err {
		return err
	}
	if 0 == remaining && loan.CollateralAmount > 0 {
		err := t.Transfer(pool.CollateralVault, borrower.Collateral, poolAddress, loan.CollateralAmount)
		if nil != err {
			return err
		}
	}

	loan.RemainingAmount = remaining
	loan.InterestPaid = interestPaid
	loan.UpdatedAt = now
	if 0 == remaining {
		loan.Status = record.LoanCompleted
	}

	pool.TotalInterest = totalInterest
	pool.TotalAvailable = available
	pool.TotalBorrowed = borrowed
	pool.UpdatedAt = now
	return nil
}

// LiquidateLoan - default an overdue loan, paying principal plus
// interest from the vault to the liquidator
func LiquidateLoan(pool *record.LendingPool, loan *record.Loan, poolAddress account.Identity, liquidatorToken account.Identity, now int64, t Transferer) error {
	if err := requireLoanOfPool(pool, loan, poolAddress); nil != err {
		return err
	}
	if record.LoanActive != loan.Status {
		return fault.InvalidLoanStatus
	}
	if now <= loan.DueTime {
		return fault.LoanNotOverdue
	}

	interest, err := Interest(loan, now)
	if nil != err {
		return err
	}
	amount, err := util.SafeAdd(loan.Amount, interest)
	if nil != err {
		return err
	}
	borrowed, err := util.SafeSub(pool.TotalBorrowed, loan.Amount)
	if nil != err {
		return err
	}

	if err := t.Transfer(pool.Vault, liquidatorToken, poolAddress, amount); nil != err {
		return err
	}

	loan.Status = record.LoanDefaulted
	loan.UpdatedAt = now

	pool.TotalBorrowed = borrowed
	pool.UpdatedAt = now
	return nil
}

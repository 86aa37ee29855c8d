// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lending

import (
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/record"
	"github.com/unityvault/unityvaultd/util"
)

// interest scaling
const (
	// rate is in basis points per term unit
	fixedTermDivisor = 10000

	// rate is an annual percentage
	secondsPerYear     = 365 * 24 * 3600
	elapsedTimeDivisor = secondsPerYear * 100
)

// Interest - total interest accrued on the loan principal at time now
func Interest(loan *record.Loan, now int64) (uint64, error) {
	switch loan.InterestPolicy {

	case record.FixedTerm:
		return util.MulMulDiv(loan.Amount, loan.InterestRate, loan.Term, fixedTermDivisor)

	case record.ElapsedTime:
		if now < loan.StartTime {
			return 0, fault.InvalidTimestamp
		}
		return util.MulMulDiv(loan.Amount, loan.InterestRate, uint64(now-loan.StartTime), elapsedTimeDivisor)

	default:
		return 0, fault.InvalidArgument
	}
}

// interest accrued but not yet paid
func interestOwed(loan *record.Loan, now int64) (uint64, error) {
	accrued, err := Interest(loan, now)
	if nil != err {
		return 0, err
	}
	if accrued <= loan.InterestPaid {
		return 0, nil
	}
	return accrued - loan.InterestPaid, nil
}

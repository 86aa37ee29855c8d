// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/unityvault/unityvaultd/account"
)

// maximum sizes of lending text fields
const (
	MaxPoolNameLength        = 64
	MaxPoolDescriptionLength = 256
)

// AssetType - the class of real world asset backing a pool
type AssetType uint8

// asset types
const (
	RealEstate AssetType = iota
	Vehicle
	Equipment
	OtherAsset
	assetTypeLimit
)

// InterestPolicy - how interest on a loan is computed
type InterestPolicy uint8

// interest policies
const (
	// principal * rate * term / 10000
	FixedTerm InterestPolicy = iota
	// principal * rate * elapsed seconds / (seconds per year * 100)
	ElapsedTime
	interestPolicyLimit
)

// PoolStatus - lifecycle of a lending pool
type PoolStatus uint8

// pool states
const (
	PoolActive PoolStatus = iota
	PoolPaused
	PoolClosed
	poolStatusLimit
)

// LoanStatus - lifecycle of a loan
type LoanStatus uint8

// loan states
//   Pending -> Active -> Completed
//   Pending -> Cancelled
//   Active  -> Defaulted
const (
	LoanPending LoanStatus = iota
	LoanActive
	LoanCompleted
	LoanDefaulted
	LoanCancelled
	loanStatusLimit
)

// LendingPool - a pool of funds lent against collateral
//
// Owner is the pool authority
type LendingPool struct {
	Header
	Mint            account.Identity `json:"mint"`
	Vault           account.Identity `json:"vault"`
	CollateralVault account.Identity `json:"collateralVault"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	AssetType       AssetType        `json:"assetType"`
	InterestPolicy  InterestPolicy   `json:"interestPolicy"`
	InterestRate    uint64           `json:"interestRate"`
	MinLoanAmount   uint64           `json:"minLoanAmount"`
	MaxLoanAmount   uint64           `json:"maxLoanAmount"`
	LoanTerm        uint64           `json:"loanTerm"`
	CollateralRatio uint64           `json:"collateralRatio"`
	Status          PoolStatus       `json:"status"`
	TotalLoans      uint64           `json:"totalLoans"`
	TotalBorrowed   uint64           `json:"totalBorrowed"`
	TotalDeposited  uint64           `json:"totalDeposited"`
	TotalAvailable  uint64           `json:"totalAvailable"`
	TotalInterest   uint64           `json:"totalInterest"`
	CreatedAt       int64            `json:"createdAt"`
	UpdatedAt       int64            `json:"updatedAt"`
}

// Tag - record type
func (pool *LendingPool) Tag() TagType {
	return LendingPoolTag
}

// Fields - schema
func (pool *LendingPool) Fields() []Field {
	return append(pool.headerFields("authority"),
		AccountField("mint", &pool.Mint),
		AccountField("vault", &pool.Vault),
		AccountField("collateral_vault", &pool.CollateralVault),
		StringField("name", &pool.Name, MaxPoolNameLength),
		StringField("description", &pool.Description, MaxPoolDescriptionLength),
		EnumField("asset_type", &pool.AssetType, int(assetTypeLimit)),
		EnumField("interest_policy", &pool.InterestPolicy, int(interestPolicyLimit)),
		Uint64Field("interest_rate", &pool.InterestRate),
		Uint64Field("min_loan_amount", &pool.MinLoanAmount),
		Uint64Field("max_loan_amount", &pool.MaxLoanAmount),
		Uint64Field("loan_term", &pool.LoanTerm),
		Uint64Field("collateral_ratio", &pool.CollateralRatio),
		EnumField("status", &pool.Status, int(poolStatusLimit)),
		Uint64Field("total_loans", &pool.TotalLoans),
		Uint64Field("total_borrowed", &pool.TotalBorrowed),
		Uint64Field("total_deposited", &pool.TotalDeposited),
		Uint64Field("total_available", &pool.TotalAvailable),
		Uint64Field("total_interest", &pool.TotalInterest),
		Int64Field("created_at", &pool.CreatedAt),
		Int64Field("updated_at", &pool.UpdatedAt),
	)
}

// Loan - a single loan drawn from a pool
//
// Owner is the borrower
type Loan struct {
	Header
	Pool             account.Identity `json:"pool"`
	Amount           uint64           `json:"amount"`
	InterestRate     uint64           `json:"interestRate"`
	Term             uint64           `json:"term"`
	InterestPolicy   InterestPolicy   `json:"interestPolicy"`
	Duration         int64            `json:"duration"`
	CollateralAmount uint64           `json:"collateralAmount"`
	RemainingAmount  uint64           `json:"remainingAmount"`
	InterestPaid     uint64           `json:"interestPaid"`
	StartTime        int64            `json:"startTime"`
	DueTime          int64            `json:"dueTime"`
	Status           LoanStatus       `json:"status"`
	CreatedAt        int64            `json:"createdAt"`
	ApprovedAt       int64            `json:"approvedAt"`
	UpdatedAt        int64            `json:"updatedAt"`
}

// Tag - record type
func (loan *Loan) Tag() TagType {
	return LoanTag
}

// Fields - schema
func (loan *Loan) Fields() []Field {
	return append(loan.headerFields("borrower"),
		AccountField("pool", &loan.Pool),
		Uint64Field("amount", &loan.Amount),
		Uint64Field("interest_rate", &loan.InterestRate),
		Uint64Field("term", &loan.Term),
		EnumField("interest_policy", &loan.InterestPolicy, int(interestPolicyLimit)),
		Int64Field("duration", &loan.Duration),
		Uint64Field("collateral_amount", &loan.CollateralAmount),
		Uint64Field("remaining_amount", &loan.RemainingAmount),
		Uint64Field("interest_paid", &loan.InterestPaid),
		Int64Field("start_time", &loan.StartTime),
		Int64Field("due_time", &loan.DueTime),
		EnumField("status", &loan.Status, int(loanStatusLimit)),
		Int64Field("created_at", &loan.CreatedAt),
		Int64Field("approved_at", &loan.ApprovedAt),
		Int64Field("updated_at", &loan.UpdatedAt),
	)
}

// IsValid - within the enumeration
func (a AssetType) IsValid() bool { return a < assetTypeLimit }

// IsValid - within the enumeration
func (p InterestPolicy) IsValid() bool { return p < interestPolicyLimit }

// IsValid - within the enumeration
func (s PoolStatus) IsValid() bool { return s < poolStatusLimit }

func (a AssetType) String() string {
	return name(uint8(a), "RealEstate", "Vehicle", "Equipment", "Other")
}

func (p InterestPolicy) String() string {
	return name(uint8(p), "FixedTerm", "ElapsedTime")
}

func (s PoolStatus) String() string {
	return name(uint8(s), "Active", "Paused", "Closed")
}

func (s LoanStatus) String() string {
	return name(uint8(s), "Pending", "Active", "Completed", "Defaulted", "Cancelled")
}

// MarshalText - JSON as names
func (a AssetType) MarshalText() ([]byte, error)      { return []byte(a.String()), nil }
func (p InterestPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (s PoolStatus) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }
func (s LoanStatus) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }

// index into a list of names
func name(i uint8, names ...string) string {
	if int(i) < len(names) {
		return names[i]
	}
	return "*unknown*"
}

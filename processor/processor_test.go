// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/instruction"
	"github.com/unityvault/unityvaultd/processor"
	"github.com/unityvault/unityvaultd/processor/mocks"
	"github.com/unityvault/unityvaultd/record"
)

// set flags from the opcode's shape so each test only names identities
func refs(opcode instruction.OpcodeType, items ...*processor.Ref) []*processor.Ref {
	shape := instruction.Shape(opcode)
	for i, r := range items {
		if i < len(shape) {
			r.Signer = shape[i].Signer
			r.Writable = shape[i].Writable
		}
	}
	return items
}

func ref(b byte) *processor.Ref {
	return &processor.Ref{Identity: account.Identity{b}}
}

func pack(t *testing.T, i instruction.Instruction) instruction.Packed {
	packed, err := instruction.Pack(i)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func TestProcessInvalidInstruction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)

	err := processor.Process(instruction.Packed{0x7f}, nil, 0, host)
	assert.Equal(t, fault.InvalidInstruction, err, "unknown opcode accepted")

	err = processor.Process(instruction.Packed{}, nil, 0, host)
	assert.Equal(t, fault.InvalidInstruction, err, "empty instruction accepted")

	// payload too short for RequestLoan
	packed := instruction.Packed{byte(instruction.RequestLoanTag), 0x01}
	err = processor.Process(packed, refs(instruction.RequestLoanTag, ref(1), ref(2), ref(3)), 0, host)
	assert.Equal(t, fault.InvalidInstruction, err, "short payload accepted")
}

func TestProcessShape(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	packed := pack(t, &instruction.CancelLoan{})

	err := processor.Process(packed, refs(instruction.CancelLoanTag, ref(1), ref(2)), 0, host)
	assert.Equal(t, fault.InvalidAccountData, err, "missing record accepted")

	err = processor.Process(packed, refs(instruction.CancelLoanTag, ref(1), ref(2), ref(3), ref(4)), 0, host)
	assert.Equal(t, fault.InvalidAccountData, err, "extra record accepted")

	r := refs(instruction.CancelLoanTag, ref(1), ref(2), ref(3))
	r[2].Signer = false
	err = processor.Process(packed, r, 0, host)
	assert.Equal(t, fault.MissingSignature, err, "unsigned instruction accepted")

	r = refs(instruction.CancelLoanTag, ref(1), ref(2), ref(3))
	r[1].Writable = false
	err = processor.Process(packed, r, 0, host)
	assert.Equal(t, fault.NotWritable, err, "read only record accepted")

	r = refs(instruction.CancelLoanTag, ref(1), ref(1), ref(3))
	err = processor.Process(packed, r, 0, host)
	assert.Equal(t, fault.DuplicateAccount, err, "aliased records accepted")

	// well formed but both records are empty
	r = refs(instruction.CancelLoanTag, ref(1), ref(2), ref(3))
	err = processor.Process(packed, r, 0, host)
	assert.Equal(t, fault.UninitialisedAccount, err, "uninitialised loan accepted")
	assert.Nil(t, r[0].Data, "failed instruction wrote loan")
}

func TestProcessWrongRecordType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)

	// a governance record where a pool is expected
	g := &record.Governance{Header: record.Header{Initialised: true}}
	data, err := record.Pack(g)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	pool := ref(1)
	pool.Data = data
	err = processor.Process(pack(t, &instruction.SetPoolStatus{Status: 1}), refs(instruction.SetPoolStatusTag, pool, ref(2)), 0, host)
	assert.Equal(t, fault.InvalidRecordSize, err, "wrong record accepted")
}

type lendingActors struct {
	pool               *processor.Ref
	loan               *processor.Ref
	authority          *processor.Ref
	borrower           *processor.Ref
	mint               *processor.Ref
	vault              *processor.Ref
	collateralVault    *processor.Ref
	borrowerToken      *processor.Ref
	borrowerCollateral *processor.Ref
	liquidator         *processor.Ref
	liquidatorToken    *processor.Ref
}

func newLendingActors() *lendingActors {
	return &lendingActors{
		pool:               ref(0x10),
		loan:               ref(0x11),
		authority:          ref(0x01),
		borrower:           ref(0x02),
		mint:               ref(0x20),
		vault:              ref(0x21),
		collateralVault:    ref(0x22),
		borrowerToken:      ref(0x23),
		borrowerCollateral: ref(0x24),
		liquidator:         ref(0x03),
		liquidatorToken:    ref(0x25),
	}
}

func createPool(t *testing.T, a *lendingActors, host *mocks.MockHost) {
	collateralMint := account.Identity{0x30}
	host.EXPECT().SupplyOf(a.mint.Identity).Return(uint64(1000000), nil).Times(1)
	host.EXPECT().BalanceOf(a.vault.Identity).Return(processor.Holding{Owner: a.pool.Identity, Mint: a.mint.Identity}, nil).Times(1)
	host.EXPECT().BalanceOf(a.collateralVault.Identity).Return(processor.Holding{Owner: a.pool.Identity, Mint: collateralMint}, nil).Times(1)

	i := &instruction.CreatePool{
		Name:            "Harbour warehouses",
		AssetType:       uint8(record.RealEstate),
		InterestPolicy:  uint8(record.FixedTerm),
		InterestRate:    500,
		MinLoanAmount:   100,
		MaxLoanAmount:   100000,
		LoanTerm:        2,
		CollateralRatio: 150,
	}
	r := refs(instruction.CreatePoolTag, a.pool, a.authority, a.mint, a.vault, a.collateralVault)
	if err := processor.Process(pack(t, i), r, 1000, host); nil != err {
		t.Fatalf("create pool error: %s", err)
	}
}

func requestLoan(t *testing.T, a *lendingActors, host *mocks.MockHost) {
	r := refs(instruction.RequestLoanTag, a.loan, a.pool, a.borrower)
	i := &instruction.RequestLoan{Amount: 10000, Duration: 3600}
	if err := processor.Process(pack(t, i), r, 1100, host); nil != err {
		t.Fatalf("request loan error: %s", err)
	}
}

func approveLoan(t *testing.T, a *lendingActors, host *mocks.MockHost) {
	gomock.InOrder(
		host.EXPECT().Transfer(a.borrowerCollateral.Identity, a.collateralVault.Identity, a.borrower.Identity, uint64(15000)).Return(nil),
		host.EXPECT().Transfer(a.vault.Identity, a.borrowerToken.Identity, a.pool.Identity, uint64(10000)).Return(nil),
	)
	r := refs(instruction.ApproveLoanTag, a.loan, a.pool, a.authority, a.borrower, a.borrowerCollateral, a.collateralVault, a.vault, a.borrowerToken)
	if err := processor.Process(pack(t, &instruction.ApproveLoan{}), r, 1200, host); nil != err {
		t.Fatalf("approve loan error: %s", err)
	}
}

func unpackPool(t *testing.T, r *processor.Ref) *record.LendingPool {
	pool := &record.LendingPool{}
	if err := record.Unpack(r.Data, pool); nil != err {
		t.Fatalf("unpack pool error: %s", err)
	}
	return pool
}

func unpackLoan(t *testing.T, r *processor.Ref) *record.Loan {
	loan := &record.Loan{}
	if err := record.Unpack(r.Data, loan); nil != err {
		t.Fatalf("unpack loan error: %s", err)
	}
	return loan
}

func TestLoanLifecycle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	a := newLendingActors()

	createPool(t, a, host)
	pool := unpackPool(t, a.pool)
	assert.Equal(t, record.LendingPoolTag, record.TagType(a.pool.Data[0]), "wrong tag")
	assert.Equal(t, a.authority.Identity, pool.Owner, "wrong authority")
	assert.Equal(t, a.vault.Identity, pool.Vault, "wrong vault")
	assert.Equal(t, uint64(100000), pool.TotalAvailable, "wrong available")

	requestLoan(t, a, host)
	loan := unpackLoan(t, a.loan)
	assert.Equal(t, record.LoanPending, loan.Status, "wrong loan status")
	assert.Equal(t, uint64(15000), loan.CollateralAmount, "wrong collateral")
	assert.Equal(t, uint64(90000), unpackPool(t, a.pool).TotalAvailable, "reservation not made")

	approveLoan(t, a, host)
	loan = unpackLoan(t, a.loan)
	assert.Equal(t, record.LoanActive, loan.Status, "wrong loan status")
	assert.Equal(t, int64(1200+3600), loan.DueTime, "wrong due time")

	// interest is 10000 * 500 * 2 / 10000
	gomock.InOrder(
		host.EXPECT().Transfer(a.borrowerToken.Identity, a.vault.Identity, a.borrower.Identity, uint64(11000)).Return(nil),
		host.EXPECT().Transfer(a.collateralVault.Identity, a.borrowerCollateral.Identity, a.pool.Identity, uint64(15000)).Return(nil),
	)
	r := refs(instruction.MakePaymentTag, a.loan, a.pool, a.borrower, a.borrowerToken, a.vault, a.collateralVault, a.borrowerCollateral)
	err := processor.Process(pack(t, &instruction.MakePayment{Amount: 10000}), r, 1300, host)
	assert.Nil(t, err, "payment failed")

	loan = unpackLoan(t, a.loan)
	assert.Equal(t, record.LoanCompleted, loan.Status, "wrong loan status")
	assert.Equal(t, uint64(0), loan.RemainingAmount, "wrong remaining")
	pool = unpackPool(t, a.pool)
	assert.Equal(t, uint64(1000), pool.TotalInterest, "wrong interest")
	assert.Equal(t, uint64(0), pool.TotalBorrowed, "wrong borrowed")
	assert.Equal(t, uint64(100000), pool.TotalAvailable, "wrong available")
}

func TestApproveFailureLeavesRecords(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	a := newLendingActors()
	createPool(t, a, host)
	requestLoan(t, a, host)

	loanBefore := append([]byte{}, a.loan.Data...)
	poolBefore := append([]byte{}, a.pool.Data...)

	host.EXPECT().Transfer(a.borrowerCollateral.Identity, a.collateralVault.Identity, a.borrower.Identity, uint64(15000)).Return(fault.InsufficientFunds)

	r := refs(instruction.ApproveLoanTag, a.loan, a.pool, a.authority, a.borrower, a.borrowerCollateral, a.collateralVault, a.vault, a.borrowerToken)
	err := processor.Process(pack(t, &instruction.ApproveLoan{}), r, 1200, host)
	assert.Equal(t, fault.InsufficientFunds, err, "wrong error")
	assert.True(t, bytes.Equal(loanBefore, a.loan.Data), "loan modified")
	assert.True(t, bytes.Equal(poolBefore, a.pool.Data), "pool modified")
}

func TestApproveWrongVault(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	a := newLendingActors()
	createPool(t, a, host)
	requestLoan(t, a, host)

	other := ref(0x99)
	r := refs(instruction.ApproveLoanTag, a.loan, a.pool, a.authority, a.borrower, a.borrowerCollateral, a.collateralVault, other, a.borrowerToken)
	err := processor.Process(pack(t, &instruction.ApproveLoan{}), r, 1200, host)
	assert.Equal(t, fault.WrongAccount, err, "substituted vault accepted")

	r = refs(instruction.ApproveLoanTag, a.loan, a.pool, a.authority, a.liquidator, a.borrowerCollateral, a.collateralVault, a.vault, a.borrowerToken)
	err = processor.Process(pack(t, &instruction.ApproveLoan{}), r, 1200, host)
	assert.Equal(t, fault.IllegalOwner, err, "substituted borrower accepted")
}

func TestCreatePoolForeignVault(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	a := newLendingActors()

	host.EXPECT().SupplyOf(a.mint.Identity).Return(uint64(1), nil)
	host.EXPECT().BalanceOf(a.vault.Identity).Return(processor.Holding{Owner: a.authority.Identity, Mint: a.mint.Identity}, nil)

	r := refs(instruction.CreatePoolTag, a.pool, a.authority, a.mint, a.vault, a.collateralVault)
	err := processor.Process(pack(t, &instruction.CreatePool{Name: "x", MinLoanAmount: 1, MaxLoanAmount: 2, CollateralRatio: 1}), r, 1000, host)
	assert.Equal(t, fault.WrongAccount, err, "vault owned by authority accepted")
	assert.Nil(t, a.pool.Data, "pool written")
}

func TestLiquidate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	a := newLendingActors()
	createPool(t, a, host)
	requestLoan(t, a, host)
	approveLoan(t, a, host)

	r := refs(instruction.LiquidateLoanTag, a.loan, a.pool, a.liquidator, a.vault, a.liquidatorToken)
	err := processor.Process(pack(t, &instruction.LiquidateLoan{}), r, 1200+3600, host)
	assert.Equal(t, fault.LoanNotOverdue, err, "liquidated on due date")

	host.EXPECT().Transfer(a.vault.Identity, a.liquidatorToken.Identity, a.pool.Identity, uint64(11000)).Return(nil)
	err = processor.Process(pack(t, &instruction.LiquidateLoan{}), r, 1200+3601, host)
	assert.Nil(t, err, "liquidation failed")
	assert.Equal(t, record.LoanDefaulted, unpackLoan(t, a.loan).Status, "wrong loan status")
}

type governanceActors struct {
	governance *processor.Ref
	proposal   *processor.Ref
	authority  *processor.Ref
	creator    *processor.Ref
	voter      *processor.Ref
	voterToken *processor.Ref
	mint       *processor.Ref
}

func TestGovernanceLifecycle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	a := &governanceActors{
		governance: ref(0x40),
		proposal:   ref(0x41),
		authority:  ref(0x01),
		creator:    ref(0x02),
		voter:      ref(0x03),
		voterToken: ref(0x42),
		mint:       ref(0x43),
	}

	host.EXPECT().SupplyOf(a.mint.Identity).Return(uint64(100), nil).Times(1)
	r := refs(instruction.CreateGovernanceTag, a.governance, a.authority, a.mint)
	i := &instruction.CreateGovernance{
		QuorumPolicy:    uint8(record.Percentage),
		ThresholdPolicy: uint8(record.Percentage),
		MinVotingPower:  1,
	}
	if err := processor.Process(pack(t, i), r, 1000, host); nil != err {
		t.Fatalf("create governance error: %s", err)
	}

	r = refs(instruction.CreateProposalTag, a.proposal, a.governance, a.creator)
	p := &instruction.CreateProposal{
		Title:     "Raise the collateral ratio",
		Category:  uint8(record.ParameterChange),
		Duration:  100,
		Quorum:    10,
		Threshold: 60,
	}
	if err := processor.Process(pack(t, p), r, 1000, host); nil != err {
		t.Fatalf("create proposal error: %s", err)
	}

	// vote record at any other address is refused before the host is asked
	stray := ref(0x50)
	r = refs(instruction.CastVoteTag, stray, a.proposal, a.governance, a.voter, a.voterToken)
	err := processor.Process(pack(t, &instruction.CastVote{Choice: uint8(record.VoteYes), Weight: 30}), r, 1050, host)
	assert.Equal(t, fault.WrongAccount, err, "vote at arbitrary address accepted")

	vote := &processor.Ref{Identity: record.VoteAddress(a.proposal.Identity, a.voter.Identity)}
	holding := processor.Holding{Owner: a.voter.Identity, Mint: a.mint.Identity, Amount: 50}
	host.EXPECT().BalanceOf(a.voterToken.Identity).Return(holding, nil).Times(2)

	r = refs(instruction.CastVoteTag, vote, a.proposal, a.governance, a.voter, a.voterToken)
	err = processor.Process(pack(t, &instruction.CastVote{Choice: uint8(record.VoteYes), Weight: 51}), r, 1050, host)
	assert.Equal(t, fault.InsufficientVotingPower, err, "weight above holding accepted")

	err = processor.Process(pack(t, &instruction.CastVote{Choice: uint8(record.VoteYes), Weight: 30}), r, 1050, host)
	assert.Nil(t, err, "vote failed")

	v := &record.Vote{}
	if err := record.Unpack(vote.Data, v); nil != err {
		t.Fatalf("unpack vote error: %s", err)
	}
	assert.Equal(t, a.voter.Identity, v.Owner, "wrong voter")
	assert.Equal(t, uint64(30), v.Weight, "wrong weight")

	host.EXPECT().SupplyOf(a.mint.Identity).Return(uint64(100), nil).Times(1)
	r = refs(instruction.FinalizeProposalTag, a.proposal, a.governance, a.creator)
	err = processor.Process(pack(t, &instruction.FinalizeProposal{}), r, 1101, host)
	assert.Nil(t, err, "finalise failed")

	governanceBefore := append([]byte{}, a.governance.Data...)
	r = refs(instruction.ExecuteProposalTag, a.proposal, a.governance, a.authority)
	err = processor.Process(pack(t, &instruction.ExecuteProposal{}), r, 1102, host)
	assert.Nil(t, err, "execute failed")
	assert.True(t, bytes.Equal(governanceBefore, a.governance.Data), "read only governance rewritten")

	proposal := &record.Proposal{}
	if err := record.Unpack(a.proposal.Data, proposal); nil != err {
		t.Fatalf("unpack proposal error: %s", err)
	}
	assert.Equal(t, record.ProposalExecuted, proposal.Status, "wrong status")
	assert.Equal(t, uint64(30), proposal.YesVotes, "wrong yes votes")
	assert.Equal(t, 1, len(proposal.Voters), "wrong voters")
}

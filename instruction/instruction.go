// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"github.com/unityvault/unityvaultd/record"
)

// OpcodeType - the first Varint64 of every packed instruction
type OpcodeType uint64

// enumerate the possible instructions
const (
	CreatePoolTag OpcodeType = iota
	DepositTag
	SetPoolStatusTag
	RequestLoanTag
	ApproveLoanTag
	CancelLoanTag
	MakePaymentTag
	LiquidateLoanTag
	CreateGovernanceTag
	CreateProposalTag
	CastVoteTag
	FinalizeProposalTag
	ExecuteProposalTag
	CancelProposalTag

	// this item must be last
	InvalidTag
)

// Packed - packed instruction bytes
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	record.Structure
	Opcode() OpcodeType
}

// CreatePool - open a new lending pool
//
// enumerations are carried as raw bytes and checked by the engine
type CreatePool struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	AssetType       uint8  `json:"assetType"`
	InterestPolicy  uint8  `json:"interestPolicy"`
	InterestRate    uint64 `json:"interestRate"`
	MinLoanAmount   uint64 `json:"minLoanAmount"`
	MaxLoanAmount   uint64 `json:"maxLoanAmount"`
	LoanTerm        uint64 `json:"loanTerm"`
	CollateralRatio uint64 `json:"collateralRatio"`
}

// Deposit - fund a pool vault
type Deposit struct {
	Amount uint64 `json:"amount"`
}

// SetPoolStatus - pause, resume or close a pool
type SetPoolStatus struct {
	Status uint8 `json:"status"`
}

// RequestLoan - reserve funds for a new loan
type RequestLoan struct {
	Amount   uint64 `json:"amount"`
	Duration int64  `json:"duration"` // seconds
}

// ApproveLoan - disburse a pending loan
type ApproveLoan struct{}

// CancelLoan - withdraw a pending loan
type CancelLoan struct{}

// MakePayment - repay part or all of a loan
type MakePayment struct {
	Amount uint64 `json:"amount"`
}

// LiquidateLoan - default an overdue loan
type LiquidateLoan struct{}

// CreateGovernance - open a governance realm
type CreateGovernance struct {
	QuorumPolicy    uint8  `json:"quorumPolicy"`
	ThresholdPolicy uint8  `json:"thresholdPolicy"`
	MinVotingPower  uint64 `json:"minVotingPower"`
}

// CreateProposal - open a proposal for voting
type CreateProposal struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    uint8  `json:"category"`
	VotingStart int64  `json:"votingStart"`
	VotingEnd   int64  `json:"votingEnd"`
	Duration    int64  `json:"duration"`
	Quorum      uint64 `json:"quorum"`
	Threshold   uint64 `json:"threshold"`
}

// CastVote - vote on an active proposal
type CastVote struct {
	Choice uint8  `json:"choice"`
	Weight uint64 `json:"weight"`
}

// FinalizeProposal - count the votes of a closed proposal
type FinalizeProposal struct{}

// ExecuteProposal - mark a passed proposal as executed
type ExecuteProposal struct{}

// CancelProposal - withdraw an undecided proposal
type CancelProposal struct{}

// Opcode - the opcode of each instruction
func (*CreatePool) Opcode() OpcodeType       { return CreatePoolTag }
func (*Deposit) Opcode() OpcodeType          { return DepositTag }
func (*SetPoolStatus) Opcode() OpcodeType    { return SetPoolStatusTag }
func (*RequestLoan) Opcode() OpcodeType      { return RequestLoanTag }
func (*ApproveLoan) Opcode() OpcodeType      { return ApproveLoanTag }
func (*CancelLoan) Opcode() OpcodeType       { return CancelLoanTag }
func (*MakePayment) Opcode() OpcodeType      { return MakePaymentTag }
func (*LiquidateLoan) Opcode() OpcodeType    { return LiquidateLoanTag }
func (*CreateGovernance) Opcode() OpcodeType { return CreateGovernanceTag }
func (*CreateProposal) Opcode() OpcodeType   { return CreateProposalTag }
func (*CastVote) Opcode() OpcodeType         { return CastVoteTag }
func (*FinalizeProposal) Opcode() OpcodeType { return FinalizeProposalTag }
func (*ExecuteProposal) Opcode() OpcodeType  { return ExecuteProposalTag }
func (*CancelProposal) Opcode() OpcodeType   { return CancelProposalTag }

// Fields - payload layouts
func (c *CreatePool) Fields() []record.Field {
	return []record.Field{
		record.StringField("name", &c.Name, record.MaxPoolNameLength),
		record.StringField("description", &c.Description, record.MaxPoolDescriptionLength),
		record.Uint8Field("asset_type", &c.AssetType),
		record.Uint8Field("interest_policy", &c.InterestPolicy),
		record.Uint64Field("interest_rate", &c.InterestRate),
		record.Uint64Field("min_loan_amount", &c.MinLoanAmount),
		record.Uint64Field("max_loan_amount", &c.MaxLoanAmount),
		record.Uint64Field("loan_term", &c.LoanTerm),
		record.Uint64Field("collateral_ratio", &c.CollateralRatio),
	}
}

func (d *Deposit) Fields() []record.Field {
	return []record.Field{
		record.Uint64Field("amount", &d.Amount),
	}
}

func (s *SetPoolStatus) Fields() []record.Field {
	return []record.Field{
		record.Uint8Field("status", &s.Status),
	}
}

func (r *RequestLoan) Fields() []record.Field {
	return []record.Field{
		record.Uint64Field("amount", &r.Amount),
		record.Int64Field("duration", &r.Duration),
	}
}

func (m *MakePayment) Fields() []record.Field {
	return []record.Field{
		record.Uint64Field("amount", &m.Amount),
	}
}

func (c *CreateGovernance) Fields() []record.Field {
	return []record.Field{
		record.Uint8Field("quorum_policy", &c.QuorumPolicy),
		record.Uint8Field("threshold_policy", &c.ThresholdPolicy),
		record.Uint64Field("min_voting_power", &c.MinVotingPower),
	}
}

func (c *CreateProposal) Fields() []record.Field {
	return []record.Field{
		record.StringField("title", &c.Title, record.MaxTitleLength),
		record.StringField("description", &c.Description, record.MaxDescriptionLength),
		record.Uint8Field("category", &c.Category),
		record.Int64Field("voting_start", &c.VotingStart),
		record.Int64Field("voting_end", &c.VotingEnd),
		record.Int64Field("duration", &c.Duration),
		record.Uint64Field("quorum", &c.Quorum),
		record.Uint64Field("threshold", &c.Threshold),
	}
}

func (c *CastVote) Fields() []record.Field {
	return []record.Field{
		record.Uint8Field("choice", &c.Choice),
		record.Uint64Field("weight", &c.Weight),
	}
}

// no payload
func (*ApproveLoan) Fields() []record.Field      { return nil }
func (*CancelLoan) Fields() []record.Field       { return nil }
func (*LiquidateLoan) Fields() []record.Field    { return nil }
func (*FinalizeProposal) Fields() []record.Field { return nil }
func (*ExecuteProposal) Fields() []record.Field  { return nil }
func (*CancelProposal) Fields() []record.Field   { return nil }

// New - an empty instruction for an opcode
func New(opcode OpcodeType) (Instruction, bool) {
	switch opcode {
	case CreatePoolTag:
		return &CreatePool{}, true
	case DepositTag:
		return &Deposit{}, true
	case SetPoolStatusTag:
		return &SetPoolStatus{}, true
	case RequestLoanTag:
		return &RequestLoan{}, true
	case ApproveLoanTag:
		return &ApproveLoan{}, true
	case CancelLoanTag:
		return &CancelLoan{}, true
	case MakePaymentTag:
		return &MakePayment{}, true
	case LiquidateLoanTag:
		return &LiquidateLoan{}, true
	case CreateGovernanceTag:
		return &CreateGovernance{}, true
	case CreateProposalTag:
		return &CreateProposal{}, true
	case CastVoteTag:
		return &CastVote{}, true
	case FinalizeProposalTag:
		return &FinalizeProposal{}, true
	case ExecuteProposalTag:
		return &ExecuteProposal{}, true
	case CancelProposalTag:
		return &CancelProposal{}, true
	default:
		return nil, false
	}
}

// String - name of an opcode
func (opcode OpcodeType) String() string {
	switch opcode {
	case CreatePoolTag:
		return "CreatePool"
	case DepositTag:
		return "Deposit"
	case SetPoolStatusTag:
		return "SetPoolStatus"
	case RequestLoanTag:
		return "RequestLoan"
	case ApproveLoanTag:
		return "ApproveLoan"
	case CancelLoanTag:
		return "CancelLoan"
	case MakePaymentTag:
		return "MakePayment"
	case LiquidateLoanTag:
		return "LiquidateLoan"
	case CreateGovernanceTag:
		return "CreateGovernance"
	case CreateProposalTag:
		return "CreateProposal"
	case CastVoteTag:
		return "CastVote"
	case FinalizeProposalTag:
		return "FinalizeProposal"
	case ExecuteProposalTag:
		return "ExecuteProposal"
	case CancelProposalTag:
		return "CancelProposal"
	default:
		return "*unknown*"
	}
}

// MarshalText - convert a packed instruction to its hex JSON form
func (packed Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(packed)))
	hex.Encode(b, packed)
	return b, nil
}

// UnmarshalText - convert hex JSON form to a packed instruction
func (packed *Packed) UnmarshalText(s []byte) error {
	*packed = make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(*packed, s)
	return err
}

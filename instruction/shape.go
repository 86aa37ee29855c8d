// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

// Slot - one position in an instruction's record list
type Slot struct {
	Name     string `json:"name"`
	Signer   bool   `json:"signer"`
	Writable bool   `json:"writable"`
}

func written(name string) Slot  { return Slot{Name: name, Writable: true} }
func signer(name string) Slot   { return Slot{Name: name, Signer: true} }
func readOnly(name string) Slot { return Slot{Name: name} }

// positional record lists
var shapes = map[OpcodeType][]Slot{
	CreatePoolTag: {
		written("pool"),
		signer("authority"),
		readOnly("mint"),
		readOnly("vault"),
		readOnly("collateral_vault"),
	},
	DepositTag: {
		written("pool"),
		signer("authority"),
		readOnly("authority_token"),
		readOnly("vault"),
	},
	SetPoolStatusTag: {
		written("pool"),
		signer("authority"),
	},
	RequestLoanTag: {
		written("loan"),
		written("pool"),
		signer("borrower"),
	},
	ApproveLoanTag: {
		written("loan"),
		written("pool"),
		signer("authority"),
		signer("borrower"),
		readOnly("borrower_collateral"),
		readOnly("collateral_vault"),
		readOnly("vault"),
		readOnly("borrower_token"),
	},
	CancelLoanTag: {
		written("loan"),
		written("pool"),
		signer("signer"),
	},
	MakePaymentTag: {
		written("loan"),
		written("pool"),
		signer("borrower"),
		readOnly("borrower_token"),
		readOnly("vault"),
		readOnly("collateral_vault"),
		readOnly("borrower_collateral"),
	},
	LiquidateLoanTag: {
		written("loan"),
		written("pool"),
		signer("liquidator"),
		readOnly("vault"),
		readOnly("liquidator_token"),
	},
	CreateGovernanceTag: {
		written("governance"),
		signer("authority"),
		readOnly("voting_mint"),
	},
	CreateProposalTag: {
		written("proposal"),
		written("governance"),
		signer("creator"),
	},
	CastVoteTag: {
		written("vote"),
		written("proposal"),
		written("governance"),
		signer("voter"),
		readOnly("voter_token"),
	},
	FinalizeProposalTag: {
		written("proposal"),
		written("governance"),
		signer("finalizer"),
	},
	ExecuteProposalTag: {
		written("proposal"),
		readOnly("governance"),
		signer("executor"),
	},
	CancelProposalTag: {
		written("proposal"),
		written("governance"),
		signer("signer"),
	},
}

// Shape - the record list an opcode expects, nil for an unknown opcode
func Shape(opcode OpcodeType) []Slot {
	return shapes[opcode]
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
)

// TagType - type code for records
type TagType uint8

// enumerate the possible record tags
// note: the first byte of a packed record is its tag
const (
	// a buffer that has never been initialised (all zero)
	NullTag = TagType(iota)

	// lending
	LendingPoolTag = TagType(iota)
	LoanTag        = TagType(iota)

	// governance
	GovernanceTag = TagType(iota)
	ProposalTag   = TagType(iota)
	VoteTag       = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Record - a persistent program record
type Record interface {
	Structure
	Tag() TagType
	IsInitialised() bool
	OwnedBy() account.Identity
}

// Header - members common to all records
//
// these are always the first fields following the tag
type Header struct {
	Initialised bool             `json:"initialised"`
	Owner       account.Identity `json:"owner"`
}

// IsInitialised - true once a create operation has succeeded
func (h *Header) IsInitialised() bool {
	return h.Initialised
}

// OwnedBy - the identity with authority over the record
func (h *Header) OwnedBy() account.Identity {
	return h.Owner
}

func (h *Header) headerFields(ownerName string) []Field {
	return []Field{
		BoolField("initialised", &h.Initialised),
		AccountField(ownerName, &h.Owner),
	}
}

// New - an empty record for a tag
func New(tag TagType) (Record, error) {
	switch tag {
	case LendingPoolTag:
		return &LendingPool{}, nil
	case LoanTag:
		return &Loan{}, nil
	case GovernanceTag:
		return &Governance{}, nil
	case ProposalTag:
		return &Proposal{}, nil
	case VoteTag:
		return &Vote{}, nil
	default:
		return nil, fault.UnknownRecordType
	}
}

// Type - the tag of a packed record
func Type(buffer []byte) (TagType, error) {
	if 0 == len(buffer) {
		return NullTag, fault.TruncatedRecord
	}
	tag := TagType(buffer[0])
	if tag >= InvalidTag {
		return NullTag, fault.UnknownRecordType
	}
	return tag, nil
}

// String - name of the record type
func (tag TagType) String() string {
	switch tag {
	case NullTag:
		return "Null"
	case LendingPoolTag:
		return "LendingPool"
	case LoanTag:
		return "Loan"
	case GovernanceTag:
		return "Governance"
	case ProposalTag:
		return "Proposal"
	case VoteTag:
		return "Vote"
	default:
		return "*unknown*"
	}
}

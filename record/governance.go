// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/merkle"
)

// maximum sizes of governance fields
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxVoterRecords      = 100
)

// domain separator for vote record addresses
const voteAddressDomain = "vote"

// Measure - how a quorum or threshold value is interpreted
type Measure uint8

// measures
const (
	// compare against raw vote weight
	Absolute Measure = iota
	// compare against a percentage (0..100)
	Percentage
	measureLimit
)

// ProposalCategory - the subject of a proposal
type ProposalCategory uint8

// categories
const (
	ProtocolUpgrade ProposalCategory = iota
	ParameterChange
	Treasury
	Community
	OtherCategory
	proposalCategoryLimit
)

// ProposalStatus - lifecycle of a proposal
type ProposalStatus uint8

// proposal states
//   Active -> Passed -> Executed
//   Active -> Rejected
//   Draft | Active -> Cancelled
const (
	ProposalDraft ProposalStatus = iota
	ProposalActive
	ProposalPassed
	ProposalRejected
	ProposalExecuted
	ProposalCancelled
	proposalStatusLimit
)

// VoteChoice - a single voter's choice
type VoteChoice uint8

// choices
const (
	VoteYes VoteChoice = iota
	VoteNo
	VoteAbstain
	voteChoiceLimit
)

// Governance - a governance realm
//
// Owner is the governance authority
type Governance struct {
	Header
	VotingMint      account.Identity `json:"votingMint"`
	QuorumPolicy    Measure          `json:"quorumPolicy"`
	ThresholdPolicy Measure          `json:"thresholdPolicy"`
	MinVotingPower  uint64           `json:"minVotingPower"`
	TotalProposals  uint64           `json:"totalProposals"`
	ActiveProposals uint64           `json:"activeProposals"`
	TotalVoters     uint64           `json:"totalVoters"`
	CreatedAt       int64            `json:"createdAt"`
	UpdatedAt       int64            `json:"updatedAt"`
}

// Tag - record type
func (g *Governance) Tag() TagType {
	return GovernanceTag
}

// Fields - schema
func (g *Governance) Fields() []Field {
	return append(g.headerFields("authority"),
		AccountField("voting_mint", &g.VotingMint),
		EnumField("quorum_policy", &g.QuorumPolicy, int(measureLimit)),
		EnumField("threshold_policy", &g.ThresholdPolicy, int(measureLimit)),
		Uint64Field("min_voting_power", &g.MinVotingPower),
		Uint64Field("total_proposals", &g.TotalProposals),
		Uint64Field("active_proposals", &g.ActiveProposals),
		Uint64Field("total_voters", &g.TotalVoters),
		Int64Field("created_at", &g.CreatedAt),
		Int64Field("updated_at", &g.UpdatedAt),
	)
}

// VoterRecord - one entry in a proposal's bounded voter list
type VoterRecord struct {
	Voter     account.Identity `json:"voter"`
	Choice    VoteChoice       `json:"choice"`
	Weight    uint64           `json:"weight"`
	Timestamp int64            `json:"timestamp"`
}

// Fields - schema
func (v *VoterRecord) Fields() []Field {
	return []Field{
		AccountField("voter", &v.Voter),
		EnumField("choice", &v.Choice, int(voteChoiceLimit)),
		Uint64Field("weight", &v.Weight),
		Int64Field("timestamp", &v.Timestamp),
	}
}

// Proposal - a proposal voted on within a governance realm
//
// Owner is the proposal creator
type Proposal struct {
	Header
	Governance   account.Identity `json:"governance"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     ProposalCategory `json:"category"`
	Status       ProposalStatus   `json:"status"`
	VotingStart  int64            `json:"votingStart"`
	VotingEnd    int64            `json:"votingEnd"`
	Quorum       uint64           `json:"quorum"`
	Threshold    uint64           `json:"threshold"`
	YesVotes     uint64           `json:"yesVotes"`
	NoVotes      uint64           `json:"noVotes"`
	AbstainVotes uint64           `json:"abstainVotes"`
	Voters       []VoterRecord    `json:"voters"`
	CreatedAt    int64            `json:"createdAt"`
	UpdatedAt    int64            `json:"updatedAt"`
	ExecutedAt   int64            `json:"executedAt"`
}

// Tag - record type
func (p *Proposal) Tag() TagType {
	return ProposalTag
}

// Fields - schema
func (p *Proposal) Fields() []Field {
	return append(p.headerFields("creator"),
		AccountField("governance", &p.Governance),
		StringField("title", &p.Title, MaxTitleLength),
		StringField("description", &p.Description, MaxDescriptionLength),
		EnumField("category", &p.Category, int(proposalCategoryLimit)),
		EnumField("status", &p.Status, int(proposalStatusLimit)),
		Int64Field("voting_start", &p.VotingStart),
		Int64Field("voting_end", &p.VotingEnd),
		Uint64Field("quorum", &p.Quorum),
		Uint64Field("threshold", &p.Threshold),
		Uint64Field("yes_votes", &p.YesVotes),
		Uint64Field("no_votes", &p.NoVotes),
		Uint64Field("abstain_votes", &p.AbstainVotes),
		ListField("voters", &p.Voters, MaxVoterRecords),
		Int64Field("created_at", &p.CreatedAt),
		Int64Field("updated_at", &p.UpdatedAt),
		Int64Field("executed_at", &p.ExecutedAt),
	)
}

// Vote - the record of one voter's vote on one proposal
//
// Owner is the voter
type Vote struct {
	Header
	Proposal  account.Identity `json:"proposal"`
	Choice    VoteChoice       `json:"choice"`
	Weight    uint64           `json:"weight"`
	CreatedAt int64            `json:"createdAt"`
}

// Tag - record type
func (v *Vote) Tag() TagType {
	return VoteTag
}

// Fields - schema
func (v *Vote) Fields() []Field {
	return append(v.headerFields("voter"),
		AccountField("proposal", &v.Proposal),
		EnumField("choice", &v.Choice, int(voteChoiceLimit)),
		Uint64Field("weight", &v.Weight),
		Int64Field("created_at", &v.CreatedAt),
	)
}

// VoteAddress - the only address at which a voter's vote on a
// proposal may be stored
func VoteAddress(proposal account.Identity, voter account.Identity) account.Identity {
	return account.Identity(merkle.Derive(voteAddressDomain, proposal[:], voter[:]))
}

// IsValid - within the enumeration
func (m Measure) IsValid() bool { return m < measureLimit }

// IsValid - within the enumeration
func (c ProposalCategory) IsValid() bool { return c < proposalCategoryLimit }

// IsValid - within the enumeration
func (c VoteChoice) IsValid() bool { return c < voteChoiceLimit }

func (m Measure) String() string {
	return name(uint8(m), "Absolute", "Percentage")
}

func (c ProposalCategory) String() string {
	return name(uint8(c), "ProtocolUpgrade", "ParameterChange", "Treasury", "Community", "Other")
}

func (s ProposalStatus) String() string {
	return name(uint8(s), "Draft", "Active", "Passed", "Rejected", "Executed", "Cancelled")
}

func (c VoteChoice) String() string {
	return name(uint8(c), "Yes", "No", "Abstain")
}

// MarshalText - JSON as names
func (m Measure) MarshalText() ([]byte, error)          { return []byte(m.String()), nil }
func (c ProposalCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (s ProposalStatus) MarshalText() ([]byte, error)   { return []byte(s.String()), nil }
func (c VoteChoice) MarshalText() ([]byte, error)       { return []byte(c.String()), nil }

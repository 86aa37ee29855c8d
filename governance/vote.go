// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/guard"
	"github.com/unityvault/unityvaultd/record"
	"github.com/unityvault/unityvaultd/util"
)

// CastVote - add a voter's weight to one choice
//
// the vote record must be fresh, so a second vote by the same voter
// on the same proposal fails with AlreadyInitialised
func CastVote(g *record.Governance, proposal *record.Proposal, vote *record.Vote, governanceAddress account.Identity, proposalAddress account.Identity, voter account.Identity, choice record.VoteChoice, weight uint64, now int64) error {
	if err := requireProposalOf(g, proposal, governanceAddress); nil != err {
		return err
	}
	if err := guard.RequireInitialised(vote, false); nil != err {
		return err
	}
	if !choice.IsValid() {
		return fault.InvalidArgument
	}
	if now < proposal.VotingStart || now > proposal.VotingEnd {
		return fault.NotInVotingPeriod
	}
	if record.ProposalActive != proposal.Status {
		return fault.ProposalNotActive
	}

	minimum := g.MinVotingPower
	if 0 == minimum {
		minimum = 1
	}
	if weight < minimum {
		return fault.InsufficientVotingPower
	}
	if len(proposal.Voters) >= record.MaxVoterRecords {
		return fault.ListTooLong
	}

	yes, no, abstain := proposal.YesVotes, proposal.NoVotes, proposal.AbstainVotes
	var err error
	switch choice {
	case record.VoteYes:
		yes, err = util.SafeAdd(yes, weight)
	case record.VoteNo:
		no, err = util.SafeAdd(no, weight)
	case record.VoteAbstain:
		abstain, err = util.SafeAdd(abstain, weight)
	}
	if nil != err {
		return err
	}
	totalVoters, err := util.SafeAdd(g.TotalVoters, 1)
	if nil != err {
		return err
	}

	proposal.YesVotes = yes
	proposal.NoVotes = no
	proposal.AbstainVotes = abstain
	proposal.Voters = append(proposal.Voters, record.VoterRecord{
		Voter:     voter,
		Choice:    choice,
		Weight:    weight,
		Timestamp: now,
	})
	proposal.UpdatedAt = now

	*vote = record.Vote{
		Header: record.Header{
			Initialised: true,
			Owner:       voter,
		},
		Proposal:  proposalAddress,
		Choice:    choice,
		Weight:    weight,
		CreatedAt: now,
	}

	g.TotalVoters = totalVoters
	g.UpdatedAt = now
	return nil
}

// FinalizeProposal - decide a proposal once voting has closed
//
// supply is the total supply of the voting mint, only used by a
// Percentage quorum
func FinalizeProposal(g *record.Governance, proposal *record.Proposal, governanceAddress account.Identity, supply uint64, now int64) error {
	if err := requireProposalOf(g, proposal, governanceAddress); nil != err {
		return err
	}
	if now <= proposal.VotingEnd {
		return fault.VotingStillActive
	}
	if record.ProposalActive != proposal.Status {
		return fault.AlreadyFinalised
	}

	total, err := util.SafeAdd(proposal.YesVotes, proposal.NoVotes)
	if nil != err {
		return err
	}
	total, err = util.SafeAdd(total, proposal.AbstainVotes)
	if nil != err {
		return err
	}

	required := proposal.Quorum
	if record.Percentage == g.QuorumPolicy {
		required, err = util.MulDiv(supply, proposal.Quorum, percentScale)
		if nil != err {
			return err
		}
	}
	if total < required {
		return fault.QuorumNotMet
	}

	passed := false
	switch g.ThresholdPolicy {
	case record.Absolute:
		passed = proposal.YesVotes >= proposal.Threshold
	case record.Percentage:
		if total > 0 {
			share, err := util.MulDiv(proposal.YesVotes, percentScale, total)
			if nil != err {
				return err
			}
			passed = share >= proposal.Threshold
		}
	}

	active, err := util.SafeSub(g.ActiveProposals, 1)
	if nil != err {
		return err
	}

	if passed {
		proposal.Status = record.ProposalPassed
	} else {
		proposal.Status = record.ProposalRejected
	}
	proposal.UpdatedAt = now

	g.ActiveProposals = active
	g.UpdatedAt = now
	return nil
}

// ExecuteProposal - mark a passed proposal as executed
func ExecuteProposal(g *record.Governance, proposal *record.Proposal, governanceAddress account.Identity, now int64) error {
	if err := requireProposalOf(g, proposal, governanceAddress); nil != err {
		return err
	}
	if record.ProposalPassed != proposal.Status {
		return fault.ProposalNotPassed
	}
	if now <= proposal.VotingEnd {
		return fault.VotingNotEnded
	}

	proposal.Status = record.ProposalExecuted
	proposal.ExecutedAt = now
	proposal.UpdatedAt = now
	return nil
}

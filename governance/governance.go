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

// percentages are whole numbers 0..100
const percentScale = 100

// Parameters - configuration of a new governance realm
type Parameters struct {
	QuorumPolicy    record.Measure
	ThresholdPolicy record.Measure
	MinVotingPower  uint64
}

// ProposalParameters - the content and timing of a new proposal
//
// if VotingStart is zero the vote opens immediately and stays open
// for Duration seconds
type ProposalParameters struct {
	Title       string
	Description string
	Category    record.ProposalCategory
	VotingStart int64
	VotingEnd   int64
	Duration    int64
	Quorum      uint64
	Threshold   uint64
}

// CreateGovernance - initialise a governance realm
func CreateGovernance(g *record.Governance, authority account.Identity, votingMint account.Identity, parameters Parameters, now int64) error {
	if err := guard.RequireInitialised(g, false); nil != err {
		return err
	}
	if !parameters.QuorumPolicy.IsValid() || !parameters.ThresholdPolicy.IsValid() {
		return fault.InvalidArgument
	}
	if votingMint.IsZero() {
		return fault.MissingParameters
	}

	*g = record.Governance{
		Header: record.Header{
			Initialised: true,
			Owner:       authority,
		},
		VotingMint:      votingMint,
		QuorumPolicy:    parameters.QuorumPolicy,
		ThresholdPolicy: parameters.ThresholdPolicy,
		MinVotingPower:  parameters.MinVotingPower,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return nil
}

// CreateProposal - open a proposal for voting
func CreateProposal(g *record.Governance, proposal *record.Proposal, governanceAddress account.Identity, creator account.Identity, parameters ProposalParameters, now int64) error {
	if err := guard.RequireInitialised(g, true); nil != err {
		return err
	}
	if err := guard.RequireInitialised(proposal, false); nil != err {
		return err
	}
	if "" == parameters.Title {
		return fault.MissingTitle
	}
	if !parameters.Category.IsValid() {
		return fault.InvalidCategory
	}

	votingStart := parameters.VotingStart
	votingEnd := parameters.VotingEnd
	if 0 == votingStart {
		if parameters.Duration <= 0 {
			return fault.InvalidDuration
		}
		end, err := util.SafeAddInt64(now, parameters.Duration)
		if nil != err {
			return err
		}
		votingStart = now
		votingEnd = end
	}
	if votingEnd <= votingStart {
		return fault.InvalidVotingPeriod
	}

	if record.Percentage == g.QuorumPolicy && parameters.Quorum > percentScale {
		return fault.InvalidPercentage
	}
	if record.Percentage == g.ThresholdPolicy && parameters.Threshold > percentScale {
		return fault.InvalidPercentage
	}

	totalProposals, err := util.SafeAdd(g.TotalProposals, 1)
	if nil != err {
		return err
	}
	activeProposals, err := util.SafeAdd(g.ActiveProposals, 1)
	if nil != err {
		return err
	}

	*proposal = record.Proposal{
		Header: record.Header{
			Initialised: true,
			Owner:       creator,
		},
		Governance:  governanceAddress,
		Title:       parameters.Title,
		Description: parameters.Description,
		Category:    parameters.Category,
		Status:      record.ProposalActive,
		VotingStart: votingStart,
		VotingEnd:   votingEnd,
		Quorum:      parameters.Quorum,
		Threshold:   parameters.Threshold,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	g.TotalProposals = totalProposals
	g.ActiveProposals = activeProposals
	g.UpdatedAt = now
	return nil
}

// check the proposal belongs to the governance realm and both are live
func requireProposalOf(g *record.Governance, proposal *record.Proposal, governanceAddress account.Identity) error {
	if err := guard.RequireInitialised(g, true); nil != err {
		return err
	}
	if err := guard.RequireInitialised(proposal, true); nil != err {
		return err
	}
	return guard.RequireAddress(proposal.Governance, governanceAddress)
}

// CancelProposal - withdraw a proposal before it is decided
//
// either the creator or the governance authority may cancel
func CancelProposal(g *record.Governance, proposal *record.Proposal, governanceAddress account.Identity, signer account.Identity, now int64) error {
	if err := requireProposalOf(g, proposal, governanceAddress); nil != err {
		return err
	}
	if signer != proposal.Owner && signer != g.Owner {
		return fault.IllegalOwner
	}

	active := g.ActiveProposals
	switch proposal.Status {
	case record.ProposalActive:
		a, err := util.SafeSub(active, 1)
		if nil != err {
			return err
		}
		active = a
	case record.ProposalDraft:
	default:
		return fault.ProposalNotActive
	}

	proposal.Status = record.ProposalCancelled
	proposal.UpdatedAt = now

	g.ActiveProposals = active
	g.UpdatedAt = now
	return nil
}

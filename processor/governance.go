// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/governance"
	"github.com/unityvault/unityvaultd/guard"
	"github.com/unityvault/unityvaultd/instruction"
	"github.com/unityvault/unityvaultd/record"
)

// governance(w), authority(s), voting mint
func (s *state) createGovernance(tx *instruction.CreateGovernance) error {
	g := &record.Governance{}
	if err := s.load(0, g); nil != err {
		return err
	}
	if err := guard.RequireInitialised(g, false); nil != err {
		return err
	}
	if _, err := s.host.SupplyOf(s.key(2)); nil != err {
		return err
	}
	parameters := governance.Parameters{
		QuorumPolicy:    record.Measure(tx.QuorumPolicy),
		ThresholdPolicy: record.Measure(tx.ThresholdPolicy),
		MinVotingPower:  tx.MinVotingPower,
	}
	return governance.CreateGovernance(g, s.key(1), s.key(2), parameters, s.now)
}

// proposal(w), governance(w), creator(s)
func (s *state) createProposal(tx *instruction.CreateProposal) error {
	proposal := &record.Proposal{}
	if err := s.load(0, proposal); nil != err {
		return err
	}
	g := &record.Governance{}
	if err := s.load(1, g); nil != err {
		return err
	}
	parameters := governance.ProposalParameters{
		Title:       tx.Title,
		Description: tx.Description,
		Category:    record.ProposalCategory(tx.Category),
		VotingStart: tx.VotingStart,
		VotingEnd:   tx.VotingEnd,
		Duration:    tx.Duration,
		Quorum:      tx.Quorum,
		Threshold:   tx.Threshold,
	}
	return governance.CreateProposal(g, proposal, s.key(1), s.key(2), parameters, s.now)
}

// vote(w), proposal(w), governance(w), voter(s), voter token
//
// the vote record lives at an address derived from proposal and
// voter, and the weight is limited by the voter's holding of the
// voting mint
func (s *state) castVote(tx *instruction.CastVote) error {
	vote := &record.Vote{}
	if err := s.load(0, vote); nil != err {
		return err
	}
	proposal := &record.Proposal{}
	if err := s.load(1, proposal); nil != err {
		return err
	}
	g, err := s.loadGovernance(2)
	if nil != err {
		return err
	}

	voter := s.key(3)
	if err := guard.RequireAddress(s.key(0), record.VoteAddress(s.key(1), voter)); nil != err {
		return err
	}
	holding, err := s.host.BalanceOf(s.key(4))
	if nil != err {
		return err
	}
	if err := guard.RequireOwner(holding.Owner, voter); nil != err {
		return err
	}
	if holding.Mint != g.VotingMint {
		return fault.MintMismatch
	}
	if tx.Weight > holding.Amount {
		return fault.InsufficientVotingPower
	}

	return governance.CastVote(g, proposal, vote, s.key(2), s.key(1), voter, record.VoteChoice(tx.Choice), tx.Weight, s.now)
}

// proposal(w), governance(w), finalizer(s)
func (s *state) finalizeProposal() error {
	proposal := &record.Proposal{}
	if err := s.load(0, proposal); nil != err {
		return err
	}
	g, err := s.loadGovernance(1)
	if nil != err {
		return err
	}

	supply := uint64(0)
	if record.Percentage == g.QuorumPolicy {
		supply, err = s.host.SupplyOf(g.VotingMint)
		if nil != err {
			return err
		}
	}
	return governance.FinalizeProposal(g, proposal, s.key(1), supply, s.now)
}

// proposal(w), governance, executor(s)
func (s *state) executeProposal() error {
	proposal := &record.Proposal{}
	if err := s.load(0, proposal); nil != err {
		return err
	}
	g := &record.Governance{}
	if err := s.load(1, g); nil != err {
		return err
	}
	return governance.ExecuteProposal(g, proposal, s.key(1), s.now)
}

// proposal(w), governance(w), signer(s)
func (s *state) cancelProposal() error {
	proposal := &record.Proposal{}
	if err := s.load(0, proposal); nil != err {
		return err
	}
	g := &record.Governance{}
	if err := s.load(1, g); nil != err {
		return err
	}
	return governance.CancelProposal(g, proposal, s.key(1), s.key(2), s.now)
}

// an initialised governance realm at the given position
func (s *state) loadGovernance(index int) (*record.Governance, error) {
	g := &record.Governance{}
	if err := s.load(index, g); nil != err {
		return nil, err
	}
	if err := guard.RequireInitialised(g, true); nil != err {
		return nil, err
	}
	return g, nil
}

// Copyright 2026 The cardanotx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tx

import (
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/hash"
)

// Anchor is the `[url, data_hash]` pair CIP-1694 governance actions and
// DRep/committee records attach external metadata through.
type Anchor struct {
	URL      string
	DataHash hash.AnchorDataHash
}

type wireAnchor struct {
	_        struct{} `cbor:",toarray"`
	URL      string
	DataHash hash.AnchorDataHash
}

func (a Anchor) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireAnchor{URL: a.URL, DataHash: a.DataHash})
}

func (a *Anchor) UnmarshalCBOR(data []byte) error {
	var w wireAnchor
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: anchor: %v", err)
	}
	*a = Anchor{URL: w.URL, DataHash: w.DataHash}
	return nil
}

// VoterKind discriminates the five CIP-1694 voter roles.
type VoterKind uint8

const (
	VoterConstitutionalCommitteeHotKeyHash    VoterKind = 0
	VoterConstitutionalCommitteeHotScriptHash VoterKind = 1
	VoterDRepKeyHash                          VoterKind = 2
	VoterDRepScriptHash                       VoterKind = 3
	VoterStakePoolKeyHash                     VoterKind = 4
)

// Voter identifies who cast a vote in a VotingProcedures map (spec §3.8).
type Voter struct {
	Kind VoterKind
	Hash hash.Hash28
}

type wireVoter struct {
	_    struct{} `cbor:",toarray"`
	Kind uint8
	Hash []byte
}

func (v Voter) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireVoter{Kind: uint8(v.Kind), Hash: v.Hash.Bytes()})
}

func (v *Voter) UnmarshalCBOR(data []byte) error {
	var w wireVoter
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: voter: %v", err)
	}
	h, err := hash.NewHash28(w.Hash)
	if err != nil {
		return apollerr.Decoding("tx: voter hash: %v", err)
	}
	*v = Voter{Kind: VoterKind(w.Kind), Hash: h}
	return nil
}

// Vote is a ballot value: No, Yes, or Abstain (spec §3.8).
type Vote uint8

const (
	VoteNo Vote = iota
	VoteYes
	VoteAbstain
)

// GovActionId identifies a governance action by the id of the
// transaction that proposed it and its index within that
// transaction's proposal_procedures.
type GovActionId struct {
	TransactionID hash.TransactionId
	Index         uint32
}

type wireGovActionId struct {
	_             struct{} `cbor:",toarray"`
	TransactionID hash.TransactionId
	Index         uint32
}

func (g GovActionId) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireGovActionId{TransactionID: g.TransactionID, Index: g.Index})
}

func (g *GovActionId) UnmarshalCBOR(data []byte) error {
	var w wireGovActionId
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: gov action id: %v", err)
	}
	*g = GovActionId{TransactionID: w.TransactionID, Index: w.Index}
	return nil
}

// VotingProcedure is one voter's ballot plus optional rationale anchor.
type VotingProcedure struct {
	Vote   Vote
	Anchor *Anchor
}

type wireVotingProcedure struct {
	_      struct{} `cbor:",toarray"`
	Vote   uint8
	Anchor any
}

func (p VotingProcedure) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireVotingProcedure{Vote: uint8(p.Vote), Anchor: anchorOrNil(p.Anchor)})
}

func (p *VotingProcedure) UnmarshalCBOR(data []byte) error {
	var parts []cborx.RawMessage
	if err := cborUnmarshal(data, &parts); err != nil || len(parts) != 2 {
		return apollerr.Decoding("tx: voting procedure: malformed")
	}
	var vote uint8
	if err := cborUnmarshal(parts[0], &vote); err != nil {
		return apollerr.Decoding("tx: voting procedure vote: %v", err)
	}
	anchor, err := decodeOptionalAnchor(parts[1])
	if err != nil {
		return err
	}
	*p = VotingProcedure{Vote: Vote(vote), Anchor: anchor}
	return nil
}

// VotingProcedures is the transaction body's voting_procedures field:
// voter -> governance action id -> ballot.
type VotingProcedures map[Voter]map[GovActionId]VotingProcedure

// GovActionKind enumerates the seven CIP-1694 governance action
// variants (spec §3.8 EXPANDED).
type GovActionKind uint8

const (
	GovActionParameterChange GovActionKind = iota
	GovActionHardForkInitiation
	GovActionTreasuryWithdrawals
	GovActionNoConfidence
	GovActionUpdateCommittee
	GovActionNewConstitution
	GovActionInfo
)

// GovAction is a tagged union over the seven action kinds. As with
// Certificate, only the fields relevant to Kind are populated; the
// deep per-protocol-param update payload of ParameterChange and the
// full committee membership diff of UpdateCommittee are carried as raw
// undecoded CBOR (Params / CommitteeChanges) since this module's
// builder only ever needs to hash and re-wire these, never to inspect
// the protocol parameter diff itself (spec §3.8 Non-goals: no
// governance-action *construction* helpers beyond wiring raw actions).
type GovAction struct {
	Kind               GovActionKind
	PreviousActionID   *GovActionId
	Params             cborx.RawMessage
	PolicyHash         *hash.ScriptHash
	Withdrawals        Withdrawals
	CommitteeChanges   cborx.RawMessage
	Constitution       *Anchor
	ConstitutionScript *hash.ScriptHash
}

type wireGovAction struct {
	_    struct{} `cbor:",toarray"`
	Kind uint8
	Body []cborx.RawMessage
}

// MarshalCBOR encodes the action as `[kind, ...body]`.
func (a GovAction) MarshalCBOR() ([]byte, error) {
	var body []any
	switch a.Kind {
	case GovActionParameterChange:
		body = []any{prevIDOrNil(a.PreviousActionID), rawOrEmptyMap(a.Params), policyHashOrNil(a.PolicyHash)}
	case GovActionHardForkInitiation:
		body = []any{prevIDOrNil(a.PreviousActionID), rawOrEmptyMap(a.Params)}
	case GovActionTreasuryWithdrawals:
		body = []any{a.Withdrawals, policyHashOrNil(a.PolicyHash)}
	case GovActionNoConfidence:
		body = []any{prevIDOrNil(a.PreviousActionID)}
	case GovActionUpdateCommittee:
		body = []any{prevIDOrNil(a.PreviousActionID), rawOrEmptyArray(a.CommitteeChanges)}
	case GovActionNewConstitution:
		body = []any{prevIDOrNil(a.PreviousActionID), a.Constitution, policyHashOrNil(a.ConstitutionScript)}
	case GovActionInfo:
		body = []any{}
	default:
		return nil, apollerr.InvalidArgument("tx: gov action: unknown kind %d", a.Kind)
	}
	raws := make([]cborx.RawMessage, len(body))
	for i, p := range body {
		b, err := cborMarshal(p)
		if err != nil {
			return nil, err
		}
		raws[i] = b
	}
	return cborMarshal(wireGovAction{Kind: uint8(a.Kind), Body: raws})
}

func (a *GovAction) UnmarshalCBOR(data []byte) error {
	var w wireGovAction
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: gov action: %v", err)
	}
	out := GovAction{Kind: GovActionKind(w.Kind)}
	switch out.Kind {
	case GovActionParameterChange:
		if len(w.Body) < 3 {
			return apollerr.Decoding("tx: parameter change action: short body")
		}
		id, err := decodeOptionalGovActionId(w.Body[0])
		if err != nil {
			return err
		}
		out.PreviousActionID = id
		out.Params = w.Body[1]
		ph, err := decodeOptionalScriptHash(w.Body[2])
		if err != nil {
			return err
		}
		out.PolicyHash = ph
	case GovActionHardForkInitiation:
		id, err := decodeOptionalGovActionId(w.Body[0])
		if err != nil {
			return err
		}
		out.PreviousActionID = id
		out.Params = w.Body[1]
	case GovActionTreasuryWithdrawals:
		var wd Withdrawals
		if err := cborUnmarshal(w.Body[0], &wd); err != nil {
			return err
		}
		out.Withdrawals = wd
		ph, err := decodeOptionalScriptHash(w.Body[1])
		if err != nil {
			return err
		}
		out.PolicyHash = ph
	case GovActionNoConfidence:
		id, err := decodeOptionalGovActionId(w.Body[0])
		if err != nil {
			return err
		}
		out.PreviousActionID = id
	case GovActionUpdateCommittee:
		id, err := decodeOptionalGovActionId(w.Body[0])
		if err != nil {
			return err
		}
		out.PreviousActionID = id
		out.CommitteeChanges = w.Body[1]
	case GovActionNewConstitution:
		id, err := decodeOptionalGovActionId(w.Body[0])
		if err != nil {
			return err
		}
		out.PreviousActionID = id
		var anchor Anchor
		if err := cborUnmarshal(w.Body[1], &anchor); err != nil {
			return err
		}
		out.Constitution = &anchor
		sh, err := decodeOptionalScriptHash(w.Body[2])
		if err != nil {
			return err
		}
		out.ConstitutionScript = sh
	case GovActionInfo:
		// no body
	default:
		return apollerr.Decoding("tx: gov action: unknown kind %d", w.Kind)
	}
	*a = out
	return nil
}

func prevIDOrNil(id *GovActionId) any {
	if id == nil {
		return nil
	}
	return *id
}

func policyHashOrNil(h *hash.ScriptHash) any {
	if h == nil {
		return nil
	}
	return *h
}

func rawOrEmptyMap(r cborx.RawMessage) any {
	if len(r) == 0 {
		return map[string]any{}
	}
	return r
}

func rawOrEmptyArray(r cborx.RawMessage) any {
	if len(r) == 0 {
		return []any{}
	}
	return r
}

func decodeOptionalGovActionId(raw cborx.RawMessage) (*GovActionId, error) {
	if len(raw) == 1 && raw[0] == 0xf6 {
		return nil, nil
	}
	var id GovActionId
	if err := cborUnmarshal(raw, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func decodeOptionalScriptHash(raw cborx.RawMessage) (*hash.ScriptHash, error) {
	if len(raw) == 1 && raw[0] == 0xf6 {
		return nil, nil
	}
	var h hash.ScriptHash
	if err := cborUnmarshal(raw, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ProposalProcedure is one entry of the transaction body's
// proposal_procedures field: a deposit, the reward account the
// deposit returns to, the action, and its rationale anchor.
type ProposalProcedure struct {
	Deposit       int64
	RewardAccount hash.RewardAccountHash
	Action        GovAction
	Anchor        Anchor
}

type wireProposalProcedure struct {
	_             struct{} `cbor:",toarray"`
	Deposit       int64
	RewardAccount hash.RewardAccountHash
	Action        GovAction
	Anchor        Anchor
}

func (p ProposalProcedure) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireProposalProcedure{
		Deposit: p.Deposit, RewardAccount: p.RewardAccount, Action: p.Action, Anchor: p.Anchor,
	})
}

func (p *ProposalProcedure) UnmarshalCBOR(data []byte) error {
	var w wireProposalProcedure
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: proposal procedure: %v", err)
	}
	*p = ProposalProcedure{Deposit: w.Deposit, RewardAccount: w.RewardAccount, Action: w.Action, Anchor: w.Anchor}
	return nil
}

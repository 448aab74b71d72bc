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

// Package txbuilder implements the transaction builder (component K,
// spec §4.4): it orchestrates every other component into a finalized,
// optionally signed Transaction. Builder is not safe for concurrent
// use by multiple goroutines on the same instance (spec §5) — it holds
// mutable staging state with no internal locking, matching the
// teacher's own builders (ledger.MockTransaction and friends).
package txbuilder

import (
	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/chaincontext"
	"github.com/go-cardano/cardanotx/coinselection"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/nativescript"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

// scriptSource is either an inline script (attached to the witness
// set) or a pointer at a reference input expected to already carry it
// on-chain (spec §4.4: "script may be inline in the UTxO, supplied
// directly, carried by a reference-input UTxO, or located by scanning
// input-address UTxOs").
type scriptSource struct {
	script *tx.Script
	refIn  *tx.Input
}

// scriptWitness pairs a script source with its optional datum and
// redeemer for one scripted spend/mint/cert/withdrawal.
type scriptWitness struct {
	source   scriptSource
	datum    *plutus.Data
	redeemer plutus.Redeemer
}

// Builder accumulates transaction state until Build or BuildAndSign is
// called (spec §4.4 State).
type Builder struct {
	chainCtx chaincontext.ChainContext
	params   protocol.Parameters
	selectors []coinselection.Selector

	inputs          []tx.UTxO
	inputAddresses  []address.Address
	excludedInputs  map[tx.Input]bool
	potentialInputs []tx.UTxO

	outputs []tx.Output

	ttl           *uint64
	validityStart *uint64

	mint value.MultiAsset

	nativeScripts []nativescript.Script
	certificates  []tx.Certificate
	withdrawals   map[hash.RewardAccountHash]int64

	auxiliaryData *tx.AuxiliaryData

	requiredSigners []hash.VerificationKeyHash
	referenceInputs []tx.Input

	votingProcedures   tx.VotingProcedures
	proposalProcedures []tx.ProposalProcedure

	inputScripts      map[tx.Input]scriptWitness
	mintScripts       map[hash.ScriptHash]scriptWitness
	certScripts       map[int]scriptWitness // index into certificates
	withdrawalScripts map[hash.RewardAccountHash]scriptWitness

	maxInputCount             int
	collateralReturnThreshold int64
	collateralChangeAddress   *address.Address
	useRedeemerMap            bool
	exUnitsMode               redeemerExUnitsMode
}

// New constructs a Builder against chainCtx, using selectors in order
// (spec §4.4 step 3, §9's explicit-param-passing REDESIGN FLAG — no
// selector is wired up unless the caller supplies it here).
func New(chainCtx chaincontext.ChainContext, selectors ...coinselection.Selector) (*Builder, error) {
	params, err := chainCtx.ProtocolParameters()
	if err != nil {
		return nil, err
	}
	if len(selectors) == 0 {
		selectors = []coinselection.Selector{coinselection.NewLargestFirst()}
	}
	return &Builder{
		chainCtx:                  chainCtx,
		params:                    params,
		selectors:                 selectors,
		excludedInputs:            make(map[tx.Input]bool),
		withdrawals:               make(map[hash.RewardAccountHash]int64),
		inputScripts:              make(map[tx.Input]scriptWitness),
		mintScripts:               make(map[hash.ScriptHash]scriptWitness),
		certScripts:               make(map[int]scriptWitness),
		withdrawalScripts:         make(map[hash.RewardAccountHash]scriptWitness),
		collateralReturnThreshold: 1_000_000,
		useRedeemerMap:            true,
	}, nil
}

// AddInput pins a UTxO into the transaction's inputs.
func (b *Builder) AddInput(u tx.UTxO) *Builder {
	b.inputs = append(b.inputs, u)
	return b
}

// AddPotentialInput offers u as a coin-selection candidate without
// pinning it.
func (b *Builder) AddPotentialInput(u tx.UTxO) *Builder {
	b.potentialInputs = append(b.potentialInputs, u)
	return b
}

// AddInputAddress marks addr so its UTxOs may be pulled from the chain
// context during selection.
func (b *Builder) AddInputAddress(addr address.Address) *Builder {
	b.inputAddresses = append(b.inputAddresses, addr)
	return b
}

// ExcludeInput removes in from every selection candidate pool.
func (b *Builder) ExcludeInput(in tx.Input) *Builder {
	b.excludedInputs[in] = true
	return b
}

// AddOutput appends out, failing if its value is below its own
// min-UTxO requirement (spec §4.4).
func (b *Builder) AddOutput(out tx.Output) error {
	min, err := minUTxOFor(out, b.params)
	if err != nil {
		return err
	}
	if out.Amount.Coin < min {
		return apollerr.InvalidTransaction(
			"txbuilder: output coin %d below min-utxo requirement %d", out.Amount.Coin, min,
		)
	}
	b.outputs = append(b.outputs, out)
	return nil
}

// SetTTL sets the transaction's upper validity bound (slot).
func (b *Builder) SetTTL(slot uint64) *Builder { b.ttl = &slot; return b }

// SetValidityStart sets the transaction's lower validity bound (slot).
func (b *Builder) SetValidityStart(slot uint64) *Builder { b.validityStart = &slot; return b }

// SetMaxInputCount bounds how many inputs coin selection may choose.
func (b *Builder) SetMaxInputCount(n int) *Builder { b.maxInputCount = n; return b }

// SetCollateralChangeAddress sets where collateral-return change is
// sent when collateral input value exceeds the fee requirement by more
// than CollateralReturnThreshold.
func (b *Builder) SetCollateralChangeAddress(addr address.Address) *Builder {
	b.collateralChangeAddress = &addr
	return b
}

// SetUseRedeemerMap toggles the pre-Chang array vs Chang-era map
// redeemer wire shape (spec §9, default true).
func (b *Builder) SetUseRedeemerMap(v bool) *Builder { b.useRedeemerMap = v; return b }

// AddNativeScript attaches a native script witness not tied to any
// particular spend (e.g. one proving a multisig stake credential).
func (b *Builder) AddNativeScript(s nativescript.Script) *Builder {
	b.nativeScripts = append(b.nativeScripts, s)
	return b
}

// AddCertificate appends a certificate.
func (b *Builder) AddCertificate(c tx.Certificate) *Builder {
	b.certificates = append(b.certificates, c)
	return b
}

// AddWithdrawal registers a plain (script-free) reward withdrawal
// (spec §4.4 EXPANDED).
func (b *Builder) AddWithdrawal(account hash.RewardAccountHash, amount int64) *Builder {
	b.withdrawals[account] = amount
	return b
}

// MintAssets adds positive quantities to mint under policy.
func (b *Builder) MintAssets(policy hash.ScriptHash, assets value.Asset) *Builder {
	return b.addMint(policy, assets, 1)
}

// BurnAssets subtracts quantities from mint under policy.
func (b *Builder) BurnAssets(policy hash.ScriptHash, assets value.Asset) *Builder {
	return b.addMint(policy, assets, -1)
}

func (b *Builder) addMint(policy hash.ScriptHash, assets value.Asset, sign int64) *Builder {
	if b.mint == nil {
		b.mint = make(value.MultiAsset)
	}
	h := hash.Hash28(policy)
	existing, ok := b.mint[h]
	if !ok {
		existing = make(value.Asset, len(assets))
		b.mint[h] = existing
	}
	for name, qty := range assets {
		existing[name] += sign * qty
	}
	return b
}

// SetAuxiliaryData sets plain transaction metadata (spec §4.4
// EXPANDED: auxiliary data is a required field of TransactionBody via
// auxiliary_data_hash even though spec.md's table 3.4 footnote drops
// it from the public surface).
func (b *Builder) SetAuxiliaryData(metadata map[uint64]tx.Metadatum) *Builder {
	aux := tx.NewAuxiliaryData(metadata)
	b.auxiliaryData = &aux
	return b
}

// AddAuxiliaryDataCBOR merges a raw CBOR-encoded auxiliary_data item
// (plain metadata map or tag-259-wrapped map-with-scripts) into the
// builder's staged auxiliary data.
func (b *Builder) AddAuxiliaryDataCBOR(data []byte) error {
	var incoming tx.AuxiliaryData
	if err := incoming.UnmarshalCBOR(data); err != nil {
		return err
	}
	if b.auxiliaryData == nil {
		b.auxiliaryData = &incoming
		return nil
	}
	merged := *b.auxiliaryData
	if merged.Metadata == nil {
		merged.Metadata = make(map[uint64]tx.Metadatum)
	}
	for k, v := range incoming.Metadata {
		merged.Metadata[k] = v
	}
	merged.NativeScripts = append(merged.NativeScripts, incoming.NativeScripts...)
	merged.PlutusV1 = append(merged.PlutusV1, incoming.PlutusV1...)
	merged.PlutusV2 = append(merged.PlutusV2, incoming.PlutusV2...)
	merged.PlutusV3 = append(merged.PlutusV3, incoming.PlutusV3...)
	b.auxiliaryData = &merged
	return nil
}

// AddVote appends a ballot to voting_procedures.
func (b *Builder) AddVote(voter tx.Voter, action tx.GovActionId, vote tx.Vote, anchor *tx.Anchor) *Builder {
	if b.votingProcedures == nil {
		b.votingProcedures = make(tx.VotingProcedures)
	}
	byAction, ok := b.votingProcedures[voter]
	if !ok {
		byAction = make(map[tx.GovActionId]tx.VotingProcedure)
		b.votingProcedures[voter] = byAction
	}
	byAction[action] = tx.VotingProcedure{Vote: vote, Anchor: anchor}
	return b
}

// AddProposal appends a governance action proposal.
func (b *Builder) AddProposal(deposit int64, rewardAccount hash.RewardAccountHash, action tx.GovAction, anchor tx.Anchor) *Builder {
	b.proposalProcedures = append(b.proposalProcedures, tx.ProposalProcedure{
		Deposit: deposit, RewardAccount: rewardAccount, Action: action, Anchor: anchor,
	})
	return b
}

// AddReferenceInput marks in as a reference input (carrying a script
// or inline datum another party can read without spending it).
func (b *Builder) AddReferenceInput(in tx.Input) *Builder {
	b.referenceInputs = append(b.referenceInputs, in)
	return b
}

// AddRequiredSigner records a verification key hash the finalized
// transaction must be signed by, beyond what input ownership implies.
func (b *Builder) AddRequiredSigner(h hash.VerificationKeyHash) *Builder {
	b.requiredSigners = append(b.requiredSigners, h)
	return b
}

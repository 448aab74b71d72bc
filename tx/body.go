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
	"github.com/go-cardano/cardanotx/value"
)

// Body is the TransactionBody (spec §3.4): map-shaped with numeric
// keys 0..22, most of them optional. Only Inputs, Outputs, and Fee
// are mandatory per the ledger's CDDL.
type Body struct {
	Inputs                []Input
	Outputs               []Output
	Fee                   int64
	TTL                   *uint64
	Certificates          []Certificate
	Withdrawals           Withdrawals
	Update                cborx.RawMessage // decode-only: protocol param update proposal, never built by this module
	AuxiliaryDataHash     *hash.AnchorDataHash
	ValidityIntervalStart *uint64
	Mint                  value.MultiAsset
	ScriptDataHash        *hash.ScriptDataHash
	Collateral            []Input
	RequiredSigners       []hash.VerificationKeyHash
	NetworkID             *uint8
	CollateralReturn      *Output
	TotalCollateral       *int64
	ReferenceInputs       []Input
	VotingProcedures      VotingProcedures
	ProposalProcedures    []ProposalProcedure
	CurrentTreasuryValue  *int64
	Donation              *int64
}

// NewBody constructs the minimal mandatory Body.
func NewBody(inputs []Input, outputs []Output, fee int64) Body {
	return Body{Inputs: inputs, Outputs: outputs, Fee: fee}
}

type wireBody struct {
	Inputs                []Input                    `cbor:"0,keyasint"`
	Outputs               []Output                   `cbor:"1,keyasint"`
	Fee                   int64                      `cbor:"2,keyasint"`
	TTL                   *uint64                    `cbor:"3,keyasint,omitempty"`
	Certificates          []Certificate               `cbor:"4,keyasint,omitempty"`
	Withdrawals           Withdrawals                 `cbor:"5,keyasint,omitempty"`
	Update                cborx.RawMessage            `cbor:"6,keyasint,omitempty"`
	AuxiliaryDataHash     *hash.AnchorDataHash         `cbor:"7,keyasint,omitempty"`
	ValidityIntervalStart *uint64                      `cbor:"8,keyasint,omitempty"`
	Mint                  value.MultiAsset             `cbor:"9,keyasint,omitempty"`
	ScriptDataHash        *hash.ScriptDataHash         `cbor:"11,keyasint,omitempty"`
	Collateral            []Input                      `cbor:"13,keyasint,omitempty"`
	RequiredSigners       []hash.VerificationKeyHash    `cbor:"14,keyasint,omitempty"`
	NetworkID             *uint8                        `cbor:"15,keyasint,omitempty"`
	CollateralReturn      *Output                       `cbor:"16,keyasint,omitempty"`
	TotalCollateral       *int64                        `cbor:"17,keyasint,omitempty"`
	ReferenceInputs       []Input                       `cbor:"18,keyasint,omitempty"`
	VotingProcedures      VotingProcedures              `cbor:"19,keyasint,omitempty"`
	ProposalProcedures    []ProposalProcedure           `cbor:"20,keyasint,omitempty"`
	CurrentTreasuryValue  *int64                        `cbor:"21,keyasint,omitempty"`
	Donation              *int64                        `cbor:"22,keyasint,omitempty"`
}

func (b Body) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireBody{
		Inputs: b.Inputs, Outputs: b.Outputs, Fee: b.Fee, TTL: b.TTL,
		Certificates: b.Certificates, Withdrawals: b.Withdrawals, Update: b.Update,
		AuxiliaryDataHash: b.AuxiliaryDataHash, ValidityIntervalStart: b.ValidityIntervalStart,
		Mint: b.Mint, ScriptDataHash: b.ScriptDataHash, Collateral: b.Collateral,
		RequiredSigners: b.RequiredSigners, NetworkID: b.NetworkID, CollateralReturn: b.CollateralReturn,
		TotalCollateral: b.TotalCollateral, ReferenceInputs: b.ReferenceInputs,
		VotingProcedures: b.VotingProcedures, ProposalProcedures: b.ProposalProcedures,
		CurrentTreasuryValue: b.CurrentTreasuryValue, Donation: b.Donation,
	})
}

func (b *Body) UnmarshalCBOR(data []byte) error {
	var w wireBody
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: body: %v", err)
	}
	*b = Body{
		Inputs: w.Inputs, Outputs: w.Outputs, Fee: w.Fee, TTL: w.TTL,
		Certificates: w.Certificates, Withdrawals: w.Withdrawals, Update: w.Update,
		AuxiliaryDataHash: w.AuxiliaryDataHash, ValidityIntervalStart: w.ValidityIntervalStart,
		Mint: w.Mint, ScriptDataHash: w.ScriptDataHash, Collateral: w.Collateral,
		RequiredSigners: w.RequiredSigners, NetworkID: w.NetworkID, CollateralReturn: w.CollateralReturn,
		TotalCollateral: w.TotalCollateral, ReferenceInputs: w.ReferenceInputs,
		VotingProcedures: w.VotingProcedures, ProposalProcedures: w.ProposalProcedures,
		CurrentTreasuryValue: w.CurrentTreasuryValue, Donation: w.Donation,
	}
	return nil
}

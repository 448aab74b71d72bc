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

package txbuilder

import (
	"sort"

	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/fee"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

// provisionalFinalize assembles a Body/WitnessSet pair good enough to
// measure a serialized size from: it fixes every redeemer's index
// against sortedInputs and the builder's other canonical orderings
// (spec §4.4 step 2), but leaves collateral and script_data_hash for
// finalize to add once collateral selection and the witness set are
// both settled.
func (b *Builder) provisionalFinalize(sortedInputs []tx.UTxO, changeOutputs []tx.Output, txFee int64) (tx.Body, tx.WitnessSet, error) {
	ins := make([]tx.Input, len(sortedInputs))
	for i, u := range sortedInputs {
		ins[i] = u.Input
	}
	outputs := append(append([]tx.Output(nil), b.outputs...), changeOutputs...)

	body := tx.Body{
		Inputs:                ins,
		Outputs:               outputs,
		Fee:                   txFee,
		TTL:                   b.ttl,
		Certificates:          b.certificates,
		Withdrawals:           tx.Withdrawals(b.withdrawals),
		ValidityIntervalStart: b.validityStart,
		Mint:                  b.mint,
		RequiredSigners:       b.requiredSigners,
		ReferenceInputs:       b.referenceInputs,
		VotingProcedures:      b.votingProcedures,
		ProposalProcedures:    b.proposalProcedures,
	}

	witnessSet, err := b.buildWitnessSet(ins)
	if err != nil {
		return tx.Body{}, tx.WitnessSet{}, err
	}

	if len(witnessSet.Redeemers) > 0 || len(witnessSet.PlutusData) > 0 {
		languages := languagesUsed(witnessSet)
		sdh, ok, serr := fee.ScriptDataHash(witnessSet.Redeemers, b.useRedeemerMap, witnessSet.PlutusData, languages, b.params)
		if serr != nil {
			return tx.Body{}, tx.WitnessSet{}, serr
		}
		if ok {
			body.ScriptDataHash = &sdh
		}
	}

	if b.auxiliaryData != nil {
		raw, aerr := b.auxiliaryData.MarshalCBOR()
		if aerr != nil {
			return tx.Body{}, tx.WitnessSet{}, aerr
		}
		digest := hash.AnchorDataHash(crypto.Blake2b256(raw))
		body.AuxiliaryDataHash = &digest
	}

	return body, witnessSet, nil
}

// finalize completes provisionalFinalize's output with the collateral
// fields only known once collateral selection has run (spec §4.4
// step 5); script_data_hash and auxiliary_data_hash are already set by
// provisionalFinalize so the fee-tightening loop sizes them correctly.
func (b *Builder) finalize(
	finalInputs []tx.UTxO,
	changeOutputs []tx.Output,
	txFee int64,
	collateralIn []tx.UTxO,
	collateralReturn *tx.Output,
	totalCollateral *int64,
) (tx.Body, tx.WitnessSet, error) {
	sortedInputs := sortUTxOs(finalInputs)
	body, witnessSet, err := b.provisionalFinalize(sortedInputs, changeOutputs, txFee)
	if err != nil {
		return tx.Body{}, tx.WitnessSet{}, err
	}

	if len(collateralIn) > 0 {
		col := make([]tx.Input, len(collateralIn))
		for i, u := range collateralIn {
			col[i] = u.Input
		}
		sort.Slice(col, func(i, j int) bool { return col[i].Less(col[j]) })
		body.Collateral = col
		body.CollateralReturn = collateralReturn
		body.TotalCollateral = totalCollateral
	}

	return body, witnessSet, nil
}

func languagesUsed(ws tx.WitnessSet) []uint8 {
	var out []uint8
	if len(ws.PlutusV1Scripts) > 0 {
		out = append(out, 0)
	}
	if len(ws.PlutusV2Scripts) > 0 {
		out = append(out, 1)
	}
	if len(ws.PlutusV3Scripts) > 0 {
		out = append(out, 2)
	}
	return out
}

// buildWitnessSet computes every staged redeemer's final index against
// the ledger's canonical per-tag orderings (spec §4.4 step 2): spend
// redeemers index into sortedInputs, mint redeemers into the mint
// field's sorted policies, certificate redeemers into the certificates
// array position, and withdrawal redeemers into the sorted reward
// accounts.
func (b *Builder) buildWitnessSet(sortedInputs []tx.Input) (tx.WitnessSet, error) {
	ws := tx.NewWitnessSet()
	ws.UseRedeemerMap = b.useRedeemerMap
	redeemers := make(map[plutus.RedeemerKey]plutus.Redeemer)
	var datums []plutus.Data
	seen := make(map[hash.ScriptHash]bool)

	addScript := func(s *tx.Script) error {
		if s == nil {
			return nil
		}
		h, err := s.Hash()
		if err != nil {
			return err
		}
		if seen[h] {
			return nil
		}
		seen[h] = true
		switch s.Kind {
		case tx.ScriptKindNative:
			ws.NativeScripts = append(ws.NativeScripts, s.Native)
		case tx.ScriptKindPlutusV1:
			ws.PlutusV1Scripts = append(ws.PlutusV1Scripts, s.Plutus)
		case tx.ScriptKindPlutusV2:
			ws.PlutusV2Scripts = append(ws.PlutusV2Scripts, s.Plutus)
		case tx.ScriptKindPlutusV3:
			ws.PlutusV3Scripts = append(ws.PlutusV3Scripts, s.Plutus)
		}
		return nil
	}

	for idx, in := range sortedInputs {
		w, ok := b.inputScripts[in]
		if !ok {
			continue
		}
		r := w.redeemer
		r.Index = uint32(idx)
		redeemers[r.Key()] = r
		if w.datum != nil {
			datums = append(datums, *w.datum)
		}
		if w.source.refIn == nil {
			if err := addScript(w.source.script); err != nil {
				return tx.WitnessSet{}, err
			}
		}
	}

	mintPolicies := value.Value{MultiAsset: b.mint}.Policies()
	for idx, policy := range mintPolicies {
		w, ok := b.mintScripts[hash.ScriptHash(policy)]
		if !ok {
			continue
		}
		r := w.redeemer
		r.Index = uint32(idx)
		redeemers[r.Key()] = r
		if err := addScript(w.source.script); err != nil {
			return tx.WitnessSet{}, err
		}
	}

	for idx := range b.certificates {
		w, ok := b.certScripts[idx]
		if !ok {
			continue
		}
		r := w.redeemer
		r.Index = uint32(idx)
		redeemers[r.Key()] = r
		if err := addScript(w.source.script); err != nil {
			return tx.WitnessSet{}, err
		}
	}

	accounts := tx.Withdrawals(b.withdrawals).Accounts()
	for idx, acct := range accounts {
		w, ok := b.withdrawalScripts[acct]
		if !ok {
			continue
		}
		r := w.redeemer
		r.Index = uint32(idx)
		redeemers[r.Key()] = r
		if err := addScript(w.source.script); err != nil {
			return tx.WitnessSet{}, err
		}
	}

	for _, s := range b.nativeScripts {
		script := tx.NewNativeScript(s)
		if err := addScript(&script); err != nil {
			return tx.WitnessSet{}, err
		}
	}

	ws.Redeemers = redeemers
	ws.PlutusData = datums
	return ws, nil
}

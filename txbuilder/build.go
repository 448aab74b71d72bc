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

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/coinselection"
	"github.com/go-cardano/cardanotx/fee"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

const feeTighteningRounds = 3

// Build assembles a finalized TransactionBody following spec §4.4's
// eight-step algorithm and returns the unsigned Transaction (witnesses
// other than signatures are attached; call BuildAndSign to also sign).
func (b *Builder) Build(changeAddress address.Address, mergeChange bool, collateralChangeAddress *address.Address) (tx.Transaction, error) {
	if err := b.resolveScripts(); err != nil {
		return tx.Transaction{}, err
	}

	finalInputs, err := b.selectInputs(changeAddress)
	if err != nil {
		return tx.Transaction{}, err
	}

	changeOutputs, txFee, err := b.tightenFee(finalInputs, changeAddress, mergeChange)
	if err != nil {
		return tx.Transaction{}, err
	}

	collateralIn, collateralReturn, totalCollateral, err := b.selectCollateral(txFee, collateralChangeAddress)
	if err != nil {
		return tx.Transaction{}, err
	}

	if b.hasUnestimatedRedeemers() {
		if err := b.estimateExecutionUnits(finalInputs, changeOutputs, txFee); err != nil {
			return tx.Transaction{}, err
		}
		changeOutputs, txFee, err = b.tightenFee(finalInputs, changeAddress, mergeChange)
		if err != nil {
			return tx.Transaction{}, err
		}
		collateralIn, collateralReturn, totalCollateral, err = b.selectCollateral(txFee, collateralChangeAddress)
		if err != nil {
			return tx.Transaction{}, err
		}
	}

	body, witnessSet, err := b.finalize(finalInputs, changeOutputs, txFee, collateralIn, collateralReturn, totalCollateral)
	if err != nil {
		return tx.Transaction{}, err
	}

	t := tx.NewTransaction(body, witnessSet)
	t.AuxiliaryData = b.auxiliaryData
	return t, nil
}

// EstimateFee runs selection and the fee-tightening loop without
// attaching collateral or performing execution-unit evaluation, for
// callers previewing cost before a full Build (spec §4.4 EXPANDED).
func (b *Builder) EstimateFee(changeAddress address.Address, mergeChange bool) (int64, error) {
	if err := b.resolveScripts(); err != nil {
		return 0, err
	}
	finalInputs, err := b.selectInputs(changeAddress)
	if err != nil {
		return 0, err
	}
	_, txFee, err := b.tightenFee(finalInputs, changeAddress, mergeChange)
	return txFee, err
}

// EstimateExecutionUnits resolves every zero-ex-units redeemer by
// calling chain_context.evaluate_tx against a provisional transaction,
// patching the builder's staged redeemers in place.
func (b *Builder) EstimateExecutionUnits(changeAddress address.Address, mergeChange bool) error {
	if err := b.resolveScripts(); err != nil {
		return err
	}
	finalInputs, err := b.selectInputs(changeAddress)
	if err != nil {
		return err
	}
	changeOutputs, txFee, err := b.tightenFee(finalInputs, changeAddress, mergeChange)
	if err != nil {
		return err
	}
	return b.estimateExecutionUnits(finalInputs, changeOutputs, txFee)
}

func (b *Builder) candidateInputs() ([]tx.UTxO, error) {
	candidates := append([]tx.UTxO(nil), b.potentialInputs...)
	for _, addr := range b.inputAddresses {
		utxos, err := b.chainCtx.UTxOs(addr)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, utxos...)
	}
	pinned := make(map[tx.Input]bool, len(b.inputs))
	for _, u := range b.inputs {
		pinned[u.Input] = true
	}
	out := candidates[:0]
	for _, u := range candidates {
		if pinned[u.Input] || b.excludedInputs[u.Input] {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// requestedForSelection is the value coin selection must cover: net
// outputs plus certificate deposits, less what withdrawals and newly
// minted assets already supply, plus what burning requires, plus a
// pessimistic fee upper bound (spec §4.4 step 3).
func (b *Builder) requestedForSelection() value.Value {
	requested := sumOutputs(b.outputs)
	requested = requested.Add(value.NewSimpleValue(depositTotal(b.certificates, b.params)))
	requested = subClamp(requested, withdrawalsValueOf(tx.Withdrawals(b.withdrawals)))
	created, burned := splitMint(b.mint)
	requested = subClamp(requested, created)
	requested = requested.Add(burned)
	maxFee := fee.LinearFee(int(b.params.MaxTxSize), b.params)
	requested = requested.Add(value.NewSimpleValue(maxFee))
	return requested
}

func (b *Builder) selectInputs(changeAddress address.Address) ([]tx.UTxO, error) {
	candidates, err := b.candidateInputs()
	if err != nil {
		return nil, err
	}
	requested := b.requestedForSelection()
	opts := coinselection.Options{
		MaxInputCount:  b.maxInputCount,
		RespectMinUTxO: true,
		MinUTxOForChange: func(v value.Value) (int64, error) {
			return minUTxOFor(tx.NewOutput(changeAddress, v), b.params)
		},
	}
	var lastErr error
	for _, sel := range b.selectors {
		result, err := sel.Select(candidates, requested, opts)
		if err != nil {
			lastErr = err
			continue
		}
		return append(append([]tx.UTxO(nil), b.inputs...), result.Selected...), nil
	}
	if lastErr == nil {
		lastErr = apollerr.InsufficientUTxOBalance("txbuilder: no selector configured")
	}
	return nil, lastErr
}

// tightenFee iterates the fee estimate against a provisional body,
// recomputing the change output(s) each round (spec §4.4 step 4).
func (b *Builder) tightenFee(finalInputs []tx.UTxO, changeAddress address.Address, mergeChange bool) ([]tx.Output, int64, error) {
	sortedInputs := sortUTxOs(finalInputs)
	var txFee int64
	var changeOutputs []tx.Output
	for round := 0; round < feeTighteningRounds; round++ {
		change, err := b.computeChange(sortedInputs, txFee)
		if err != nil {
			return nil, 0, err
		}
		changeOutputs, err = b.splitChange(change, changeAddress, mergeChange)
		if err != nil {
			return nil, 0, err
		}
		body, witnessSet, ferr := b.provisionalFinalize(sortedInputs, changeOutputs, txFee)
		if ferr != nil {
			return nil, 0, ferr
		}
		t := tx.NewTransaction(body, witnessSet)
		t.AuxiliaryData = b.auxiliaryData
		raw, merr := t.MarshalCBOR()
		if merr != nil {
			return nil, 0, merr
		}
		newFee, ferr2 := fee.TotalFee(len(raw), b.redeemerExUnits(), b.referenceScriptsSize(sortedInputs), b.params)
		if ferr2 != nil {
			return nil, 0, ferr2
		}
		if newFee == txFee {
			break
		}
		txFee = newFee
	}
	return changeOutputs, txFee, nil
}

func (b *Builder) computeChange(inputs []tx.UTxO, txFee int64) (value.Value, error) {
	totalIn := sumUTxOs(inputs).Add(value.NewValue(0, b.mint)).Add(withdrawalsValueOf(tx.Withdrawals(b.withdrawals)))
	if totalIn.Coin < 0 {
		return value.Value{}, apollerr.InvalidTransaction("txbuilder: mint/burn produces negative coin balance")
	}
	for _, asset := range totalIn.MultiAsset {
		for name, qty := range asset {
			if qty < 0 {
				return value.Value{}, apollerr.InvalidTransaction("txbuilder: burn of asset %q exceeds available inputs", name)
			}
		}
	}
	totalOut := sumOutputs(b.outputs).Add(value.NewSimpleValue(txFee + depositTotal(b.certificates, b.params)))
	return totalIn.Sub(totalOut)
}

// splitChange assembles the change output(s): merged into an existing
// same-address output when mergeChange is set and possible, split
// across multiple outputs when the multi-asset bundle would exceed
// MaxValueSize (spec §4.4 step 4).
func (b *Builder) splitChange(change value.Value, changeAddress address.Address, mergeChange bool) ([]tx.Output, error) {
	if change.IsZero() {
		return nil, nil
	}
	if mergeChange {
		for i, o := range b.outputs {
			if o.Address.String() == changeAddress.String() && !o.PostAlonzo {
				b.outputs[i].Amount = o.Amount.Add(change)
				return nil, nil
			}
		}
	}
	raw, err := change.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	if uint64(len(raw)) <= b.params.MaxValueSize || len(change.MultiAsset) <= 1 {
		return []tx.Output{tx.NewOutput(changeAddress, change)}, nil
	}
	return b.splitChangeByPolicy(change, changeAddress)
}

func (b *Builder) splitChangeByPolicy(change value.Value, changeAddress address.Address) ([]tx.Output, error) {
	policies := change.Policies()
	var outputs []tx.Output
	remainingCoin := change.Coin
	for i, policy := range policies {
		bundle := value.NewValue(0, value.MultiAsset{policy: change.MultiAsset[policy]})
		coin := int64(0)
		if i == len(policies)-1 {
			coin = remainingCoin
		}
		out := tx.NewOutput(changeAddress, value.NewValue(coin, bundle.MultiAsset))
		min, err := minUTxOFor(out, b.params)
		if err != nil {
			return nil, err
		}
		if out.Amount.Coin < min {
			out.Amount.Coin = min
			remainingCoin -= min
		} else {
			remainingCoin -= coin
		}
		outputs = append(outputs, out)
	}
	if remainingCoin != 0 && len(outputs) > 0 {
		outputs[len(outputs)-1].Amount.Coin += remainingCoin
	}
	return outputs, nil
}

func sortUTxOs(utxos []tx.UTxO) []tx.UTxO {
	out := append([]tx.UTxO(nil), utxos...)
	sort.Slice(out, func(i, j int) bool { return out[i].Input.Less(out[j].Input) })
	return out
}

func (b *Builder) hasUnestimatedRedeemers() bool {
	for _, w := range b.inputScripts {
		if w.redeemer.ExUnits.IsZero() {
			return true
		}
	}
	for _, w := range b.mintScripts {
		if w.redeemer.ExUnits.IsZero() {
			return true
		}
	}
	for _, w := range b.certScripts {
		if w.redeemer.ExUnits.IsZero() {
			return true
		}
	}
	for _, w := range b.withdrawalScripts {
		if w.redeemer.ExUnits.IsZero() {
			return true
		}
	}
	return false
}

func (b *Builder) redeemerExUnits() []plutus.ExecutionUnits {
	var out []plutus.ExecutionUnits
	for _, w := range b.inputScripts {
		out = append(out, w.redeemer.ExUnits)
	}
	for _, w := range b.mintScripts {
		out = append(out, w.redeemer.ExUnits)
	}
	for _, w := range b.certScripts {
		out = append(out, w.redeemer.ExUnits)
	}
	for _, w := range b.withdrawalScripts {
		out = append(out, w.redeemer.ExUnits)
	}
	return out
}

func (b *Builder) referenceScriptsSize(inputs []tx.UTxO) uint64 {
	var total uint64
	seen := make(map[tx.Input]bool)
	for _, w := range b.allScriptWitnesses() {
		if w.source.refIn == nil || seen[*w.source.refIn] {
			continue
		}
		seen[*w.source.refIn] = true
		if w.source.script != nil {
			raw, err := w.source.script.MarshalCBOR()
			if err == nil {
				total += uint64(len(raw))
			}
		}
	}
	return total
}

func (b *Builder) allScriptWitnesses() []scriptWitness {
	var out []scriptWitness
	for _, w := range b.inputScripts {
		out = append(out, w)
	}
	for _, w := range b.mintScripts {
		out = append(out, w)
	}
	for _, w := range b.certScripts {
		out = append(out, w)
	}
	for _, w := range b.withdrawalScripts {
		out = append(out, w)
	}
	return out
}

// resolveScripts fills in any scriptWitness still missing its source
// (spec §4.4 step 1): for spend witnesses this retries resolution
// against the pinned UTxO now that all script inputs are registered.
func (b *Builder) resolveScripts() error {
	for in, w := range b.inputScripts {
		if w.source.script != nil {
			continue
		}
		return apollerr.InvalidArgument("txbuilder: unresolved script for input %s#%d", in.TransactionID, in.Index)
	}
	return nil
}

// selectCollateral picks pure-ADA UTxOs from the registered input
// addresses totalling ceil(fee*collateral_percent/100), bounded by
// max_collateral_inputs (spec §4.4 step 5). Returns nil/zero results
// when no Plutus redeemer is present.
func (b *Builder) selectCollateral(txFee int64, collateralChangeAddress *address.Address) ([]tx.UTxO, *tx.Output, *int64, error) {
	if len(b.allScriptWitnesses()) == 0 {
		return nil, nil, nil, nil
	}
	required := ceilDivInt64(txFee*int64(b.params.CollateralPercent), 100)

	var pureAda []tx.UTxO
	for _, addr := range b.inputAddresses {
		utxos, err := b.chainCtx.UTxOs(addr)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, u := range utxos {
			if len(u.Output.Amount.MultiAsset) == 0 {
				pureAda = append(pureAda, u)
			}
		}
	}

	selector := coinselection.NewLargestFirst()
	result, err := selector.Select(pureAda, value.NewSimpleValue(required), coinselection.Options{
		MaxInputCount: int(b.params.MaxCollateralInputs),
	})
	if err != nil {
		return nil, nil, nil, err
	}

	total := sumUTxOs(result.Selected).Coin
	var collateralReturn *tx.Output
	if total-required > b.collateralReturnThreshold && collateralChangeAddress != nil {
		out := tx.NewOutput(*collateralChangeAddress, value.NewSimpleValue(total-required))
		collateralReturn = &out
	}
	return result.Selected, collateralReturn, &total, nil
}

func ceilDivInt64(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// estimateExecutionUnits serializes a provisional transaction with
// every zero-ex-units redeemer still zero, submits it to
// chain_context.evaluate_tx, and patches each redeemer with the
// returned execution units (spec §4.4 step 6).
func (b *Builder) estimateExecutionUnits(finalInputs []tx.UTxO, changeOutputs []tx.Output, txFee int64) error {
	sortedInputs := sortUTxOs(finalInputs)
	body, witnessSet, err := b.provisionalFinalize(sortedInputs, changeOutputs, txFee)
	if err != nil {
		return err
	}
	t := tx.NewTransaction(body, witnessSet)
	t.AuxiliaryData = b.auxiliaryData
	raw, err := t.MarshalCBOR()
	if err != nil {
		return err
	}
	results, err := b.chainCtx.EvaluateTx(raw)
	if err != nil {
		return err
	}
	patch := func(w *scriptWitness) {
		if eu, ok := results[w.redeemer.Key()]; ok {
			w.redeemer.ExUnits = eu
		}
	}
	for in, w := range b.inputScripts {
		patch(&w)
		b.inputScripts[in] = w
	}
	for policy, w := range b.mintScripts {
		patch(&w)
		b.mintScripts[policy] = w
	}
	for idx, w := range b.certScripts {
		patch(&w)
		b.certScripts[idx] = w
	}
	for acct, w := range b.withdrawalScripts {
		patch(&w)
		b.withdrawalScripts[acct] = w
	}
	return nil
}

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

	"github.com/go-cardano/cardanotx/fee"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

// minUTxOFor dispatches to the era-appropriate min-lovelace formula
// based on whether out uses the post-Alonzo wire shape.
func minUTxOFor(out tx.Output, params protocol.Parameters) (int64, error) {
	if out.PostAlonzo || out.Datum.Kind != tx.DatumNone || out.ScriptRef != nil {
		return fee.MinLovelacePostAlonzo(out, params)
	}
	numAssets, totalNameBytes, numPolicies := 0, 0, 0
	seenNames := make(map[string]bool)
	for _, policy := range out.Amount.Policies() {
		names := out.Amount.AssetNames(policy)
		numPolicies++
		numAssets += len(names)
		for _, n := range names {
			// bundle_size dedups total_asset_name_len across the whole
			// bundle even though num_assets counts per-occurrence
			// (original_source/pycardano/utils.py's unique_assets set).
			if !seenNames[n] {
				seenNames[n] = true
				totalNameBytes += len(n)
			}
		}
	}
	return fee.MinLovelacePreAlonzo(numAssets, totalNameBytes, numPolicies, 0, params), nil
}

func sumUTxOs(utxos []tx.UTxO) value.Value {
	total := value.NewValue(0, nil)
	for _, u := range utxos {
		total = total.Add(u.Output.Amount)
	}
	return total
}

func sumOutputs(outputs []tx.Output) value.Value {
	total := value.NewValue(0, nil)
	for _, o := range outputs {
		total = total.Add(o.Amount)
	}
	return total
}

// subClamp returns the pointwise difference v - o, flooring every
// component at zero instead of erroring — used only to size how much
// more coin selection still needs to cover, never for a value that
// ends up on the wire.
func subClamp(v, o value.Value) value.Value {
	out := value.NewValue(v.Coin-o.Coin, nil)
	if out.Coin < 0 {
		out.Coin = 0
	}
	if v.MultiAsset != nil {
		out.MultiAsset = make(value.MultiAsset)
		for policy, asset := range v.MultiAsset {
			remaining := make(value.Asset, len(asset))
			for name, qty := range asset {
				have := qty
				if o.MultiAsset != nil {
					have -= o.MultiAsset[policy][name]
				}
				if have > 0 {
					remaining[name] = have
				}
			}
			if len(remaining) > 0 {
				out.MultiAsset[policy] = remaining
			}
		}
	}
	return out
}

// splitMint separates a mint field into the value it newly creates
// (reducing how much coin selection must find among inputs) and the
// value it burns (which must additionally be covered by inputs).
func splitMint(mint value.MultiAsset) (created, burned value.Value) {
	created, burned = value.NewValue(0, nil), value.NewValue(0, nil)
	for policy, asset := range mint {
		for name, qty := range asset {
			if qty == 0 {
				continue
			}
			v := value.NewValue(0, value.MultiAsset{policy: value.Asset{name: abs64(qty)}})
			if qty > 0 {
				created = created.Add(v)
			} else {
				burned = burned.Add(v)
			}
		}
	}
	return created, burned
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// withdrawalsValue converts a withdrawals map into a coin-only Value.
func withdrawalsValueOf(w tx.Withdrawals) value.Value {
	var total int64
	for _, amt := range w {
		total += amt
	}
	return value.NewSimpleValue(total)
}

// depositTotal sums the net deposit this transaction's certificates
// require: legacy stake/pool certs cost the protocol-level
// key_deposit/pool_deposit with no amount of their own, Conway-era
// certs carry an explicit Deposit, and every deregistration refunds
// what its matching registration cost (spec §4.4 step 4's "certificate
// deposits" term, negative for refunds).
func depositTotal(certs []tx.Certificate, params protocol.Parameters) int64 {
	var total int64
	for _, c := range certs {
		switch c.Kind {
		case tx.CertStakeRegistration:
			total += int64(params.KeyDeposit)
		case tx.CertStakeDeregistration:
			total -= int64(params.KeyDeposit)
		case tx.CertPoolRegistration:
			total += int64(params.PoolDeposit)
		case tx.CertRegCert, tx.CertStakeRegDelegCert, tx.CertVoteRegDelegCert,
			tx.CertStakeVoteRegDelegCert, tx.CertRegDrep:
			total += c.Deposit
		case tx.CertUnregCert, tx.CertUnregDrep:
			total -= c.Deposit
		}
	}
	return total
}

func containsInput(ins []tx.Input, target tx.Input) bool {
	for _, i := range ins {
		if i == target {
			return true
		}
	}
	return false
}

func sortInputsIndex(ins []tx.Input) []int {
	idx := make([]int, len(ins))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return ins[idx[a]].Less(ins[idx[b]]) })
	return idx
}

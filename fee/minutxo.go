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

package fee

import (
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
)

// MinLovelacePostAlonzo computes `(160 + serialized_output_size) *
// coins_per_utxo_byte`, the post-Alonzo min-UTxO formula (spec §4.3).
func MinLovelacePostAlonzo(output tx.Output, params protocol.Parameters) (int64, error) {
	serialized, err := output.MarshalCBOR()
	if err != nil {
		return 0, err
	}
	return int64(160+len(serialized)) * int64(params.CoinsPerUTxOByte), nil
}

// MinLovelacePreAlonzo computes the legacy word-based min-UTxO formula
// (spec §4.3): a UTxO entry occupies `27 + bundle_size + datum_size`
// machine words, where bundle_size grows with the number of distinct
// assets, asset-name bytes, and policies a Value carries.
func MinLovelacePreAlonzo(numAssets, totalAssetNameBytes, numPolicies int, datumSizeWords int, params protocol.Parameters) int64 {
	bundleSize := 0
	if numAssets > 0 || numPolicies > 0 {
		bundleSize = 6 + ceilDiv(numAssets*12+totalAssetNameBytes+numPolicies*28, 8)
	}
	words := 27 + bundleSize + datumSizeWords
	return int64(words) * int64(params.CoinsPerUTxOWord)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

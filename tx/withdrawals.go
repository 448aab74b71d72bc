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
	"sort"

	"github.com/go-cardano/cardanotx/hash"
)

// Withdrawals maps a reward account to the amount withdrawn from its
// accumulated rewards in this transaction (spec §3.4). Wire-encoded as
// a CBOR map keyed by the reward account's raw bytes, sorted
// canonically like any other map the ledger encodes.
type Withdrawals map[hash.RewardAccountHash]int64

// NewWithdrawals builds an empty withdrawal set.
func NewWithdrawals() Withdrawals {
	return make(Withdrawals)
}

// Accounts returns the reward accounts in canonical (byte-length then
// lexicographic) order.
func (w Withdrawals) Accounts() []hash.RewardAccountHash {
	accounts := make([]hash.RewardAccountHash, 0, len(w))
	for a := range w {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return hash.Hash32(accounts[i]).Compare(hash.Hash32(accounts[j])) < 0
	})
	return accounts
}

// Total sums all withdrawal amounts.
func (w Withdrawals) Total() int64 {
	var total int64
	for _, amount := range w {
		total += amount
	}
	return total
}

func (w Withdrawals) MarshalCBOR() ([]byte, error) {
	wire := make(map[hash.RewardAccountHash]int64, len(w))
	for k, v := range w {
		wire[k] = v
	}
	return cborMarshal(wire)
}

func (w *Withdrawals) UnmarshalCBOR(data []byte) error {
	var wire map[hash.RewardAccountHash]int64
	if err := cborUnmarshal(data, &wire); err != nil {
		return err
	}
	*w = Withdrawals(wire)
	return nil
}

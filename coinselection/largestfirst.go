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

package coinselection

import (
	"sort"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

// LargestFirst sorts candidates by lovelace descending and pops
// greedily until the requested value is covered (spec §4.5).
type LargestFirst struct{}

// NewLargestFirst constructs a LargestFirst selector.
func NewLargestFirst() LargestFirst { return LargestFirst{} }

func (LargestFirst) Select(candidates []tx.UTxO, requested value.Value, opts Options) (Result, error) {
	sorted := append([]tx.UTxO(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Output.Amount.Coin > sorted[j].Output.Amount.Coin
	})

	var selected []tx.UTxO
	remaining := sorted
	for !totalOf(selected).GreaterOrEqual(requested) {
		if len(remaining) == 0 {
			return Result{}, apollerr.InsufficientUTxOBalance(
				"coinselection: largest-first exhausted candidates before covering requested amount",
			)
		}
		if opts.MaxInputCount > 0 && len(selected) >= opts.MaxInputCount {
			return Result{}, apollerr.MaxInputCountExceeded(len(selected), opts.MaxInputCount)
		}
		selected = append(selected, remaining[0])
		remaining = remaining[1:]
	}

	selected, _, change, err := topUpForChange(selected, remaining, requested, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Selected: selected, Change: change}, nil
}

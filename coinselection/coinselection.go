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

// Package coinselection implements pluggable UTxO selection strategies
// (component J, spec §4.5): Largest-First and multi-asset-aware
// Random-Improve. txbuilder.Builder tries its configured selectors in
// order until one succeeds (spec §4.4 step 3).
package coinselection

import (
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

// Selector picks a subset of candidates covering requested, respecting
// maxInputCount and (if respectMinUTxO) leaving room for a change
// output that clears its own min-UTxO requirement.
type Selector interface {
	Select(candidates []tx.UTxO, requested value.Value, opts Options) (Result, error)
}

// Options configures a selection run (spec §4.5).
type Options struct {
	MaxInputCount  int
	RespectMinUTxO bool
	// MinUTxOForChange estimates the min-lovelace a change output of
	// the given Value would require; only consulted when
	// RespectMinUTxO is true. The selector has no protocol-parameter
	// access of its own (spec §9 explicit-param-passing REDESIGN FLAG),
	// so the builder supplies this as a closure instead.
	MinUTxOForChange func(v value.Value) (int64, error)
}

// Result is a completed selection: the chosen inputs and the leftover
// change value (selected minus requested).
type Result struct {
	Selected []tx.UTxO
	Change   value.Value
}

func totalOf(utxos []tx.UTxO) value.Value {
	total := value.NewValue(0, nil)
	for _, u := range utxos {
		total = total.Add(u.Output.Amount)
	}
	return total
}

// topUpForChange pulls additional candidates (in the order given) until
// the implied change output would clear its own min-UTxO, per the
// "min-UTxO top-up" phase shared by both selectors (spec §4.5).
func topUpForChange(
	selected, remaining []tx.UTxO,
	requested value.Value,
	opts Options,
) ([]tx.UTxO, []tx.UTxO, value.Value, error) {
	for {
		total := totalOf(selected)
		if !total.GreaterOrEqual(requested) {
			return selected, remaining, value.Value{}, apollerr.InsufficientUTxOBalance(
				"coinselection: selected total does not cover requested amount",
			)
		}
		change, err := total.Sub(requested)
		if err != nil {
			return nil, nil, value.Value{}, err
		}
		if !opts.RespectMinUTxO || change.IsZero() || opts.MinUTxOForChange == nil {
			return selected, remaining, change, nil
		}
		minRequired, err := opts.MinUTxOForChange(change)
		if err != nil {
			return nil, nil, value.Value{}, err
		}
		if change.Coin >= minRequired {
			return selected, remaining, change, nil
		}
		if len(remaining) == 0 {
			return nil, nil, value.Value{}, apollerr.InsufficientUTxOBalance(
				"coinselection: change output below min-utxo and no further candidates to top up with",
			)
		}
		if opts.MaxInputCount > 0 && len(selected) >= opts.MaxInputCount {
			return nil, nil, value.Value{}, apollerr.MaxInputCountExceeded(len(selected), opts.MaxInputCount)
		}
		selected = append(selected, remaining[0])
		remaining = remaining[1:]
	}
}

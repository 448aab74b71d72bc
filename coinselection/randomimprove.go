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
	"math/rand"
	"sort"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/value"
)

// RandomImprove implements the multi-asset-aware Random-Improve
// strategy (spec §4.5): a random-pick phase per requested asset
// followed by an improve phase that nudges each selection toward 2x
// the request without exceeding 3x, then the shared min-UTxO top-up.
type RandomImprove struct {
	intn func(n int) int
}

// NewRandomImprove constructs a Random-Improve selector using the
// default math/rand source.
func NewRandomImprove() *RandomImprove {
	return &RandomImprove{intn: rand.Intn}
}

// NewRandomImproveWithSource constructs a Random-Improve selector whose
// random draws are replaced by the given sequence of indices, each
// modulo the candidate count offered at that point — the deterministic
// override the spec calls for in reproducible tests.
func NewRandomImproveWithSource(sequence []int) *RandomImprove {
	i := 0
	return &RandomImprove{intn: func(n int) int {
		if n <= 0 {
			return 0
		}
		if len(sequence) == 0 {
			return 0
		}
		v := sequence[i%len(sequence)] % n
		i++
		if v < 0 {
			v += n
		}
		return v
	}}
}

// assetKey identifies a single fungible component of a Value: either
// lovelace or one (policy, asset name) pair.
type assetKey struct {
	isADA  bool
	policy hash.Hash28
	name   string
}

func (ri *RandomImprove) Select(candidates []tx.UTxO, requested value.Value, opts Options) (Result, error) {
	requests := requestsOf(requested)
	if len(requests) == 0 {
		return Result{Selected: nil, Change: value.Value{}}, nil
	}

	pool := append([]tx.UTxO(nil), candidates...)
	var selected []tx.UTxO

	for _, req := range requests {
		var err error
		selected, pool, err = ri.randomPick(selected, pool, req, opts)
		if err != nil {
			return Result{}, err
		}
	}

	for i := len(requests) - 1; i >= 0; i-- {
		selected, pool = ri.improve(selected, pool, requests[i], opts)
	}

	selected, _, change, err := topUpForChange(selected, pool, requested, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Selected: selected, Change: change}, nil
}

// assetRequest is one fungible component of the requested Value.
type assetRequest struct {
	key    assetKey
	amount int64
}

// requestsOf splits requested into its per-asset components, sorted by
// amount descending (spec §4.5 phase 1).
func requestsOf(requested value.Value) []assetRequest {
	var out []assetRequest
	if requested.Coin > 0 {
		out = append(out, assetRequest{key: assetKey{isADA: true}, amount: requested.Coin})
	}
	for _, policy := range requested.Policies() {
		for _, name := range requested.AssetNames(policy) {
			qty := requested.MultiAsset[policy][name]
			if qty > 0 {
				out = append(out, assetRequest{key: assetKey{policy: policy, name: name}, amount: qty})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].amount > out[j].amount })
	return out
}

func componentOf(v value.Value, key assetKey) int64 {
	if key.isADA {
		return v.Coin
	}
	asset, ok := v.MultiAsset[key.policy]
	if !ok {
		return 0
	}
	return asset[key.name]
}

func totalComponentOf(utxos []tx.UTxO, key assetKey) int64 {
	var total int64
	for _, u := range utxos {
		total += componentOf(u.Output.Amount, key)
	}
	return total
}

// randomPick draws candidates carrying req.key at random until the
// running total for that asset meets the request (spec §4.5 phase 1).
func (ri *RandomImprove) randomPick(
	selected, pool []tx.UTxO,
	req assetRequest,
	opts Options,
) ([]tx.UTxO, []tx.UTxO, error) {
	for totalComponentOf(selected, req.key) < req.amount {
		eligible := indicesWithAsset(pool, req.key)
		if len(eligible) == 0 {
			return nil, nil, apollerr.InsufficientUTxOBalance(
				"coinselection: random-improve found no remaining candidate carrying the requested asset",
			)
		}
		if opts.MaxInputCount > 0 && len(selected) >= opts.MaxInputCount {
			return nil, nil, apollerr.MaxInputCountExceeded(len(selected), opts.MaxInputCount)
		}
		pick := eligible[ri.intn(len(eligible))]
		selected = append(selected, pool[pick])
		pool = removeAt(pool, pick)
	}
	return selected, pool, nil
}

// improve tries to nudge the selected total for req.key from its
// current value toward 2x the request without exceeding 3x, randomly
// trying additional candidates until none remain, none help, or the
// input cap is reached (spec §4.5 phase 2).
func (ri *RandomImprove) improve(selected, pool []tx.UTxO, req assetRequest, opts Options) ([]tx.UTxO, []tx.UTxO) {
	ideal := req.amount * 2
	upper := req.amount * 3
	for {
		if opts.MaxInputCount > 0 && len(selected) >= opts.MaxInputCount {
			return selected, pool
		}
		eligible := indicesWithAsset(pool, req.key)
		if len(eligible) == 0 {
			return selected, pool
		}
		pick := eligible[ri.intn(len(eligible))]

		current := totalComponentOf(selected, req.key)
		candidate := componentOf(pool[pick].Output.Amount, req.key)
		next := current + candidate
		if next > upper {
			return selected, pool
		}
		if abs(next-ideal) >= abs(current-ideal) {
			return selected, pool
		}

		selected = append(selected, pool[pick])
		pool = removeAt(pool, pick)
	}
}

func indicesWithAsset(pool []tx.UTxO, key assetKey) []int {
	var out []int
	for i, u := range pool {
		if componentOf(u.Output.Amount, key) > 0 {
			out = append(out, i)
		}
	}
	return out
}

func removeAt(pool []tx.UTxO, i int) []tx.UTxO {
	out := append([]tx.UTxO(nil), pool[:i]...)
	return append(out, pool[i+1:]...)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

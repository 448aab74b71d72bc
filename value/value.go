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

// Package value implements Value/MultiAsset/Asset (component H, spec
// §3.3): ordered, canonical-sorted asset bundles with pointwise
// arithmetic. Addition and subtraction never produce a negative
// component silently — subtraction is only defined when every resulting
// component is >= 0 (spec §3.3, §8.1 invariant 4, §9 Open Question on
// ExecutionUnits.Add applies the same rule here).
package value

import (
	"sort"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/hash"
)

// AssetName is a native asset name: 0-32 raw bytes, compared by bytes.
type AssetName []byte

func (n AssetName) String() string { return string(n) }

// Asset is an ordered AssetName -> quantity mapping; entries are never
// materialized with a zero quantity (spec §3.3).
type Asset map[string]int64

// MultiAsset is an ordered ScriptHash -> Asset mapping.
type MultiAsset map[hash.Hash28]Asset

// Value is a coin amount plus an optional multi-asset bundle.
type Value struct {
	Coin       int64
	MultiAsset MultiAsset
}

// NewValue constructs a Value; pass nil for multiAsset to mean
// ADA-only.
func NewValue(coin int64, multiAsset MultiAsset) Value {
	return Value{Coin: coin, MultiAsset: multiAsset}
}

// NewSimpleValue constructs an ADA-only Value.
func NewSimpleValue(coin int64) Value {
	return Value{Coin: coin}
}

// IsZero reports whether the value has zero coin and no assets.
func (v Value) IsZero() bool {
	if v.Coin != 0 {
		return false
	}
	for _, a := range v.MultiAsset {
		for _, q := range a {
			if q != 0 {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	out := Value{Coin: v.Coin}
	if v.MultiAsset != nil {
		out.MultiAsset = make(MultiAsset, len(v.MultiAsset))
		for policy, asset := range v.MultiAsset {
			clone := make(Asset, len(asset))
			for name, qty := range asset {
				clone[name] = qty
			}
			out.MultiAsset[policy] = clone
		}
	}
	return out
}

// Add returns the pointwise sum of v and o.
func (v Value) Add(o Value) Value {
	out := v.Clone()
	out.Coin += o.Coin
	for policy, asset := range o.MultiAsset {
		if out.MultiAsset == nil {
			out.MultiAsset = make(MultiAsset)
		}
		existing, ok := out.MultiAsset[policy]
		if !ok {
			existing = make(Asset, len(asset))
			out.MultiAsset[policy] = existing
		}
		for name, qty := range asset {
			existing[name] += qty
		}
	}
	return pruneZeroes(out)
}

// Sub returns the pointwise difference v - o, failing with
// apollerr.ErrInvalidOperation if any resulting component would be
// negative (spec §3.3, §8.1 invariant 4).
func (v Value) Sub(o Value) (Value, error) {
	out := v.Clone()
	out.Coin -= o.Coin
	if out.Coin < 0 {
		return Value{}, apollerr.InvalidOperation("coin would go negative: %d - %d", v.Coin, o.Coin)
	}
	for policy, asset := range o.MultiAsset {
		existing := out.MultiAsset[policy]
		for name, qty := range asset {
			newQty := existing[name] - qty
			if newQty < 0 {
				return Value{}, apollerr.InvalidOperation(
					"asset %x.%s would go negative: %d - %d", policy.Bytes(), name, existing[name], qty)
			}
			if existing == nil {
				existing = make(Asset)
				out.MultiAsset[policy] = existing
			}
			existing[name] = newQty
		}
	}
	return pruneZeroes(out), nil
}

// pruneZeroes drops zero-quantity assets and empty policies, keeping
// the canonical "nonzero entries only" shape (spec §3.3).
func pruneZeroes(v Value) Value {
	if v.MultiAsset == nil {
		return v
	}
	for policy, asset := range v.MultiAsset {
		for name, qty := range asset {
			if qty == 0 {
				delete(asset, name)
			}
		}
		if len(asset) == 0 {
			delete(v.MultiAsset, policy)
		}
	}
	if len(v.MultiAsset) == 0 {
		v.MultiAsset = nil
	}
	return v
}

// GreaterOrEqual reports whether every component of v is >= the
// corresponding component of o (missing components on either side
// count as zero).
func (v Value) GreaterOrEqual(o Value) bool {
	if v.Coin < o.Coin {
		return false
	}
	for policy, asset := range o.MultiAsset {
		have := v.MultiAsset[policy]
		for name, qty := range asset {
			if have[name] < qty {
				return false
			}
		}
	}
	return true
}

// Policies returns the policy hashes present, sorted canonically (by
// encoded byte length then lexicographically — spec §3.3, §6.2).
func (v Value) Policies() []hash.Hash28 {
	out := make([]hash.Hash28, 0, len(v.MultiAsset))
	for p := range v.MultiAsset {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// AssetNames returns the asset names under policy, sorted canonically.
func (v Value) AssetNames(policy hash.Hash28) []string {
	asset := v.MultiAsset[policy]
	out := make([]string, 0, len(asset))
	for name := range asset {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

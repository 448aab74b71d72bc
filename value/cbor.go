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

package value

import (
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/hash"
)

// wireAsset/wireMultiAsset are the on-the-wire shapes: ordered maps,
// keys sorted canonically (by byte length then lexicographically,
// spec §6.2), values encoded shortest-form.

// MarshalCBOR encodes v per spec §3.3: a bare integer for an ADA-only
// value, or a 2-element array [coin, multiAsset] when assets are
// present. The multi-asset field is never emitted empty.
func (v Value) MarshalCBOR() ([]byte, error) {
	if len(v.MultiAsset) == 0 {
		return cborx.Marshal(v.Coin)
	}
	wire, err := v.MultiAsset.wireMap()
	if err != nil {
		return nil, err
	}
	arr := []cborx.RawMessage{}
	coinRaw, err := cborx.Marshal(v.Coin)
	if err != nil {
		return nil, err
	}
	wireRaw, err := cborx.Marshal(wire)
	if err != nil {
		return nil, err
	}
	arr = append(arr, coinRaw, wireRaw)
	return cborx.Marshal(arr)
}

// UnmarshalCBOR accepts either the bare-integer or the 2-element-array
// shape.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var coin int64
	if err := cborx.Unmarshal(data, &coin); err == nil {
		v.Coin = coin
		v.MultiAsset = nil
		return nil
	}
	var arr []cborx.RawMessage
	if err := cborx.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 2 {
		return apollerr.Decoding("value: expected 2-element array, got %d", len(arr))
	}
	if err := cborx.Unmarshal(arr[0], &coin); err != nil {
		return err
	}
	var wire map[cborx.ByteString]map[cborx.ByteString]int64
	if err := cborx.Unmarshal(arr[1], &wire); err != nil {
		return err
	}
	ma, err := multiAssetFromWire(wire)
	if err != nil {
		return err
	}
	v.Coin = coin
	v.MultiAsset = ma
	return nil
}

// wireMap keys policy ids and asset names with cborx.ByteString rather
// than plain Go strings: a bare Go string marshals as a CBOR text
// string (major type 3), but the ledger's CDDL requires policy_id and
// asset_name to be byte strings (major type 2) — the same distinction
// fee.languageViews already respects for its own map keys.
func (m MultiAsset) wireMap() (map[cborx.ByteString]map[cborx.ByteString]int64, error) {
	out := make(map[cborx.ByteString]map[cborx.ByteString]int64, len(m))
	for policy, asset := range m {
		inner := make(map[cborx.ByteString]int64, len(asset))
		for name, qty := range asset {
			inner[cborx.NewByteString([]byte(name))] = qty
		}
		out[cborx.NewByteString(policy.Bytes())] = inner
	}
	return out, nil
}

func multiAssetFromWire(wire map[cborx.ByteString]map[cborx.ByteString]int64) (MultiAsset, error) {
	if len(wire) == 0 {
		return nil, nil
	}
	out := make(MultiAsset, len(wire))
	for policyKey, inner := range wire {
		policy, err := hash.NewHash28(policyKey.Bytes())
		if err != nil {
			return nil, err
		}
		asset := make(Asset, len(inner))
		for nameKey, qty := range inner {
			asset[string(nameKey.Bytes())] = qty
		}
		out[policy] = asset
	}
	return out, nil
}

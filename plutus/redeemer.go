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

package plutus

import "github.com/go-cardano/cardanotx/cborx"

// RedeemerTag identifies which part of the transaction a redeemer
// authorizes (spec §3.6, §4.4): spending a script input, minting
// under a policy, satisfying a certificate, a reward withdrawal, or
// (Conway era) a governance vote/proposal.
type RedeemerTag uint8

const (
	RedeemerSpend RedeemerTag = iota
	RedeemerMint
	RedeemerCert
	RedeemerReward
	RedeemerVoting
	RedeemerProposing
)

// RedeemerKey identifies one redeemer slot: its tag plus its
// ledger-assigned index within that tag's group (spec §4.4 step 2).
type RedeemerKey struct {
	Tag   RedeemerTag
	Index uint32
}

// Redeemer is a single `(tag, index, data, ex_units)` entry (spec
// §3.6). The builder tracks these keyed by RedeemerKey in a map
// (`use_redeemer_map` default true per spec §9) and flattens to either
// wire shape on encode.
type Redeemer struct {
	Tag      RedeemerTag
	Index    uint32
	Data     Data
	ExUnits  ExecutionUnits
}

// NewRedeemer constructs a redeemer with the given ex-units; zero
// ex-units mark it for later estimation (spec §4.4 step 6).
func NewRedeemer(tag RedeemerTag, index uint32, data Data, exUnits ExecutionUnits) Redeemer {
	return Redeemer{Tag: tag, Index: index, Data: data, ExUnits: exUnits}
}

// Key returns the redeemer's (tag, index) identity.
func (r Redeemer) Key() RedeemerKey {
	return RedeemerKey{Tag: r.Tag, Index: r.Index}
}

type wireRedeemerArrayEntry struct {
	_       struct{} `cbor:",toarray"`
	Tag     uint8
	Index   uint32
	Data    cborx.RawMessage
	ExUnits ExecutionUnits
}

// MarshalRedeemers encodes a redeemer set as the Chang-era map shape
// (key `[tag, index]` -> `[data, ex_units]`) when useMap is true, or
// the pre-Chang definite-length array of (tag, index, data, ex_units)
// tuples otherwise (spec §9 `use_redeemer_map`).
func MarshalRedeemers(redeemers map[RedeemerKey]Redeemer, useMap bool) ([]byte, error) {
	if useMap {
		wire := make(map[wireRedeemerMapKey]wireRedeemerMapValue, len(redeemers))
		for k, r := range redeemers {
			dataCBOR, err := r.Data.MarshalCBOR()
			if err != nil {
				return nil, err
			}
			wire[wireRedeemerMapKey{Tag: uint8(k.Tag), Index: k.Index}] = wireRedeemerMapValue{
				Data: dataCBOR, ExUnits: r.ExUnits,
			}
		}
		return cborx.Marshal(wire)
	}
	entries := make([]wireRedeemerArrayEntry, 0, len(redeemers))
	for _, r := range redeemers {
		dataCBOR, err := r.Data.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		entries = append(entries, wireRedeemerArrayEntry{
			Tag: uint8(r.Tag), Index: r.Index, Data: dataCBOR, ExUnits: r.ExUnits,
		})
	}
	return cborx.Marshal(entries)
}

type wireRedeemerMapKey struct {
	_     struct{} `cbor:",toarray"`
	Tag   uint8
	Index uint32
}

type wireRedeemerMapValue struct {
	_       struct{} `cbor:",toarray"`
	Data    cborx.RawMessage
	ExUnits ExecutionUnits
}

// UnmarshalRedeemers decodes either wire shape, telling them apart by
// the outer CBOR major type (5 = map, 4 = array).
func UnmarshalRedeemers(data []byte) (map[RedeemerKey]Redeemer, error) {
	_, major, _, _, err := cborx.DecodeHead(data)
	if err != nil {
		return nil, err
	}
	out := make(map[RedeemerKey]Redeemer)
	if major == 5 {
		var wire map[wireRedeemerMapKey]wireRedeemerMapValue
		if err := cborx.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		for k, v := range wire {
			var d Data
			if err := d.UnmarshalCBOR(v.Data); err != nil {
				return nil, err
			}
			out[RedeemerKey{Tag: RedeemerTag(k.Tag), Index: k.Index}] = Redeemer{
				Tag: RedeemerTag(k.Tag), Index: k.Index, Data: d, ExUnits: v.ExUnits,
			}
		}
		return out, nil
	}
	var entries []wireRedeemerArrayEntry
	if err := cborx.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	for _, e := range entries {
		var d Data
		if err := d.UnmarshalCBOR(e.Data); err != nil {
			return nil, err
		}
		out[RedeemerKey{Tag: RedeemerTag(e.Tag), Index: e.Index}] = Redeemer{
			Tag: RedeemerTag(e.Tag), Index: e.Index, Data: d, ExUnits: e.ExUnits,
		}
	}
	return out, nil
}

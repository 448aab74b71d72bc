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
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/key"
	"github.com/go-cardano/cardanotx/nativescript"
	"github.com/go-cardano/cardanotx/plutus"
)

// VKeyWitness is a `[vkey, signature]` ordinary signature witness.
type VKeyWitness struct {
	VKey      key.VerificationKey
	Signature []byte
}

type wireVKeyWitness struct {
	_         struct{} `cbor:",toarray"`
	VKey      []byte
	Signature []byte
}

func (w VKeyWitness) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireVKeyWitness{VKey: w.VKey.Bytes, Signature: w.Signature})
}

func (w *VKeyWitness) UnmarshalCBOR(data []byte) error {
	var wire wireVKeyWitness
	if err := cborUnmarshal(data, &wire); err != nil {
		return apollerr.Decoding("tx: vkey witness: %v", err)
	}
	*w = VKeyWitness{VKey: key.VerificationKey{Bytes: wire.VKey}, Signature: wire.Signature}
	return nil
}

// BootstrapWitness is a `[vkey, signature, chain_code, attributes]`
// Byron-era witness, needed to spend Byron-era UTxOs.
type BootstrapWitness struct {
	VKey       key.ExtendedVerificationKey
	Signature  []byte
	ChainCode  []byte
	Attributes []byte
}

type wireBootstrapWitness struct {
	_          struct{} `cbor:",toarray"`
	VKey       []byte
	Signature  []byte
	ChainCode  []byte
	Attributes []byte
}

func (w BootstrapWitness) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wireBootstrapWitness{
		VKey: w.VKey.Bytes[:32], Signature: w.Signature, ChainCode: w.ChainCode, Attributes: w.Attributes,
	})
}

func (w *BootstrapWitness) UnmarshalCBOR(data []byte) error {
	var wire wireBootstrapWitness
	if err := cborUnmarshal(data, &wire); err != nil {
		return apollerr.Decoding("tx: bootstrap witness: %v", err)
	}
	extended := append(append([]byte(nil), wire.VKey...), wire.ChainCode...)
	*w = BootstrapWitness{
		VKey:       key.ExtendedVerificationKey{Bytes: extended},
		Signature:  wire.Signature,
		ChainCode:  wire.ChainCode,
		Attributes: wire.Attributes,
	}
	return nil
}

// WitnessSet is the TransactionWitnessSet (spec §3.4): every piece of
// evidence (signatures, scripts, datums, redeemers) required to
// validate the accompanying transaction body, map-shaped with numeric
// keys 0..7.
type WitnessSet struct {
	VKeyWitnesses     []VKeyWitness
	NativeScripts     []nativescript.Script
	BootstrapWitness  []BootstrapWitness
	PlutusV1Scripts   []plutus.Script
	PlutusData        []plutus.Data
	Redeemers         map[plutus.RedeemerKey]plutus.Redeemer
	PlutusV2Scripts   []plutus.Script
	PlutusV3Scripts   []plutus.Script

	// UseRedeemerMap controls which of the two redeemer wire shapes
	// MarshalCBOR emits (spec §9's `use_redeemer_map`, default true).
	UseRedeemerMap bool
}

// NewWitnessSet constructs an empty witness set with the Chang-era
// redeemer map shape enabled by default.
func NewWitnessSet() WitnessSet {
	return WitnessSet{UseRedeemerMap: true}
}

type wireWitnessSet struct {
	VKeyWitnesses    []VKeyWitness           `cbor:"0,keyasint,omitempty"`
	NativeScripts    []nativescript.Script   `cbor:"1,keyasint,omitempty"`
	BootstrapWitness []BootstrapWitness      `cbor:"2,keyasint,omitempty"`
	PlutusV1Scripts  [][]byte                `cbor:"3,keyasint,omitempty"`
	PlutusData       []cborx.RawMessage      `cbor:"4,keyasint,omitempty"`
	Redeemers        cborx.RawMessage        `cbor:"5,keyasint,omitempty"`
	PlutusV2Scripts  [][]byte                `cbor:"6,keyasint,omitempty"`
	PlutusV3Scripts  [][]byte                `cbor:"7,keyasint,omitempty"`
}

func (w WitnessSet) MarshalCBOR() ([]byte, error) {
	wire := wireWitnessSet{
		VKeyWitnesses:    w.VKeyWitnesses,
		NativeScripts:    w.NativeScripts,
		BootstrapWitness: w.BootstrapWitness,
	}
	for _, s := range w.PlutusV1Scripts {
		wire.PlutusV1Scripts = append(wire.PlutusV1Scripts, s.Bytes)
	}
	for _, s := range w.PlutusV2Scripts {
		wire.PlutusV2Scripts = append(wire.PlutusV2Scripts, s.Bytes)
	}
	for _, s := range w.PlutusV3Scripts {
		wire.PlutusV3Scripts = append(wire.PlutusV3Scripts, s.Bytes)
	}
	for _, d := range w.PlutusData {
		b, err := d.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		wire.PlutusData = append(wire.PlutusData, b)
	}
	if len(w.Redeemers) > 0 {
		b, err := plutus.MarshalRedeemers(w.Redeemers, w.UseRedeemerMap)
		if err != nil {
			return nil, err
		}
		wire.Redeemers = b
	}
	return cborMarshal(wire)
}

func (w *WitnessSet) UnmarshalCBOR(data []byte) error {
	var wire wireWitnessSet
	if err := cborUnmarshal(data, &wire); err != nil {
		return apollerr.Decoding("tx: witness set: %v", err)
	}
	out := WitnessSet{
		VKeyWitnesses:    wire.VKeyWitnesses,
		NativeScripts:    wire.NativeScripts,
		BootstrapWitness: wire.BootstrapWitness,
		UseRedeemerMap:   true,
	}
	for _, b := range wire.PlutusV1Scripts {
		out.PlutusV1Scripts = append(out.PlutusV1Scripts, plutus.Script{Version: plutus.V1, Bytes: b})
	}
	for _, b := range wire.PlutusV2Scripts {
		out.PlutusV2Scripts = append(out.PlutusV2Scripts, plutus.Script{Version: plutus.V2, Bytes: b})
	}
	for _, b := range wire.PlutusV3Scripts {
		out.PlutusV3Scripts = append(out.PlutusV3Scripts, plutus.Script{Version: plutus.V3, Bytes: b})
	}
	for _, raw := range wire.PlutusData {
		var d plutus.Data
		if err := d.UnmarshalCBOR(raw); err != nil {
			return err
		}
		out.PlutusData = append(out.PlutusData, d)
	}
	if len(wire.Redeemers) > 0 {
		_, major, _, _, err := cborx.DecodeHead(wire.Redeemers)
		if err != nil {
			return apollerr.Decoding("tx: witness set redeemers: %v", err)
		}
		out.UseRedeemerMap = major == 5
		rs, err := plutus.UnmarshalRedeemers(wire.Redeemers)
		if err != nil {
			return err
		}
		out.Redeemers = rs
	}
	*w = out
	return nil
}

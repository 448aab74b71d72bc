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
	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/value"
)

// Output is a TransactionOutput (spec §3.4). It has two wire shapes:
// the legacy pre-Alonzo array `[address, amount]` and the post-Alonzo
// map with numeric keys 0..4 (`address, amount, datum_option?,
// script_ref?`). Which shape is used on encode is decided by
// PostAlonzo: false for plain sends with no datum/script reference
// (the common case, and the only shape some light clients still
// accept), true whenever a datum or reference script is attached.
type Output struct {
	Address    address.Address
	Amount     value.Value
	Datum      Datum
	ScriptRef  *Script
	PostAlonzo bool
}

// NewOutput builds a plain (pre-Alonzo-shaped) output.
func NewOutput(addr address.Address, amount value.Value) Output {
	return Output{Address: addr, Amount: amount}
}

// NewPostAlonzoOutput builds an output carrying a datum and/or
// reference script, which forces the post-Alonzo map encoding.
func NewPostAlonzoOutput(addr address.Address, amount value.Value, datum Datum, scriptRef *Script) Output {
	return Output{Address: addr, Amount: amount, Datum: datum, ScriptRef: scriptRef, PostAlonzo: true}
}

type wireLegacyOutput struct {
	_       struct{} `cbor:",toarray"`
	Address address.Address
	Amount  value.Value
}

type wirePostAlonzoOutput struct {
	Address   address.Address  `cbor:"0,keyasint"`
	Amount    value.Value      `cbor:"1,keyasint"`
	Datum     cborx.RawMessage `cbor:"2,keyasint,omitempty"`
	ScriptRef cborx.RawMessage `cbor:"3,keyasint,omitempty"`
}

// MarshalCBOR encodes o in its selected shape.
func (o Output) MarshalCBOR() ([]byte, error) {
	if !o.PostAlonzo && o.Datum.Kind == DatumNone && o.ScriptRef == nil {
		return cborMarshal(wireLegacyOutput{Address: o.Address, Amount: o.Amount})
	}
	wire := wirePostAlonzoOutput{Address: o.Address, Amount: o.Amount}
	if o.Datum.Kind != DatumNone {
		b, err := o.Datum.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		wire.Datum = b
	}
	if o.ScriptRef != nil {
		inner, err := o.ScriptRef.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		tagged, err := cborMarshal(cborx.Tag{Number: cborx.ByteStringTag, Content: inner})
		if err != nil {
			return nil, err
		}
		wire.ScriptRef = tagged
	}
	return cborMarshal(wire)
}

// UnmarshalCBOR dispatches on the outer shape (array vs map), the way
// an output's two wire forms are told apart on decode.
func (o *Output) UnmarshalCBOR(data []byte) error {
	_, major, _, _, err := cborx.DecodeHead(data)
	if err != nil {
		return apollerr.Decoding("tx: output: %v", err)
	}
	if major == 4 {
		var w wireLegacyOutput
		if err := cborUnmarshal(data, &w); err != nil {
			return apollerr.Decoding("tx: legacy output: %v", err)
		}
		*o = Output{Address: w.Address, Amount: w.Amount}
		return nil
	}
	var w wirePostAlonzoOutput
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: post-alonzo output: %v", err)
	}
	out := Output{Address: w.Address, Amount: w.Amount, PostAlonzo: true}
	if len(w.Datum) > 0 {
		var d Datum
		if err := d.UnmarshalCBOR(w.Datum); err != nil {
			return err
		}
		out.Datum = d
	}
	if len(w.ScriptRef) > 0 {
		var tag cborx.Tag
		if err := cborUnmarshal(w.ScriptRef, &tag); err != nil {
			return apollerr.Decoding("tx: output script ref: %v", err)
		}
		inner, ok := tag.Content.(cborx.RawMessage)
		if !ok {
			if b, isBytes := tag.Content.([]byte); isBytes {
				inner = b
			} else {
				return apollerr.Decoding("tx: output script ref: unexpected tag content")
			}
		}
		var s Script
		if err := s.UnmarshalCBOR(inner); err != nil {
			return err
		}
		out.ScriptRef = &s
	}
	*o = out
	return nil
}

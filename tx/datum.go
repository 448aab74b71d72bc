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
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/plutus"
)

// DatumKind discriminates a post-Alonzo output's optional datum field
// (spec §3.4): absent, referenced by hash, or carried inline.
type DatumKind int

const (
	DatumNone DatumKind = iota
	DatumHashKind
	DatumInline
)

// Datum is the `[0, datum_hash] / [1, inline_datum] / absent` wire
// shape a post-Alonzo TransactionOutput's datum field takes.
type Datum struct {
	Kind   DatumKind
	Hash   hash.DatumHash
	Inline plutus.Data
}

// NoDatum is the absent datum.
func NoDatum() Datum { return Datum{Kind: DatumNone} }

// DatumWithHash references a datum supplied out of band.
func DatumWithHash(h hash.DatumHash) Datum { return Datum{Kind: DatumHashKind, Hash: h} }

// InlineDatum carries the datum inline in the output.
func InlineDatum(d plutus.Data) Datum { return Datum{Kind: DatumInline, Inline: d} }

// InlineDatumFromStruct converts a typed Go struct into a Constr-kind
// Data via plutus.ToData and wraps it as an inline datum, so callers
// modeling an on-chain datum as a native Go type never have to build
// the Constr tree by hand.
func InlineDatumFromStruct(v any) (Datum, error) {
	d, err := plutus.ToData(v)
	if err != nil {
		return Datum{}, err
	}
	return InlineDatum(d), nil
}

type wireDatum struct {
	_    struct{} `cbor:",toarray"`
	Kind uint8
	Body cborx.RawMessage
}

func (d Datum) marshalBody() ([]byte, error) {
	switch d.Kind {
	case DatumHashKind:
		return cborMarshal(d.Hash)
	case DatumInline:
		return d.Inline.MarshalCBOR()
	default:
		return nil, apollerr.InvalidArgument("tx: datum: no body for kind %d", d.Kind)
	}
}

// MarshalCBOR encodes the datum as [0, hash] or [1, inline_data]. Call
// sites that must omit the field entirely for DatumNone handle that at
// the TransactionOutput level.
func (d Datum) MarshalCBOR() ([]byte, error) {
	if d.Kind == DatumNone {
		return nil, apollerr.InvalidOperation("tx: datum: cannot encode an absent datum directly")
	}
	body, err := d.marshalBody()
	if err != nil {
		return nil, err
	}
	tag := uint8(0)
	if d.Kind == DatumInline {
		tag = 1
	}
	return cborMarshal(wireDatum{Kind: tag, Body: body})
}

func (d *Datum) UnmarshalCBOR(data []byte) error {
	var w wireDatum
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: datum: %v", err)
	}
	switch w.Kind {
	case 0:
		var h hash.DatumHash
		if err := cborUnmarshal(w.Body, &h); err != nil {
			return apollerr.Decoding("tx: datum hash: %v", err)
		}
		*d = Datum{Kind: DatumHashKind, Hash: h}
	case 1:
		var p plutus.Data
		if err := p.UnmarshalCBOR(w.Body); err != nil {
			return err
		}
		*d = Datum{Kind: DatumInline, Inline: p}
	default:
		return apollerr.Decoding("tx: datum: unknown discriminator %d", w.Kind)
	}
	return nil
}

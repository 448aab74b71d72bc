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

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/crypto"
)

// Kind discriminates PlutusData's variants (spec §3.6).
type Kind int

const (
	KindConstr Kind = iota
	KindMap
	KindList
	KindInteger
	KindByteString
)

// Pair is one key/value entry of a Map-kind PlutusData; order is
// preserved exactly as constructed/decoded, since Plutus data maps are
// not canonically sorted the way ledger dictionaries are.
type Pair struct {
	Key   Data
	Value Data
}

// Data is the recursive Plutus data ADT (spec §3.6). Exactly one
// payload field is meaningful, selected by Kind.
type Data struct {
	Kind Kind

	ConstrTag uint64 // KindConstr
	Fields    []Data // KindConstr, KindList
	Pairs     []Pair // KindMap
	Int       *big.Int
	Bytes     []byte
}

// NewConstr builds a constructor record (spec §3.6): IDs 0..6 use CBOR
// tag 121..127, IDs 7..127 use 1280..1400, larger IDs fall back to the
// generic tag 102 wrapping [id, fields].
func NewConstr(tag uint64, fields ...Data) Data {
	return Data{Kind: KindConstr, ConstrTag: tag, Fields: fields}
}

// NewMap builds a Plutus data map from key/value pairs, in the given
// order.
func NewMap(pairs ...Pair) Data {
	return Data{Kind: KindMap, Pairs: pairs}
}

// NewList builds a Plutus data list.
func NewList(items ...Data) Data {
	return Data{Kind: KindList, Fields: items}
}

// NewInteger builds an integer leaf.
func NewInteger(i *big.Int) Data {
	return Data{Kind: KindInteger, Int: new(big.Int).Set(i)}
}

// NewByteString builds a byte string leaf.
func NewByteString(b []byte) Data {
	out := make([]byte, len(b))
	copy(out, b)
	return Data{Kind: KindByteString, Bytes: out}
}

// MarshalCBOR encodes d per spec §3.6.
func (d Data) MarshalCBOR() ([]byte, error) {
	switch d.Kind {
	case KindConstr:
		return marshalConstr(d.ConstrTag, d.Fields)
	case KindList:
		return marshalIndefiniteFields(d.Fields)
	case KindMap:
		return marshalMap(d.Pairs)
	case KindInteger:
		if d.Int == nil {
			return nil, apollerr.InvalidArgument("plutus data: integer leaf has nil value")
		}
		return cborx.Marshal(d.Int)
	case KindByteString:
		return cborx.EncodeChunkedByteString(d.Bytes)
	default:
		return nil, apollerr.InvalidArgument("plutus data: unknown kind %d", d.Kind)
	}
}

func marshalConstr(tag uint64, fields []Data) ([]byte, error) {
	fieldsCBOR, err := marshalIndefiniteFields(fields)
	if err != nil {
		return nil, err
	}
	wireTag, explicit := cborx.ConstrTag(tag)
	if !explicit {
		return cborx.Marshal(cborx.Tag{Number: wireTag, Content: cborx.RawMessage(fieldsCBOR)})
	}
	idRaw, err := cborx.Marshal(tag)
	if err != nil {
		return nil, err
	}
	var arr bytes.Buffer
	head, err := arrayHead(2)
	if err != nil {
		return nil, err
	}
	arr.Write(head)
	arr.Write(idRaw)
	arr.Write(fieldsCBOR)
	return cborx.Marshal(cborx.Tag{Number: cborx.ConstrTagGeneric, Content: cborx.RawMessage(arr.Bytes())})
}

// marshalIndefiniteFields encodes a Data slice as an indefinite-length
// CBOR array, the convention the ledger uses for Plutus data field and
// list bodies (spec §4.1).
func marshalIndefiniteFields(items []Data) ([]byte, error) {
	raws := make([]cborx.RawMessage, len(items))
	for i, it := range items {
		b, err := it.MarshalCBOR()
		if err != nil {
			return nil, fmt.Errorf("plutus: field %d: %w", i, err)
		}
		raws[i] = b
	}
	return cborx.IndefList[cborx.RawMessage](raws).MarshalCBOR()
}

// marshalMap encodes pairs as a definite-length CBOR map (major type
// 5), preserving the given order verbatim rather than sorting, since
// Plutus data map keys are arbitrary Data values with no canonical
// ordering the way ledger dictionaries have.
func marshalMap(pairs []Pair) ([]byte, error) {
	var body bytes.Buffer
	for i, p := range pairs {
		k, err := p.Key.MarshalCBOR()
		if err != nil {
			return nil, fmt.Errorf("plutus: map key %d: %w", i, err)
		}
		v, err := p.Value.MarshalCBOR()
		if err != nil {
			return nil, fmt.Errorf("plutus: map value %d: %w", i, err)
		}
		body.Write(k)
		body.Write(v)
	}
	head, err := mapHead(uint64(len(pairs)))
	if err != nil {
		return nil, err
	}
	return append(head, body.Bytes()...), nil
}

func arrayHead(n uint64) ([]byte, error) { return majorHead(4, n) }
func mapHead(n uint64) ([]byte, error)   { return majorHead(5, n) }

// majorHead hand-encodes a definite-length head for major type
// `major` with count n, following the same shortest-form rule the
// primitive codec uses for everything else.
func majorHead(major byte, n uint64) ([]byte, error) {
	switch {
	case n < 24:
		return []byte{major<<5 | byte(n)}, nil
	case n <= 0xff:
		return []byte{major<<5 | 24, byte(n)}, nil
	case n <= 0xffff:
		return []byte{major<<5 | 25, byte(n >> 8), byte(n)}, nil
	case n <= 0xffffffff:
		return []byte{major<<5 | 26, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}, nil
	default:
		return []byte{
			major<<5 | 27,
			byte(n >> 56), byte(n >> 48), byte(n >> 40), byte(n >> 32),
			byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n),
		}, nil
	}
}

// UnmarshalCBOR decodes d, dispatching on the leading CBOR major type
// / tag the way spec §3.6's constructor-id tag ranges require.
func (d *Data) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 {
		return apollerr.Decoding("plutus data: empty input")
	}
	_, major, _, _, err := cborx.DecodeHead(data)
	if err != nil {
		return apollerr.Decoding("plutus data: %v", err)
	}
	switch major {
	case 0, 1: // unsigned/negative integer
		var i big.Int
		if err := cborx.Unmarshal(data, &i); err != nil {
			return apollerr.Decoding("plutus data: integer: %v", err)
		}
		*d = Data{Kind: KindInteger, Int: &i}
		return nil
	case 2: // byte string (definite or chunked indefinite)
		b, err := cborx.DecodeChunkedByteString(data)
		if err != nil {
			return apollerr.Decoding("plutus data: byte string: %v", err)
		}
		*d = Data{Kind: KindByteString, Bytes: b}
		return nil
	case 4: // array: a bare list (constr fields are always tag-wrapped)
		fields, err := unmarshalFields(data)
		if err != nil {
			return err
		}
		*d = Data{Kind: KindList, Fields: fields}
		return nil
	case 5: // map
		pairs, err := unmarshalMap(data)
		if err != nil {
			return err
		}
		*d = Data{Kind: KindMap, Pairs: pairs}
		return nil
	case 6: // tag: constructor record, compact/wide/generic range
		return unmarshalTaggedConstr(data, d)
	default:
		return apollerr.Decoding("plutus data: unsupported major type %d", major)
	}
}

// unmarshalTaggedConstr parses the tag head by hand (rather than
// decoding through cborx.Tag into `any`) because the tag's content is
// itself an array: a generic `any` decode would flatten it into
// []interface{} instead of handing back the raw sub-slice this
// function needs to feed back into unmarshalFields/further Data
// decoding.
func unmarshalTaggedConstr(data []byte, d *Data) error {
	headLen, _, tagNumber, _, err := cborx.DecodeHead(data)
	if err != nil {
		return apollerr.Decoding("plutus data: tag head: %v", err)
	}
	inner := data[headLen:]

	if tagNumber == cborx.ConstrTagGeneric {
		var parts []cborx.RawMessage
		if err := cborx.Unmarshal(inner, &parts); err != nil {
			return apollerr.Decoding("plutus data: generic constr body: %v", err)
		}
		if len(parts) != 2 {
			return apollerr.Decoding("plutus data: generic constr expects [id, fields], got %d elements", len(parts))
		}
		var id uint64
		if err := cborx.Unmarshal(parts[0], &id); err != nil {
			return apollerr.Decoding("plutus data: generic constr id: %v", err)
		}
		fields, err := unmarshalFields(parts[1])
		if err != nil {
			return err
		}
		*d = Data{Kind: KindConstr, ConstrTag: id, Fields: fields}
		return nil
	}
	id, ok := cborx.ConstrIDFromTag(tagNumber)
	if !ok {
		return apollerr.Decoding("plutus data: unrecognized constr tag %d", tagNumber)
	}
	fields, err := unmarshalFields(inner)
	if err != nil {
		return err
	}
	*d = Data{Kind: KindConstr, ConstrTag: id, Fields: fields}
	return nil
}

// unmarshalFields decodes either a definite or indefinite-length CBOR
// array of PlutusData.
func unmarshalFields(data []byte) ([]Data, error) {
	var raws []cborx.RawMessage
	if err := cborx.Unmarshal(data, &raws); err != nil {
		return nil, apollerr.Decoding("plutus data: fields: %v", err)
	}
	out := make([]Data, len(raws))
	for i, r := range raws {
		if err := out[i].UnmarshalCBOR(r); err != nil {
			return nil, fmt.Errorf("plutus data: field %d: %w", i, err)
		}
	}
	return out, nil
}

// unmarshalMap decodes a (definite or indefinite) CBOR map into
// ordered key/value Data pairs, walking the raw bytes by hand since
// arbitrary PlutusData keys aren't representable as Go map keys.
func unmarshalMap(data []byte) ([]Pair, error) {
	headLen, _, argument, isIndef, err := cborx.DecodeHead(data)
	if err != nil {
		return nil, apollerr.Decoding("plutus data: map head: %v", err)
	}
	pos := headLen
	var pairs []Pair
	if isIndef {
		for {
			if pos >= len(data) {
				return nil, apollerr.Decoding("plutus data: map: truncated before break")
			}
			if data[pos] == cborx.BreakByte {
				pos++
				break
			}
			pair, n, err := decodeOnePair(data[pos:])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
			pos += n
		}
		return pairs, nil
	}
	for range argument {
		pair, n, err := decodeOnePair(data[pos:])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
		pos += n
	}
	return pairs, nil
}

func decodeOnePair(data []byte) (Pair, int, error) {
	kLen, err := cborx.ItemLength(data)
	if err != nil {
		return Pair{}, 0, apollerr.Decoding("plutus data: map key: %v", err)
	}
	var key Data
	if err := key.UnmarshalCBOR(data[:kLen]); err != nil {
		return Pair{}, 0, fmt.Errorf("plutus data: map key: %w", err)
	}
	rest := data[kLen:]
	vLen, err := cborx.ItemLength(rest)
	if err != nil {
		return Pair{}, 0, apollerr.Decoding("plutus data: map value: %v", err)
	}
	var val Data
	if err := val.UnmarshalCBOR(rest[:vLen]); err != nil {
		return Pair{}, 0, fmt.Errorf("plutus data: map value: %w", err)
	}
	return Pair{Key: key, Value: val}, kLen + vLen, nil
}

// Hash computes the canonical datum hash: Blake2b-256 over d's
// canonical CBOR encoding (spec §3.6).
func (d Data) Hash() ([32]byte, error) {
	b, err := d.MarshalCBOR()
	if err != nil {
		return [32]byte{}, err
	}
	return crypto.Blake2b256(b), nil
}

// RawData is an already-encoded Plutus data blob, preserved byte for
// byte on round-trip. Use it when a datum must re-serialize to exactly
// the bytes it was decoded from regardless of this package's own
// canonical choices (e.g. foreign-produced datums whose hash must
// match what the client already computed).
type RawData []byte

func (r RawData) MarshalCBOR() ([]byte, error) { return []byte(r), nil }

func (r *RawData) UnmarshalCBOR(data []byte) error {
	*r = append(RawData(nil), data...)
	return nil
}

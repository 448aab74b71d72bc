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
	"encoding/hex"
	"encoding/json"
	"math/big"

	"github.com/go-cardano/cardanotx/apollerr"
)

// jsonData mirrors cardano-api's "detailed schema" for ScriptData,
// the same shape pycardano's PlutusData.to_dict/from_dict produce:
// exactly one of the fields below is set, selected by Kind.
type jsonData struct {
	Int         *string        `json:"int,omitempty"`
	Bytes       *string        `json:"bytes,omitempty"`
	List        []jsonData     `json:"list,omitempty"`
	Map         []jsonMapEntry `json:"map,omitempty"`
	Constructor *uint64        `json:"constructor,omitempty"`
	Fields      []jsonData     `json:"fields,omitempty"`
}

type jsonMapEntry struct {
	Key   jsonData `json:"k"`
	Value jsonData `json:"v"`
}

// MarshalJSON encodes d using the cardano-api "detailed schema" (spec.md
// component G's JSON interop): {"int":N}, {"bytes":"<hex>"},
// {"list":[...]}, {"map":[{"k":...,"v":...}]}, or
// {"constructor":N,"fields":[...]}.
func (d Data) MarshalJSON() ([]byte, error) {
	jd, err := toJSONData(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jd)
}

func toJSONData(d Data) (jsonData, error) {
	switch d.Kind {
	case KindInteger:
		if d.Int == nil {
			return jsonData{}, apollerr.InvalidArgument("plutus: json: integer leaf has nil value")
		}
		s := d.Int.String()
		return jsonData{Int: &s}, nil
	case KindByteString:
		s := hex.EncodeToString(d.Bytes)
		return jsonData{Bytes: &s}, nil
	case KindList:
		items := make([]jsonData, len(d.Fields))
		for i, f := range d.Fields {
			jf, err := toJSONData(f)
			if err != nil {
				return jsonData{}, err
			}
			items[i] = jf
		}
		return jsonData{List: items}, nil
	case KindMap:
		entries := make([]jsonMapEntry, len(d.Pairs))
		for i, p := range d.Pairs {
			jk, err := toJSONData(p.Key)
			if err != nil {
				return jsonData{}, err
			}
			jv, err := toJSONData(p.Value)
			if err != nil {
				return jsonData{}, err
			}
			entries[i] = jsonMapEntry{Key: jk, Value: jv}
		}
		return jsonData{Map: entries}, nil
	case KindConstr:
		fields := make([]jsonData, len(d.Fields))
		for i, f := range d.Fields {
			jf, err := toJSONData(f)
			if err != nil {
				return jsonData{}, err
			}
			fields[i] = jf
		}
		tag := d.ConstrTag
		return jsonData{Constructor: &tag, Fields: fields}, nil
	default:
		return jsonData{}, apollerr.InvalidArgument("plutus: json: unknown kind %d", d.Kind)
	}
}

// UnmarshalJSON decodes the cardano-api "detailed schema" produced by
// MarshalJSON back into d.
func (d *Data) UnmarshalJSON(data []byte) error {
	var jd jsonData
	if err := json.Unmarshal(data, &jd); err != nil {
		return apollerr.Decoding("plutus: json: %v", err)
	}
	out, err := fromJSONData(jd)
	if err != nil {
		return err
	}
	*d = out
	return nil
}

func fromJSONData(jd jsonData) (Data, error) {
	switch {
	case jd.Int != nil:
		i, ok := new(big.Int).SetString(*jd.Int, 10)
		if !ok {
			return Data{}, apollerr.Decoding("plutus: json: invalid integer %q", *jd.Int)
		}
		return NewInteger(i), nil
	case jd.Bytes != nil:
		b, err := hex.DecodeString(*jd.Bytes)
		if err != nil {
			return Data{}, apollerr.Decoding("plutus: json: invalid bytes: %v", err)
		}
		return NewByteString(b), nil
	case jd.List != nil:
		items := make([]Data, len(jd.List))
		for i, jf := range jd.List {
			it, err := fromJSONData(jf)
			if err != nil {
				return Data{}, err
			}
			items[i] = it
		}
		return NewList(items...), nil
	case jd.Map != nil:
		pairs := make([]Pair, len(jd.Map))
		for i, e := range jd.Map {
			k, err := fromJSONData(e.Key)
			if err != nil {
				return Data{}, err
			}
			v, err := fromJSONData(e.Value)
			if err != nil {
				return Data{}, err
			}
			pairs[i] = Pair{Key: k, Value: v}
		}
		return NewMap(pairs...), nil
	case jd.Constructor != nil:
		fields := make([]Data, len(jd.Fields))
		for i, jf := range jd.Fields {
			f, err := fromJSONData(jf)
			if err != nil {
				return Data{}, err
			}
			fields[i] = f
		}
		return NewConstr(*jd.Constructor, fields...), nil
	default:
		return Data{}, apollerr.Decoding("plutus: json: empty or unrecognized object")
	}
}

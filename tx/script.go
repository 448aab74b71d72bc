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
	"github.com/go-cardano/cardanotx/nativescript"
	"github.com/go-cardano/cardanotx/plutus"
)

// ScriptKind discriminates the script variants that can be attached to
// an output (as a reference script) or a witness set.
type ScriptKind int

const (
	ScriptKindNative ScriptKind = iota
	ScriptKindPlutusV1
	ScriptKindPlutusV2
	ScriptKindPlutusV3
)

// Script is a tagged union over the four script kinds a
// post-Babbage output or witness set can carry. Wire shape is
// `[kind, script_bytes]`, the shape `script_ref` uses inside a
// TransactionOutput (spec §3.4) and the witness set's per-kind script
// lists flatten from.
type Script struct {
	Kind   ScriptKind
	Native nativescript.Script
	Plutus plutus.Script
}

// NewNativeScript wraps a native script for use as a reference/witness
// script.
func NewNativeScript(s nativescript.Script) Script {
	return Script{Kind: ScriptKindNative, Native: s}
}

// NewPlutusScript wraps a Plutus script for use as a reference/witness
// script; the Plutus version comes from s.Version.
func NewPlutusScript(s plutus.Script) Script {
	kind := ScriptKindPlutusV1
	switch s.Version {
	case plutus.V2:
		kind = ScriptKindPlutusV2
	case plutus.V3:
		kind = ScriptKindPlutusV3
	}
	return Script{Kind: kind, Plutus: s}
}

// Hash computes the script's hash regardless of kind.
func (s Script) Hash() (hash.ScriptHash, error) {
	switch s.Kind {
	case ScriptKindNative:
		return s.Native.Hash()
	case ScriptKindPlutusV1, ScriptKindPlutusV2, ScriptKindPlutusV3:
		return s.Plutus.Hash()
	default:
		return hash.ScriptHash{}, apollerr.InvalidArgument("tx: unknown script kind %d", s.Kind)
	}
}

type wireScript struct {
	_     struct{} `cbor:",toarray"`
	Kind  uint8
	Bytes cborx.RawMessage
}

// MarshalCBOR encodes the script as [kind, script_cbor], the shape a
// post-Babbage output's script_ref field wraps inside tag 24 (spec
// §3.4).
func (s Script) MarshalCBOR() ([]byte, error) {
	var body []byte
	var err error
	switch s.Kind {
	case ScriptKindNative:
		body, err = s.Native.MarshalCBOR()
	case ScriptKindPlutusV1, ScriptKindPlutusV2, ScriptKindPlutusV3:
		body, err = s.Plutus.MarshalCBOR()
	default:
		return nil, apollerr.InvalidArgument("tx: unknown script kind %d", s.Kind)
	}
	if err != nil {
		return nil, err
	}
	return cborMarshal(wireScript{Kind: uint8(s.Kind), Bytes: body})
}

func (s *Script) UnmarshalCBOR(data []byte) error {
	var w wireScript
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: script: %v", err)
	}
	switch ScriptKind(w.Kind) {
	case ScriptKindNative:
		var n nativescript.Script
		if err := n.UnmarshalCBOR(w.Bytes); err != nil {
			return err
		}
		*s = Script{Kind: ScriptKindNative, Native: n}
	case ScriptKindPlutusV1:
		var p plutus.Script
		if err := p.UnmarshalCBOR(w.Bytes); err != nil {
			return err
		}
		p.Version = plutus.V1
		*s = Script{Kind: ScriptKindPlutusV1, Plutus: p}
	case ScriptKindPlutusV2:
		var p plutus.Script
		if err := p.UnmarshalCBOR(w.Bytes); err != nil {
			return err
		}
		p.Version = plutus.V2
		*s = Script{Kind: ScriptKindPlutusV2, Plutus: p}
	case ScriptKindPlutusV3:
		var p plutus.Script
		if err := p.UnmarshalCBOR(w.Bytes); err != nil {
			return err
		}
		p.Version = plutus.V3
		*s = Script{Kind: ScriptKindPlutusV3, Plutus: p}
	default:
		return apollerr.Decoding("tx: unknown script kind %d", w.Kind)
	}
	return nil
}

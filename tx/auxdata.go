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
	"github.com/go-cardano/cardanotx/nativescript"
)

// Metadatum is an arbitrary transaction_metadatum value (int, bytes,
// text, list, or map of further metadata). It is carried as raw,
// already-validated CBOR rather than modeled as a Go sum type: callers
// build metadata with whatever Go value marshals the way they want
// (map[string]any, a struct, etc.) and pass it through NewAuxiliaryData
// already encoded, mirroring how auxiliary data is an opaque payload
// from the builder's point of view (spec §4.4's
// set_auxiliary_data/add_auxiliary_data_cbor operations).
type Metadatum = cborx.RawMessage

// AuxiliaryData is the transaction's auxiliary_data (spec §3.4): a
// label-keyed metadata map plus any native or Plutus scripts whose
// presence should be witnessed but that aren't needed for validation
// (the Alonzo-era `auxiliary_data` shape, a superset of the pre-Mary
// bare-metadata-map form).
type AuxiliaryData struct {
	Metadata      map[uint64]Metadatum
	NativeScripts []nativescript.Script
	PlutusV1      [][]byte
	PlutusV2      [][]byte
	PlutusV3      [][]byte
}

// NewAuxiliaryData constructs an AuxiliaryData carrying only metadata.
func NewAuxiliaryData(metadata map[uint64]Metadatum) AuxiliaryData {
	return AuxiliaryData{Metadata: metadata}
}

func (a AuxiliaryData) isPlainMetadata() bool {
	return len(a.NativeScripts) == 0 && len(a.PlutusV1) == 0 && len(a.PlutusV2) == 0 && len(a.PlutusV3) == 0
}

type wireAuxiliaryDataMap struct {
	Metadata      map[uint64]Metadatum `cbor:"0,keyasint,omitempty"`
	NativeScripts []nativescript.Script `cbor:"1,keyasint,omitempty"`
	PlutusV1      [][]byte              `cbor:"2,keyasint,omitempty"`
	PlutusV2      [][]byte              `cbor:"3,keyasint,omitempty"`
	PlutusV3      [][]byte              `cbor:"4,keyasint,omitempty"`
}

// MarshalCBOR encodes plain metadata bare (the pre-Mary shape) and
// falls back to the tag-259 map shape the moment any script is
// attached, matching the ledger's auxiliary_data CDDL.
func (a AuxiliaryData) MarshalCBOR() ([]byte, error) {
	if a.isPlainMetadata() {
		return cborMarshal(a.Metadata)
	}
	wire := wireAuxiliaryDataMap{
		Metadata:      a.Metadata,
		NativeScripts: a.NativeScripts,
		PlutusV1:      a.PlutusV1,
		PlutusV2:      a.PlutusV2,
		PlutusV3:      a.PlutusV3,
	}
	body, err := cborMarshal(wire)
	if err != nil {
		return nil, err
	}
	return cborMarshal(cborx.Tag{Number: 259, Content: cborx.RawMessage(body)})
}

func (a *AuxiliaryData) UnmarshalCBOR(data []byte) error {
	_, major, _, _, err := cborx.DecodeHead(data)
	if err != nil {
		return apollerr.Decoding("tx: auxiliary data: %v", err)
	}
	if major == 5 {
		var m map[uint64]Metadatum
		if err := cborUnmarshal(data, &m); err != nil {
			return apollerr.Decoding("tx: auxiliary data metadata: %v", err)
		}
		*a = AuxiliaryData{Metadata: m}
		return nil
	}
	var tag cborx.Tag
	if err := cborUnmarshal(data, &tag); err != nil {
		return apollerr.Decoding("tx: auxiliary data: %v", err)
	}
	inner, ok := tag.Content.(cborx.RawMessage)
	if !ok {
		if b, isBytes := tag.Content.([]byte); isBytes {
			inner = b
		} else {
			return apollerr.Decoding("tx: auxiliary data: unexpected tag content")
		}
	}
	var wire wireAuxiliaryDataMap
	if err := cborUnmarshal(inner, &wire); err != nil {
		return apollerr.Decoding("tx: auxiliary data map: %v", err)
	}
	*a = AuxiliaryData{
		Metadata:      wire.Metadata,
		NativeScripts: wire.NativeScripts,
		PlutusV1:      wire.PlutusV1,
		PlutusV2:      wire.PlutusV2,
		PlutusV3:      wire.PlutusV3,
	}
	return nil
}

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

package fee

import (
	"sort"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/protocol"
)

// languageTag is the byte language_views is keyed by; it matches the
// protocol.Parameters.CostModels key convention (0=V1, 1=V2, 2=V3).
const (
	languagePlutusV1 uint8 = 0
	languagePlutusV2 uint8 = 1
	languagePlutusV3 uint8 = 2
)

// ScriptDataHash computes the Blake2b-256 commitment to redeemers,
// datums, and the relevant cost models (spec §4.3, §9): the hash of
// `cbor(redeemers) || cbor(datums) || cbor(language_views)`.
//
// languages lists which Plutus versions are actually exercised by this
// transaction; only their cost models enter language_views, matching
// the ledger's rule that an unused language's cost model is omitted.
// If redeemers and datums are both empty, the script-data hash is
// absent entirely (no Plutus scripts were invoked), signaled by a
// false second return value.
func ScriptDataHash(
	redeemers map[plutus.RedeemerKey]plutus.Redeemer,
	useRedeemerMap bool,
	datums []plutus.Data,
	languages []uint8,
	params protocol.Parameters,
) (hash.ScriptDataHash, bool, error) {
	if len(redeemers) == 0 && len(datums) == 0 {
		return hash.ScriptDataHash{}, false, nil
	}

	redeemersCBOR, err := plutus.MarshalRedeemers(redeemers, useRedeemerMap)
	if err != nil {
		return hash.ScriptDataHash{}, false, err
	}

	datumsCBOR, err := marshalDatums(datums)
	if err != nil {
		return hash.ScriptDataHash{}, false, err
	}

	viewsCBOR, err := languageViews(languages, params)
	if err != nil {
		return hash.ScriptDataHash{}, false, err
	}

	var buf []byte
	buf = append(buf, redeemersCBOR...)
	buf = append(buf, datumsCBOR...)
	buf = append(buf, viewsCBOR...)
	digest := crypto.Blake2b256(buf)
	return hash.ScriptDataHash(digest), true, nil
}

func marshalDatums(datums []plutus.Data) ([]byte, error) {
	if len(datums) == 0 {
		return cborx.Marshal([]any{})
	}
	raws := make([]cborx.RawMessage, len(datums))
	for i, d := range datums {
		b, err := d.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		raws[i] = b
	}
	return cborx.Marshal(raws)
}

// languageViews builds the language_views map, applying the ledger's
// double-CBOR quirk for PlutusV1: its cost model is encoded as an
// indefinite-length list and that encoding is then wrapped again as a
// CBOR byte string, while V2/V3 cost models encode as a plain
// definite-length list with no extra wrapping.
func languageViews(languages []uint8, params protocol.Parameters) ([]byte, error) {
	sorted := append([]uint8(nil), languages...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	wire := make(map[cborx.ByteString]cborx.RawMessage, len(sorted))
	for _, lang := range sorted {
		model, ok := params.CostModels[lang]
		if !ok {
			return nil, apollerr.InvalidArgument("fee: no cost model for language %d", lang)
		}
		var value []byte
		var err error
		if lang == languagePlutusV1 {
			inner, encErr := cborx.IndefList[int64](model).MarshalCBOR()
			if encErr != nil {
				return nil, encErr
			}
			value, err = cborx.Marshal(inner)
		} else {
			value, err = cborx.Marshal(model)
		}
		if err != nil {
			return nil, err
		}
		wire[cborx.NewByteString([]byte{lang})] = value
	}
	return cborx.Marshal(wire)
}

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

// Package schema layers the declarative model described in spec §4.2 on
// top of cborx: array-shaped records and map-shaped records with numeric
// keys are expressed directly as Go structs with `cbor:",toarray"` /
// `cbor:"N,keyasint,omitempty"` tags (Salvionied/cbor, like its upstream
// fxamacker/cbor, understands both natively). This package supplies the
// two things plain struct tags can't express: canonical dict-shaped
// ordering (sorted by byte-length then lexicographically, not plain
// lexicographic order — spec §3.3/§6.2) and tagged sum-variant dispatch
// (first array element is a discriminator).
package schema

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-cardano/cardanotx/cborx"
)

// DictKey is any byte-keyed canonical dictionary key (policy ids, asset
// names, ...).
type DictKey interface {
	~string | ~[]byte
}

// SortKeys orders keys the way the reference ledger's BTreeMap does:
// first by encoded length, then lexicographically. This is the ordering
// canonical CBOR map encoding must use for MultiAsset and Value (spec
// §3.3, §6.2) — plain byte-lexicographic order is wrong and breaks
// hardware-wallet signature compatibility.
func SortKeys[K DictKey](keys []K) {
	sort.Slice(keys, func(i, j int) bool {
		bi, bj := []byte(keys[i]), []byte(keys[j])
		if len(bi) != len(bj) {
			return len(bi) < len(bj)
		}
		return bytes.Compare(bi, bj) < 0
	})
}

// Discriminator peeks the first element of a CBOR array without fully
// decoding the remaining elements, returning it alongside the raw array
// payload so the caller can re-decode into the concrete variant type
// once the discriminator has selected one.
func Discriminator(data []byte) (tag uint64, err error) {
	var probe []cborx.RawMessage
	if err := cborx.Unmarshal(data, &probe); err != nil {
		return 0, fmt.Errorf("schema: discriminator: %w", err)
	}
	if len(probe) == 0 {
		return 0, fmt.Errorf("schema: discriminator: empty array")
	}
	if err := cborx.Unmarshal(probe[0], &tag); err != nil {
		return 0, fmt.Errorf("schema: discriminator: first element is not a uint: %w", err)
	}
	return tag, nil
}

// EncodeTagged encodes [tag, fields...] as a single definite-length CBOR
// array, the wire shape of every sum-variant described in spec §3.5,
// §3.7, §3.8 (native scripts, certificates, governance actions).
func EncodeTagged(tag uint64, fields ...any) ([]byte, error) {
	arr := make([]any, 0, len(fields)+1)
	arr = append(arr, tag)
	arr = append(arr, fields...)
	b, err := cborx.Marshal(arr)
	if err != nil {
		return nil, fmt.Errorf("schema: encode tagged %d: %w", tag, err)
	}
	return b, nil
}

// DecodeTaggedInto decodes a [tag, fields...] array, verifying the tag
// matches expectTag, and unmarshals the remaining elements into dst
// (which should be a pointer to a slice/struct of the variant's field
// types, typically []cborx.RawMessage for further per-field decoding).
func DecodeTaggedInto(data []byte, expectTag uint64, dst *[]cborx.RawMessage) error {
	var raw []cborx.RawMessage
	if err := cborx.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: decode tagged: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("schema: decode tagged: empty array")
	}
	var tag uint64
	if err := cborx.Unmarshal(raw[0], &tag); err != nil {
		return fmt.Errorf("schema: decode tagged: %w", err)
	}
	if tag != expectTag {
		return fmt.Errorf("schema: decode tagged: expected tag %d, got %d", expectTag, tag)
	}
	*dst = raw[1:]
	return nil
}

// RoundTrip is a small, test-oriented helper implementing "deep copy via
// serialize+deserialize" (spec §4.2): marshal src and unmarshal into a
// freshly zeroed dst, guaranteeing structural equality by construction.
func RoundTrip(src, dst any) error {
	b, err := cborx.Marshal(src)
	if err != nil {
		return fmt.Errorf("schema: roundtrip marshal: %w", err)
	}
	if err := cborx.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("schema: roundtrip unmarshal: %w", err)
	}
	return nil
}

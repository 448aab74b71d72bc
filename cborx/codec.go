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

// Package cborx is the primitive CBOR codec (component A). It wraps
// Salvionied/cbor/v2 — apollo's own fork of fxamacker/cbor with the
// canonical-map and shortest-form-integer behavior the Cardano ledger's
// CDDL requires — with the module's canonical encode/decode profile, and
// adds a handful of primitives the fork doesn't cover on its own:
// indefinite-length lists (cborx.IndefList), byte-length-then-lexicographic
// sorted maps, and tag helpers for Plutus constructor encoding.
package cborx

import (
	"fmt"

	"github.com/Salvionied/cbor/v2"
)

// RawMessage is a raw, already-encoded CBOR value.
type RawMessage = cbor.RawMessage

// Tag is a CBOR tag (major type 6) wrapping some content.
type Tag = cbor.Tag

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	encOpts := cbor.CanonicalEncOptions()
	// Canonical profile: shortest-form integers, definite-length byte
	// strings and arrays by default, map keys sorted bytewise — this is
	// exactly the ledger's CDDL expectation. Indefinite-length arrays are
	// produced explicitly via IndefList, never implicitly.
	encOpts.Sort = cbor.SortCanonical
	m, err := encOpts.EncMode()
	if err != nil {
		panic(fmt.Errorf("cborx: bad encoder options: %w", err))
	}
	encMode = m

	decOpts := cbor.DecOptions{
		// Reject trailing garbage outside tagged payloads; Unmarshal below
		// additionally checks this itself for the top-level call.
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	dm, err := decOpts.DecMode()
	if err != nil {
		panic(fmt.Errorf("cborx: bad decoder options: %w", err))
	}
	decMode = dm
}

// Marshal encodes v using the module's canonical CBOR profile.
func Marshal(v any) ([]byte, error) {
	b, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cborx: marshal: %w", err)
	}
	return b, nil
}

// Unmarshal decodes data into v, failing on truncation, extra trailing
// bytes, or a type mismatch, per the primitive codec's contract. The
// underlying decoder rejects trailing bytes after the single top-level
// item on its own.
func Unmarshal(data []byte, v any) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cborx: unmarshal: %w", err)
	}
	return nil
}

// NewByteString wraps raw bytes for use as a canonical-sortable CBOR map
// key (policy IDs, asset names).
type ByteString = cbor.ByteString

// NewByteString constructs a ByteString key.
func NewByteString(b []byte) ByteString {
	return cbor.NewByteString(b)
}

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

// Package plutus implements Plutus scripts and Plutus data (components
// F/G, spec §3.6): opaque versioned script bytes plus the recursive
// PlutusData ADT used for datums and redeemers, bridged to
// blinklabs-io/plutigo's data.PlutusData for downstream script
// evaluation.
package plutus

import (
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/hash"
)

// Version is the Plutus language version a script targets.
type Version int

const (
	V1 Version = iota + 1
	V2
	V3
)

// versionPrefix is prepended to the raw script bytes before hashing
// (spec §3.6): 0x01/0x02/0x03 for V1/V2/V3.
func (v Version) prefix() (byte, error) {
	switch v {
	case V1:
		return 0x01, nil
	case V2:
		return 0x02, nil
	case V3:
		return 0x03, nil
	default:
		return 0, apollerr.InvalidArgument("plutus: unknown script version %d", v)
	}
}

func (v Version) String() string {
	switch v {
	case V1:
		return "PlutusV1"
	case V2:
		return "PlutusV2"
	case V3:
		return "PlutusV3"
	default:
		return "PlutusUnknown"
	}
}

// Script is an opaque, versioned Plutus script. The module never
// evaluates scripts (spec §1 Non-goals) — it only carries the bytes
// far enough to compute hashes and attach them to a witness set.
type Script struct {
	Version Version
	Bytes   []byte
}

// NewScript constructs a versioned Plutus script from its raw
// (already flat-encoded, not CBOR-wrapped) bytes.
func NewScript(version Version, raw []byte) Script {
	return Script{Version: version, Bytes: raw}
}

// Hash computes the script hash: Blake2b-224 of the version prefix
// followed by the raw script bytes (spec §3.6).
func (s Script) Hash() (hash.ScriptHash, error) {
	prefix, err := s.Version.prefix()
	if err != nil {
		return hash.ScriptHash{}, err
	}
	payload := make([]byte, 0, 1+len(s.Bytes))
	payload = append(payload, prefix)
	payload = append(payload, s.Bytes...)
	digest := crypto.Blake2b224(payload)
	h28, err := hash.NewHash28(digest[:])
	if err != nil {
		return hash.ScriptHash{}, err
	}
	return hash.ScriptHash(h28), nil
}

// MarshalCBOR encodes the script as a bare CBOR byte string, the wire
// shape used inside a witness set's plutus_v{1,2,3}_script field (the
// version itself is implied by which field the script is stored
// under, never encoded in-band).
func (s Script) MarshalCBOR() ([]byte, error) {
	return cborBytes(s.Bytes)
}

func (s *Script) UnmarshalCBOR(data []byte) error {
	b, err := cborBytesDecode(data)
	if err != nil {
		return err
	}
	s.Bytes = b
	return nil
}

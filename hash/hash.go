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

// Package hash defines fixed-size hash newtypes (component D): opaque
// byte strings of exactly 28 or 32 bytes, one distinct Go type per role
// so a VerificationKeyHash can never be passed where a ScriptHash is
// expected. Equality and ordering are by payload bytes.
package hash

import (
	"bytes"
	"encoding/hex"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
)

// Hash28 is a 28-byte hash (Blake2b-224 digest size): verification key
// hashes, script hashes, pool key hashes, VRF key hashes.
type Hash28 [28]byte

// Hash32 is a 32-byte hash (Blake2b-256 digest size): datum hashes,
// transaction ids, anchor data hashes.
type Hash32 [32]byte

// NewHash28 validates the length and copies b into a Hash28.
func NewHash28(b []byte) (Hash28, error) {
	var h Hash28
	if len(b) != len(h) {
		return h, apollerr.Decoding("expected %d-byte hash, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

// NewHash32 validates the length and copies b into a Hash32.
func NewHash32(b []byte) (Hash32, error) {
	var h Hash32
	if len(b) != len(h) {
		return h, apollerr.Decoding("expected %d-byte hash, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

// Hash28FromHex decodes a hex string into a Hash28.
func Hash28FromHex(s string) (Hash28, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash28{}, apollerr.Decoding("invalid hex: %v", err)
	}
	return NewHash28(b)
}

// Hash32FromHex decodes a hex string into a Hash32.
func Hash32FromHex(s string) (Hash32, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash32{}, apollerr.Decoding("invalid hex: %v", err)
	}
	return NewHash32(b)
}

func (h Hash28) Bytes() []byte  { return h[:] }
func (h Hash28) String() string { return hex.EncodeToString(h[:]) }
func (h Hash28) IsZero() bool   { return h == Hash28{} }

// Compare returns -1, 0, or 1 by payload byte order, for canonical
// ordering of script hashes and the like.
func (h Hash28) Compare(o Hash28) int { return bytes.Compare(h[:], o[:]) }

func (h Hash32) Bytes() []byte  { return h[:] }
func (h Hash32) String() string { return hex.EncodeToString(h[:]) }
func (h Hash32) IsZero() bool   { return h == Hash32{} }
func (h Hash32) Compare(o Hash32) int { return bytes.Compare(h[:], o[:]) }

// MarshalCBOR encodes the hash as a definite-length CBOR byte string.
func (h Hash28) MarshalCBOR() ([]byte, error) { return cborBytes(h[:]) }
func (h Hash32) MarshalCBOR() ([]byte, error) { return cborBytes(h[:]) }

// UnmarshalCBOR decodes a CBOR byte string of exactly the expected size.
func (h *Hash28) UnmarshalCBOR(data []byte) error {
	b, err := cborBytesDecode(data, 28)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

func (h *Hash32) UnmarshalCBOR(data []byte) error {
	b, err := cborBytesDecode(data, 32)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// VerificationKeyHash, ScriptHash, DatumHash, TransactionId, PoolKeyHash,
// VrfKeyHash, RewardAccountHash and AnchorDataHash are the concrete
// per-role newtypes spec §3.1 calls for. They exist so the Go type
// checker enforces the role distinction the original dynamically-typed
// source only enforced at runtime (spec §9).
type (
	VerificationKeyHash Hash28
	ScriptHash           Hash28
	PoolKeyHash          Hash28
	VrfKeyHash           Hash28

	DatumHash       Hash32
	TransactionId   Hash32
	RewardAccountHash Hash32
	AnchorDataHash  Hash32
	ScriptDataHash  Hash32
)

func (h VerificationKeyHash) Bytes() []byte { return h[:] }
func (h ScriptHash) Bytes() []byte          { return h[:] }
func (h PoolKeyHash) Bytes() []byte         { return h[:] }
func (h VrfKeyHash) Bytes() []byte          { return h[:] }
func (h DatumHash) Bytes() []byte           { return h[:] }
func (h TransactionId) Bytes() []byte       { return h[:] }
func (h RewardAccountHash) Bytes() []byte   { return h[:] }
func (h AnchorDataHash) Bytes() []byte      { return h[:] }
func (h ScriptDataHash) Bytes() []byte      { return h[:] }

func (h VerificationKeyHash) String() string { return hex.EncodeToString(h[:]) }
func (h ScriptHash) String() string          { return hex.EncodeToString(h[:]) }
func (h PoolKeyHash) String() string         { return hex.EncodeToString(h[:]) }
func (h TransactionId) String() string       { return hex.EncodeToString(h[:]) }
func (h DatumHash) String() string           { return hex.EncodeToString(h[:]) }

func (h VerificationKeyHash) MarshalCBOR() ([]byte, error) { return cborBytes(h[:]) }
func (h ScriptHash) MarshalCBOR() ([]byte, error)          { return cborBytes(h[:]) }
func (h PoolKeyHash) MarshalCBOR() ([]byte, error)         { return cborBytes(h[:]) }
func (h VrfKeyHash) MarshalCBOR() ([]byte, error)          { return cborBytes(h[:]) }
func (h DatumHash) MarshalCBOR() ([]byte, error)           { return cborBytes(h[:]) }
func (h TransactionId) MarshalCBOR() ([]byte, error)       { return cborBytes(h[:]) }
func (h RewardAccountHash) MarshalCBOR() ([]byte, error)   { return cborBytes(h[:]) }
func (h AnchorDataHash) MarshalCBOR() ([]byte, error)      { return cborBytes(h[:]) }
func (h ScriptDataHash) MarshalCBOR() ([]byte, error)      { return cborBytes(h[:]) }

func (h *VerificationKeyHash) UnmarshalCBOR(data []byte) error { return unmarshal28((*Hash28)(h), data) }
func (h *ScriptHash) UnmarshalCBOR(data []byte) error          { return unmarshal28((*Hash28)(h), data) }
func (h *PoolKeyHash) UnmarshalCBOR(data []byte) error         { return unmarshal28((*Hash28)(h), data) }
func (h *VrfKeyHash) UnmarshalCBOR(data []byte) error          { return unmarshal28((*Hash28)(h), data) }
func (h *DatumHash) UnmarshalCBOR(data []byte) error           { return unmarshal32((*Hash32)(h), data) }
func (h *TransactionId) UnmarshalCBOR(data []byte) error       { return unmarshal32((*Hash32)(h), data) }
func (h *RewardAccountHash) UnmarshalCBOR(data []byte) error   { return unmarshal32((*Hash32)(h), data) }
func (h *AnchorDataHash) UnmarshalCBOR(data []byte) error      { return unmarshal32((*Hash32)(h), data) }
func (h *ScriptDataHash) UnmarshalCBOR(data []byte) error      { return unmarshal32((*Hash32)(h), data) }

func unmarshal28(h *Hash28, data []byte) error { return h.UnmarshalCBOR(data) }
func unmarshal32(h *Hash32, data []byte) error { return h.UnmarshalCBOR(data) }

// cborBytes encodes b as a definite-length CBOR byte string via the
// shared canonical encoder, the leaf primitive every hash/key/address
// type bottoms out on.
func cborBytes(b []byte) ([]byte, error) {
	return cborx.Marshal(b)
}

func cborBytesDecode(data []byte, want int) ([]byte, error) {
	var b []byte
	if err := cborx.Unmarshal(data, &b); err != nil {
		return nil, apollerr.Decoding("%v", err)
	}
	if len(b) != want {
		return nil, apollerr.Decoding("expected %d-byte hash, got %d", want, len(b))
	}
	return b, nil
}

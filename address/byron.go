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

package address

import (
	"hash/crc32"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/crypto"
)

// ByronAddress is a legacy Byron-era address: a 28-byte root hash,
// an attributes map, and a type tag in {0, 2}, wrapped in CBOR tag 24
// with a CRC32 checksum of the inner CBOR, base58-encoded for display.
//
// Per spec §9, this is decode-only: the source library never constructs
// Byron addresses (it has no spending-data/derivation material to
// compute the root hash from), only parses ones received from the
// chain, so every field here is read-only after decode.
type ByronAddress struct {
	rootHash   [28]byte
	attributes map[uint64][]byte
	addrType   uint64
	net        Network
	raw        []byte // original inner CBOR, preserved for re-encoding
}

func (a ByronAddress) RootHash() [28]byte { return a.rootHash }
func (a ByronAddress) AddrType() uint64   { return a.addrType }
func (a ByronAddress) Network() Network   { return a.net }

// Bytes returns the outer CBOR encoding: tag(24, inner) followed
// alongside its CRC32, as a 2-element array.
func (a ByronAddress) Bytes() ([]byte, error) {
	crc := crc32.ChecksumIEEE(a.raw)
	arr := []any{cborx.Tag{Number: cborx.ByteStringTag, Content: a.raw}, crc}
	return cborx.Marshal(arr)
}

// String base58-encodes the address.
func (a ByronAddress) String() string {
	b, err := a.Bytes()
	if err != nil {
		return ""
	}
	return crypto.Base58Encode(b)
}

// DecodeByronAddress parses a Byron address's outer CBOR bytes.
func DecodeByronAddress(data []byte) (ByronAddress, error) {
	var outer []cborx.RawMessage
	if err := cborx.Unmarshal(data, &outer); err != nil {
		return ByronAddress{}, apollerr.InvalidAddressInput("malformed outer CBOR: %v", err)
	}
	if len(outer) != 2 {
		return ByronAddress{}, apollerr.InvalidAddressInput("expected 2-element outer array, got %d", len(outer))
	}

	var tag cborx.Tag
	if err := cborx.Unmarshal(outer[0], &tag); err != nil {
		return ByronAddress{}, apollerr.InvalidAddressInput("expected tagged inner payload: %v", err)
	}
	if tag.Number != cborx.ByteStringTag {
		return ByronAddress{}, apollerr.InvalidAddressInput("expected CBOR tag %d, got %d", cborx.ByteStringTag, tag.Number)
	}
	inner, ok := tag.Content.([]byte)
	if !ok {
		return ByronAddress{}, apollerr.InvalidAddressInput("tag 24 content is not a byte string")
	}

	var crc uint32
	if err := cborx.Unmarshal(outer[1], &crc); err != nil {
		return ByronAddress{}, apollerr.InvalidAddressInput("invalid CRC32 field: %v", err)
	}
	if got := crc32.ChecksumIEEE(inner); got != crc {
		return ByronAddress{}, apollerr.InvalidAddressInput("CRC32 mismatch: expected %d, got %d", crc, got)
	}

	var content []cborx.RawMessage
	if err := cborx.Unmarshal(inner, &content); err != nil {
		return ByronAddress{}, apollerr.InvalidAddressInput("malformed address content: %v", err)
	}
	if len(content) != 3 {
		return ByronAddress{}, apollerr.InvalidAddressInput("expected 3-element address content, got %d", len(content))
	}

	var rootHashBytes []byte
	if err := cborx.Unmarshal(content[0], &rootHashBytes); err != nil {
		return ByronAddress{}, apollerr.InvalidAddressInput("invalid root hash: %v", err)
	}
	if len(rootHashBytes) != 28 {
		return ByronAddress{}, apollerr.InvalidAddressInput("expected 28-byte root hash, got %d", len(rootHashBytes))
	}

	attrs, err := decodeByronAttributes(content[1])
	if err != nil {
		return ByronAddress{}, err
	}

	var addrType uint64
	if err := cborx.Unmarshal(content[2], &addrType); err != nil {
		return ByronAddress{}, apollerr.InvalidAddressInput("invalid address type: %v", err)
	}
	if addrType != 0 && addrType != 2 {
		return ByronAddress{}, apollerr.InvalidAddressInput("unsupported address type %d, expected 0 or 2", addrType)
	}

	net := Mainnet
	if magic, ok := attrs[2]; ok {
		var m int64
		if err := cborx.Unmarshal(magic, &m); err == nil && m == byronTestnetMagic {
			net = Testnet
		}
	}

	addr := ByronAddress{addrType: addrType, net: net, raw: inner}
	copy(addr.rootHash[:], rootHashBytes)
	addr.attributes = make(map[uint64][]byte, len(attrs))
	for k, v := range attrs {
		addr.attributes[k] = v
	}
	return addr, nil
}

func decodeByronAttributes(raw cborx.RawMessage) (map[uint64]cborx.RawMessage, error) {
	var m map[uint64]cborx.RawMessage
	if err := cborx.Unmarshal(raw, &m); err != nil {
		return nil, apollerr.InvalidAddressInput("invalid attributes map: %v", err)
	}
	return m, nil
}

// DecodeByronBase58 parses a base58-encoded Byron address string.
func DecodeByronBase58(s string) (ByronAddress, error) {
	b, err := crypto.Base58Decode(s)
	if err != nil {
		return ByronAddress{}, apollerr.InvalidAddressInput("%v", err)
	}
	return DecodeByronAddress(b)
}

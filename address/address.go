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

import "github.com/go-cardano/cardanotx/apollerr"

// Address is either a ShelleyAddress or a ByronAddress (spec §3.2). On
// the wire it is always just the raw address bytes (a CBOR byte
// string) — the Shelley/Byron distinction is inferred from the first
// byte on decode.
type Address struct {
	shelley *ShelleyAddress
	byron   *ByronAddress
}

// FromShelley wraps a Shelley address.
func FromShelley(a ShelleyAddress) Address { return Address{shelley: &a} }

// FromByron wraps a Byron address.
func FromByron(a ByronAddress) Address { return Address{byron: &a} }

func (a Address) IsByron() bool   { return a.byron != nil }
func (a Address) IsShelley() bool { return a.shelley != nil }

// Shelley returns the underlying Shelley address and true, or the zero
// value and false if this Address wraps a Byron address instead.
func (a Address) Shelley() (ShelleyAddress, bool) {
	if a.shelley == nil {
		return ShelleyAddress{}, false
	}
	return *a.shelley, true
}

// Byron returns the underlying Byron address and true, or the zero
// value and false if this Address wraps a Shelley address instead.
func (a Address) Byron() (ByronAddress, bool) {
	if a.byron == nil {
		return ByronAddress{}, false
	}
	return *a.byron, true
}

// Bytes returns the address's raw wire bytes.
func (a Address) Bytes() ([]byte, error) {
	switch {
	case a.shelley != nil:
		return a.shelley.Bytes()
	case a.byron != nil:
		return a.byron.Bytes()
	default:
		return nil, apollerr.InvalidAddressInput("address has neither a Shelley nor a Byron payload")
	}
}

// String renders the address in its canonical text encoding (bech32 for
// Shelley, base58 for Byron).
func (a Address) String() string {
	switch {
	case a.shelley != nil:
		return a.shelley.String()
	case a.byron != nil:
		return a.byron.String()
	default:
		return ""
	}
}

// Network returns the address's network tag.
func (a Address) Network() Network {
	switch {
	case a.shelley != nil:
		return a.shelley.Net
	case a.byron != nil:
		return a.byron.net
	default:
		return Testnet
	}
}

// ParseAddress accepts either bech32 (Shelley) or base58 (Byron) text
// and returns the decoded Address.
func ParseAddress(s string) (Address, error) {
	if shelley, err := ParseShelleyBech32(s); err == nil {
		return FromShelley(shelley), nil
	}
	byron, err := DecodeByronBase58(s)
	if err != nil {
		return Address{}, apollerr.InvalidAddressInput("not a valid Shelley or Byron address: %v", err)
	}
	return FromByron(byron), nil
}

// MarshalCBOR encodes the address as a CBOR byte string of its raw
// wire bytes, the shape every ledger field containing an address uses.
func (a Address) MarshalCBOR() ([]byte, error) {
	b, err := a.Bytes()
	if err != nil {
		return nil, err
	}
	return marshalBytes(b)
}

// UnmarshalCBOR decodes a CBOR byte string into an Address, dispatching
// on the leading byte the way the wire format does (Byron addresses
// always start with a CBOR array/tag byte >= 0x80, Shelley addresses
// start with a header byte whose value never collides with that range
// in practice since type nibbles top out at 0xf).
func (a *Address) UnmarshalCBOR(data []byte) error {
	raw, err := unmarshalBytes(data)
	if err != nil {
		return apollerr.Decoding("address: %v", err)
	}
	if len(raw) == 0 {
		return apollerr.InvalidAddressInput("empty address bytes")
	}
	if raw[0]>>5 == 4 || raw[0]>>5 == 6 { // CBOR array or tag major type: Byron's outer shape
		byron, err := DecodeByronAddress(raw)
		if err == nil {
			*a = FromByron(byron)
			return nil
		}
	}
	shelley, err := DecodeShelleyAddress(raw)
	if err != nil {
		return err
	}
	*a = FromShelley(shelley)
	return nil
}

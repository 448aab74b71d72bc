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
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/hash"
)

// header type nibbles, per CIP-19 / spec §3.2's twelve valid combinations.
const (
	typeKeyKey       = 0x0
	typeScriptKey    = 0x1
	typeKeyScript    = 0x2
	typeScriptScript = 0x3
	typeKeyPointer   = 0x4
	typeScriptPointer = 0x5
	typeKeyNone      = 0x6
	typeScriptNone   = 0x7
	typeNoneKey      = 0xe
	typeNoneScript   = 0xf
)

// ShelleyAddress is a payment and/or staking address: header byte
// (type nibble | network nibble) followed by the payment part and the
// staking part. Payment and staking parts may not both be absent.
type ShelleyAddress struct {
	Net     Network
	Payment *Credential // nil means "None"
	Staking Staking
}

// NewShelleyAddress validates and constructs a Shelley address.
func NewShelleyAddress(net Network, payment *Credential, staking Staking) (ShelleyAddress, error) {
	if payment == nil && staking.Kind == StakingNone {
		return ShelleyAddress{}, apollerr.InvalidAddressInput("payment and staking parts cannot both be None")
	}
	return ShelleyAddress{Net: net, Payment: payment, Staking: staking}, nil
}

func (a ShelleyAddress) headerType() (byte, error) {
	switch {
	case a.Payment != nil && !a.Payment.IsScript() && a.Staking.Kind == StakingKey:
		return typeKeyKey, nil
	case a.Payment != nil && a.Payment.IsScript() && a.Staking.Kind == StakingKey:
		return typeScriptKey, nil
	case a.Payment != nil && !a.Payment.IsScript() && a.Staking.Kind == StakingScript:
		return typeKeyScript, nil
	case a.Payment != nil && a.Payment.IsScript() && a.Staking.Kind == StakingScript:
		return typeScriptScript, nil
	case a.Payment != nil && !a.Payment.IsScript() && a.Staking.Kind == StakingPointer:
		return typeKeyPointer, nil
	case a.Payment != nil && a.Payment.IsScript() && a.Staking.Kind == StakingPointer:
		return typeScriptPointer, nil
	case a.Payment != nil && !a.Payment.IsScript() && a.Staking.Kind == StakingNone:
		return typeKeyNone, nil
	case a.Payment != nil && a.Payment.IsScript() && a.Staking.Kind == StakingNone:
		return typeScriptNone, nil
	case a.Payment == nil && a.Staking.Kind == StakingKey:
		return typeNoneKey, nil
	case a.Payment == nil && a.Staking.Kind == StakingScript:
		return typeNoneScript, nil
	default:
		return 0, apollerr.InvalidAddressInput("unsupported payment/staking combination")
	}
}

// Bytes encodes the address to its raw wire form: header byte, payment
// part (if any), staking part (if any).
func (a ShelleyAddress) Bytes() ([]byte, error) {
	t, err := a.headerType()
	if err != nil {
		return nil, err
	}
	header := t<<4 | byte(a.Net)
	out := []byte{header}
	if a.Payment != nil {
		out = append(out, a.Payment.Hash.Bytes()...)
	}
	switch a.Staking.Kind {
	case StakingKey, StakingScript:
		out = append(out, a.Staking.Hash.Bytes()...)
	case StakingPointer:
		out = append(out, EncodePointer(a.Staking.Pointer)...)
	}
	return out, nil
}

// HRP returns the bech32 human-readable prefix for this address: "addr"
// or "addr_test" for payment addresses, "stake"/"stake_test" for pure
// reward accounts (no payment part).
func (a ShelleyAddress) HRP() string {
	isReward := a.Payment == nil
	switch {
	case isReward && a.Net == Mainnet:
		return "stake"
	case isReward:
		return "stake_test"
	case a.Net == Mainnet:
		return "addr"
	default:
		return "addr_test"
	}
}

// String bech32-encodes the address.
func (a ShelleyAddress) String() string {
	b, err := a.Bytes()
	if err != nil {
		return ""
	}
	s, err := crypto.Bech32Encode(a.HRP(), b)
	if err != nil {
		return ""
	}
	return s
}

// DecodeShelleyAddress parses a Shelley address's raw wire bytes (as
// produced by Bytes, i.e. already bech32-decoded).
func DecodeShelleyAddress(data []byte) (ShelleyAddress, error) {
	if len(data) < 1 {
		return ShelleyAddress{}, apollerr.InvalidAddressInput("empty address")
	}
	header := data[0]
	typeNibble := header >> 4
	net := Network(header & 0x0f)
	rest := data[1:]

	var payment *Credential
	wantPayment := typeNibble != typeNoneKey && typeNibble != typeNoneScript
	if wantPayment {
		if len(rest) < 28 {
			return ShelleyAddress{}, apollerr.InvalidAddressInput("truncated payment part")
		}
		h, err := hash.NewHash28(rest[:28])
		if err != nil {
			return ShelleyAddress{}, err
		}
		rest = rest[28:]
		kind := CredentialKey
		if typeNibble == typeScriptKey || typeNibble == typeScriptScript ||
			typeNibble == typeScriptPointer || typeNibble == typeScriptNone {
			kind = CredentialScript
		}
		payment = &Credential{Kind: kind, Hash: h}
	}

	var staking Staking
	switch typeNibble {
	case typeKeyKey, typeScriptKey, typeNoneKey:
		if len(rest) != 28 {
			return ShelleyAddress{}, apollerr.InvalidAddressInput("invalid staking key part length")
		}
		h, err := hash.NewHash28(rest)
		if err != nil {
			return ShelleyAddress{}, err
		}
		staking = KeyStaking(h)
	case typeKeyScript, typeScriptScript, typeNoneScript:
		if len(rest) != 28 {
			return ShelleyAddress{}, apollerr.InvalidAddressInput("invalid staking script part length")
		}
		h, err := hash.NewHash28(rest)
		if err != nil {
			return ShelleyAddress{}, err
		}
		staking = ScriptStaking(h)
	case typeKeyPointer, typeScriptPointer:
		p, n, err := DecodePointer(rest)
		if err != nil {
			return ShelleyAddress{}, err
		}
		if n != len(rest) {
			return ShelleyAddress{}, apollerr.InvalidAddressInput("trailing bytes after pointer")
		}
		staking = PointerStaking(p)
	case typeKeyNone, typeScriptNone:
		if len(rest) != 0 {
			return ShelleyAddress{}, apollerr.InvalidAddressInput("unexpected trailing bytes")
		}
		staking = NoStaking()
	default:
		return ShelleyAddress{}, apollerr.InvalidAddressInput("unrecognized header type nibble %#x", typeNibble)
	}

	return NewShelleyAddress(net, payment, staking)
}

// ParseShelleyBech32 decodes a bech32-encoded Shelley address string,
// rejecting a mismatched prefix (e.g. "pool1..." where an address was
// expected, spec §8.2).
func ParseShelleyBech32(s string) (ShelleyAddress, error) {
	hrp, data, err := crypto.Bech32Decode(s)
	if err != nil {
		return ShelleyAddress{}, apollerr.InvalidAddressInput("%v", err)
	}
	switch hrp {
	case "addr", "addr_test", "stake", "stake_test":
	default:
		return ShelleyAddress{}, apollerr.InvalidAddressInput("unexpected bech32 prefix %q for a Cardano address", hrp)
	}
	addr, err := DecodeShelleyAddress(data)
	if err != nil {
		return ShelleyAddress{}, err
	}
	if addr.HRP() != hrp {
		return ShelleyAddress{}, apollerr.InvalidAddressInput("bech32 prefix %q does not match decoded address shape %q", hrp, addr.HRP())
	}
	return addr, nil
}

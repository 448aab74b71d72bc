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

// Package nativescript implements the native (Timelock) script AST
// (component F, spec §3.5): pubkey/all/any/n-of/invalid-before/
// invalid-hereafter, tagged-array encoded as [tag, ...fields], hashed
// as Blake2b-224 of 0x00 || cbor(script).
package nativescript

import (
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/cborx/schema"
	"github.com/go-cardano/cardanotx/crypto"
	"github.com/go-cardano/cardanotx/hash"
)

// Kind discriminates the native script variants (spec §3.5).
type Kind int

const (
	KindPubkey Kind = iota
	KindAll
	KindAny
	KindNofK
	KindInvalidBefore
	KindInvalidHereafter
)

// wire tags, the first array element on encode (spec §3.5).
const (
	tagPubkey           = 0
	tagAll              = 1
	tagAny              = 2
	tagNofK             = 3
	tagInvalidBefore    = 4
	tagInvalidHereafter = 5
)

// Script is a native script AST node. Exactly one of the payload
// fields is meaningful, selected by Kind — mirroring the tagged-union
// shape the CDDL itself uses.
type Script struct {
	Kind Kind

	KeyHash  hash.VerificationKeyHash // KindPubkey
	Scripts  []Script                 // KindAll, KindAny, KindNofK
	Required int                      // KindNofK
	Slot     uint64                   // KindInvalidBefore, KindInvalidHereafter
}

// Pubkey constructs a signature-required leaf.
func Pubkey(keyHash hash.VerificationKeyHash) Script {
	return Script{Kind: KindPubkey, KeyHash: keyHash}
}

// All requires every sub-script to be satisfied.
func All(scripts ...Script) Script {
	return Script{Kind: KindAll, Scripts: scripts}
}

// Any requires at least one sub-script to be satisfied.
func Any(scripts ...Script) Script {
	return Script{Kind: KindAny, Scripts: scripts}
}

// NofK requires at least `required` of the given sub-scripts.
func NofK(required int, scripts ...Script) Script {
	return Script{Kind: KindNofK, Required: required, Scripts: scripts}
}

// InvalidBefore is satisfied only once the transaction's validity
// interval starts at or after slot.
func InvalidBefore(slot uint64) Script {
	return Script{Kind: KindInvalidBefore, Slot: slot}
}

// InvalidHereafter is satisfied only while the transaction's validity
// interval ends before slot.
func InvalidHereafter(slot uint64) Script {
	return Script{Kind: KindInvalidHereafter, Slot: slot}
}

// Hash computes the script's policy/verification hash: Blake2b-224 of
// 0x00 || cbor(script) (spec §3.5).
func (s Script) Hash() (hash.ScriptHash, error) {
	body, err := s.MarshalCBOR()
	if err != nil {
		return hash.ScriptHash{}, err
	}
	payload := append([]byte{0x00}, body...)
	digest := crypto.Blake2b224(payload)
	h28, err := hash.NewHash28(digest[:])
	if err != nil {
		return hash.ScriptHash{}, err
	}
	return hash.ScriptHash(h28), nil
}

// MarshalCBOR encodes the script as [tag, ...fields] (spec §3.5).
func (s Script) MarshalCBOR() ([]byte, error) {
	switch s.Kind {
	case KindPubkey:
		return schema.EncodeTagged(tagPubkey, s.KeyHash)
	case KindAll:
		return schema.EncodeTagged(tagAll, s.Scripts)
	case KindAny:
		return schema.EncodeTagged(tagAny, s.Scripts)
	case KindNofK:
		return schema.EncodeTagged(tagNofK, s.Required, s.Scripts)
	case KindInvalidBefore:
		return schema.EncodeTagged(tagInvalidBefore, s.Slot)
	case KindInvalidHereafter:
		return schema.EncodeTagged(tagInvalidHereafter, s.Slot)
	default:
		return nil, apollerr.InvalidArgument("native script: unknown kind %d", s.Kind)
	}
}

// UnmarshalCBOR decodes a [tag, ...fields] native script.
func (s *Script) UnmarshalCBOR(data []byte) error {
	tag, err := schema.Discriminator(data)
	if err != nil {
		return apollerr.Decoding("native script: %v", err)
	}
	switch tag {
	case tagPubkey:
		var fields []cborx.RawMessage
		if err := schema.DecodeTaggedInto(data, tagPubkey, &fields); err != nil {
			return apollerr.Decoding("native script: %v", err)
		}
		if len(fields) != 1 {
			return apollerr.Decoding("native script: pubkey expects 1 field, got %d", len(fields))
		}
		var kh hash.VerificationKeyHash
		if err := cborx.Unmarshal(fields[0], &kh); err != nil {
			return apollerr.Decoding("native script: pubkey hash: %v", err)
		}
		*s = Script{Kind: KindPubkey, KeyHash: kh}
		return nil
	case tagAll, tagAny:
		var fields []cborx.RawMessage
		if err := schema.DecodeTaggedInto(data, tag, &fields); err != nil {
			return apollerr.Decoding("native script: %v", err)
		}
		if len(fields) != 1 {
			return apollerr.Decoding("native script: all/any expects 1 field, got %d", len(fields))
		}
		var subs []Script
		if err := cborx.Unmarshal(fields[0], &subs); err != nil {
			return apollerr.Decoding("native script: sub-scripts: %v", err)
		}
		kind := KindAll
		if tag == tagAny {
			kind = KindAny
		}
		*s = Script{Kind: kind, Scripts: subs}
		return nil
	case tagNofK:
		var fields []cborx.RawMessage
		if err := schema.DecodeTaggedInto(data, tagNofK, &fields); err != nil {
			return apollerr.Decoding("native script: %v", err)
		}
		if len(fields) != 2 {
			return apollerr.Decoding("native script: n-of-k expects 2 fields, got %d", len(fields))
		}
		var n int
		if err := cborx.Unmarshal(fields[0], &n); err != nil {
			return apollerr.Decoding("native script: n: %v", err)
		}
		var subs []Script
		if err := cborx.Unmarshal(fields[1], &subs); err != nil {
			return apollerr.Decoding("native script: sub-scripts: %v", err)
		}
		*s = Script{Kind: KindNofK, Required: n, Scripts: subs}
		return nil
	case tagInvalidBefore, tagInvalidHereafter:
		var fields []cborx.RawMessage
		if err := schema.DecodeTaggedInto(data, tag, &fields); err != nil {
			return apollerr.Decoding("native script: %v", err)
		}
		if len(fields) != 1 {
			return apollerr.Decoding("native script: slot bound expects 1 field, got %d", len(fields))
		}
		var slot uint64
		if err := cborx.Unmarshal(fields[0], &slot); err != nil {
			return apollerr.Decoding("native script: slot: %v", err)
		}
		kind := KindInvalidBefore
		if tag == tagInvalidHereafter {
			kind = KindInvalidHereafter
		}
		*s = Script{Kind: kind, Slot: slot}
		return nil
	default:
		return apollerr.Decoding("native script: unknown tag %d", tag)
	}
}

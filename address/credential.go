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

import "github.com/go-cardano/cardanotx/hash"

// CredentialKind distinguishes a key-hash credential from a
// script-hash credential.
type CredentialKind int

const (
	CredentialKey CredentialKind = iota
	CredentialScript
)

// Credential is a payment or staking credential: either a verification
// key hash or a script hash, both Hash28-shaped.
type Credential struct {
	Kind CredentialKind
	Hash hash.Hash28
}

// KeyCredential builds a key-hash credential.
func KeyCredential(h hash.Hash28) Credential {
	return Credential{Kind: CredentialKey, Hash: h}
}

// ScriptCredential builds a script-hash credential.
func ScriptCredential(h hash.Hash28) Credential {
	return Credential{Kind: CredentialScript, Hash: h}
}

func (c Credential) IsScript() bool { return c.Kind == CredentialScript }

// Pointer identifies a stake-pool delegation certificate location used
// by pointer-style staking parts: (slot, transaction index, certificate
// index), each a variable-length base-128 integer (spec §3.2).
type Pointer struct {
	Slot       uint64
	TxIndex    uint64
	CertIndex  uint64
}

// StakingKind distinguishes the four shapes a Shelley address's staking
// part can take.
type StakingKind int

const (
	StakingNone StakingKind = iota
	StakingKey
	StakingScript
	StakingPointer
)

// Staking is the staking part of a Shelley address.
type Staking struct {
	Kind    StakingKind
	Hash    hash.Hash28
	Pointer Pointer
}

func NoStaking() Staking { return Staking{Kind: StakingNone} }

func KeyStaking(h hash.Hash28) Staking {
	return Staking{Kind: StakingKey, Hash: h}
}

func ScriptStaking(h hash.Hash28) Staking {
	return Staking{Kind: StakingScript, Hash: h}
}

func PointerStaking(p Pointer) Staking {
	return Staking{Kind: StakingPointer, Pointer: p}
}

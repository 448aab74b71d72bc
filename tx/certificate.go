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

package tx

import (
	"math/big"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/cborx"
	"github.com/go-cardano/cardanotx/hash"
)

// CredentialKind discriminates a Credential's two wire shapes: a
// verification key hash or a script hash.
type CredentialKind uint8

const (
	CredentialKeyHash    CredentialKind = 0
	CredentialScriptHash CredentialKind = 1
)

// Credential is the `[0, addr_keyhash] / [1, script_hash]` shape used
// throughout certificates and governance (stake, committee, and DRep
// credentials all share it).
type Credential struct {
	Kind       CredentialKind
	KeyHash    hash.VerificationKeyHash
	ScriptHash hash.ScriptHash
}

// KeyCredential wraps a verification key hash credential.
func KeyCredential(h hash.VerificationKeyHash) Credential {
	return Credential{Kind: CredentialKeyHash, KeyHash: h}
}

// ScriptCredential wraps a script hash credential.
func ScriptCredential(h hash.ScriptHash) Credential {
	return Credential{Kind: CredentialScriptHash, ScriptHash: h}
}

type wireCredential struct {
	_    struct{} `cbor:",toarray"`
	Kind uint8
	Hash []byte
}

func (c Credential) MarshalCBOR() ([]byte, error) {
	switch c.Kind {
	case CredentialKeyHash:
		return cborMarshal(wireCredential{Kind: 0, Hash: c.KeyHash.Bytes()})
	case CredentialScriptHash:
		return cborMarshal(wireCredential{Kind: 1, Hash: c.ScriptHash.Bytes()})
	default:
		return nil, apollerr.InvalidArgument("tx: credential: unknown kind %d", c.Kind)
	}
}

func (c *Credential) UnmarshalCBOR(data []byte) error {
	var w wireCredential
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: credential: %v", err)
	}
	switch w.Kind {
	case 0:
		h, err := hash.NewHash28(w.Hash)
		if err != nil {
			return apollerr.Decoding("tx: credential key hash: %v", err)
		}
		*c = Credential{Kind: CredentialKeyHash, KeyHash: hash.VerificationKeyHash(h)}
	case 1:
		h, err := hash.NewHash28(w.Hash)
		if err != nil {
			return apollerr.Decoding("tx: credential script hash: %v", err)
		}
		*c = Credential{Kind: CredentialScriptHash, ScriptHash: hash.ScriptHash(h)}
	default:
		return apollerr.Decoding("tx: credential: unknown kind %d", w.Kind)
	}
	return nil
}

// DRepKind discriminates the four DRep wire shapes a vote delegation
// can target.
type DRepKind uint8

const (
	DRepKeyHash            DRepKind = 0
	DRepScriptHash         DRepKind = 1
	DRepAlwaysAbstain      DRepKind = 2
	DRepAlwaysNoConfidence DRepKind = 3
)

// DRep identifies a delegated representative target for a vote
// delegation certificate (spec §3.8).
type DRep struct {
	Kind       DRepKind
	KeyHash    hash.VerificationKeyHash
	ScriptHash hash.ScriptHash
}

func DRepFromKeyHash(h hash.VerificationKeyHash) DRep { return DRep{Kind: DRepKeyHash, KeyHash: h} }
func DRepFromScriptHash(h hash.ScriptHash) DRep       { return DRep{Kind: DRepScriptHash, ScriptHash: h} }
func DRepAbstain() DRep                               { return DRep{Kind: DRepAlwaysAbstain} }
func DRepNoConfidence() DRep                           { return DRep{Kind: DRepAlwaysNoConfidence} }

type wireDRep struct {
	_    struct{} `cbor:",toarray"`
	Kind uint8
	Hash []byte `cbor:",omitempty"`
}

func (d DRep) MarshalCBOR() ([]byte, error) {
	switch d.Kind {
	case DRepKeyHash:
		return cborMarshal(wireDRep{Kind: 0, Hash: d.KeyHash.Bytes()})
	case DRepScriptHash:
		return cborMarshal(wireDRep{Kind: 1, Hash: d.ScriptHash.Bytes()})
	case DRepAlwaysAbstain:
		return cborMarshal(wireDRep{Kind: 2})
	case DRepAlwaysNoConfidence:
		return cborMarshal(wireDRep{Kind: 3})
	default:
		return nil, apollerr.InvalidArgument("tx: drep: unknown kind %d", d.Kind)
	}
}

func (d *DRep) UnmarshalCBOR(data []byte) error {
	var w wireDRep
	if err := cborUnmarshal(data, &w); err != nil {
		return apollerr.Decoding("tx: drep: %v", err)
	}
	switch w.Kind {
	case 0:
		h, err := hash.NewHash28(w.Hash)
		if err != nil {
			return apollerr.Decoding("tx: drep key hash: %v", err)
		}
		*d = DRep{Kind: DRepKeyHash, KeyHash: hash.VerificationKeyHash(h)}
	case 1:
		h, err := hash.NewHash28(w.Hash)
		if err != nil {
			return apollerr.Decoding("tx: drep script hash: %v", err)
		}
		*d = DRep{Kind: DRepScriptHash, ScriptHash: hash.ScriptHash(h)}
	case 2:
		*d = DRep{Kind: DRepAlwaysAbstain}
	case 3:
		*d = DRep{Kind: DRepAlwaysNoConfidence}
	default:
		return apollerr.Decoding("tx: drep: unknown kind %d", w.Kind)
	}
	return nil
}

// CertKind enumerates every certificate variant the Conway-era ledger
// accepts (spec §3.7 EXPANDED), including two pre-Conway artifacts kept
// decode-only for round-trip completeness against historical chain
// data: GenesisKeyDelegation and MoveInstantaneousRewards.
type CertKind uint8

const (
	CertStakeRegistration CertKind = iota
	CertStakeDeregistration
	CertStakeDelegation
	CertPoolRegistration
	CertPoolRetirement
	CertGenesisKeyDelegation
	CertMoveInstantaneousRewards
	CertRegCert
	CertUnregCert
	CertVoteDelegCert
	CertStakeVoteDelegCert
	CertStakeRegDelegCert
	CertVoteRegDelegCert
	CertStakeVoteRegDelegCert
	CertAuthCommitteeHot
	CertResignCommitteeCold
	CertRegDrep
	CertUnregDrep
	CertUpdateDrep
)

// Certificate is a tagged union over every certificate variant. Only
// the fields relevant to Kind are populated; this mirrors the flat
// tagged-union shape already used for Script and Datum in this
// package rather than one bespoke Go type per certificate, since the
// wire discriminator is the same `[tag, ...]` array pattern throughout.
type Certificate struct {
	Kind CertKind

	StakeCredential Credential
	PoolKeyHash     hash.PoolKeyHash
	Epoch           uint64
	PoolParams      PoolParams
	Deposit         int64
	DRep            DRep
	ColdCredential  Credential
	HotCredential   Credential
	DRepCredential  Credential
	Anchor          *Anchor

	// Raw carries the undecoded tail for the two decode-only legacy
	// variants (GenesisKeyDelegation, MoveInstantaneousRewards) whose
	// internal shape this module has no write-side use for.
	Raw cborx.RawMessage
}

func NewStakeRegistration(cred Credential) Certificate {
	return Certificate{Kind: CertStakeRegistration, StakeCredential: cred}
}

func NewStakeDeregistration(cred Credential) Certificate {
	return Certificate{Kind: CertStakeDeregistration, StakeCredential: cred}
}

func NewStakeDelegation(cred Credential, pool hash.PoolKeyHash) Certificate {
	return Certificate{Kind: CertStakeDelegation, StakeCredential: cred, PoolKeyHash: pool}
}

func NewPoolRegistration(params PoolParams) Certificate {
	return Certificate{Kind: CertPoolRegistration, PoolParams: params}
}

func NewPoolRetirement(pool hash.PoolKeyHash, epoch uint64) Certificate {
	return Certificate{Kind: CertPoolRetirement, PoolKeyHash: pool, Epoch: epoch}
}

func NewRegCert(cred Credential, deposit int64) Certificate {
	return Certificate{Kind: CertRegCert, StakeCredential: cred, Deposit: deposit}
}

func NewUnregCert(cred Credential, deposit int64) Certificate {
	return Certificate{Kind: CertUnregCert, StakeCredential: cred, Deposit: deposit}
}

func NewVoteDelegCert(cred Credential, drep DRep) Certificate {
	return Certificate{Kind: CertVoteDelegCert, StakeCredential: cred, DRep: drep}
}

func NewStakeVoteDelegCert(cred Credential, pool hash.PoolKeyHash, drep DRep) Certificate {
	return Certificate{Kind: CertStakeVoteDelegCert, StakeCredential: cred, PoolKeyHash: pool, DRep: drep}
}

func NewStakeRegDelegCert(cred Credential, pool hash.PoolKeyHash, deposit int64) Certificate {
	return Certificate{Kind: CertStakeRegDelegCert, StakeCredential: cred, PoolKeyHash: pool, Deposit: deposit}
}

func NewVoteRegDelegCert(cred Credential, drep DRep, deposit int64) Certificate {
	return Certificate{Kind: CertVoteRegDelegCert, StakeCredential: cred, DRep: drep, Deposit: deposit}
}

func NewStakeVoteRegDelegCert(cred Credential, pool hash.PoolKeyHash, drep DRep, deposit int64) Certificate {
	return Certificate{
		Kind: CertStakeVoteRegDelegCert, StakeCredential: cred, PoolKeyHash: pool, DRep: drep, Deposit: deposit,
	}
}

func NewAuthCommitteeHotCert(cold, hot Credential) Certificate {
	return Certificate{Kind: CertAuthCommitteeHot, ColdCredential: cold, HotCredential: hot}
}

func NewResignCommitteeColdCert(cold Credential, anchor *Anchor) Certificate {
	return Certificate{Kind: CertResignCommitteeCold, ColdCredential: cold, Anchor: anchor}
}

func NewRegDrepCert(cred Credential, deposit int64, anchor *Anchor) Certificate {
	return Certificate{Kind: CertRegDrep, DRepCredential: cred, Deposit: deposit, Anchor: anchor}
}

func NewUnregDrepCert(cred Credential, deposit int64) Certificate {
	return Certificate{Kind: CertUnregDrep, DRepCredential: cred, Deposit: deposit}
}

func NewUpdateDrepCert(cred Credential, anchor *Anchor) Certificate {
	return Certificate{Kind: CertUpdateDrep, DRepCredential: cred, Anchor: anchor}
}

// MarshalCBOR encodes the certificate as `[tag, ...fields]`, flattening
// PoolParams' own fields inline for PoolRegistration per the ledger's
// CDDL (pool_params is a group, not a nested array).
func (c Certificate) MarshalCBOR() ([]byte, error) {
	enc := func(parts ...any) ([]byte, error) {
		all := append([]any{uint8(c.Kind)}, parts...)
		return marshalArray(all)
	}
	switch c.Kind {
	case CertStakeRegistration, CertStakeDeregistration:
		return enc(c.StakeCredential)
	case CertStakeDelegation:
		return enc(c.StakeCredential, c.PoolKeyHash)
	case CertPoolRegistration:
		numer, denom := marginParts(c.PoolParams)
		var metadata any
		if c.PoolParams.Metadata != nil {
			metadata = *c.PoolParams.Metadata
		}
		return enc(
			c.PoolParams.Operator, c.PoolParams.VrfKeyHash, c.PoolParams.Pledge, c.PoolParams.Cost,
			numer, denom,
			c.PoolParams.RewardAccount, c.PoolParams.Owners, c.PoolParams.Relays, metadata,
		)
	case CertPoolRetirement:
		return enc(c.PoolKeyHash, c.Epoch)
	case CertGenesisKeyDelegation, CertMoveInstantaneousRewards:
		if len(c.Raw) == 0 {
			return nil, apollerr.InvalidOperation("tx: certificate: kind %d is decode-only", c.Kind)
		}
		return c.Raw, nil
	case CertRegCert, CertUnregCert:
		return enc(c.StakeCredential, c.Deposit)
	case CertVoteDelegCert:
		return enc(c.StakeCredential, c.DRep)
	case CertStakeVoteDelegCert:
		return enc(c.StakeCredential, c.PoolKeyHash, c.DRep)
	case CertStakeRegDelegCert:
		return enc(c.StakeCredential, c.PoolKeyHash, c.Deposit)
	case CertVoteRegDelegCert:
		return enc(c.StakeCredential, c.DRep, c.Deposit)
	case CertStakeVoteRegDelegCert:
		return enc(c.StakeCredential, c.PoolKeyHash, c.DRep, c.Deposit)
	case CertAuthCommitteeHot:
		return enc(c.ColdCredential, c.HotCredential)
	case CertResignCommitteeCold:
		return enc(c.ColdCredential, anchorOrNil(c.Anchor))
	case CertRegDrep:
		return enc(c.DRepCredential, c.Deposit, anchorOrNil(c.Anchor))
	case CertUnregDrep:
		return enc(c.DRepCredential, c.Deposit)
	case CertUpdateDrep:
		return enc(c.DRepCredential, anchorOrNil(c.Anchor))
	default:
		return nil, apollerr.InvalidArgument("tx: certificate: unknown kind %d", c.Kind)
	}
}

func marginParts(p PoolParams) (numer, denom int64) {
	if p.Margin == nil {
		return 0, 1
	}
	return p.Margin.Num().Int64(), p.Margin.Denom().Int64()
}

func anchorOrNil(a *Anchor) any {
	if a == nil {
		return nil
	}
	return *a
}

// marshalArray encodes a heterogeneous part list as a definite-length
// CBOR array, delegating each element to its own Marshaler (or the
// codec's native Go-type encoding for plain values and nil).
func marshalArray(parts []any) ([]byte, error) {
	return cborMarshal(parts)
}

func (c *Certificate) UnmarshalCBOR(data []byte) error {
	var head []cborx.RawMessage
	if err := cborUnmarshal(data, &head); err != nil {
		return apollerr.Decoding("tx: certificate: %v", err)
	}
	if len(head) == 0 {
		return apollerr.Decoding("tx: certificate: empty array")
	}
	var kind uint8
	if err := cborUnmarshal(head[0], &kind); err != nil {
		return apollerr.Decoding("tx: certificate tag: %v", err)
	}
	rest := head[1:]
	switch CertKind(kind) {
	case CertStakeRegistration, CertStakeDeregistration:
		var cred Credential
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		*c = Certificate{Kind: CertKind(kind), StakeCredential: cred}
	case CertStakeDelegation:
		var cred Credential
		var pool hash.PoolKeyHash
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &pool); err != nil {
			return err
		}
		*c = Certificate{Kind: CertStakeDelegation, StakeCredential: cred, PoolKeyHash: pool}
	case CertPoolRegistration:
		if len(rest) < 9 {
			return apollerr.Decoding("tx: pool registration: expected 9 fields, got %d", len(rest))
		}
		var pp PoolParams
		var numer, denom int64
		if err := cborUnmarshal(rest[0], &pp.Operator); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &pp.VrfKeyHash); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[2], &pp.Pledge); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[3], &pp.Cost); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[4], &numer); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[5], &denom); err != nil {
			return err
		}
		pp.Margin = bigRat(numer, denom)
		if err := cborUnmarshal(rest[6], &pp.RewardAccount); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[7], &pp.Owners); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[8], &pp.Relays); err != nil {
			return err
		}
		if len(rest) > 9 {
			var meta PoolMetadata
			if err := cborUnmarshal(rest[9], &meta); err == nil {
				pp.Metadata = &meta
			}
		}
		*c = Certificate{Kind: CertPoolRegistration, PoolParams: pp}
	case CertPoolRetirement:
		var pool hash.PoolKeyHash
		var epoch uint64
		if err := cborUnmarshal(rest[0], &pool); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &epoch); err != nil {
			return err
		}
		*c = Certificate{Kind: CertPoolRetirement, PoolKeyHash: pool, Epoch: epoch}
	case CertGenesisKeyDelegation, CertMoveInstantaneousRewards:
		*c = Certificate{Kind: CertKind(kind), Raw: cborx.RawMessage(append([]byte(nil), data...))}
	case CertRegCert, CertUnregCert:
		var cred Credential
		var deposit int64
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &deposit); err != nil {
			return err
		}
		*c = Certificate{Kind: CertKind(kind), StakeCredential: cred, Deposit: deposit}
	case CertVoteDelegCert:
		var cred Credential
		var drep DRep
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &drep); err != nil {
			return err
		}
		*c = Certificate{Kind: CertVoteDelegCert, StakeCredential: cred, DRep: drep}
	case CertStakeVoteDelegCert:
		var cred Credential
		var pool hash.PoolKeyHash
		var drep DRep
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &pool); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[2], &drep); err != nil {
			return err
		}
		*c = Certificate{Kind: CertStakeVoteDelegCert, StakeCredential: cred, PoolKeyHash: pool, DRep: drep}
	case CertStakeRegDelegCert:
		var cred Credential
		var pool hash.PoolKeyHash
		var deposit int64
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &pool); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[2], &deposit); err != nil {
			return err
		}
		*c = Certificate{Kind: CertStakeRegDelegCert, StakeCredential: cred, PoolKeyHash: pool, Deposit: deposit}
	case CertVoteRegDelegCert:
		var cred Credential
		var drep DRep
		var deposit int64
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &drep); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[2], &deposit); err != nil {
			return err
		}
		*c = Certificate{Kind: CertVoteRegDelegCert, StakeCredential: cred, DRep: drep, Deposit: deposit}
	case CertStakeVoteRegDelegCert:
		var cred Credential
		var pool hash.PoolKeyHash
		var drep DRep
		var deposit int64
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &pool); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[2], &drep); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[3], &deposit); err != nil {
			return err
		}
		*c = Certificate{
			Kind: CertStakeVoteRegDelegCert, StakeCredential: cred, PoolKeyHash: pool, DRep: drep, Deposit: deposit,
		}
	case CertAuthCommitteeHot:
		var cold, hotCred Credential
		if err := cborUnmarshal(rest[0], &cold); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &hotCred); err != nil {
			return err
		}
		*c = Certificate{Kind: CertAuthCommitteeHot, ColdCredential: cold, HotCredential: hotCred}
	case CertResignCommitteeCold:
		var cold Credential
		if err := cborUnmarshal(rest[0], &cold); err != nil {
			return err
		}
		anchor, err := decodeOptionalAnchor(rest[1])
		if err != nil {
			return err
		}
		*c = Certificate{Kind: CertResignCommitteeCold, ColdCredential: cold, Anchor: anchor}
	case CertRegDrep:
		var cred Credential
		var deposit int64
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &deposit); err != nil {
			return err
		}
		anchor, err := decodeOptionalAnchor(rest[2])
		if err != nil {
			return err
		}
		*c = Certificate{Kind: CertRegDrep, DRepCredential: cred, Deposit: deposit, Anchor: anchor}
	case CertUnregDrep:
		var cred Credential
		var deposit int64
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		if err := cborUnmarshal(rest[1], &deposit); err != nil {
			return err
		}
		*c = Certificate{Kind: CertUnregDrep, DRepCredential: cred, Deposit: deposit}
	case CertUpdateDrep:
		var cred Credential
		if err := cborUnmarshal(rest[0], &cred); err != nil {
			return err
		}
		anchor, err := decodeOptionalAnchor(rest[1])
		if err != nil {
			return err
		}
		*c = Certificate{Kind: CertUpdateDrep, DRepCredential: cred, Anchor: anchor}
	default:
		return apollerr.Decoding("tx: certificate: unknown tag %d", kind)
	}
	return nil
}

func decodeOptionalAnchor(raw cborx.RawMessage) (*Anchor, error) {
	if len(raw) == 1 && raw[0] == 0xf6 {
		return nil, nil
	}
	var a Anchor
	if err := cborUnmarshal(raw, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func bigRat(numer, denom int64) *big.Rat {
	if denom == 0 {
		denom = 1
	}
	return big.NewRat(numer, denom)
}

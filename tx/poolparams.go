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

	"github.com/go-cardano/cardanotx/hash"
)

// RelayKind discriminates the three PoolRelay wire variants.
type RelayKind int

const (
	RelaySingleHostAddr RelayKind = iota
	RelaySingleHostName
	RelayMultiHostName
)

// PoolRelay is a stake pool's network relay (spec §3.10), one of three
// shapes: a direct address (optionally IPv4/IPv6), a DNS name resolved
// to a single A/AAAA record, or a DNS name resolved via SRV records.
type PoolRelay struct {
	Kind RelayKind
	Port *uint32
	IPv4 [4]byte
	HasV4 bool
	IPv6 [16]byte
	HasV6 bool
	DNSName string
}

type wireRelay struct {
	_       struct{} `cbor:",toarray"`
	Kind    uint8
	Port    *uint32
	IPv4    []byte
	IPv6    []byte
	DNSName *string
}

func (r PoolRelay) MarshalCBOR() ([]byte, error) {
	w := wireRelay{Kind: uint8(r.Kind), Port: r.Port}
	if r.HasV4 {
		w.IPv4 = r.IPv4[:]
	}
	if r.HasV6 {
		w.IPv6 = r.IPv6[:]
	}
	if r.Kind != RelaySingleHostAddr {
		name := r.DNSName
		w.DNSName = &name
	}
	return cborMarshal(w)
}

func (r *PoolRelay) UnmarshalCBOR(data []byte) error {
	var w wireRelay
	if err := cborUnmarshal(data, &w); err != nil {
		return err
	}
	out := PoolRelay{Kind: RelayKind(w.Kind), Port: w.Port}
	if len(w.IPv4) == 4 {
		copy(out.IPv4[:], w.IPv4)
		out.HasV4 = true
	}
	if len(w.IPv6) == 16 {
		copy(out.IPv6[:], w.IPv6)
		out.HasV6 = true
	}
	if w.DNSName != nil {
		out.DNSName = *w.DNSName
	}
	*r = out
	return nil
}

// PoolMetadata is the optional pool metadata anchor (spec §3.10):
// a URL and the Blake2b-256 hash of the JSON it points to.
type PoolMetadata struct {
	URL      string
	DataHash hash.AnchorDataHash
}

type wirePoolMetadata struct {
	_        struct{} `cbor:",toarray"`
	URL      string
	DataHash hash.AnchorDataHash
}

func (m PoolMetadata) MarshalCBOR() ([]byte, error) {
	return cborMarshal(wirePoolMetadata{URL: m.URL, DataHash: m.DataHash})
}

func (m *PoolMetadata) UnmarshalCBOR(data []byte) error {
	var w wirePoolMetadata
	if err := cborUnmarshal(data, &w); err != nil {
		return err
	}
	*m = PoolMetadata{URL: w.URL, DataHash: w.DataHash}
	return nil
}

// PoolParams is the body of a PoolRegistration certificate (spec
// §3.7, §3.10), grounded on the teacher's MockPool field set
// (operator, VRF key hash, pledge, cost, margin, reward account,
// owners, relays, metadata anchor).
type PoolParams struct {
	Operator      hash.PoolKeyHash
	VrfKeyHash    hash.VrfKeyHash
	Pledge        int64
	Cost          int64
	Margin        *big.Rat
	RewardAccount hash.RewardAccountHash
	Owners        []hash.VerificationKeyHash
	Relays        []PoolRelay
	Metadata      *PoolMetadata
}

// NewPoolParams constructs a PoolParams with no relays or metadata set.
func NewPoolParams(
	operator hash.PoolKeyHash,
	vrfKeyHash hash.VrfKeyHash,
	pledge, cost int64,
	margin *big.Rat,
	rewardAccount hash.RewardAccountHash,
	owners []hash.VerificationKeyHash,
) PoolParams {
	return PoolParams{
		Operator:      operator,
		VrfKeyHash:    vrfKeyHash,
		Pledge:        pledge,
		Cost:          cost,
		Margin:        margin,
		RewardAccount: rewardAccount,
		Owners:        owners,
	}
}

type wirePoolParams struct {
	_                struct{} `cbor:",toarray"`
	Operator         hash.PoolKeyHash
	VrfKeyHash       hash.VrfKeyHash
	Pledge           int64
	Cost             int64
	MarginNumerator  int64
	MarginDenominator int64
	RewardAccount    hash.RewardAccountHash
	Owners           []hash.VerificationKeyHash
	Relays           []PoolRelay
	Metadata         *PoolMetadata
}

func (p PoolParams) MarshalCBOR() ([]byte, error) {
	w := wirePoolParams{
		Operator:      p.Operator,
		VrfKeyHash:    p.VrfKeyHash,
		Pledge:        p.Pledge,
		Cost:          p.Cost,
		RewardAccount: p.RewardAccount,
		Owners:        p.Owners,
		Relays:        p.Relays,
		Metadata:      p.Metadata,
	}
	if p.Margin != nil {
		w.MarginNumerator = p.Margin.Num().Int64()
		w.MarginDenominator = p.Margin.Denom().Int64()
	} else {
		w.MarginDenominator = 1
	}
	return cborMarshal(w)
}

func (p *PoolParams) UnmarshalCBOR(data []byte) error {
	var w wirePoolParams
	if err := cborUnmarshal(data, &w); err != nil {
		return err
	}
	*p = PoolParams{
		Operator:      w.Operator,
		VrfKeyHash:    w.VrfKeyHash,
		Pledge:        w.Pledge,
		Cost:          w.Cost,
		Margin:        big.NewRat(w.MarginNumerator, maxInt64(w.MarginDenominator, 1)),
		RewardAccount: w.RewardAccount,
		Owners:        w.Owners,
		Relays:        w.Relays,
		Metadata:      w.Metadata,
	}
	return nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

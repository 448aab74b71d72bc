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

// Package protocol defines the protocol/genesis parameter shapes a
// ChainContext exposes (spec §6.1), the values the fee and builder
// packages consume to size and price transactions.
package protocol

import "math/big"

// Parameters is the flattened, era-agnostic protocol parameter set the
// fee calculator and transaction builder read from. A real
// ChainContext implementation maps whatever era-specific shape its
// backend returns (Shelley/Alonzo/Babbage/Conway protocol parameters,
// the way the teacher's pparams.go enumerates them per-era) onto this
// one.
type Parameters struct {
	MinFeeCoefficient uint64 // lovelace per byte (a in a*size+b)
	MinFeeConstant    uint64 // lovelace flat component (b)

	KeyDeposit  uint64
	PoolDeposit uint64

	MaxTxSize          uint64
	MaxValueSize       uint64
	MaxBlockBodySize   uint64
	MaxBlockHeaderSize uint64

	CoinsPerUTxOByte uint64 // post-Alonzo min-UTxO pricing
	CoinsPerUTxOWord uint64 // pre-Alonzo min-UTxO pricing (deprecated but kept for legacy outputs)

	PriceMemory *big.Rat // lovelace per execution-memory unit
	PriceSteps  *big.Rat // lovelace per execution-step unit

	MaxTxExecutionMemory    uint64
	MaxTxExecutionSteps     uint64
	MaxBlockExecutionMemory uint64
	MaxBlockExecutionSteps  uint64

	CollateralPercent   uint64
	MaxCollateralInputs uint64

	// CostModels maps a Plutus language tag (0=V1, 1=V2, 2=V3) to its
	// flat parameter list, the shape script_data_hash needs (spec §4.3,
	// §6.2's PlutusV1 double-encoding quirk).
	CostModels map[uint8][]int64

	MaxReferenceScriptsSize   uint64
	MinFeeReferenceScripts    *big.Rat // lovelace per reference-script byte
	ReferenceScriptsSizeTiers []uint64 // cumulative byte thresholds for tiered pricing

	ProtocolMajor uint
	ProtocolMinor uint
}

// GenesisParameters carries the small slice of genesis-level
// parameters builders and fee calculators occasionally need (slot
// timing for TTL math, active-slot coefficient for confirmation-depth
// estimates) — spec §6.1.
type GenesisParameters struct {
	SlotLength             uint64 // seconds per slot
	ActiveSlotsCoefficient *big.Rat
	EpochLength            uint64 // slots per epoch
	SystemStartPOSIX       int64  // seconds since Unix epoch
	NetworkMagic           uint32
}

// Mainnet returns a representative mainnet-shaped Conway-era parameter
// set, grounded on the teacher's NewMockConwayProtocolParams constants
// (ledger/pparams.go): useful as a builder-test fixture and a sane
// default for callers wiring up their own ChainContext.
func Mainnet() Parameters {
	return Parameters{
		MinFeeCoefficient:       44,
		MinFeeConstant:          155381,
		KeyDeposit:              2000000,
		PoolDeposit:             500000000,
		MaxTxSize:               16384,
		MaxValueSize:            5000,
		MaxBlockBodySize:        90112,
		MaxBlockHeaderSize:      1100,
		CoinsPerUTxOByte:        4310,
		CoinsPerUTxOWord:        34482,
		PriceMemory:             big.NewRat(577, 10000),
		PriceSteps:              big.NewRat(721, 10000000),
		MaxTxExecutionMemory:    14000000,
		MaxTxExecutionSteps:     10000000000,
		MaxBlockExecutionMemory: 62000000,
		MaxBlockExecutionSteps:  40000000000,
		CollateralPercent:       150,
		MaxCollateralInputs:     3,
		CostModels: map[uint8][]int64{
			0: plutusV1CostModel(),
			1: plutusV2CostModel(),
			2: plutusV3CostModel(),
		},
		MaxReferenceScriptsSize:   204800,
		MinFeeReferenceScripts:    big.NewRat(15, 1),
		ReferenceScriptsSizeTiers: []uint64{25600, 51200, 76800, 102400, 204800},
		ProtocolMajor:             9,
		ProtocolMinor:             0,
	}
}

// plutusV1CostModel returns a representative 166-parameter PlutusV1
// cost model, grounded on the teacher's mockPlutusV1CostModel
// (ledger/pparams.go).
func plutusV1CostModel() []int64 {
	m := make([]int64, 166)
	m[0], m[1], m[2], m[3] = 205665, 812, 1, 1
	for i := 4; i < len(m); i++ {
		m[i] = 1000 + int64(i*100)
	}
	return m
}

func plutusV2CostModel() []int64 {
	v1 := plutusV1CostModel()
	m := make([]int64, 175)
	copy(m, v1)
	for i := len(v1); i < len(m); i++ {
		m[i] = 2000 + int64(i*50)
	}
	return m
}

func plutusV3CostModel() []int64 {
	v2 := plutusV2CostModel()
	m := make([]int64, 223)
	copy(m, v2)
	for i := len(v2); i < len(m); i++ {
		m[i] = 3000 + int64(i*50)
	}
	return m
}

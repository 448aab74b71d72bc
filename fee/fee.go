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

// Package fee implements fee and min-UTxO arithmetic (component I,
// spec §4.3): the linear size fee, Plutus script execution fee, the
// tiered reference-script fee, and both eras of the min-lovelace
// formula, all driven off protocol.Parameters rather than any
// hardcoded constant (REDESIGN FLAGS: explicit protocol-param
// passing, no global registry).
package fee

import (
	"math"
	"math/big"

	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/protocol"
)

// LinearFee computes `a*size + b`, the base transaction fee before any
// script execution or reference-script surcharge.
func LinearFee(txSize int, params protocol.Parameters) int64 {
	return int64(params.MinFeeCoefficient)*int64(txSize) + int64(params.MinFeeConstant)
}

// ScriptExecutionFee sums `ceil(mem*price_mem) + ceil(steps*price_step)`
// over every redeemer's execution units.
func ScriptExecutionFee(redeemers []plutus.ExecutionUnits, params protocol.Parameters) (int64, error) {
	if params.PriceMemory == nil || params.PriceSteps == nil {
		return 0, apollerr.InvalidArgument("fee: protocol parameters missing execution-unit prices")
	}
	var total int64
	for _, eu := range redeemers {
		if eu.Memory < 0 || eu.Steps < 0 {
			return 0, apollerr.InvalidArgument("fee: negative execution units")
		}
		memCost := ceilRat(new(big.Rat).Mul(big.NewRat(eu.Memory, 1), params.PriceMemory))
		stepCost := ceilRat(new(big.Rat).Mul(big.NewRat(eu.Steps, 1), params.PriceSteps))
		total += memCost + stepCost
	}
	return total, nil
}

func ceilRat(r *big.Rat) int64 {
	num := r.Num()
	den := r.Denom()
	q := new(big.Int).Div(num, den)
	if new(big.Int).Mul(q, den).Cmp(num) != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Int64()
}

// ReferenceScriptFee computes the tiered per-byte reference-script
// surcharge (spec §4.3): starting at `base` per byte, the per-byte cost
// multiplies by `m` every `R` bytes. Fails if scriptsSize exceeds the
// protocol's maximum.
func ReferenceScriptFee(scriptsSize uint64, params protocol.Parameters) (int64, error) {
	if params.MaxReferenceScriptsSize > 0 && scriptsSize > params.MaxReferenceScriptsSize {
		return 0, apollerr.InvalidTransaction(
			"fee: reference scripts size %d exceeds maximum %d", scriptsSize, params.MaxReferenceScriptsSize,
		)
	}
	if scriptsSize == 0 || params.MinFeeReferenceScripts == nil || len(params.ReferenceScriptsSizeTiers) == 0 {
		return 0, nil
	}
	base := params.MinFeeReferenceScripts
	total := new(big.Rat)
	remaining := scriptsSize
	tierStart := uint64(0)
	multiplier := big.NewRat(1, 1)
	for _, tierSize := range params.ReferenceScriptsSizeTiers {
		if remaining == 0 {
			break
		}
		tierWidth := tierSize - tierStart
		inTier := tierWidth
		if remaining < inTier {
			inTier = remaining
		}
		tierCost := new(big.Rat).Mul(base, multiplier)
		tierCost.Mul(tierCost, big.NewRat(int64(inTier), 1))
		total.Add(total, tierCost)
		remaining -= inTier
		tierStart = tierSize
		multiplier.Mul(multiplier, big.NewRat(12, 10))
	}
	if remaining > 0 {
		tierCost := new(big.Rat).Mul(base, multiplier)
		tierCost.Mul(tierCost, big.NewRat(int64(remaining), 1))
		total.Add(total, tierCost)
	}
	return ceilRat(total), nil
}

// TotalFee combines the linear size fee, script execution fee, and
// reference-script surcharge into the transaction's total fee.
func TotalFee(
	txSize int,
	redeemers []plutus.ExecutionUnits,
	referenceScriptsSize uint64,
	params protocol.Parameters,
) (int64, error) {
	scriptFee, err := ScriptExecutionFee(redeemers, params)
	if err != nil {
		return 0, err
	}
	refFee, err := ReferenceScriptFee(referenceScriptsSize, params)
	if err != nil {
		return 0, err
	}
	linear := LinearFee(txSize, params)
	total := linear + scriptFee + refFee
	if total < 0 || total > math.MaxInt64-1 {
		return 0, apollerr.InvalidOperation("fee: total fee overflow")
	}
	return total, nil
}

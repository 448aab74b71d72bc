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

package fee_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/fee"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/protocol"
)

func TestLinearFee(t *testing.T) {
	params := protocol.Mainnet()
	got := fee.LinearFee(300, params)
	require.Equal(t, int64(44)*300+155381, got)
}

func TestScriptExecutionFee(t *testing.T) {
	params := protocol.Mainnet()
	redeemers := []plutus.ExecutionUnits{
		{Memory: 1_000_000, Steps: 500_000_000},
	}
	got, err := fee.ScriptExecutionFee(redeemers, params)
	require.NoError(t, err)
	require.Greater(t, got, int64(0))
}

func TestScriptExecutionFeeRejectsNegativeUnits(t *testing.T) {
	params := protocol.Mainnet()
	_, err := fee.ScriptExecutionFee([]plutus.ExecutionUnits{{Memory: -1, Steps: 0}}, params)
	require.Error(t, err)
}

func TestReferenceScriptFeeZeroWhenEmpty(t *testing.T) {
	params := protocol.Mainnet()
	got, err := fee.ReferenceScriptFee(0, params)
	require.NoError(t, err)
	require.Equal(t, int64(0), got)
}

func TestReferenceScriptFeeRejectsOversize(t *testing.T) {
	params := protocol.Mainnet()
	_, err := fee.ReferenceScriptFee(params.MaxReferenceScriptsSize+1, params)
	require.Error(t, err)
}

func TestReferenceScriptFeeTieredPricingIncreasesPerByte(t *testing.T) {
	params := protocol.Mainnet()
	small, err := fee.ReferenceScriptFee(1000, params)
	require.NoError(t, err)
	// Crossing into the second pricing tier should cost more than twice
	// as much per byte as staying within the first, since the per-byte
	// multiplier steps up 1.2x per tier.
	large, err := fee.ReferenceScriptFee(params.ReferenceScriptsSizeTiers[0]+1000, params)
	require.NoError(t, err)
	require.Greater(t, large, small)
}

func TestTotalFeeCombinesComponents(t *testing.T) {
	params := protocol.Mainnet()
	total, err := fee.TotalFee(300, nil, 0, params)
	require.NoError(t, err)
	require.Equal(t, fee.LinearFee(300, params), total)
}

func TestScriptExecutionFeeMissingPrices(t *testing.T) {
	params := protocol.Mainnet()
	params.PriceMemory = nil
	_, err := fee.ScriptExecutionFee([]plutus.ExecutionUnits{{Memory: 1, Steps: 1}}, params)
	require.Error(t, err)
}

func TestReferenceScriptFeeMonotonic(t *testing.T) {
	params := protocol.Mainnet()
	params.MinFeeReferenceScripts = big.NewRat(15, 1)
	params.ReferenceScriptsSizeTiers = []uint64{100, 200}
	a, err := fee.ReferenceScriptFee(50, params)
	require.NoError(t, err)
	b, err := fee.ReferenceScriptFee(150, params)
	require.NoError(t, err)
	require.Greater(t, b, a)
}

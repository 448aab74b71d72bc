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

package plutus_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/plutus"
)

func TestToPlutigoConstr(t *testing.T) {
	d := plutus.NewConstr(0,
		plutus.NewByteString([]byte{0x01}),
		plutus.NewInteger(big.NewInt(7)),
	)
	pd, err := d.ToPlutigo()
	require.NoError(t, err)
	require.NotNil(t, pd)
}

func TestToPlutigoMapUnsupported(t *testing.T) {
	d := plutus.NewMap(plutus.Pair{Key: plutus.NewInteger(big.NewInt(1)), Value: plutus.NewInteger(big.NewInt(2))})
	_, err := d.ToPlutigo()
	require.Error(t, err)
}

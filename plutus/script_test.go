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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/plutus"
)

func TestScriptHashDiffersByVersion(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	v1, err := plutus.NewScript(plutus.V1, raw).Hash()
	require.NoError(t, err)
	v2, err := plutus.NewScript(plutus.V2, raw).Hash()
	require.NoError(t, err)
	require.NotEqual(t, v1, v2)
}

func TestScriptCBORRoundTrip(t *testing.T) {
	s := plutus.NewScript(plutus.V2, []byte{0x01, 0x02, 0x03})
	b, err := s.MarshalCBOR()
	require.NoError(t, err)

	var out plutus.Script
	require.NoError(t, out.UnmarshalCBOR(b))
	require.Equal(t, s.Bytes, out.Bytes)
}

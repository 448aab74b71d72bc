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

package key_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cardano/cardanotx/key"
)

func TestSaveLoadSigningKeyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payment.skey")

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	sk, err := key.NewSigningKey(seed)
	require.NoError(t, err)

	require.NoError(t, key.SaveSigningKey(path, key.TypePaymentSigningKey, "payment key", sk))

	loaded, err := key.LoadSigningKey(path, key.TypePaymentSigningKey)
	require.NoError(t, err)
	require.Equal(t, sk.Bytes, loaded.Bytes)
}

func TestSaveSigningKeyRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payment.skey")
	require.NoError(t, os.WriteFile(path, []byte("not empty"), 0o600))

	sk, err := key.NewSigningKey(make([]byte, 32))
	require.NoError(t, err)

	err = key.SaveSigningKey(path, key.TypePaymentSigningKey, "payment key", sk)
	require.Error(t, err)
}

func TestSaveSigningKeyAllowsEmptyExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payment.skey")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	sk, err := key.NewSigningKey(make([]byte, 32))
	require.NoError(t, err)
	require.NoError(t, key.SaveSigningKey(path, key.TypePaymentSigningKey, "payment key", sk))
}

func TestLoadSigningKeyRejectsWrongType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stake.skey")

	sk, err := key.NewSigningKey(make([]byte, 32))
	require.NoError(t, err)
	require.NoError(t, key.SaveSigningKey(path, key.TypeStakeSigningKey, "stake key", sk))

	_, err = key.LoadSigningKey(path, key.TypePaymentSigningKey)
	require.Error(t, err)
}

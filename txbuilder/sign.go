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

package txbuilder

import (
	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/key"
	"github.com/go-cardano/cardanotx/tx"
)

// BuildAndSign builds the transaction and attaches a VKeyWitness for
// every signing key, signing the transaction id's raw bytes (spec
// §3.4: the id is the hash the ledger's Ed25519 witnesses cover, not
// the body bytes themselves).
func (b *Builder) BuildAndSign(
	changeAddress address.Address,
	mergeChange bool,
	collateralChangeAddress *address.Address,
	signingKeys []key.SigningKey,
) (tx.Transaction, error) {
	t, err := b.Build(changeAddress, mergeChange, collateralChangeAddress)
	if err != nil {
		return tx.Transaction{}, err
	}

	txID, err := t.ID()
	if err != nil {
		return tx.Transaction{}, err
	}

	for _, sk := range signingKeys {
		sig, err := sk.Sign(txID.Bytes())
		if err != nil {
			return tx.Transaction{}, err
		}
		vk, err := sk.VerificationKey()
		if err != nil {
			return tx.Transaction{}, err
		}
		t.WitnessSet.VKeyWitnesses = append(t.WitnessSet.VKeyWitnesses, tx.VKeyWitness{
			VKey:      vk,
			Signature: sig,
		})
	}
	return t, nil
}

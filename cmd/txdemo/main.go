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

// Command txdemo wires a Builder against an in-memory chain context
// and reproduces scenario S1 from spec.md §8.3: a single sender
// address funding a single payment output, with the builder picking
// the input, computing the fee, and returning the change.
package main

import (
	"encoding/hex"
	"os"

	"go.uber.org/zap"

	"github.com/go-cardano/cardanotx/address"
	"github.com/go-cardano/cardanotx/chaincontext"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/internal/config"
	"github.com/go-cardano/cardanotx/internal/obslog"
	"github.com/go-cardano/cardanotx/key"
	"github.com/go-cardano/cardanotx/protocol"
	"github.com/go-cardano/cardanotx/tx"
	"github.com/go-cardano/cardanotx/txbuilder"
	"github.com/go-cardano/cardanotx/value"
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		panic(err)
	}
	obslog.Configure(cfg.Logging.Level)
	log := obslog.GetLogger()

	if err := run(log); err != nil {
		log.Error("txdemo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	seed := make([]byte, 32)
	seed[0] = 0x01
	sk, err := key.NewSigningKey(seed)
	if err != nil {
		return err
	}
	vk, err := sk.VerificationKey()
	if err != nil {
		return err
	}
	pkh, err := vk.Hash()
	if err != nil {
		return err
	}

	payment := address.KeyCredential(hash.Hash28(pkh))
	sender, err := address.NewShelleyAddress(address.Mainnet, &payment, address.NoStaking())
	if err != nil {
		return err
	}
	senderAddr := address.FromShelley(sender)

	var txIDBytes [32]byte
	txIDBytes[0] = 0x31
	txID := hash.TransactionId(txIDBytes)

	utxo := tx.NewUTxO(
		tx.NewInput(txID, 0),
		tx.NewOutput(senderAddr, value.NewSimpleValue(5_000_000)),
	)

	chainCtx := chaincontext.NewStatic(protocol.Mainnet(), protocol.GenesisParameters{}, address.Mainnet)
	chainCtx.AddUTxO(senderAddr, utxo)

	builder, err := txbuilder.New(chainCtx)
	if err != nil {
		return err
	}
	builder.AddInputAddress(senderAddr)
	if err := builder.AddOutput(tx.NewOutput(senderAddr, value.NewSimpleValue(500_000))); err != nil {
		return err
	}

	signed, err := builder.BuildAndSign(senderAddr, true, nil, []key.SigningKey{sk})
	if err != nil {
		return err
	}

	raw, err := signed.MarshalCBOR()
	if err != nil {
		return err
	}

	submittedID, err := chainCtx.SubmitTx(raw)
	if err != nil {
		return err
	}

	log.Info("built and submitted transaction",
		zap.String("tx_id", submittedID.String()),
		zap.Int64("fee", signed.Body.Fee),
		zap.Int("outputs", len(signed.Body.Outputs)),
		zap.String("cbor", hex.EncodeToString(raw)),
	)
	return nil
}

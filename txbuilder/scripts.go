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
	"github.com/go-cardano/cardanotx/apollerr"
	"github.com/go-cardano/cardanotx/hash"
	"github.com/go-cardano/cardanotx/plutus"
	"github.com/go-cardano/cardanotx/tx"
)

// redeemerExUnitsMode tracks whether this build is pinning explicit
// execution units or deferring to evaluate_tx; the two cannot mix
// (spec §4.4's add_script_input contract).
type redeemerExUnitsMode int

const (
	exUnitsModeUnset redeemerExUnitsMode = iota
	exUnitsModePinned
	exUnitsModeZero
)

func (b *Builder) noteExUnitsMode(eu plutus.ExecutionUnits) error {
	mode := exUnitsModeZero
	if !eu.IsZero() {
		mode = exUnitsModePinned
	}
	if b.exUnitsMode == exUnitsModeUnset {
		b.exUnitsMode = mode
		return nil
	}
	if b.exUnitsMode != mode {
		return apollerr.InvalidArgument(
			"txbuilder: redeemer execution-unit modes conflict: some pinned, some zero/to-be-estimated",
		)
	}
	return nil
}

// AddScriptInput registers utxo as spent under a Plutus script (spec
// §4.4). script may be nil if utxo's own output carries an inline
// reference script matching its payment credential; datum may be nil
// if utxo's output already carries an inline datum.
func (b *Builder) AddScriptInput(utxo tx.UTxO, script *tx.Script, datum *plutus.Data, redeemer plutus.Redeemer) error {
	shelley, ok := utxo.Output.Address.Shelley()
	if !ok || shelley.Payment == nil || !shelley.Payment.IsScript() {
		return apollerr.InvalidArgument("txbuilder: add_script_input: utxo is not a script-locked output")
	}
	src, err := b.resolveScriptSource(utxo, script, shelley.Payment.Hash)
	if err != nil {
		return err
	}
	if datum != nil && utxo.Output.Datum.Kind == tx.DatumInline {
		return apollerr.InvalidArgument("txbuilder: add_script_input: datum is both inline and explicit")
	}
	redeemer.Tag = plutus.RedeemerSpend
	if err := b.noteExUnitsMode(redeemer.ExUnits); err != nil {
		return err
	}
	b.inputs = append(b.inputs, utxo)
	b.inputScripts[utxo.Input] = scriptWitness{source: src, datum: datum, redeemer: redeemer}
	return nil
}

// resolveScriptSource locates the script backing a scripted spend: the
// caller-supplied bytes if given (validated against expectedHash), or
// the UTxO's own inline reference script. Scanning reference inputs or
// input-address UTxOs for a matching inline script is left to the
// caller (pass script explicitly) — this builder only auto-resolves
// from the UTxO being spent itself.
func (b *Builder) resolveScriptSource(utxo tx.UTxO, script *tx.Script, expectedHash hash.Hash28) (scriptSource, error) {
	if script != nil {
		h, err := script.Hash()
		if err != nil {
			return scriptSource{}, err
		}
		if hash.Hash28(h) != expectedHash {
			return scriptSource{}, apollerr.InvalidArgument("txbuilder: script hash does not match spending credential")
		}
		return scriptSource{script: script}, nil
	}
	if utxo.Output.ScriptRef != nil {
		h, err := utxo.Output.ScriptRef.Hash()
		if err == nil && hash.Hash28(h) == expectedHash {
			in := utxo.Input
			return scriptSource{script: utxo.Output.ScriptRef, refIn: &in}, nil
		}
	}
	return scriptSource{}, apollerr.InvalidArgument("txbuilder: no script found for spending credential %x", expectedHash.Bytes())
}

// AddMintingScript registers a script authorizing a mint/burn. redeemer
// must have RedeemerTag Mint or the zero tag (coerced to Mint).
func (b *Builder) AddMintingScript(script tx.Script, redeemer plutus.Redeemer) error {
	policy, err := script.Hash()
	if err != nil {
		return err
	}
	if redeemer.Tag != plutus.RedeemerMint && redeemer.Tag != 0 {
		return apollerr.InvalidArgument("txbuilder: add_minting_script: redeemer tag must be Mint")
	}
	redeemer.Tag = plutus.RedeemerMint
	if err := b.noteExUnitsMode(redeemer.ExUnits); err != nil {
		return err
	}
	b.mintScripts[policy] = scriptWitness{source: scriptSource{script: &script}, redeemer: redeemer}
	return nil
}

// AddCertificateScript registers the script authorizing certIndex's
// stake credential action. redeemer's tag is coerced to Cert.
func (b *Builder) AddCertificateScript(certIndex int, script tx.Script, redeemer plutus.Redeemer) error {
	if certIndex < 0 || certIndex >= len(b.certificates) {
		return apollerr.InvalidArgument("txbuilder: add_certificate_script: index %d out of range", certIndex)
	}
	redeemer.Tag = plutus.RedeemerCert
	if err := b.noteExUnitsMode(redeemer.ExUnits); err != nil {
		return err
	}
	b.certScripts[certIndex] = scriptWitness{source: scriptSource{script: &script}, redeemer: redeemer}
	return nil
}

// AddWithdrawalScript registers the script authorizing a withdrawal
// from account. redeemer's tag is coerced to Reward.
func (b *Builder) AddWithdrawalScript(account hash.RewardAccountHash, amount int64, script tx.Script, redeemer plutus.Redeemer) error {
	redeemer.Tag = plutus.RedeemerReward
	if err := b.noteExUnitsMode(redeemer.ExUnits); err != nil {
		return err
	}
	b.withdrawals[account] = amount
	b.withdrawalScripts[account] = scriptWitness{source: scriptSource{script: &script}, redeemer: redeemer}
	return nil
}

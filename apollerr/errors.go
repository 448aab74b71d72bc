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

// Package apollerr defines the error taxonomy shared across the module,
// per the error handling design: callers match kinds with errors.Is,
// and every wrapping constructor carries a human-readable diagnostic.
package apollerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap one of these with fmt.Errorf("...: %w", ...) so
// callers can errors.Is against the kind without caring about the message.
var (
	ErrDecoding             = errors.New("decoding error")
	ErrInvalidKeyType       = errors.New("invalid key type")
	ErrInvalidAddressInput  = errors.New("invalid address input")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrInvalidTransaction   = errors.New("invalid transaction")
	ErrTransactionBuilder   = errors.New("transaction builder error")
	ErrTransactionFailed    = errors.New("transaction failed")
	ErrUTxOSelection        = errors.New("utxo selection error")
	ErrInsufficientUTxO     = fmt.Errorf("%w: insufficient utxo balance", ErrUTxOSelection)
	ErrMaxInputCountReached = fmt.Errorf("%w: max input count exceeded", ErrUTxOSelection)
	ErrInputUTxODepleted    = fmt.Errorf("%w: input utxo depleted", ErrUTxOSelection)
)

// Decoding wraps a CBOR/address/key decode failure.
func Decoding(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecoding, fmt.Sprintf(format, args...))
}

// InvalidKeyType wraps a key-file type mismatch.
func InvalidKeyType(got, want string) error {
	return fmt.Errorf("%w: expected %q, got %q", ErrInvalidKeyType, want, got)
}

// InvalidAddressInput wraps a malformed address (bad checksum, both parts
// None, wrong CBOR tag, etc.).
func InvalidAddressInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAddressInput, fmt.Sprintf(format, args...))
}

// InvalidArgument wraps a synchronous builder misuse (wrong redeemer tag,
// script/hash mismatch, conflicting ex-unit modes, duplicate datum).
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// InvalidOperation wraps an arithmetic violation (e.g. Value subtraction
// producing a negative component).
func InvalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}

// InvalidTransaction wraps a finalized body that violates a hard ledger
// bound (oversize, bad script-data hash, etc.).
func InvalidTransaction(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransaction, fmt.Sprintf(format, args...))
}

// TransactionBuilder wraps generic builder misuse not covered by a more
// specific kind.
func TransactionBuilder(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTransactionBuilder, fmt.Sprintf(format, args...))
}

// TransactionFailed wraps a chain-context submission rejection, keeping
// the backend's message.
func TransactionFailed(backendMessage string) error {
	return fmt.Errorf("%w: %s", ErrTransactionFailed, backendMessage)
}

// InsufficientUTxOBalance wraps a selector failure with the amount that
// could not be covered.
func InsufficientUTxOBalance(diagnostic string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientUTxO, diagnostic)
}

// MaxInputCountExceeded wraps a selector failure caused by exceeding the
// configured input cap.
func MaxInputCountExceeded(selected, max int) error {
	return fmt.Errorf("%w: selected %d inputs, max is %d", ErrMaxInputCountReached, selected, max)
}

// InputUTxODepleted wraps a selector running out of candidates mid-phase.
func InputUTxODepleted(diagnostic string) error {
	return fmt.Errorf("%w: %s", ErrInputUTxODepleted, diagnostic)
}

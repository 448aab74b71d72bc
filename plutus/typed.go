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

package plutus

import (
	"fmt"
	"hash/fnv"
	"math/big"
	"reflect"

	"github.com/go-cardano/cardanotx/apollerr"
)

// ConstrIDer lets a Go type opt out of automatic constructor-id
// derivation by naming its own on-chain id, the way pycardano's
// PlutusData subclasses assign an explicit CONSTR_ID class attribute
// instead of relying on the deterministic default.
type ConstrIDer interface {
	ConstrID() uint64
}

// DeriveConstrID computes the deterministic constructor id spec §9's
// redesign notes call for: FNV-1a over the type's fully-qualified Go
// path (PkgPath()+Name()). This gives every exported struct type that
// doesn't implement ConstrIDer a stable, collision-resistant tag
// without the author hand-assigning one, mirroring how pycardano's
// PlutusData.CONSTR_ID default derives an id from the class's identity
// when the subclass doesn't set CONSTR_ID itself.
func DeriveConstrID(t reflect.Type) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.PkgPath() + "." + t.Name()))
	return h.Sum64() & 0xffffffff
}

// ToData converts a Go struct into a Constr-kind Data whose tag is
// either v's own ConstrID() (if it implements ConstrIDer) or derived
// via DeriveConstrID, and whose fields are v's exported struct fields
// in declaration order. Supported field types: *big.Int, the signed
// and unsigned integer kinds, []byte, string (encoded as a byte
// string), Data itself, slices of any supported type (encoded as a
// Plutus list), and nested structs (encoded as a nested Constr via a
// recursive ToData call).
func ToData(v any) (Data, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Data{}, apollerr.InvalidArgument("plutus: ToData: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Data{}, apollerr.InvalidArgument("plutus: ToData: %s is not a struct", rv.Kind())
	}

	tag := constrTagFor(v, rv.Type())
	fields := make([]Data, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		sf := rv.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		fd, err := toDataValue(rv.Field(i))
		if err != nil {
			return Data{}, fmt.Errorf("plutus: ToData: field %s: %w", sf.Name, err)
		}
		fields = append(fields, fd)
	}
	return NewConstr(tag, fields...), nil
}

func constrTagFor(v any, t reflect.Type) uint64 {
	if c, ok := v.(ConstrIDer); ok {
		return c.ConstrID()
	}
	return DeriveConstrID(t)
}

func toDataValue(fv reflect.Value) (Data, error) {
	if fv.Type() == reflect.TypeOf(Data{}) {
		return fv.Interface().(Data), nil
	}
	if fv.Type() == reflect.TypeOf((*big.Int)(nil)) {
		bi, _ := fv.Interface().(*big.Int)
		if bi == nil {
			return Data{}, apollerr.InvalidArgument("plutus: ToData: nil *big.Int field")
		}
		return NewInteger(bi), nil
	}
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return Data{}, apollerr.InvalidArgument("plutus: ToData: nil pointer field")
		}
		return toDataValue(fv.Elem())
	case reflect.Struct:
		return ToData(fv.Interface())
	case reflect.String:
		return NewByteString([]byte(fv.String())), nil
	case reflect.Slice, reflect.Array:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			return NewByteString(fv.Bytes()), nil
		}
		items := make([]Data, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			d, err := toDataValue(fv.Index(i))
			if err != nil {
				return Data{}, err
			}
			items[i] = d
		}
		return NewList(items...), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInteger(big.NewInt(fv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewInteger(new(big.Int).SetUint64(fv.Uint())), nil
	default:
		return Data{}, apollerr.InvalidArgument("plutus: ToData: unsupported field kind %s", fv.Kind())
	}
}

// FromData populates the struct v points to from d, the reverse of
// ToData. If v implements ConstrIDer, d.ConstrTag must match
// v.ConstrID(); otherwise any tag is accepted, since a derived id has
// no independent source of truth to check against on decode.
func FromData(d Data, v any) error {
	if d.Kind != KindConstr {
		return apollerr.InvalidArgument("plutus: FromData: expected Constr, got kind %d", d.Kind)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return apollerr.InvalidArgument("plutus: FromData: v must be a non-nil pointer")
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return apollerr.InvalidArgument("plutus: FromData: v must point to a struct")
	}
	if c, ok := v.(ConstrIDer); ok && c.ConstrID() != d.ConstrTag {
		return apollerr.InvalidArgument("plutus: FromData: constructor tag mismatch: expected %d, got %d", c.ConstrID(), d.ConstrTag)
	}

	idx := 0
	for i := 0; i < elem.NumField(); i++ {
		sf := elem.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		if idx >= len(d.Fields) {
			return apollerr.InvalidArgument("plutus: FromData: %s has more fields than the constructor provides", elem.Type().Name())
		}
		if err := fromDataValue(d.Fields[idx], elem.Field(i)); err != nil {
			return fmt.Errorf("plutus: FromData: field %s: %w", sf.Name, err)
		}
		idx++
	}
	return nil
}

func fromDataValue(d Data, fv reflect.Value) error {
	if fv.Type() == reflect.TypeOf(Data{}) {
		fv.Set(reflect.ValueOf(d))
		return nil
	}
	if fv.Type() == reflect.TypeOf((*big.Int)(nil)) {
		if d.Kind != KindInteger {
			return apollerr.InvalidArgument("plutus: FromData: expected Integer for *big.Int field")
		}
		fv.Set(reflect.ValueOf(new(big.Int).Set(d.Int)))
		return nil
	}
	switch fv.Kind() {
	case reflect.Pointer:
		fv.Set(reflect.New(fv.Type().Elem()))
		return fromDataValue(d, fv.Elem())
	case reflect.Struct:
		ptr := reflect.New(fv.Type())
		if err := FromData(d, ptr.Interface()); err != nil {
			return err
		}
		fv.Set(ptr.Elem())
		return nil
	case reflect.String:
		if d.Kind != KindByteString {
			return apollerr.InvalidArgument("plutus: FromData: expected ByteString for string field")
		}
		fv.SetString(string(d.Bytes))
		return nil
	case reflect.Slice, reflect.Array:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			if d.Kind != KindByteString {
				return apollerr.InvalidArgument("plutus: FromData: expected ByteString for []byte field")
			}
			fv.SetBytes(append([]byte(nil), d.Bytes...))
			return nil
		}
		if d.Kind != KindList {
			return apollerr.InvalidArgument("plutus: FromData: expected List for slice field")
		}
		out := reflect.MakeSlice(fv.Type(), len(d.Fields), len(d.Fields))
		for i, item := range d.Fields {
			if err := fromDataValue(item, out.Index(i)); err != nil {
				return err
			}
		}
		fv.Set(out)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if d.Kind != KindInteger {
			return apollerr.InvalidArgument("plutus: FromData: expected Integer for integer field")
		}
		fv.SetInt(d.Int.Int64())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if d.Kind != KindInteger {
			return apollerr.InvalidArgument("plutus: FromData: expected Integer for integer field")
		}
		fv.SetUint(d.Int.Uint64())
		return nil
	default:
		return apollerr.InvalidArgument("plutus: FromData: unsupported field kind %s", fv.Kind())
	}
}

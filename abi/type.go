// Copyright 2026 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ethereum/go-abitype/typespec"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	FunctionTy
)

// Type is the reflection of the supported argument type.
type Type struct {
	Elem *Type // Element type of arrays and slices
	Size int   // Bit or byte width, or the array length
	T    byte  // Our own type checking

	stringKind string // holds the canonical string for deriving signatures

	// Tuple relative fields
	TupleRawName  string   // Raw struct name defined in source code, may be empty.
	TupleElems    []*Type  // Type information of all tuple fields
	TupleRawNames []string // Raw field name of all tuple fields
}

// NewType creates a new reflection type of abi type given in t. Tuples are
// spelled "tuple", "tuple[]" or "tuple[2]" with their fields in components,
// as in the JSON ABI.
func NewType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	spec, err := typespec.Parse(t)
	if err != nil {
		return Type{}, fmt.Errorf("abi: invalid type %q: %w", t, err)
	}
	if root, ok := spec.Stem().Root(); ok && root == "tuple" {
		base, err := newTupleType(internalType, components)
		if err != nil {
			return Type{}, err
		}
		return wrapDims(base, spec.Dims())
	}
	if len(components) > 0 {
		return Type{}, fmt.Errorf("abi: components given for non-tuple type %q", t)
	}
	return newType(spec, internalType)
}

// FromSpecifier converts a parsed type specifier into an ABI type. Tuple
// fields get no names. User-defined roots cannot be resolved and fail.
func FromSpecifier(spec typespec.TypeSpecifier) (Type, error) {
	return newType(spec, "")
}

func newType(spec typespec.TypeSpecifier, internalType string) (Type, error) {
	var (
		base Type
		stem = spec.Stem()
	)
	if stem.IsTuple() {
		components := stem.Components()
		base = Type{T: TupleTy, TupleElems: make([]*Type, len(components)), TupleRawNames: make([]string, len(components))}
		for i, c := range components {
			elem, err := newType(c, "")
			if err != nil {
				return Type{}, err
			}
			base.TupleElems[i] = &elem
		}
		base.stringKind = tupleString(base.TupleElems)
	} else {
		root, _ := stem.Root()
		et, ok := stem.TryRootElementary()
		switch {
		case ok:
			base = elementaryType(et)
		case strings.HasPrefix(internalType, "contract "):
			base = Type{T: AddressTy, Size: 20, stringKind: "address"}
		default:
			return Type{}, fmt.Errorf("unsupported arg type: %s", root)
		}
	}
	return wrapDims(base, spec.Dims())
}

func elementaryType(et typespec.ElementaryType) Type {
	typ := Type{stringKind: et.Canonical()}
	switch et.Kind {
	case typespec.IntTy:
		typ.T, typ.Size = IntTy, et.Size
	case typespec.UintTy:
		typ.T, typ.Size = UintTy, et.Size
	case typespec.BoolTy:
		typ.T = BoolTy
	case typespec.AddressTy:
		typ.T, typ.Size = AddressTy, 20
	case typespec.StringTy:
		typ.T = StringTy
	case typespec.BytesTy:
		typ.T = BytesTy
	case typespec.FixedBytesTy:
		typ.T, typ.Size = FixedBytesTy, et.Size
	case typespec.FunctionTy:
		typ.T, typ.Size = FunctionTy, 24
	}
	return typ
}

func newTupleType(internalType string, components []ArgumentMarshaling) (Type, error) {
	typ := Type{T: TupleTy}
	for _, c := range components {
		cType, err := NewType(c.Type, c.InternalType, c.Components)
		if err != nil {
			return Type{}, err
		}
		typ.TupleElems = append(typ.TupleElems, &cType)
		typ.TupleRawNames = append(typ.TupleRawNames, c.Name)
	}
	typ.stringKind = tupleString(typ.TupleElems)

	const structPrefix = "struct "
	// After solidity 0.5.10, a new field of abi "internalType"
	// is introduced. From that we can obtain the struct name
	// user defined in the source code.
	if strings.HasPrefix(internalType, structPrefix) {
		name := internalType[len(structPrefix):]
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		// Foo.Bar type definition is not allowed in golang,
		// convert the format to FooBar
		typ.TupleRawName = strings.ReplaceAll(name, ".", "")
	}
	return typ, nil
}

// wrapDims applies array dimensions in source order, so the last bracket
// group ends up outermost. Every level must keep its head size within int.
func wrapDims(base Type, dims []typespec.ArrayDim) (Type, error) {
	typ := base
	if _, ok := typ.headSize(); !ok {
		return Type{}, fmt.Errorf("abi: type %s is too large", typ.stringKind)
	}
	for _, d := range dims {
		elem := typ
		typ = Type{Elem: &elem, stringKind: elem.stringKind + d.String()}
		if n, ok := d.Len(); ok {
			if n > math.MaxInt {
				return Type{}, fmt.Errorf("abi: array length %d of %s out of range", n, typ.stringKind)
			}
			typ.T, typ.Size = ArrayTy, int(n)
		} else {
			typ.T = SliceTy
		}
		if _, ok := typ.headSize(); !ok {
			return Type{}, fmt.Errorf("abi: type %s is too large", typ.stringKind)
		}
	}
	return typ, nil
}

func tupleString(elems []*Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.stringKind)
	}
	b.WriteByte(')')
	return b.String()
}

// String implements Stringer and returns the canonical type string used in
// signatures.
func (t Type) String() (out string) {
	return t.stringKind
}

// Specifier parses the canonical string of the type back into a type
// specifier.
func (t Type) Specifier() (typespec.TypeSpecifier, error) {
	if t.stringKind == "" {
		return typespec.TypeSpecifier{}, errors.New("abi: uninitialized type")
	}
	return typespec.Parse(t.stringKind)
}

// abiName returns the JSON ABI spelling of the type along with the tuple
// it wraps, if any. Tuples are spelled "tuple" plus their dimensions.
func (t Type) abiName() (string, *Type) {
	switch t.T {
	case TupleTy:
		return "tuple", &t
	case SliceTy, ArrayTy:
		name, tuple := t.Elem.abiName()
		if tuple == nil {
			return t.stringKind, nil
		}
		if t.T == SliceTy {
			return name + "[]", tuple
		}
		return fmt.Sprintf("%s[%d]", name, t.Size), tuple
	default:
		return t.stringKind, nil
	}
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
func (t Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// IsDynamic returns true if the type is dynamic.
// The following types are called “dynamic”:
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
func (t Type) IsDynamic() bool {
	if t.T == TupleTy {
		for _, elem := range t.TupleElems {
			if elem.IsDynamic() {
				return true
			}
		}
		return false
	}
	return t.requiresLengthPrefix() || (t.T == ArrayTy && t.Elem.IsDynamic())
}

// HeadSize returns the size that this type needs to occupy in the head of
// an encoding.
// We distinguish static and dynamic types. Static types are encoded in-place
// and dynamic types are encoded at a separately allocated location after the
// current block.
// So for a static variable, the size returned represents the size that the
// variable actually occupies.
// For a dynamic variable, the returned size is fixed 32 bytes, which is used
// to store the location reference for actual value storage.
// Types built by NewType always fit; for others an overflowing size is
// reported as math.MaxInt.
func (t Type) HeadSize() int {
	size, ok := t.headSize()
	if !ok {
		return math.MaxInt
	}
	return size
}

// headSize computes HeadSize and reports false if it does not fit an int.
func (t Type) headSize() (int, bool) {
	if t.T == ArrayTy && !t.Elem.IsDynamic() {
		elem := 32
		// Recursively calculate type size if it is a nested array
		if t.Elem.T == ArrayTy || t.Elem.T == TupleTy {
			var ok bool
			if elem, ok = t.Elem.headSize(); !ok {
				return 0, false
			}
		}
		if elem != 0 && t.Size > math.MaxInt/elem {
			return 0, false
		}
		return t.Size * elem, true
	} else if t.T == TupleTy && !t.IsDynamic() {
		total := 0
		for _, elem := range t.TupleElems {
			size, ok := elem.headSize()
			if !ok || total > math.MaxInt-size {
				return 0, false
			}
			total += size
		}
		return total, true
	}
	return 32, true
}

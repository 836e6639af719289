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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-abitype/typespec"
)

func TestNewType(t *testing.T) {
	tests := []struct {
		blob string
		kind byte
		size int
		str  string
	}{
		{"bool", BoolTy, 0, "bool"},
		{"int8", IntTy, 8, "int8"},
		{"int", IntTy, 256, "int256"},
		{"uint", UintTy, 256, "uint256"},
		{"uint32", UintTy, 32, "uint32"},
		{"address", AddressTy, 20, "address"},
		{"string", StringTy, 0, "string"},
		{"bytes", BytesTy, 0, "bytes"},
		{"bytes32", FixedBytesTy, 32, "bytes32"},
		{"function", FunctionTy, 24, "function"},
		{"uint[]", SliceTy, 0, "uint256[]"},
		{"uint8[2]", ArrayTy, 2, "uint8[2]"},
		{"(uint,bool)", TupleTy, 0, "(uint256,bool)"},
	}
	for _, tt := range tests {
		typ, err := NewType(tt.blob, "", nil)
		require.NoError(t, err, tt.blob)
		assert.Equal(t, tt.kind, typ.T, tt.blob)
		assert.Equal(t, tt.size, typ.Size, tt.blob)
		assert.Equal(t, tt.str, typ.String(), tt.blob)
	}
}

func TestTypeNestedArrays(t *testing.T) {
	// The last bracket group is the outermost dimension.
	typ, err := NewType("uint8[2][]", "", nil)
	require.NoError(t, err)
	assert.Equal(t, SliceTy, typ.T)
	require.NotNil(t, typ.Elem)
	assert.Equal(t, ArrayTy, typ.Elem.T)
	assert.Equal(t, 2, typ.Elem.Size)
	assert.Equal(t, "uint8[2]", typ.Elem.String())
	assert.Equal(t, UintTy, typ.Elem.Elem.T)
	assert.Equal(t, "uint8[2][]", typ.String())
}

func TestTypeTupleComponents(t *testing.T) {
	components := []ArgumentMarshaling{
		{Name: "maker", Type: "address"},
		{Name: "amounts", Type: "uint[2]"},
	}
	typ, err := NewType("tuple[]", "struct Book.Order[]", components)
	require.NoError(t, err)
	assert.Equal(t, SliceTy, typ.T)
	assert.Equal(t, "(address,uint256[2])[]", typ.String())

	tuple := typ.Elem
	assert.Equal(t, TupleTy, tuple.T)
	assert.Equal(t, "BookOrder", tuple.TupleRawName)
	assert.Equal(t, []string{"maker", "amounts"}, tuple.TupleRawNames)
	require.Len(t, tuple.TupleElems, 2)
	assert.Equal(t, ArrayTy, tuple.TupleElems[1].T)

	arg := typeMarshaling("orders", typ)
	assert.Equal(t, "tuple[]", arg.Type)
	assert.Equal(t, "struct BookOrder[]", arg.InternalType)
	require.Len(t, arg.Components, 2)
	assert.Equal(t, "uint256[2]", arg.Components[1].Type)
}

func TestTypeErrors(t *testing.T) {
	for _, blob := range []string{"", "uint7", "bytes33", "uint[0]", "Foo", "Lib.Foo[]", "uint["} {
		_, err := NewType(blob, "", nil)
		assert.Error(t, err, blob)
	}
	// Components are only meaningful for tuples.
	_, err := NewType("uint256", "", []ArgumentMarshaling{{Type: "bool"}})
	assert.Error(t, err)
	// Broken components surface.
	_, err = NewType("tuple", "", []ArgumentMarshaling{{Type: "int3"}})
	assert.Error(t, err)
}

func TestTypeContractAsAddress(t *testing.T) {
	typ, err := NewType("IERC20", "contract IERC20", nil)
	require.NoError(t, err)
	assert.Equal(t, AddressTy, typ.T)
	assert.Equal(t, "address", typ.String())
}

func TestTypeIsDynamic(t *testing.T) {
	tests := map[string]bool{
		"uint256":              false,
		"bytes32":              false,
		"bytes":                true,
		"string":               true,
		"uint[]":               true,
		"uint[3]":              false,
		"string[3]":            true,
		"(uint,address)":       false,
		"(uint,bytes)":         true,
		"(uint,(bool,string))": true,
	}
	for blob, want := range tests {
		typ, err := NewType(blob, "", nil)
		require.NoError(t, err, blob)
		assert.Equal(t, want, typ.IsDynamic(), blob)
	}
}

func TestTypeHeadSize(t *testing.T) {
	tests := map[string]int{
		"uint256":               32,
		"bytes":                 32,
		"uint8[3]":              96,
		"uint8[2][3]":           192,
		"(uint,bool)":           64,
		"(uint,bool)[2]":        128,
		"(uint,string)[2]":      32,
		"((uint,bool),address)": 96,
	}
	for blob, want := range tests {
		typ, err := NewType(blob, "", nil)
		require.NoError(t, err, blob)
		assert.Equal(t, want, typ.HeadSize(), blob)
	}
}

func TestTypeHeadSizeOverflow(t *testing.T) {
	for _, blob := range []string{
		"uint8[18446744073709551615]",
		"uint8[9223372036854775808]",
		"uint8[288230376151711744]",
		"uint8[4611686018427387904][2]",
		"(uint8[288230376151711743],uint8[288230376151711743])",
		"uint8[288230376151711744][]",
	} {
		_, err := NewType(blob, "", nil)
		assert.Error(t, err, blob)
	}
	// The largest array whose head still fits.
	typ, err := NewType("uint8[288230376151711743]", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 288230376151711743*32, typ.HeadSize())

	// Dynamic elements only take a pointer in the head.
	typ, err = NewType("string[9223372036854775807]", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 32, typ.HeadSize())
}

func TestTypeSpecifier(t *testing.T) {
	typ, err := NewType("(uint,bytes4)[2][]", "", nil)
	require.NoError(t, err)
	spec, err := typ.Specifier()
	require.NoError(t, err)
	assert.True(t, spec.Equal(typespec.MustParse("(uint256,bytes4)[2][]")))

	_, err = Type{}.Specifier()
	assert.Error(t, err)
}

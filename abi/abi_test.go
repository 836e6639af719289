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
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsondata = `
[
	{ "type" : "constructor", "inputs" : [ { "name" : "owner", "type" : "address" } ], "stateMutability" : "nonpayable" },
	{ "type" : "function", "name" : "transfer", "stateMutability" : "nonpayable", "inputs" : [ { "name" : "to", "type" : "address" }, { "name" : "amount", "type" : "uint" } ], "outputs" : [ { "name" : "", "type" : "bool" } ] },
	{ "type" : "function", "name" : "transfer", "inputs" : [ { "name" : "to", "type" : "address" } ], "outputs" : [] },
	{ "type" : "function", "name" : "balanceOf", "constant" : true, "inputs" : [ { "name" : "owner", "type" : "address" } ], "outputs" : [ { "name" : "", "type" : "uint256" } ] },
	{ "type" : "function", "name" : "submit", "stateMutability" : "payable", "inputs" : [ { "name" : "orders", "type" : "tuple[]", "internalType" : "struct Book.Order[]", "components" : [ { "name" : "maker", "type" : "address" }, { "name" : "amounts", "type" : "uint256[2]" } ] } ], "outputs" : [] },
	{ "type" : "event", "name" : "Transfer", "inputs" : [ { "name" : "from", "type" : "address", "indexed" : true }, { "name" : "to", "type" : "address", "indexed" : true }, { "name" : "value", "type" : "uint256" } ] },
	{ "type" : "error", "name" : "Insufficient", "inputs" : [ { "name" : "need", "type" : "uint" }, { "name" : "have", "type" : "uint" } ] },
	{ "type" : "receive", "stateMutability" : "payable" },
	{ "type" : "fallback", "stateMutability" : "nonpayable" }
]`

func TestReader(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	assert.Len(t, abi.Methods, 4)
	assert.Equal(t, "transfer(address,uint256)", abi.Methods["transfer"].Sig)
	assert.Equal(t, "transfer(address)", abi.Methods["transfer0"].Sig)
	assert.Equal(t, "transfer", abi.Methods["transfer0"].RawName)
	assert.True(t, abi.Methods["balanceOf"].IsConstant())
	assert.True(t, abi.Methods["submit"].IsPayable())
	assert.Equal(t, "submit((address,uint256[2])[])", abi.Methods["submit"].Sig)
	assert.Equal(t, "BookOrder", abi.Methods["submit"].Inputs[0].Type.Elem.TupleRawName)

	assert.Equal(t, Constructor, abi.Constructor.Type)
	assert.Len(t, abi.Constructor.Inputs, 1)
	assert.True(t, abi.HasFallback())
	assert.True(t, abi.HasReceive())

	assert.Equal(t, "Transfer(address,address,uint256)", abi.Events["Transfer"].Sig)
	assert.Equal(t, "Insufficient(uint256,uint256)", abi.Errors["Insufficient"].Sig)
}

func TestReaderErrors(t *testing.T) {
	tests := []string{
		`[{ "type" : "function", "name" : "f", "inputs" : [ { "type" : "uint7" } ] }]`,
		`[{ "type" : "function", "name" : "f", "inputs" : [ { "type" : "Foo" } ] }]`,
		`[{ "type" : "receive", "stateMutability" : "nonpayable" }]`,
		`[{ "type" : "fallback" }, { "type" : "fallback" }]`,
		`[{ "type" : "modifier", "name" : "onlyOwner" }]`,
		`{}`,
	}
	for _, blob := range tests {
		_, err := JSON(strings.NewReader(blob))
		assert.Error(t, err, blob)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	blob, err := json.Marshal(abi)
	require.NoError(t, err)
	again, err := JSON(strings.NewReader(string(blob)))
	require.NoError(t, err)

	require.Len(t, again.Methods, len(abi.Methods))
	for name, m := range abi.Methods {
		assert.Equal(t, m.Sig, again.Methods[name].Sig, name)
		assert.Equal(t, m.String(), again.Methods[name].String(), name)
	}
	for name, e := range abi.Events {
		assert.Equal(t, e.ID, again.Events[name].ID, name)
	}
	for name, e := range abi.Errors {
		assert.Equal(t, e.ID, again.Errors[name].ID, name)
	}
	assert.Equal(t, abi.Constructor.String(), again.Constructor.String())
	assert.True(t, again.HasFallback())
	assert.True(t, again.HasReceive())

	// The output is stable.
	blob2, err := json.Marshal(again)
	require.NoError(t, err)
	assert.JSONEq(t, string(blob), string(blob2))
}

func TestMarshalEmpty(t *testing.T) {
	blob, err := json.Marshal(ABI{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(blob))
}

func TestMethodById(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	m, err := abi.MethodById(hexutil.MustDecode("0xa9059cbb0000"))
	require.NoError(t, err)
	assert.Equal(t, "transfer", m.Name)

	_, err = abi.MethodById([]byte{0xa9})
	assert.Error(t, err)
	_, err = abi.MethodById(hexutil.MustDecode("0xdeadbeef"))
	assert.Error(t, err)
}

func TestEventAndErrorByID(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	transfer := abi.Events["Transfer"]
	e, err := abi.EventByID(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Transfer", e.Name)

	insufficient := abi.Errors["Insufficient"]
	found, err := abi.ErrorByID(insufficient.Selector())
	require.NoError(t, err)
	assert.Equal(t, "Insufficient", found.Name)

	_, err = abi.ErrorByID([4]byte{})
	assert.Error(t, err)
}

func TestResolveNameConflict(t *testing.T) {
	used := map[string]bool{"send": true, "send0": true}
	name := ResolveNameConflict("send", func(s string) bool { return used[s] })
	assert.Equal(t, "send1", name)
	assert.Equal(t, "recv", ResolveNameConflict("recv", func(s string) bool { return used[s] }))
}

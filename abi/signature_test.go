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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunction(t *testing.T) {
	tests := []struct {
		input      string
		sig        string
		id         string
		mutability string
		outputs    []string
	}{
		{"transfer(address to, uint amount) returns (bool)", "transfer(address,uint256)", "0xa9059cbb", "nonpayable", []string{"bool"}},
		{"function balanceOf(address owner) external view returns (uint256)", "balanceOf(address)", "0x70a08231", "view", []string{"uint256"}},
		{"approve(address,uint256)", "approve(address,uint256)", "0x095ea7b3", "nonpayable", []string{}},
		{"function deposit() payable", "deposit()", "0xd0e30db0", "payable", []string{}},
		{"multi( (uint8, bytes32)[2] memory pairs, string calldata ) pure returns (uint, (bool,address))",
			"multi((uint8,bytes32)[2],string)", "", "pure", []string{"uint256", "(bool,address)"}},
	}
	for _, tt := range tests {
		m, err := ParseFunction(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.sig, m.Sig, tt.input)
		if tt.id != "" {
			assert.Equal(t, tt.id, hexutil.Encode(m.ID), tt.input)
		}
		assert.Equal(t, tt.mutability, m.StateMutability, tt.input)
		assert.Equal(t, tt.outputs, m.Outputs.Types(), tt.input)
		assert.Equal(t, Function, m.Type)
	}
}

func TestParseFunctionNames(t *testing.T) {
	m, err := ParseFunction("function transferFrom(address from, address to, uint256 value)")
	require.NoError(t, err)
	require.Len(t, m.Inputs, 3)
	assert.Equal(t, "from", m.Inputs[0].Name)
	assert.Equal(t, "value", m.Inputs[2].Name)
	assert.Equal(t, "function transferFrom(address from, address to, uint256 value) returns()", m.String())
	assert.False(t, m.IsConstant())
	assert.False(t, m.IsPayable())
}

func TestParseFunctionErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"transfer",
		"1transfer(address)",
		"transfer(address",
		"transfer(address,)",
		"transfer(uint7)",
		"transfer(address) view pure",
		"transfer(address) returns (bool) returns (bool)",
		"transfer(address) returns",
		"transfer(address) nonsense",
		"transfer(address indexed to)",
		"transfer(address to from)",
	} {
		_, err := ParseFunction(input)
		assert.Error(t, err, input)
	}
}

func TestParseEvent(t *testing.T) {
	e, err := ParseEvent("event Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)
	assert.Equal(t, "Transfer(address,address,uint256)", e.Sig)
	assert.Equal(t, common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"), e.ID)
	assert.Equal(t, "event Transfer(address indexed from, address indexed to, uint256 value)", e.String())
	assert.Len(t, e.Inputs.NonIndexed(), 1)
	assert.False(t, e.Anonymous)

	// Unnamed inputs get positional names that avoid the named ones.
	e, err = ParseEvent("Log(uint arg1, bytes)")
	require.NoError(t, err)
	assert.Equal(t, "arg1", e.Inputs[0].Name)
	assert.Equal(t, "arg10", e.Inputs[1].Name)
}

func TestParseEventIndexedLimit(t *testing.T) {
	const four = "Many(uint indexed a, uint indexed b, uint indexed c, uint indexed d)"
	_, err := ParseEvent(four)
	assert.Error(t, err)

	e, err := ParseEvent(four + " anonymous")
	require.NoError(t, err)
	assert.True(t, e.Anonymous)

	_, err = ParseEvent("Few(uint indexed a) indexed")
	assert.Error(t, err)
}

func TestParseError(t *testing.T) {
	e, err := ParseError("error Error(string)")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x08, 0xc3, 0x79, 0xa0}, e.Selector())
	assert.True(t, e.Matches(hexutil.MustDecode("0x08c379a00000")))
	assert.False(t, e.Matches([]byte{0x08, 0xc3}))

	e, err = ParseError("Unauthorized((address,uint256) caller, bytes32 role)")
	require.NoError(t, err)
	assert.Equal(t, "Unauthorized((address,uint256),bytes32)", e.Sig)
	assert.Equal(t, "error Unauthorized((address,uint256) caller, bytes32 role)", e.String())

	_, err = ParseError("error Bad(uint) view")
	assert.Error(t, err)
}

func TestSplitGroup(t *testing.T) {
	body, rest, err := splitGroup("((a,b),c) tail")
	require.NoError(t, err)
	assert.Equal(t, "(a,b),c", body)
	assert.Equal(t, " tail", rest)

	_, _, err = splitGroup("(a,(b)")
	assert.Error(t, err)
	_, _, err = splitGroup("a)")
	assert.Error(t, err)
}

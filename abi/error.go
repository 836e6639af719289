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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Error is a custom solidity error, raised with `revert` and identified by
// the first four bytes of the keccak256 hash of its signature.
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the string signature according to the ABI spec.
	// e.g.	 error foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the error's signature used by the
	// abi definition to identify event names and types.
	ID common.Hash
}

// NewError creates a new Error, naming anonymous inputs and precomputing
// its signature and id.
func NewError(name string, inputs Arguments) Error {
	inputs = nameArguments(inputs)
	names := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = fmt.Sprintf("%v %v", input.Type, input.Name)
		if input.Indexed {
			names[i] = fmt.Sprintf("%v indexed %v", input.Type, input.Name)
		}
	}

	str := fmt.Sprintf("error %v(%v)", name, strings.Join(names, ", "))
	sig := inputs.signature(name)
	id := common.BytesToHash(crypto.Keccak256([]byte(sig)))

	return Error{
		Name:   name,
		Inputs: inputs,
		str:    str,
		Sig:    sig,
		ID:     id,
	}
}

func (e Error) String() string {
	return e.str
}

// Selector returns the four byte selector of the error.
func (e Error) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], e.ID[:4])
	return sel
}

// Matches reports whether revert data starts with the error's selector.
func (e Error) Matches(data []byte) bool {
	return len(data) >= 4 && bytes.Equal(data[:4], e.ID[:4])
}

// MarshalJSON emits the error as a JSON ABI item.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string               `json:"type"`
		Name   string               `json:"name"`
		Inputs []ArgumentMarshaling `json:"inputs"`
	}{"error", e.Name, marshalArguments(e.Inputs)})
}

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
	"fmt"
	"strings"

	"github.com/ethereum/go-abitype/typespec"
)

// SelectorMarshaling is a struct that represents the JSON-serializable form of a method selector.
// It includes the method name, type, and input arguments.
type SelectorMarshaling struct {
	Name   string               `json:"name"`
	Type   string               `json:"type"`
	Inputs []ArgumentMarshaling `json:"inputs"`
}

// assembleArgs assembles the parsed arguments into a structured format for JSON serialization.
func assembleArgs(args []typespec.TypeSpecifier) []ArgumentMarshaling {
	arguments := make([]ArgumentMarshaling, 0, len(args))
	for i, arg := range args {
		// generate dummy name to avoid unmarshal issues
		arguments = append(arguments, NewArgumentMarshaling(fmt.Sprintf("name%d", i), arg))
	}
	return arguments
}

// ParseSelector converts a method selector into a struct that can be JSON encoded
// and consumed by other functions in this package.
// Note, although uppercase letters are not part of the ABI spec, this function
// still accepts it as the general format is valid.
func ParseSelector(unescapedSelector string) (SelectorMarshaling, error) {
	open := strings.IndexByte(unescapedSelector, '(')
	if open < 0 {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': missing argument list", unescapedSelector)
	}
	name := unescapedSelector[:open]
	if !typespec.IsIdentifier(name) {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': invalid name %q", unescapedSelector, name)
	}
	// The argument list is exactly a tuple type without array suffixes.
	args, err := typespec.Parse(unescapedSelector[open:])
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
	}
	if args.IsArray() {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': unexpected string '%s'", unescapedSelector, unescapedSelector[strings.LastIndexByte(unescapedSelector, ')')+1:])
	}
	return SelectorMarshaling{name, "function", assembleArgs(args.Stem().Components())}, nil
}

// CanonicalSelector parses a selector such as "transfer(address, uint)"
// and returns its canonical signature "transfer(address,uint256)" together
// with the four byte method id.
func CanonicalSelector(selector string) (string, [4]byte, error) {
	parsed, err := ParseSelector(selector)
	if err != nil {
		return "", [4]byte{}, err
	}
	inputs := make(Arguments, len(parsed.Inputs))
	for i, in := range parsed.Inputs {
		typ, err := NewType(in.Type, in.InternalType, in.Components)
		if err != nil {
			return "", [4]byte{}, fmt.Errorf("failed to parse selector '%s': %w", selector, err)
		}
		inputs[i] = Argument{Name: in.Name, Type: typ}
	}
	method := NewMethod(parsed.Name, parsed.Name, Function, "", false, false, inputs, nil)
	var id [4]byte
	copy(id[:], method.ID)
	return method.Sig, id, nil
}

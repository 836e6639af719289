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
	"log"
	"reflect"
	"testing"
)

func TestParseSelector(t *testing.T) {
	t.Parallel()
	mkType := func(types ...interface{}) []ArgumentMarshaling {
		var result []ArgumentMarshaling
		for i, typeOrComponents := range types {
			name := fmt.Sprintf("name%d", i)
			if typeName, ok := typeOrComponents.(string); ok {
				result = append(result, ArgumentMarshaling{name, typeName, "", nil, false})
			} else if components, ok := typeOrComponents.([]ArgumentMarshaling); ok {
				result = append(result, ArgumentMarshaling{name, "tuple", "", components, false})
			} else if components, ok := typeOrComponents.([][]ArgumentMarshaling); ok {
				result = append(result, ArgumentMarshaling{name, "tuple[]", "", components[0], false})
			} else {
				log.Fatalf("unexpected type %T", typeOrComponents)
			}
		}
		return result
	}
	unnamed := func(args []ArgumentMarshaling) []ArgumentMarshaling {
		for i := range args {
			args[i].Name = ""
		}
		return args
	}
	tests := []struct {
		input string
		name  string
		args  []ArgumentMarshaling
	}{
		{"noargs()", "noargs", []ArgumentMarshaling{}},
		{"simple(uint256,uint256,uint256)", "simple", mkType("uint256", "uint256", "uint256")},
		{"other(uint256,address)", "other", mkType("uint256", "address")},
		{"withArray(uint256[],address[2],uint8[4][][5])", "withArray", mkType("uint256[]", "address[2]", "uint8[4][][5]")},
		{"aliases(uint,int[],bytes1)", "aliases", mkType("uint256", "int256[]", "bytes1")},
		{"spaced( uint , address )", "spaced", mkType("uint256", "address")},
		{"singleNest(bytes32,uint8,(uint256,uint256),address)", "singleNest",
			mkType("bytes32", "uint8", unnamed(mkType("uint256", "uint256")), "address")},
		{"multiNest(address,(uint256[],uint256),((address,bytes32),uint256))", "multiNest",
			mkType("address", unnamed(mkType("uint256[]", "uint256")), unnamed(mkType(unnamed(mkType("address", "bytes32")), "uint256")))},
		{"arrayNest((uint256,uint256)[],bytes32)", "arrayNest",
			mkType([][]ArgumentMarshaling{unnamed(mkType("uint256", "uint256"))}, "bytes32")},
	}
	for i, tt := range tests {
		selector, err := ParseSelector(tt.input)
		if err != nil {
			t.Errorf("test %d: failed to parse selector '%v': %v", i, tt.input, err)
			continue
		}
		if selector.Name != tt.name {
			t.Errorf("test %d: unexpected function name: '%s' != '%s'", i, selector.Name, tt.name)
		}
		if selector.Type != "function" {
			t.Errorf("test %d: unexpected type: '%s' != '%s'", i, selector.Type, "function")
		}
		if !reflect.DeepEqual(selector.Inputs, tt.args) {
			t.Errorf("test %d: unexpected args: '%v' != '%v'", i, selector.Inputs, tt.args)
		}
	}
}

func TestParseSelectorErrors(t *testing.T) {
	t.Parallel()
	for _, input := range []string{
		"",
		"noparens",
		"(uint256)",
		"9lives(uint256)",
		"bad name(uint256)",
		"f(uint256",
		"f(uint256)[]",
		"f(uint256) ",
		"f(uint7)",
		"f(,)",
	} {
		if _, err := ParseSelector(input); err == nil {
			t.Errorf("selector %q: expected error", input)
		}
	}
}

func TestCanonicalSelector(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		sig   string
		id    [4]byte
	}{
		{"transfer(address,uint256)", "transfer(address,uint256)", [4]byte{0xa9, 0x05, 0x9c, 0xbb}},
		{"transfer(address, uint)", "transfer(address,uint256)", [4]byte{0xa9, 0x05, 0x9c, 0xbb}},
		{"balanceOf(address)", "balanceOf(address)", [4]byte{0x70, 0xa0, 0x82, 0x31}},
		{"Error(string)", "Error(string)", [4]byte{0x08, 0xc3, 0x79, 0xa0}},
	}
	for _, tt := range tests {
		sig, id, err := CanonicalSelector(tt.input)
		if err != nil {
			t.Fatalf("selector %q: %v", tt.input, err)
		}
		if sig != tt.sig {
			t.Errorf("selector %q: signature mismatch: have %s, want %s", tt.input, sig, tt.sig)
		}
		if id != tt.id {
			t.Errorf("selector %q: id mismatch: have %x, want %x", tt.input, id, tt.id)
		}
	}
}

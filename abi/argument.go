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
	"fmt"
	"strings"

	"github.com/ethereum/go-abitype/typespec"
)

// Argument holds the name of the argument and the corresponding type.
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events
}

type Arguments []Argument

// ArgumentMarshaling is the JSON ABI form of an argument.
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// NewArgumentMarshaling builds the JSON ABI form of a parsed type. Tuples
// become "tuple" with their dimensions and unnamed components.
func NewArgumentMarshaling(name string, spec typespec.TypeSpecifier) ArgumentMarshaling {
	stem := spec.Stem()
	if !stem.IsTuple() {
		return ArgumentMarshaling{Name: name, Type: spec.Canonical()}
	}
	var dims strings.Builder
	for _, d := range spec.Dims() {
		dims.WriteString(d.String())
	}
	arg := ArgumentMarshaling{Name: name, Type: "tuple" + dims.String(), Components: []ArgumentMarshaling{}}
	for _, c := range stem.Components() {
		arg.Components = append(arg.Components, NewArgumentMarshaling("", c))
	}
	return arg
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// MarshalJSON implements json.Marshaler, emitting the JSON ABI form.
func (argument Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(argument.marshaling())
}

func (argument Argument) marshaling() ArgumentMarshaling {
	arg := typeMarshaling(argument.Name, argument.Type)
	arg.Indexed = argument.Indexed
	return arg
}

func typeMarshaling(name string, typ Type) ArgumentMarshaling {
	abiName, tuple := typ.abiName()
	arg := ArgumentMarshaling{Name: name, Type: abiName}
	if tuple == nil {
		return arg
	}
	if tuple.TupleRawName != "" {
		arg.InternalType = "struct " + tuple.TupleRawName + strings.TrimPrefix(abiName, "tuple")
	}
	arg.Components = make([]ArgumentMarshaling, len(tuple.TupleElems))
	for i, elem := range tuple.TupleElems {
		var fieldName string
		if i < len(tuple.TupleRawNames) {
			fieldName = tuple.TupleRawNames[i]
		}
		arg.Components[i] = typeMarshaling(fieldName, *elem)
	}
	return arg
}

// NonIndexed returns the arguments with indexed arguments filtered out.
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the canonical type strings of the arguments.
func (arguments Arguments) Types() []string {
	types := make([]string, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type.String()
	}
	return types
}

// signature renders name(type1,type2,...).
func (arguments Arguments) signature(name string) string {
	return name + "(" + strings.Join(arguments.Types(), ",") + ")"
}

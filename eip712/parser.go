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

package eip712

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-abitype/typespec"
)

var (
	errEmptyEncodeType = errors.New("eip712: empty encode type")
	errNoProperties    = errors.New("eip712: missing property list")
)

// PropDef is a single struct member of the form `type name`, for example
// "uint256 amount" or "Person[] cc".
type PropDef struct {
	Type typespec.TypeSpecifier
	Name string
}

// ParsePropDef parses a `type name` pair. The name is everything after the
// last space so types containing spaces, like "(uint8, bool) pair", work.
func ParsePropDef(input string) (PropDef, error) {
	i := strings.LastIndexByte(input, ' ')
	if i < 0 {
		return PropDef{}, fmt.Errorf("eip712: invalid property definition %q", input)
	}
	name := strings.TrimSpace(input[i+1:])
	if !typespec.IsIdentifier(name) {
		return PropDef{}, fmt.Errorf("eip712: invalid property name %q", name)
	}
	typ, err := typespec.Parse(strings.TrimSpace(input[:i]))
	if err != nil {
		return PropDef{}, fmt.Errorf("eip712: property %s: %w", name, err)
	}
	return PropDef{Type: typ, Name: name}, nil
}

// String returns the canonical `type name` form.
func (p PropDef) String() string {
	return p.Type.Canonical() + " " + p.Name
}

// ComponentType is one struct definition of an encodeType string, for
// example "Person(string name,address wallet)".
type ComponentType struct {
	Name  string
	Props []PropDef
}

// ParseComponentType parses a single struct definition with nothing after it.
func ParseComponentType(input string) (ComponentType, error) {
	ct, rest, err := parseComponent(input)
	if err != nil {
		return ComponentType{}, err
	}
	if rest != "" {
		return ComponentType{}, fmt.Errorf("eip712: unexpected trailing input %q", rest)
	}
	return ct, nil
}

// parseComponent parses the struct definition at the start of input and
// returns the remaining text.
func parseComponent(input string) (ComponentType, string, error) {
	open := strings.IndexByte(input, '(')
	if open < 0 {
		return ComponentType{}, "", fmt.Errorf("%w in %q", errNoProperties, input)
	}
	ct := ComponentType{Name: input[:open]}
	if !typespec.IsIdentifier(ct.Name) {
		return ComponentType{}, "", fmt.Errorf("eip712: invalid type name %q", ct.Name)
	}
	// Split the members at commas of the outermost list. Nested parentheses
	// belong to tuple member types.
	var (
		depth = 1
		last  = open + 1
	)
	for i := open + 1; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ',':
			if depth > 1 {
				continue
			}
			prop, err := ParsePropDef(input[last:i])
			if err != nil {
				return ComponentType{}, "", fmt.Errorf("eip712: type %s: %w", ct.Name, err)
			}
			ct.Props = append(ct.Props, prop)
			last = i + 1
		case ')':
			if depth--; depth > 0 {
				continue
			}
			// "Name()" declares a struct without members.
			if body := input[last:i]; body != "" || len(ct.Props) > 0 {
				prop, err := ParsePropDef(body)
				if err != nil {
					return ComponentType{}, "", fmt.Errorf("eip712: type %s: %w", ct.Name, err)
				}
				ct.Props = append(ct.Props, prop)
			}
			return ct, input[i+1:], nil
		}
	}
	return ComponentType{}, "", fmt.Errorf("eip712: unclosed property list of type %s", ct.Name)
}

// String returns the canonical encoding of the struct, e.g.
// "Mail(Person from,Person to,string contents)".
func (c ComponentType) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('(')
	for i, p := range c.Props {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

// EncodeType is the concatenation of struct definitions that makes up an
// EIP-712 encodeType string.
type EncodeType struct {
	Components []ComponentType
}

// ParseEncodeType splits an encodeType string such as
// "Mail(Person from,Person to,string contents)Person(string name,address wallet)"
// into its component types. Text that does not form a complete component is
// an error.
func ParseEncodeType(input string) (EncodeType, error) {
	if input == "" {
		return EncodeType{}, errEmptyEncodeType
	}
	var et EncodeType
	for rest := input; rest != ""; {
		ct, remaining, err := parseComponent(rest)
		if err != nil {
			return EncodeType{}, fmt.Errorf("at offset %d: %w", len(input)-len(rest), err)
		}
		et.Components = append(et.Components, ct)
		rest = remaining
	}
	return et, nil
}

// String concatenates the canonical encodings of all components in their
// original order.
func (e EncodeType) String() string {
	var b strings.Builder
	for _, ct := range e.Components {
		b.WriteString(ct.String())
	}
	return b.String()
}

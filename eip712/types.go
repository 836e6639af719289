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
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ethereum/go-abitype/typespec"
)

// Field is a named struct member as it appears in the "types" object of
// EIP-712 typed data.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Types maps struct names to their members.
type Types map[string][]Field

// Types converts the parsed components into a Types map. Defining the same
// struct twice is an error.
func (e EncodeType) Types() (Types, error) {
	types := make(Types, len(e.Components))
	for _, ct := range e.Components {
		if _, exist := types[ct.Name]; exist {
			return nil, fmt.Errorf("eip712: duplicate type %q", ct.Name)
		}
		fields := make([]Field, len(ct.Props))
		for i, p := range ct.Props {
			fields[i] = Field{Name: p.Name, Type: p.Type.Canonical()}
		}
		types[ct.Name] = fields
	}
	return types, nil
}

// references returns the user-defined root names a type specifier mentions,
// descending into tuple components.
func references(spec typespec.TypeSpecifier) []string {
	stem := spec.Stem()
	if !stem.IsTuple() {
		if _, ok := stem.TryRootElementary(); ok {
			return nil
		}
		root, _ := stem.Root()
		return []string{root}
	}
	var refs []string
	for _, c := range stem.Components() {
		refs = append(refs, references(c)...)
	}
	return refs
}

// fieldReferences parses a member type and returns the structs it refers to.
func fieldReferences(typ string) ([]string, error) {
	spec, err := typespec.Parse(typ)
	if err != nil {
		return nil, err
	}
	return references(spec), nil
}

// Dependencies returns the primary type followed by every struct reachable
// from it, in the order they are first found. Types that are not defined
// are skipped; Validate reports them.
func (t Types) Dependencies(primaryType string) []string {
	var (
		found = mapset.NewThreadUnsafeSet[string]()
		order []string
		visit func(name string)
	)
	visit = func(name string) {
		if _, defined := t[name]; !defined || !found.Add(name) {
			return
		}
		order = append(order, name)
		for _, field := range t[name] {
			refs, err := fieldReferences(field.Type)
			if err != nil {
				continue
			}
			for _, ref := range refs {
				visit(ref)
			}
		}
	}
	visit(strings.Split(primaryType, "[")[0])
	return order
}

// EncodeType generates the following encoding:
// `name ‖ "(" ‖ member₁ ‖ "," ‖ member₂ ‖ "," ‖ … ‖ memberₙ ")"`
//
// each member is written as `type ‖ " " ‖ name` encodings cascade down and are sorted by name
func (t Types) EncodeType(primaryType string) (string, error) {
	if _, ok := t[primaryType]; !ok {
		return "", fmt.Errorf("eip712: primary type %q is undefined", primaryType)
	}
	deps := t.Dependencies(primaryType)
	sort.Strings(deps[1:])

	var b strings.Builder
	for _, dep := range deps {
		b.WriteString(dep)
		b.WriteByte('(')
		for i, field := range t[dep] {
			if i > 0 {
				b.WriteByte(',')
			}
			typ, err := typespec.Canonicalize(field.Type)
			if err != nil {
				return "", fmt.Errorf("eip712: type %s member %s: %w", dep, field.Name, err)
			}
			b.WriteString(typ)
			b.WriteByte(' ')
			b.WriteString(field.Name)
		}
		b.WriteByte(')')
	}
	return b.String(), nil
}

// TypeHash creates the keccak256 hash of the data
func (t Types) TypeHash(primaryType string) (common.Hash, error) {
	enc, err := t.EncodeType(primaryType)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash([]byte(enc)), nil
}

// Validate checks if the types object is conformant to the specs
func (t Types) Validate() error {
	for typeKey, typeArr := range t {
		if len(typeKey) == 0 {
			return errors.New("eip712: empty type key")
		}
		if !typespec.IsIdentifier(typeKey) {
			return fmt.Errorf("eip712: invalid type name %q", typeKey)
		}
		if _, ok := typespec.LookupElementary(typeKey); ok {
			return fmt.Errorf("eip712: type name %q shadows an elementary type", typeKey)
		}
		seen := mapset.NewThreadUnsafeSet[string]()
		for i, typeObj := range typeArr {
			if len(typeObj.Type) == 0 {
				return fmt.Errorf("eip712: type %q:%d: empty Type", typeKey, i)
			}
			if len(typeObj.Name) == 0 {
				return fmt.Errorf("eip712: type %q:%d: empty Name", typeKey, i)
			}
			if !seen.Add(typeObj.Name) {
				return fmt.Errorf("eip712: type %q: duplicate member %q", typeKey, typeObj.Name)
			}
			refs, err := fieldReferences(typeObj.Type)
			if err != nil {
				return fmt.Errorf("eip712: type %q member %q: %w", typeKey, typeObj.Name, err)
			}
			for _, ref := range refs {
				if ref == typeKey {
					return fmt.Errorf("eip712: type %q cannot reference itself", typeKey)
				}
				// Must be reference type
				if _, exist := t[ref]; !exist {
					return fmt.Errorf("eip712: reference type %q is undefined", ref)
				}
			}
		}
	}
	return nil
}

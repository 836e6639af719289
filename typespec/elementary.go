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

package typespec

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"
)

// Kind enumerates the elementary type families.
type Kind byte

const (
	UintTy Kind = iota + 1
	IntTy
	BoolTy
	AddressTy
	StringTy
	BytesTy
	FixedBytesTy
	FunctionTy
)

func (k Kind) String() string {
	switch k {
	case UintTy:
		return "uint"
	case IntTy:
		return "int"
	case BoolTy:
		return "bool"
	case AddressTy:
		return "address"
	case StringTy:
		return "string"
	case BytesTy:
		return "bytes"
	case FixedBytesTy:
		return "bytesN"
	case FunctionTy:
		return "function"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ElementaryType is the classification of a built-in root type. Size is the
// bit width for integers, the byte width for fixed bytes, and zero otherwise.
type ElementaryType struct {
	Kind Kind
	Size int
}

// Canonical returns the canonical spelling of the type, e.g. "uint256" for
// the bare "uint".
func (et ElementaryType) Canonical() string {
	switch et.Kind {
	case UintTy, IntTy:
		return et.Kind.String() + strconv.Itoa(et.Size)
	case FixedBytesTy:
		return "bytes" + strconv.Itoa(et.Size)
	default:
		return et.Kind.String()
	}
}

func (et ElementaryType) String() string {
	return et.Canonical()
}

// IsDynamic reports whether values of the type have no fixed encoded size.
func (et ElementaryType) IsDynamic() bool {
	return et.Kind == BytesTy || et.Kind == StringTy
}

// MaxValue returns the largest value of an integer type. It returns nil
// for non-integer kinds.
func (et ElementaryType) MaxValue() *uint256.Int {
	switch et.Kind {
	case UintTy:
		// 1<<256 wraps to zero, so the subtraction lands on the max for
		// the full width as well.
		max := new(uint256.Int).Lsh(uint256.NewInt(1), uint(et.Size))
		return max.SubUint64(max, 1)
	case IntTy:
		max := new(uint256.Int).Lsh(uint256.NewInt(1), uint(et.Size-1))
		return max.SubUint64(max, 1)
	}
	return nil
}

// MinValue returns the magnitude of the smallest value of an integer type
// and whether that value is negative. It returns nil for non-integer kinds.
func (et ElementaryType) MinValue() (abs *uint256.Int, negative bool) {
	switch et.Kind {
	case UintTy:
		return new(uint256.Int), false
	case IntTy:
		return new(uint256.Int).Lsh(uint256.NewInt(1), uint(et.Size-1)), true
	}
	return nil, false
}

// families are the root keywords that may be elementary types.
var families = mapset.NewSet("uint", "int", "bool", "address", "string", "bytes", "function")

// sizeError is a width that the family of a root does not allow. offset is
// relative to the start of the root.
type sizeError struct {
	offset int
	msg    string
}

// classify matches a root identifier against the elementary families. A
// zero Kind with a nil error means the name is not elementary and is left
// to the caller to resolve.
func classify(name string) (ElementaryType, *sizeError) {
	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	family, suffix := name[:i], name[i:]
	if !families.Contains(family) {
		return ElementaryType{}, nil
	}
	for j := 0; j < len(suffix); j++ {
		if !isDigit(suffix[j]) {
			return ElementaryType{}, nil // e.g. "uint_t", a user-defined name
		}
	}
	if suffix == "" {
		switch family {
		case "uint":
			return ElementaryType{Kind: UintTy, Size: 256}, nil
		case "int":
			return ElementaryType{Kind: IntTy, Size: 256}, nil
		case "bool":
			return ElementaryType{Kind: BoolTy}, nil
		case "address":
			return ElementaryType{Kind: AddressTy}, nil
		case "string":
			return ElementaryType{Kind: StringTy}, nil
		case "bytes":
			return ElementaryType{Kind: BytesTy}, nil
		case "function":
			return ElementaryType{Kind: FunctionTy}, nil
		}
	}
	if len(suffix) > 1 && suffix[0] == '0' {
		return ElementaryType{}, &sizeError{i, "leading zero in width of " + name}
	}
	switch family {
	case "uint", "int":
		size, err := strconv.Atoi(suffix)
		if err != nil || size < 8 || size > 256 || size%8 != 0 {
			return ElementaryType{}, &sizeError{i, "invalid width " + suffix + " for " + family + ", want a multiple of 8 in [8,256]"}
		}
		if family == "uint" {
			return ElementaryType{Kind: UintTy, Size: size}, nil
		}
		return ElementaryType{Kind: IntTy, Size: size}, nil
	case "bytes":
		size, err := strconv.Atoi(suffix)
		if err != nil || size < 1 || size > 32 {
			return ElementaryType{}, &sizeError{i, "invalid width " + suffix + " for bytes, want [1,32]"}
		}
		return ElementaryType{Kind: FixedBytesTy, Size: size}, nil
	default:
		return ElementaryType{}, &sizeError{i, family + " does not take a width suffix"}
	}
}

// canonicalRoot expands elementary aliases and passes everything else
// through untouched.
func canonicalRoot(name string) string {
	et, err := classify(name)
	if err != nil || et.Kind == 0 {
		return name
	}
	return et.Canonical()
}

// LookupElementary classifies a bare type name such as "uint", "bytes32"
// or "address". It reports false for anything that is not an elementary
// type, including names with a bad width.
func LookupElementary(name string) (ElementaryType, bool) {
	if strings.IndexByte(name, '.') >= 0 {
		return ElementaryType{}, false
	}
	et, err := classify(name)
	return et, err == nil && et.Kind != 0
}

// IsIdentifier reports whether s is a single identifier segment as used
// for parameter and struct names.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}

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

import "strconv"

// ArrayDim is one bracket group of an array type. A zero Size denotes a
// dynamic dimension ("[]"); fixed dimensions are always at least 1.
type ArrayDim struct {
	Size uint64
}

// FixedDim returns the dimension "[n]". It panics if n is zero, since a
// zero-length array is not a valid type.
func FixedDim(n uint64) ArrayDim {
	if n == 0 {
		panic("typespec: fixed array dimension must be positive")
	}
	return ArrayDim{Size: n}
}

// DynamicDim returns the dimension "[]".
func DynamicDim() ArrayDim {
	return ArrayDim{}
}

// IsDynamic reports whether the dimension has unspecified length.
func (d ArrayDim) IsDynamic() bool {
	return d.Size == 0
}

// Len returns the fixed length of the dimension.
func (d ArrayDim) Len() (uint64, bool) {
	return d.Size, d.Size != 0
}

func (d ArrayDim) String() string {
	if d.IsDynamic() {
		return "[]"
	}
	return "[" + strconv.FormatUint(d.Size, 10) + "]"
}

// TypeStem is the part of a type specifier before its array suffixes:
// either a root type name or a tuple of component specifiers.
type TypeStem struct {
	root       string
	tuple      bool
	components []TypeSpecifier
}

// RootStem returns a stem naming an elementary or user-defined type.
func RootStem(name string) TypeStem {
	return TypeStem{root: name}
}

// TupleStem returns a tuple stem with the given components. Calling it
// with no arguments yields the empty tuple "()".
func TupleStem(components ...TypeSpecifier) TypeStem {
	return TypeStem{tuple: true, components: append([]TypeSpecifier(nil), components...)}
}

// IsTuple reports whether the stem is a tuple.
func (s TypeStem) IsTuple() bool {
	return s.tuple
}

// Root returns the root type name, if the stem is not a tuple.
func (s TypeStem) Root() (string, bool) {
	return s.root, !s.tuple
}

// Components returns a copy of the tuple components. It is nil for roots
// and empty for the zero-component tuple.
func (s TypeStem) Components() []TypeSpecifier {
	if !s.tuple {
		return nil
	}
	return append(make([]TypeSpecifier, 0, len(s.components)), s.components...)
}

// NumComponents returns the number of tuple components.
func (s TypeStem) NumComponents() int {
	return len(s.components)
}

// Component returns the i'th tuple component.
func (s TypeStem) Component(i int) TypeSpecifier {
	return s.components[i]
}

// TryRootElementary classifies a root stem against the elementary type
// families. Tuples, user-defined names and malformed widths return false.
func (s TypeStem) TryRootElementary() (ElementaryType, bool) {
	if s.tuple {
		return ElementaryType{}, false
	}
	et, err := classify(s.root)
	if err != nil || et.Kind == 0 {
		return ElementaryType{}, false
	}
	return et, true
}

// Equal reports whether two stems describe the same type. Roots compare by
// canonical name, so "uint" equals "uint256".
func (s TypeStem) Equal(o TypeStem) bool {
	if s.tuple != o.tuple {
		return false
	}
	if !s.tuple {
		return canonicalRoot(s.root) == canonicalRoot(o.root)
	}
	if len(s.components) != len(o.components) {
		return false
	}
	for i := range s.components {
		if !s.components[i].Equal(o.components[i]) {
			return false
		}
	}
	return true
}

// TypeSpecifier is a parsed type: a stem followed by zero or more array
// dimensions in source order, so "uint256[2][]" has dims [2] then [].
// Values are immutable; accessors hand out copies.
//
// Roots keep their source spelling: Parse("uint") holds the root "uint"
// while its canonical form parses to "uint256". Round trips through
// Canonical are therefore identities under Equal, not field by field.
type TypeSpecifier struct {
	stem TypeStem
	dims []ArrayDim
}

// New assembles a type specifier from its parts.
func New(stem TypeStem, dims ...ArrayDim) TypeSpecifier {
	return TypeSpecifier{stem: stem, dims: append([]ArrayDim(nil), dims...)}
}

// Stem returns the stem of the specifier.
func (t TypeSpecifier) Stem() TypeStem {
	return t.stem
}

// Dims returns a copy of the array dimensions in source order, leftmost
// bracket first.
func (t TypeSpecifier) Dims() []ArrayDim {
	return append([]ArrayDim(nil), t.dims...)
}

// IsArray reports whether the specifier has at least one array dimension.
func (t TypeSpecifier) IsArray() bool {
	return len(t.dims) > 0
}

// Elem strips the last array dimension, so the element type of
// "uint8[2][3]" is "uint8[2]". It returns false for non-arrays.
func (t TypeSpecifier) Elem() (TypeSpecifier, bool) {
	if len(t.dims) == 0 {
		return TypeSpecifier{}, false
	}
	return TypeSpecifier{stem: t.stem, dims: t.dims[:len(t.dims)-1 : len(t.dims)-1]}, true
}

// Equal reports whether both specifiers describe the same type, i.e.
// whether their canonical forms coincide.
func (t TypeSpecifier) Equal(o TypeSpecifier) bool {
	if len(t.dims) != len(o.dims) {
		return false
	}
	for i := range t.dims {
		if t.dims[i] != o.dims[i] {
			return false
		}
	}
	return t.stem.Equal(o.stem)
}

// IsZero reports whether t is the zero value, which is not a valid type.
func (t TypeSpecifier) IsZero() bool {
	return !t.stem.tuple && t.stem.root == "" && len(t.dims) == 0
}

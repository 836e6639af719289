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

// Canonical returns the canonical text of the type: elementary aliases
// expanded ("uint" becomes "uint256"), no whitespace, dimensions in source
// order. Two specifiers denote the same type iff their canonical forms match.
func (t TypeSpecifier) Canonical() string {
	return string(t.AppendCanonical(make([]byte, 0, 32)))
}

// String implements fmt.Stringer and returns the canonical form.
func (t TypeSpecifier) String() string {
	return t.Canonical()
}

// AppendCanonical appends the canonical form of t to buf.
func (t TypeSpecifier) AppendCanonical(buf []byte) []byte {
	buf = t.stem.AppendCanonical(buf)
	for _, d := range t.dims {
		buf = append(buf, '[')
		if !d.IsDynamic() {
			buf = strconv.AppendUint(buf, d.Size, 10)
		}
		buf = append(buf, ']')
	}
	return buf
}

// Canonical returns the canonical text of the stem alone.
func (s TypeStem) Canonical() string {
	return string(s.AppendCanonical(nil))
}

func (s TypeStem) String() string {
	return s.Canonical()
}

// AppendCanonical appends the canonical form of the stem to buf.
func (s TypeStem) AppendCanonical(buf []byte) []byte {
	if !s.tuple {
		return append(buf, canonicalRoot(s.root)...)
	}
	buf = append(buf, '(')
	for i, c := range s.components {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = c.AppendCanonical(buf)
	}
	return append(buf, ')')
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeSpecifier) MarshalText() ([]byte, error) {
	return t.AppendCanonical(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing with full
// validation.
func (t *TypeSpecifier) UnmarshalText(input []byte) error {
	parsed, err := Parse(string(input))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

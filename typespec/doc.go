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

/*
Package typespec parses solidity ABI type specifiers into a validated type tree
and prints them back in canonical form.

A type specifier is a root type name or a tuple, followed by array suffixes:

	uint256
	address[]
	uint256[2][]
	(uint256,address)
	(bool,(uint8,bytes)[3])
	MyStruct.Field[3]

Roots that belong to an elementary family (uint, int, bytes, bool, address,
string, function) have their widths checked: uintN and intN need N to be a
multiple of 8 in [8,256], bytesN needs N in [1,32], and the others take no
width at all. Any other identifier, including dotted paths, is accepted as an
opaque user-defined type; resolving it is up to the caller.

Whitespace is only permitted inside tuple parentheses, next to the
parentheses and commas. It is never permitted inside identifiers, inside
array brackets or before a bracket.

Every rejection is an *Error carrying its kind and the byte offset it was
detected at. Nesting depth and array suffix counts are bounded by Config, so
adversarial input fails with a ResourceLimitError instead of exhausting the
stack.
*/
package typespec

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

// Package abi models the Ethereum contract ABI on top of parsed type
// specifiers.
//
// Types, methods, events and errors are built either from the JSON ABI
// emitted by the solidity compiler or from human-readable declarations such
// as "function balanceOf(address) view returns (uint256)". Their canonical
// signatures and keccak256 identifiers are precomputed on construction.
// Value encoding and decoding are not part of this package.
package abi

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

// Package typeapi serves type specifier parsing over JSON-RPC.
package typeapi

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"

	"github.com/ethereum/go-abitype/abi"
	"github.com/ethereum/go-abitype/eip712"
	"github.com/ethereum/go-abitype/typespec"
)

// Namespace is the JSON-RPC namespace the API is registered under.
const Namespace = "abitype"

var (
	requestCounter = metrics.NewRegisteredCounter("typeapi/requests", nil)
	failureCounter = metrics.NewRegisteredCounter("typeapi/failures", nil)
)

// ElementaryResult describes a built-in root type.
type ElementaryResult struct {
	Kind    string `json:"kind"`
	Size    int    `json:"size,omitempty"`
	Dynamic bool   `json:"dynamic"`
	Min     string `json:"min,omitempty"`
	Max     string `json:"max,omitempty"`
}

// StemResult is either a root name or a list of tuple components.
type StemResult struct {
	Tuple      bool               `json:"tuple"`
	Root       string             `json:"root,omitempty"`
	Elementary *ElementaryResult  `json:"elementary,omitempty"`
	Components []*SpecifierResult `json:"components,omitempty"`
}

// SpecifierResult is the JSON tree of a parsed type specifier. Dims lists
// array sizes in source order, leftmost bracket first, with null for a
// dynamic dimension.
type SpecifierResult struct {
	Canonical string            `json:"canonical"`
	Stem      StemResult        `json:"stem"`
	Dims      []*hexutil.Uint64 `json:"dims"`
}

// SelectorResult is the canonical signature of a function and its method id.
type SelectorResult struct {
	Signature string        `json:"signature"`
	Selector  hexutil.Bytes `json:"selector"`
}

// TypeHashResult carries the canonical encodeType string and its hash.
type TypeHashResult struct {
	EncodeType string      `json:"encodeType"`
	TypeHash   common.Hash `json:"typeHash"`
}

// API exposes type specifier parsing over JSON-RPC.
type API struct {
	cache *typespec.Cache
}

// NewAPI creates the API around a shared parse cache.
func NewAPI(cache *typespec.Cache) *API {
	return &API{cache: cache}
}

func (api *API) fail(method string, err error) error {
	failureCounter.Inc(1)
	log.Debug("Rejected abitype request", "method", method, "err", err)
	return newInvalidParamsError(err)
}

// Parse returns the structure of a type specifier.
func (api *API) Parse(input string) (*SpecifierResult, error) {
	requestCounter.Inc(1)
	spec, err := api.cache.Parse(input)
	if err != nil {
		return nil, api.fail("parse", err)
	}
	return NewSpecifierResult(spec), nil
}

// Canonicalize returns the canonical spelling of a type specifier.
func (api *API) Canonicalize(input string) (string, error) {
	requestCounter.Inc(1)
	spec, err := api.cache.Parse(input)
	if err != nil {
		return "", api.fail("canonicalize", err)
	}
	return spec.Canonical(), nil
}

// Selector parses a function signature like "transfer(address to, uint amount)"
// and returns its canonical form with the four byte selector.
func (api *API) Selector(signature string) (*SelectorResult, error) {
	requestCounter.Inc(1)
	method, err := abi.ParseFunction(signature)
	if err != nil {
		return nil, api.fail("selector", err)
	}
	return &SelectorResult{Signature: method.Sig, Selector: method.ID}, nil
}

// TypeHash parses an EIP-712 encodeType string and hashes the primary type.
// Without a primary type the first struct of the string is used.
func (api *API) TypeHash(encodeType string, primary *string) (*TypeHashResult, error) {
	requestCounter.Inc(1)
	et, err := eip712.ParseEncodeType(encodeType)
	if err != nil {
		return nil, api.fail("typeHash", err)
	}
	types, err := et.Types()
	if err != nil {
		return nil, api.fail("typeHash", err)
	}
	if err := types.Validate(); err != nil {
		return nil, api.fail("typeHash", err)
	}
	name := et.Components[0].Name
	if primary != nil {
		name = *primary
	}
	enc, err := types.EncodeType(name)
	if err != nil {
		return nil, api.fail("typeHash", err)
	}
	hash, err := types.TypeHash(name)
	if err != nil {
		return nil, api.fail("typeHash", err)
	}
	return &TypeHashResult{EncodeType: enc, TypeHash: hash}, nil
}

// NewSpecifierResult builds the JSON tree of a parsed type specifier.
func NewSpecifierResult(spec typespec.TypeSpecifier) *SpecifierResult {
	res := &SpecifierResult{
		Canonical: spec.Canonical(),
		Dims:      make([]*hexutil.Uint64, 0),
	}
	for _, d := range spec.Dims() {
		if n, ok := d.Len(); ok {
			size := hexutil.Uint64(n)
			res.Dims = append(res.Dims, &size)
		} else {
			res.Dims = append(res.Dims, nil)
		}
	}
	stem := spec.Stem()
	if stem.IsTuple() {
		res.Stem.Tuple = true
		res.Stem.Components = make([]*SpecifierResult, 0, stem.NumComponents())
		for _, c := range stem.Components() {
			res.Stem.Components = append(res.Stem.Components, NewSpecifierResult(c))
		}
		return res
	}
	res.Stem.Root, _ = stem.Root()
	if et, ok := stem.TryRootElementary(); ok {
		res.Stem.Elementary = newElementaryResult(et)
	}
	return res
}

func newElementaryResult(et typespec.ElementaryType) *ElementaryResult {
	res := &ElementaryResult{Kind: et.Kind.String(), Size: et.Size, Dynamic: et.IsDynamic()}
	if hi := et.MaxValue(); hi != nil {
		res.Max = hi.Hex()
		abs, negative := et.MinValue()
		res.Min = abs.Hex()
		if negative {
			res.Min = "-" + res.Min
		}
	}
	return res
}

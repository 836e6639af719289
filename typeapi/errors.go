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

package typeapi

import (
	"errors"

	"github.com/ethereum/go-abitype/typespec"
)

const errcodeInvalidParams = -32602

var kindNames = map[typespec.ErrorKind]string{
	typespec.LexicalError:       "lexical",
	typespec.SyntaxError:        "syntax",
	typespec.SemanticError:      "semantic",
	typespec.ResourceLimitError: "resource",
}

// ErrorData is attached to parse failures so clients can point at the
// offending byte.
type ErrorData struct {
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
}

// invalidParamsError is returned for any input that cannot be parsed.
type invalidParamsError struct {
	err  error
	data *ErrorData
}

func newInvalidParamsError(err error) *invalidParamsError {
	e := &invalidParamsError{err: err}
	var perr *typespec.Error
	if errors.As(err, &perr) {
		e.data = &ErrorData{Kind: kindNames[perr.Kind], Offset: perr.Offset}
	}
	return e
}

func (e *invalidParamsError) Error() string  { return e.err.Error() }
func (e *invalidParamsError) ErrorCode() int { return errcodeInvalidParams }
func (e *invalidParamsError) Unwrap() error  { return e.err }

// ErrorData implements rpc.DataError. It is nil unless the failure came
// from the type specifier parser.
func (e *invalidParamsError) ErrorData() interface{} {
	if e.data == nil {
		return nil
	}
	return e.data
}

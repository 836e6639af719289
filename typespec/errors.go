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
	"errors"
	"fmt"
)

// ErrorKind classifies why a type specifier was rejected.
type ErrorKind uint8

const (
	// LexicalError is an unexpected character, a malformed decimal literal
	// or an invalid identifier start.
	LexicalError ErrorKind = iota + 1

	// SyntaxError is a grammar violation: unbalanced brackets, a trailing
	// comma, misplaced whitespace or unconsumed trailing input.
	SyntaxError

	// SemanticError is a well-formed identifier whose numeric suffix breaks
	// the rules of its elementary type family.
	SemanticError

	// ResourceLimitError means the nesting depth or the number of array
	// suffixes exceeded the configured ceiling.
	ResourceLimitError
)

var (
	ErrLexical       = errors.New("lexical error")
	ErrSyntax        = errors.New("syntax error")
	ErrSemantic      = errors.New("semantic error")
	ErrResourceLimit = errors.New("resource limit exceeded")
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case SemanticError:
		return "semantic error"
	case ResourceLimitError:
		return "resource limit exceeded"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case LexicalError:
		return ErrLexical
	case SyntaxError:
		return ErrSyntax
	case SemanticError:
		return ErrSemantic
	case ResourceLimitError:
		return ErrResourceLimit
	}
	return nil
}

// Error is returned for every rejected type specifier. Offset is the byte
// offset into Input at which the problem was detected.
type Error struct {
	Kind   ErrorKind
	Offset int
	Input  string
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("typespec: %v at offset %d in %q: %s", e.Kind, e.Offset, e.Input, e.Msg)
}

// Unwrap exposes the kind sentinel, so errors.Is(err, ErrSemantic) works.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind ErrorKind, input string, offset int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		Offset: offset,
		Input:  input,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of a parse error, or zero if err did not come
// from this package.
func KindOf(err error) ErrorKind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return 0
}

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

// cursor is a read-only position over the input. Every recognizer either
// advances past what it matched or leaves pos untouched.
type cursor struct {
	input string
	pos   int
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifierSymbol reports the non-alphanumeric characters solidity
// allows in identifiers.
func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || isIdentifierSymbol(c)
}

func isIdentPart(c byte) bool {
	return isAlpha(c) || isDigit(c) || isIdentifierSymbol(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isStructural(c byte) bool {
	switch c {
	case '(', ')', '[', ']', ',', '.':
		return true
	}
	return false
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) peek() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	return c.input[c.pos], true
}

func (c *cursor) peekIs(ch byte) bool {
	b, ok := c.peek()
	return ok && b == ch
}

// skipSpace consumes whitespace. The parser only calls it at positions where
// whitespace is allowed.
func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.input[c.pos]) {
		c.pos++
	}
}

// punct consumes the structural character ch if it is next.
func (c *cursor) punct(ch byte) bool {
	if c.peekIs(ch) {
		c.pos++
		return true
	}
	return false
}

// segment matches a single identifier segment without dots.
func (c *cursor) segment() (string, bool) {
	if c.eof() || !isIdentStart(c.input[c.pos]) {
		return "", false
	}
	end := c.pos + 1
	for end < len(c.input) && isIdentPart(c.input[end]) {
		end++
	}
	s := c.input[c.pos:end]
	c.pos = end
	return s, true
}

// identifier matches the longest dotted identifier path at the cursor.
// A dot must be followed directly by another segment.
func (c *cursor) identifier() (string, *Error) {
	start := c.pos
	if _, ok := c.segment(); !ok {
		return "", c.badIdentStart("identifier")
	}
	for c.peekIs('.') {
		c.pos++
		if _, ok := c.segment(); !ok {
			err := c.badIdentStart("identifier after '.'")
			c.pos = start
			return "", err
		}
	}
	return c.input[start:c.pos], nil
}

// badIdentStart reports a character that cannot begin an identifier. Digits
// and symbols are lexical errors, structure and whitespace are syntax ones.
func (c *cursor) badIdentStart(want string) *Error {
	if !c.eof() && isDigit(c.input[c.pos]) {
		return newError(LexicalError, c.input, c.pos, "invalid identifier start %q", c.input[c.pos])
	}
	return c.unexpected(want)
}

// decimal matches an unsigned decimal literal. It returns ok == false
// without an error when no digit is present. A leading zero is only
// accepted for the literal "0" itself.
func (c *cursor) decimal() (n uint64, ok bool, err *Error) {
	start := c.pos
	end := start
	for end < len(c.input) && isDigit(c.input[end]) {
		end++
	}
	if end == start {
		return 0, false, nil
	}
	lit := c.input[start:end]
	if len(lit) > 1 && lit[0] == '0' {
		return 0, false, newError(LexicalError, c.input, start, "leading zero in decimal literal %q", lit)
	}
	n, perr := strconv.ParseUint(lit, 10, 64)
	if perr != nil {
		return 0, false, newError(LexicalError, c.input, start, "decimal literal %q out of range", lit)
	}
	c.pos = end
	return n, true, nil
}

// unexpected builds the error for whatever sits at the cursor when the
// grammar wanted something else. Characters that can never appear in a
// type specifier are lexical errors, misplaced legal ones are syntax errors.
func (c *cursor) unexpected(want string) *Error {
	if c.eof() {
		return newError(SyntaxError, c.input, c.pos, "unexpected end of input, expected %s", want)
	}
	ch := c.input[c.pos]
	switch {
	case ch >= 0x80:
		return newError(LexicalError, c.input, c.pos, "non-ASCII character, expected %s", want)
	case isSpace(ch):
		return newError(SyntaxError, c.input, c.pos, "unexpected whitespace, expected %s", want)
	case isStructural(ch) || isIdentPart(ch):
		return newError(SyntaxError, c.input, c.pos, "unexpected %q, expected %s", ch, want)
	default:
		return newError(LexicalError, c.input, c.pos, "invalid character %q, expected %s", ch, want)
	}
}

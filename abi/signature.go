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

package abi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-abitype/typespec"
)

// Human-readable signatures look like solidity declarations without bodies:
//
//	transfer(address to, uint256 amount) returns (bool)
//	function balanceOf(address) view returns (uint256)
//	event Transfer(address indexed from, address indexed to, uint256 value)
//	error Unauthorized((address,uint256) caller, bytes32 role)
//
// Parameter names are optional. The keyword prefix is optional as well.

// dataLocations may follow a parameter type and carry no ABI meaning.
var dataLocations = map[string]bool{"memory": true, "calldata": true, "storage": true}

var mutabilities = map[string]bool{"pure": true, "view": true, "nonpayable": true, "payable": true}

// ParseFunction parses a human-readable function signature.
func ParseFunction(signature string) (Method, error) {
	name, inputs, rest, err := parseHead(signature, "function", false)
	if err != nil {
		return Method{}, err
	}
	var (
		mutability string
		outputs    Arguments
	)
	for rest != "" {
		word := leadingWord(rest)
		switch {
		case word == "returns":
			if outputs != nil {
				return Method{}, fmt.Errorf("abi: duplicate returns clause in %q", signature)
			}
			group := strings.TrimSpace(rest[len(word):])
			body, after, err := splitGroup(group)
			if err != nil {
				return Method{}, fmt.Errorf("abi: invalid returns clause in %q: %w", signature, err)
			}
			if outputs, err = parseParams(body, false); err != nil {
				return Method{}, fmt.Errorf("abi: invalid outputs of %q: %w", signature, err)
			}
			rest = strings.TrimSpace(after)
			continue
		case mutabilities[word]:
			if mutability != "" {
				return Method{}, fmt.Errorf("abi: conflicting state mutability %q in %q", word, signature)
			}
			mutability = word
		case word == "external" || word == "public":
		default:
			return Method{}, fmt.Errorf("abi: unexpected %q in %q", word, signature)
		}
		rest = strings.TrimSpace(rest[len(word):])
	}
	if outputs == nil {
		outputs = Arguments{}
	}
	if mutability == "" {
		mutability = "nonpayable"
	}
	return NewMethod(name, name, Function, mutability, false, false, inputs, outputs), nil
}

// ParseEvent parses a human-readable event signature. Inputs may be marked
// indexed and the event may be declared anonymous.
func ParseEvent(signature string) (Event, error) {
	name, inputs, rest, err := parseHead(signature, "event", true)
	if err != nil {
		return Event{}, err
	}
	var anonymous bool
	switch rest {
	case "":
	case "anonymous":
		anonymous = true
	default:
		return Event{}, fmt.Errorf("abi: unexpected %q in %q", rest, signature)
	}
	var indexed int
	for _, in := range inputs {
		if in.Indexed {
			indexed++
		}
	}
	// Topic 0 holds the event id unless the event is anonymous.
	limit := 3
	if anonymous {
		limit = 4
	}
	if indexed > limit {
		return Event{}, fmt.Errorf("abi: too many indexed inputs in %q", signature)
	}
	return NewEvent(name, name, anonymous, inputs), nil
}

// ParseError parses a human-readable error signature such as
// "Myerror(uint256 a,(address,uint256) arg2)".
func ParseError(signature string) (Error, error) {
	name, inputs, rest, err := parseHead(signature, "error", false)
	if err != nil {
		return Error{}, err
	}
	if rest != "" {
		return Error{}, fmt.Errorf("abi: unexpected %q in %q", rest, signature)
	}
	return NewError(name, inputs), nil
}

// parseHead splits "keyword Name(params) rest" and parses the parameters.
func parseHead(signature, keyword string, allowIndexed bool) (string, Arguments, string, error) {
	s := strings.TrimSpace(signature)
	if w := leadingWord(s); w == keyword {
		s = strings.TrimSpace(s[len(w):])
	}
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", nil, "", fmt.Errorf("abi: no parameter list in %q", signature)
	}
	name := strings.TrimSpace(s[:open])
	if !typespec.IsIdentifier(name) {
		return "", nil, "", fmt.Errorf("abi: invalid %s name %q", keyword, name)
	}
	body, rest, err := splitGroup(s[open:])
	if err != nil {
		return "", nil, "", fmt.Errorf("abi: invalid %q: %w", signature, err)
	}
	inputs, err := parseParams(body, allowIndexed)
	if err != nil {
		return "", nil, "", fmt.Errorf("abi: invalid inputs of %q: %w", signature, err)
	}
	return name, inputs, strings.TrimSpace(rest), nil
}

// splitGroup takes a string starting with '(' and returns the text inside
// the matching parenthesis along with what follows it.
func splitGroup(s string) (body, rest string, err error) {
	if !strings.HasPrefix(s, "(") {
		return "", "", errors.New("expected '('")
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], nil
			}
		}
	}
	return "", "", errors.New("unbalanced parentheses")
}

// parseParams parses a comma separated parameter list. Commas nested in
// tuple types do not split parameters.
func parseParams(list string, allowIndexed bool) (Arguments, error) {
	args := Arguments{}
	if strings.TrimSpace(list) == "" {
		return args, nil
	}
	var (
		depth int
		last  int
	)
	for i := 0; i <= len(list); i++ {
		if i < len(list) {
			switch list[i] {
			case '(':
				depth++
				continue
			case ')':
				depth--
				continue
			case ',':
				if depth > 0 {
					continue
				}
			default:
				continue
			}
		}
		arg, err := parseParam(strings.TrimSpace(list[last:i]), allowIndexed)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", len(args), err)
		}
		args = append(args, arg)
		last = i + 1
	}
	return args, nil
}

// parseParam parses "type [indexed] [location] [name]".
func parseParam(param string, allowIndexed bool) (Argument, error) {
	if param == "" {
		return Argument{}, errors.New("empty parameter")
	}
	// The type ends at the first whitespace outside of parentheses.
	end, depth := len(param), 0
	for i := 0; i < len(param) && end == len(param); i++ {
		switch c := param[i]; {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case depth == 0 && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			end = i
		}
	}
	spec, err := typespec.Parse(param[:end])
	if err != nil {
		return Argument{}, err
	}
	typ, err := FromSpecifier(spec)
	if err != nil {
		return Argument{}, err
	}
	arg := Argument{Type: typ}
	for _, word := range strings.Fields(param[end:]) {
		switch {
		case word == "indexed" && allowIndexed && !arg.Indexed && arg.Name == "":
			arg.Indexed = true
		case dataLocations[word] && arg.Name == "":
		case arg.Name == "" && typespec.IsIdentifier(word):
			arg.Name = word
		default:
			return Argument{}, fmt.Errorf("unexpected %q after type %s", word, typ)
		}
	}
	return arg, nil
}

// leadingWord returns the identifier-like prefix of s.
func leadingWord(s string) string {
	i := 0
	for i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != '\n' && s[i] != '(' {
		i++
	}
	return s[:i]
}

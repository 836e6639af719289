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

// Config bounds the parser. The zero value of a limit selects the default.
type Config struct {
	MaxDepth  int  // Maximum tuple nesting depth
	MaxDims   int  // Maximum array suffixes on a single stem
	Unchecked bool // Skip the elementary width checks
}

// DefaultConfig contains the limits used by Parse and ParseUnchecked.
var DefaultConfig = Config{
	MaxDepth: 128,
	MaxDims:  64,
}

func (cfg Config) withDefaults() Config {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultConfig.MaxDepth
	}
	if cfg.MaxDims <= 0 {
		cfg.MaxDims = DefaultConfig.MaxDims
	}
	return cfg
}

// Parse parses and validates a type specifier such as "uint256[2][]" or
// "(bool,(uint8,bytes)[3])".
func Parse(input string) (TypeSpecifier, error) {
	return DefaultConfig.Parse(input)
}

// ParseUnchecked parses a type specifier without checking the widths of
// elementary types, for callers that validate elsewhere.
func ParseUnchecked(input string) (TypeSpecifier, error) {
	cfg := DefaultConfig
	cfg.Unchecked = true
	return cfg.Parse(input)
}

// MustParse is like Parse but panics on error. It is meant for tests and
// static tables.
func MustParse(input string) TypeSpecifier {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}

// Canonicalize parses input and returns its canonical form.
func Canonicalize(input string) (string, error) {
	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	return t.Canonical(), nil
}

// Parse parses input under the limits of cfg. On failure no partial tree
// is returned.
func (cfg Config) Parse(input string) (TypeSpecifier, error) {
	p := &parser{cursor: cursor{input: input}, cfg: cfg.withDefaults()}
	if input == "" {
		return TypeSpecifier{}, newError(SyntaxError, input, 0, "empty type specifier")
	}
	t, err := p.parseSpecifier()
	if err != nil {
		return TypeSpecifier{}, err
	}
	if !p.eof() {
		return TypeSpecifier{}, p.unexpected("end of input")
	}
	return t, nil
}

type parser struct {
	cursor
	cfg   Config
	depth int
}

// parseSpecifier handles type_specifier := type_stem array_suffix*.
func (p *parser) parseSpecifier() (TypeSpecifier, *Error) {
	stem, err := p.parseStem()
	if err != nil {
		return TypeSpecifier{}, err
	}
	dims, err := p.parseDims()
	if err != nil {
		return TypeSpecifier{}, err
	}
	return TypeSpecifier{stem: stem, dims: dims}, nil
}

// parseStem picks the production by the next byte: '(' always opens a
// tuple, anything else has to be an identifier.
func (p *parser) parseStem() (TypeStem, *Error) {
	ch, ok := p.peek()
	if !ok {
		return TypeStem{}, p.unexpected("type")
	}
	if ch == '(' {
		return p.parseTuple()
	}
	start := p.pos
	name, err := p.identifier()
	if err != nil {
		return TypeStem{}, err
	}
	if !p.cfg.Unchecked {
		if _, serr := classify(name); serr != nil {
			return TypeStem{}, newError(SemanticError, p.input, start+serr.offset, "%s", serr.msg)
		}
	}
	return TypeStem{root: name}, nil
}

// parseTuple handles tuple := '(' ')' | '(' type_specifier (',' type_specifier)* ')'.
// Whitespace is allowed after '(', before ')' and around ','.
func (p *parser) parseTuple() (TypeStem, *Error) {
	open := p.pos
	if p.depth >= p.cfg.MaxDepth {
		return TypeStem{}, newError(ResourceLimitError, p.input, open, "tuple nesting exceeds %d levels", p.cfg.MaxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	p.pos++ // '('
	p.skipSpace()
	if p.punct(')') {
		return TypeStem{tuple: true, components: []TypeSpecifier{}}, nil
	}
	var components []TypeSpecifier
	for {
		switch ch, _ := p.peek(); {
		case ch == ',' && len(components) == 0:
			return TypeStem{}, newError(SyntaxError, p.input, p.pos, "empty tuple component")
		case ch == ',':
			return TypeStem{}, newError(SyntaxError, p.input, p.pos, "empty tuple component after ','")
		case ch == ')':
			return TypeStem{}, newError(SyntaxError, p.input, p.pos, "trailing comma in tuple")
		}
		t, err := p.parseSpecifier()
		if err != nil {
			return TypeStem{}, err
		}
		components = append(components, t)

		p.skipSpace()
		if p.punct(',') {
			p.skipSpace()
			continue
		}
		if p.punct(')') {
			return TypeStem{tuple: true, components: components}, nil
		}
		if p.eof() {
			return TypeStem{}, newError(SyntaxError, p.input, p.pos, "unclosed tuple opened at offset %d", open)
		}
		return TypeStem{}, p.unexpected("',' or ')'")
	}
}

// parseDims handles array_suffix*. Suffixes follow the stem directly, with
// no whitespace before or inside the brackets.
func (p *parser) parseDims() ([]ArrayDim, *Error) {
	var dims []ArrayDim
	for p.peekIs('[') {
		open := p.pos
		if len(dims) >= p.cfg.MaxDims {
			return nil, newError(ResourceLimitError, p.input, open, "more than %d array dimensions", p.cfg.MaxDims)
		}
		p.pos++ // '['
		size, fixed, err := p.decimal()
		if err != nil {
			return nil, err
		}
		if fixed && size == 0 {
			return nil, newError(SyntaxError, p.input, open+1, "zero-length array dimension")
		}
		if !p.punct(']') {
			if p.eof() {
				return nil, newError(SyntaxError, p.input, p.pos, "unclosed array dimension opened at offset %d", open)
			}
			return nil, p.unexpected("array size or ']'")
		}
		dims = append(dims, ArrayDim{Size: size})
	}
	return dims, nil
}

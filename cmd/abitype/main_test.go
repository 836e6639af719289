// Copyright 2026 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-abitype/typeapi"
	"github.com/ethereum/go-abitype/typespec"
)

// runAbitype runs the app with the given arguments and returns everything
// written to its output. The path flag writes into its own Value, so it is
// cleared to keep one run's --config from reaching the next.
func runAbitype(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFileFlag.Value, configFileFlag.HasBeenSet = "", false
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	defer func() {
		app.Writer = os.Stdout
		app.ErrWriter = os.Stderr
	}()
	err := app.Run(append([]string{clientIdentifier, "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := runAbitype(t, "parse", "(uint, bytes4[])[2]", "int")
	require.NoError(t, err)
	assert.Equal(t, "(uint256,bytes4[])[2]\nint256\n", out)
}

func TestParseCommandJSON(t *testing.T) {
	out, err := runAbitype(t, "parse", "--json", "uint8[][3]")
	require.NoError(t, err)

	var res typeapi.SpecifierResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "uint8[][3]", res.Canonical)
	assert.Equal(t, "uint8", res.Stem.Root)
	require.Len(t, res.Dims, 2)
	assert.Nil(t, res.Dims[0])
	require.NotNil(t, res.Dims[1])
	assert.EqualValues(t, 3, *res.Dims[1])
}

func TestParseCommandErrors(t *testing.T) {
	_, err := runAbitype(t, "parse")
	assert.Error(t, err)

	_, err = runAbitype(t, "parse", "uint7")
	require.Error(t, err)
	assert.Equal(t, typespec.SemanticError, typespec.KindOf(err))

	_, err = runAbitype(t, "--parser.maxdims", "2", "parse", "bool[][][]")
	require.Error(t, err)
	assert.Equal(t, typespec.ResourceLimitError, typespec.KindOf(err))
}

func TestParseCommandUnchecked(t *testing.T) {
	out, err := runAbitype(t, "--parser.unchecked", "parse", "uint7")
	require.NoError(t, err)
	assert.Equal(t, "uint7\n", out)
}

func TestCheckCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "types.txt")
	content := strings.Join([]string{
		"# elementary types",
		"uint256",
		"",
		"bytes33",
		"(address,(bool,string)[])[4]",
		"   # indented comment",
		"uint[",
	}, "\n")
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	out, err := runAbitype(t, "check", "--workers", "2", file)
	require.Error(t, err)
	assert.Equal(t, "2 of 4 type specifiers are invalid", err.Error())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], file+":4: "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], file+":7: "), lines[1])
}

func TestCheckCommandValid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "types.txt")
	require.NoError(t, os.WriteFile(file, []byte("bool\nfunction[2]\n"), 0644))

	out, err := runAbitype(t, "check", file)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = runAbitype(t, "check", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSelectorCommand(t *testing.T) {
	tests := []struct {
		kind, input, want string
	}{
		{"function", "function transfer(address to, uint amount) returns (bool)", "0xa9059cbb transfer(address,uint256)\n"},
		{"event", "event Transfer(address indexed from, address indexed to, uint value)", "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef Transfer(address,address,uint256)\n"},
		{"error", "Error(string)", "0x08c379a0 Error(string)\n"},
	}
	for _, test := range tests {
		out, err := runAbitype(t, "selector", "--kind", test.kind, test.input)
		if err != nil {
			t.Errorf("%s %q: unexpected error: %v", test.kind, test.input, err)
			continue
		}
		if out != test.want {
			t.Errorf("%s %q: have %q, want %q", test.kind, test.input, out, test.want)
		}
	}
	if _, err := runAbitype(t, "selector", "--kind", "constructor", "f()"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestEIP712Command(t *testing.T) {
	out, err := runAbitype(t, "eip712", "Mail(Person from,Person to,string contents)Person(string name,address wallet)")
	require.NoError(t, err)
	assert.Contains(t, out, "encodeType: Mail(Person from,Person to,string contents)Person(string name,address wallet)\n")
	assert.Contains(t, out, "typeHash:   0xa0cedeb2dc280ba39b857546d74f5549c3a1d7bdc2dd96bf881f76108e23dac2\n")

	out, err = runAbitype(t, "eip712", "--primary", "Person", "Mail(Person from,Person to,string contents)Person(string name,address wallet)")
	require.NoError(t, err)
	assert.Contains(t, out, "encodeType: Person(string name,address wallet)\n")

	_, err = runAbitype(t, "eip712", "Mail(Mail next)")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runAbitype(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Abitype\nVersion: "), out)
}

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
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-abitype/abi"
	"github.com/ethereum/go-abitype/eip712"
)

var (
	kindFlag = &cli.StringFlag{
		Name:  "kind",
		Usage: "Kind of signature (function|event|error)",
		Value: "function",
	}
	primaryFlag = &cli.StringFlag{
		Name:  "primary",
		Usage: "Primary type to hash (defaults to the first struct)",
	}

	selectorCommand = &cli.Command{
		Action:    printSelector,
		Name:      "selector",
		Usage:     "Compute the selector or topic of a human-readable signature",
		ArgsUsage: "<signature>",
		Flags:     []cli.Flag{kindFlag},
		Description: `
The selector command canonicalizes a signature such as
"transfer(address to, uint amount)" and prints its 4-byte selector. Events
print the 32-byte topic, errors the 4-byte selector.`,
	}
	eip712Command = &cli.Command{
		Action:    printTypeHash,
		Name:      "eip712",
		Usage:     "Parse an EIP-712 encodeType string and compute its type hash",
		ArgsUsage: "<encodeType>",
		Flags:     []cli.Flag{primaryFlag},
		Description: `
The eip712 command parses a struct encoding such as
"Mail(Person from,Person to,string contents)Person(string name,address wallet)",
prints the canonical struct definitions and the hash of the primary type.`,
	}
)

func printSelector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need exactly one signature")
	}
	var (
		input = ctx.Args().First()
		sig   string
		id    []byte
	)
	switch kind := ctx.String(kindFlag.Name); kind {
	case "function":
		method, err := abi.ParseFunction(input)
		if err != nil {
			return err
		}
		sig, id = method.Sig, method.ID
	case "event":
		event, err := abi.ParseEvent(input)
		if err != nil {
			return err
		}
		sig, id = event.Sig, event.ID.Bytes()
	case "error":
		abiErr, err := abi.ParseError(input)
		if err != nil {
			return err
		}
		sel := abiErr.Selector()
		sig, id = abiErr.Sig, sel[:]
	default:
		return fmt.Errorf("unknown signature kind %q", kind)
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(id), sig)
	return nil
}

func printTypeHash(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need exactly one encodeType string")
	}
	encType, err := eip712.ParseEncodeType(ctx.Args().First())
	if err != nil {
		return err
	}
	types, err := encType.Types()
	if err != nil {
		return err
	}
	if err := types.Validate(); err != nil {
		return err
	}
	primary := ctx.String(primaryFlag.Name)
	if primary == "" {
		primary = encType.Components[0].Name
	}
	enc, err := types.EncodeType(primary)
	if err != nil {
		return err
	}
	hash, err := types.TypeHash(primary)
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	for _, component := range encType.Components {
		fmt.Fprintln(w, component.String())
	}
	fmt.Fprintf(w, "encodeType: %s\n", enc)
	fmt.Fprintf(w, "typeHash:   %s\n", hash.Hex())
	return nil
}

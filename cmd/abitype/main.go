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

// abitype is the command line interface of the Solidity ABI type parser.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-abitype/cmd/utils"
	"github.com/ethereum/go-abitype/internal/debug"
	"github.com/ethereum/go-abitype/internal/flags"
	"github.com/ethereum/go-abitype/internal/version"
)

const (
	clientIdentifier = "abitype" // Client identifier printed by the version command
)

var app = flags.NewApp("the Solidity ABI type specifier toolkit")

var versionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func init() {
	// Initialize the CLI app and start abitype
	app.Commands = []*cli.Command{
		parseCommand,
		checkCommand,
		selectorCommand,
		eip712Command,
		serveCommand,
		dumpConfigCommand,
		versionCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = flags.Merge(
		[]cli.Flag{configFileFlag},
		utils.ParserFlags,
		debug.Flags,
	)

	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVersion(ctx *cli.Context) error {
	fmt.Fprintln(ctx.App.Writer, strings.ToUpper(clientIdentifier[:1])+clientIdentifier[1:])
	for _, line := range version.Info() {
		fmt.Fprintln(ctx.App.Writer, line)
	}
	return nil
}

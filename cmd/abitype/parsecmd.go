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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ethereum/go-abitype/typeapi"
	"github.com/ethereum/go-abitype/typespec"
)

var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the parsed structure as JSON instead of the canonical form",
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of type specifiers checked in parallel (0 = number of CPUs)",
	}

	parseCommand = &cli.Command{
		Action:    parseTypes,
		Name:      "parse",
		Usage:     "Parse type specifiers and print their canonical form",
		ArgsUsage: "<type> [<type>...]",
		Flags:     []cli.Flag{jsonFlag},
		Description: `
The parse command validates each type specifier given on the command line and
prints its canonical form, e.g. "(uint, bytes4[])[2]" becomes
"(uint256,bytes4[])[2]". With --json the full structure is printed.`,
	}
	checkCommand = &cli.Command{
		Action:    checkTypes,
		Name:      "check",
		Usage:     "Validate files of type specifiers, one per line",
		ArgsUsage: "<file> [<file>...]",
		Flags:     []cli.Flag{workersFlag},
		Description: `
The check command reads type specifiers from the given files ("-" for standard
input), one per line. Empty lines and lines starting with '#' are ignored.
Every invalid line is reported and the command fails if any was found.`,
	}
)

func parseTypes(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("no type specifier given")
	}
	cache, _ := makeCache(ctx)
	for _, input := range ctx.Args().Slice() {
		spec, err := cache.Parse(input)
		if err != nil {
			return err
		}
		if !ctx.Bool(jsonFlag.Name) {
			fmt.Fprintln(ctx.App.Writer, spec.Canonical())
			continue
		}
		out, err := json.MarshalIndent(typeapi.NewSpecifierResult(spec), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, string(out))
	}
	return nil
}

// specLine is a type specifier read from a file.
type specLine struct {
	file  string
	line  int
	input string
}

func readSpecLines(file string, r io.Reader) ([]specLine, error) {
	var (
		lines   []specLine
		scanner = bufio.NewScanner(r)
		n       int
	)
	for scanner.Scan() {
		n++
		text := scanner.Text()
		if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, specLine{file: file, line: n, input: text})
	}
	return lines, scanner.Err()
}

func checkTypes(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("no input file given")
	}
	var lines []specLine
	for _, file := range ctx.Args().Slice() {
		var (
			read []specLine
			err  error
		)
		if file == "-" {
			read, err = readSpecLines("<stdin>", os.Stdin)
		} else {
			var f *os.File
			if f, err = os.Open(file); err != nil {
				return err
			}
			read, err = readSpecLines(file, f)
			f.Close()
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %v", file, err)
		}
		lines = append(lines, read...)
	}
	cache, _ := makeCache(ctx)
	failed := checkSpecLines(cache, lines, ctx.Int(workersFlag.Name))

	var nfail int
	for i, err := range failed {
		if err != nil {
			nfail++
			fmt.Fprintf(ctx.App.Writer, "%s:%d: %v\n", lines[i].file, lines[i].line, err)
		}
	}
	log.Info("Checked type specifiers", "total", len(lines), "invalid", nfail)
	if nfail > 0 {
		return fmt.Errorf("%d of %d type specifiers are invalid", nfail, len(lines))
	}
	return nil
}

// checkSpecLines parses all lines in parallel. Unlike ParseAll it does not
// stop at the first failure, the returned slice holds the error of every
// line.
func checkSpecLines(cache *typespec.Cache, lines []specLine, workers int) []error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var (
		errs = make([]error, len(lines))
		eg   errgroup.Group
	)
	eg.SetLimit(workers)
	for i := range lines {
		i := i
		eg.Go(func() error {
			_, errs[i] = cache.Parse(lines[i].input)
			return nil
		})
	}
	eg.Wait()
	return errs
}

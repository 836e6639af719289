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

// Package utils contains internal helper functions for abitype commands.
package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-abitype/internal/flags"
	"github.com/ethereum/go-abitype/typeapi"
	"github.com/ethereum/go-abitype/typespec"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are identical between the abitype subcommands.
var (
	// Parser settings
	MaxDepthFlag = &cli.IntFlag{
		Name:     "parser.maxdepth",
		Usage:    "Maximum tuple nesting depth",
		Value:    typespec.DefaultConfig.MaxDepth,
		Category: flags.ParserCategory,
	}
	MaxDimsFlag = &cli.IntFlag{
		Name:     "parser.maxdims",
		Usage:    "Maximum number of array suffixes on a single type",
		Value:    typespec.DefaultConfig.MaxDims,
		Category: flags.ParserCategory,
	}
	UncheckedFlag = &cli.BoolFlag{
		Name:     "parser.unchecked",
		Usage:    "Accept elementary types with invalid widths such as uint7",
		Category: flags.ParserCategory,
	}

	// Cache settings
	CacheSizeFlag = &cli.IntFlag{
		Name:     "cache.size",
		Usage:    "Number of parse results kept in memory",
		Value:    typespec.DefaultCacheSize,
		Category: flags.CacheCategory,
	}

	// HTTP RPC server settings
	HTTPListenAddrFlag = &cli.StringFlag{
		Name:     "http.addr",
		Usage:    "HTTP-RPC server listening interface",
		Value:    typeapi.DefaultConfig.HTTPHost,
		Category: flags.APICategory,
	}
	HTTPPortFlag = &cli.IntFlag{
		Name:     "http.port",
		Usage:    "HTTP-RPC server listening port",
		Value:    typeapi.DefaultConfig.HTTPPort,
		Category: flags.APICategory,
	}
	BatchRequestLimit = &cli.IntFlag{
		Name:     "rpc.batch-request-limit",
		Usage:    "Maximum number of requests in a batch",
		Value:    typeapi.DefaultConfig.BatchItemLimit,
		Category: flags.APICategory,
	}
	BatchResponseMaxSize = &cli.IntFlag{
		Name:     "rpc.batch-response-max-size",
		Usage:    "Maximum number of bytes returned from a batched call",
		Value:    typeapi.DefaultConfig.BatchResponseMaxSize,
		Category: flags.APICategory,
	}
)

var (
	// ParserFlags configure how type specifiers are parsed.
	ParserFlags = []cli.Flag{MaxDepthFlag, MaxDimsFlag, UncheckedFlag, CacheSizeFlag}

	// RPCFlags configure the HTTP JSON-RPC endpoint.
	RPCFlags = []cli.Flag{HTTPListenAddrFlag, HTTPPortFlag, BatchRequestLimit, BatchResponseMaxSize}
)

// SetParserConfig applies parser-related command line flags to the config.
func SetParserConfig(ctx *cli.Context, cfg *typespec.Config) {
	if ctx.IsSet(MaxDepthFlag.Name) {
		cfg.MaxDepth = ctx.Int(MaxDepthFlag.Name)
	}
	if ctx.IsSet(MaxDimsFlag.Name) {
		cfg.MaxDims = ctx.Int(MaxDimsFlag.Name)
	}
	if ctx.IsSet(UncheckedFlag.Name) {
		cfg.Unchecked = ctx.Bool(UncheckedFlag.Name)
	}
}

// SetCacheSize applies the cache size flag.
func SetCacheSize(ctx *cli.Context, size *int) {
	if ctx.IsSet(CacheSizeFlag.Name) {
		*size = ctx.Int(CacheSizeFlag.Name)
	}
}

// SetRPCConfig applies RPC-related command line flags to the config.
func SetRPCConfig(ctx *cli.Context, cfg *typeapi.Config) {
	if ctx.IsSet(HTTPListenAddrFlag.Name) {
		cfg.HTTPHost = ctx.String(HTTPListenAddrFlag.Name)
	}
	if ctx.IsSet(HTTPPortFlag.Name) {
		cfg.HTTPPort = ctx.Int(HTTPPortFlag.Name)
	}
	if ctx.IsSet(BatchRequestLimit.Name) {
		cfg.BatchItemLimit = ctx.Int(BatchRequestLimit.Name)
	}
	if ctx.IsSet(BatchResponseMaxSize.Name) {
		cfg.BatchResponseMaxSize = ctx.Int(BatchResponseMaxSize.Name)
	}
}

// Fatalf formats a message to standard error and exits the program.
// The message is also printed to standard output if standard error
// is redirected to a different file.
func Fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}

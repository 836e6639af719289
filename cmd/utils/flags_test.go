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

package utils

import (
	"flag"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-abitype/internal/flags"
	"github.com/ethereum/go-abitype/typeapi"
	"github.com/ethereum/go-abitype/typespec"
)

func newContext(t *testing.T, fs []cli.Flag, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range fs {
		if err := f.Apply(set); err != nil {
			t.Fatal(err)
		}
	}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestFlagNamesUnique(t *testing.T) {
	names := flags.FlagNames(flags.Merge(ParserFlags, RPCFlags))
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			t.Errorf("duplicate flag %q", names[i])
		}
	}
}

func TestSetParserConfig(t *testing.T) {
	ctx := newContext(t, ParserFlags, "--parser.maxdims", "4", "--parser.unchecked", "--cache.size", "16")

	cfg := typespec.Config{MaxDepth: 9}
	SetParserConfig(ctx, &cfg)
	if cfg.MaxDepth != 9 {
		t.Errorf("unset flag overrode MaxDepth: have %d, want 9", cfg.MaxDepth)
	}
	if cfg.MaxDims != 4 {
		t.Errorf("MaxDims mismatch: have %d, want 4", cfg.MaxDims)
	}
	if !cfg.Unchecked {
		t.Error("Unchecked not set")
	}
	size := typespec.DefaultCacheSize
	SetCacheSize(ctx, &size)
	if size != 16 {
		t.Errorf("cache size mismatch: have %d, want 16", size)
	}
}

func TestSetRPCConfig(t *testing.T) {
	ctx := newContext(t, RPCFlags, "--http.addr", "0.0.0.0", "--rpc.batch-request-limit", "5")

	cfg := typeapi.DefaultConfig
	SetRPCConfig(ctx, &cfg)
	if cfg.HTTPHost != "0.0.0.0" {
		t.Errorf("host mismatch: have %q", cfg.HTTPHost)
	}
	if cfg.HTTPPort != typeapi.DefaultConfig.HTTPPort {
		t.Errorf("unset flag overrode port: have %d", cfg.HTTPPort)
	}
	if cfg.BatchItemLimit != 5 {
		t.Errorf("batch limit mismatch: have %d, want 5", cfg.BatchItemLimit)
	}
	if cfg.BatchResponseMaxSize != typeapi.DefaultConfig.BatchResponseMaxSize {
		t.Errorf("unset flag overrode response size: have %d", cfg.BatchResponseMaxSize)
	}
}

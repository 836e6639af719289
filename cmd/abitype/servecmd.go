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
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-abitype/cmd/utils"
	"github.com/ethereum/go-abitype/typeapi"
)

var serveCommand = &cli.Command{
	Action:    serve,
	Name:      "serve",
	Usage:     "Serve the parser over HTTP JSON-RPC",
	ArgsUsage: " ",
	Flags:     utils.RPCFlags,
	Description: `
The serve command starts an HTTP JSON-RPC server exposing the abitype_parse,
abitype_canonicalize, abitype_selector and abitype_typeHash methods. It runs
until interrupted.`,
}

func serve(ctx *cli.Context) error {
	cache, cfg := makeCache(ctx)
	srv, err := typeapi.NewServer(cfg.RPC, cache)
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}
	defer srv.Stop()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	sig := <-sigc
	log.Info("Got interrupt, shutting down...", "signal", sig)
	return nil
}

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

package typeapi

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/ethereum/go-abitype/typespec"
)

// Config holds the settings of the HTTP JSON-RPC endpoint.
type Config struct {
	HTTPHost             string
	HTTPPort             int
	HTTPTimeouts         rpc.HTTPTimeouts
	BatchItemLimit       int
	BatchResponseMaxSize int
}

// DefaultConfig contains reasonable default settings.
var DefaultConfig = Config{
	HTTPHost:             "localhost",
	HTTPPort:             8645,
	HTTPTimeouts:         rpc.DefaultHTTPTimeouts,
	BatchItemLimit:       1000,
	BatchResponseMaxSize: 25 * 1000 * 1000,
}

// Endpoint resolves the listening address of the HTTP server.
func (c Config) Endpoint() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// NewRPCServer creates a JSON-RPC server with the API registered under
// Namespace.
func NewRPCServer(cfg Config, cache *typespec.Cache) (*rpc.Server, error) {
	srv := rpc.NewServer()
	srv.SetBatchLimits(cfg.BatchItemLimit, cfg.BatchResponseMaxSize)
	if err := srv.RegisterName(Namespace, NewAPI(cache)); err != nil {
		return nil, err
	}
	return srv, nil
}

// Server serves the API over HTTP.
type Server struct {
	cfg     Config
	handler *rpc.Server
	httpSrv *http.Server
	addr    net.Addr
}

// NewServer creates a server that is not listening yet.
func NewServer(cfg Config, cache *typespec.Cache) (*Server, error) {
	handler, err := NewRPCServer(cfg, cache)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, handler: handler}, nil
}

// Start opens the listener and serves requests in the background.
func (s *Server) Start() error {
	httpSrv, addr, err := startHTTPEndpoint(s.cfg.Endpoint(), s.cfg.HTTPTimeouts, s.handler)
	if err != nil {
		return err
	}
	s.httpSrv, s.addr = httpSrv, addr
	log.Info("HTTP server started", "endpoint", addr, "namespace", Namespace)
	return nil
}

// Addr returns the listening address, or nil before Start.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Stop shuts down the HTTP server and the RPC handler.
func (s *Server) Stop() {
	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.Warn("HTTP server shutdown failed", "err", err)
		}
		log.Info("HTTP server stopped", "endpoint", s.addr)
	}
	s.handler.Stop()
}

// startHTTPEndpoint starts the HTTP RPC endpoint.
func startHTTPEndpoint(endpoint string, timeouts rpc.HTTPTimeouts, handler http.Handler) (*http.Server, net.Addr, error) {
	// start the HTTP listener
	var (
		listener net.Listener
		err      error
	)
	if listener, err = net.Listen("tcp", endpoint); err != nil {
		return nil, nil, err
	}
	checkTimeouts(&timeouts)
	// Bundle and start the HTTP server
	httpSrv := &http.Server{
		Handler:           handler,
		ReadTimeout:       timeouts.ReadTimeout,
		ReadHeaderTimeout: timeouts.ReadHeaderTimeout,
		WriteTimeout:      timeouts.WriteTimeout,
		IdleTimeout:       timeouts.IdleTimeout,
	}
	go httpSrv.Serve(listener)
	return httpSrv, listener.Addr(), err
}

// checkTimeouts ensures that timeout values are meaningful
func checkTimeouts(timeouts *rpc.HTTPTimeouts) {
	if timeouts.ReadTimeout < time.Second {
		log.Warn("Sanitizing invalid HTTP read timeout", "provided", timeouts.ReadTimeout, "updated", rpc.DefaultHTTPTimeouts.ReadTimeout)
		timeouts.ReadTimeout = rpc.DefaultHTTPTimeouts.ReadTimeout
	}
	if timeouts.ReadHeaderTimeout < time.Second {
		log.Warn("Sanitizing invalid HTTP read header timeout", "provided", timeouts.ReadHeaderTimeout, "updated", rpc.DefaultHTTPTimeouts.ReadHeaderTimeout)
		timeouts.ReadHeaderTimeout = rpc.DefaultHTTPTimeouts.ReadHeaderTimeout
	}
	if timeouts.WriteTimeout < time.Second {
		log.Warn("Sanitizing invalid HTTP write timeout", "provided", timeouts.WriteTimeout, "updated", rpc.DefaultHTTPTimeouts.WriteTimeout)
		timeouts.WriteTimeout = rpc.DefaultHTTPTimeouts.WriteTimeout
	}
	if timeouts.IdleTimeout < time.Second {
		log.Warn("Sanitizing invalid HTTP idle timeout", "provided", timeouts.IdleTimeout, "updated", rpc.DefaultHTTPTimeouts.IdleTimeout)
		timeouts.IdleTimeout = rpc.DefaultHTTPTimeouts.IdleTimeout
	}
}

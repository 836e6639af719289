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

import (
	"github.com/ethereum/go-ethereum/common/lru"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
)

var (
	cacheHitMeter  = metrics.NewRegisteredCounter("typespec/cache/hit", nil)
	cacheMissMeter = metrics.NewRegisteredCounter("typespec/cache/miss", nil)
	cacheFailMeter = metrics.NewRegisteredCounter("typespec/cache/fail", nil)
)

// DefaultCacheSize is the number of parse results kept by NewCache when
// no size is given.
const DefaultCacheSize = 1024

type cacheEntry struct {
	spec TypeSpecifier
	err  error
}

// Cache memoizes parse results, failures included, keyed by the input
// text. Parsing is deterministic, so a cached result is always identical
// to a fresh one. It is safe for concurrent use.
type Cache struct {
	cfg     Config
	entries *lru.Cache[string, cacheEntry]
}

// NewCache creates a cache parsing with cfg and holding up to size results.
func NewCache(cfg Config, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{
		cfg:     cfg.withDefaults(),
		entries: lru.NewCache[string, cacheEntry](size),
	}
}

// Config returns the parser configuration of the cache.
func (c *Cache) Config() Config {
	return c.cfg
}

// Parse returns the cached result for input, parsing it on a miss.
func (c *Cache) Parse(input string) (TypeSpecifier, error) {
	if e, ok := c.entries.Get(input); ok {
		cacheHitMeter.Inc(1)
		return e.spec, e.err
	}
	cacheMissMeter.Inc(1)

	spec, err := c.cfg.Parse(input)
	if err != nil {
		cacheFailMeter.Inc(1)
		log.Trace("Rejected type specifier", "input", input, "err", err)
	}
	if evicted := c.entries.Add(input, cacheEntry{spec, err}); evicted {
		log.Trace("Evicted type specifier from cache", "size", c.entries.Len())
	}
	return spec, err
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops all cached results.
func (c *Cache) Purge() {
	c.entries.Purge()
}

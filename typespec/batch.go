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
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseAll parses every input concurrently under cfg and returns the
// results in input order. The first failure cancels the remaining work and
// is returned wrapped with the index of the offending input.
func (cfg Config) ParseAll(ctx context.Context, inputs []string) ([]TypeSpecifier, error) {
	var (
		out    = make([]TypeSpecifier, len(inputs))
		eg, gc = errgroup.WithContext(ctx)
	)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range inputs {
		i, input := i, input
		eg.Go(func() error {
			if err := gc.Err(); err != nil {
				return err
			}
			t, err := cfg.Parse(input)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			out[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

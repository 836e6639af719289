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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := NewCache(Config{}, 2)
	assert.Equal(t, DefaultConfig, c.Config())

	a, err := c.Parse("uint")
	require.NoError(t, err)
	b, err := c.Parse("uint")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 1, c.Len())

	// Failures are cached like successes.
	_, err = c.Parse("uint7")
	require.ErrorIs(t, err, ErrSemantic)
	_, err = c.Parse("uint7")
	require.ErrorIs(t, err, ErrSemantic)
	assert.Equal(t, 2, c.Len())

	_, err = c.Parse("address")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCacheUnchecked(t *testing.T) {
	c := NewCache(Config{Unchecked: true}, 0)
	spec, err := c.Parse("uint7")
	require.NoError(t, err)
	assert.Equal(t, "uint7", spec.Canonical())
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(DefaultConfig, 16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				input := fmt.Sprintf("(uint%d,bytes%d)[%d]", 8*(1+j%32), 1+j%32, 1+i)
				spec, err := c.Parse(input)
				if err != nil {
					t.Errorf("input %q: %v", input, err)
					return
				}
				if spec.Canonical() != input {
					t.Errorf("input %q: canonical %q", input, spec.Canonical())
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestParseAll(t *testing.T) {
	inputs := []string{"uint", "(bool,address)[]", "bytes32", "MyStruct"}
	specs, err := DefaultConfig.ParseAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, specs, len(inputs))
	for i, want := range []string{"uint256", "(bool,address)[]", "bytes32", "MyStruct"} {
		assert.Equal(t, want, specs[i].Canonical())
	}

	_, err = DefaultConfig.ParseAll(context.Background(), []string{"uint8", "uint7", "bool"})
	require.ErrorIs(t, err, ErrSemantic)
	assert.Contains(t, err.Error(), "input 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = DefaultConfig.ParseAll(ctx, []string{"uint8"})
	require.ErrorIs(t, err, context.Canceled)
}

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

package flags

import (
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-abitype/internal/version"
)

// NewApp creates an app with sane defaults.
func NewApp(usage string) *cli.App {
	vcs, _ := version.VCS()
	app := cli.NewApp()
	app.EnableBashCompletion = true
	app.Version = version.WithCommit(vcs.Commit, vcs.Date)
	app.Usage = usage
	app.Copyright = "Copyright 2026 The go-ethereum Authors"
	return app
}

// Merge merges the given flag slices.
func Merge(groups ...[]cli.Flag) []cli.Flag {
	var ret []cli.Flag
	for _, group := range groups {
		ret = append(ret, group...)
	}
	return ret
}

// FlagNames returns the sorted primary names of the given flags, used by
// tests to check for duplicate definitions.
func FlagNames(fs []cli.Flag) []string {
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Names()[0])
	}
	sort.Strings(names)
	return names
}

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

// Package version implements reading of build version information.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ethereum/go-abitype/version"
)

const ourPath = "github.com/ethereum/go-abitype" // Path to our module

// Semantic holds the textual version string for major.minor.patch.
var Semantic = fmt.Sprintf("%d.%d.%d", version.Major, version.Minor, version.Patch)

// WithMeta holds the textual version string including the metadata.
var WithMeta = func() string {
	v := Semantic
	if version.Meta != "" {
		v += "-" + version.Meta
	}
	return v
}()

// WithCommit appends the first eight characters of the commit and the
// commit date to the version string.
func WithCommit(gitCommit, gitDate string) string {
	vsn := WithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if (version.Meta != "stable") && (gitDate != "") {
		vsn += "-" + gitDate
	}
	return vsn
}

// Info returns the lines printed by the version command.
func Info() []string {
	lines := []string{"Version: " + WithMeta}
	if vcs, ok := VCS(); ok {
		lines = append(lines, "Git Commit: "+vcs.Commit)
		lines = append(lines, "Git Commit Date: "+vcs.Date)
		if vcs.Dirty {
			lines = append(lines, "Git Tree: dirty")
		}
	}
	lines = append(lines,
		"Architecture: "+runtime.GOARCH,
		"Go Version: "+runtime.Version(),
		"Operating System: "+runtime.GOOS,
	)
	return lines
}

// String renders Info on separate lines.
func String() string {
	return strings.Join(Info(), "\n")
}

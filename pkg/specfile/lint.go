// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/tonbi/pkg/tonbi"
)

// VersionError reports a declared version that is not semver.
type VersionError struct {
	Path    []string
	Version string
	Err     error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: version %q is not semver: %v", strings.Join(e.Path, " "), e.Version, e.Err)
}

func (e *VersionError) Unwrap() error { return e.Err }

// Lint returns every problem tonbi's Validate finds in cmd followed by each
// declared version that does not parse as semver. A nil result means clean.
func Lint(cmd *tonbi.Command) []error {
	var findings []error
	if err := cmd.Validate(); err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			findings = append(findings, joined.Unwrap()...)
		} else {
			findings = append(findings, err)
		}
	}
	lintVersions(cmd, nil, &findings)
	return findings
}

func lintVersions(cmd *tonbi.Command, parent []string, findings *[]error) {
	path := append(slices.Clip(parent), cmd.Name())
	if v := cmd.VersionString(); v != "" {
		if _, err := semver.NewVersion(v); err != nil {
			*findings = append(*findings, &VersionError{Path: path, Version: v, Err: err})
		}
	}
	for _, sub := range cmd.Subcommands() {
		lintVersions(sub, path, findings)
	}
}

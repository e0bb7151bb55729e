// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

import (
	"errors"
	"fmt"
	"strings"
)

// DuplicateError describes one problem found by Validate.
type DuplicateError struct {
	// Path is the command path, root first, of the offending level.
	Path []string
	// What is "arg", "short" or "subcommand".
	What string
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: duplicate %s %q", strings.Join(e.Path, " "), e.What, e.Name)
}

// ReservedShortError is returned by Validate for an arg whose short alias can
// never match because -h and -V are taken by help and version.
type ReservedShortError struct {
	Path  []string
	Arg   string
	Short rune
}

func (e *ReservedShortError) Error() string {
	return fmt.Sprintf("%s: arg %q uses reserved short -%c", strings.Join(e.Path, " "), e.Arg, e.Short)
}

// ReservedNameError is returned by Validate for an option named help or
// version. --help and --version are checked first, so it can never match.
type ReservedNameError struct {
	Path []string
	Arg  string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("%s: arg %q is shadowed by reserved --%s", strings.Join(e.Path, " "), e.Arg, e.Arg)
}

// ErrEmptyName is returned by Validate for a command or arg without a name.
var ErrEmptyName = errors.New("empty name")

// Validate walks the tree and reports every duplicate arg name, duplicate
// short alias, duplicate subcommand name, reserved short alias and empty
// name. Parse never calls it: duplicates are legal and the first declared
// arg wins.
func (c *Command) Validate() error {
	var errs []error
	c.validate(nil, &errs)
	return errors.Join(errs...)
}

func (c *Command) validate(parent []string, errs *[]error) {
	path := append(parent[:len(parent):len(parent)], c.name)
	if c.name == "" {
		*errs = append(*errs, fmt.Errorf("%s: command: %w", strings.Join(path, " "), ErrEmptyName))
	}

	names := make(map[string]bool)
	shorts := make(map[rune]bool)
	for _, a := range c.args {
		if a.Name == "" {
			*errs = append(*errs, fmt.Errorf("%s: arg: %w", strings.Join(path, " "), ErrEmptyName))
		} else if names[a.Name] {
			*errs = append(*errs, &DuplicateError{Path: path, What: "arg", Name: a.Name})
		}
		names[a.Name] = true
		if !a.Positional && (a.Name == "help" || a.Name == "version") {
			*errs = append(*errs, &ReservedNameError{Path: path, Arg: a.Name})
		}

		if a.Short == 0 || a.Positional {
			continue
		}
		if a.Short == 'h' || a.Short == 'V' {
			*errs = append(*errs, &ReservedShortError{Path: path, Arg: a.Name, Short: a.Short})
		}
		if shorts[a.Short] {
			*errs = append(*errs, &DuplicateError{Path: path, What: "short", Name: string(a.Short)})
		}
		shorts[a.Short] = true
	}

	subs := make(map[string]bool)
	for _, sub := range c.subcommands {
		if subs[sub.name] {
			*errs = append(*errs, &DuplicateError{Path: path, What: "subcommand", Name: sub.name})
		}
		subs[sub.name] = true
		sub.validate(path, errs)
	}
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

import (
	"fmt"
	"os"
	"strings"
)

// Reserved tokens, checked before any declared arg.
const (
	helpFlagLong     = "--help"
	helpFlagShort    = "-h"
	versionFlagLong  = "--version"
	versionFlagShort = "-V"
)

// Kind tells how a successful Parse ended.
type Kind int

const (
	// KindMatches means every token was consumed; Result.Matches is set.
	KindMatches Kind = iota
	// KindHelp means --help or -h was seen; Result.Text holds the help text.
	KindHelp
	// KindVersion means --version or -V was seen; Result.Text holds the
	// version line, or "" if the command declares no version.
	KindVersion
)

func (k Kind) String() string {
	switch k {
	case KindMatches:
		return "matches"
	case KindHelp:
		return "help"
	case KindVersion:
		return "version"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of a Parse that did not fail. Help and version
// requests are outcomes, not errors, so the host decides what to print and
// which exit code to use.
type Result struct {
	Kind Kind
	// Matches is the root of the matched chain. Only set for KindMatches.
	Matches *Matches
	// Text is the help or version output to show. Empty for KindMatches.
	Text string
	// Path holds the command names from the root to the level that
	// produced the outcome.
	Path []string
}

// osArgs is replaced in tests.
var osArgs = func() []string { return os.Args[1:] }

// ParseOS parses the process arguments, excluding the program name.
func (c *Command) ParseOS() (*Result, error) {
	return Parse(c, osArgs())
}

// Parse matches args against cmd, left to right. Any error at any level
// aborts the whole parse and is returned as is; no partial matches are
// returned with it.
func Parse(cmd *Command, args []string) (*Result, error) {
	return parseLevel(cmd, args, nil)
}

func parseLevel(cmd *Command, args []string, parent []string) (*Result, error) {
	path := append(parent[:len(parent):len(parent)], cmd.name)
	m := newMatches(cmd.name)
	positionals := cmd.positionals()
	next := 0 // cursor into positionals

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == helpFlagLong || arg == helpFlagShort:
			return &Result{Kind: KindHelp, Text: RenderHelp(cmd), Path: path}, nil

		case arg == versionFlagLong || arg == versionFlagShort:
			return &Result{Kind: KindVersion, Text: versionText(cmd), Path: path}, nil

		case strings.HasPrefix(arg, "--"):
			name := arg[len("--"):]
			a, ok := cmd.findLong(name)
			if !ok {
				return nil, &UnknownOptionError{Name: name, Command: cmd.name}
			}
			if !a.TakesValue {
				m.setFlag(a.Name)
				continue
			}
			if i+1 >= len(args) {
				return nil, &MissingOptionValueError{Name: a.Name, Command: cmd.name}
			}
			i++
			m.setValue(a.Name, args[i])

		case len(arg) > 1 && arg[0] == '-':
			// Each character is its own short option. Valued ones take the
			// next whole token, never the rest of the cluster.
			for _, r := range arg[1:] {
				a, ok := cmd.findShort(r)
				if !ok {
					return nil, &UnknownShortOptionError{Short: r, Command: cmd.name}
				}
				if !a.TakesValue {
					m.setFlag(a.Name)
					continue
				}
				if i+1 >= len(args) {
					return nil, &MissingOptionValueError{Name: a.Name, Command: cmd.name}
				}
				i++
				m.setValue(a.Name, args[i])
			}

		default:
			if sub := cmd.findSubcommand(arg); sub != nil {
				res, err := parseLevel(sub, args[i+1:], path)
				if err != nil {
					return nil, err
				}
				if res.Kind != KindMatches {
					return res, nil
				}
				m.subName, m.sub = sub.name, res.Matches
				if err := checkRequired(cmd, m); err != nil {
					return nil, err
				}
				return &Result{Kind: KindMatches, Matches: m, Path: res.Path}, nil
			}
			if next >= len(positionals) {
				return nil, &UnknownArgumentError{Token: arg, Command: cmd.name}
			}
			m.setValue(positionals[next].Name, arg)
			next++
		}
	}

	if err := checkRequired(cmd, m); err != nil {
		return nil, err
	}
	return &Result{Kind: KindMatches, Matches: m, Path: path}, nil
}

func checkRequired(cmd *Command, m *Matches) error {
	for _, a := range cmd.args {
		if a.Required && !m.IsPresent(a.Name) {
			return &MissingRequiredArgumentError{Name: a.Name, Command: cmd.name}
		}
	}
	return nil
}

func versionText(cmd *Command) string {
	if cmd.version == "" {
		return ""
	}
	return cmd.name + " " + cmd.version + "\n"
}

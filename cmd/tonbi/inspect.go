// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/yeetrun/tonbi/pkg/specfile"
	"github.com/yeetrun/tonbi/pkg/tonbi"
	"gopkg.in/yaml.v3"
)

// matchesView is the printable form of a tonbi.Matches chain.
type matchesView struct {
	Command    string            `json:"command" yaml:"command"`
	Values     map[string]string `json:"values,omitempty" yaml:"values,omitempty"`
	Flags      []string          `json:"flags,omitempty" yaml:"flags,omitempty"`
	Subcommand *matchesView      `json:"subcommand,omitempty" yaml:"subcommand,omitempty"`
}

func viewOf(m *tonbi.Matches) *matchesView {
	v := &matchesView{Command: m.Name()}
	for _, name := range m.Names() {
		if value, ok := m.ValueOf(name); ok {
			if v.Values == nil {
				v.Values = make(map[string]string)
			}
			v.Values[name] = value
		} else {
			v.Flags = append(v.Flags, name)
		}
	}
	slices.Sort(v.Flags)
	if _, sub, ok := m.Subcommand(); ok {
		v.Subcommand = viewOf(sub)
	}
	return v
}

func loadSpec(m *tonbi.Matches) (*tonbi.Command, error) {
	path, _ := m.ValueOf("spec")
	cmd, err := specfile.Load(path)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %s: command %q with %d subcommands", path, cmd.Name(), len(cmd.Subcommands()))
	return cmd, nil
}

func runParse(m *tonbi.Matches, args []string, w io.Writer) error {
	format, ok := m.ValueOf("format")
	if !ok {
		format = "yaml"
	}
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
	cmd, err := loadSpec(m)
	if err != nil {
		return err
	}
	log.Printf("parsing %q", args)
	res, err := tonbi.Parse(cmd, args)
	if err != nil {
		return err
	}
	if res.Kind != tonbi.KindMatches {
		log.Printf("%s requested at %s", res.Kind, strings.Join(res.Path, " "))
		_, err := io.WriteString(w, res.Text)
		return err
	}

	view := viewOf(res.Matches)
	switch format {
	case "json":
		b, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	default:
		b, err := yaml.Marshal(view)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
}

func runHelp(m *tonbi.Matches, w io.Writer) error {
	cmd, err := loadSpec(m)
	if err != nil {
		return err
	}
	if path, ok := m.ValueOf("command"); ok {
		for _, name := range strings.Fields(path) {
			next := findSubcommand(cmd, name)
			if next == nil {
				return fmt.Errorf("%s has no subcommand %q", cmd.Name(), name)
			}
			cmd = next
		}
	}
	return tonbi.WriteHelp(w, cmd)
}

func findSubcommand(cmd *tonbi.Command, name string) *tonbi.Command {
	for _, sub := range cmd.Subcommands() {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

// lintError is returned when lint finds problems.
type lintError struct{ count int }

func (e *lintError) Error() string {
	if e.count == 1 {
		return "1 problem found"
	}
	return fmt.Sprintf("%d problems found", e.count)
}

func (e *lintError) ErrorPrefix() string { return "lint:" }

func runLint(m *tonbi.Matches, w io.Writer) error {
	cmd, err := loadSpec(m)
	if err != nil {
		return err
	}
	findings := specfile.Lint(cmd)
	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, "no problems found")
		return err
	}
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return &lintError{count: len(findings)}
}

func runConvert(m *tonbi.Matches, w io.Writer) error {
	to, _ := m.ValueOf("to")
	cmd, err := loadSpec(m)
	if err != nil {
		return err
	}
	b, err := specfile.Encode(cmd, specfile.Format(to))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

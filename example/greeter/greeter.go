// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yeetrun/tonbi/pkg/cli"
	"github.com/yeetrun/tonbi/pkg/tonbi"
)

func newCommand() *tonbi.Command {
	return tonbi.NewCommand("greeter").
		Description("A simple greeting CLI application").
		Arg(tonbi.Arg{
			Name:        "name",
			Description: "Name of the person to greet",
			Short:       'n',
			TakesValue:  true,
		}).
		Arg(tonbi.Arg{
			Name:        "enthusiastic",
			Description: "Add excitement to the greeting",
			Short:       'e',
		}).
		Subcommand(tonbi.NewCommand("farewell").
			Description("Say goodbye instead of hello").
			Arg(tonbi.Arg{
				Name:        "name",
				Description: "Name of the person to bid farewell",
				Short:       'n',
				TakesValue:  true,
			}))
}

func run(m *tonbi.Matches, w io.Writer) error {
	if sub, sm, ok := m.Subcommand(); ok && sub == "farewell" {
		_, err := fmt.Fprintf(w, "Goodbye, %s!\n", valueOr(sm, "name", "friend"))
		return err
	}
	name := valueOr(m, "name", "world")
	var err error
	if m.IsPresent("enthusiastic") {
		_, err = fmt.Fprintf(w, "Hello, %s!!!\n", name)
	} else {
		_, err = fmt.Fprintf(w, "Hello, %s.\n", name)
	}
	return err
}

func valueOr(m *tonbi.Matches, name, def string) string {
	if v, ok := m.ValueOf(name); ok {
		return v
	}
	return def
}

func main() {
	cli.Main(newCommand(), func(m *tonbi.Matches) error {
		return run(m, os.Stdout)
	})
}

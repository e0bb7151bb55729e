// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tonbi declares command trees and parses argument lists against them.
//
// A host builds a Command tree once, hands it the process arguments and
// queries the resulting Matches:
//
//	app := tonbi.NewCommand("greeter").
//	    Description("A simple greeting CLI application").
//	    Arg(tonbi.Arg{Name: "name", Short: 'n', TakesValue: true}).
//	    Arg(tonbi.Arg{Name: "enthusiastic", Short: 'e'}).
//	    Subcommand(tonbi.NewCommand("farewell").
//	        Arg(tonbi.Arg{Name: "name", Short: 'n', TakesValue: true}))
//
//	res, err := app.Parse(os.Args[1:])
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(1)
//	}
//	if res.Kind != tonbi.KindMatches {
//	    fmt.Print(res.Text) // help or version
//	    return
//	}
//	if sub, m, ok := res.Matches.Subcommand(); ok && sub == "farewell" {
//	    name, _ := m.ValueOf("name")
//	    ...
//	}
//
// # Token Grammar
//
//   - Flags: --name, or -a; short flags cluster as -abc
//   - Valued options: --name value, -n value (always the next whole token)
//   - Positionals: bare tokens fill positional args in declaration order
//   - Subcommands: a bare token naming a child; every later token belongs to it
//   - --help/-h and --version/-V are checked before everything else and end
//     parsing with a KindHelp or KindVersion result
//
// Lookups only consider the current level's own args. Duplicate names or
// shorts are not rejected; the first declared arg wins. Command.Validate
// reports them for hosts that want to fail fast.
package tonbi

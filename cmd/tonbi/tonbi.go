// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tonbi inspects tonbi spec files: it parses sample argument lists
// against them, renders their help, lints and converts them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/yeetrun/tonbi/pkg/cli"
	"github.com/yeetrun/tonbi/pkg/tonbi"
)

// version is set by the linker.
var version = "dev"

var errExtraArgs = errors.New("arguments after -- are only accepted by parse")

func newCommand() *tonbi.Command {
	specArg := tonbi.NewArg("spec", "Spec file (.toml, .yaml, .yml)").SetRequired(true).SetPositional()
	return tonbi.NewCommand("tonbi").
		Version(version).
		Description("Inspect command-line spec files").
		Arg(tonbi.NewArg("verbose", "Log what is being done to stderr").SetShort('v')).
		Subcommand(tonbi.NewCommand("parse").
			Description("Parse the arguments after -- against a spec file").
			Arg(tonbi.NewArg("format", "Output format: yaml or json").SetShort('f').SetTakesValue()).
			Arg(specArg)).
		Subcommand(tonbi.NewCommand("help").
			Description("Print the help text of a spec file").
			Arg(tonbi.NewArg("command", "Subcommand path, space separated").SetShort('c').SetTakesValue()).
			Arg(specArg)).
		Subcommand(tonbi.NewCommand("lint").
			Description("Report duplicate names, reserved shorts and non-semver versions").
			Arg(specArg)).
		Subcommand(tonbi.NewCommand("convert").
			Description("Re-encode a spec file as toml or yaml").
			Arg(tonbi.NewArg("to", "Target format: toml or yaml").SetRequired(true).SetShort('t').SetTakesValue()).
			Arg(specArg))
}

// splitArgs splits args at the first "--". found reports whether "--" was
// present, so "parse spec --" can mean an empty argument list.
func splitArgs(args []string) (own, rest []string, found bool) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}

func run(args []string, stdout, stderr io.Writer) int {
	own, rest, found := splitArgs(args)
	opts := cli.Options{Stdout: stdout, Stderr: stderr}
	res, code := cli.Run(newCommand(), own, opts)
	if res == nil || res.Kind != tonbi.KindMatches {
		return code
	}

	m := res.Matches
	log.SetOutput(io.Discard)
	if m.IsPresent("verbose") {
		log.SetOutput(stderr)
	}

	sub, sm, ok := m.Subcommand()
	if !ok {
		if err := tonbi.WriteHelp(stdout, newCommand()); err != nil {
			cli.PrintError(stderr, err, opts.Color)
			return cli.ExitError
		}
		return cli.ExitOK
	}
	if found && sub != "parse" {
		cli.PrintError(stderr, errExtraArgs, opts.Color)
		return cli.ExitError
	}

	var err error
	switch sub {
	case "parse":
		err = runParse(sm, rest, stdout)
	case "help":
		err = runHelp(sm, stdout)
	case "lint":
		err = runLint(sm, stdout)
	case "convert":
		err = runConvert(sm, stdout)
	default:
		err = fmt.Errorf("unhandled subcommand %q", sub)
	}
	if err != nil {
		cli.PrintError(stderr, err, opts.Color)
		return cli.ExitError
	}
	return cli.ExitOK
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tonbi: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yeetrun/tonbi/pkg/cli"
	"github.com/yeetrun/tonbi/pkg/fileutil"
	"github.com/yeetrun/tonbi/pkg/tonbi"
)

var errNoSubcommand = errors.New("no subcommand was used")

func newCommand() *tonbi.Command {
	return tonbi.NewCommand("fileutil").
		Version("1.0").
		Description("A simple file utility").
		Subcommand(tonbi.NewCommand("cat").
			Description("Display file contents").
			Arg(tonbi.NewArg("file", "File to display").SetRequired(true).SetShort('f').SetTakesValue())).
		Subcommand(tonbi.NewCommand("copy").
			Description("Copy a file").
			Arg(tonbi.NewArg("source", "Source file").SetRequired(true).SetPositional()).
			Arg(tonbi.NewArg("destination", "Destination file").SetRequired(true).SetPositional())).
		Subcommand(tonbi.NewCommand("rename").
			Description("Rename a file").
			Arg(tonbi.NewArg("old", "Old file name").SetRequired(true).SetPositional()).
			Arg(tonbi.NewArg("new", "New file name").SetRequired(true).SetPositional()))
}

func run(m *tonbi.Matches, w io.Writer) error {
	sub, sm, ok := m.Subcommand()
	if !ok {
		return errNoSubcommand
	}
	// Required args are enforced by the parser, so the values are present.
	switch sub {
	case "cat":
		file, _ := sm.ValueOf("file")
		if _, err := fmt.Fprintf(w, "Displaying contents of file: %s\n", file); err != nil {
			return err
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		_, err = fmt.Fprintln(w, string(content))
		return err
	case "copy":
		src, _ := sm.ValueOf("source")
		dst, _ := sm.ValueOf("destination")
		same, err := fileutil.Identical(src, dst)
		if err != nil {
			return err
		}
		if same {
			_, err = fmt.Fprintln(w, "Files are already identical")
			return err
		}
		if err := fileutil.CopyFile(src, dst); err != nil {
			return fmt.Errorf("copying file: %w", err)
		}
		_, err = fmt.Fprintln(w, "File copied successfully")
		return err
	case "rename":
		oldName, _ := sm.ValueOf("old")
		newName, _ := sm.ValueOf("new")
		if err := os.Rename(oldName, newName); err != nil {
			return fmt.Errorf("renaming file: %w", err)
		}
		_, err := fmt.Fprintln(w, "File renamed successfully")
		return err
	}
	return errNoSubcommand
}

func main() {
	cli.Main(newCommand(), func(m *tonbi.Matches) error {
		return run(m, os.Stdout)
	})
}

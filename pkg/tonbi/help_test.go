// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

import (
	"bytes"
	"errors"
	"testing"
)

func TestRenderHelp(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{
			"greeter",
			greeterCommand(),
			`Usage: greeter [OPTIONS] [SUBCOMMAND]

A simple greeting CLI application

Options:
    -n, --name <name>    Name of the person to greet
    -e, --enthusiastic    Add excitement to the greeting

Subcommands:
    farewell    Say goodbye instead of hello

`,
		},
		{
			"subcommand",
			greeterCommand().subcommands[0],
			`Usage: farewell [OPTIONS] [SUBCOMMAND]

Say goodbye instead of hello

Options:
    -n, --name <name>    Name of the person to bid farewell

`,
		},
		{
			"positionals and long-only",
			fileutilCommand().subcommands[1],
			`Usage: copy [OPTIONS] [SUBCOMMAND]

Copy a file

Options:
    <source>    Source file
    <destination>    Destination file
    -F, --force    Overwrite
    -m, --mode <mode>    File mode

`,
		},
		{
			"root keeps subcommand order",
			fileutilCommand(),
			`Usage: fileutil [OPTIONS] [SUBCOMMAND]

A simple file utility

Options:
    -v, --verbose    Print more

Subcommands:
    cat    Display file contents
    copy    Copy a file

`,
		},
		{
			"bare command",
			NewCommand("bare"),
			"Usage: bare [OPTIONS] [SUBCOMMAND]\n\n",
		},
		{
			"entries without description have no trailing spaces",
			NewCommand("x").Arg(Arg{Name: "dry-run"}).Arg(Arg{Name: "out", TakesValue: true}),
			"Usage: x [OPTIONS] [SUBCOMMAND]\n\nOptions:\n    --dry-run\n    --out <out>\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderHelp(tt.cmd); got != tt.want {
				t.Errorf("RenderHelp() = %q\nwant %q", got, tt.want)
			}
			if got := tt.cmd.Help(); got != tt.want {
				t.Errorf("Help() = %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestRenderHelpDeterministic(t *testing.T) {
	cmd := fileutilCommand()
	first := RenderHelp(cmd)
	for i := 0; i < 10; i++ {
		if got := RenderHelp(cmd); got != first {
			t.Fatalf("RenderHelp() changed between calls:\n%s\n%s", first, got)
		}
	}
}

func TestWriteHelp(t *testing.T) {
	var buf bytes.Buffer
	cmd := greeterCommand()
	if err := WriteHelp(&buf, cmd); err != nil {
		t.Fatalf("WriteHelp() error = %v", err)
	}
	if buf.String() != RenderHelp(cmd) {
		t.Errorf("WriteHelp() wrote %q, want %q", buf.String(), RenderHelp(cmd))
	}

	errWrite := errors.New("write failed")
	if err := WriteHelp(failWriter{errWrite}, cmd); !errors.Is(err, errWrite) {
		t.Errorf("WriteHelp() error = %v, want %v", err, errWrite)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

import (
	"fmt"
	"io"
	"strings"
)

// helpIndent and helpSeparator lay out Options and Subcommands entries.
// There is no column alignment.
const (
	helpIndent    = "    "
	helpSeparator = "    "
)

// RenderHelp returns the help text for cmd. The output depends only on cmd
// and keeps declaration order.
func RenderHelp(cmd *Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s [OPTIONS] [SUBCOMMAND]\n\n", cmd.name)

	if cmd.description != "" {
		b.WriteString(cmd.description)
		b.WriteString("\n\n")
	}

	if len(cmd.args) > 0 {
		b.WriteString("Options:\n")
		for _, a := range cmd.args {
			writeHelpLine(&b, a.display(), a.Description)
		}
		b.WriteString("\n")
	}

	if len(cmd.subcommands) > 0 {
		b.WriteString("Subcommands:\n")
		for _, sub := range cmd.subcommands {
			writeHelpLine(&b, sub.name, sub.description)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// writeHelpLine writes one entry. The separator is dropped when there is no
// description, so lines never end in spaces.
func writeHelpLine(b *strings.Builder, name, description string) {
	b.WriteString(helpIndent + name)
	if description != "" {
		b.WriteString(helpSeparator + description)
	}
	b.WriteString("\n")
}

// WriteHelp writes the help text for cmd to w.
func WriteHelp(w io.Writer, cmd *Command) error {
	_, err := io.WriteString(w, RenderHelp(cmd))
	return err
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

// Command is one level of a command tree. It owns its args and its
// subcommands. Build it once with the chaining methods, then treat it as
// read-only; Parse and RenderHelp never modify it.
type Command struct {
	name        string
	description string
	version     string
	args        []Arg
	subcommands []*Command
}

// NewCommand returns an empty command named name.
func NewCommand(name string) *Command {
	return &Command{name: name}
}

// Description sets the text shown under the usage line.
func (c *Command) Description(s string) *Command {
	c.description = s
	return c
}

// Version sets the string reported for --version.
func (c *Command) Version(s string) *Command {
	c.version = s
	return c
}

// Arg appends a to the command's args.
func (c *Command) Arg(a Arg) *Command {
	c.args = append(c.args, a)
	return c
}

// Subcommand appends sub as a child of c. c takes ownership of sub.
func (c *Command) Subcommand(sub *Command) *Command {
	c.subcommands = append(c.subcommands, sub)
	return c
}

func (c *Command) Name() string          { return c.name }
func (c *Command) About() string         { return c.description }
func (c *Command) VersionString() string { return c.version }

// Args returns a copy of the declared args in declaration order.
func (c *Command) Args() []Arg {
	return append([]Arg(nil), c.args...)
}

// Subcommands returns the children in declaration order.
func (c *Command) Subcommands() []*Command {
	return append([]*Command(nil), c.subcommands...)
}

// Parse is shorthand for Parse(c, args).
func (c *Command) Parse(args []string) (*Result, error) {
	return Parse(c, args)
}

// Help is shorthand for RenderHelp(c).
func (c *Command) Help() string {
	return RenderHelp(c)
}

func (c *Command) findLong(name string) (Arg, bool) {
	for _, a := range c.args {
		if !a.Positional && a.Name == name {
			return a, true
		}
	}
	return Arg{}, false
}

func (c *Command) findShort(r rune) (Arg, bool) {
	for _, a := range c.args {
		if !a.Positional && a.Short != 0 && a.Short == r {
			return a, true
		}
	}
	return Arg{}, false
}

func (c *Command) findSubcommand(name string) *Command {
	for _, sub := range c.subcommands {
		if sub.name == name {
			return sub
		}
	}
	return nil
}

func (c *Command) positionals() []Arg {
	var out []Arg
	for _, a := range c.args {
		if a.Positional {
			out = append(out, a)
		}
	}
	return out
}

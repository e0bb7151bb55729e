// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

// Arg describes one flag, valued option, or positional value of a Command.
type Arg struct {
	// Name is the key the arg is stored under in Matches and the long
	// option spelling (--name). It should be unique within its command.
	Name        string
	Description string
	// Required args that are absent after parsing a level produce a
	// MissingRequiredArgumentError.
	Required bool
	// TakesValue makes the option consume the following token as its value.
	TakesValue bool
	// Short is the optional single-character alias (-s). Zero means none.
	Short rune
	// Positional args are filled by bare tokens in declaration order
	// instead of by --name or -s.
	Positional bool
}

// NewArg returns an optional presence-only flag.
func NewArg(name, description string) Arg {
	return Arg{Name: name, Description: description}
}

// SetRequired returns a copy of a with Required set to v.
func (a Arg) SetRequired(v bool) Arg {
	a.Required = v
	return a
}

// SetShort returns a copy of a with the short alias c.
func (a Arg) SetShort(c rune) Arg {
	a.Short = c
	return a
}

// SetTakesValue returns a copy of a that consumes a value.
func (a Arg) SetTakesValue() Arg {
	a.TakesValue = true
	return a
}

// SetPositional returns a copy of a that is matched by position.
func (a Arg) SetPositional() Arg {
	a.Positional = true
	a.TakesValue = true
	return a
}

// display is the form shown in the Options block of the help text.
func (a Arg) display() string {
	if a.Positional {
		return "<" + a.Name + ">"
	}
	s := "--" + a.Name
	if a.Short != 0 {
		s = "-" + string(a.Short) + ", " + s
	}
	if a.TakesValue {
		s += " <" + a.Name + ">"
	}
	return s
}

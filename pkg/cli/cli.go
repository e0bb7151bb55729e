// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli turns tonbi parse outcomes into process behavior: what is
// printed where, and which exit code is used.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/tonbi/pkg/tonbi"
	"golang.org/x/term"
)

// Exit codes used by Run and Main.
const (
	ExitOK    = 0
	ExitError = 1
)

// Options controls where Run writes.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Color forces the colored "Error:" prefix on or off. When nil it is
	// used only if Stderr is a terminal and NO_COLOR is unset.
	Color *bool
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Run parses args against cmd. Help and version text go to Stdout with
// ExitOK; parse errors are printed as "Error: <msg>" to Stderr with
// ExitError and a nil result.
func Run(cmd *tonbi.Command, args []string, opts Options) (*tonbi.Result, int) {
	opts = opts.withDefaults()
	res, err := tonbi.Parse(cmd, args)
	if err != nil {
		PrintError(opts.Stderr, err, opts.Color)
		return nil, ExitError
	}
	switch res.Kind {
	case tonbi.KindHelp, tonbi.KindVersion:
		if res.Text != "" {
			if _, err := io.WriteString(opts.Stdout, res.Text); err != nil {
				PrintError(opts.Stderr, err, opts.Color)
				return res, ExitError
			}
		}
	}
	return res, ExitOK
}

// HandlerFunc receives the matches of a successful parse.
type HandlerFunc func(m *tonbi.Matches) error

// exit is replaced in tests.
var exit = os.Exit

// Main runs cmd against the process arguments and exits. handler is only
// called for a KindMatches outcome; an error it returns is reported like a
// parse error.
func Main(cmd *tonbi.Command, handler HandlerFunc) {
	exit(run(cmd, os.Args[1:], handler, Options{}))
}

func run(cmd *tonbi.Command, args []string, handler HandlerFunc, opts Options) int {
	opts = opts.withDefaults()
	res, code := Run(cmd, args, opts)
	if res == nil || res.Kind != tonbi.KindMatches {
		return code
	}
	if err := handler(res.Matches); err != nil {
		PrintError(opts.Stderr, err, opts.Color)
		return ExitError
	}
	return ExitOK
}

// ErrorPrefixer lets an error replace the default "Error:" prefix.
type ErrorPrefixer interface {
	ErrorPrefix() string
}

// PrintError writes err to w as "Error: <msg>". useColor follows the same
// rules as Options.Color.
func PrintError(w io.Writer, err error, useColor *bool) {
	if err == nil {
		return
	}
	prefix := "Error:"
	var p ErrorPrefixer
	if errors.As(err, &p) {
		prefix = p.ErrorPrefix()
	}
	c := color.New(color.FgRed, color.Bold)
	if colorEnabled(w, useColor) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprint(w, prefix)
	fmt.Fprintf(w, " %v\n", err)
}

// isTerminalFn is replaced in tests.
var isTerminalFn = term.IsTerminal

func colorEnabled(w io.Writer, force *bool) bool {
	if force != nil {
		return *force
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminalFn(int(f.Fd()))
}

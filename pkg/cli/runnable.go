// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/tonbi/pkg/tonbi"
)

// Runnable is a program whose arguments are declared as the fields of a
// struct. MainRunnable fills the fields from the command line and then calls
// Run.
//
// Fields are read with these tags:
//
//	Name    string `flag:"name" short:"n" help:"Who to greet" required:"true"`
//	Loud    bool   `short:"l" help:"Shout"`
//	Count   int    `flag:"count" help:"Times to repeat"`
//	Message string `pos:"0" help:"Text to print"`
//	Extra   string `pos:"1?" help:"Optional second value"`
//
// The flag name defaults to the lowercased field name. A bool field is a
// presence flag; string and int fields take a value. A pos tag makes the
// field positional, ordered by its number; positionals are required unless
// the number ends in "?". Fields tagged flag:"-" and unexported fields are
// ignored.
//
// If the value also has a Description() string or Version() string method,
// they set the command's description and version.
type Runnable interface {
	Run() error
}

// ValueError is returned by Bind when a value cannot be stored in its field.
type ValueError struct {
	Arg   string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Arg, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

type boundField struct {
	index int
	pos   int
	arg   tonbi.Arg
}

func fieldsOf(r Runnable) (reflect.Value, []boundField, error) {
	v := reflect.ValueOf(r)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("runnable must be a non-nil pointer to a struct, got %T", r)
	}
	v = v.Elem()
	t := v.Type()

	var options, positionals []boundField
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("flag") == "-" {
			continue
		}

		name := field.Tag.Get("flag")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		arg := tonbi.NewArg(name, field.Tag.Get("help")).
			SetRequired(field.Tag.Get("required") == "true")

		switch field.Type.Kind() {
		case reflect.Bool:
		case reflect.String, reflect.Int:
			arg = arg.SetTakesValue()
		default:
			return reflect.Value{}, nil, fmt.Errorf("field %s: unsupported type %s", field.Name, field.Type)
		}

		if short := field.Tag.Get("short"); short != "" {
			c, size := utf8.DecodeRuneInString(short)
			if size != len(short) || c == '-' {
				return reflect.Value{}, nil, fmt.Errorf("field %s: short %q must be a single character", field.Name, short)
			}
			arg = arg.SetShort(c)
		}

		posTag, ok := field.Tag.Lookup("pos")
		if !ok {
			options = append(options, boundField{index: i, arg: arg})
			continue
		}
		if field.Type.Kind() == reflect.Bool {
			return reflect.Value{}, nil, fmt.Errorf("field %s: positional field cannot be bool", field.Name)
		}
		optional := strings.HasSuffix(posTag, "?")
		pos, err := strconv.Atoi(strings.TrimSuffix(posTag, "?"))
		if err != nil {
			return reflect.Value{}, nil, fmt.Errorf("field %s: invalid pos tag %q", field.Name, posTag)
		}
		arg = arg.SetPositional().SetRequired(!optional)
		positionals = append(positionals, boundField{index: i, pos: pos, arg: arg})
	}

	slices.SortStableFunc(positionals, func(a, b boundField) int { return a.pos - b.pos })
	return v, append(options, positionals...), nil
}

// CommandFor builds a command named name from the fields of r. Options come
// first in field order, then positionals in pos order.
func CommandFor(name string, r Runnable) (*tonbi.Command, error) {
	_, fields, err := fieldsOf(r)
	if err != nil {
		return nil, err
	}
	cmd := tonbi.NewCommand(name)
	if d, ok := r.(interface{ Description() string }); ok {
		cmd.Description(d.Description())
	}
	if v, ok := r.(interface{ Version() string }); ok {
		cmd.Version(v.Version())
	}
	for _, f := range fields {
		cmd.Arg(f.arg)
	}
	return cmd, nil
}

// Bind stores the matched values in the fields of r. Fields whose arg was not
// matched keep their current value, so defaults can be set before parsing.
func Bind(m *tonbi.Matches, r Runnable) error {
	v, fields, err := fieldsOf(r)
	if err != nil {
		return err
	}
	for _, f := range fields {
		field := v.Field(f.index)
		switch field.Kind() {
		case reflect.Bool:
			if m.IsPresent(f.arg.Name) {
				field.SetBool(true)
			}
		case reflect.String:
			if s, ok := m.ValueOf(f.arg.Name); ok {
				field.SetString(s)
			}
		case reflect.Int:
			s, ok := m.ValueOf(f.arg.Name)
			if !ok {
				continue
			}
			n, err := strconv.ParseInt(s, 10, 0)
			if err != nil {
				return &ValueError{Arg: f.arg.Name, Value: s, Err: err}
			}
			field.SetInt(n)
		}
	}
	return nil
}

// MainRunnable builds a command named name from r, fills r from the process
// arguments, calls r.Run and exits. Help, version and errors are handled as
// in Main.
func MainRunnable(name string, r Runnable) {
	exit(runRunnable(name, r, os.Args[1:], Options{}))
}

func runRunnable(name string, r Runnable, args []string, opts Options) int {
	opts = opts.withDefaults()
	cmd, err := CommandFor(name, r)
	if err != nil {
		PrintError(opts.Stderr, err, opts.Color)
		return ExitError
	}
	return run(cmd, args, func(m *tonbi.Matches) error {
		if err := Bind(m, r); err != nil {
			return err
		}
		return r.Run()
	}, opts)
}

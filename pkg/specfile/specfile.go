// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package specfile loads tonbi command trees declared in TOML or YAML.
package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/tonbi/pkg/tonbi"
	"gopkg.in/yaml.v3"
)

// Format is a spec file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format or file extension that is not
// TOML or YAML.
var ErrUnknownFormat = errors.New("unknown spec file format")

// CommandSpec is the file form of a tonbi.Command.
type CommandSpec struct {
	Name        string        `toml:"name" yaml:"name"`
	Description string        `toml:"description,omitempty" yaml:"description,omitempty"`
	Version     string        `toml:"version,omitempty" yaml:"version,omitempty"`
	Args        []ArgSpec     `toml:"args,omitempty" yaml:"args,omitempty"`
	Subcommands []CommandSpec `toml:"subcommands,omitempty" yaml:"subcommands,omitempty"`
}

// ArgSpec is the file form of a tonbi.Arg. Short is a one-character string.
type ArgSpec struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Short       string `toml:"short,omitempty" yaml:"short,omitempty"`
	Required    bool   `toml:"required,omitempty" yaml:"required,omitempty"`
	TakesValue  bool   `toml:"takes_value,omitempty" yaml:"takes_value,omitempty"`
	Positional  bool   `toml:"positional,omitempty" yaml:"positional,omitempty"`
}

// FieldError reports an invalid field in a spec file.
type FieldError struct {
	Path   []string // command path, root first
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", strings.Join(e.Path, " "), e.Field, e.Value, e.Reason)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and decodes the spec file at path.
func Load(path string) (*tonbi.Command, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cmd, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cmd, nil
}

// Decode decodes data and builds the command tree. Unknown keys are errors.
func Decode(data []byte, format Format) (*tonbi.Command, error) {
	spec, err := DecodeSpec(data, format)
	if err != nil {
		return nil, err
	}
	return spec.Build()
}

// DecodeSpec decodes data without building a command.
func DecodeSpec(data []byte, format Format) (*CommandSpec, error) {
	var spec CommandSpec
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &spec)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes like an empty TOML file; Build reports
		// the missing name.
		if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &spec, nil
}

// Build converts s into a command tree.
func (s *CommandSpec) Build() (*tonbi.Command, error) {
	return s.build(nil)
}

func (s *CommandSpec) build(parent []string) (*tonbi.Command, error) {
	path := append(slices.Clip(parent), s.Name)
	if s.Name == "" {
		return nil, &FieldError{Path: path, Field: "name", Reason: "must not be empty"}
	}
	cmd := tonbi.NewCommand(s.Name).Description(s.Description).Version(s.Version)
	for _, a := range s.Args {
		arg, err := a.toArg(path)
		if err != nil {
			return nil, err
		}
		cmd.Arg(arg)
	}
	for i := range s.Subcommands {
		sub, err := s.Subcommands[i].build(path)
		if err != nil {
			return nil, err
		}
		cmd.Subcommand(sub)
	}
	return cmd, nil
}

func (a ArgSpec) toArg(path []string) (tonbi.Arg, error) {
	if a.Name == "" {
		return tonbi.Arg{}, &FieldError{Path: path, Field: "arg name", Reason: "must not be empty"}
	}
	arg := tonbi.Arg{
		Name:        a.Name,
		Description: a.Description,
		Required:    a.Required,
		TakesValue:  a.TakesValue || a.Positional,
		Positional:  a.Positional,
	}
	if a.Short != "" {
		if utf8.RuneCountInString(a.Short) != 1 || a.Short == "-" {
			return tonbi.Arg{}, &FieldError{Path: path, Field: "short", Value: a.Short, Reason: "must be a single character"}
		}
		arg.Short, _ = utf8.DecodeRuneInString(a.Short)
	}
	return arg, nil
}

// FromCommand converts cmd back into its file form.
func FromCommand(cmd *tonbi.Command) *CommandSpec {
	s := &CommandSpec{
		Name:        cmd.Name(),
		Description: cmd.About(),
		Version:     cmd.VersionString(),
	}
	for _, a := range cmd.Args() {
		as := ArgSpec{
			Name:        a.Name,
			Description: a.Description,
			Required:    a.Required,
			TakesValue:  a.TakesValue && !a.Positional,
			Positional:  a.Positional,
		}
		if a.Short != 0 {
			as.Short = string(a.Short)
		}
		s.Args = append(s.Args, as)
	}
	for _, sub := range cmd.Subcommands() {
		s.Subcommands = append(s.Subcommands, *FromCommand(sub))
	}
	return s
}

// Encode writes cmd in the given format.
func Encode(cmd *tonbi.Command, format Format) ([]byte, error) {
	spec := FromCommand(cmd)
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(spec); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(spec); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}

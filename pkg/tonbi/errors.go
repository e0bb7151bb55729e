// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

import (
	"errors"
	"fmt"
)

// ErrParse matches every error Parse returns, via errors.Is.
var ErrParse = errors.New("parse error")

// UnknownOptionError is returned for a --name that the current command does
// not declare.
type UnknownOptionError struct {
	Name    string
	Command string // The command level that rejected the option.
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: --%s", e.Name)
}

func (e *UnknownOptionError) Is(target error) bool { return target == ErrParse }

// UnknownShortOptionError is returned for a character in a short cluster that
// no arg of the current command uses as its short alias.
type UnknownShortOptionError struct {
	Short   rune
	Command string
}

func (e *UnknownShortOptionError) Error() string {
	return fmt.Sprintf("unknown short option: -%c", e.Short)
}

func (e *UnknownShortOptionError) Is(target error) bool { return target == ErrParse }

// MissingOptionValueError is returned when a valued option is the last token.
type MissingOptionValueError struct {
	Name    string
	Command string
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("missing value for option: --%s", e.Name)
}

func (e *MissingOptionValueError) Is(target error) bool { return target == ErrParse }

// UnknownArgumentError is returned for a bare token that is neither a
// subcommand name nor fits a remaining positional slot.
type UnknownArgumentError struct {
	Token   string
	Command string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument: %s", e.Token)
}

func (e *UnknownArgumentError) Is(target error) bool { return target == ErrParse }

// MissingRequiredArgumentError is returned when a Required arg was not
// matched by the time its command level ran out of tokens.
type MissingRequiredArgumentError struct {
	Name    string
	Command string
}

func (e *MissingRequiredArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Name)
}

func (e *MissingRequiredArgumentError) Is(target error) bool { return target == ErrParse }

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonbi

// Matches is the parsed outcome of one command level: the args that were
// matched and at most one activated subcommand. It is read-only once
// returned by Parse.
type Matches struct {
	name   string
	values map[string]matched

	subName string
	sub     *Matches
}

type matched struct {
	value    string
	hasValue bool
}

func newMatches(name string) *Matches {
	return &Matches{name: name, values: make(map[string]matched)}
}

// Name returns the name of the command these matches belong to.
func (m *Matches) Name() string { return m.name }

// ValueOf returns the value recorded for name. ok is false when name was
// not matched or was matched as a presence-only flag.
func (m *Matches) ValueOf(name string) (value string, ok bool) {
	if m == nil {
		return "", false
	}
	v, found := m.values[name]
	if !found || !v.hasValue {
		return "", false
	}
	return v.value, true
}

// IsPresent reports whether name was matched, with or without a value.
func (m *Matches) IsPresent(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[name]
	return ok
}

// Subcommand returns the activated child and its matches, if any. Callers
// walk deeper levels by calling Subcommand on the returned Matches.
func (m *Matches) Subcommand() (name string, sub *Matches, ok bool) {
	if m == nil || m.sub == nil {
		return "", nil, false
	}
	return m.subName, m.sub, true
}

// SubcommandName returns the activated child's name or "".
func (m *Matches) SubcommandName() string {
	if m == nil {
		return ""
	}
	return m.subName
}

// Names returns the matched arg names in no particular order.
func (m *Matches) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	return names
}

func (m *Matches) setFlag(name string) {
	m.values[name] = matched{}
}

func (m *Matches) setValue(name, value string) {
	m.values[name] = matched{value: value, hasValue: true}
}

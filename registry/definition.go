/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "reflect"

// Options is the closed configuration struct attached to a definition.
// All hints are advisory: the core stores and reports them but never coerces
// values based on them. Collaborators such as exporters, validators and the
// test-data factory interpret them.
type Options struct {
	// Type is an advisory type hint, e.g. "string", "integer", "boolean".
	Type string
	// Format is an advisory format hint using go-openapi/strfmt names,
	// e.g. "date-time", "uuid", "email".
	Format string
	// Default, when non-nil, is assigned to new records at construction.
	Default any
}

// Definition describes one declared attribute: its name plus options.
// Definitions are immutable after construction.
type Definition struct {
	name string
	opts Options
}

// NewDefinition constructs a Definition for the given name and options.
func NewDefinition(name string, opts Options) *Definition {
	return &Definition{name: name, opts: opts}
}

// Name returns the attribute name.
func (d *Definition) Name() string {
	return d.name
}

// Options returns the definition's options.
func (d *Definition) Options() Options {
	return d.opts
}

// Equal reports structural equality: same name and same options.
func (d *Definition) Equal(other *Definition) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.name == other.name && reflect.DeepEqual(d.opts, other.opts)
}

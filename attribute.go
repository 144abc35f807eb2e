/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"github.com/suparena/attrmodel/errors"
	"github.com/suparena/attrmodel/registry"
)

// Attribute declares a typed attribute on this model type and synthesizes its
// reader and writer members. The dangerous-name guard runs first, against this
// type's full advertised capability surface; on rejection the registry and
// member table are left untouched.
//
// Accessors are installed on this type only. Subtypes reach them through chain
// lookup, ancestors and siblings never see them. Redeclaring an attribute this
// type already has (including with different options) replaces both the stored
// definition and the accessors.
func (mt *ModelType) Attribute(name string, opts registry.Options) (*registry.Definition, error) {
	if name == "" {
		return nil, errors.NewValidationError("name", "attribute name must not be empty")
	}

	mt.declare.Lock()
	defer mt.declare.Unlock()

	if err := mt.checkDangerous(name); err != nil {
		return nil, err
	}

	def := registry.NewDefinition(name, opts)
	mt.attrs.Define(def)
	mt.installAccessors(def)
	return def, nil
}

// MustAttribute is Attribute for declaration-time wiring where a dangerous
// name is a programming error.
func (mt *ModelType) MustAttribute(name string, opts registry.Options) *registry.Definition {
	def, err := mt.Attribute(name, opts)
	if err != nil {
		panic(err)
	}
	return def
}

// installAccessors synthesizes the reader and writer for def and installs them
// in this type's own member table, tagged with the attribute name so the guard
// can recognize them as accessors rather than unrelated methods.
func (mt *ModelType) installAccessors(def *registry.Definition) {
	name := def.Name()

	reader := &member{attr: name, fn: func(r *Record, _ ...any) (any, error) {
		return r.ReadAttribute(name), nil
	}}
	writer := &member{attr: name, fn: func(r *Record, args ...any) (any, error) {
		if len(args) != 1 {
			return nil, errors.NewValidationError(name, "writer takes exactly one value")
		}
		r.WriteAttribute(name, args[0])
		return args[0], nil
	}}

	mt.mu.Lock()
	mt.members[name] = reader
	mt.members[name+"="] = writer
	mt.mu.Unlock()
}

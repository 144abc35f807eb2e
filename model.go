/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"sync"

	"github.com/suparena/attrmodel/registry"
)

// Member is a concrete callable installed on a model type. Readers take no
// arguments, writers take exactly one; plain members take whatever they
// document.
type Member func(r *Record, args ...any) (any, error)

// Fallback is a model-level catch-all invoked when no concrete member matches
// a requested name. Returning ok=false declines the name.
type Fallback func(r *Record, name string, args ...any) (any, bool)

// member tags a callable with the attribute it was synthesized for, if any.
// The tag lets the guard tell a synthesized accessor apart from an unrelated
// method of the same name.
type member struct {
	fn   Member
	attr string
}

// ModelType is a first-class type descriptor: the owner of an attribute
// registry, a table of concrete members, and the optional unknown-member
// hooks. Subtypes form a single-inheritance chain, acyclic by construction.
type ModelType struct {
	name   string
	parent *ModelType
	attrs  *registry.Registry

	// declare serializes the read-then-write declaration path.
	declare sync.Mutex

	mu                sync.RWMutex
	members           map[string]*member
	fallback          Fallback
	respondsToMissing func(name string) bool
	respondsTo        func(name string) bool
}

// NewModelType creates a root model type. Root types carry the facility's
// built-in members (inspect, attributes, read_attribute, write_attribute),
// which subtypes reach through chain lookup.
func NewModelType(name string) *ModelType {
	mt := &ModelType{
		name:    name,
		attrs:   registry.New(nil),
		members: make(map[string]*member),
	}
	mt.installBaseMembers()
	return mt
}

// Derive creates a subtype of mt. The subtype starts with an empty member
// table and an empty own attribute table; everything else is resolved through
// the parent chain at call time.
func (mt *ModelType) Derive(name string) *ModelType {
	return &ModelType{
		name:    name,
		parent:  mt,
		attrs:   registry.New(mt.attrs),
		members: make(map[string]*member),
	}
}

// Name returns the model type's name.
func (mt *ModelType) Name() string {
	return mt.name
}

// Parent returns the ancestor model type, or nil for a root type.
func (mt *ModelType) Parent() *ModelType {
	return mt.parent
}

// Registry exposes the type's attribute definition table.
func (mt *ModelType) Registry() *registry.Registry {
	return mt.attrs
}

// EffectiveDefinitions returns the inheritance-resolved definition list.
func (mt *ModelType) EffectiveDefinitions() []*registry.Definition {
	return mt.attrs.EffectiveDefinitions()
}

// EffectiveNames returns the inheritance-resolved attribute names in order.
func (mt *ModelType) EffectiveNames() []string {
	return mt.attrs.EffectiveNames()
}

// DefineMember installs a concrete member under the given name on this type
// only. Writers conventionally use a trailing "=" in the name.
func (mt *ModelType) DefineMember(name string, fn Member) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.members[name] = &member{fn: fn}
}

// SetFallback installs the unknown-member hook on this type. Subtypes inherit
// it through chain lookup.
func (mt *ModelType) SetFallback(fn Fallback) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.fallback = fn
}

// SetRespondsToMissing installs the advertising extension a well-behaved
// fallback keeps in sync with its interception behavior. HasMember consults it
// after the concrete member table.
func (mt *ModelType) SetRespondsToMissing(fn func(name string) bool) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.respondsToMissing = fn
}

// SetRespondsTo replaces the advertising predicate wholesale. When set, it is
// the sole authority on what the type responds to.
func (mt *ModelType) SetRespondsTo(fn func(name string) bool) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.respondsTo = fn
}

// HasMember is the model's advertising predicate: does name resolve to
// something on this type? A full responds-to override wins outright; otherwise
// the concrete member chain is consulted, then the responds-to-missing
// extension. The guard asks this question rather than inspecting any hook.
func (mt *ModelType) HasMember(name string) bool {
	if rt := mt.lookupRespondsTo(); rt != nil {
		return rt(name)
	}
	if mt.lookupMember(name) != nil {
		return true
	}
	if rtm := mt.lookupRespondsToMissing(); rtm != nil {
		return rtm(name)
	}
	return false
}

func (mt *ModelType) lookupMember(name string) *member {
	for t := mt; t != nil; t = t.parent {
		t.mu.RLock()
		m := t.members[name]
		t.mu.RUnlock()
		if m != nil {
			return m
		}
	}
	return nil
}

func (mt *ModelType) lookupFallback() Fallback {
	for t := mt; t != nil; t = t.parent {
		t.mu.RLock()
		fn := t.fallback
		t.mu.RUnlock()
		if fn != nil {
			return fn
		}
	}
	return nil
}

func (mt *ModelType) lookupRespondsToMissing() func(string) bool {
	for t := mt; t != nil; t = t.parent {
		t.mu.RLock()
		fn := t.respondsToMissing
		t.mu.RUnlock()
		if fn != nil {
			return fn
		}
	}
	return nil
}

func (mt *ModelType) lookupRespondsTo() func(string) bool {
	for t := mt; t != nil; t = t.parent {
		t.mu.RLock()
		fn := t.respondsTo
		t.mu.RUnlock()
		if fn != nil {
			return fn
		}
	}
	return nil
}

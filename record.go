/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/suparena/attrmodel/errors"
)

// Record is an instance of a model type: a private value store plus a pointer
// to the shared metadata. The registry is metadata shared across all records
// of a type; the value store here is per-record state.
type Record struct {
	mu     sync.RWMutex
	model  *ModelType
	values map[string]any
}

// New constructs a record of this model type. Definitions carrying a non-nil
// Default are assigned up front; everything else reads as nil until written.
func (mt *ModelType) New() *Record {
	r := &Record{
		model:  mt,
		values: make(map[string]any),
	}
	for _, def := range mt.attrs.EffectiveDefinitions() {
		if def.Options().Default != nil {
			r.values[def.Name()] = def.Options().Default
		}
	}
	return r
}

// Model returns the record's model type.
func (r *Record) Model() *ModelType {
	return r.model
}

// Get reads a member by name: a synthesized reader, a concrete member, or the
// fallback hook, in that order. Declared attributes always resolve to their
// concrete accessor and never reach the fallback.
func (r *Record) Get(name string) (any, error) {
	return r.Call(name)
}

// Set writes through the member named name + "=".
func (r *Record) Set(name string, value any) error {
	_, err := r.Call(name+"=", value)
	return err
}

// Call invokes the member registered under name, consulting the model's
// concrete member chain first and the fallback hook last.
func (r *Record) Call(name string, args ...any) (any, error) {
	if m := r.model.lookupMember(name); m != nil {
		return m.fn(r, args...)
	}
	if fb := r.model.lookupFallback(); fb != nil {
		if v, ok := fb(r, name, args...); ok {
			return v, nil
		}
	}
	return nil, errors.NewUnknownMemberError(r.model.name, name)
}

// ReadAttribute is the low-level raw read: the stored value, or nil when the
// attribute was never assigned.
func (r *Record) ReadAttribute(name string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[name]
}

// WriteAttribute is the low-level raw write. It stores the value verbatim; no
// coercion is applied from the definition's type hint.
func (r *Record) WriteAttribute(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = value
}

// AttributeMap returns the serialization snapshot: every effective attribute
// name, with nil for unset entries, plus every explicitly assigned value. Key
// order is up to the consumer.
func (r *Record) AttributeMap() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]any)
	for _, name := range r.model.attrs.EffectiveNames() {
		out[name] = r.values[name]
	}
	for name, v := range r.values {
		out[name] = v
	}
	return out
}

// Inspect renders the record with its effective attributes in declared order,
// e.g. #<User name: "bob", id: nil>.
func (r *Record) Inspect() string {
	defs := r.model.attrs.EffectiveDefinitions()
	parts := make([]string, 0, len(defs))
	for _, def := range defs {
		parts = append(parts, fmt.Sprintf("%s: %s", def.Name(), formatValue(r.ReadAttribute(def.Name()))))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("#<%s>", r.model.name)
	}
	return fmt.Sprintf("#<%s %s>", r.model.name, strings.Join(parts, ", "))
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// installBaseMembers gives root model types the facility's built-in members.
// Their names are reserved; the guard rejects attributes that would shadow
// them at any inheritance depth.
func (mt *ModelType) installBaseMembers() {
	mt.members["inspect"] = &member{fn: func(r *Record, _ ...any) (any, error) {
		return r.Inspect(), nil
	}}
	mt.members["attributes"] = &member{fn: func(r *Record, _ ...any) (any, error) {
		return r.AttributeMap(), nil
	}}
	mt.members["read_attribute"] = &member{fn: func(r *Record, args ...any) (any, error) {
		name, err := singleNameArg("read_attribute", args)
		if err != nil {
			return nil, err
		}
		return r.ReadAttribute(name), nil
	}}
	mt.members["write_attribute"] = &member{fn: func(r *Record, args ...any) (any, error) {
		if len(args) != 2 {
			return nil, errors.NewValidationError("args", "write_attribute takes a name and a value")
		}
		name, ok := args[0].(string)
		if !ok {
			return nil, errors.NewValidationError("name", "attribute name must be a string")
		}
		r.WriteAttribute(name, args[1])
		return args[1], nil
	}}
}

func singleNameArg(op string, args []any) (string, error) {
	if len(args) != 1 {
		return "", errors.NewValidationError("args", op+" takes exactly one argument")
	}
	name, ok := args[0].(string)
	if !ok {
		return "", errors.NewValidationError("name", "attribute name must be a string")
	}
	return name, nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

// Package-level binding between Go struct types and model types, typically
// populated in init() functions or through generated code.

var (
	modelBindings = make(map[reflect.Type]*ModelType)
	bindMu        sync.RWMutex
)

// Bind associates the Go type T with a model type.
func Bind[T any](mt *ModelType) {
	var zero T
	t := reflect.TypeOf(zero)

	bindMu.Lock()
	defer bindMu.Unlock()
	modelBindings[t] = mt
}

// ModelOf retrieves the model type bound to T, if any.
func ModelOf[T any]() (*ModelType, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	bindMu.RLock()
	defer bindMu.RUnlock()
	mt, ok := modelBindings[t]
	return mt, ok
}

// Assign copies a record's attribute snapshot into a fresh T, matching
// attribute names against the struct's JSON field tags. Unset attributes leave
// the corresponding field at its zero value.
func Assign[T any](r *Record) (*T, error) {
	data, err := json.Marshal(r.AttributeMap())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attribute snapshot: %w", err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to assign snapshot to %T: %w", out, err)
	}
	return &out, nil
}

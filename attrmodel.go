/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"fmt"
	"sync"

	"github.com/suparena/attrmodel/errors"
)

// Models is a higher-level interface that manages a collection of ModelType
// instances by name. Generated registration code and serialization
// collaborators that need to resolve a model from a wire attribute use it.
type Models interface {
	// RegisterModel registers a model type under its own name.
	RegisterModel(mt *ModelType) error
	// GetModel retrieves the registered model type for a given name.
	GetModel(name string) (*ModelType, error)
	// ModelNames returns the names of all registered model types.
	ModelNames() []string
}

// modelManager is a thread-safe implementation of the Models interface.
type modelManager struct {
	mu     sync.RWMutex
	models map[string]*ModelType
}

// NewModelManager creates and returns a new Models implementation.
func NewModelManager() Models {
	return &modelManager{
		models: make(map[string]*ModelType),
	}
}

// RegisterModel stores the provided model type under its name.
func (mm *modelManager) RegisterModel(mt *ModelType) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if _, exists := mm.models[mt.Name()]; exists {
		return fmt.Errorf("model type %q already registered", mt.Name())
	}
	mm.models[mt.Name()] = mt
	return nil
}

// GetModel retrieves the model type associated with the given name.
func (mm *modelManager) GetModel(name string) (*ModelType, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	mt, exists := mm.models[name]
	if !exists {
		return nil, errors.NewNotFoundError(name)
	}
	return mt, nil
}

// ModelNames returns all registered model names.
func (mm *modelManager) ModelNames() []string {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	names := make([]string, 0, len(mm.models))
	for name := range mm.models {
		names = append(names, name)
	}
	return names
}

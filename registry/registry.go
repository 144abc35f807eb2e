/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "sync"

// Registry is the attribute definition table owned by one model type.
// It records the type's own declarations in order and links to the nearest
// ancestor's registry. The chain is single-inheritance and acyclic.
type Registry struct {
	mu      sync.RWMutex
	parent  *Registry
	names   []string
	entries map[string]*Definition
}

// New creates a Registry. parent may be nil for a root model type.
func New(parent *Registry) *Registry {
	return &Registry{
		parent:  parent,
		entries: make(map[string]*Definition),
	}
}

// Parent returns the ancestor registry, or nil for a root registry.
func (r *Registry) Parent() *Registry {
	return r.parent
}

// Define stores def in this registry's own table, overwriting any same-named
// local entry. A same-named ancestor entry is shadowed; the ancestor table is
// never touched.
func (r *Registry) Define(def *Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[def.Name()]; !exists {
		r.names = append(r.names, def.Name())
	}
	r.entries[def.Name()] = def
}

// Own returns the definition declared directly on this registry, if any.
// Ancestors are not consulted.
func (r *Registry) Own(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.entries[name]
	return def, ok
}

// Lookup resolves name against the full chain: this registry first, then
// ancestors. The nearest definition wins.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	if def, ok := r.Own(name); ok {
		return def, true
	}
	if r.parent != nil {
		return r.parent.Lookup(name)
	}
	return nil, false
}

// EffectiveDefinitions returns the inheritance-resolved definition list:
// ancestor definitions first in their declared order, with entries this
// registry redefines replaced in place and new names appended. The chain is
// walked at call time, so attributes an ancestor gains after this registry was
// created are included.
func (r *Registry) EffectiveDefinitions() []*Definition {
	var inherited []*Definition
	if r.parent != nil {
		inherited = r.parent.EffectiveDefinitions()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(inherited)+len(r.names))
	result := make([]*Definition, 0, len(inherited)+len(r.names))

	for _, def := range inherited {
		if own, ok := r.entries[def.Name()]; ok {
			def = own
		}
		seen[def.Name()] = true
		result = append(result, def)
	}
	for _, name := range r.names {
		if seen[name] {
			continue
		}
		result = append(result, r.entries[name])
	}
	return result
}

// EffectiveNames returns the names of EffectiveDefinitions in the same order.
func (r *Registry) EffectiveNames() []string {
	defs := r.EffectiveDefinitions()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name()
	}
	return names
}

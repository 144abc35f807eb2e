/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package factory

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/attrmodel"
	"github.com/suparena/attrmodel/registry"
)

// Generator produces a value for one attribute. n is the factory's sequence
// number, starting at 1 and incremented per built record.
type Generator func(n int) any

// Factory builds records of one model type through plain construction and
// ordinary writer calls. Configuration is chainable.
type Factory struct {
	model      *attrmodel.ModelType
	values     map[string]any
	generators map[string]Generator
	autoFill   bool
	seq        int
}

// New creates a Factory for the given model type.
func New(mt *attrmodel.ModelType) *Factory {
	return &Factory{
		model:      mt,
		values:     make(map[string]any),
		generators: make(map[string]Generator),
	}
}

// WithValue sets a fixed value assigned to every built record.
func (f *Factory) WithValue(name string, value any) *Factory {
	f.values[name] = value
	return f
}

// WithGenerator sets a per-record value generator for an attribute.
func (f *Factory) WithGenerator(name string, g Generator) *Factory {
	f.generators[name] = g
	return f
}

// WithAutoFill makes the factory derive values for attributes that carry
// advisory hints and have no explicit value or generator. Attributes without
// a usable hint stay unset.
func (f *Factory) WithAutoFill() *Factory {
	f.autoFill = true
	return f
}

// Build constructs one record. Values flow through the model's writers, so a
// value configured for a name the model does not declare surfaces as an error
// rather than a silent raw write.
func (f *Factory) Build() (*attrmodel.Record, error) {
	f.seq++
	rec := f.model.New()

	for _, def := range f.model.EffectiveDefinitions() {
		name := def.Name()

		value, ok := f.valueFor(name, def.Options())
		if !ok {
			continue
		}
		if err := rec.Set(name, value); err != nil {
			return nil, fmt.Errorf("factory for %s: %w", f.model.Name(), err)
		}
	}

	// Explicit values for names outside the registry still go through Set so
	// the model decides whether they resolve.
	for name, value := range f.values {
		if _, declared := f.model.Registry().Lookup(name); declared {
			continue
		}
		if err := rec.Set(name, value); err != nil {
			return nil, fmt.Errorf("factory for %s: %w", f.model.Name(), err)
		}
	}

	return rec, nil
}

// MustBuild is Build for test setup where failure is fatal.
func (f *Factory) MustBuild() *attrmodel.Record {
	rec, err := f.Build()
	if err != nil {
		panic(err)
	}
	return rec
}

// BuildList constructs n records, advancing the sequence for each.
func (f *Factory) BuildList(n int) ([]*attrmodel.Record, error) {
	recs := make([]*attrmodel.Record, 0, n)
	for i := 0; i < n; i++ {
		rec, err := f.Build()
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (f *Factory) valueFor(name string, opts registry.Options) (any, bool) {
	if v, ok := f.values[name]; ok {
		return v, true
	}
	if g, ok := f.generators[name]; ok {
		return g(f.seq), true
	}
	if f.autoFill {
		return autoValue(name, opts, f.seq)
	}
	return nil, false
}

// autoValue derives a value from the definition's advisory hints. Format
// hints use go-openapi/strfmt conventions.
func autoValue(name string, opts registry.Options, n int) (any, bool) {
	switch opts.Format {
	case "uuid":
		return uuid.NewString(), true
	case "date-time":
		return strfmt.DateTime(time.Now().UTC()), true
	case "email":
		return fmt.Sprintf("%s%d@example.com", name, n), true
	}

	switch opts.Type {
	case "string":
		return fmt.Sprintf("%s %d", name, n), true
	case "integer":
		return n, true
	case "number":
		return float64(n), true
	case "boolean":
		return false, true
	}
	return nil, false
}

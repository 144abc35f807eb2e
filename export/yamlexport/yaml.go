/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package yamlexport renders attribute snapshots as YAML.
package yamlexport

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/suparena/attrmodel"
	"github.com/suparena/attrmodel/export"
)

// Exporter writes records as YAML mappings.
type Exporter struct{}

var _ export.Exporter = (*Exporter)(nil)

// New returns a YAML exporter.
func New() *Exporter {
	return &Exporter{}
}

// Export renders the record's snapshot. Unset declared attributes appear as
// YAML null.
func (e *Exporter) Export(r *attrmodel.Record) ([]byte, error) {
	data, err := yaml.Marshal(r.AttributeMap())
	if err != nil {
		return nil, fmt.Errorf("failed to export %s record as YAML: %w", r.Model().Name(), err)
	}
	return data, nil
}

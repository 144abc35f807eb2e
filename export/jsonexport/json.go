/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package jsonexport renders attribute snapshots as JSON.
package jsonexport

import (
	"encoding/json"
	"fmt"

	"github.com/suparena/attrmodel"
	"github.com/suparena/attrmodel/export"
)

// Exporter writes records as JSON objects. The zero value emits compact
// output; set Indent for pretty-printing.
type Exporter struct {
	Indent string
}

var _ export.Exporter = (*Exporter)(nil)

// New returns a compact JSON exporter.
func New() *Exporter {
	return &Exporter{}
}

// Export renders the record's snapshot. Unset declared attributes appear as
// JSON null.
func (e *Exporter) Export(r *attrmodel.Record) ([]byte, error) {
	snap := r.AttributeMap()

	var (
		data []byte
		err  error
	)
	if e.Indent != "" {
		data, err = json.MarshalIndent(snap, "", e.Indent)
	} else {
		data, err = json.Marshal(snap)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to export %s record as JSON: %w", r.Model().Name(), err)
	}
	return data, nil
}

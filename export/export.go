/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package export

import "github.com/suparena/attrmodel"

// Exporter renders a record's attribute snapshot in a concrete encoding.
type Exporter interface {
	Export(r *attrmodel.Record) ([]byte, error)
}

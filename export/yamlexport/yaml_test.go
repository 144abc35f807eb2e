/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package yamlexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/suparena/attrmodel"
	"github.com/suparena/attrmodel/registry"
)

func TestExport(t *testing.T) {
	mt := attrmodel.NewModelType("Config")
	mt.MustAttribute("host", registry.Options{Type: "string"})
	mt.MustAttribute("port", registry.Options{Type: "integer"})

	rec := mt.New()
	require.NoError(t, rec.Set("host", "localhost"))
	require.NoError(t, rec.Set("port", 8080))

	data, err := New().Export(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "localhost", decoded["host"])
	assert.Equal(t, 8080, decoded["port"])
}

func TestExportUnsetAsNull(t *testing.T) {
	mt := attrmodel.NewModelType("Config")
	mt.MustAttribute("host", registry.Options{Type: "string"})

	data, err := New().Export(mt.New())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	v, present := decoded["host"]
	assert.True(t, present)
	assert.Nil(t, v)
}

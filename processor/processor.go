/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML model description consumed by the generator.
type Manifest struct {
	Models []Model `yaml:"models"`
}

// Model declares one model type, optionally derived from an earlier one.
type Model struct {
	Name       string      `yaml:"name"`
	Parent     string      `yaml:"parent,omitempty"`
	Attributes []Attribute `yaml:"attributes"`
}

// Attribute declares one attribute with its advisory hints.
type Attribute struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Default any    `yaml:"default,omitempty"`
}

// ParseManifest decodes and validates a manifest. Parents must be declared
// before the models deriving from them, and format hints must name a format
// known to the strfmt default registry.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	seen := make(map[string]bool)
	for _, model := range m.Models {
		if model.Name == "" {
			return nil, fmt.Errorf("manifest contains a model without a name")
		}
		if seen[model.Name] {
			return nil, fmt.Errorf("model %q declared twice", model.Name)
		}
		if model.Parent != "" && !seen[model.Parent] {
			return nil, fmt.Errorf("model %q derives from %q, which is not declared earlier in the manifest", model.Name, model.Parent)
		}
		for _, attr := range model.Attributes {
			if attr.Name == "" {
				return nil, fmt.Errorf("model %q contains an attribute without a name", model.Name)
			}
			if attr.Format != "" && !strfmt.Default.ContainsName(attr.Format) {
				return nil, fmt.Errorf("model %q attribute %q: unknown format %q", model.Name, attr.Name, attr.Format)
			}
		}
		seen[model.Name] = true
	}
	return &m, nil
}

// Generate renders Go registration code for the manifest: a RegisterModels
// function that declares every model and attribute and registers the models
// with an attrmodel.Models manager.
func Generate(m *Manifest, pkg string) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by attrgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/suparena/attrmodel\"\n")
	b.WriteString("\t\"github.com/suparena/attrmodel/registry\"\n")
	b.WriteString(")\n\n")
	b.WriteString("// RegisterModels declares the manifest models and registers them with m.\n")
	b.WriteString("func RegisterModels(m attrmodel.Models) error {\n")

	vars := make(map[string]string, len(m.Models))
	for _, model := range m.Models {
		v := varName(model.Name)
		vars[model.Name] = v

		if model.Parent == "" {
			fmt.Fprintf(&b, "\t%s := attrmodel.NewModelType(%q)\n", v, model.Name)
		} else {
			fmt.Fprintf(&b, "\t%s := %s.Derive(%q)\n", v, vars[model.Parent], model.Name)
		}

		for _, attr := range model.Attributes {
			opts, err := optionsLiteral(attr)
			if err != nil {
				return nil, fmt.Errorf("model %q attribute %q: %w", model.Name, attr.Name, err)
			}
			fmt.Fprintf(&b, "\tif _, err := %s.Attribute(%q, %s); err != nil {\n\t\treturn err\n\t}\n", v, attr.Name, opts)
		}

		fmt.Fprintf(&b, "\tif err := m.RegisterModel(%s); err != nil {\n\t\treturn err\n\t}\n", v)
	}

	b.WriteString("\treturn nil\n")
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

func optionsLiteral(attr Attribute) (string, error) {
	var fields []string
	if attr.Type != "" {
		fields = append(fields, fmt.Sprintf("Type: %q", attr.Type))
	}
	if attr.Format != "" {
		fields = append(fields, fmt.Sprintf("Format: %q", attr.Format))
	}
	if attr.Default != nil {
		lit, err := goLiteral(attr.Default)
		if err != nil {
			return "", err
		}
		fields = append(fields, "Default: "+lit)
	}
	if len(fields) == 0 {
		return "registry.Options{}", nil
	}
	return "registry.Options{" + strings.Join(fields, ", ") + "}", nil
}

func goLiteral(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("default value %v (%T) cannot be rendered as a Go literal", v, v)
	}
}

// varName turns a model name into a local Go identifier, e.g. "User" ->
// "userModel", "rating-system" -> "ratingSystemModel".
func varName(name string) string {
	var b strings.Builder
	upper := false
	for i, r := range name {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			upper = true
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String() + "Model"
}

// Main is the attrgen entry point. It reads the manifest named by the first
// flag argument and writes generated code to ATTRMODEL_OUTPUT (or stdout when
// unset). The target package name comes from ATTRMODEL_PACKAGE, defaulting to
// "models". A .env file is honored when present.
func Main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	manifestPath := flag.Arg(0)
	if manifestPath == "" {
		fmt.Fprintln(os.Stderr, "usage: attrgen [flags] <manifest.yaml>")
		os.Exit(2)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		log.Fatalf("Failed to read manifest: %v", err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		log.Fatalf("Invalid manifest: %v", err)
	}

	pkg := os.Getenv("ATTRMODEL_PACKAGE")
	if pkg == "" {
		pkg = "models"
	}

	code, err := Generate(manifest, pkg)
	if err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	output := os.Getenv("ATTRMODEL_OUTPUT")
	if output == "" {
		os.Stdout.Write(code)
		return
	}
	if err := os.WriteFile(output, code, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", output, err)
	}
	fmt.Printf("Generated %d models into %s\n", len(manifest.Models), output)
}

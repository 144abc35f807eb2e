/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"testing"

	"github.com/suparena/attrmodel/errors"
	"github.com/suparena/attrmodel/registry"
)

func TestRecordReadWrite(t *testing.T) {
	mt := NewModelType("Note")
	mt.MustAttribute("title", registry.Options{Type: "string"})

	rec := mt.New()
	if err := rec.Set("title", "hello"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, err := rec.Get("title")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "hello" {
		t.Errorf("Expected \"hello\", got %v", v)
	}
}

func TestRecordValueStoreIsPerInstance(t *testing.T) {
	mt := NewModelType("Counter")
	mt.MustAttribute("count", registry.Options{Type: "integer"})

	a := mt.New()
	b := mt.New()
	if err := a.Set("count", 5); err != nil {
		t.Fatal(err)
	}

	if v := b.ReadAttribute("count"); v != nil {
		t.Errorf("Sibling record leaked a value: %v", v)
	}
}

func TestRecordRawAccess(t *testing.T) {
	mt := NewModelType("Bag")
	rec := mt.New()

	rec.WriteAttribute("loose", 42)
	if v := rec.ReadAttribute("loose"); v != 42 {
		t.Errorf("Expected 42, got %v", v)
	}
	if v := rec.ReadAttribute("never_set"); v != nil {
		t.Errorf("Expected nil for unset, got %v", v)
	}
}

func TestRecordUnknownMember(t *testing.T) {
	mt := NewModelType("Plain")
	rec := mt.New()

	_, err := rec.Get("nothing")
	if !errors.IsUnknownMember(err) {
		t.Fatalf("Expected unknown member error, got %v", err)
	}
}

func TestRecordFallbackDispatch(t *testing.T) {
	mt := NewModelType("Ghost")
	mt.SetFallback(func(r *Record, name string, args ...any) (any, bool) {
		if name == "echo" {
			return args, true
		}
		return nil, false
	})

	rec := mt.New()

	v, err := rec.Call("echo", 1, 2)
	if err != nil {
		t.Fatalf("Fallback call failed: %v", err)
	}
	if args, ok := v.([]any); !ok || len(args) != 2 {
		t.Errorf("Expected echoed args, got %v", v)
	}

	if _, err := rec.Call("silent"); !errors.IsUnknownMember(err) {
		t.Errorf("Declined names should error, got %v", err)
	}
}

func TestDeclaredAttributeBypassesFallback(t *testing.T) {
	mt := NewModelType("Layered")
	intercepted := false
	mt.SetFallback(func(r *Record, name string, args ...any) (any, bool) {
		intercepted = true
		return "from fallback", true
	})

	mt.MustAttribute("field", registry.Options{})
	rec := mt.New()
	if err := rec.Set("field", "direct"); err != nil {
		t.Fatal(err)
	}

	v, err := rec.Get("field")
	if err != nil {
		t.Fatal(err)
	}
	if v != "direct" {
		t.Errorf("Expected accessor value, got %v", v)
	}
	if intercepted {
		t.Error("Declared attribute access must never reach the fallback")
	}
}

func TestBuiltinMembers(t *testing.T) {
	mt := NewModelType("User")
	mt.MustAttribute("name", registry.Options{Type: "string"})
	mt.MustAttribute("age", registry.Options{Type: "integer"})

	rec := mt.New()
	if err := rec.Set("name", "bob"); err != nil {
		t.Fatal(err)
	}

	t.Run("Inspect", func(t *testing.T) {
		v, err := rec.Call("inspect")
		if err != nil {
			t.Fatal(err)
		}
		expected := `#<User name: "bob", age: nil>`
		if v != expected {
			t.Errorf("Expected %q, got %q", expected, v)
		}
	})

	t.Run("Attributes", func(t *testing.T) {
		v, err := rec.Call("attributes")
		if err != nil {
			t.Fatal(err)
		}
		m, ok := v.(map[string]any)
		if !ok {
			t.Fatalf("Expected map, got %T", v)
		}
		if m["name"] != "bob" || m["age"] != nil {
			t.Errorf("Unexpected snapshot: %v", m)
		}
	})

	t.Run("RawHelpers", func(t *testing.T) {
		if _, err := rec.Call("write_attribute", "age", 30); err != nil {
			t.Fatal(err)
		}
		v, err := rec.Call("read_attribute", "age")
		if err != nil {
			t.Fatal(err)
		}
		if v != 30 {
			t.Errorf("Expected 30, got %v", v)
		}
	})
}

func TestAttributeMapSnapshot(t *testing.T) {
	mt := NewModelType("Doc")
	mt.MustAttribute("title", registry.Options{})
	mt.MustAttribute("body", registry.Options{})

	rec := mt.New()
	if err := rec.Set("title", "draft"); err != nil {
		t.Fatal(err)
	}

	snap := rec.AttributeMap()
	if len(snap) != 2 {
		t.Fatalf("Expected 2 keys, got %v", snap)
	}
	if snap["title"] != "draft" {
		t.Errorf("Assigned attribute missing: %v", snap)
	}
	if v, present := snap["body"]; !present || v != nil {
		t.Errorf("Unset declared attribute should be present as nil: %v", snap)
	}
}

func TestInspectEmptyModel(t *testing.T) {
	mt := NewModelType("Empty")
	if got := mt.New().Inspect(); got != "#<Empty>" {
		t.Errorf("Expected #<Empty>, got %q", got)
	}
}

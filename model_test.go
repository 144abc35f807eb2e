/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"fmt"
	"testing"

	"github.com/suparena/attrmodel/errors"
	"github.com/suparena/attrmodel/registry"
)

func TestModelManager(t *testing.T) {
	t.Run("RegisterAndGet", func(t *testing.T) {
		mm := NewModelManager()
		user := NewModelType("User")

		if err := mm.RegisterModel(user); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		got, err := mm.GetModel("User")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if got != user {
			t.Error("GetModel returned a different model type")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		mm := NewModelManager()
		if err := mm.RegisterModel(NewModelType("User")); err != nil {
			t.Fatalf("First registration failed: %v", err)
		}
		if err := mm.RegisterModel(NewModelType("User")); err == nil {
			t.Fatal("Expected duplicate registration error")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		mm := NewModelManager()
		_, err := mm.GetModel("Missing")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got %v", err)
		}
	})

	t.Run("ModelNames", func(t *testing.T) {
		mm := NewModelManager()
		mm.RegisterModel(NewModelType("A"))
		mm.RegisterModel(NewModelType("B"))
		if names := mm.ModelNames(); len(names) != 2 {
			t.Fatalf("Expected 2 names, got %v", names)
		}
	})
}

func TestModelManagerThreadSafety(t *testing.T) {
	mm := NewModelManager()
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(id int) {
			mm.RegisterModel(NewModelType(fmt.Sprintf("Model%d", id)))
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		go func() {
			mm.ModelNames()
			done <- true
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	if names := mm.ModelNames(); len(names) != 10 {
		t.Fatalf("Expected 10 models, got %d", len(names))
	}
}

type boundUser struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestTypeBinding(t *testing.T) {
	user := NewModelType("BoundUser")
	user.MustAttribute("name", registry.Options{Type: "string"})
	user.MustAttribute("age", registry.Options{Type: "integer"})

	Bind[boundUser](user)

	got, ok := ModelOf[boundUser]()
	if !ok {
		t.Fatal("Expected binding for boundUser")
	}
	if got != user {
		t.Error("ModelOf returned a different model type")
	}

	rec := user.New()
	rec.Set("name", "carol")
	rec.Set("age", 41)

	out, err := Assign[boundUser](rec)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if out.Name != "carol" || out.Age != 41 {
		t.Errorf("Unexpected assignment: %+v", out)
	}
}

func TestAssignLeavesUnsetFieldsZero(t *testing.T) {
	user := NewModelType("PartialUser")
	user.MustAttribute("name", registry.Options{Type: "string"})
	user.MustAttribute("age", registry.Options{Type: "integer"})

	rec := user.New()
	rec.Set("name", "dana")

	out, err := Assign[boundUser](rec)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if out.Name != "dana" || out.Age != 0 {
		t.Errorf("Unexpected assignment: %+v", out)
	}
}

func TestDeriveChain(t *testing.T) {
	a := NewModelType("A")
	b := a.Derive("B")
	c := b.Derive("C")

	if c.Parent() != b || b.Parent() != a || a.Parent() != nil {
		t.Fatal("Parent chain wired incorrectly")
	}

	// Built-in members come from the root through chain lookup.
	if !c.HasMember("inspect") {
		t.Error("Derived types should reach root-installed members")
	}

	a.DefineMember("greet", func(r *Record, _ ...any) (any, error) {
		return "hi", nil
	})
	if !c.HasMember("greet") {
		t.Error("Derived types should reach ancestor members")
	}
	if v, err := c.New().Call("greet"); err != nil || v != "hi" {
		t.Errorf("Expected hi, got %v (%v)", v, err)
	}
}

func TestHasMemberPrecedence(t *testing.T) {
	mt := NewModelType("P")

	if mt.HasMember("whatever") {
		t.Error("Plain type should not respond to arbitrary names")
	}

	mt.SetRespondsToMissing(func(name string) bool {
		return name == "via_missing"
	})
	if !mt.HasMember("via_missing") {
		t.Error("responds-to-missing extension should be consulted")
	}
	if !mt.HasMember("inspect") {
		t.Error("Concrete members should still advertise")
	}

	// A full override is the sole authority, even over concrete members.
	mt.SetRespondsTo(func(name string) bool {
		return name == "only_this"
	})
	if !mt.HasMember("only_this") {
		t.Error("Override should advertise its names")
	}
	if mt.HasMember("via_missing") {
		t.Error("Override should replace the extension")
	}
}

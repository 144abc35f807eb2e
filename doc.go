/*
Package attrmodel gives plain model objects declared, typed attributes —
readers, writers, defaults and equality — resolved through concretely
generated, inspectable members rather than catch-all dynamic dispatch.

The library is built around three cooperating pieces:

  - registry.Definition / registry.Registry: an immutable attribute
    description and the per-type, inheritance-aware definition table.
  - ModelType: a first-class type descriptor owning a registry, a member
    table and the optional unknown-member hooks.
  - The dangerous-attribute guard and accessor synthesizer: declaring an
    attribute validates its name against the type's full advertised
    capability surface, then installs the reader and writer on that type
    only.

Basic Usage:

	user := attrmodel.NewModelType("User")
	user.MustAttribute("name", registry.Options{Type: "string"})
	user.MustAttribute("id", registry.Options{Type: "string", Format: "uuid"})

	rec := user.New()
	_ = rec.Set("name", "Ada")
	name, _ := rec.Get("name") // "Ada"
	id, _ := rec.Get("id")     // nil until assigned

Subtyping:

	admin := user.Derive("Admin")
	admin.MustAttribute("level", registry.Options{Type: "integer"})

Admin records respond to name, id and level; User never gains level.

Dangerous attributes:

	_, err := user.Attribute("inspect", registry.Options{})
	// err: an attribute method named "inspect" would conflict with an existing method

A name is dangerous when the type's own advertising predicate (HasMember)
resolves it to something other than a previously declared attribute of the
same name. Fallback hooks that intercept names without advertising them are
not detected; the guard is only as good as the surface the type admits to.

Serialization collaborators live under export/ (JSON, YAML, DynamoDB
AttributeValue), and factory/ builds test records from attribute hints.

For more information, see the documentation at https://github.com/suparena/attrmodel
*/
package attrmodel

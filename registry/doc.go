/*
Package registry maintains the per-type attribute definition tables for AttrModel.

Each model type owns one Registry. A registry holds the definitions declared on
its own type and a pointer to the nearest ancestor's registry, forming a
single-inheritance chain that is acyclic by construction.

Definitions:

	def := registry.NewDefinition("created_at", registry.Options{
	    Type:   "string",
	    Format: "date-time",
	})

Inheritance:

	parent := registry.New(nil)
	child := registry.New(parent)

A child registry shadows same-named parent entries without mutating the parent
table. EffectiveDefinitions resolves the chain at call time, so attributes
declared on an ancestor after a child registry already exists are still visible
through the child (live view, not a creation-time snapshot).

Ordering: ancestor definitions come first in their own declared order; names a
child redefines keep their first-seen position, and names new to the child are
appended in declaration order.

The registry stores metadata only. Instance values live with each record, and
the dangerous-name guard runs in the attrmodel package before anything reaches
Define.
*/
package registry

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrmodel

import (
	"strings"

	"github.com/suparena/attrmodel/errors"
)

// reservedNames belong to the accessor machinery itself and may never be
// redefined as attributes, at any inheritance depth.
var reservedNames = map[string]bool{
	"read_attribute":  true,
	"write_attribute": true,
	"attributes":      true,
}

// exemptNames are never treated as dangerous. They collide with methods on
// nearly every real type, and redefining them as attributes is the primary
// intended use case. Membership is explicit, never inferred.
var exemptNames = map[string]bool{
	"id":   true,
	"type": true,
}

// DangerousAttribute reports whether declaring name on this type would be
// rejected by the guard.
func (mt *ModelType) DangerousAttribute(name string) bool {
	return mt.checkDangerous(name) != nil
}

// checkDangerous decides whether synthesizing reader name and writer name+"="
// would clobber a capability the type exposes for reasons other than a
// previous declaration of the same attribute.
//
// The decision rests on the type's own advertising predicate (HasMember), so a
// fallback hook that intercepts a name is caught exactly when the type admits
// to responding to it, through either the responds-to-missing extension or a
// full responds-to override. A fallback that intercepts without advertising is
// invisible here; the guard is only as good as the type's advertised surface.
func (mt *ModelType) checkDangerous(name string) error {
	if exemptNames[name] {
		return nil
	}
	if reservedNames[strings.TrimSuffix(name, "=")] {
		return errors.NewDangerousAttributeError(name)
	}
	// A member previously synthesized for this same attribute name means
	// redefinition, which is always allowed, option changes included.
	if m := mt.lookupMember(name); m != nil && m.attr == name {
		return nil
	}
	if mt.HasMember(name) || mt.HasMember(name+"=") {
		return errors.NewDangerousAttributeError(name)
	}
	return nil
}

/*
Package processor provides code generation functionality for AttrModel.

The processor reads a YAML model manifest and generates Go code that declares
the models, their attributes and their inheritance chain, then registers them
with an attrmodel.Models manager.

Manifest:

	models:
	  - name: User
	    attributes:
	      - name: id
	        type: string
	        format: uuid
	      - name: name
	        type: string
	        default: anonymous
	  - name: Admin
	    parent: User
	    attributes:
	      - name: level
	        type: integer

Generated Code:

	func RegisterModels(m attrmodel.Models) error {
	    userModel := attrmodel.NewModelType("User")
	    if _, err := userModel.Attribute("id", registry.Options{Type: "string", Format: "uuid"}); err != nil {
	        return err
	    }
	    ...
	    adminModel := userModel.Derive("Admin")
	    ...
	}

Parents must appear before the models deriving from them, and format hints are
checked against the go-openapi/strfmt default registry at generation time.
Dangerous attribute names still fail at registration time, where the guard
runs against the fully wired type.

This automation reduces boilerplate and keeps declaration code consistent
with the manifest.
*/
package processor

/*
Package errors provides semantic error types for the AttrModel library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrDangerousAttribute = errors.New("dangerous attribute")
	    ErrUnknownMember      = errors.New("unknown member")
	    ErrInvalidInput       = errors.New("invalid input")
	    ErrNotFound           = errors.New("model not found")
	)

Usage:

	// Check error type
	_, err := user.Attribute("inspect", registry.Options{})
	if err != nil {
	    if errors.IsDangerousAttribute(err) {
	        // The generated accessors would clobber an existing member
	        return err
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewDangerousAttributeError("inspect")
	err := errors.NewUnknownMemberError("User", "nickname")
	err := errors.NewValidationError("name", "must not be empty")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors

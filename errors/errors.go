/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrDangerousAttribute is returned when declaring an attribute whose
	// accessors would clobber an existing member
	ErrDangerousAttribute = errors.New("dangerous attribute")

	// ErrUnknownMember is returned when a record is asked for a member its
	// model neither defines nor intercepts
	ErrUnknownMember = errors.New("unknown member")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a model type is not found
	ErrNotFound = errors.New("model not found")
)

// DangerousAttributeError reports an attribute declaration whose generated
// reader/writer would conflict with a pre-existing member of the model type.
type DangerousAttributeError struct {
	Name string
}

func (e *DangerousAttributeError) Error() string {
	return fmt.Sprintf("an attribute method named %q would conflict with an existing method", e.Name)
}

func (e *DangerousAttributeError) Is(target error) bool {
	return target == ErrDangerousAttribute
}

// UnknownMemberError reports access to a member the model does not expose
type UnknownMemberError struct {
	Model string
	Name  string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("model %q has no member %q", e.Model, e.Name)
}

func (e *UnknownMemberError) Is(target error) bool {
	return target == ErrUnknownMember
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError represents an error when a model type is not found
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model type %q not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Helper functions for creating errors

// NewDangerousAttributeError creates a new DangerousAttributeError
func NewDangerousAttributeError(name string) error {
	return &DangerousAttributeError{Name: name}
}

// NewUnknownMemberError creates a new UnknownMemberError
func NewUnknownMemberError(model, name string) error {
	return &UnknownMemberError{Model: model, Name: name}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(name string) error {
	return &NotFoundError{Name: name}
}

// IsDangerousAttribute checks if an error is a dangerous attribute error
func IsDangerousAttribute(err error) bool {
	return errors.Is(err, ErrDangerousAttribute)
}

// IsUnknownMember checks if an error is an unknown member error
func IsUnknownMember(err error) bool {
	return errors.Is(err, ErrUnknownMember)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

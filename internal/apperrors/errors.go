// Package apperrors defines the error kinds recognized at the handler
// boundary and their HTTP status mapping.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field=%s, reason=%s", e.Field, e.Reason)
}

// ConflictError reports an attempt to create a resource that already exists.
type ConflictError struct {
	Resource string
	Message  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s: %s", e.Resource, e.Message)
}

// AuthError reports a failed authentication. Absent distinguishes a missing
// credential from an invalid or expired one.
type AuthError struct {
	Absent  bool
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// NotFoundError reports a well-formed identifier that matched no record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// InvalidIDError reports an identifier that is not well-formed for the store.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid identifier: %s", e.ID)
}

// NewValidation creates a ValidationError.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewConflict creates a ConflictError.
func NewConflict(resource, message string) error {
	return &ConflictError{Resource: resource, Message: message}
}

// NewAuth creates an AuthError for an invalid or expired credential.
func NewAuth(message string) error {
	return &AuthError{Message: message}
}

// NewAuthAbsent creates an AuthError for a missing credential.
func NewAuthAbsent(message string) error {
	return &AuthError{Absent: true, Message: message}
}

// NewNotFound creates a NotFoundError.
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewInvalidID creates an InvalidIDError.
func NewInvalidID(id string) error {
	return &InvalidIDError{ID: id}
}

// IsValidation checks whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict checks whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound checks whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// StatusCode maps a recognized error kind to its HTTP status. Unrecognized
// errors map to 500; the handler is responsible for hiding their detail from
// the client.
func StatusCode(err error) int {
	var (
		ve  *ValidationError
		ce  *ConflictError
		ae  *AuthError
		nfe *NotFoundError
		iie *InvalidIDError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ce), errors.As(err, &iie):
		return fiber.StatusBadRequest
	case errors.As(err, &ae):
		return fiber.StatusUnauthorized
	case errors.As(err, &nfe):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to send to the client. Validation
// errors surface their field-specific reason; unexpected errors collapse to a
// generic message.
func ClientMessage(err error) string {
	var (
		ve  *ValidationError
		ce  *ConflictError
		ae  *AuthError
		nfe *NotFoundError
		iie *InvalidIDError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Reason
	case errors.As(err, &ce):
		return ce.Message
	case errors.As(err, &ae):
		return ae.Message
	case errors.As(err, &nfe):
		return fmt.Sprintf("%s not found", nfe.Resource)
	case errors.As(err, &iie):
		return "Invalid identifier"
	default:
		return "An unexpected error occurred"
	}
}

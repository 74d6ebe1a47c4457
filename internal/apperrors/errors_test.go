package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"katalog/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.NewValidation("price", "Price must be a number greater than 0"), fiber.StatusBadRequest},
		{apperrors.NewConflict("product", "duplicate"), fiber.StatusBadRequest},
		{apperrors.NewInvalidID("nope"), fiber.StatusBadRequest},
		{apperrors.NewAuth("Invalid email or password"), fiber.StatusUnauthorized},
		{apperrors.NewAuthAbsent("No token provided"), fiber.StatusUnauthorized},
		{apperrors.NewNotFound("Product", "abc"), fiber.StatusNotFound},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, apperrors.StatusCode(tc.err), tc.err.Error())
	}
}

func TestStatusCodeWrapped(t *testing.T) {
	// Wrapped errors still resolve to their kind.
	wrapped := fmt.Errorf("loading product: %w", apperrors.NewNotFound("Product", "abc"))
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(wrapped))
	assert.True(t, apperrors.IsNotFound(wrapped))
}

func TestClientMessage(t *testing.T) {
	assert.Equal(t, "Passwords do not match",
		apperrors.ClientMessage(apperrors.NewValidation("confirmPassword", "Passwords do not match")))
	assert.Equal(t, "Product not found",
		apperrors.ClientMessage(apperrors.NewNotFound("Product", "abc")))
	assert.Equal(t, "Invalid identifier",
		apperrors.ClientMessage(apperrors.NewInvalidID("nope")))
	// Internal detail never leaks into the client message.
	assert.Equal(t, "An unexpected error occurred",
		apperrors.ClientMessage(errors.New("pq: connection refused")))
}

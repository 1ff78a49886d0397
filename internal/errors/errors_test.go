package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "association"}
		assert.Equal(t, "association not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "association"}
		err2 := &NotFoundError{Entity: "association"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrAssociationNotFound, ErrProjectViewNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrProjectViewNotFound)))
		assert.False(t, IsNotFound(ErrProjectMaterialExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "project-user association already exists for this user", ErrProjectUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "association"}
		assert.Equal(t, "association already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrMutationInFlight))
		assert.False(t, IsAlreadyExists(ErrAssociationNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		assert.Equal(t, "validation error: quantity_assigned - material has no available stock", ErrNoStock.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with server message", func(t *testing.T) {
		err := &APIError{Method: "DELETE", Path: "/project-materials/101", StatusCode: 404, ServerMessage: "gone"}
		assert.Equal(t, "DELETE /project-materials/101 failed: status=404 message=gone", err.Error())
	})

	t.Run("without server message", func(t *testing.T) {
		err := &APIError{Method: "GET", Path: "/users/1", StatusCode: 500}
		assert.Equal(t, "GET /users/1 failed: status=500", err.Error())
	})
}

func TestStaleCompletion(t *testing.T) {
	assert.True(t, IsStaleCompletion(fmt.Errorf("add material: %w", ErrStaleCompletion)))
	assert.False(t, IsStaleCompletion(ErrAssociationNotFound))
}

package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_StatusTable(t *testing.T) {
	tests := []struct {
		status  int
		kind    Kind
		message string
	}{
		{http.StatusBadRequest, KindValidation, "Datos inválidos."},
		{http.StatusUnprocessableEntity, KindValidation, "Datos inválidos."},
		{http.StatusUnauthorized, KindUnauthorized, "No tienes permisos para realizar esta acción."},
		{http.StatusForbidden, KindForbidden, "No tienes autorización para esta acción."},
		{http.StatusNotFound, KindNotFound, "El recurso no existe."},
		{http.StatusConflict, KindConflict, "Ya existe una asociación con este recurso."},
		{http.StatusInternalServerError, KindServerError, "Error interno del servidor."},
		{http.StatusServiceUnavailable, KindServerError, "Error interno del servidor."},
		{http.StatusTeapot, KindUnknown, "No se pudo completar la operación."},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			ce := Classify(&APIError{Method: "POST", Path: "/project-materials", StatusCode: tt.status})
			require.NotNil(t, ce)
			assert.Equal(t, tt.kind, ce.Kind)
			assert.Equal(t, tt.message, ce.Message)
			assert.Equal(t, tt.status, ce.StatusCode)
		})
	}
}

func TestClassify_ServerMessageOverridesDefault(t *testing.T) {
	ce := Classify(fmt.Errorf("create: %w", &APIError{StatusCode: 409, ServerMessage: "El material ya está asignado"}))
	assert.Equal(t, KindConflict, ce.Kind)
	assert.Equal(t, "El material ya está asignado", ce.Message)
}

func TestClassify_NetworkFailureIsUnknown(t *testing.T) {
	ce := Classify(errors.New("dial tcp: connection refused"))
	assert.Equal(t, KindUnknown, ce.Kind)
	assert.Equal(t, "No se pudo completar la operación.", ce.Message)
	assert.Zero(t, ce.StatusCode)

	ce = Classify(context.DeadlineExceeded)
	assert.Equal(t, KindUnknown, ce.Kind)
}

func TestClassify_LocalErrors(t *testing.T) {
	assert.Equal(t, KindUnauthorized, Classify(ErrMissingAccessToken).Kind)
	assert.Equal(t, KindUnauthorized, Classify(ErrAccessTokenExpired).Kind)
	assert.Equal(t, KindForbidden, Classify(NewAuthorizationError("nope")).Kind)
	assert.Equal(t, KindValidation, Classify(ErrNoStock).Kind)
	assert.Equal(t, KindNotFound, Classify(ErrProjectViewNotFound).Kind)

	dup := Classify(ErrProjectMaterialExists)
	assert.Equal(t, KindConflict, dup.Kind)
	assert.Equal(t, "Ya existe una asociación con este recurso.", dup.Message)

	inFlight := Classify(ErrMutationInFlight)
	assert.Equal(t, KindConflict, inFlight.Kind)
	assert.Equal(t, MutationInFlightMessage, inFlight.Message)
}

func TestClassify_IdempotentAndNil(t *testing.T) {
	assert.Nil(t, Classify(nil))

	first := Classify(&APIError{StatusCode: 404})
	second := Classify(fmt.Errorf("again: %w", first))
	assert.Same(t, first, second)
	assert.True(t, IsKind(second, KindNotFound))
	assert.False(t, IsKind(second, KindConflict))
}

func TestClassifier_Overrides(t *testing.T) {
	c := NewClassifier(map[Kind]string{KindNotFound: "Not found", KindConflict: ""})
	assert.Equal(t, "Not found", c.Classify(&APIError{StatusCode: 404}).Message)
	assert.Equal(t, DefaultMessages[KindConflict], c.Classify(&APIError{StatusCode: 409}).Message)
	assert.Equal(t, DefaultMessages[KindNotFound], Classify(&APIError{StatusCode: 404}).Message)
}

func TestParseMessages(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		got, err := ParseMessages([]byte("messages:\n  not_found: \"Recurso eliminado.\"\n  unknown: \"Inténtalo de nuevo.\"\n"))
		require.NoError(t, err)
		assert.Equal(t, map[Kind]string{KindNotFound: "Recurso eliminado.", KindUnknown: "Inténtalo de nuevo."}, got)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ParseMessages([]byte("messages:\n  teapot: \"no\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown error kind")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseMessages([]byte("messages: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse messages file")
	})
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(KindServerError))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(KindUnknown))
}

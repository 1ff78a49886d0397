package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the user-facing category of a failed request
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindServerError  Kind = "server_error"
	KindUnknown      Kind = "unknown"
)

// Kinds lists every kind in taxonomy order
var Kinds = []Kind{
	KindValidation,
	KindUnauthorized,
	KindForbidden,
	KindNotFound,
	KindConflict,
	KindServerError,
	KindUnknown,
}

// DefaultMessages are shown when the server did not supply its own message
var DefaultMessages = map[Kind]string{
	KindValidation:   "Datos inválidos.",
	KindUnauthorized: "No tienes permisos para realizar esta acción.",
	KindForbidden:    "No tienes autorización para esta acción.",
	KindNotFound:     "El recurso no existe.",
	KindConflict:     "Ya existe una asociación con este recurso.",
	KindServerError:  "Error interno del servidor.",
	KindUnknown:      "No se pudo completar la operación.",
}

// MutationInFlightMessage is shown when the same resource already has a pending request
const MutationInFlightMessage = "Ya hay una operación en curso para este recurso."

// ClassifiedError is a failed request reduced to a kind and a message for the user
type ClassifiedError struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

func (e *ClassifiedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err was classified as kind
func IsKind(err error, kind Kind) bool {
	var ce *ClassifiedError
	return errors.As(err, &ce) && ce.Kind == kind
}

// Classifier maps errors to a Kind and a message drawn from its catalog
type Classifier struct {
	messages map[Kind]string
}

// NewClassifier creates a classifier; overrides replace default messages per kind
func NewClassifier(overrides map[Kind]string) *Classifier {
	messages := make(map[Kind]string, len(DefaultMessages))
	for k, v := range DefaultMessages {
		messages[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			messages[k] = v
		}
	}
	return &Classifier{messages: messages}
}

var defaultClassifier = NewClassifier(nil)

// Classify uses the default message catalog
func Classify(err error) *ClassifiedError {
	return defaultClassifier.Classify(err)
}

// Message returns the catalog message for kind
func (c *Classifier) Message(kind Kind) string {
	if msg, ok := c.messages[kind]; ok {
		return msg
	}
	return c.messages[KindUnknown]
}

// Classify maps err to a ClassifiedError. A nil error yields nil.
func (c *Classifier) Classify(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		kind := KindForStatus(apiErr.StatusCode)
		msg := c.Message(kind)
		if apiErr.ServerMessage != "" {
			msg = apiErr.ServerMessage
		}
		return &ClassifiedError{Kind: kind, Message: msg, StatusCode: apiErr.StatusCode, Err: err}
	}

	kind := KindUnknown
	msg := ""
	switch {
	case errors.Is(err, ErrMutationInFlight):
		kind = KindConflict
		msg = MutationInFlightMessage
	case IsValidation(err):
		kind = KindValidation
	case IsAuthentication(err):
		kind = KindUnauthorized
	case IsAuthorization(err):
		kind = KindForbidden
	case IsNotFound(err):
		kind = KindNotFound
	case IsAlreadyExists(err):
		kind = KindConflict
	}
	if msg == "" {
		msg = c.Message(kind)
	}
	return &ClassifiedError{Kind: kind, Message: msg, Err: err}
}

// KindForStatus maps an HTTP status to a Kind
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= http.StatusInternalServerError:
		return KindServerError
	default:
		return KindUnknown
	}
}

// HTTPStatus is the status the front-end API answers with for kind
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in project"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// APIError is a non-2xx answer from the platform API
type APIError struct {
	Method        string
	Path          string
	StatusCode    int
	ServerMessage string
}

func (e *APIError) Error() string {
	if e.ServerMessage != "" {
		return fmt.Sprintf("%s %s failed: status=%d message=%s", e.Method, e.Path, e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("%s %s failed: status=%d", e.Method, e.Path, e.StatusCode)
}

// Entity Not Found Errors
var (
	ErrProjectViewNotFound = &NotFoundError{Entity: "project view"}
	ErrAssociationNotFound = &NotFoundError{Entity: "association"}
)

// Already Exists Errors
var (
	ErrProjectMaterialExists = &AlreadyExistsError{Entity: "project-material association", Context: "for this material"}
	ErrProjectUserExists     = &AlreadyExistsError{Entity: "project-user association", Context: "for this user"}
	ErrMutationInFlight      = &AlreadyExistsError{Entity: "pending mutation", Context: "for this resource"}
)

// Synchronisation Errors
var (
	// ErrStaleCompletion is returned when a response arrives after its project view was torn down.
	ErrStaleCompletion = errors.New("project view closed before the request completed")
	ErrNoStock         = &ValidationError{Field: "quantity_assigned", Message: "material has no available stock"}
)

// Authentication Errors
var (
	ErrMissingAccessToken = &AuthenticationError{Message: "no access token in session"}
	ErrAccessTokenExpired = &AuthenticationError{Message: "access token has expired"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsStaleCompletion checks if an error reports a response dropped after teardown
func IsStaleCompletion(err error) bool {
	return errors.Is(err, ErrStaleCompletion)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

package handlers

import (
	"net/http"

	apperrors "nucleav-frontend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"El recurso no existe."`
	Kind  string `json:"kind" example:"not_found"`
}

// kindStale marks a request whose project view closed before it completed
const kindStale = "stale"

// respondError writes err using the messages of classifier
func respondError(c *gin.Context, classifier *apperrors.Classifier, err error) {
	if apperrors.IsStaleCompletion(err) {
		c.JSON(http.StatusGone, ErrorResponse{Error: err.Error(), Kind: kindStale})
		return
	}
	ce := classifier.Classify(err)
	_ = c.Error(err)
	c.JSON(apperrors.HTTPStatus(ce.Kind), ErrorResponse{Error: ce.Message, Kind: string(ce.Kind)})
}

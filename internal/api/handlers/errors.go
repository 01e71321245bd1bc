package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string                 `json:"error" example:"error message"`
	Code    string                 `json:"code,omitempty" example:"exceeds_capacity"`
	Field   string                 `json:"field,omitempty" example:"ownership_percentage"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// respondError maps a service error to its HTTP status. Unclassified errors are logged and
// reported without their message so driver and schema details stay internal.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   verr.Error(),
			Code:    string(verr.Code),
			Field:   verr.Field,
			Details: verr.Details,
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuth(err), apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsStoreUnavailable(err):
		logger.WithContext(c).WithError(err).Warn("store unavailable")
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		logger.WithContext(c).WithError(err).Error("configuration error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "server is misconfigured"})
	default:
		logger.WithContext(c).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// respondBindError reports a request body that could not be decoded
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "invalid request body: " + err.Error(),
		Code:  string(apperrors.ValidationInvalidInput),
	})
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: name, Message: "must be a positive integer"}
	}
	return id, nil
}

// optionalQueryID parses an optional positive integer query parameter
func optionalQueryID(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: name, Message: "must be a positive integer"}
	}
	return &id, nil
}

package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// TraceIDKey is the gin context key under which the trace id middleware
// stores the per-request id.
const TraceIDKey = "trace_id"

// ErrorResponse is the uniform failure body for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps domain failures onto HTTP status codes.
// 4xx responses carry the service message; anything unexpected is
// logged and answered with a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrProfileNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateCategory),
		errors.Is(err, ErrCategoryNotEmpty):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidCategory):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("[trace=%s] Database error: %v", c.GetString(TraceIDKey), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("[trace=%s] Unknown error: %v", c.GetString(TraceIDKey), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		RespondError(c, http.StatusBadRequest, "Query must not be empty")
	case errors.Is(err, ErrUnresolvedLocation):
		// The wrapped message carries the ranked suggestions.
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInsufficientStops):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrExternalServiceUnavailable):
		log.Printf("Upstream service error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "External service unavailable, try again later")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

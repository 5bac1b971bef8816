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

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, "Place not found")
	case errors.Is(err, ErrNoActiveJourney):
		RespondError(c, http.StatusNotFound, "No active journey")
	case errors.Is(err, ErrJourneyActive):
		RespondError(c, http.StatusConflict, "A journey is already active, abandon it first")
	case errors.Is(err, ErrJourneyNotDone):
		RespondError(c, http.StatusConflict, "Journey is not completed yet")
	case errors.Is(err, ErrEmptyRoute):
		RespondError(c, http.StatusBadRequest, "Route is empty")
	case errors.Is(err, ErrRouteMinLength):
		RespondError(c, http.StatusBadRequest, "Route must keep at least one place")
	case errors.Is(err, ErrAlreadyVisited):
		RespondError(c, http.StatusConflict, "Place already visited")
	case errors.Is(err, ErrPhotoRequired):
		RespondError(c, http.StatusBadRequest, "At least one photo is required to check in")
	case errors.Is(err, ErrInsufficientCoins):
		RespondError(c, http.StatusConflict, "Insufficient coin balance")
	case errors.Is(err, ErrInvalidAmount):
		RespondError(c, http.StatusBadRequest, "Amount must be non-negative")
	case errors.Is(err, ErrInvalidIndex):
		RespondError(c, http.StatusBadRequest, "Index out of range")
	case errors.Is(err, ErrSuggestFailed):
		RespondError(c, http.StatusBadGateway, "Trip suggestion unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/middleware"
	"github.com/lshigami/Tiku/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError maps a service error onto its HTTP status and writes the
// JSON error body. Unknown errors are logged and reported generically.
func RespondError(c *gin.Context, err error) {
	var active *service.ActiveSessionError
	switch {
	case errors.As(err, &active):
		c.JSON(http.StatusConflict, dto.ActiveSessionErrorResponse{Error: service.ErrSessionAlreadyActive.Error(), ExamID: active.SessionID})
	case errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, service.ErrUnreadableSpreadsheet),
		errors.Is(err, service.ErrInvalidQuestion):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrSessionAlreadyActive),
		errors.Is(err, service.ErrAlreadyCompleted),
		errors.Is(err, service.ErrDuplicateQuestion):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrExplanationUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// BindError writes a 400 for a request that failed binding or validation.
func BindError(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request", Details: []string{err.Error()}})
}

// ParseID reads a positive integer path parameter. On failure it writes a
// 400 and returns false.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// Caller returns the authenticated user id. On failure it writes a 401 and
// returns false.
func Caller(c *gin.Context) (uint, bool) {
	id, err := middleware.CallerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
		return 0, false
	}
	return id, true
}

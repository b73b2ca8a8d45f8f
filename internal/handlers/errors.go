package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request. Kind lets clients tell
// "not signed in" apart from "not allowed" and "no longer exists".
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		status, kind = http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, apperrors.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrForbidden):
		status, kind = http.StatusForbidden, "forbidden"
	case errors.Is(err, apperrors.ErrValidation):
		status, kind = http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, apperrors.ErrDuplicate):
		status, kind = http.StatusConflict, "conflict"
	}

	if status == http.StatusInternalServerError {
		logger.Error(action+" failed", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: action + " failed", Kind: kind})
		return
	}

	logger.Warn(action+" rejected", slog.String("kind", kind), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error(), Kind: kind})
}

// respondBindError reports a malformed request body.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Kind: "invalid_argument"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studymood/studymood-backend/internal/http/response"
	apperrors "github.com/studymood/studymood-backend/internal/pkg/errors"
)

// respondServiceError maps a service error onto the matching HTTP status.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, apperrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrInvalidEmotionReading):
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, apperrors.ErrDataUnavailable):
		response.RespondError(c, http.StatusServiceUnavailable, "data_unavailable", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/niveshfolio/portfolio-backend/internal/api/response"
	"github.com/niveshfolio/portfolio-backend/internal/apperrors"
	"github.com/niveshfolio/portfolio-backend/internal/validation"
)

// respondServiceError maps service and repository errors to HTTP statuses.
// fallback names the operation that failed and is used for unclassified
// errors.
func respondServiceError(w http.ResponseWriter, err error, fallback error) {
	var verr *validation.Error

	switch {
	case errors.Is(err, apperrors.ErrHoldingNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), "")
	case errors.Is(err, apperrors.ErrDuplicateHolding):
		response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateHolding.Error(), "")
	case errors.Is(err, validation.ErrInvalidUUID):
		response.RespondError(w, http.StatusBadRequest, validation.ErrInvalidUUID.Error(), err.Error())
	case errors.As(err, &verr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, fallback.Error(), err.Error())
	}
}

package handlers

import (
	"errors"
	"net/http"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase"
	"contractor_estimates/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(c *gin.Context) {
	writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
}

// mapCommonError covers the failures shared by every surface: wizard validation,
// estimate arithmetic, lead lookups and remote collaborator classes.
func mapCommonError(err error) *pkg.AppError {
	var vErr *wizard.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainError("VALIDATION_FAILED", vErr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, wizard.ErrValidation):
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidEstimateDocument), errors.Is(err, entities.ErrInvalidLineItem), errors.Is(err, entities.ErrEstimateIntegrity):
		return pkg.NewDomainError("INVALID_ESTIMATE", "Invalid estimate", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidContractorID), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadFetchFailed):
		return pkg.NewRetryableError("LEAD_UNAVAILABLE", "Lead could not be loaded, try again", err)
	case errors.Is(err, usecase.ErrEstimateNotReady):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_READY", "Estimate not ready", http.StatusConflict)
	case errors.Is(err, wizard.ErrTimeout):
		return pkg.NewDomainError("UPSTREAM_TIMEOUT", "Upstream service timed out", err, http.StatusGatewayTimeout)
	case errors.Is(err, wizard.ErrNotFound):
		return pkg.NewDomainError("UPSTREAM_NOT_FOUND", "Upstream resource not found", err, http.StatusNotFound)
	case errors.Is(err, wizard.ErrNetwork):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Upstream service unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

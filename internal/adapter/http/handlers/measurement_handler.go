package handlers

import (
	"errors"
	"net/http"

	"contractor_estimates/internal/adapter/http/dto/request"
	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase"
	"contractor_estimates/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MeasurementHandler struct {
	usecase usecase.IMeasurementUseCase
	logger  *zap.Logger
}

func NewMeasurementHandler(uc usecase.IMeasurementUseCase, logger *zap.Logger) *MeasurementHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeasurementHandler{usecase: uc, logger: logger}
}

// Measure godoc
// @Summary Suggest a measurement from photos
// @Tags measurements
// @Accept json
// @Produce json
// @Param body body request.MeasurementRequest true "images, description and unit"
// @Success 200 {object} entities.MeasurementResult
// @Failure 502 {object} pkg.HTTPError
// @Router /measurements [post]
func (h *MeasurementHandler) Measure(c *gin.Context) {
	var req request.MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	res, err := h.usecase.Measure(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.logger.Warn("[measurement][handler] measure failed", zap.Int("images", len(req.Images)), zap.Error(err))
		writeError(c, mapMeasurementError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapMeasurementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMeasurementNoImages), errors.Is(err, usecase.ErrMeasurementNoUnit):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidMeasurement):
		return pkg.NewDomainError("INVALID_MEASUREMENT", "Measurement service returned an unusable result", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}

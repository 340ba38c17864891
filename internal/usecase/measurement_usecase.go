package usecase

import (
	"context"
	"errors"
	"strings"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMeasurementNoImages = errors.New("at least one image is required")
	ErrMeasurementNoUnit   = errors.New("unit is required")
)

// IMeasurementUseCase proxies measurement assist for measurement questions.
type IMeasurementUseCase interface {
	Measure(ctx context.Context, req entities.MeasurementRequest) (entities.MeasurementResult, error)
}

type MeasurementUseCase struct {
	service interfaces.IMeasurementService
	logger  *zap.Logger
}

var _ IMeasurementUseCase = (*MeasurementUseCase)(nil)

func NewMeasurementUseCase(service interfaces.IMeasurementService, logger *zap.Logger) *MeasurementUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeasurementUseCase{service: service, logger: logger}
}

func (u *MeasurementUseCase) Measure(ctx context.Context, req entities.MeasurementRequest) (entities.MeasurementResult, error) {
	images := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		return entities.MeasurementResult{}, ErrMeasurementNoImages
	}
	req.Images = images
	req.Unit = strings.TrimSpace(req.Unit)
	if req.Unit == "" {
		return entities.MeasurementResult{}, ErrMeasurementNoUnit
	}
	req.Description = strings.TrimSpace(req.Description)

	res, err := u.service.Measure(ctx, req)
	if err != nil {
		u.logger.Warn("[measurement][usecase] remote measure failed", zap.Int("images", len(images)), zap.Error(err))
		return entities.MeasurementResult{}, classifyRemoteError(err)
	}
	if err := res.Validate(); err != nil {
		u.logger.Warn("[measurement][usecase] rejected measurement result",
			zap.Float64("value", res.Measurements.Primary.Value), zap.Float64("confidence", res.Confidence))
		return entities.MeasurementResult{}, err
	}
	return res, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	mock_interfaces "contractor_estimates/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func measured(value, confidence float64) entities.MeasurementResult {
	var r entities.MeasurementResult
	r.Measurements.Primary = entities.Measurement{Value: value, Unit: "sqft", Dimension: "floor area"}
	r.Confidence = confidence
	return r
}

func TestMeasurementUseCase_Measure(t *testing.T) {
	t.Run("trims and forwards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockIMeasurementService(ctrl)
		uc := NewMeasurementUseCase(svc, nil)
		svc.EXPECT().Measure(gomock.Any(), entities.MeasurementRequest{Images: []string{"https://cdn/a.jpg"}, Description: "kitchen", Unit: "sqft"}).
			Return(measured(120, 0.8), nil)

		res, err := uc.Measure(context.Background(), entities.MeasurementRequest{Images: []string{" ", "https://cdn/a.jpg"}, Description: " kitchen ", Unit: " sqft"})
		if err != nil || res.Measurements.Primary.Value != 120 {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("requires images", func(t *testing.T) {
		uc := NewMeasurementUseCase(nil, nil)
		if _, err := uc.Measure(context.Background(), entities.MeasurementRequest{Unit: "sqft"}); !errors.Is(err, ErrMeasurementNoImages) {
			t.Fatalf("expected ErrMeasurementNoImages, got %v", err)
		}
	})

	t.Run("requires unit", func(t *testing.T) {
		uc := NewMeasurementUseCase(nil, nil)
		if _, err := uc.Measure(context.Background(), entities.MeasurementRequest{Images: []string{"a"}}); !errors.Is(err, ErrMeasurementNoUnit) {
			t.Fatalf("expected ErrMeasurementNoUnit, got %v", err)
		}
	})

	t.Run("remote failure is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockIMeasurementService(ctrl)
		uc := NewMeasurementUseCase(svc, nil)
		svc.EXPECT().Measure(gomock.Any(), gomock.Any()).Return(entities.MeasurementResult{}, context.DeadlineExceeded)

		_, err := uc.Measure(context.Background(), entities.MeasurementRequest{Images: []string{"a"}, Unit: "ft"})
		if !errors.Is(err, wizard.ErrTimeout) {
			t.Fatalf("expected ErrTimeout, got %v", err)
		}
	})

	t.Run("rejects out of range confidence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockIMeasurementService(ctrl)
		uc := NewMeasurementUseCase(svc, nil)
		svc.EXPECT().Measure(gomock.Any(), gomock.Any()).Return(measured(10, 1.5), nil)

		_, err := uc.Measure(context.Background(), entities.MeasurementRequest{Images: []string{"a"}, Unit: "ft"})
		if !errors.Is(err, entities.ErrInvalidMeasurement) {
			t.Fatalf("expected ErrInvalidMeasurement, got %v", err)
		}
	})
}

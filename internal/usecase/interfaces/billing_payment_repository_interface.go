package interfaces

import (
	"context"

	"contractor_estimates/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence of deposit payments.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.BillingPayment, error)
}

package interfaces

import (
	"context"

	"contractor_estimates/internal/domain/entities"
)

// ICategoryRepository reads a contractor's category catalog in display order.
type ICategoryRepository interface {
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.Category, error)
}

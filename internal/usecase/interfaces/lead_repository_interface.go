package interfaces

import (
	"context"

	"contractor_estimates/internal/domain/entities"
)

// ILeadRepository abstracts persistence of leads.
//
// Lookups and updates of a missing lead return a zero Lead and a nil error; callers
// check ID == "".
type ILeadRepository interface {
	Get(ctx context.Context, id string) (entities.Lead, error)
	Insert(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	Update(ctx context.Context, id string, update entities.LeadUpdate) (entities.Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.Lead, error)
}

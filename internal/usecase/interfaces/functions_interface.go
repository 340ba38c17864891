package interfaces

import (
	"context"

	"contractor_estimates/internal/domain/entities"
)

// FormData is what the generation function receives about the customer's project.
type FormData struct {
	Contact            entities.ContactInfo       `json:"contact"`
	ProjectDescription string                     `json:"projectDescription"`
	Photos             []string                   `json:"photos"`
	CategoryIDs        []string                   `json:"categoryIds"`
	Answers            []entities.CategoryAnswers `json:"answers"`
	// AdditionalWork is set when a line is added to an existing estimate.
	AdditionalWork string `json:"additionalWork,omitempty"`
}

type GenerateEstimateRequest struct {
	LeadID       string   `json:"leadId"`
	ContractorID string   `json:"contractorId"`
	FormData     FormData `json:"formData"`
}

// IEstimateGenerator calls the remote estimate-generation function. It may be slow
// and may fail; callers bound it with a timeout.
type IEstimateGenerator interface {
	GenerateEstimate(ctx context.Context, req GenerateEstimateRequest) (entities.EstimateDocument, error)
}

// IMeasurementService calls the remote measurement-assist function.
type IMeasurementService interface {
	Measure(ctx context.Context, req entities.MeasurementRequest) (entities.MeasurementResult, error)
}

// IEstimateMailer delivers an estimate to the lead's customer.
type IEstimateMailer interface {
	SendEstimate(ctx context.Context, lead entities.Lead) error
}

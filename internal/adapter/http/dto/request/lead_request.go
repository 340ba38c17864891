package request

import (
	"encoding/json"
	"errors"
	"strings"

	"contractor_estimates/internal/domain/entities"
)

var ErrMissingEstimate = errors.New("estimate is required")

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r LeadStatusRequest) LeadStatus() entities.LeadStatus {
	return entities.LeadStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// ReplaceEstimateRequest carries a full estimate_data document. It is decoded
// strictly so unknown fields are rejected.
type ReplaceEstimateRequest struct {
	Estimate json.RawMessage `json:"estimate"`
}

func (r ReplaceEstimateRequest) Document() (entities.EstimateDocument, error) {
	raw := strings.TrimSpace(string(r.Estimate))
	if raw == "" || raw == "null" {
		return entities.EstimateDocument{}, ErrMissingEstimate
	}
	return entities.ParseEstimateDocument(r.Estimate)
}

type AddLineRequest struct {
	Description string `json:"description" binding:"required"`
}

type SignRequest struct {
	Signer string `json:"signer" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

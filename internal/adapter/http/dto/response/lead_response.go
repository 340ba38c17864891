package response

import (
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase"
)

type LeadResponse struct {
	LeadID             string                     `json:"lead_id"`
	ContractorID       string                     `json:"contractor_id"`
	Status             string                     `json:"status"`
	Contact            entities.ContactInfo       `json:"contact"`
	ProjectDescription string                     `json:"project_description"`
	Photos             []string                   `json:"photos"`
	CategoryIDs        []string                   `json:"category_ids"`
	Answers            []entities.CategoryAnswers `json:"answers"`
	Estimate           *entities.EstimateDocument `json:"estimate_data,omitempty"`

	ContractorSignature *entities.Signature `json:"contractor_signature,omitempty"`
	CustomerSignature   *entities.Signature `json:"customer_signature,omitempty"`
	SentAt              *time.Time          `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		LeadID:              l.ID,
		ContractorID:        l.ContractorID,
		Status:              string(l.Status),
		Contact:             l.Contact,
		ProjectDescription:  l.ProjectDescription,
		Photos:              nonNil(l.Photos),
		CategoryIDs:         nonNil(l.CategoryIDs),
		Answers:             l.Answers,
		Estimate:            l.Estimate,
		ContractorSignature: l.ContractorSignature,
		CustomerSignature:   l.CustomerSignature,
		SentAt:              l.SentAt,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

func FromLeads(ls []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLead(l))
	}
	return out
}

// WaitResponse reports a bounded wait; done=false means generation is still running
// and the client may poll again.
type WaitResponse struct {
	Done     bool         `json:"done"`
	Attempts int          `json:"attempts"`
	Lead     LeadResponse `json:"lead"`
}

func FromPollResult(r usecase.PollResult) WaitResponse {
	return WaitResponse{Done: r.Done, Attempts: r.Attempts, Lead: FromLead(r.Lead)}
}

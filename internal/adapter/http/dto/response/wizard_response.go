package response

import (
	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase"
)

// SessionResponse is the customer-facing view of one wizard run.
type SessionResponse struct {
	SessionID    string `json:"session_id"`
	ContractorID string `json:"contractor_id"`
	Stage        string `json:"stage"`
	StageNumber  int    `json:"stage_number"`
	TotalStages  int    `json:"total_stages"`
	Progress     int    `json:"progress"`

	Photos              []string                   `json:"photos"`
	Description         string                     `json:"description"`
	SelectedCategories  []string                   `json:"selected_categories"`
	CompletedCategories []string                   `json:"completed_categories"`
	Questions           *entities.QuestionSet      `json:"questions,omitempty"`
	RemainingSets       int                        `json:"remaining_question_sets"`
	Answers             []entities.CategoryAnswers `json:"answers"`

	LeadID         string                     `json:"lead_id,omitempty"`
	Estimate       *entities.EstimateDocument `json:"estimate,omitempty"`
	EstimateSource string                     `json:"estimate_source,omitempty"`
}

func FromView(v wizard.View) SessionResponse {
	return SessionResponse{
		SessionID:           v.ID,
		ContractorID:        v.ContractorID,
		Stage:               string(v.Stage),
		StageNumber:         v.Stage.Index() + 1,
		TotalStages:         len(wizard.Stages()),
		Progress:            v.Progress,
		Photos:              nonNil(v.UploadedPhotos),
		Description:         v.ProjectDescription,
		SelectedCategories:  nonNil(v.SelectedCategories),
		CompletedCategories: nonNil(v.CompletedCategories),
		Questions:           v.ActiveQuestionSet,
		RemainingSets:       v.RemainingSets,
		Answers:             v.Answers,
		LeadID:              v.LeadID,
		Estimate:            v.Estimate,
		EstimateSource:      string(v.EstimateSource),
	}
}

// SubmissionResponse is returned by the contact step. warning is set when the
// placeholder estimate was used.
type SubmissionResponse struct {
	LeadID   string                    `json:"lead_id"`
	Source   string                    `json:"estimate_source"`
	Estimate entities.EstimateDocument `json:"estimate"`
	Warning  string                    `json:"warning,omitempty"`
	Session  SessionResponse           `json:"session"`
}

func FromSubmission(r usecase.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		LeadID:   r.LeadID,
		Source:   string(r.Source),
		Estimate: r.Estimate,
		Warning:  r.Warning,
		Session:  FromView(r.View),
	}
}

type CategoryResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Questions   []entities.Question `json:"questions"`
}

func FromCategories(cs []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Questions:   nonNilQuestions(c.Questions),
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilQuestions(q []entities.Question) []entities.Question {
	if q == nil {
		return []entities.Question{}
	}
	return q
}

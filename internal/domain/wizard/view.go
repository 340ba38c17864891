package wizard

import "contractor_estimates/internal/domain/entities"

// View is a detached copy of a session, safe to hand to another goroutine.
type View struct {
	ID                  string                     `json:"id"`
	ContractorID        string                     `json:"contractor_id"`
	Stage               Stage                      `json:"stage"`
	Progress            int                        `json:"progress"`
	UploadedPhotos      []string                   `json:"uploaded_photos"`
	ProjectDescription  string                     `json:"project_description"`
	SelectedCategory    string                     `json:"selected_category,omitempty"`
	SelectedCategories  []string                   `json:"selected_categories"`
	CompletedCategories []string                   `json:"completed_categories"`
	ActiveQuestionSet   *entities.QuestionSet      `json:"active_question_set,omitempty"`
	RemainingSets       int                        `json:"remaining_question_sets"`
	Answers             []entities.CategoryAnswers `json:"answers"`
	LeadID              string                     `json:"lead_id,omitempty"`
	Estimate            *entities.EstimateDocument `json:"estimate,omitempty"`
	EstimateSource      EstimateSource             `json:"estimate_source,omitempty"`
}

func (s *Session) Snapshot() View {
	v := View{
		ID:                  s.ID,
		ContractorID:        s.ContractorID,
		Stage:               s.Stage,
		Progress:            s.Progress.Value,
		UploadedPhotos:      cloneStrings(s.UploadedPhotos),
		ProjectDescription:  s.ProjectDescription,
		SelectedCategory:    s.SelectedCategory,
		SelectedCategories:  cloneStrings(s.SelectedCategories),
		CompletedCategories: cloneStrings(s.CompletedCategories),
		Answers:             s.Answers.Records(),
		LeadID:              s.LeadID,
		EstimateSource:      s.EstimateSource,
	}
	if s.Stage == StageQuestions {
		if set, ok := s.ActiveQuestionSet(); ok {
			v.ActiveQuestionSet = &set
			v.RemainingSets = len(s.MatchedQuestionSets) - s.ActiveSet - 1
		}
	}
	if s.Estimate != nil {
		doc := s.Estimate.Clone()
		v.Estimate = &doc
	}
	return v
}

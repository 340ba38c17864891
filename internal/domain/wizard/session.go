// Package wizard holds the customer estimate wizard as a plain state machine.
//
// A Session is owned by exactly one caller. Every mutating method validates first
// and returns a *ValidationError without touching the session when the action is
// not allowed in the current stage.
package wizard

import (
	"strings"
	"unicode/utf8"

	"contractor_estimates/internal/domain/entities"
)

// MinDescriptionLength is counted in characters after trimming.
const MinDescriptionLength = 30

// EstimateSource tells whether the estimate came from the generation service.
type EstimateSource string

const (
	SourceRemote   EstimateSource = "remote"
	SourceFallback EstimateSource = "fallback"
)

type Session struct {
	ID           string
	ContractorID string
	Stage        Stage

	UploadedPhotos     []string
	ProjectDescription string

	SelectedCategory    string
	SelectedCategories  []string
	CompletedCategories []string
	MatchedQuestionSets []entities.QuestionSet
	ActiveSet           int
	Answers             *Answers

	LeadID         string
	Estimate       *entities.EstimateDocument
	EstimateSource EstimateSource

	Progress  Reading
	Smoothing SmoothingPolicy
}

func NewSession(id, contractorID string) *Session {
	return &Session{
		ID:           id,
		ContractorID: contractorID,
		Stage:        StagePhoto,
		Answers:      NewAnswers(),
		Progress:     Reading{Stage: StagePhoto, Value: 0},
		Smoothing:    DefaultSmoothing,
	}
}

// ActiveQuestionSet is the set being answered, if any.
func (s *Session) ActiveQuestionSet() (entities.QuestionSet, bool) {
	if s.ActiveSet < 0 || s.ActiveSet >= len(s.MatchedQuestionSets) {
		return entities.QuestionSet{}, false
	}
	return s.MatchedQuestionSets[s.ActiveSet], true
}

func (s *Session) SetPhotos(urls []string) error {
	if !s.Stage.Before(StageCategory) {
		return invalid(s.Stage, "photos", "photos can only change before category selection")
	}
	photos := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			photos = append(photos, u)
		}
	}
	s.UploadedPhotos = photos
	return nil
}

func (s *Session) SetDescription(text string) error {
	if !s.Stage.Before(StageCategory) {
		return invalid(s.Stage, "description", "description can only change before category selection")
	}
	s.ProjectDescription = text
	return nil
}

// SelectCategories replaces the selection and rebuilds the question sets in the
// given order. Categories without questions are completed immediately.
func (s *Session) SelectCategories(categories []entities.Category) error {
	if s.Stage != StageCategory {
		return invalid(s.Stage, "categories", "categories are selected in the category stage")
	}
	if len(categories) == 0 {
		return invalid(s.Stage, "categories", "select at least one category")
	}
	selected := make([]string, 0, len(categories))
	completed := make([]string, 0)
	sets := make([]entities.QuestionSet, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		selected = append(selected, c.ID)
		if len(c.Questions) == 0 {
			completed = append(completed, c.ID)
			continue
		}
		sets = append(sets, entities.QuestionSetFor(c))
	}
	s.SelectedCategories = selected
	s.SelectedCategory = selected[0]
	s.CompletedCategories = completed
	s.MatchedQuestionSets = sets
	s.ActiveSet = 0
	s.refreshProgress()
	return nil
}

// CanAdvance applies the guard of the current stage's forward transition.
func (s *Session) CanAdvance() error {
	switch s.Stage {
	case StagePhoto:
		return nil
	case StageDescription:
		if n := utf8.RuneCountInString(strings.TrimSpace(s.ProjectDescription)); n < MinDescriptionLength {
			return invalid(s.Stage, "description", "description must be at least 30 characters")
		}
		return nil
	case StageCategory:
		if len(s.SelectedCategories) == 0 {
			return invalid(s.Stage, "categories", "select at least one category")
		}
		return nil
	case StageQuestions:
		set, ok := s.ActiveQuestionSet()
		if !ok {
			return nil
		}
		for _, q := range set.Questions {
			if !q.Required {
				continue
			}
			ans, answered := s.Answers.Get(set.CategoryID, q.ID)
			if !answered || !answerComplete(q, ans) {
				return invalid(s.Stage, q.ID, "required question is not answered")
			}
		}
		return nil
	case StageContact:
		return invalid(s.Stage, "contact", "submit contact details or skip to see the estimate")
	case StageEstimate:
		return invalid(s.Stage, "", "estimate is the final stage")
	}
	return invalid(s.Stage, "", "unknown stage")
}

// Advance moves one step forward. In the questions stage each call completes the
// active category; the last one moves on to contact. A category selection with no
// questions at all skips straight to contact.
func (s *Session) Advance() error {
	if err := s.CanAdvance(); err != nil {
		return err
	}

	ev := EventNext
	switch s.Stage {
	case StageCategory:
		if len(s.MatchedQuestionSets) == 0 {
			ev = EventQuestionsEmpty
		}
	case StageQuestions:
		if set, ok := s.ActiveQuestionSet(); ok {
			if s.ActiveSet+1 < len(s.MatchedQuestionSets) {
				s.CompletedCategories = appendUnique(s.CompletedCategories, set.CategoryID)
				s.ActiveSet++
				s.SelectedCategory = s.MatchedQuestionSets[s.ActiveSet].CategoryID
				s.refreshProgress()
				return nil
			}
			s.CompletedCategories = appendUnique(s.CompletedCategories, set.CategoryID)
		}
	}

	next, err := Transition(s.Stage, ev)
	if err != nil {
		return err
	}
	s.Stage = next
	s.refreshProgress()
	return nil
}

// RecordAnswer overwrites the answer to a question of the active set. values is
// the complete new selection.
func (s *Session) RecordAnswer(questionID string, values []string) error {
	if s.Stage != StageQuestions {
		return invalid(s.Stage, "answers", "answers are recorded in the questions stage")
	}
	set, ok := s.ActiveQuestionSet()
	if !ok {
		return invalid(s.Stage, "answers", "no active question set")
	}
	q, ok := set.Find(questionID)
	if !ok {
		return invalid(s.Stage, questionID, "unknown question")
	}

	selected := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		selected = append(selected, v)
	}
	if q.Type.SingleValued() && len(selected) > 1 {
		return invalid(s.Stage, questionID, "question accepts a single answer")
	}
	if constrained(q) {
		for _, v := range selected {
			if !contains(q.Options, v) {
				return invalid(s.Stage, questionID, "value "+v+" is not an option")
			}
		}
	}

	s.Answers.Set(set.CategoryID, q.ID, Answer{
		QuestionText:   q.Text,
		SelectedValues: selected,
		Options:        cloneStrings(q.Options),
	})
	s.refreshProgress()
	return nil
}

// AttachLead records the lead created for this session. A session keeps the first
// lead it is given.
func (s *Session) AttachLead(leadID string) error {
	if s.Stage != StageContact {
		return invalid(s.Stage, "lead", "a lead is attached in the contact stage")
	}
	if leadID == "" {
		return invalid(s.Stage, "lead", "lead id is required")
	}
	if s.LeadID != "" && s.LeadID != leadID {
		return invalid(s.Stage, "lead", "session already has a lead")
	}
	s.LeadID = leadID
	return nil
}

// CompleteContact is the contact → estimate transition. Only the first call wins;
// later calls fail because the session is no longer in the contact stage.
func (s *Session) CompleteContact(ev Event, doc entities.EstimateDocument, source EstimateSource) error {
	if s.Stage != StageContact {
		return invalid(s.Stage, "", "estimate already delivered")
	}
	if s.LeadID == "" {
		return invalid(s.Stage, "lead", "contact must be submitted or skipped first")
	}
	next, err := Transition(s.Stage, ev)
	if err != nil {
		return err
	}
	s.Stage = next
	s.setEstimate(doc, source)
	s.refreshProgress()
	return nil
}

// EditEstimateItem changes one line item of the delivered estimate.
func (s *Session) EditEstimateItem(ref entities.LineItemRef, quantity, unitAmount float64) error {
	if s.Stage != StageEstimate || s.Estimate == nil {
		return invalid(s.Stage, "estimate", "no estimate to edit")
	}
	doc, err := entities.EditLineItem(*s.Estimate, ref, quantity, unitAmount)
	if err != nil {
		return invalid(s.Stage, "estimate", err.Error())
	}
	s.Estimate = &doc
	return nil
}

// ReplaceEstimate swaps the delivered estimate in place (regenerate or merge).
func (s *Session) ReplaceEstimate(doc entities.EstimateDocument, source EstimateSource) error {
	if s.Stage != StageEstimate {
		return invalid(s.Stage, "estimate", "no estimate to replace")
	}
	s.setEstimate(doc, source)
	return nil
}

func (s *Session) setEstimate(doc entities.EstimateDocument, source EstimateSource) {
	d := entities.Recalculate(doc)
	s.Estimate = &d
	s.EstimateSource = source
}

func (s *Session) refreshProgress() {
	policy := s.Smoothing
	if policy.HoldBelow == 0 {
		policy = DefaultSmoothing
	}
	s.Progress = policy.Apply(s.Progress, Reading{Stage: s.Stage, Value: ComputeProgress(s)})
}

func answerComplete(q entities.Question, ans Answer) bool {
	n := len(ans.SelectedValues)
	if q.Type.SingleValued() {
		return n == 1
	}
	return n >= 1
}

// constrained reports whether answers must come from the option list.
func constrained(q entities.Question) bool {
	if len(q.Options) == 0 {
		return false
	}
	return q.Type != entities.QuestionTypeText && q.Type != entities.QuestionTypeMeasurement
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	if contains(list, v) {
		return list
	}
	return append(list, v)
}

package wizard

import (
	"encoding/json"

	"contractor_estimates/internal/domain/entities"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Answer is the recorded response to one question.
type Answer struct {
	QuestionText   string   `json:"questionText"`
	SelectedValues []string `json:"selectedValues"`
	Options        []string `json:"options"`
}

// Answers maps category → question → answer. Both levels keep first-insertion
// order; overwriting an answer does not move it.
type Answers struct {
	byCategory *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, Answer]]
}

func NewAnswers() *Answers {
	return &Answers{byCategory: orderedmap.New[string, *orderedmap.OrderedMap[string, Answer]]()}
}

// Set replaces the answer for questionID.
func (a *Answers) Set(categoryID, questionID string, ans Answer) {
	questions, ok := a.byCategory.Get(categoryID)
	if !ok {
		questions = orderedmap.New[string, Answer]()
		a.byCategory.Set(categoryID, questions)
	}
	questions.Set(questionID, ans)
}

func (a *Answers) Get(categoryID, questionID string) (Answer, bool) {
	questions, ok := a.byCategory.Get(categoryID)
	if !ok {
		return Answer{}, false
	}
	return questions.Get(questionID)
}

// Categories lists category ids in first-answered order.
func (a *Answers) Categories() []string {
	out := make([]string, 0, a.byCategory.Len())
	for pair := a.byCategory.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Records flattens the answers for persistence and review rendering.
func (a *Answers) Records() []entities.CategoryAnswers {
	out := make([]entities.CategoryAnswers, 0, a.byCategory.Len())
	for cat := a.byCategory.Oldest(); cat != nil; cat = cat.Next() {
		ca := entities.CategoryAnswers{CategoryID: cat.Key, Answers: make([]entities.AnswerRecord, 0, cat.Value.Len())}
		for q := cat.Value.Oldest(); q != nil; q = q.Next() {
			ca.Answers = append(ca.Answers, entities.AnswerRecord{
				QuestionID:     q.Key,
				QuestionText:   q.Value.QuestionText,
				SelectedValues: cloneStrings(q.Value.SelectedValues),
				Options:        cloneStrings(q.Value.Options),
			})
		}
		out = append(out, ca)
	}
	return out
}

func (a *Answers) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.byCategory)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

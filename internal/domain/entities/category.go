package entities

// QuestionType decides how many values an answer may carry.
type QuestionType string

const (
	QuestionTypeSingle      QuestionType = "single"
	QuestionTypeYesNo       QuestionType = "yes_no"
	QuestionTypeMultiple    QuestionType = "multiple"
	QuestionTypeText        QuestionType = "text"
	QuestionTypeMeasurement QuestionType = "measurement"
)

// SingleValued reports whether a complete answer has exactly one value.
func (t QuestionType) SingleValued() bool {
	return t != QuestionTypeMultiple
}

type Question struct {
	ID       string       `json:"id" dynamodbav:"id"`
	Text     string       `json:"text" dynamodbav:"text"`
	Type     QuestionType `json:"type" dynamodbav:"type"`
	Options  []string     `json:"options,omitempty" dynamodbav:"options,omitempty"`
	Required bool         `json:"required" dynamodbav:"required"`
	// Unit is set on measurement questions (e.g. "sqft").
	Unit string `json:"unit,omitempty" dynamodbav:"unit,omitempty"`
}

// Category is one entry of a contractor's service catalog.
//
// Storage model (DynamoDB):
//   - PK: contractor_id, SK: id
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Keywords    []string   `json:"keywords"`
	Questions   []Question `json:"questions"`
}

// QuestionSet is the ordered list of questions asked for one selected category.
type QuestionSet struct {
	CategoryID   string     `json:"category_id"`
	CategoryName string     `json:"category_name"`
	Questions    []Question `json:"questions"`
}

func (qs QuestionSet) Find(questionID string) (Question, bool) {
	for _, q := range qs.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}

func (qs QuestionSet) RequiredCount() int {
	n := 0
	for _, q := range qs.Questions {
		if q.Required {
			n++
		}
	}
	return n
}

func QuestionSetFor(c Category) QuestionSet {
	qs := make([]Question, len(c.Questions))
	copy(qs, c.Questions)
	return QuestionSet{CategoryID: c.ID, CategoryName: c.Name, Questions: qs}
}

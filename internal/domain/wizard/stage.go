package wizard

// Stage is one step of the customer-facing wizard.
type Stage string

const (
	StagePhoto       Stage = "photo"
	StageDescription Stage = "description"
	StageCategory    Stage = "category"
	StageQuestions   Stage = "questions"
	StageContact     Stage = "contact"
	StageEstimate    Stage = "estimate"
)

var stageOrder = []Stage{StagePhoto, StageDescription, StageCategory, StageQuestions, StageContact, StageEstimate}

// Index is the position of s in the fixed order, or -1.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Stage) Valid() bool {
	return s.Index() >= 0
}

// Before reports whether s comes strictly before other.
func (s Stage) Before(other Stage) bool {
	return s.Index() < other.Index()
}

func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Event drives Transition.
type Event string

const (
	EventNext             Event = "next"
	EventQuestionsEmpty   Event = "questions_empty"
	EventContactSubmitted Event = "contact_submitted"
	EventContactSkipped   Event = "contact_skipped"
)

type transitionKey struct {
	from Stage
	ev   Event
}

var transitions = map[transitionKey]Stage{
	{StagePhoto, EventNext}:               StageDescription,
	{StageDescription, EventNext}:         StageCategory,
	{StageCategory, EventNext}:            StageQuestions,
	{StageCategory, EventQuestionsEmpty}:  StageContact,
	{StageQuestions, EventNext}:           StageContact,
	{StageContact, EventContactSubmitted}: StageEstimate,
	{StageContact, EventContactSkipped}:   StageEstimate,
}

// Transition is the pure stage table. Guards live in CanAdvance.
func Transition(from Stage, ev Event) (Stage, error) {
	if from == StageEstimate {
		return from, invalid(from, "", "estimate is the final stage")
	}
	next, ok := transitions[transitionKey{from, ev}]
	if !ok {
		return from, invalid(from, "", "event "+string(ev)+" is not allowed here")
	}
	return next, nil
}

// ValidateTransition reports whether any event moves from to to.
func ValidateTransition(from, to Stage) error {
	for k, target := range transitions {
		if k.from == from && target == to {
			return nil
		}
	}
	return invalid(from, "", "cannot move to "+string(to))
}

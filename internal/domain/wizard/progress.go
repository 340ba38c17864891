package wizard

import "math"

var stageBase = map[Stage]int{
	StagePhoto:       0,
	StageDescription: 20,
	StageCategory:    40,
	StageQuestions:   60,
	StageContact:     80,
	StageEstimate:    100,
}

// Reading is a progress value tagged with the stage it was taken in.
type Reading struct {
	Stage Stage `json:"stage"`
	Value int   `json:"value"`
}

// SmoothingPolicy decides which progress value is shown. Within one stage a drop
// smaller than HoldBelow keeps the previous value; larger drops and stage changes
// pass through.
type SmoothingPolicy struct {
	HoldBelow int
}

var DefaultSmoothing = SmoothingPolicy{HoldBelow: 5}

func (p SmoothingPolicy) Apply(prev, next Reading) Reading {
	if prev.Stage == next.Stage && next.Value < prev.Value && prev.Value-next.Value < p.HoldBelow {
		return prev
	}
	return next
}

// ComputeProgress maps the session to 0..100. Inside the questions stage it moves
// from 60 toward 80 along a square-root curve of the answered fraction.
func ComputeProgress(s *Session) int {
	base, ok := stageBase[s.Stage]
	if !ok {
		return 0
	}
	if s.Stage != StageQuestions {
		return base
	}
	span := stageBase[StageContact] - base
	v := base + int(math.Floor(float64(span)*math.Sqrt(answeredFraction(s))))
	if v > stageBase[StageContact] {
		v = stageBase[StageContact]
	}
	return v
}

// answeredFraction counts required questions in the active set. A set with no
// required questions falls back to counting every question.
func answeredFraction(s *Session) float64 {
	set, ok := s.ActiveQuestionSet()
	if !ok {
		return 0
	}
	var required, requiredDone, all, allDone int
	for _, q := range set.Questions {
		ans, ok := s.Answers.Get(set.CategoryID, q.ID)
		done := ok && answerComplete(q, ans)
		all++
		if done {
			allDone++
		}
		if q.Required {
			required++
			if done {
				requiredDone++
			}
		}
	}
	switch {
	case required > 0:
		return float64(requiredDone) / float64(required)
	case all > 0:
		return float64(allDone) / float64(all)
	default:
		return 0
	}
}

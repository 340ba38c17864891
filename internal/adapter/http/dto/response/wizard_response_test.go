package response

import (
	"encoding/json"
	"testing"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase"
)

func TestFromView(t *testing.T) {
	res := FromView(wizard.View{ID: "s-1", ContractorID: "ctr-1", Stage: wizard.StageCategory, Progress: 40})
	if res.StageNumber != 3 || res.TotalStages != 6 {
		t.Fatalf("unexpected stage position %d/%d", res.StageNumber, res.TotalStages)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if photos, ok := body["photos"].([]any); !ok || len(photos) != 0 {
		t.Fatalf("photos must serialize as an empty array: %s", b)
	}
	if _, ok := body["estimate"]; ok {
		t.Fatalf("estimate must be omitted before the estimate stage: %s", b)
	}
}

func TestFromSubmission(t *testing.T) {
	doc := entities.FallbackEstimate(250)
	res := FromSubmission(usecase.SubmissionResult{
		LeadID:   "lead-1",
		Source:   wizard.SourceFallback,
		Estimate: doc,
		Warning:  "placeholder",
		View:     wizard.View{ID: "s-1", Stage: wizard.StageEstimate, Progress: 100, LeadID: "lead-1"},
	})
	if res.Source != string(wizard.SourceFallback) || res.Estimate.TotalCost != 250 {
		t.Fatalf("unexpected submission %+v", res)
	}
	if res.Session.StageNumber != 6 || res.Session.LeadID != "lead-1" {
		t.Fatalf("unexpected session %+v", res.Session)
	}
}

func TestFromCategories(t *testing.T) {
	got := FromCategories([]entities.Category{{ID: "paint", Name: "Painting"}})
	if len(got) != 1 || got[0].Questions == nil {
		t.Fatalf("unexpected categories %+v", got)
	}
}

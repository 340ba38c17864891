package functions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase"
	"contractor_estimates/internal/usecase/interfaces"
)

const generatedEstimate = `{
  "groups": [{
    "name": "Bathroom",
    "subgroups": [{
      "name": "Demolition",
      "items": [{"title": "Vanity", "description": "", "quantity": 1, "unitAmount": 180, "totalPrice": 180}],
      "subtotal": 180
    }],
    "total": 180
  }],
  "totalCost": 180
}`

func TestClient_GenerateEstimate(t *testing.T) {
	var got interfaces.GenerateEstimateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != GenerateEstimatePath || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(generatedEstimate))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "secret", srv.Client(), nil)
	doc, err := c.GenerateEstimate(context.Background(), interfaces.GenerateEstimateRequest{
		LeadID:       "lead-1",
		ContractorID: "ctr-1",
		FormData:     interfaces.FormData{ProjectDescription: "new vanity"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.TotalCost != 180 || len(doc.Groups) != 1 {
		t.Fatalf("unexpected document %+v", doc)
	}
	if got.LeadID != "lead-1" || got.FormData.ProjectDescription != "new vanity" {
		t.Fatalf("unexpected request body %+v", got)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, wizard.ErrNotFound},
		{"gateway timeout", http.StatusGatewayTimeout, wizard.ErrTimeout},
		{"server error", http.StatusInternalServerError, wizard.ErrNetwork},
		{"bad request", http.StatusBadRequest, wizard.ErrNetwork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tc.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "", srv.Client(), nil)
			_, err := c.Measure(context.Background(), entities.MeasurementRequest{Images: []string{"a.jpg"}, Unit: "sqft"})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClient_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	c := NewClient(srv.URL, "", srv.Client(), nil)
	if _, err := c.GenerateEstimate(ctx, interfaces.GenerateEstimateRequest{}); !errors.Is(err, wizard.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestClient_SendEstimate(t *testing.T) {
	var body sendEstimateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != SendEstimatePath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	doc := entities.FallbackEstimate(250)
	c := NewClient(srv.URL, "", srv.Client(), nil)
	err := c.SendEstimate(context.Background(), entities.Lead{
		ID:       "lead-1",
		Contact:  entities.ContactInfo{Email: "ana@example.com"},
		Estimate: &doc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.LeadID != "lead-1" || body.Contact.Email != "ana@example.com" || body.Estimate == nil {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient("", "", nil, nil)
	err := c.SendEstimate(context.Background(), entities.Lead{ID: "lead-1"})
	if !errors.Is(err, wizard.ErrNetwork) || !errors.Is(err, ErrFunctionsNotConfigured) {
		t.Fatalf("expected not configured network error, got %v", err)
	}
}

// The generation function replies with groups that carry no total of their own.
const generatedWithoutGroupTotals = `{
  "groups": [{
    "name": "Bathroom",
    "subgroups": [{
      "name": "Demolition",
      "items": [
        {"title": "Vanity", "description": "", "quantity": 1, "unitAmount": 180, "totalPrice": 180},
        {"title": "Tile", "description": "", "quantity": 40, "unitAmount": 2.5, "totalPrice": 100}
      ],
      "subtotal": 280
    }]
  }],
  "totalCost": 280
}`

func TestClient_GeneratedEstimateSurvivesRace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(generatedWithoutGroupTotals))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", srv.Client(), nil)
	o := usecase.NewSubmissionOrchestrator(nil, c, usecase.SubmissionConfig{GenerationTimeout: 5 * time.Second}, nil)

	out := o.RaceGeneration(context.Background(), interfaces.GenerateEstimateRequest{LeadID: "lead-1", ContractorID: "ctr-1"})
	if out.Kind != usecase.OutcomeRemote {
		t.Fatalf("expected remote estimate, got %v err=%v", out.Kind, out.Err)
	}
	if out.Document.TotalCost != 280 || out.Document.Groups[0].Total != 280 {
		t.Fatalf("unexpected document %+v", out.Document)
	}
}

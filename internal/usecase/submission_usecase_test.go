package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase/interfaces"
	mock_interfaces "contractor_estimates/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func remoteDoc() entities.EstimateDocument {
	return entities.Recalculate(entities.EstimateDocument{Groups: []entities.EstimateGroup{{
		Name: "Bathroom",
		Subgroups: []entities.EstimateSubgroup{{
			Name: "Demolition",
			Items: []entities.LineItem{
				{Title: "Remove vanity", Quantity: 1, UnitAmount: 180},
				{Title: "Remove tile", Quantity: 40, UnitAmount: 2.5},
			},
		}},
	}}})
}

func contactHandle(leadID string) *sessionHandle {
	s := wizard.NewSession("sess-1", "ctr-1")
	s.Stage = wizard.StageContact
	s.ProjectDescription = "Replace the vanity and retile the bathroom floor"
	s.UploadedPhotos = []string{"https://cdn.example.com/p1.jpg"}
	s.SelectedCategories = []string{"bath"}
	s.LeadID = leadID
	return newSessionHandle(s, nil)
}

var customer = entities.ContactInfo{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com", Phone: "555-0100"}

func newOrchestrator(repo interfaces.ILeadRepository, gen interfaces.IEstimateGenerator, timeout time.Duration) *SubmissionOrchestrator {
	return NewSubmissionOrchestrator(repo, gen, SubmissionConfig{GenerationTimeout: timeout}, nil)
}

func TestSubmissionOrchestrator_Submit(t *testing.T) {
	t.Run("remote estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("")

		var insertedID string
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.ID == "" || l.ContractorID != "ctr-1" || l.Status != entities.LeadStatusProcessing {
					t.Fatalf("unexpected inserted lead: %+v", l)
				}
				if l.Contact.Email != customer.Email {
					t.Fatalf("contact not persisted: %+v", l.Contact)
				}
				insertedID = l.ID
				return l, nil
			})
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.GenerateEstimateRequest) (entities.EstimateDocument, error) {
				if req.LeadID != insertedID || req.FormData.ProjectDescription == "" {
					t.Fatalf("unexpected generate request: %+v", req)
				}
				return remoteDoc(), nil
			})
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, upd entities.LeadUpdate) (entities.Lead, error) {
				if id != insertedID || upd.Status == nil || *upd.Status != entities.LeadStatusComplete || upd.Estimate == nil {
					t.Fatalf("unexpected estimate update for %s: %+v", id, upd)
				}
				return entities.Lead{ID: id}, nil
			})

		res, err := o.Submit(context.Background(), h, customer, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Source != wizard.SourceRemote || res.Warning != "" {
			t.Fatalf("expected remote estimate, got %+v", res)
		}
		if res.LeadID != insertedID || res.View.Stage != wizard.StageEstimate || res.View.Progress != 100 {
			t.Fatalf("unexpected view: %+v", res.View)
		}
		if res.Estimate.TotalCost != 280 {
			t.Fatalf("expected total 280, got %v", res.Estimate.TotalCost)
		}
	})

	t.Run("timeout falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, 20*time.Millisecond)
		h := contactHandle("")

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil })
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ interfaces.GenerateEstimateRequest) (entities.EstimateDocument, error) {
				<-ctx.Done()
				return entities.EstimateDocument{}, ctx.Err()
			})

		res, err := o.Submit(context.Background(), h, customer, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Source != wizard.SourceFallback || res.Warning == "" {
			t.Fatalf("expected fallback with warning, got %+v", res)
		}
		doc := res.Estimate
		if len(doc.Groups) != 1 || len(doc.Groups[0].Subgroups) != 1 || len(doc.Groups[0].Subgroups[0].Items) != 1 {
			t.Fatalf("fallback must have one group, subgroup and item: %+v", doc)
		}
		if doc.TotalCost != 250 || doc.Groups[0].Subgroups[0].Items[0].TotalPrice != 250 {
			t.Fatalf("expected 250 fallback, got %+v", doc)
		}
		if res.LeadID == "" {
			t.Fatalf("lead id must be set on fallback")
		}
	})

	t.Run("persist failure skips generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("")

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.Lead{}, errors.New("dynamo down"))

		res, err := o.Submit(context.Background(), h, customer, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Source != wizard.SourceFallback || res.View.Stage != wizard.StageEstimate {
			t.Fatalf("expected fallback estimate stage, got %+v", res)
		}
	})

	t.Run("existing lead is updated not inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("lead-1")

		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), "lead-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, id string, upd entities.LeadUpdate) (entities.Lead, error) {
					if upd.Status == nil || *upd.Status != entities.LeadStatusProcessing || upd.Contact == nil {
						t.Fatalf("unexpected persist update: %+v", upd)
					}
					return entities.Lead{ID: id}, nil
				}),
			repo.EXPECT().Update(gomock.Any(), "lead-1", gomock.Any()).Return(entities.Lead{ID: "lead-1"}, nil),
		)
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(remoteDoc(), nil)

		res, err := o.Submit(context.Background(), h, customer, false)
		if err != nil || res.LeadID != "lead-1" {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("existing lead missing in store is inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("lead-1")

		repo.EXPECT().Update(gomock.Any(), "lead-1", gomock.Any()).Return(entities.Lead{}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.ID != "lead-1" {
					t.Fatalf("expected lead-1 to be inserted, got %s", l.ID)
				}
				return l, nil
			})
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(entities.EstimateDocument{}, errors.New("502"))

		res, err := o.Submit(context.Background(), h, customer, false)
		if err != nil || res.Source != wizard.SourceFallback {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("skip does not persist contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("")

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if !l.Contact.IsEmpty() {
					t.Fatalf("skipped contact must not be stored: %+v", l.Contact)
				}
				return l, nil
			})
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.GenerateEstimateRequest) (entities.EstimateDocument, error) {
				if !req.FormData.Contact.IsEmpty() {
					t.Fatalf("skipped contact must not be sent")
				}
				return remoteDoc(), nil
			})
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Lead{ID: "x"}, nil)

		if _, err := o.Submit(context.Background(), h, customer, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty contact without skip is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o := newOrchestrator(mock_interfaces.NewMockILeadRepository(ctrl), mock_interfaces.NewMockIEstimateGenerator(ctrl), time.Second)
		h := contactHandle("")

		_, err := o.Submit(context.Background(), h, entities.ContactInfo{}, false)
		if !errors.Is(err, wizard.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if h.session.Stage != wizard.StageContact || h.session.LeadID != "" {
			t.Fatalf("session must be unchanged")
		}
	})

	t.Run("wrong stage is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		o := newOrchestrator(mock_interfaces.NewMockILeadRepository(ctrl), mock_interfaces.NewMockIEstimateGenerator(ctrl), time.Second)
		h := contactHandle("")
		h.session.Stage = wizard.StageQuestions

		_, err := o.Submit(context.Background(), h, customer, false)
		if !errors.Is(err, wizard.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("resumed lead merges onto baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("lead-1")
		base := entities.FallbackEstimate(100)
		h.baseline = &base

		repo.EXPECT().Update(gomock.Any(), "lead-1", gomock.Any()).Return(entities.Lead{ID: "lead-1"}, nil).Times(2)
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(remoteDoc(), nil)

		res, err := o.Submit(context.Background(), h, customer, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Estimate.Groups) != 2 || res.Estimate.Groups[0].Name != entities.FallbackGroupName {
			t.Fatalf("expected baseline group first, got %+v", res.Estimate.Groups)
		}
		if res.Estimate.TotalCost != 380 {
			t.Fatalf("expected merged total 380, got %v", res.Estimate.TotalCost)
		}
	})

	t.Run("disposal discards result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("")

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil })
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ interfaces.GenerateEstimateRequest) (entities.EstimateDocument, error) {
				h.dispose()
				<-ctx.Done()
				return entities.EstimateDocument{}, ctx.Err()
			})

		_, err := o.Submit(context.Background(), h, customer, false)
		if !errors.Is(err, ErrSessionDisposed) {
			t.Fatalf("expected ErrSessionDisposed, got %v", err)
		}
		if h.session.Stage != wizard.StageContact || h.session.Estimate != nil {
			t.Fatalf("disposed session must not receive an estimate")
		}
	})

	t.Run("second submit after estimate is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(repo, gen, time.Second)
		h := contactHandle("")

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil })
		gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(entities.EstimateDocument{}, errors.New("boom"))

		first, err := o.Submit(context.Background(), h, customer, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = o.Submit(context.Background(), h, customer, true)
		if !errors.Is(err, wizard.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if h.session.Estimate.TotalCost != first.Estimate.TotalCost || h.session.EstimateSource != wizard.SourceFallback {
			t.Fatalf("first estimate must be kept")
		}
	})
}

func TestSubmissionOrchestrator_ConcurrentSubmitsRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
	o := newOrchestrator(repo, gen, time.Second)
	h := contactHandle("")

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil }).Times(1)
	gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interfaces.GenerateEstimateRequest) (entities.EstimateDocument, error) {
			close(entered)
			<-release
			return remoteDoc(), nil
		}).Times(1)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Lead{ID: "x"}, nil).Times(1)

	var wg sync.WaitGroup
	results := make([]SubmissionResult, 2)
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = o.Submit(context.Background(), h, customer, false)
	}()
	<-entered
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = o.Submit(context.Background(), h, customer, false)
	}()
	close(release)
	wg.Wait()

	if errs[0] != nil {
		t.Fatalf("first submit failed: %v", errs[0])
	}
	if errs[1] != nil && !errors.Is(errs[1], wizard.ErrValidation) {
		t.Fatalf("second submit must share the result or be rejected, got %v", errs[1])
	}
	if errs[1] == nil && results[1].LeadID != results[0].LeadID {
		t.Fatalf("shared submit returned a different lead")
	}
}

func TestSubmissionOrchestrator_RaceGeneration(t *testing.T) {
	req := interfaces.GenerateEstimateRequest{LeadID: "lead-1"}

	t.Run("network error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(nil, gen, time.Second)
		gen.EXPECT().GenerateEstimate(gomock.Any(), req).Return(entities.EstimateDocument{}, errors.New("connection refused"))

		out := o.RaceGeneration(context.Background(), req)
		if out.Kind != OutcomeFallback || !errors.Is(out.Err, wizard.ErrNetwork) {
			t.Fatalf("expected network fallback, got %+v", out)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(nil, gen, 10*time.Millisecond)
		gen.EXPECT().GenerateEstimate(gomock.Any(), req).DoAndReturn(
			func(ctx context.Context, _ interfaces.GenerateEstimateRequest) (entities.EstimateDocument, error) {
				<-ctx.Done()
				return remoteDoc(), nil
			})

		out := o.RaceGeneration(context.Background(), req)
		if out.Kind != OutcomeFallback || !errors.Is(out.Err, wizard.ErrTimeout) {
			t.Fatalf("expected timeout fallback, got %+v", out)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(nil, gen, time.Second)
		gen.EXPECT().GenerateEstimate(gomock.Any(), req).Return(entities.EstimateDocument{}, nil)

		out := o.RaceGeneration(context.Background(), req)
		if out.Kind != OutcomeFallback || !errors.Is(out.Err, entities.ErrInvalidEstimateDocument) {
			t.Fatalf("expected invalid document fallback, got %+v", out)
		}
	})

	t.Run("integrity mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(nil, gen, time.Second)
		doc := remoteDoc()
		doc.TotalCost = 999
		gen.EXPECT().GenerateEstimate(gomock.Any(), req).Return(doc, nil)

		out := o.RaceGeneration(context.Background(), req)
		if out.Kind != OutcomeFallback || !errors.Is(out.Err, entities.ErrEstimateIntegrity) {
			t.Fatalf("expected integrity fallback, got %+v", out)
		}
	})

	t.Run("remote without group totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(nil, gen, time.Second)
		doc, err := entities.ParseEstimateDocument([]byte(`{"groups":[{"name":"Bathroom","subgroups":[{"name":"Demolition","items":[{"title":"Remove vanity","description":"","quantity":1,"unitAmount":180,"totalPrice":180},{"title":"Remove tile","description":"","quantity":40,"unitAmount":2.5,"totalPrice":100}],"subtotal":280}]}],"totalCost":280}`))
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		gen.EXPECT().GenerateEstimate(gomock.Any(), req).Return(doc, nil)

		out := o.RaceGeneration(context.Background(), req)
		if out.Kind != OutcomeRemote || out.Err != nil {
			t.Fatalf("expected remote estimate, got %+v", out)
		}
		if out.Document.Groups[0].Total != 280 || out.Document.TotalCost != 280 {
			t.Fatalf("expected derived group total, got %+v", out.Document)
		}
	})

	t.Run("remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockIEstimateGenerator(ctrl)
		o := newOrchestrator(nil, gen, time.Second)
		gen.EXPECT().GenerateEstimate(gomock.Any(), req).Return(remoteDoc(), nil)

		out := o.RaceGeneration(context.Background(), req)
		if out.Kind != OutcomeRemote || out.Err != nil || out.Document.TotalCost != 280 {
			t.Fatalf("expected remote outcome, got %+v", out)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	mock_interfaces "contractor_estimates/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func wizardCatalog() []entities.Category {
	return []entities.Category{
		{
			ID:       "bath",
			Name:     "Bathroom Remodel",
			Keywords: []string{"bathroom", "vanity", "shower"},
			Questions: []entities.Question{
				{ID: "size", Text: "How big is the bathroom?", Type: entities.QuestionTypeSingle, Options: []string{"small", "large"}, Required: true},
				{ID: "fixtures", Text: "Which fixtures change?", Type: entities.QuestionTypeMultiple, Options: []string{"toilet", "sink", "tub"}},
			},
		},
		{ID: "paint", Name: "Interior Painting", Keywords: []string{"paint", "walls"}},
	}
}

type wizardFixture struct {
	categories *mock_interfaces.MockICategoryRepository
	leads      *mock_interfaces.MockILeadRepository
	gen        *mock_interfaces.MockIEstimateGenerator
	store      *SessionStore
	uc         *WizardUseCase
}

func newWizardFixture(t *testing.T) wizardFixture {
	ctrl := gomock.NewController(t)
	f := wizardFixture{
		categories: mock_interfaces.NewMockICategoryRepository(ctrl),
		leads:      mock_interfaces.NewMockILeadRepository(ctrl),
		gen:        mock_interfaces.NewMockIEstimateGenerator(ctrl),
		store:      NewSessionStore(10, time.Hour),
	}
	retry := DefaultLeadFetchPolicy
	retry.Sleep = (&recordedSleeps{}).sleep
	leadUC := NewLeadUseCase(f.leads, f.gen, nil, LeadUseCaseConfig{Retry: retry}, nil)
	orch := NewSubmissionOrchestrator(f.leads, f.gen, SubmissionConfig{GenerationTimeout: time.Second}, nil)
	f.uc = NewWizardUseCase(f.store, NewCatalogUseCase(f.categories, nil), leadUC, orch, nil)
	return f
}

const longDescription = "Replace the bathroom vanity and retile the shower walls"

func TestWizardUseCase_FullRun(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	f.categories.EXPECT().ListByContractorID(gomock.Any(), "ctr-1").Return(wizardCatalog(), nil)

	view, err := f.uc.CreateSession(ctx, CreateSessionInput{ContractorID: "ctr-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := view.ID
	if view.Stage != wizard.StagePhoto || view.Progress != 0 {
		t.Fatalf("unexpected initial view %+v", view)
	}

	if _, err := f.uc.SetPhotos(ctx, id, []string{"https://cdn.example.com/a.jpg"}); err != nil {
		t.Fatalf("photos: %v", err)
	}
	if view, err = f.uc.Advance(ctx, id); err != nil || view.Stage != wizard.StageDescription {
		t.Fatalf("advance to description: %+v %v", view, err)
	}

	if _, err := f.uc.SetDescription(ctx, id, "fix bathroom"); err != nil {
		t.Fatalf("description: %v", err)
	}
	if _, err := f.uc.Advance(ctx, id); !errors.Is(err, wizard.ErrValidation) {
		t.Fatalf("short description must block advance, got %v", err)
	}
	if _, err := f.uc.SetDescription(ctx, id, longDescription); err != nil {
		t.Fatalf("description: %v", err)
	}
	if view, err = f.uc.Advance(ctx, id); err != nil || view.Stage != wizard.StageCategory {
		t.Fatalf("advance to category: %+v %v", view, err)
	}

	suggested, err := f.uc.SuggestCategories(ctx, id)
	if err != nil || len(suggested) == 0 || suggested[0].ID != "bath" {
		t.Fatalf("expected bath suggested first, got %+v %v", suggested, err)
	}

	if _, err := f.uc.SelectCategories(ctx, id, []string{"roofing"}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if view, err = f.uc.SelectCategories(ctx, id, []string{"bath", "paint"}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(view.CompletedCategories) != 1 || view.CompletedCategories[0] != "paint" {
		t.Fatalf("category without questions must be completed, got %v", view.CompletedCategories)
	}
	if view, err = f.uc.Advance(ctx, id); err != nil || view.Stage != wizard.StageQuestions || view.Progress != 60 {
		t.Fatalf("advance to questions: %+v %v", view, err)
	}

	if _, err := f.uc.Advance(ctx, id); !errors.Is(err, wizard.ErrValidation) {
		t.Fatalf("unanswered required question must block advance, got %v", err)
	}
	if view, err = f.uc.RecordAnswer(ctx, id, "size", []string{"large"}); err != nil || view.Progress != 80 {
		t.Fatalf("answer: %+v %v", view, err)
	}
	if view, err = f.uc.Advance(ctx, id); err != nil || view.Stage != wizard.StageContact {
		t.Fatalf("advance to contact: %+v %v", view, err)
	}

	f.leads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.Lead) (entities.Lead, error) {
			if len(l.Answers) != 1 || l.Answers[0].CategoryID != "bath" || l.Answers[0].Answers[0].SelectedValues[0] != "large" {
				t.Fatalf("answers not persisted: %+v", l.Answers)
			}
			return l, nil
		})
	f.gen.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).Return(remoteDoc(), nil)
	f.leads.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Lead{ID: "x"}, nil)

	res, err := f.uc.SubmitContact(ctx, id, customer, false)
	if err != nil || res.View.Stage != wizard.StageEstimate {
		t.Fatalf("submit: %+v %v", res, err)
	}

	view, err = f.uc.EditEstimateItem(ctx, id, entities.LineItemRef{Group: 0, Subgroup: 0, Item: 0}, 2, 180)
	if err != nil || view.Estimate.TotalCost != 460 {
		t.Fatalf("edit estimate: %+v %v", view.Estimate, err)
	}

	if err := f.uc.DisposeSession(ctx, id); err != nil {
		t.Fatalf("dispose: %v", err)
	}
	if _, err := f.uc.GetSession(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after dispose, got %v", err)
	}
	if err := f.uc.DisposeSession(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second dispose must report not found, got %v", err)
	}
}

func TestWizardUseCase_CreateSession(t *testing.T) {
	t.Run("missing contractor", func(t *testing.T) {
		f := newWizardFixture(t)
		if _, err := f.uc.CreateSession(context.Background(), CreateSessionInput{}); !errors.Is(err, ErrInvalidContractorID) {
			t.Fatalf("expected ErrInvalidContractorID, got %v", err)
		}
	})

	t.Run("catalog failure", func(t *testing.T) {
		f := newWizardFixture(t)
		f.categories.EXPECT().ListByContractorID(gomock.Any(), "ctr-1").Return(nil, errors.New("dynamo"))
		if _, err := f.uc.CreateSession(context.Background(), CreateSessionInput{ContractorID: "ctr-1"}); err == nil {
			t.Fatalf("expected error")
		}
		if f.store.Len() != 0 {
			t.Fatalf("no session must be stored")
		}
	})

	t.Run("excluded categories are not offered", func(t *testing.T) {
		f := newWizardFixture(t)
		ctx := context.Background()
		f.categories.EXPECT().ListByContractorID(gomock.Any(), "ctr-1").Return(wizardCatalog(), nil)
		view, err := f.uc.CreateSession(ctx, CreateSessionInput{ContractorID: "ctr-1", Excluded: []string{"bath"}})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		h, _ := f.store.get(view.ID)
		if len(h.catalog) != 1 || h.catalog[0].ID != "paint" {
			t.Fatalf("expected only paint in catalog, got %+v", h.catalog)
		}
	})

	t.Run("resume lead keeps its estimate as baseline", func(t *testing.T) {
		f := newWizardFixture(t)
		lead := completeLead()
		f.leads.EXPECT().Get(gomock.Any(), "lead-1").Return(lead, nil)
		f.categories.EXPECT().ListByContractorID(gomock.Any(), "ctr-1").Return(wizardCatalog(), nil)

		view, err := f.uc.CreateSession(context.Background(), CreateSessionInput{ContractorID: "ctr-1", LeadID: "lead-1"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if view.LeadID != "lead-1" {
			t.Fatalf("expected lead id on session, got %q", view.LeadID)
		}
		h, _ := f.store.get(view.ID)
		if h.baseline == nil || h.baseline.TotalCost != 280 {
			t.Fatalf("expected baseline estimate, got %+v", h.baseline)
		}
	})

	t.Run("resume lead of another contractor", func(t *testing.T) {
		f := newWizardFixture(t)
		f.leads.EXPECT().Get(gomock.Any(), "lead-1").Return(completeLead(), nil)

		_, err := f.uc.CreateSession(context.Background(), CreateSessionInput{ContractorID: "ctr-2", LeadID: "lead-1"})
		if !errors.Is(err, ErrLeadContractorDiff) {
			t.Fatalf("expected ErrLeadContractorDiff, got %v", err)
		}
	})
}

func TestWizardUseCase_UnknownSession(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	if _, err := f.uc.Advance(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := f.uc.GetSession(ctx, " "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
	if _, err := f.uc.SubmitContact(ctx, "nope", customer, false); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestWizardUseCase_CategoriesWithoutQuestionsSkipToContact(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	f.categories.EXPECT().ListByContractorID(gomock.Any(), "ctr-1").Return(wizardCatalog(), nil)

	view, _ := f.uc.CreateSession(ctx, CreateSessionInput{ContractorID: "ctr-1"})
	id := view.ID
	_, _ = f.uc.Advance(ctx, id)
	_, _ = f.uc.SetDescription(ctx, id, "Paint the living room walls and the hallway ceiling")
	_, _ = f.uc.Advance(ctx, id)
	if _, err := f.uc.SelectCategories(ctx, id, []string{"paint"}); err != nil {
		t.Fatalf("select: %v", err)
	}
	view, err := f.uc.Advance(ctx, id)
	if err != nil || view.Stage != wizard.StageContact {
		t.Fatalf("expected contact stage, got %+v %v", view, err)
	}
}

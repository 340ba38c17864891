package usecase

import (
	"context"
	"errors"
	"strings"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound     = errors.New("wizard session not found")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidContractorID = errors.New("invalid contractor_id")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrLeadContractorDiff  = errors.New("lead belongs to another contractor")
)

// CreateSessionInput starts a wizard run. LeadID resumes an existing lead: the new
// estimate is appended to the lead's current one.
type CreateSessionInput struct {
	ContractorID string
	LeadID       string
	Excluded     []string
}

// IWizardUseCase is the capability surface the transport layer drives.
type IWizardUseCase interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (wizard.View, error)
	GetSession(ctx context.Context, id string) (wizard.View, error)
	DisposeSession(ctx context.Context, id string) error
	SetPhotos(ctx context.Context, id string, urls []string) (wizard.View, error)
	SetDescription(ctx context.Context, id string, text string) (wizard.View, error)
	SuggestCategories(ctx context.Context, id string) ([]entities.Category, error)
	SelectCategories(ctx context.Context, id string, categoryIDs []string) (wizard.View, error)
	Advance(ctx context.Context, id string) (wizard.View, error)
	RecordAnswer(ctx context.Context, id string, questionID string, values []string) (wizard.View, error)
	SubmitContact(ctx context.Context, id string, contact entities.ContactInfo, skip bool) (SubmissionResult, error)
	EditEstimateItem(ctx context.Context, id string, ref entities.LineItemRef, quantity, unitAmount float64) (wizard.View, error)
}

type WizardUseCase struct {
	store        *SessionStore
	catalog      ICatalogUseCase
	leads        ILeadUseCase
	orchestrator *SubmissionOrchestrator
	logger       *zap.Logger
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(store *SessionStore, catalog ICatalogUseCase, leads ILeadUseCase, orchestrator *SubmissionOrchestrator, logger *zap.Logger) *WizardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardUseCase{store: store, catalog: catalog, leads: leads, orchestrator: orchestrator, logger: logger}
}

func (u *WizardUseCase) CreateSession(ctx context.Context, in CreateSessionInput) (wizard.View, error) {
	contractorID := strings.TrimSpace(in.ContractorID)
	if contractorID == "" {
		return wizard.View{}, ErrInvalidContractorID
	}

	var baseline *entities.Lead
	if leadID := strings.TrimSpace(in.LeadID); leadID != "" {
		lead, err := u.leads.FetchLead(ctx, leadID)
		if err != nil {
			u.logger.Warn("[wizard][usecase] resume lead failed", zap.String("lead_id", leadID), zap.Error(err))
			return wizard.View{}, err
		}
		if lead.ContractorID != contractorID {
			return wizard.View{}, ErrLeadContractorDiff
		}
		baseline = &lead
	}

	categories, err := u.catalog.LoadCategories(ctx, contractorID, in.Excluded)
	if err != nil {
		u.logger.Error("[wizard][usecase] load catalog failed", zap.String("contractor_id", contractorID), zap.Error(err))
		return wizard.View{}, err
	}

	s := wizard.NewSession(uuid.NewString(), contractorID)
	h := newSessionHandle(s, categories)
	if baseline != nil {
		s.LeadID = baseline.ID
		if baseline.Estimate != nil {
			doc := baseline.Estimate.Clone()
			h.baseline = &doc
		}
	}
	u.store.put(h)

	u.logger.Info("[wizard][usecase] session created",
		zap.String("session_id", s.ID),
		zap.String("contractor_id", contractorID),
		zap.String("lead_id", s.LeadID),
		zap.Int("categories", len(categories)))
	return s.Snapshot(), nil
}

func (u *WizardUseCase) GetSession(_ context.Context, id string) (wizard.View, error) {
	var view wizard.View
	err := u.withSession(id, func(h *sessionHandle) error {
		view = h.session.Snapshot()
		return nil
	})
	return view, err
}

func (u *WizardUseCase) DisposeSession(_ context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	if !u.store.remove(id) {
		return ErrSessionNotFound
	}
	u.logger.Info("[wizard][usecase] session disposed", zap.String("session_id", id))
	return nil
}

func (u *WizardUseCase) SetPhotos(_ context.Context, id string, urls []string) (wizard.View, error) {
	return u.mutate(id, "set-photos", func(h *sessionHandle) error {
		return h.session.SetPhotos(urls)
	})
}

func (u *WizardUseCase) SetDescription(_ context.Context, id string, text string) (wizard.View, error) {
	return u.mutate(id, "set-description", func(h *sessionHandle) error {
		return h.session.SetDescription(text)
	})
}

// SuggestCategories ranks the session's catalog against its description.
func (u *WizardUseCase) SuggestCategories(_ context.Context, id string) ([]entities.Category, error) {
	var out []entities.Category
	err := u.withSession(id, func(h *sessionHandle) error {
		out = wizard.MatchCategories(h.session.ProjectDescription, h.catalog, nil)
		return nil
	})
	return out, err
}

func (u *WizardUseCase) SelectCategories(_ context.Context, id string, categoryIDs []string) (wizard.View, error) {
	return u.mutate(id, "select-categories", func(h *sessionHandle) error {
		byID := make(map[string]entities.Category, len(h.catalog))
		for _, c := range h.catalog {
			byID[c.ID] = c
		}
		selected := make([]entities.Category, 0, len(categoryIDs))
		for _, cid := range categoryIDs {
			c, ok := byID[strings.TrimSpace(cid)]
			if !ok {
				return ErrCategoryNotFound
			}
			selected = append(selected, c)
		}
		return h.session.SelectCategories(selected)
	})
}

func (u *WizardUseCase) Advance(_ context.Context, id string) (wizard.View, error) {
	return u.mutate(id, "advance", func(h *sessionHandle) error {
		return h.session.Advance()
	})
}

func (u *WizardUseCase) RecordAnswer(_ context.Context, id string, questionID string, values []string) (wizard.View, error) {
	return u.mutate(id, "record-answer", func(h *sessionHandle) error {
		return h.session.RecordAnswer(strings.TrimSpace(questionID), values)
	})
}

func (u *WizardUseCase) SubmitContact(ctx context.Context, id string, contact entities.ContactInfo, skip bool) (SubmissionResult, error) {
	h, err := u.handle(id)
	if err != nil {
		return SubmissionResult{}, err
	}
	return u.orchestrator.Submit(ctx, h, contact, skip)
}

func (u *WizardUseCase) EditEstimateItem(_ context.Context, id string, ref entities.LineItemRef, quantity, unitAmount float64) (wizard.View, error) {
	return u.mutate(id, "edit-estimate-item", func(h *sessionHandle) error {
		return h.session.EditEstimateItem(ref, quantity, unitAmount)
	})
}

func (u *WizardUseCase) handle(id string) (*sessionHandle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	h, ok := u.store.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return h, nil
}

func (u *WizardUseCase) withSession(id string, fn func(h *sessionHandle) error) error {
	h, err := u.handle(id)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return ErrSessionNotFound
	}
	return fn(h)
}

func (u *WizardUseCase) mutate(id, action string, fn func(h *sessionHandle) error) (wizard.View, error) {
	var view wizard.View
	err := u.withSession(id, func(h *sessionHandle) error {
		if err := fn(h); err != nil {
			return err
		}
		view = h.session.Snapshot()
		return nil
	})
	if err != nil {
		var vErr *wizard.ValidationError
		if errors.As(err, &vErr) {
			u.logger.Info("[wizard][usecase] action rejected",
				zap.String("session_id", id), zap.String("action", action),
				zap.String("stage", string(vErr.Stage)), zap.String("reason", vErr.Reason))
		}
		return wizard.View{}, err
	}
	u.logger.Debug("[wizard][usecase] action applied",
		zap.String("session_id", id), zap.String("action", action),
		zap.String("stage", string(view.Stage)), zap.Int("progress", view.Progress))
	return view, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrInvalidLeadID    = errors.New("invalid lead id")
	ErrInvalidStatus    = errors.New("invalid lead status")
	ErrInvalidSigner    = errors.New("invalid signer")
	ErrInvalidSignature = errors.New("signature name is required")
	ErrEstimateNotReady = errors.New("lead has no estimate yet")
	ErrEmptyAdditional  = errors.New("additional work description is required")
	ErrLeadFetchFailed  = errors.New("lead could not be loaded")
	ErrLeadMissingEmail = errors.New("lead has no customer email")
)

type Signer string

const (
	SignerContractor Signer = "contractor"
	SignerCustomer   Signer = "customer"
)

// PollResult reports a bounded wait for generation. Done is false when the lead was
// still processing after the last check.
type PollResult struct {
	Lead     entities.Lead
	Done     bool
	Attempts int
}

// ILeadUseCase is the contractor dashboard over persisted leads.
type ILeadUseCase interface {
	FetchLead(ctx context.Context, id string) (entities.Lead, error)
	GetLead(ctx context.Context, id string) (entities.Lead, error)
	WaitForEstimate(ctx context.Context, id string) (PollResult, error)
	ListByContractor(ctx context.Context, contractorID string) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
	ReplaceEstimate(ctx context.Context, id string, doc entities.EstimateDocument) (entities.Lead, error)
	EditLineItem(ctx context.Context, id string, ref entities.LineItemRef, quantity, unitAmount float64) (entities.Lead, error)
	AddLine(ctx context.Context, id string, description string) (entities.Lead, error)
	Sign(ctx context.Context, id string, signer Signer, name string) (entities.Lead, error)
	Send(ctx context.Context, id string) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
}

type LeadUseCase struct {
	repo      interfaces.ILeadRepository
	generator interfaces.IEstimateGenerator
	mailer    interfaces.IEstimateMailer
	retry     RetryPolicy
	poll      PollPolicy
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

type LeadUseCaseConfig struct {
	Retry             RetryPolicy
	Poll              PollPolicy
	GenerationTimeout time.Duration
}

func NewLeadUseCase(repo interfaces.ILeadRepository, generator interfaces.IEstimateGenerator, mailer interfaces.IEstimateMailer, cfg LeadUseCaseConfig, logger *zap.Logger) *LeadUseCase {
	if cfg.Retry.BaseDelay <= 0 {
		cfg.Retry = DefaultLeadFetchPolicy
	}
	if cfg.Poll.Attempts <= 0 {
		cfg.Poll = DefaultPollPolicy
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadUseCase{
		repo:      repo,
		generator: generator,
		mailer:    mailer,
		retry:     cfg.Retry,
		poll:      cfg.Poll,
		timeout:   cfg.GenerationTimeout,
		logger:    logger,
		now:       time.Now,
	}
}

// FetchLead loads a lead, retrying transient failures with backoff. A missing or
// corrupt lead is not retried. When retries run out the error wraps ErrLeadFetchFailed so callers can
// offer a manual retry.
func (u *LeadUseCase) FetchLead(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	var lead entities.Lead
	attempts, err := u.retry.Do(ctx, func(ctx context.Context) error {
		l, err := u.repo.Get(ctx, id)
		if err != nil {
			u.logger.Warn("[lead][usecase] fetch attempt failed", zap.String("lead_id", id), zap.Error(err))
			return err
		}
		if l.ID == "" {
			return ErrLeadNotFound
		}
		lead = l
		return nil
	}, func(err error) bool {
		return !errors.Is(err, ErrLeadNotFound) && !errors.Is(err, entities.ErrCorruptLead)
	})
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) || errors.Is(err, entities.ErrCorruptLead) {
			return entities.Lead{}, err
		}
		u.logger.Error("[lead][usecase] fetch exhausted", zap.String("lead_id", id), zap.Int("attempts", attempts), zap.Error(err))
		return entities.Lead{}, fmt.Errorf("%w after %d attempts: %v", ErrLeadFetchFailed, attempts, err)
	}
	return u.verified(lead), nil
}

func (u *LeadUseCase) GetLead(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	lead, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return u.verified(lead), nil
}

// WaitForEstimate polls the lead until generation settles or the poll policy runs out.
func (u *LeadUseCase) WaitForEstimate(ctx context.Context, id string) (PollResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PollResult{}, ErrInvalidLeadID
	}
	var last entities.Lead
	done, attempts, err := u.poll.Poll(ctx, func(ctx context.Context) (bool, error) {
		lead, err := u.repo.Get(ctx, id)
		if err != nil {
			return false, err
		}
		if lead.ID == "" {
			return false, ErrLeadNotFound
		}
		last = lead
		return lead.Status.Settled() && lead.Estimate != nil, nil
	})
	if err != nil {
		return PollResult{}, err
	}
	if !done {
		u.logger.Info("[lead][usecase] estimate still processing", zap.String("lead_id", id), zap.Int("attempts", attempts))
	}
	return PollResult{Lead: u.verified(last), Done: done, Attempts: attempts}, nil
}

func (u *LeadUseCase) ListByContractor(ctx context.Context, contractorID string) ([]entities.Lead, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrInvalidContractorID
	}
	leads, err := u.repo.ListByContractorID(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	for i := range leads {
		leads[i] = u.verified(leads[i])
	}
	return leads, nil
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	if !status.Valid() {
		return entities.Lead{}, ErrInvalidStatus
	}
	return u.update(ctx, id, "update-status", entities.LeadUpdate{Status: entities.StatusPtr(status)})
}

// ReplaceEstimate stores a contractor-edited document. Derived totals are recomputed
// from the line items; the submitted totals are ignored.
func (u *LeadUseCase) ReplaceEstimate(ctx context.Context, id string, doc entities.EstimateDocument) (entities.Lead, error) {
	if err := entities.ValidateEstimateDocument(doc); err != nil {
		return entities.Lead{}, err
	}
	doc = entities.Recalculate(doc)
	return u.update(ctx, id, "replace-estimate", entities.LeadUpdate{Estimate: &doc})
}

func (u *LeadUseCase) EditLineItem(ctx context.Context, id string, ref entities.LineItemRef, quantity, unitAmount float64) (entities.Lead, error) {
	lead, err := u.GetLead(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.Estimate == nil {
		return entities.Lead{}, ErrEstimateNotReady
	}
	doc, err := entities.EditLineItem(*lead.Estimate, ref, quantity, unitAmount)
	if err != nil {
		return entities.Lead{}, err
	}
	return u.update(ctx, lead.ID, "edit-line-item", entities.LeadUpdate{Estimate: &doc})
}

// AddLine generates an estimate for additional work and appends it to the lead's
// current estimate.
func (u *LeadUseCase) AddLine(ctx context.Context, id string, description string) (entities.Lead, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Lead{}, ErrEmptyAdditional
	}
	lead, err := u.FetchLead(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.Estimate == nil {
		return entities.Lead{}, ErrEstimateNotReady
	}

	gctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	added, err := u.generator.GenerateEstimate(gctx, interfaces.GenerateEstimateRequest{
		LeadID:       lead.ID,
		ContractorID: lead.ContractorID,
		FormData: interfaces.FormData{
			Contact:            lead.Contact,
			ProjectDescription: lead.ProjectDescription,
			CategoryIDs:        lead.CategoryIDs,
			AdditionalWork:     description,
		},
	})
	if err != nil {
		u.logger.Warn("[lead][usecase] additional work generation failed", zap.String("lead_id", lead.ID), zap.Error(err))
		return entities.Lead{}, classifyRemoteError(err)
	}
	if err := entities.ValidateEstimateDocument(added); err != nil {
		return entities.Lead{}, err
	}
	if err := entities.CheckIntegrity(added); err != nil {
		u.logger.Warn("[lead][usecase] additional work fails integrity check", zap.String("lead_id", lead.ID), zap.Error(err))
		return entities.Lead{}, err
	}

	merged := entities.MergeDocuments(*lead.Estimate, entities.Recalculate(added))
	u.logger.Info("[lead][usecase] additional work merged",
		zap.String("lead_id", lead.ID),
		zap.Float64("previous_total", lead.Estimate.TotalCost),
		zap.Float64("total_cost", merged.TotalCost))
	return u.update(ctx, lead.ID, "add-line", entities.LeadUpdate{Estimate: &merged})
}

func (u *LeadUseCase) Sign(ctx context.Context, id string, signer Signer, name string) (entities.Lead, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Lead{}, ErrInvalidSignature
	}
	sig := &entities.Signature{Name: name, SignedAt: u.now().UTC()}

	var upd entities.LeadUpdate
	switch signer {
	case SignerContractor:
		upd.ContractorSignature = sig
	case SignerCustomer:
		upd.CustomerSignature = sig
	default:
		return entities.Lead{}, ErrInvalidSigner
	}

	lead, err := u.GetLead(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.Estimate == nil {
		return entities.Lead{}, ErrEstimateNotReady
	}
	return u.update(ctx, lead.ID, "sign-"+string(signer), upd)
}

// Send mails the estimate to the customer and stamps sent_at.
func (u *LeadUseCase) Send(ctx context.Context, id string) (entities.Lead, error) {
	lead, err := u.GetLead(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.Estimate == nil {
		return entities.Lead{}, ErrEstimateNotReady
	}
	if strings.TrimSpace(lead.Contact.Email) == "" {
		return entities.Lead{}, ErrLeadMissingEmail
	}
	if err := u.mailer.SendEstimate(ctx, lead); err != nil {
		u.logger.Warn("[lead][usecase] send estimate failed", zap.String("lead_id", lead.ID), zap.Error(err))
		return entities.Lead{}, classifyRemoteError(err)
	}
	sentAt := u.now().UTC()
	return u.update(ctx, lead.ID, "send", entities.LeadUpdate{SentAt: &sentAt})
}

func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLeadID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLeadNotFound
	}
	u.logger.Info("[lead][usecase] deleted", zap.String("lead_id", id))
	return nil
}

func (u *LeadUseCase) update(ctx context.Context, id, action string, upd entities.LeadUpdate) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		u.logger.Error("[lead][usecase] update failed", zap.String("lead_id", id), zap.String("action", action), zap.Error(err))
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	u.logger.Info("[lead][usecase] updated", zap.String("lead_id", id), zap.String("action", action))
	return u.verified(updated), nil
}

// verified repairs a stored estimate whose totals disagree with its line items.
func (u *LeadUseCase) verified(lead entities.Lead) entities.Lead {
	if lead.Estimate == nil {
		return lead
	}
	if err := entities.CheckIntegrity(*lead.Estimate); err != nil {
		u.logger.Error("[lead][usecase] stored estimate integrity mismatch; recalculating",
			zap.String("lead_id", lead.ID), zap.Error(err))
		doc := entities.Recalculate(*lead.Estimate)
		lead.Estimate = &doc
	}
	return lead
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultGenerationTimeout = 8 * time.Second

var ErrSessionDisposed = errors.New("wizard session disposed during submission")

// OutcomeKind tags how a generation race ended.
type OutcomeKind string

const (
	OutcomeRemote   OutcomeKind = "remote"
	OutcomeFallback OutcomeKind = "fallback"
)

// GenerationOutcome is the single result of racing the generator against the timeout.
// Err is set on fallback outcomes and classified as wizard.ErrNetwork or wizard.ErrTimeout.
type GenerationOutcome struct {
	Kind     OutcomeKind
	Document entities.EstimateDocument
	Err      error
}

type SubmissionConfig struct {
	GenerationTimeout time.Duration
	FallbackPrice     float64
}

// SubmissionResult is returned to the customer. Warning carries the non-blocking
// notice shown when the fallback estimate was used.
type SubmissionResult struct {
	LeadID   string
	Source   wizard.EstimateSource
	Estimate entities.EstimateDocument
	Warning  string
	View     wizard.View
}

// SubmissionOrchestrator runs contact submission: persist the lead, generate the
// estimate under a deadline, and move the session to the estimate stage.
type SubmissionOrchestrator struct {
	repo      interfaces.ILeadRepository
	generator interfaces.IEstimateGenerator
	cfg       SubmissionConfig
	inflight  singleflight.Group
	logger    *zap.Logger
	now       func() time.Time
}

func NewSubmissionOrchestrator(repo interfaces.ILeadRepository, generator interfaces.IEstimateGenerator, cfg SubmissionConfig, logger *zap.Logger) *SubmissionOrchestrator {
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	if cfg.FallbackPrice <= 0 {
		cfg.FallbackPrice = entities.DefaultFallbackPrice
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionOrchestrator{repo: repo, generator: generator, cfg: cfg, logger: logger, now: time.Now}
}

// Submit runs at most once at a time per session; concurrent callers share the
// result of the submission already in flight.
func (o *SubmissionOrchestrator) Submit(_ context.Context, h *sessionHandle, contact entities.ContactInfo, skip bool) (SubmissionResult, error) {
	v, err, shared := o.inflight.Do(h.id, func() (interface{}, error) {
		return o.submit(h, contact, skip)
	})
	if shared {
		o.logger.Info("[submission][usecase] joined in-flight submission", zap.String("session_id", h.id))
	}
	if err != nil {
		return SubmissionResult{}, err
	}
	return v.(SubmissionResult), nil
}

type submissionInput struct {
	leadID       string
	existing     bool
	contractorID string
	form         interfaces.FormData
	baseline     *entities.EstimateDocument
}

func (o *SubmissionOrchestrator) submit(h *sessionHandle, contact entities.ContactInfo, skip bool) (SubmissionResult, error) {
	// The session context, not the request, bounds the work: disposing the session
	// abandons it.
	ctx := h.ctx

	in, err := o.prepare(h, contact, skip)
	if err != nil {
		return SubmissionResult{}, err
	}
	log := o.logger.With(zap.String("session_id", h.id), zap.String("lead_id", in.leadID), zap.Bool("skip", skip))
	log.Info("[submission][usecase] start", zap.Bool("existing_lead", in.existing))

	outcome := GenerationOutcome{Kind: OutcomeFallback}
	if err := o.persistLead(ctx, in, contact, skip); err != nil {
		log.Warn("[submission][usecase] persist lead failed; using fallback", zap.Error(err))
		outcome.Err = fmt.Errorf("%w: %v", wizard.ErrNetwork, err)
	} else {
		outcome = o.RaceGeneration(ctx, interfaces.GenerateEstimateRequest{
			LeadID:       in.leadID,
			ContractorID: in.contractorID,
			FormData:     in.form,
		})
	}
	if ctx.Err() != nil {
		log.Info("[submission][usecase] session disposed; result discarded")
		return SubmissionResult{}, ErrSessionDisposed
	}

	doc := outcome.Document
	source := wizard.SourceRemote
	if outcome.Kind == OutcomeFallback {
		doc = entities.FallbackEstimate(o.cfg.FallbackPrice)
		source = wizard.SourceFallback
		log.Warn("[submission][usecase] fallback estimate", zap.Error(outcome.Err))
	}
	if in.baseline != nil {
		doc = entities.MergeDocuments(*in.baseline, doc)
	}

	ev := wizard.EventContactSubmitted
	if skip {
		ev = wizard.EventContactSkipped
	}

	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return SubmissionResult{}, ErrSessionDisposed
	}
	if err := h.session.CompleteContact(ev, doc, source); err != nil {
		h.mu.Unlock()
		return SubmissionResult{}, err
	}
	view := h.session.Snapshot()
	h.mu.Unlock()

	if outcome.Kind == OutcomeRemote {
		o.storeEstimate(ctx, in.leadID, *view.Estimate, log)
	}

	res := SubmissionResult{LeadID: in.leadID, Source: source, Estimate: *view.Estimate, View: view}
	if source == wizard.SourceFallback {
		res.Warning = "We could not finish your detailed estimate yet. A preliminary estimate is shown and the contractor will follow up."
	}
	log.Info("[submission][usecase] done", zap.String("source", string(source)), zap.Float64("total_cost", res.Estimate.TotalCost))
	return res, nil
}

// prepare validates the session and assigns the lead id under the session lock.
func (o *SubmissionOrchestrator) prepare(h *sessionHandle, contact entities.ContactInfo, skip bool) (submissionInput, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return submissionInput{}, ErrSessionNotFound
	}
	s := h.session
	if s.Stage != wizard.StageContact {
		return submissionInput{}, &wizard.ValidationError{Stage: s.Stage, Field: "contact", Reason: "contact is submitted in the contact stage"}
	}
	if !skip && contact.IsEmpty() {
		return submissionInput{}, &wizard.ValidationError{Stage: s.Stage, Field: "contact", Reason: "provide contact details or skip"}
	}

	in := submissionInput{leadID: s.LeadID, existing: s.LeadID != "", contractorID: s.ContractorID, baseline: h.baseline}
	if !in.existing {
		in.leadID = uuid.NewString()
	}
	if err := s.AttachLead(in.leadID); err != nil {
		return submissionInput{}, err
	}

	in.form = interfaces.FormData{
		ProjectDescription: s.ProjectDescription,
		Photos:             append([]string(nil), s.UploadedPhotos...),
		CategoryIDs:        append([]string(nil), s.SelectedCategories...),
		Answers:            s.Answers.Records(),
	}
	if !skip {
		in.form.Contact = contact
	}
	return in, nil
}

// persistLead inserts the lead once; a session that already has one updates it.
func (o *SubmissionOrchestrator) persistLead(ctx context.Context, in submissionInput, contact entities.ContactInfo, skip bool) error {
	desc := in.form.ProjectDescription
	upd := entities.LeadUpdate{
		Status:             entities.StatusPtr(entities.LeadStatusProcessing),
		ProjectDescription: &desc,
		Photos:             in.form.Photos,
		CategoryIDs:        in.form.CategoryIDs,
		Answers:            in.form.Answers,
	}
	if !skip {
		c := contact
		upd.Contact = &c
	}

	if in.existing {
		updated, err := o.repo.Update(ctx, in.leadID, upd)
		if err != nil {
			return err
		}
		if updated.ID != "" {
			return nil
		}
	}

	now := o.now().UTC()
	lead := entities.Lead{
		ID:                 in.leadID,
		ContractorID:       in.contractorID,
		Status:             entities.LeadStatusProcessing,
		ProjectDescription: desc,
		Photos:             in.form.Photos,
		CategoryIDs:        in.form.CategoryIDs,
		Answers:            in.form.Answers,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if !skip {
		lead.Contact = contact
	}
	_, err := o.repo.Insert(ctx, lead)
	return err
}

// RaceGeneration calls the generator with the configured deadline. Whichever of
// the response and the deadline comes first decides the outcome; a late response
// is dropped.
func (o *SubmissionOrchestrator) RaceGeneration(ctx context.Context, req interfaces.GenerateEstimateRequest) GenerationOutcome {
	gctx, cancel := context.WithTimeout(ctx, o.cfg.GenerationTimeout)
	defer cancel()

	type reply struct {
		doc entities.EstimateDocument
		err error
	}
	replies := make(chan reply, 1)
	go func() {
		doc, err := o.generator.GenerateEstimate(gctx, req)
		replies <- reply{doc: doc, err: err}
	}()

	select {
	case r := <-replies:
		if r.err != nil {
			return GenerationOutcome{Kind: OutcomeFallback, Err: classifyRemoteError(r.err)}
		}
		if err := entities.ValidateEstimateDocument(r.doc); err != nil {
			return GenerationOutcome{Kind: OutcomeFallback, Err: err}
		}
		if err := entities.CheckIntegrity(r.doc); err != nil {
			o.logger.Error("[submission][usecase] generated estimate fails integrity check",
				zap.String("lead_id", req.LeadID), zap.Error(err))
			return GenerationOutcome{Kind: OutcomeFallback, Err: err}
		}
		return GenerationOutcome{Kind: OutcomeRemote, Document: entities.Recalculate(r.doc)}
	case <-gctx.Done():
		return GenerationOutcome{Kind: OutcomeFallback, Err: fmt.Errorf("%w: estimate generation after %s", wizard.ErrTimeout, o.cfg.GenerationTimeout)}
	}
}

func (o *SubmissionOrchestrator) storeEstimate(ctx context.Context, leadID string, doc entities.EstimateDocument, log *zap.Logger) {
	_, err := o.repo.Update(ctx, leadID, entities.LeadUpdate{
		Status:   entities.StatusPtr(entities.LeadStatusComplete),
		Estimate: &doc,
	})
	if err != nil {
		log.Warn("[submission][usecase] store estimate failed", zap.Error(err))
	}
}

func classifyRemoteError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrNetwork), errors.Is(err, wizard.ErrTimeout), errors.Is(err, wizard.ErrNotFound):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", wizard.ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", wizard.ErrNetwork, err)
	}
}

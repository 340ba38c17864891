package handlers

import (
	"errors"
	"net/http"

	"contractor_estimates/internal/adapter/http/dto/request"
	"contractor_estimates/internal/adapter/http/dto/response"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase"
	"contractor_estimates/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the customer-facing estimate wizard. Every call addresses
// one in-memory session by id.
type WizardHandler struct {
	usecase usecase.IWizardUseCase
	logger  *zap.Logger
}

func NewWizardHandler(uc usecase.IWizardUseCase, logger *zap.Logger) *WizardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardHandler{usecase: uc, logger: logger}
}

// CreateSession godoc
// @Summary Start a wizard session
// @Tags wizard
// @Accept json
// @Produce json
// @Param body body request.CreateSessionRequest true "contractor and optional lead to resume"
// @Success 201 {object} response.SessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /wizard/sessions [post]
func (h *WizardHandler) CreateSession(c *gin.Context) {
	var req request.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	view, err := h.usecase.CreateSession(c.Request.Context(), usecase.CreateSessionInput{
		ContractorID: req.ContractorID,
		LeadID:       req.LeadID,
		Excluded:     req.Exclude,
	})
	if err != nil {
		h.logger.Warn("[wizard][handler] create session failed", zap.String("contractor_id", req.ContractorID), zap.Error(err))
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromView(view))
}

// GetSession godoc
// @Summary Get a wizard session with its progress
// @Tags wizard
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} response.SessionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /wizard/sessions/{id} [get]
func (h *WizardHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

// DisposeSession godoc
// @Summary Dispose a wizard session
// @Tags wizard
// @Param id path string true "session id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /wizard/sessions/{id} [delete]
func (h *WizardHandler) DisposeSession(c *gin.Context) {
	if err := h.usecase.DisposeSession(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetPhotos godoc
// @Summary Replace the uploaded photo URLs
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body request.PhotosRequest true "photo urls"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/photos [put]
func (h *WizardHandler) SetPhotos(c *gin.Context) {
	var req request.PhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	view, err := h.usecase.SetPhotos(c.Request.Context(), c.Param("id"), req.Photos)
	h.respond(c, view, err)
}

// SetDescription godoc
// @Summary Set the project description
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body request.DescriptionRequest true "description"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/description [put]
func (h *WizardHandler) SetDescription(c *gin.Context) {
	var req request.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	view, err := h.usecase.SetDescription(c.Request.Context(), c.Param("id"), req.Description)
	h.respond(c, view, err)
}

// SuggestCategories godoc
// @Summary Rank the catalog against the session description
// @Tags wizard
// @Produce json
// @Param id path string true "session id"
// @Success 200 {array} response.CategoryResponse
// @Router /wizard/sessions/{id}/categories/suggested [get]
func (h *WizardHandler) SuggestCategories(c *gin.Context) {
	cats, err := h.usecase.SuggestCategories(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(cats))
}

// SelectCategories godoc
// @Summary Select the categories the customer needs
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body request.SelectCategoriesRequest true "category ids"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/categories [put]
func (h *WizardHandler) SelectCategories(c *gin.Context) {
	var req request.SelectCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	view, err := h.usecase.SelectCategories(c.Request.Context(), c.Param("id"), req.CategoryIDs)
	h.respond(c, view, err)
}

// Advance godoc
// @Summary Move to the next stage when the current one is complete
// @Tags wizard
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/advance [post]
func (h *WizardHandler) Advance(c *gin.Context) {
	view, err := h.usecase.Advance(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

// RecordAnswer godoc
// @Summary Answer a question of the active category
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param question_id path string true "question id"
// @Param body body request.AnswerRequest true "selected values"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/answers/{question_id} [put]
func (h *WizardHandler) RecordAnswer(c *gin.Context) {
	var req request.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	view, err := h.usecase.RecordAnswer(c.Request.Context(), c.Param("id"), c.Param("question_id"), req.Values)
	h.respond(c, view, err)
}

// SubmitContact godoc
// @Summary Submit (or skip) contact details and generate the estimate
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body request.ContactRequest true "contact"
// @Success 200 {object} response.SubmissionResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/contact [post]
func (h *WizardHandler) SubmitContact(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	id := c.Param("id")
	res, err := h.usecase.SubmitContact(c.Request.Context(), id, req.ToContact(), req.Skip)
	if err != nil {
		h.logger.Warn("[wizard][handler] submit contact failed", zap.String("session_id", id), zap.Error(err))
		writeError(c, mapWizardError(err))
		return
	}
	h.logger.Info("[wizard][handler] estimate ready",
		zap.String("session_id", id),
		zap.String("lead_id", res.LeadID),
		zap.String("source", string(res.Source)))
	c.JSON(http.StatusOK, response.FromSubmission(res))
}

// EditEstimateItem godoc
// @Summary Edit one line item of the session estimate
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body request.LineItemEditRequest true "item position and amounts"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/estimate/items [patch]
func (h *WizardHandler) EditEstimateItem(c *gin.Context) {
	var req request.LineItemEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	view, err := h.usecase.EditEstimateItem(c.Request.Context(), c.Param("id"), req.Ref(), *req.Quantity, *req.UnitAmount)
	h.respond(c, view, err)
}

func (h *WizardHandler) respond(c *gin.Context, view wizard.View, err error) {
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromView(view))
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionDisposed):
		return pkg.NewDomainErrorSimple("SESSION_DISPOSED", "Wizard session was closed", http.StatusGone)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLeadContractorDiff):
		return pkg.NewDomainErrorSimple("LEAD_CONTRACTOR_MISMATCH", "Lead belongs to another contractor", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}

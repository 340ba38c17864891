package handlers

import (
	"errors"
	"net/http"

	"contractor_estimates/internal/adapter/http/dto/request"
	"contractor_estimates/internal/adapter/http/dto/response"
	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase"
	"contractor_estimates/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler is the contractor dashboard over persisted leads.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
	logger  *zap.Logger
}

func NewLeadHandler(uc usecase.ILeadUseCase, logger *zap.Logger) *LeadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadHandler{usecase: uc, logger: logger}
}

// ListByContractor godoc
// @Summary List a contractor's leads, newest first
// @Tags leads
// @Produce json
// @Param contractor_id path string true "contractor id"
// @Success 200 {array} response.LeadResponse
// @Router /contractors/{contractor_id}/leads [get]
func (h *LeadHandler) ListByContractor(c *gin.Context) {
	leads, err := h.usecase.ListByContractor(c.Request.Context(), c.Param("contractor_id"))
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// GetLead godoc
// @Summary Load a lead (retried with backoff)
// @Tags leads
// @Produce json
// @Param id path string true "lead id"
// @Success 200 {object} response.LeadResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError "retryable"
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.FetchLead(c.Request.Context(), c.Param("id"))
	h.respond(c, "get", lead, err)
}

// WaitForEstimate godoc
// @Summary Wait a bounded time for estimate generation to settle
// @Tags leads
// @Produce json
// @Param id path string true "lead id"
// @Success 200 {object} response.WaitResponse
// @Router /leads/{id}/estimate/wait [get]
func (h *LeadHandler) WaitForEstimate(c *gin.Context) {
	res, err := h.usecase.WaitForEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPollResult(res))
}

// UpdateStatus godoc
// @Summary Change a lead's status
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "lead id"
// @Param body body request.LeadStatusRequest true "status"
// @Success 200 {object} response.LeadResponse
// @Router /leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var req request.LeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	lead, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), req.LeadStatus())
	h.respond(c, "update-status", lead, err)
}

// ReplaceEstimate godoc
// @Summary Replace the estimate document; totals are recomputed
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "lead id"
// @Param body body request.ReplaceEstimateRequest true "estimate_data"
// @Success 200 {object} response.LeadResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /leads/{id}/estimate [put]
func (h *LeadHandler) ReplaceEstimate(c *gin.Context) {
	var req request.ReplaceEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	doc, err := req.Document()
	if err != nil {
		if errors.Is(err, request.ErrMissingEstimate) {
			invalidRequest(c)
			return
		}
		writeError(c, mapLeadError(err))
		return
	}
	lead, err := h.usecase.ReplaceEstimate(c.Request.Context(), c.Param("id"), doc)
	h.respond(c, "replace-estimate", lead, err)
}

// EditLineItem godoc
// @Summary Edit one line item; subtotal, group and total cost cascade
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "lead id"
// @Param body body request.LineItemEditRequest true "item position and amounts"
// @Success 200 {object} response.LeadResponse
// @Router /leads/{id}/estimate/items [patch]
func (h *LeadHandler) EditLineItem(c *gin.Context) {
	var req request.LineItemEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	lead, err := h.usecase.EditLineItem(c.Request.Context(), c.Param("id"), req.Ref(), *req.Quantity, *req.UnitAmount)
	h.respond(c, "edit-line-item", lead, err)
}

// AddLine godoc
// @Summary Generate and append an estimate for additional work
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "lead id"
// @Param body body request.AddLineRequest true "additional work"
// @Success 200 {object} response.LeadResponse
// @Router /leads/{id}/estimate/lines [post]
func (h *LeadHandler) AddLine(c *gin.Context) {
	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	lead, err := h.usecase.AddLine(c.Request.Context(), c.Param("id"), req.Description)
	h.respond(c, "add-line", lead, err)
}

// Sign godoc
// @Summary Sign the estimate as contractor or customer
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "lead id"
// @Param body body request.SignRequest true "signer and name"
// @Success 200 {object} response.LeadResponse
// @Router /leads/{id}/sign [post]
func (h *LeadHandler) Sign(c *gin.Context) {
	var req request.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	lead, err := h.usecase.Sign(c.Request.Context(), c.Param("id"), usecase.Signer(req.Signer), req.Name)
	h.respond(c, "sign", lead, err)
}

// Send godoc
// @Summary Email the estimate to the customer
// @Tags leads
// @Produce json
// @Param id path string true "lead id"
// @Success 200 {object} response.LeadResponse
// @Router /leads/{id}/send [post]
func (h *LeadHandler) Send(c *gin.Context) {
	lead, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	h.respond(c, "send", lead, err)
}

// Delete godoc
// @Summary Delete a lead
// @Tags leads
// @Param id path string true "lead id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LeadHandler) respond(c *gin.Context, action string, lead entities.Lead, err error) {
	if err != nil {
		appErr := mapLeadError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Warn("[lead][handler] request failed",
				zap.String("action", action), zap.String("lead_id", c.Param("id")), zap.Error(err))
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidSigner),
		errors.Is(err, usecase.ErrInvalidSignature), errors.Is(err, usecase.ErrEmptyAdditional):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadMissingEmail):
		return pkg.NewDomainErrorSimple("LEAD_MISSING_EMAIL", "Lead has no customer email", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}

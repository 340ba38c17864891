package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"contractor_estimates/internal/adapter/http/dto/response"
	"contractor_estimates/internal/usecase"
	"contractor_estimates/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles deposit payments against signed estimates.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, logger *zap.Logger) *BillingPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, logger: logger}
}

// CreatePaymentByLeadID godoc
// @Summary Create and process the deposit payment for a lead
// @Tags payments
// @Accept json
// @Produce json
// @Param lead_id path string true "lead id"
// @Param body body request.BillingPaymentCreateRequest false "Mercado Pago payload (raw or wrapped in mp_payload)"
// @Success 200 {object} response.BillingPaymentResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /payments/{lead_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByLeadID(c *gin.Context) {
	leadID := c.Param("lead_id")
	log := h.logger.With(zap.String("lead_id", leadID))
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn("[payment][handler] invalid payload", zap.Error(err))
			invalidRequest(c)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), leadID, mpPayload)
	if err != nil {
		log.Warn("[payment][handler] create failed", zap.Error(err))
		writeError(c, mapBillingPaymentError(err))
		return
	}
	log.Info("[payment][handler] create success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByLeadID godoc
// @Summary Latest payment for a lead
// @Tags payments
// @Produce json
// @Param lead_id path string true "lead id"
// @Success 200 {object} response.BillingPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{lead_id} [get]
func (h *BillingPaymentHandler) GetPaymentByLeadID(c *gin.Context) {
	leadID := c.Param("lead_id")

	payments, err := h.usecase.ListByLeadID(c.Request.Context(), leadID)
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}
	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// GetPayment godoc
// @Summary One payment of a lead
// @Tags payments
// @Produce json
// @Param lead_id path string true "lead id"
// @Param payment_id path string true "payment id"
// @Success 200 {object} response.BillingPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{lead_id}/{payment_id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err == nil && p.LeadID != c.Param("lead_id") {
		err = usecase.ErrBillingPaymentNotFound
	}
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentLeadID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrEstimateNotSigned):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_SIGNED", "Estimate not signed by the customer", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}

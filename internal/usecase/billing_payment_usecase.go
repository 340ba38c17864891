package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentLeadID           = errors.New("invalid lead_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrEstimateNotSigned              = errors.New("estimate not signed by customer")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentConfig carries the gateway settings the use case needs to shape payloads.
type PaymentConfig struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (c PaymentConfig) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(c.AccessToken), "TEST-")
}

// IBillingPaymentUseCase collects a deposit on a customer-signed estimate.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, leadID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo     interfaces.IBillingPaymentRepository
	leadRepo interfaces.ILeadRepository
	gateway  interfaces.IPaymentGateway
	cfg      PaymentConfig
	logger   *zap.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, leadRepo interfaces.ILeadRepository, gateway interfaces.IPaymentGateway, cfg PaymentConfig, logger *zap.Logger) *BillingPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingPaymentUseCase{repo: repo, leadRepo: leadRepo, gateway: gateway, cfg: cfg, logger: logger}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, leadID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	mockMode := u.cfg.Mock
	leadID = strings.TrimSpace(leadID)
	log := u.logger.With(zap.String("lead_id", leadID), zap.Bool("mock", mockMode))
	log.Info("[payment][usecase] create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	if leadID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentLeadID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.leadRepo == nil {
		return entities.BillingPayment{}, errors.New("lead repository not configured")
	}

	lead, err := u.leadRepo.Get(ctx, leadID)
	if err != nil {
		log.Error("[payment][usecase] failed loading lead", zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if lead.ID == "" {
		return entities.BillingPayment{}, ErrLeadNotFound
	}
	if lead.Estimate == nil {
		return entities.BillingPayment{}, ErrEstimateNotReady
	}
	if !mockMode && lead.CustomerSignature == nil {
		log.Info("[payment][usecase] estimate not signed", zap.String("status", string(lead.Status)))
		return entities.BillingPayment{}, ErrEstimateNotSigned
	}
	amount := entities.Recalculate(*lead.Estimate).TotalCost

	// Mercado Pago uses external_reference to reconcile events with the lead.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayer(reqMap)
			u.ensurePayerDefaults(reqMap, lead.Contact)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = leadID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Estimate deposit %s", leadID)
		}
		// The stored estimate is the source of truth for the amount.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Warn("[payment][usecase] payload unmarshal failed", zap.Error(err))
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID, providerStatus, providerResp, err = mockGatewayResponse(mpPayload, leadID, amount)
		if err != nil {
			return entities.BillingPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
			return entities.BillingPayment{}, mapGatewayError(err)
		}
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		LeadID:       leadID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	log.Info("[payment][usecase] create-and-approve success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.BillingPayment, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidPaymentLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}

func mockGatewayResponse(payload json.RawMessage, leadID string, amount float64) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = leadID
	}
	resp["transaction_amount"] = amount
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills the payer from the lead's contact when the caller left it out.
func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any, contact entities.ContactInfo) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case strings.TrimSpace(contact.Email) != "" && !u.cfg.sandbox():
		payer["email"] = strings.TrimSpace(contact.Email)
		if contact.FirstName != "" {
			payer["first_name"] = contact.FirstName
		}
		if contact.LastName != "" {
			payer["last_name"] = contact.LastName
		}
	case u.cfg.TestPayerEmail != "":
		payer["email"] = u.cfg.TestPayerEmail
	case u.cfg.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps a configured sandbox user id for its email.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.cfg.sandbox() || u.cfg.TestPayerUserID == "" || u.cfg.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.cfg.TestPayerUserID {
		return
	}
	payer["email"] = u.cfg.TestPayerEmail
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

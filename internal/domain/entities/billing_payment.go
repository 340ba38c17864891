package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment is a deposit collected against a signed estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// MPPayloadRaw keeps the provider response body for audit; MPPayload is the parsed form.
type BillingPayment struct {
	ID     string        `json:"id"`
	LeadID string        `json:"lead_id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

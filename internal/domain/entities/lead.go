package entities

import (
	"errors"
	"time"
)

// ErrCorruptLead marks a stored lead whose attributes cannot be decoded.
var ErrCorruptLead = errors.New("corrupt lead record")

// LeadStatus represents the lifecycle of a lead (one customer estimate request).
type LeadStatus string

const (
	LeadStatusPending    LeadStatus = "pending"
	LeadStatusProcessing LeadStatus = "processing"
	LeadStatusComplete   LeadStatus = "complete"
	LeadStatusInProgress LeadStatus = "in-progress"
	LeadStatusTest       LeadStatus = "test"
	LeadStatusCancelled  LeadStatus = "cancelled"
	LeadStatusArchived   LeadStatus = "archived"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusPending, LeadStatusProcessing, LeadStatusComplete, LeadStatusInProgress,
		LeadStatusTest, LeadStatusCancelled, LeadStatusArchived:
		return true
	}
	return false
}

// Settled reports whether generation is no longer running for the lead.
func (s LeadStatus) Settled() bool {
	return s != LeadStatusProcessing && s != LeadStatusPending
}

type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (c ContactInfo) IsEmpty() bool {
	return c.FirstName == "" && c.LastName == "" && c.Email == "" && c.Phone == "" && c.Address == ""
}

type Signature struct {
	Name     string    `json:"name"`
	SignedAt time.Time `json:"signed_at"`
}

// AnswerRecord is the persisted form of one answered question.
type AnswerRecord struct {
	QuestionID     string   `json:"question_id"`
	QuestionText   string   `json:"question_text"`
	SelectedValues []string `json:"selected_values"`
	Options        []string `json:"options"`
}

// CategoryAnswers keeps the answers of one category in first-answered order.
type CategoryAnswers struct {
	CategoryID string         `json:"category_id"`
	Answers    []AnswerRecord `json:"answers"`
}

// Lead is the persisted estimate request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contractor_id-index): contractor_id
type Lead struct {
	ID                 string            `json:"id"`
	ContractorID       string            `json:"contractor_id"`
	Status             LeadStatus        `json:"status"`
	Contact            ContactInfo       `json:"contact"`
	ProjectDescription string            `json:"project_description"`
	Photos             []string          `json:"photos"`
	CategoryIDs        []string          `json:"category_ids"`
	Answers            []CategoryAnswers `json:"answers"`
	Estimate           *EstimateDocument `json:"estimate_data,omitempty"`

	ContractorSignature *Signature `json:"contractor_signature,omitempty"`
	CustomerSignature   *Signature `json:"customer_signature,omitempty"`
	SentAt              *time.Time `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadUpdate is a partial update; nil fields are left untouched.
type LeadUpdate struct {
	Status              *LeadStatus
	Contact             *ContactInfo
	ProjectDescription  *string
	Photos              []string
	CategoryIDs         []string
	Answers             []CategoryAnswers
	Estimate            *EstimateDocument
	ContractorSignature *Signature
	CustomerSignature   *Signature
	SentAt              *time.Time
}

func (u LeadUpdate) IsEmpty() bool {
	return u.Status == nil && u.Contact == nil && u.ProjectDescription == nil && u.Photos == nil &&
		u.CategoryIDs == nil && u.Answers == nil && u.Estimate == nil &&
		u.ContractorSignature == nil && u.CustomerSignature == nil && u.SentAt == nil
}

func StatusPtr(s LeadStatus) *LeadStatus {
	return &s
}

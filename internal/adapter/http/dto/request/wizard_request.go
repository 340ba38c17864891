package request

import (
	"strings"

	"contractor_estimates/internal/domain/entities"
)

// CreateSessionRequest starts a wizard run. lead_id resumes an existing lead so the
// new estimate is appended to it.
type CreateSessionRequest struct {
	ContractorID string   `json:"contractor_id" binding:"required"`
	LeadID       string   `json:"lead_id"`
	Exclude      []string `json:"exclude"`
}

type PhotosRequest struct {
	Photos []string `json:"photos"`
}

type DescriptionRequest struct {
	Description string `json:"description"`
}

type SelectCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" binding:"required"`
}

type AnswerRequest struct {
	Values []string `json:"values"`
}

// ContactRequest submits the contact stage. skip continues without contact details.
type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Skip      bool   `json:"skip"`
}

func (r ContactRequest) ToContact() entities.ContactInfo {
	return entities.ContactInfo{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),
		Address:   strings.TrimSpace(r.Address),
	}
}

// LineItemEditRequest addresses one item by position. Indexes are zero-based, so
// only the amounts are required.
type LineItemEditRequest struct {
	Group      int      `json:"group"`
	Subgroup   int      `json:"subgroup"`
	Item       int      `json:"item"`
	Quantity   *float64 `json:"quantity" binding:"required"`
	UnitAmount *float64 `json:"unit_amount" binding:"required"`
}

func (r LineItemEditRequest) Ref() entities.LineItemRef {
	return entities.LineItemRef{Group: r.Group, Subgroup: r.Subgroup, Item: r.Item}
}

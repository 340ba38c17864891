package entities

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidEstimateDocument = errors.New("invalid estimate document")
	ErrEstimateIntegrity       = errors.New("estimate totals do not match line items")
	ErrLineItemNotFound        = errors.New("line item not found")
	ErrInvalidLineItem         = errors.New("invalid line item amount")
)

const (
	FallbackGroupName    = "Project Estimate"
	FallbackSubgroupName = "General"
	FallbackItemTitle    = "Initial estimate"
	FallbackDescription  = "Preliminary estimate. The contractor will follow up with a detailed quote."

	// DefaultFallbackPrice is the nominal total of the placeholder estimate.
	DefaultFallbackPrice = 250.0
)

// EstimateDocument is the priced output shown to customers and contractors.
//
// Stored as the lead's estimate_data. TotalCost, group totals and subgroup subtotals
// are derived from the line items; Recalculate is the only place they are produced.
type EstimateDocument struct {
	Groups    []EstimateGroup `json:"groups"`
	TotalCost float64         `json:"totalCost"`
}

type EstimateGroup struct {
	Name      string             `json:"name"`
	Subgroups []EstimateSubgroup `json:"subgroups"`
	Total     float64            `json:"total"`
}

type EstimateSubgroup struct {
	Name     string     `json:"name"`
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

type LineItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitAmount  float64 `json:"unitAmount"`
	TotalPrice  float64 `json:"totalPrice"`
}

// LineItemRef addresses one item by position.
type LineItemRef struct {
	Group    int `json:"group"`
	Subgroup int `json:"subgroup"`
	Item     int `json:"item"`
}

// Money math happens in integer cents so sums are exact.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}

func lineCents(quantity, unitAmount float64) int64 {
	return int64(math.Round(quantity * unitAmount * 100))
}

// Recalculate derives every item total and every aggregate from quantity and unit amount.
// It never modifies doc.
func Recalculate(doc EstimateDocument) EstimateDocument {
	out := EstimateDocument{Groups: make([]EstimateGroup, len(doc.Groups))}
	var totalCents int64
	for gi, g := range doc.Groups {
		ng := EstimateGroup{Name: g.Name, Subgroups: make([]EstimateSubgroup, len(g.Subgroups))}
		var groupCents int64
		for si, sg := range g.Subgroups {
			nsg := EstimateSubgroup{Name: sg.Name, Items: make([]LineItem, len(sg.Items))}
			var subCents int64
			for ii, it := range sg.Items {
				c := lineCents(it.Quantity, it.UnitAmount)
				it.TotalPrice = fromCents(c)
				nsg.Items[ii] = it
				subCents += c
			}
			nsg.Subtotal = fromCents(subCents)
			ng.Subgroups[si] = nsg
			groupCents += subCents
		}
		ng.Total = fromCents(groupCents)
		out.Groups[gi] = ng
		totalCents += groupCents
	}
	out.TotalCost = fromCents(totalCents)
	return out
}

// MergeDocuments appends b's groups after a's. Same-named groups are kept separate.
func MergeDocuments(a, b EstimateDocument) EstimateDocument {
	groups := make([]EstimateGroup, 0, len(a.Groups)+len(b.Groups))
	groups = append(groups, cloneGroups(a.Groups)...)
	groups = append(groups, cloneGroups(b.Groups)...)
	return EstimateDocument{
		Groups:    groups,
		TotalCost: fromCents(toCents(a.TotalCost) + toCents(b.TotalCost)),
	}
}

// Clone returns a deep copy.
func (d EstimateDocument) Clone() EstimateDocument {
	return EstimateDocument{Groups: cloneGroups(d.Groups), TotalCost: d.TotalCost}
}

// ItemsTotal sums TotalPrice over every line item.
func (d EstimateDocument) ItemsTotal() float64 {
	var c int64
	for _, g := range d.Groups {
		for _, sg := range g.Subgroups {
			for _, it := range sg.Items {
				c += toCents(it.TotalPrice)
			}
		}
	}
	return fromCents(c)
}

// ItemCount reports the number of line items across all groups.
func (d EstimateDocument) ItemCount() int {
	n := 0
	for _, g := range d.Groups {
		for _, sg := range g.Subgroups {
			n += len(sg.Items)
		}
	}
	return n
}

// EditLineItem sets quantity and unit amount on one item and recalculates the document.
func EditLineItem(doc EstimateDocument, ref LineItemRef, quantity, unitAmount float64) (EstimateDocument, error) {
	if ref.Group < 0 || ref.Group >= len(doc.Groups) {
		return EstimateDocument{}, ErrLineItemNotFound
	}
	g := doc.Groups[ref.Group]
	if ref.Subgroup < 0 || ref.Subgroup >= len(g.Subgroups) {
		return EstimateDocument{}, ErrLineItemNotFound
	}
	sg := g.Subgroups[ref.Subgroup]
	if ref.Item < 0 || ref.Item >= len(sg.Items) {
		return EstimateDocument{}, ErrLineItemNotFound
	}
	if err := validateAmount("quantity", quantity); err != nil {
		return EstimateDocument{}, fmt.Errorf("%w: %v", ErrInvalidLineItem, err)
	}
	if err := validateAmount("unitAmount", unitAmount); err != nil {
		return EstimateDocument{}, fmt.Errorf("%w: %v", ErrInvalidLineItem, err)
	}

	next := EstimateDocument{Groups: cloneGroups(doc.Groups), TotalCost: doc.TotalCost}
	item := &next.Groups[ref.Group].Subgroups[ref.Subgroup].Items[ref.Item]
	item.Quantity = quantity
	item.UnitAmount = unitAmount
	return Recalculate(next), nil
}

// ValidateEstimateDocument checks the structure of a document received from outside.
func ValidateEstimateDocument(doc EstimateDocument) error {
	if len(doc.Groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrInvalidEstimateDocument)
	}
	for gi, g := range doc.Groups {
		if len(g.Subgroups) == 0 {
			return fmt.Errorf("%w: group %d has no subgroups", ErrInvalidEstimateDocument, gi)
		}
		for si, sg := range g.Subgroups {
			for ii, it := range sg.Items {
				if err := validateAmount("quantity", it.Quantity); err != nil {
					return fmt.Errorf("%w: item %d/%d/%d: %v", ErrInvalidEstimateDocument, gi, si, ii, err)
				}
				if err := validateAmount("unitAmount", it.UnitAmount); err != nil {
					return fmt.Errorf("%w: item %d/%d/%d: %v", ErrInvalidEstimateDocument, gi, si, ii, err)
				}
				if math.IsNaN(it.TotalPrice) || math.IsInf(it.TotalPrice, 0) {
					return fmt.Errorf("%w: item %d/%d/%d: totalPrice is not finite", ErrInvalidEstimateDocument, gi, si, ii)
				}
			}
		}
	}
	if math.IsNaN(doc.TotalCost) || math.IsInf(doc.TotalCost, 0) {
		return fmt.Errorf("%w: totalCost is not finite", ErrInvalidEstimateDocument)
	}
	return nil
}

// CheckIntegrity reports ErrEstimateIntegrity when an item totalPrice, a subgroup
// subtotal or totalCost disagrees with the value Recalculate would derive. Group
// totals are not part of the wire document and are not compared.
func CheckIntegrity(doc EstimateDocument) error {
	want := Recalculate(doc)
	if toCents(doc.TotalCost) != toCents(want.TotalCost) {
		return fmt.Errorf("%w: totalCost %.2f, items %.2f", ErrEstimateIntegrity, doc.TotalCost, want.TotalCost)
	}
	for gi, g := range doc.Groups {
		for si, sg := range g.Subgroups {
			if toCents(sg.Subtotal) != toCents(want.Groups[gi].Subgroups[si].Subtotal) {
				return fmt.Errorf("%w: subgroup %q subtotal %.2f", ErrEstimateIntegrity, sg.Name, sg.Subtotal)
			}
			for ii, it := range sg.Items {
				if toCents(it.TotalPrice) != toCents(want.Groups[gi].Subgroups[si].Items[ii].TotalPrice) {
					return fmt.Errorf("%w: item %q totalPrice %.2f", ErrEstimateIntegrity, it.Title, it.TotalPrice)
				}
			}
		}
	}
	return nil
}

// FallbackEstimate is the single-item placeholder used when generation fails or times out.
func FallbackEstimate(price float64) EstimateDocument {
	if price <= 0 {
		price = DefaultFallbackPrice
	}
	return Recalculate(EstimateDocument{
		Groups: []EstimateGroup{{
			Name: FallbackGroupName,
			Subgroups: []EstimateSubgroup{{
				Name: FallbackSubgroupName,
				Items: []LineItem{{
					Title:       FallbackItemTitle,
					Description: FallbackDescription,
					Quantity:    1,
					UnitAmount:  price,
				}},
			}},
		}},
	})
}

func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s is not finite", field)
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

func cloneGroups(groups []EstimateGroup) []EstimateGroup {
	out := make([]EstimateGroup, len(groups))
	for gi, g := range groups {
		ng := EstimateGroup{Name: g.Name, Total: g.Total, Subgroups: make([]EstimateSubgroup, len(g.Subgroups))}
		for si, sg := range g.Subgroups {
			items := make([]LineItem, len(sg.Items))
			copy(items, sg.Items)
			ng.Subgroups[si] = EstimateSubgroup{Name: sg.Name, Subtotal: sg.Subtotal, Items: items}
		}
		out[gi] = ng
	}
	return out
}

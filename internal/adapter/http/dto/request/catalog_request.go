package request

import (
	"strings"

	"contractor_estimates/internal/domain/entities"
)

type MatchCategoriesRequest struct {
	ContractorID string   `json:"contractor_id" binding:"required"`
	Description  string   `json:"description"`
	Exclude      []string `json:"exclude"`
}

// ParseExcluded splits a comma-separated ?exclude= value, dropping blanks.
func ParseExcluded(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type MeasurementRequest struct {
	Images      []string `json:"images" binding:"required"`
	Description string   `json:"description"`
	Unit        string   `json:"unit" binding:"required"`
}

func (r MeasurementRequest) ToEntity() entities.MeasurementRequest {
	return entities.MeasurementRequest{Images: r.Images, Description: r.Description, Unit: r.Unit}
}

package entities

import (
	"errors"
	"math"
)

var ErrInvalidMeasurement = errors.New("invalid measurement result")

type MeasurementRequest struct {
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
}

type Measurement struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Dimension string  `json:"dimension"`
}

type MeasurementResult struct {
	Measurements struct {
		Primary    Measurement   `json:"primary"`
		Additional []Measurement `json:"additional"`
	} `json:"measurements"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Validate rejects results that cannot be shown to the customer as a suggestion.
func (r MeasurementResult) Validate() error {
	all := append([]Measurement{r.Measurements.Primary}, r.Measurements.Additional...)
	for _, m := range all {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) || m.Value < 0 {
			return ErrInvalidMeasurement
		}
	}
	if math.IsNaN(r.Confidence) || r.Confidence < 0 || r.Confidence > 1 {
		return ErrInvalidMeasurement
	}
	return nil
}

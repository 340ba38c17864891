package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseEstimateDocument decodes stored or received estimate_data and checks its shape.
// Unknown fields are rejected so schema drift surfaces here rather than in totals.
func ParseEstimateDocument(raw []byte) (EstimateDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var doc EstimateDocument
	if err := dec.Decode(&doc); err != nil {
		return EstimateDocument{}, fmt.Errorf("%w: %v", ErrInvalidEstimateDocument, err)
	}
	if err := ValidateEstimateDocument(doc); err != nil {
		return EstimateDocument{}, err
	}
	return doc, nil
}

package prediction

import (
	"FreshTrack-API/domain"
)

// ConfidenceTable maps category/location pairs to calibrated confidence scores.
// The table is immutable after construction and safe for concurrent reads.
type ConfidenceTable struct {
	scores map[categoryLocation]float64
}

func NewConfidenceTable() *ConfidenceTable {
	return &ConfidenceTable{scores: confidenceScores}
}

// Lookup never fails: pairs missing from the grid get DefaultConfidence.
func (t *ConfidenceTable) Lookup(category domain.FoodCategory, location domain.StorageLocation) float64 {
	if score, ok := t.scores[categoryLocation{Category: category, Location: location}]; ok {
		return score
	}
	return DefaultConfidence
}

package prediction

import (
	"FreshTrack-API/domain"
)

// RuleBasedEstimator derives shelf life from the category baseline and the
// storage location. It is pure table arithmetic: no I/O, no stored state.
type RuleBasedEstimator struct{}

func NewRuleBasedEstimator() *RuleBasedEstimator {
	return &RuleBasedEstimator{}
}

// Estimate returns whole days of shelf life, never less than 1.
func (e *RuleBasedEstimator) Estimate(category domain.FoodCategory, location domain.StorageLocation) int {
	days := category.DefaultShelfLifeDays()

	switch location {
	case domain.StorageRefrigerator:
		// Baseline already assumes refrigeration.
	case domain.StorageFreezer:
		if frozen, ok := freezerShelfLifeDays[category]; ok {
			days = frozen
		}
	case domain.StorageCounter:
		if limit, ok := counterShelfLifeCapDays[category]; ok && limit < days {
			days = limit
		}
	case domain.StoragePantry:
		if fixed, ok := pantryShelfLifeFixedDays[category]; ok {
			days = fixed
		} else if limit, ok := pantryShelfLifeCapDays[category]; ok && limit < days {
			days = limit
		}
	}

	if days < 1 {
		days = 1
	}
	return days
}

package prediction

import (
	"FreshTrack-API/domain"
)

// Calibration values for the rule estimator and the confidence table. Recalibrate
// here, never inline in the estimation logic.
const (
	// DefaultConfidence is returned for any category/location pair missing from
	// the confidence grid.
	DefaultConfidence = 0.70

	// FallbackConfidenceDiscount is applied when the rule estimator answers
	// instead of the learned model.
	FallbackConfidenceDiscount = 0.85
)

// categoryLocation keys the per-pair tables. Both halves are typed so a category
// can never stand in for a location.
type categoryLocation struct {
	Category domain.FoodCategory
	Location domain.StorageLocation
}

// Freezing replaces the baseline shelf life outright.
var freezerShelfLifeDays = map[domain.FoodCategory]int{
	domain.FoodCategoryDairy:      120,
	domain.FoodCategoryMeat:       180,
	domain.FoodCategorySeafood:    120,
	domain.FoodCategoryProduce:    300,
	domain.FoodCategoryBakery:     120,
	domain.FoodCategoryFrozen:     270,
	domain.FoodCategoryPantry:     365,
	domain.FoodCategoryBeverages:  180,
	domain.FoodCategoryCondiments: 365,
	domain.FoodCategorySnacks:     180,
	domain.FoodCategoryOther:      120,
}

// Counter storage caps the baseline; perishables collapse to a single day.
var counterShelfLifeCapDays = map[domain.FoodCategory]int{
	domain.FoodCategoryDairy:      1,
	domain.FoodCategoryMeat:       1,
	domain.FoodCategorySeafood:    1,
	domain.FoodCategoryProduce:    5,
	domain.FoodCategoryBakery:     5,
	domain.FoodCategoryFrozen:     1,
	domain.FoodCategoryPantry:     60,
	domain.FoodCategoryBeverages:  14,
	domain.FoodCategoryCondiments: 60,
	domain.FoodCategorySnacks:     60,
	domain.FoodCategoryOther:      7,
}

// Pantry storage caps the baseline for everything except beverages, which hold a
// fixed 180 days unrefrigerated. Categories absent from both maps keep the baseline.
var pantryShelfLifeCapDays = map[domain.FoodCategory]int{
	domain.FoodCategoryDairy:   1,
	domain.FoodCategoryMeat:    1,
	domain.FoodCategorySeafood: 1,
	domain.FoodCategoryProduce: 14,
	domain.FoodCategoryBakery:  7,
	domain.FoodCategoryFrozen:  1,
	domain.FoodCategoryOther:   30,
}

var pantryShelfLifeFixedDays = map[domain.FoodCategory]int{
	domain.FoodCategoryBeverages: 180,
}

// confidenceScores carries one entry per category/location pair. Consistent
// category behaviour scores high, produce and the catch-all category score in the
// middle band, and perishables kept warm score lowest.
var confidenceScores = map[categoryLocation]float64{
	{domain.FoodCategoryDairy, domain.StorageRefrigerator}: 0.92,
	{domain.FoodCategoryDairy, domain.StorageFreezer}:      0.85,
	{domain.FoodCategoryDairy, domain.StoragePantry}:       0.45,
	{domain.FoodCategoryDairy, domain.StorageCounter}:      0.42,

	{domain.FoodCategoryMeat, domain.StorageRefrigerator}: 0.90,
	{domain.FoodCategoryMeat, domain.StorageFreezer}:      0.92,
	{domain.FoodCategoryMeat, domain.StoragePantry}:       0.42,
	{domain.FoodCategoryMeat, domain.StorageCounter}:      0.40,

	{domain.FoodCategorySeafood, domain.StorageRefrigerator}: 0.88,
	{domain.FoodCategorySeafood, domain.StorageFreezer}:      0.90,
	{domain.FoodCategorySeafood, domain.StoragePantry}:       0.40,
	{domain.FoodCategorySeafood, domain.StorageCounter}:      0.40,

	{domain.FoodCategoryProduce, domain.StorageRefrigerator}: 0.75,
	{domain.FoodCategoryProduce, domain.StorageFreezer}:      0.68,
	{domain.FoodCategoryProduce, domain.StoragePantry}:       0.72,
	{domain.FoodCategoryProduce, domain.StorageCounter}:      0.70,

	{domain.FoodCategoryBakery, domain.StorageRefrigerator}: 0.80,
	{domain.FoodCategoryBakery, domain.StorageFreezer}:      0.82,
	{domain.FoodCategoryBakery, domain.StoragePantry}:       0.78,
	{domain.FoodCategoryBakery, domain.StorageCounter}:      0.75,

	{domain.FoodCategoryFrozen, domain.StorageRefrigerator}: 0.55,
	{domain.FoodCategoryFrozen, domain.StorageFreezer}:      0.95,
	{domain.FoodCategoryFrozen, domain.StoragePantry}:       0.45,
	{domain.FoodCategoryFrozen, domain.StorageCounter}:      0.42,

	{domain.FoodCategoryPantry, domain.StorageRefrigerator}: 0.85,
	{domain.FoodCategoryPantry, domain.StorageFreezer}:      0.88,
	{domain.FoodCategoryPantry, domain.StoragePantry}:       0.93,
	{domain.FoodCategoryPantry, domain.StorageCounter}:      0.90,

	{domain.FoodCategoryBeverages, domain.StorageRefrigerator}: 0.85,
	{domain.FoodCategoryBeverages, domain.StorageFreezer}:      0.80,
	{domain.FoodCategoryBeverages, domain.StoragePantry}:       0.85,
	{domain.FoodCategoryBeverages, domain.StorageCounter}:      0.78,

	{domain.FoodCategoryCondiments, domain.StorageRefrigerator}: 0.90,
	{domain.FoodCategoryCondiments, domain.StorageFreezer}:      0.88,
	{domain.FoodCategoryCondiments, domain.StoragePantry}:       0.88,
	{domain.FoodCategoryCondiments, domain.StorageCounter}:      0.82,

	{domain.FoodCategorySnacks, domain.StorageRefrigerator}: 0.82,
	{domain.FoodCategorySnacks, domain.StorageFreezer}:      0.85,
	{domain.FoodCategorySnacks, domain.StoragePantry}:       0.90,
	{domain.FoodCategorySnacks, domain.StorageCounter}:      0.85,

	{domain.FoodCategoryOther, domain.StorageRefrigerator}: 0.70,
	{domain.FoodCategoryOther, domain.StorageFreezer}:      0.72,
	{domain.FoodCategoryOther, domain.StoragePantry}:       0.68,
	{domain.FoodCategoryOther, domain.StorageCounter}:      0.65,
}

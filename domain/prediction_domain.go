package domain

import (
	"errors"
	"time"
)

// FoodCategory is the closed set of categories the iOS client can assign to an item.
type FoodCategory string

const (
	FoodCategoryDairy      FoodCategory = "Dairy"
	FoodCategoryMeat       FoodCategory = "Meat"
	FoodCategorySeafood    FoodCategory = "Seafood"
	FoodCategoryProduce    FoodCategory = "Produce"
	FoodCategoryBakery     FoodCategory = "Bakery"
	FoodCategoryFrozen     FoodCategory = "Frozen"
	FoodCategoryPantry     FoodCategory = "Pantry"
	FoodCategoryBeverages  FoodCategory = "Beverages"
	FoodCategoryCondiments FoodCategory = "Condiments"
	FoodCategorySnacks     FoodCategory = "Snacks"
	FoodCategoryOther      FoodCategory = "Other"
)

// StorageLocation is where the user keeps an item. Distinct type from FoodCategory
// so the "Pantry" category and the "Pantry" location can never be swapped silently.
type StorageLocation string

const (
	StorageRefrigerator StorageLocation = "Refrigerator"
	StorageFreezer      StorageLocation = "Freezer"
	StoragePantry       StorageLocation = "Pantry"
	StorageCounter      StorageLocation = "Counter"
)

var (
	AllFoodCategories = []FoodCategory{
		FoodCategoryDairy,
		FoodCategoryMeat,
		FoodCategorySeafood,
		FoodCategoryProduce,
		FoodCategoryBakery,
		FoodCategoryFrozen,
		FoodCategoryPantry,
		FoodCategoryBeverages,
		FoodCategoryCondiments,
		FoodCategorySnacks,
		FoodCategoryOther,
	}

	AllStorageLocations = []StorageLocation{
		StorageRefrigerator,
		StorageFreezer,
		StoragePantry,
		StorageCounter,
	}
)

// DefaultShelfLifeDays returns the refrigerated baseline shelf life for the category.
// Unknown values fall back to the Other baseline.
func (c FoodCategory) DefaultShelfLifeDays() int {
	switch c {
	case FoodCategoryDairy:
		return 14
	case FoodCategoryMeat:
		return 5
	case FoodCategorySeafood:
		return 3
	case FoodCategoryProduce:
		return 7
	case FoodCategoryBakery:
		return 5
	case FoodCategoryFrozen:
		return 180
	case FoodCategoryPantry:
		return 365
	case FoodCategoryBeverages:
		return 30
	case FoodCategoryCondiments:
		return 180
	case FoodCategorySnacks:
		return 60
	default:
		return 14
	}
}

// ExpirationPrediction is the value returned for one item. Days is never below 1,
// ConfidenceScore stays within [0, 1] and ExpirationDate is the purchase timestamp
// moved forward by Days calendar days.
type ExpirationPrediction struct {
	Days            int       `json:"days"`
	ConfidenceScore float64   `json:"confidence_score"`
	ExpirationDate  time.Time `json:"expiration_date"`
}

var (
	MessageSuccessPredictExpiration = "expiration predicted successfully"

	MessageFailedPredictExpiration = "failed to predict expiration"

	ErrInvalidPurchaseDate   = errors.New("invalid purchase date")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
)

type (
	PredictExpirationRequest struct {
		Category        string `json:"category" validate:"required,oneof=Dairy Meat Seafood Produce Bakery Frozen Pantry Beverages Condiments Snacks Other"`
		StorageLocation string `json:"storage_location" validate:"required,oneof=Refrigerator Freezer Pantry Counter"`
		PurchaseDate    string `json:"purchase_date" validate:"omitempty"`
	}

	PredictExpirationResponse struct {
		Days            int       `json:"days"`
		ConfidenceScore float64   `json:"confidence_score"`
		ExpirationDate  time.Time `json:"expiration_date"`
	}
)

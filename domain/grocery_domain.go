package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddGroceryItem     = "grocery item added successfully"
	MessageSuccessUpdateGroceryItem  = "grocery item updated successfully"
	MessageSuccessDeleteGroceryItem  = "grocery item deleted successfully"
	MessageSuccessGetGroceryItems    = "grocery items retrieved successfully"
	MessageSuccessGetGroceryItem     = "grocery item retrieved successfully"
	MessageSuccessConsumeGroceryItem = "grocery item marked as consumed"
	MessageSuccessSyncGroceries      = "groceries synced successfully"
	MessageSuccessGetExpiringItems   = "expiring items retrieved successfully"

	MessageFailedAddGroceryItem     = "failed to add grocery item"
	MessageFailedUpdateGroceryItem  = "failed to update grocery item"
	MessageFailedDeleteGroceryItem  = "failed to delete grocery item"
	MessageFailedGetGroceryItems    = "failed to retrieve grocery items"
	MessageFailedGetGroceryItem     = "failed to retrieve grocery item"
	MessageFailedConsumeGroceryItem = "failed to mark grocery item as consumed"
	MessageFailedSyncGroceries      = "failed to sync groceries"
	MessageFailedGetExpiringItems   = "failed to retrieve expiring items"

	ErrGroceryItemNotFound        = errors.New("grocery item not found")
	ErrGroceryItemAlreadyConsumed = errors.New("grocery item already consumed")
	ErrInvalidConsumedDate        = errors.New("invalid consumed date")
	ErrInvalidSyncTimestamp       = errors.New("invalid sync timestamp")
)

type (
	AddGroceryItemRequest struct {
		ID                      string   `json:"id" validate:"omitempty,uuid"`
		Name                    string   `json:"name" validate:"required,max=255"`
		Category                string   `json:"category" validate:"required,oneof=Dairy Meat Seafood Produce Bakery Frozen Pantry Beverages Condiments Snacks Other"`
		StorageLocation         string   `json:"storage_location" validate:"required,oneof=Refrigerator Freezer Pantry Counter"`
		Quantity                float64  `json:"quantity" validate:"omitempty,gt=0"`
		Unit                    string   `json:"unit" validate:"omitempty,max=20"`
		PurchaseDate            string   `json:"purchase_date" validate:"omitempty"`
		ExpirationDate          string   `json:"expiration_date" validate:"omitempty"`
		PredictedExpirationDate string   `json:"predicted_expiration_date" validate:"omitempty"`
		ConfidenceScore         *float64 `json:"confidence_score" validate:"omitempty,gte=0,lte=1"`
		Barcode                 string   `json:"barcode" validate:"omitempty,max=50"`
		Notes                   string   `json:"notes" validate:"omitempty"`
	}

	UpdateGroceryItemRequest struct {
		Name            *string  `json:"name" validate:"omitempty,min=1,max=255"`
		Category        *string  `json:"category" validate:"omitempty,oneof=Dairy Meat Seafood Produce Bakery Frozen Pantry Beverages Condiments Snacks Other"`
		StorageLocation *string  `json:"storage_location" validate:"omitempty,oneof=Refrigerator Freezer Pantry Counter"`
		Quantity        *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            *string  `json:"unit" validate:"omitempty,max=20"`
		PurchaseDate    *string  `json:"purchase_date" validate:"omitempty"`
		ExpirationDate  *string  `json:"expiration_date" validate:"omitempty"`
		Barcode         *string  `json:"barcode" validate:"omitempty,max=50"`
		Notes           *string  `json:"notes" validate:"omitempty"`
	}

	GroceryItemResponse struct {
		ID                      string     `json:"id"`
		UserID                  string     `json:"user_id"`
		Name                    string     `json:"name"`
		Category                string     `json:"category"`
		StorageLocation         string     `json:"storage_location"`
		Quantity                float64    `json:"quantity"`
		Unit                    string     `json:"unit"`
		PurchaseDate            time.Time  `json:"purchase_date"`
		ExpirationDate          *time.Time `json:"expiration_date,omitempty"`
		PredictedExpirationDate *time.Time `json:"predicted_expiration_date,omitempty"`
		ConfidenceScore         *float64   `json:"confidence_score,omitempty"`
		Barcode                 string     `json:"barcode,omitempty"`
		Notes                   string     `json:"notes,omitempty"`
		IsConsumed              bool       `json:"is_consumed"`
		ConsumedDate            *time.Time `json:"consumed_date,omitempty"`
		CreatedAt               time.Time  `json:"created_at"`
		UpdatedAt               time.Time  `json:"updated_at"`
	}

	GroceryListResponse struct {
		Items []GroceryItemResponse `json:"items"`
		Total int64                 `json:"total"`
		Page  int                   `json:"page"`
		Limit int                   `json:"limit"`
	}

	GroceryItemFilter struct {
		Category        string
		StorageLocation string
		IncludeConsumed bool
		Page            int
		Limit           int
	}

	ConsumeGroceryItemRequest struct {
		ConsumedDate     string   `json:"consumed_date" validate:"omitempty"`
		QuantityConsumed *float64 `json:"quantity_consumed" validate:"omitempty,gt=0"`
		WasExpired       bool     `json:"was_expired"`
		WastedQuantity   float64  `json:"wasted_quantity" validate:"omitempty,gte=0"`
	}

	ConsumeGroceryItemResponse struct {
		Item   GroceryItemResponse       `json:"item"`
		Record ConsumptionRecordResponse `json:"record"`
	}

	ConsumptionRecordResponse struct {
		ID                     string    `json:"id"`
		GroceryItemID          string    `json:"grocery_item_id"`
		ConsumedDate           time.Time `json:"consumed_date"`
		QuantityConsumed       float64   `json:"quantity_consumed"`
		WasExpired             bool      `json:"was_expired"`
		WastedQuantity         float64   `json:"wasted_quantity"`
		ActualShelfLifeDays    *int      `json:"actual_shelf_life_days,omitempty"`
		PredictedShelfLifeDays *int      `json:"predicted_shelf_life_days,omitempty"`
		CreatedAt              time.Time `json:"created_at"`
	}

	SyncGroceriesRequest struct {
		Items      []AddGroceryItemRequest `json:"items" validate:"omitempty,dive"`
		DeletedIDs []string                `json:"deleted_ids" validate:"omitempty,dive,uuid"`
		LastSyncAt string                  `json:"last_sync_at" validate:"omitempty"`
	}

	SyncGroceriesResponse struct {
		Items         []GroceryItemResponse `json:"items"`
		DeletedIDs    []string              `json:"deleted_ids"`
		SyncTimestamp time.Time             `json:"sync_timestamp"`
	}

	ExpiringItemsResponse struct {
		Items      []GroceryItemResponse `json:"items"`
		WindowDays int                   `json:"window_days"`
	}
)

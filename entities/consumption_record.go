package entities

import (
	"github.com/google/uuid"
	"time"
)

type ConsumptionRecord struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroceryItemID          uuid.UUID `json:"grocery_item_id"`
	ConsumedDate           time.Time `gorm:"type:timestamp" json:"consumed_date"`
	QuantityConsumed       float64   `json:"quantity_consumed"`
	WasExpired             bool      `json:"was_expired"`
	WastedQuantity         float64   `json:"wasted_quantity"`
	ActualShelfLifeDays    *int      `json:"actual_shelf_life_days,omitempty"`
	PredictedShelfLifeDays *int      `json:"predicted_shelf_life_days,omitempty"`
	CreatedAt              time.Time `gorm:"type:timestamp" json:"created_at"`

	GroceryItem *GroceryItem `gorm:"foreignKey:GroceryItemID"`
}

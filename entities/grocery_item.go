package entities

import (
	"github.com/google/uuid"
	"time"
)

type GroceryItem struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                  uuid.UUID  `json:"user_id"`
	Name                    string     `json:"name"`
	Category                string     `json:"category"`         // "Dairy", "Meat", "Seafood", "Produce", "Bakery", "Frozen", "Pantry", "Beverages", "Condiments", "Snacks", "Other"
	StorageLocation         string     `json:"storage_location"` // "Refrigerator", "Freezer", "Pantry", "Counter"
	Quantity                float64    `json:"quantity"`
	Unit                    string     `json:"unit"`
	PurchaseDate            time.Time  `gorm:"type:timestamp" json:"purchase_date"`
	ExpirationDate          *time.Time `gorm:"type:timestamp" json:"expiration_date,omitempty"`
	PredictedExpirationDate *time.Time `gorm:"type:timestamp" json:"predicted_expiration_date,omitempty"`
	ConfidenceScore         *float64   `json:"confidence_score,omitempty"`
	Barcode                 *string    `json:"barcode,omitempty"`
	Notes                   string     `json:"notes,omitempty"`
	IsConsumed              bool       `json:"is_consumed"`
	ConsumedDate            *time.Time `gorm:"type:timestamp" json:"consumed_date,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

package grocery

import (
	"FreshTrack-API/domain"
	"FreshTrack-API/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	GroceryRepository interface {
		AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error)
		UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteGroceryItem(ctx context.Context, id string) error
		DeleteGroceryItems(ctx context.Context, ids []string, userID string) error
		GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) ([]*entities.GroceryItem, int64, error)
		GetAllGroceryItems(ctx context.Context, userID string) ([]*entities.GroceryItem, error)
		GetExpiringItems(ctx context.Context, userID string, start, end time.Time) ([]*entities.GroceryItem, error)
		CreateConsumptionRecord(ctx context.Context, record *entities.ConsumptionRecord) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteGroceryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{}).Error
}

func (r *groceryRepository) DeleteGroceryItems(ctx context.Context, ids []string, userID string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Delete(&entities.GroceryItem{}).Error
}

func (r *groceryRepository) GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) ([]*entities.GroceryItem, int64, error) {
	var items []*entities.GroceryItem
	var count int64

	offset := (filter.Page - 1) * filter.Limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if !filter.IncludeConsumed {
		query = query.Where("is_consumed = ?", false)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.StorageLocation != "" {
		query = query.Where("storage_location = ?", filter.StorageLocation)
	}

	if err := query.Model(&entities.GroceryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(filter.Limit).Order("purchase_date desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *groceryRepository) GetAllGroceryItems(ctx context.Context, userID string) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) GetExpiringItems(ctx context.Context, userID string, start, end time.Time) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ?", userID, false).
		Where("COALESCE(expiration_date, predicted_expiration_date) BETWEEN ? AND ?", start, end).
		Order("COALESCE(expiration_date, predicted_expiration_date) asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *groceryRepository) CreateConsumptionRecord(ctx context.Context, record *entities.ConsumptionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

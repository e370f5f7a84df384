package grocery

import (
	"FreshTrack-API/domain"
	"FreshTrack-API/entities"
	"FreshTrack-API/pkg/prediction"
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"time"
)

const (
	defaultPageLimit          = 100
	maxPageLimit              = 500
	defaultExpiringWindowDays = 3
)

type (
	GroceryService interface {
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error)
		UpdateGroceryItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest, userID string) (domain.GroceryItemResponse, error)
		DeleteGroceryItem(ctx context.Context, id string, userID string) error
		GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) (domain.GroceryListResponse, error)
		GetGroceryItemByID(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error)
		ConsumeGroceryItem(ctx context.Context, id string, req domain.ConsumeGroceryItemRequest, userID string) (domain.ConsumeGroceryItemResponse, error)
		SyncGroceries(ctx context.Context, req domain.SyncGroceriesRequest, userID string) (domain.SyncGroceriesResponse, error)
		GetExpiringItems(ctx context.Context, userID string, windowDays int) (domain.ExpiringItemsResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		predictionService prediction.PredictionService
		logger            zerolog.Logger
	}
)

func NewGroceryService(groceryRepository GroceryRepository, predictionService prediction.PredictionService, logger zerolog.Logger) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		predictionService: predictionService,
		logger:            logger.With().Str("component", "grocery").Logger(),
	}
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryItemResponse{}, domain.ErrParseUUID
	}

	item, err := s.buildGroceryItem(req, userUUID)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}

	if err := s.groceryRepository.AddGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return itemToResponse(item), nil
}

func (s *groceryService) UpdateGroceryItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
	}

	needsReprediction := false

	if req.Name != nil {
		item.Name = *req.Name
	}

	if req.Category != nil && *req.Category != item.Category {
		item.Category = *req.Category
		needsReprediction = true
	}

	if req.StorageLocation != nil && *req.StorageLocation != item.StorageLocation {
		item.StorageLocation = *req.StorageLocation
		needsReprediction = true
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if req.Unit != nil {
		item.Unit = *req.Unit
	}

	if req.PurchaseDate != nil {
		purchaseDate, err := parseTimestamp(*req.PurchaseDate)
		if err != nil {
			return domain.GroceryItemResponse{}, domain.ErrInvalidPurchaseDate
		}
		if !purchaseDate.Equal(item.PurchaseDate) {
			item.PurchaseDate = purchaseDate
			needsReprediction = true
		}
	}

	if req.ExpirationDate != nil {
		if *req.ExpirationDate == "" {
			item.ExpirationDate = nil
		} else {
			expirationDate, err := parseTimestamp(*req.ExpirationDate)
			if err != nil {
				return domain.GroceryItemResponse{}, domain.ErrInvalidExpirationDate
			}
			item.ExpirationDate = &expirationDate
		}
	}

	if req.Barcode != nil {
		if *req.Barcode == "" {
			item.Barcode = nil
		} else {
			item.Barcode = req.Barcode
		}
	}

	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if needsReprediction && item.ExpirationDate == nil {
		predicted := s.predictionService.Predict(
			domain.FoodCategory(item.Category),
			domain.StorageLocation(item.StorageLocation),
			item.PurchaseDate,
		)
		item.PredictedExpirationDate = &predicted.ExpirationDate
		item.ConfidenceScore = &predicted.ConfidenceScore
	}

	if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return itemToResponse(item), nil
}

func (s *groceryService) DeleteGroceryItem(ctx context.Context, id string, userID string) error {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrGroceryItemNotFound
	}

	return s.groceryRepository.DeleteGroceryItem(ctx, id)
}

func (s *groceryService) GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) (domain.GroceryListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, count, err := s.groceryRepository.GetGroceryItems(ctx, userID, filter)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	responses := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}

	return domain.GroceryListResponse{
		Items: responses,
		Total: count,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *groceryService) GetGroceryItemByID(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
	}

	return itemToResponse(item), nil
}

func (s *groceryService) ConsumeGroceryItem(ctx context.Context, id string, req domain.ConsumeGroceryItemRequest, userID string) (domain.ConsumeGroceryItemResponse, error) {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ConsumeGroceryItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.ConsumeGroceryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.ConsumeGroceryItemResponse{}, domain.ErrGroceryItemNotFound
	}

	if item.IsConsumed {
		return domain.ConsumeGroceryItemResponse{}, domain.ErrGroceryItemAlreadyConsumed
	}

	consumedDate := time.Now()
	if req.ConsumedDate != "" {
		consumedDate, err = parseTimestamp(req.ConsumedDate)
		if err != nil {
			return domain.ConsumeGroceryItemResponse{}, domain.ErrInvalidConsumedDate
		}
	}

	quantityConsumed := item.Quantity
	if req.QuantityConsumed != nil {
		quantityConsumed = *req.QuantityConsumed
	}

	item.IsConsumed = true
	item.ConsumedDate = &consumedDate

	record := &entities.ConsumptionRecord{
		ID:               uuid.New(),
		GroceryItemID:    item.ID,
		ConsumedDate:     consumedDate,
		QuantityConsumed: quantityConsumed,
		WasExpired:       req.WasExpired,
		WastedQuantity:   req.WastedQuantity,
	}

	if actual := wholeDaysBetween(item.PurchaseDate, consumedDate); actual >= 0 {
		record.ActualShelfLifeDays = &actual
	}
	if item.PredictedExpirationDate != nil {
		predicted := wholeDaysBetween(item.PurchaseDate, *item.PredictedExpirationDate)
		record.PredictedShelfLifeDays = &predicted
	}

	if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
		return domain.ConsumeGroceryItemResponse{}, err
	}

	if err := s.groceryRepository.CreateConsumptionRecord(ctx, record); err != nil {
		return domain.ConsumeGroceryItemResponse{}, err
	}

	return domain.ConsumeGroceryItemResponse{
		Item:   itemToResponse(item),
		Record: recordToResponse(record),
	}, nil
}

func (s *groceryService) SyncGroceries(ctx context.Context, req domain.SyncGroceriesRequest, userID string) (domain.SyncGroceriesResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SyncGroceriesResponse{}, domain.ErrParseUUID
	}

	if req.LastSyncAt != "" {
		if _, err := parseTimestamp(req.LastSyncAt); err != nil {
			return domain.SyncGroceriesResponse{}, domain.ErrInvalidSyncTimestamp
		}
	}

	syncTimestamp := time.Now()

	if err := s.groceryRepository.DeleteGroceryItems(ctx, req.DeletedIDs, userID); err != nil {
		return domain.SyncGroceriesResponse{}, err
	}

	for _, clientItem := range req.Items {
		if err := s.upsertClientItem(ctx, clientItem, userUUID); err != nil {
			return domain.SyncGroceriesResponse{}, err
		}
	}

	items, err := s.groceryRepository.GetAllGroceryItems(ctx, userID)
	if err != nil {
		return domain.SyncGroceriesResponse{}, err
	}

	responses := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}

	s.logger.Info().
		Int("upserted", len(req.Items)).
		Int("deleted", len(req.DeletedIDs)).
		Msg("groceries synced")

	return domain.SyncGroceriesResponse{
		Items:         responses,
		DeletedIDs:    []string{},
		SyncTimestamp: syncTimestamp,
	}, nil
}

func (s *groceryService) GetExpiringItems(ctx context.Context, userID string, windowDays int) (domain.ExpiringItemsResponse, error) {
	if windowDays < 1 {
		windowDays = defaultExpiringWindowDays
	}

	now := time.Now()
	items, err := s.groceryRepository.GetExpiringItems(ctx, userID, now, now.AddDate(0, 0, windowDays))
	if err != nil {
		return domain.ExpiringItemsResponse{}, err
	}

	responses := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}

	return domain.ExpiringItemsResponse{
		Items:      responses,
		WindowDays: windowDays,
	}, nil
}

// upsertClientItem applies one client record with last-write-wins semantics.
func (s *groceryService) upsertClientItem(ctx context.Context, req domain.AddGroceryItemRequest, userUUID uuid.UUID) error {
	built, err := s.buildGroceryItem(req, userUUID)
	if err != nil {
		return err
	}

	existing, err := s.groceryRepository.GetGroceryItemByID(ctx, built.ID.String())
	switch {
	case err == nil:
		if existing.UserID != userUUID {
			return domain.ErrGroceryItemNotFound
		}
		existing.Name = built.Name
		existing.Category = built.Category
		existing.StorageLocation = built.StorageLocation
		existing.Quantity = built.Quantity
		existing.Unit = built.Unit
		existing.PurchaseDate = built.PurchaseDate
		existing.ExpirationDate = built.ExpirationDate
		existing.PredictedExpirationDate = built.PredictedExpirationDate
		existing.ConfidenceScore = built.ConfidenceScore
		existing.Barcode = built.Barcode
		existing.Notes = built.Notes
		return s.groceryRepository.UpdateGroceryItem(ctx, existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.groceryRepository.AddGroceryItem(ctx, built)
	default:
		return err
	}
}

// buildGroceryItem turns a client payload into an entity, filling defaults and
// asking the prediction service for expiration fields the client did not send.
func (s *groceryService) buildGroceryItem(req domain.AddGroceryItemRequest, userUUID uuid.UUID) (*entities.GroceryItem, error) {
	itemID := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		itemID = parsed
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		parsed, err := parseTimestamp(req.PurchaseDate)
		if err != nil {
			return nil, domain.ErrInvalidPurchaseDate
		}
		purchaseDate = parsed
	}

	item := &entities.GroceryItem{
		ID:              itemID,
		UserID:          userUUID,
		Name:            req.Name,
		Category:        req.Category,
		StorageLocation: req.StorageLocation,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		PurchaseDate:    purchaseDate,
		Notes:           req.Notes,
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.Unit == "" {
		item.Unit = "piece"
	}
	if req.Barcode != "" {
		item.Barcode = &req.Barcode
	}

	if req.ExpirationDate != "" {
		expirationDate, err := parseTimestamp(req.ExpirationDate)
		if err != nil {
			return nil, domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = &expirationDate
	}

	if req.PredictedExpirationDate != "" {
		predictedDate, err := parseTimestamp(req.PredictedExpirationDate)
		if err != nil {
			return nil, domain.ErrInvalidExpirationDate
		}
		item.PredictedExpirationDate = &predictedDate
		item.ConfidenceScore = req.ConfidenceScore
	} else {
		predicted := s.predictionService.Predict(
			domain.FoodCategory(item.Category),
			domain.StorageLocation(item.StorageLocation),
			purchaseDate,
		)
		item.PredictedExpirationDate = &predicted.ExpirationDate
		item.ConfidenceScore = &predicted.ConfidenceScore
	}

	return item, nil
}

func itemToResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	response := domain.GroceryItemResponse{
		ID:                      item.ID.String(),
		UserID:                  item.UserID.String(),
		Name:                    item.Name,
		Category:                item.Category,
		StorageLocation:         item.StorageLocation,
		Quantity:                item.Quantity,
		Unit:                    item.Unit,
		PurchaseDate:            item.PurchaseDate,
		ExpirationDate:          item.ExpirationDate,
		PredictedExpirationDate: item.PredictedExpirationDate,
		ConfidenceScore:         item.ConfidenceScore,
		Notes:                   item.Notes,
		IsConsumed:              item.IsConsumed,
		ConsumedDate:            item.ConsumedDate,
		CreatedAt:               item.CreatedAt,
		UpdatedAt:               item.UpdatedAt,
	}
	if item.Barcode != nil {
		response.Barcode = *item.Barcode
	}
	return response
}

func recordToResponse(record *entities.ConsumptionRecord) domain.ConsumptionRecordResponse {
	return domain.ConsumptionRecordResponse{
		ID:                     record.ID.String(),
		GroceryItemID:          record.GroceryItemID.String(),
		ConsumedDate:           record.ConsumedDate,
		QuantityConsumed:       record.QuantityConsumed,
		WasExpired:             record.WasExpired,
		WastedQuantity:         record.WastedQuantity,
		ActualShelfLifeDays:    record.ActualShelfLifeDays,
		PredictedShelfLifeDays: record.PredictedShelfLifeDays,
		CreatedAt:              record.CreatedAt,
	}
}

func parseTimestamp(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

func wholeDaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

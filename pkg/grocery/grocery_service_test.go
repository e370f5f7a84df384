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
	"math"
	"sort"
	"testing"
	"time"
)

// fakeGroceryRepository keeps everything in memory so service logic can be
// exercised without a database.
type fakeGroceryRepository struct {
	items   map[string]*entities.GroceryItem
	records []*entities.ConsumptionRecord
	addErr  error
}

func newFakeGroceryRepository() *fakeGroceryRepository {
	return &fakeGroceryRepository{items: make(map[string]*entities.GroceryItem)}
}

func (f *fakeGroceryRepository) AddGroceryItem(_ context.Context, item *entities.GroceryItem) error {
	if f.addErr != nil {
		return f.addErr
	}
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeGroceryRepository) GetGroceryItemByID(_ context.Context, id string) (*entities.GroceryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeGroceryRepository) UpdateGroceryItem(_ context.Context, item *entities.GroceryItem) error {
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeGroceryRepository) DeleteGroceryItem(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeGroceryRepository) DeleteGroceryItems(_ context.Context, ids []string, userID string) error {
	for _, id := range ids {
		if item, ok := f.items[id]; ok && item.UserID.String() == userID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeGroceryRepository) GetGroceryItems(_ context.Context, userID string, filter domain.GroceryItemFilter) ([]*entities.GroceryItem, int64, error) {
	var matched []*entities.GroceryItem
	for _, item := range f.items {
		if item.UserID.String() != userID {
			continue
		}
		if !filter.IncludeConsumed && item.IsConsumed {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.StorageLocation != "" && item.StorageLocation != filter.StorageLocation {
			continue
		}
		copied := *item
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PurchaseDate.After(matched[j].PurchaseDate)
	})

	count := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return nil, count, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], count, nil
}

func (f *fakeGroceryRepository) GetAllGroceryItems(_ context.Context, userID string) ([]*entities.GroceryItem, error) {
	var matched []*entities.GroceryItem
	for _, item := range f.items {
		if item.UserID.String() == userID {
			copied := *item
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PurchaseDate.After(matched[j].PurchaseDate)
	})
	return matched, nil
}

func (f *fakeGroceryRepository) GetExpiringItems(_ context.Context, userID string, start, end time.Time) ([]*entities.GroceryItem, error) {
	var matched []*entities.GroceryItem
	for _, item := range f.items {
		if item.UserID.String() != userID || item.IsConsumed {
			continue
		}
		effective := item.PredictedExpirationDate
		if item.ExpirationDate != nil {
			effective = item.ExpirationDate
		}
		if effective == nil || effective.Before(start) || effective.After(end) {
			continue
		}
		copied := *item
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		left := matched[i].PredictedExpirationDate
		if matched[i].ExpirationDate != nil {
			left = matched[i].ExpirationDate
		}
		right := matched[j].PredictedExpirationDate
		if matched[j].ExpirationDate != nil {
			right = matched[j].ExpirationDate
		}
		return left.Before(*right)
	})
	return matched, nil
}

func (f *fakeGroceryRepository) CreateConsumptionRecord(_ context.Context, record *entities.ConsumptionRecord) error {
	copied := *record
	f.records = append(f.records, &copied)
	return nil
}

func newTestGroceryService(repo GroceryRepository) GroceryService {
	predictionService := prediction.NewPredictionService(prediction.UnavailableModel(), zerolog.Nop())
	return NewGroceryService(repo, predictionService, zerolog.Nop())
}

func confidenceNear(got *float64, want float64) bool {
	return got != nil && math.Abs(*got-want) < 1e-9
}

func TestGroceryService_AddGroceryItem_PredictsWhenClientOmits(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userID := uuid.New().String()

	req := domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
		PurchaseDate:    "2024-01-01T00:00:00Z",
	}

	got, err := service.AddGroceryItem(context.Background(), req, userID)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	if got.Quantity != 1 {
		t.Errorf("Quantity = %v, want default 1", got.Quantity)
	}
	if got.Unit != "piece" {
		t.Errorf("Unit = %q, want default %q", got.Unit, "piece")
	}
	if got.PredictedExpirationDate == nil {
		t.Fatal("PredictedExpirationDate = nil, want filled by prediction")
	}
	wantDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.PredictedExpirationDate.Equal(wantDate) {
		t.Errorf("PredictedExpirationDate = %v, want %v", got.PredictedExpirationDate, wantDate)
	}
	if !confidenceNear(got.ConfidenceScore, 0.782) {
		t.Errorf("ConfidenceScore = %v, want 0.782", got.ConfidenceScore)
	}
	if len(repo.items) != 1 {
		t.Errorf("stored items = %d, want 1", len(repo.items))
	}
}

func TestGroceryService_AddGroceryItem_KeepsClientPrediction(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userID := uuid.New().String()
	clientConfidence := 0.9

	req := domain.AddGroceryItemRequest{
		Name:                    "Cheddar",
		Category:                "Dairy",
		StorageLocation:         "Refrigerator",
		PurchaseDate:            "2024-01-01T00:00:00Z",
		PredictedExpirationDate: "2024-01-20T00:00:00Z",
		ConfidenceScore:         &clientConfidence,
	}

	got, err := service.AddGroceryItem(context.Background(), req, userID)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	wantDate := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	if got.PredictedExpirationDate == nil || !got.PredictedExpirationDate.Equal(wantDate) {
		t.Errorf("PredictedExpirationDate = %v, want client value %v", got.PredictedExpirationDate, wantDate)
	}
	if !confidenceNear(got.ConfidenceScore, 0.9) {
		t.Errorf("ConfidenceScore = %v, want client value 0.9", got.ConfidenceScore)
	}
}

func TestGroceryService_AddGroceryItem_InvalidInput(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)

	_, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
		PurchaseDate:    "not-a-date",
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrInvalidPurchaseDate) {
		t.Errorf("AddGroceryItem() error = %v, want ErrInvalidPurchaseDate", err)
	}

	_, err = service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
	}, "not-a-uuid")
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("AddGroceryItem() error = %v, want ErrParseUUID", err)
	}
}

func TestGroceryService_UpdateGroceryItem_RepredictsOnStorageChange(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userID := uuid.New().String()

	created, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
		PurchaseDate:    "2024-01-01T00:00:00Z",
	}, userID)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	counter := "Counter"
	updated, err := service.UpdateGroceryItem(context.Background(), created.ID, domain.UpdateGroceryItemRequest{
		StorageLocation: &counter,
	}, userID)
	if err != nil {
		t.Fatalf("UpdateGroceryItem() error = %v", err)
	}

	wantDate := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	if updated.PredictedExpirationDate == nil || !updated.PredictedExpirationDate.Equal(wantDate) {
		t.Errorf("PredictedExpirationDate = %v, want %v after moving to counter", updated.PredictedExpirationDate, wantDate)
	}
	if !confidenceNear(updated.ConfidenceScore, 0.42*0.85) {
		t.Errorf("ConfidenceScore = %v, want %v", updated.ConfidenceScore, 0.42*0.85)
	}
}

func TestGroceryService_UpdateGroceryItem_UnrelatedChangeKeepsPrediction(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userID := uuid.New().String()

	created, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
		PurchaseDate:    "2024-01-01T00:00:00Z",
	}, userID)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	name := "Whole Milk"
	updated, err := service.UpdateGroceryItem(context.Background(), created.ID, domain.UpdateGroceryItemRequest{
		Name: &name,
	}, userID)
	if err != nil {
		t.Fatalf("UpdateGroceryItem() error = %v", err)
	}

	if updated.Name != "Whole Milk" {
		t.Errorf("Name = %q, want %q", updated.Name, "Whole Milk")
	}
	if updated.PredictedExpirationDate == nil || !updated.PredictedExpirationDate.Equal(*created.PredictedExpirationDate) {
		t.Errorf("PredictedExpirationDate = %v, want unchanged %v", updated.PredictedExpirationDate, created.PredictedExpirationDate)
	}
}

func TestGroceryService_UpdateGroceryItem_NotFoundAndOwnership(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	owner := uuid.New().String()

	created, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
	}, owner)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	name := "Oat Milk"
	if _, err := service.UpdateGroceryItem(context.Background(), uuid.New().String(), domain.UpdateGroceryItemRequest{Name: &name}, owner); !errors.Is(err, domain.ErrGroceryItemNotFound) {
		t.Errorf("UpdateGroceryItem() with unknown id error = %v, want ErrGroceryItemNotFound", err)
	}

	stranger := uuid.New().String()
	if _, err := service.UpdateGroceryItem(context.Background(), created.ID, domain.UpdateGroceryItemRequest{Name: &name}, stranger); !errors.Is(err, domain.ErrGroceryItemNotFound) {
		t.Errorf("UpdateGroceryItem() by non-owner error = %v, want ErrGroceryItemNotFound", err)
	}
}

func TestGroceryService_ConsumeGroceryItem(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userID := uuid.New().String()

	created, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
		PurchaseDate:    "2024-01-01T00:00:00Z",
	}, userID)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	got, err := service.ConsumeGroceryItem(context.Background(), created.ID, domain.ConsumeGroceryItemRequest{
		ConsumedDate: "2024-01-10T00:00:00Z",
	}, userID)
	if err != nil {
		t.Fatalf("ConsumeGroceryItem() error = %v", err)
	}

	if !got.Item.IsConsumed {
		t.Error("Item.IsConsumed = false, want true")
	}
	if got.Record.ActualShelfLifeDays == nil || *got.Record.ActualShelfLifeDays != 9 {
		t.Errorf("ActualShelfLifeDays = %v, want 9", got.Record.ActualShelfLifeDays)
	}
	if got.Record.PredictedShelfLifeDays == nil || *got.Record.PredictedShelfLifeDays != 14 {
		t.Errorf("PredictedShelfLifeDays = %v, want 14", got.Record.PredictedShelfLifeDays)
	}
	if got.Record.QuantityConsumed != 1 {
		t.Errorf("QuantityConsumed = %v, want full quantity 1", got.Record.QuantityConsumed)
	}
	if len(repo.records) != 1 {
		t.Fatalf("stored consumption records = %d, want 1", len(repo.records))
	}

	if _, err := service.ConsumeGroceryItem(context.Background(), created.ID, domain.ConsumeGroceryItemRequest{}, userID); !errors.Is(err, domain.ErrGroceryItemAlreadyConsumed) {
		t.Errorf("second ConsumeGroceryItem() error = %v, want ErrGroceryItemAlreadyConsumed", err)
	}
}

func TestGroceryService_SyncGroceries(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userID := uuid.New().String()

	existing, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Milk",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
		PurchaseDate:    "2024-01-01T00:00:00Z",
	}, userID)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	doomed, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		Name:            "Yogurt",
		Category:        "Dairy",
		StorageLocation: "Refrigerator",
		PurchaseDate:    "2024-01-02T00:00:00Z",
	}, userID)
	if err != nil {
		t.Fatalf("AddGroceryItem() error = %v", err)
	}

	newID := uuid.New().String()
	got, err := service.SyncGroceries(context.Background(), domain.SyncGroceriesRequest{
		Items: []domain.AddGroceryItemRequest{
			{
				ID:              existing.ID,
				Name:            "Oat Milk",
				Category:        "Dairy",
				StorageLocation: "Refrigerator",
				PurchaseDate:    "2024-01-01T00:00:00Z",
			},
			{
				ID:              newID,
				Name:            "Salmon",
				Category:        "Seafood",
				StorageLocation: "Freezer",
				PurchaseDate:    "2024-01-03T00:00:00Z",
			},
		},
		DeletedIDs: []string{doomed.ID},
	}, userID)
	if err != nil {
		t.Fatalf("SyncGroceries() error = %v", err)
	}

	if len(got.Items) != 2 {
		t.Fatalf("synced items = %d, want 2", len(got.Items))
	}
	if got.SyncTimestamp.IsZero() {
		t.Error("SyncTimestamp is zero, want server time")
	}
	if len(got.DeletedIDs) != 0 {
		t.Errorf("DeletedIDs = %v, want empty", got.DeletedIDs)
	}

	byID := make(map[string]domain.GroceryItemResponse, len(got.Items))
	for _, item := range got.Items {
		byID[item.ID] = item
	}

	if updated, ok := byID[existing.ID]; !ok || updated.Name != "Oat Milk" {
		t.Errorf("existing item not overwritten, got %+v", byID[existing.ID])
	}
	if added, ok := byID[newID]; !ok {
		t.Error("client item not created on server")
	} else if added.PredictedExpirationDate == nil {
		t.Error("created sync item missing prediction fields")
	}
	if _, ok := byID[doomed.ID]; ok {
		t.Error("deleted item still present after sync")
	}

	if _, err := service.SyncGroceries(context.Background(), domain.SyncGroceriesRequest{LastSyncAt: "yesterday"}, userID); !errors.Is(err, domain.ErrInvalidSyncTimestamp) {
		t.Errorf("SyncGroceries() with bad last_sync_at error = %v, want ErrInvalidSyncTimestamp", err)
	}
}

func TestGroceryService_GetExpiringItems(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userUUID := uuid.New()
	userID := userUUID.String()

	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	inTwoDays := now.AddDate(0, 0, 2)
	inThirtyDays := now.AddDate(0, 0, 30)

	seed := []*entities.GroceryItem{
		{ID: uuid.New(), UserID: userUUID, Name: "Chicken", Category: "Meat", StorageLocation: "Refrigerator", PurchaseDate: now, ExpirationDate: &tomorrow},
		{ID: uuid.New(), UserID: userUUID, Name: "Spinach", Category: "Produce", StorageLocation: "Refrigerator", PurchaseDate: now, PredictedExpirationDate: &inTwoDays},
		{ID: uuid.New(), UserID: userUUID, Name: "Rice", Category: "Pantry", StorageLocation: "Pantry", PurchaseDate: now, PredictedExpirationDate: &inThirtyDays},
		{ID: uuid.New(), UserID: userUUID, Name: "Eaten", Category: "Meat", StorageLocation: "Refrigerator", PurchaseDate: now, ExpirationDate: &tomorrow, IsConsumed: true},
	}
	for _, item := range seed {
		if err := repo.AddGroceryItem(context.Background(), item); err != nil {
			t.Fatalf("seed error = %v", err)
		}
	}

	got, err := service.GetExpiringItems(context.Background(), userID, 3)
	if err != nil {
		t.Fatalf("GetExpiringItems() error = %v", err)
	}

	if got.WindowDays != 3 {
		t.Errorf("WindowDays = %d, want 3", got.WindowDays)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expiring items = %d, want 2", len(got.Items))
	}
	if got.Items[0].Name != "Chicken" || got.Items[1].Name != "Spinach" {
		t.Errorf("expiring order = [%s, %s], want soonest first [Chicken, Spinach]", got.Items[0].Name, got.Items[1].Name)
	}
}

func TestGroceryService_GetGroceryItems_FiltersAndPagination(t *testing.T) {
	t.Parallel()

	repo := newFakeGroceryRepository()
	service := newTestGroceryService(repo)
	userID := uuid.New().String()

	for i, category := range []string{"Dairy", "Dairy", "Produce"} {
		_, err := service.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
			Name:            category,
			Category:        category,
			StorageLocation: "Refrigerator",
			PurchaseDate:    time.Date(2024, time.January, i+1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		}, userID)
		if err != nil {
			t.Fatalf("AddGroceryItem() error = %v", err)
		}
	}

	got, err := service.GetGroceryItems(context.Background(), userID, domain.GroceryItemFilter{Category: "Dairy"})
	if err != nil {
		t.Fatalf("GetGroceryItems() error = %v", err)
	}

	if got.Total != 2 {
		t.Errorf("Total = %d, want 2", got.Total)
	}
	if got.Page != 1 || got.Limit != defaultPageLimit {
		t.Errorf("Page/Limit = %d/%d, want normalized 1/%d", got.Page, got.Limit, defaultPageLimit)
	}
	for _, item := range got.Items {
		if item.Category != "Dairy" {
			t.Errorf("item category = %q, want Dairy", item.Category)
		}
	}
}

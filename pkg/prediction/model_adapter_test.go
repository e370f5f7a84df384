package prediction

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"FreshTrack-API/domain"
)

func testArtifact() ModelArtifact {
	return ModelArtifact{
		Version:   "2024.06",
		Intercept: 2.0,
		CategoryWeights: map[string]float64{
			"Seafood": 1.5,
			"Dairy":   10.8,
			"Frozen":  -1.0,
		},
		LocationWeights: map[string]float64{
			"Refrigerator": 1.2,
			"Freezer":      0.5,
			"Counter":      -3.0,
		},
		InteractionWeights: map[string]float64{
			"Frozen|Freezer": 268.5,
		},
	}
}

func TestNewLinearModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*ModelArtifact)
		wantErr bool
	}{
		{"valid artifact", func(a *ModelArtifact) {}, false},
		{"missing version", func(a *ModelArtifact) { a.Version = "" }, true},
		{"no category weights", func(a *ModelArtifact) { a.CategoryWeights = nil }, true},
		{"no location weights", func(a *ModelArtifact) { a.LocationWeights = nil }, true},
		{"malformed interaction key", func(a *ModelArtifact) {
			a.InteractionWeights = map[string]float64{"FrozenFreezer": 1}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			artifact := testArtifact()
			tt.mutate(&artifact)

			model, err := NewLinearModel(artifact)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewLinearModel() error = nil, want error")
				}
				if !errors.Is(err, ErrInvalidArtifact) {
					t.Errorf("NewLinearModel() error = %v, want ErrInvalidArtifact", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLinearModel() error = %v", err)
			}
			if !model.Available() {
				t.Error("Available() = false, want true")
			}
			if model.Version() != "2024.06" {
				t.Errorf("Version() = %q, want %q", model.Version(), "2024.06")
			}
		})
	}
}

func TestLinearModel_Predict(t *testing.T) {
	t.Parallel()

	model, err := NewLinearModel(testArtifact())
	if err != nil {
		t.Fatalf("NewLinearModel() error = %v", err)
	}

	tests := []struct {
		name     string
		category domain.FoodCategory
		location domain.StorageLocation
		want     int
	}{
		{"rounds fractional days to nearest", domain.FoodCategorySeafood, domain.StorageRefrigerator, 5},
		{"whole day sum", domain.FoodCategoryDairy, domain.StorageRefrigerator, 14},
		{"negative sum clamps to one day", domain.FoodCategoryFrozen, domain.StorageCounter, 1},
		{"interaction weight applies", domain.FoodCategoryFrozen, domain.StorageFreezer, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := model.Predict(tt.category, tt.location)
			if err != nil {
				t.Fatalf("Predict(%s, %s) error = %v", tt.category, tt.location, err)
			}
			if got != tt.want {
				t.Errorf("Predict(%s, %s) = %d, want %d", tt.category, tt.location, got, tt.want)
			}
		})
	}
}

func TestLinearModel_Predict_UncoveredFeature(t *testing.T) {
	t.Parallel()

	model, err := NewLinearModel(testArtifact())
	if err != nil {
		t.Fatalf("NewLinearModel() error = %v", err)
	}

	if _, err := model.Predict(domain.FoodCategoryMeat, domain.StorageRefrigerator); !errors.Is(err, ErrFeatureNotCovered) {
		t.Errorf("Predict with unknown category error = %v, want ErrFeatureNotCovered", err)
	}
	if _, err := model.Predict(domain.FoodCategorySeafood, domain.StoragePantry); !errors.Is(err, ErrFeatureNotCovered) {
		t.Errorf("Predict with unknown location error = %v, want ErrFeatureNotCovered", err)
	}
}

func TestLoadModel(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"version": "2024.06",
		"intercept": 2.0,
		"category_weights": {"Seafood": 1.5},
		"location_weights": {"Refrigerator": 1.2}
	}`)

	model, err := LoadModel(payload)
	if err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}

	got, err := model.Predict(domain.FoodCategorySeafood, domain.StorageRefrigerator)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got != 5 {
		t.Errorf("Predict() = %d, want 5", got)
	}
}

func TestLoadModel_CorruptPayload(t *testing.T) {
	t.Parallel()

	if _, err := LoadModel([]byte(`{"version": `)); !errors.Is(err, ErrInvalidArtifact) {
		t.Errorf("LoadModel() error = %v, want ErrInvalidArtifact", err)
	}
}

func TestLoadModelFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shelf_life_model.json")
	payload := []byte(`{
		"version": "2024.06",
		"intercept": 10.0,
		"category_weights": {"Dairy": 3.0},
		"location_weights": {"Refrigerator": 1.0}
	}`)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	model, err := LoadModelFromFile(path)
	if err != nil {
		t.Fatalf("LoadModelFromFile() error = %v", err)
	}
	if model.Version() != "2024.06" {
		t.Errorf("Version() = %q, want %q", model.Version(), "2024.06")
	}

	if _, err := LoadModelFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadModelFromFile() with missing file error = nil, want error")
	}
}

func TestUnavailableModel(t *testing.T) {
	t.Parallel()

	model := UnavailableModel()
	if model.Available() {
		t.Error("Available() = true, want false")
	}
	if _, err := model.Predict(domain.FoodCategoryDairy, domain.StorageRefrigerator); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Predict() error = %v, want ErrModelUnavailable", err)
	}
}

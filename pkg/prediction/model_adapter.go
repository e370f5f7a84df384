package prediction

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"FreshTrack-API/domain"
)

var (
	ErrModelUnavailable  = errors.New("shelf life model not loaded")
	ErrFeatureNotCovered = errors.New("pair not covered by shelf life model")
	ErrInvalidArtifact   = errors.New("invalid model artifact")
)

type (
	// ModelAdapter is the inference seam the prediction service calls through.
	// Implementations answer synchronously and in memory.
	ModelAdapter interface {
		Available() bool
		Predict(category domain.FoodCategory, location domain.StorageLocation) (int, error)
	}

	// ModelArtifact is the serialized form of a trained shelf life regression.
	// Interaction keys are "Category|Location".
	ModelArtifact struct {
		Version            string             `json:"version"`
		Intercept          float64            `json:"intercept"`
		CategoryWeights    map[string]float64 `json:"category_weights"`
		LocationWeights    map[string]float64 `json:"location_weights"`
		InteractionWeights map[string]float64 `json:"interaction_weights,omitempty"`
	}

	// LinearModel is a loaded artifact. Immutable after construction, so a single
	// instance serves concurrent predictions without locking.
	LinearModel struct {
		version      string
		intercept    float64
		categories   map[domain.FoodCategory]float64
		locations    map[domain.StorageLocation]float64
		interactions map[categoryLocation]float64
	}
)

// LoadModelFromFile reads and validates a model artifact from disk.
func LoadModelFromFile(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return LoadModel(data)
}

// LoadModel parses and validates an artifact payload.
func LoadModel(data []byte) (*LinearModel, error) {
	var artifact ModelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return NewLinearModel(artifact)
}

func NewLinearModel(artifact ModelArtifact) (*LinearModel, error) {
	if artifact.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidArtifact)
	}
	if len(artifact.CategoryWeights) == 0 || len(artifact.LocationWeights) == 0 {
		return nil, fmt.Errorf("%w: missing feature weights", ErrInvalidArtifact)
	}

	model := &LinearModel{
		version:      artifact.Version,
		intercept:    artifact.Intercept,
		categories:   make(map[domain.FoodCategory]float64, len(artifact.CategoryWeights)),
		locations:    make(map[domain.StorageLocation]float64, len(artifact.LocationWeights)),
		interactions: make(map[categoryLocation]float64, len(artifact.InteractionWeights)),
	}

	for category, weight := range artifact.CategoryWeights {
		model.categories[domain.FoodCategory(category)] = weight
	}
	for location, weight := range artifact.LocationWeights {
		model.locations[domain.StorageLocation(location)] = weight
	}
	for pair, weight := range artifact.InteractionWeights {
		category, location, found := strings.Cut(pair, "|")
		if !found {
			return nil, fmt.Errorf("%w: interaction key %q", ErrInvalidArtifact, pair)
		}
		key := categoryLocation{
			Category: domain.FoodCategory(category),
			Location: domain.StorageLocation(location),
		}
		model.interactions[key] = weight
	}

	return model, nil
}

func (m *LinearModel) Version() string {
	return m.version
}

func (m *LinearModel) Available() bool {
	return true
}

// Predict sums the fitted weights for the pair, rounds to the nearest whole day
// and floors the result at 1.
func (m *LinearModel) Predict(category domain.FoodCategory, location domain.StorageLocation) (int, error) {
	categoryWeight, ok := m.categories[category]
	if !ok {
		return 0, fmt.Errorf("%w: category %q", ErrFeatureNotCovered, category)
	}
	locationWeight, ok := m.locations[location]
	if !ok {
		return 0, fmt.Errorf("%w: storage location %q", ErrFeatureNotCovered, location)
	}

	raw := m.intercept + categoryWeight + locationWeight
	if interaction, ok := m.interactions[categoryLocation{Category: category, Location: location}]; ok {
		raw += interaction
	}

	days := int(math.Round(raw))
	if days < 1 {
		days = 1
	}
	return days, nil
}

type unavailableModel struct{}

// UnavailableModel stands in when no artifact could be loaded. Every call reports
// the model as absent, which routes the service to the rule estimator.
func UnavailableModel() ModelAdapter {
	return unavailableModel{}
}

func (unavailableModel) Available() bool {
	return false
}

func (unavailableModel) Predict(domain.FoodCategory, domain.StorageLocation) (int, error) {
	return 0, ErrModelUnavailable
}

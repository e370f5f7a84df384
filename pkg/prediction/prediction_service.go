package prediction

import (
	"time"

	"github.com/rs/zerolog"

	"FreshTrack-API/domain"
	"FreshTrack-API/internal/metrics"
)

type (
	// PredictionService answers every request: the learned model when it can,
	// the rule estimator otherwise. It holds no per-call state, so one instance
	// serves concurrent callers.
	PredictionService interface {
		Predict(category domain.FoodCategory, location domain.StorageLocation, purchaseDate time.Time) domain.ExpirationPrediction
	}

	predictionService struct {
		model      ModelAdapter
		estimator  *RuleBasedEstimator
		confidence *ConfidenceTable
		logger     zerolog.Logger
	}
)

// NewPredictionService wires the service around an adapter resolved once at
// startup. A nil adapter behaves like an unavailable model.
func NewPredictionService(model ModelAdapter, logger zerolog.Logger) PredictionService {
	if model == nil {
		model = UnavailableModel()
	}
	return &predictionService{
		model:      model,
		estimator:  NewRuleBasedEstimator(),
		confidence: NewConfidenceTable(),
		logger:     logger.With().Str("component", "prediction").Logger(),
	}
}

func (s *predictionService) Predict(category domain.FoodCategory, location domain.StorageLocation, purchaseDate time.Time) domain.ExpirationPrediction {
	if purchaseDate.IsZero() {
		purchaseDate = time.Now()
	}

	confidence := s.confidence.Lookup(category, location)

	if s.model.Available() {
		days, err := s.model.Predict(category, location)
		if err == nil {
			metrics.PredictionsTotal.WithLabelValues("model").Inc()
			metrics.PredictedShelfLifeDays.Observe(float64(days))
			return buildPrediction(purchaseDate, days, confidence)
		}
		s.logger.Warn().
			Err(err).
			Str("category", string(category)).
			Str("storage_location", string(location)).
			Msg("model inference failed, using rule estimate")
	}

	days := s.estimator.Estimate(category, location)
	metrics.PredictionsTotal.WithLabelValues("fallback").Inc()
	metrics.PredictedShelfLifeDays.Observe(float64(days))
	return buildPrediction(purchaseDate, days, confidence*FallbackConfidenceDiscount)
}

func buildPrediction(purchaseDate time.Time, days int, confidence float64) domain.ExpirationPrediction {
	return domain.ExpirationPrediction{
		Days:            days,
		ConfidenceScore: confidence,
		ExpirationDate:  purchaseDate.AddDate(0, 0, days),
	}
}

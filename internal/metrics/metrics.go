package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freshtrack_predictions_total",
			Help: "Total number of expiration predictions served",
		},
		[]string{"path"}, // "model", "fallback"
	)

	PredictedShelfLifeDays = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "freshtrack_predicted_shelf_life_days",
			Help:    "Distribution of predicted shelf life in days",
			Buckets: []float64{1, 3, 7, 14, 30, 60, 120, 180, 365},
		},
	)

	ModelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "freshtrack_model_loaded",
			Help: "Whether the learned shelf life model is loaded (1) or not (0)",
		},
	)

	ExpiryDigestRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freshtrack_expiry_digest_runs_total",
			Help: "Total number of expiry digest runs",
		},
		[]string{"result"}, // "success", "error"
	)

	ExpiryDigestEmails = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "freshtrack_expiry_digest_emails_total",
			Help: "Total number of digest emails sent",
		},
	)
)

// SetModelLoaded records the one-time artifact load outcome.
func SetModelLoaded(loaded bool) {
	if loaded {
		ModelLoaded.Set(1)
		return
	}
	ModelLoaded.Set(0)
}

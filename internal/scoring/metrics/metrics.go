package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ScoreEvaluationsTotal   *prometheus.CounterVec
	ScoreEvaluationDuration prometheus.Histogram
	ScoreCertainty          prometheus.Histogram
	ScoreFinal              prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		ScoreEvaluationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kredi_score_evaluations_total",
			Help: "Total number of score evaluations by decision and risk tier",
		}, []string{"decision", "risk_tier"}),
		ScoreEvaluationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kredi_score_evaluation_duration_seconds",
			Help:    "Wall time of a full score evaluation including persistence",
			Buckets: prometheus.DefBuckets,
		}),
		ScoreCertainty: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kredi_score_certainty",
			Help:    "Distribution of overall certainty across evaluations",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		ScoreFinal: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kredi_score_final",
			Help:    "Distribution of final scores across evaluations",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
	}
}

func (m *Metrics) ObserveEvaluation(approved bool, riskTier string, finalScore int, certainty float64, elapsed time.Duration) {
	decision := "declined"
	if approved {
		decision = "approved"
	}
	m.ScoreEvaluationsTotal.WithLabelValues(decision, riskTier).Inc()
	m.ScoreEvaluationDuration.Observe(elapsed.Seconds())
	m.ScoreCertainty.Observe(certainty)
	m.ScoreFinal.Observe(float64(finalScore))
}

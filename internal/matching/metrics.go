package matching

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_requests_total",
			Help: "Total number of match requests served",
		},
		[]string{"outcome"},
	)

	candidatesConsidered = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_candidates_considered",
			Help:    "Candidate pool size per match request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	matchesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_results_returned",
			Help:    "Number of ranked matches returned per request",
			Buckets: prometheus.LinearBuckets(0, 2, 11),
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of overall compatibility scores returned",
			Buckets: prometheus.LinearBuckets(50, 5, 11),
		},
	)

	engineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_engine_duration_seconds",
			Help:    "Time spent in the scoring pipeline",
			Buckets: prometheus.DefBuckets,
		},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_cache_lookups_total",
			Help: "Match result cache lookups",
		},
		[]string{"result"},
	)
)

func recordMatchRequest(outcome string) {
	matchRequestsTotal.WithLabelValues(outcome).Inc()
}

func recordPipeline(poolSize, returned int, elapsed time.Duration) {
	candidatesConsidered.Observe(float64(poolSize))
	matchesReturned.Observe(float64(returned))
	engineDuration.Observe(elapsed.Seconds())
}

func recordScores(matches []*RankedMatch) {
	for _, m := range matches {
		compatibilityScores.Observe(float64(m.Compatibility.Overall))
	}
}

func recordCacheLookup(hit bool) {
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
	} else {
		cacheLookups.WithLabelValues("miss").Inc()
	}
}

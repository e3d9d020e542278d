package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "txlens"

var (
	decodeOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "outcomes_total",
		Help:      "Count of calldata decode outcomes by status.",
	}, []string{"status"})

	feedBranchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "branch_queries_total",
		Help:      "Count of address feed branch queries.",
	}, []string{"branch", "status"})
	feedBranchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "feed",
		Name:      "branch_duration_seconds",
		Help:      "Duration of address feed branch queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"branch", "status"})

	signatureLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "signature",
		Name:      "lookups_total",
		Help:      "Count of outbound function signature lookups.",
	}, []string{"source", "status"})
	signatureCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "signature",
		Name:      "cache_requests_total",
		Help:      "Count of function signature cache hits and misses.",
	}, []string{"result"})
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// ObserveOutcome counts a finished decode. An empty outcome is a successful decode.
func (d *Decoder) ObserveOutcome(outcome string) {
	if d == nil {
		return
	}
	if outcome == "" {
		outcome = "decoded"
	}
	decodeOutcomesTotal.WithLabelValues(outcome).Inc()
}

type Feed struct{}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) ObserveBranch(branch string, err error, started time.Time) {
	if f == nil {
		return
	}
	st := status(err)
	feedBranchTotal.WithLabelValues(branch, st).Inc()
	feedBranchDuration.WithLabelValues(branch, st).Observe(time.Since(started).Seconds())
}

type SignatureLookup struct{}

func NewSignatureLookup() *SignatureLookup {
	return &SignatureLookup{}
}

func (s *SignatureLookup) ObserveLookup(source string, err error) {
	if s == nil {
		return
	}
	signatureLookupsTotal.WithLabelValues(source, status(err)).Inc()
}

func (s *SignatureLookup) ObserveCache(hit bool) {
	if s == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	signatureCacheTotal.WithLabelValues(result).Inc()
}

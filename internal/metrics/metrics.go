package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"zeroclick-go/pkg/resolver"
)

var (
	resolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zeroclick_provider_lookups_total",
			Help: "Provider lookup count by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	resolvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zeroclick_resolutions_total",
			Help: "Resolution count by final outcome and answering source",
		},
		[]string{"outcome", "source"},
	)

	uploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zeroclick_dataset_uploads_total",
			Help: "Dataset upload count by outcome",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Must be called
// once at startup; calling it again is a no-op.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(resolutionsTotal, resolvesTotal, uploadsTotal)
	})
}

// RecordResolution records one resolution: every provider attempt from the
// trace plus the final outcome.
func RecordResolution(result resolver.ResolutionResult, trace []resolver.TraceEntry) {
	for _, entry := range trace {
		resolutionsTotal.WithLabelValues(string(entry.Provider), string(entry.Outcome)).Inc()
	}
	source := string(result.Source)
	if source == "" {
		source = "none"
	}
	resolvesTotal.WithLabelValues(string(result.Outcome), source).Inc()
}

// RecordUpload records a dataset upload attempt.
func RecordUpload(outcome string) {
	uploadsTotal.WithLabelValues(outcome).Inc()
}

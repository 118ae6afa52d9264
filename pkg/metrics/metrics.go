package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReadingsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "readings_ingested_total",
			Help: "Total number of readings stored, imports and HTTP posts combined",
		},
	)

	ImportDuplicates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_duplicates_total",
			Help: "Total number of duplicate records skipped during archive imports",
		},
	)

	AnalysisRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total number of analysis operations served, by kind",
		},
		[]string{"kind"},
	)
)

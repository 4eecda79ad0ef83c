package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lipsync_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "lipsync_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	AlignerFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lipsync_aligner_fallbacks_total",
			Help: "Audio requests answered with the fallback timeline",
		},
	)

	VisemesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lipsync_visemes_generated_total",
			Help: "Total number of viseme events produced",
		},
	)

	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lipsync_active_streams",
			Help: "Number of open viseme stream connections",
		},
	)
)

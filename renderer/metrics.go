package renderer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pdf_renders_total",
		Help: "Total PDF render attempts by outcome.",
	}, []string{"outcome"})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pdf_render_duration_seconds",
		Help:    "Wall time per PDF render.",
		Buckets: prometheus.DefBuckets,
	})

	browserLaunches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdf_browser_launches_total",
		Help: "Headless browser launches, including recycles.",
	})
)

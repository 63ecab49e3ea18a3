// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PagesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_pages_rendered_total",
			Help: "Total number of programmatic pages rendered",
		},
		[]string{"page_kind"},
	)

	PageRedirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_page_redirects_total",
			Help: "Total number of invalid-slug redirects issued",
		},
		[]string{"reason"},
	)

	PageRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "site_page_render_duration_seconds",
			Help: "Duration of page assembly and rendering in seconds",
		},
		[]string{"page_kind"},
	)

	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat messages processed",
		},
		[]string{"status"},
	)

	ChatRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "chat_request_duration_seconds",
			Help: "Duration of chat completion round trips in seconds",
		},
	)

	LeadAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_alerts_total",
			Help: "Total number of sales lead alerts attempted",
		},
		[]string{"channel", "status"},
	)
)

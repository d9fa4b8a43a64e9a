package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the dashboard HTTP handler
	DashboardRenderLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rfm_dashboard_render_latency_seconds",
		Help:    "Latency of the RFM dashboard handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of dashboard pages served
	DashboardRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rfm_dashboard_requests_total",
		Help: "Total number of RFM dashboard requests",
	})
)

func Init() {
	prometheus.MustRegister(
		DashboardRenderLatency,
		DashboardRequests,
	)
}

package rfm

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SegmentedRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfm_segmented_rows_total",
			Help: "Count of scored rows by customer segment, before re-engagement.",
		},
		[]string{"segment"},
	)

	ReengagedRowsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rfm_reengaged_rows_total",
			Help: "Rows moved from Lost to Potential Loyalists by the re-engagement pass.",
		},
	)

	SegmentationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rfm_segmentation_duration_seconds",
			Help:    "Duration of one full segmentation run over the transaction table.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(SegmentedRowsTotal, ReengagedRowsTotal, SegmentationDuration)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the booking service's prometheus collectors.
type Metrics struct {
	SeatSelections *prometheus.CounterVec
	Submissions    *prometheus.CounterVec
	ActiveCarts    prometheus.Gauge
	SubmitTime     prometheus.Histogram
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SeatSelections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seat_selections_total",
			Help:      "Seat clicks by engine result",
		}, []string{"result"}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_submissions_total",
			Help:      "Cart submissions by outcome",
		}, []string{"outcome"}),
		ActiveCarts: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_carts",
			Help:      "Carts currently held in memory",
		}),
		SubmitTime: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_submit_seconds",
			Help:      "Time spent handing a cart to the booking store",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

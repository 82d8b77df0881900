package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteRequestsTotal counts configurator quote computations by outcome.
	QuoteRequestsTotal *prometheus.CounterVec
	// CartMutationsTotal counts cart operations by kind.
	CartMutationsTotal *prometheus.CounterVec
	// PromotionRejectionsTotal counts promotion codes rejected at validation.
	PromotionRejectionsTotal *prometheus.CounterVec
	// OrdersCreatedTotal counts finalised checkouts.
	OrdersCreatedTotal prometheus.Counter
	// OrderValueCents records the distribution of order grand totals.
	OrderValueCents prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_requests_total",
			Help:      "Count of sticker quote computations by outcome.",
		}, []string{"result"})
		CartMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Count of cart mutations by operation.",
		}, []string{"op"})
		PromotionRejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotion_rejections_total",
			Help:      "Count of promotion codes rejected at validation.",
		}, []string{"reason"})
		OrdersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Count of finalised checkouts.",
		})
		OrderValueCents = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value_cents",
			Help:      "Distribution of order grand totals in cents.",
			Buckets:   []float64{500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
		})
		reg.MustRegister(QuoteRequestsTotal, CartMutationsTotal, PromotionRejectionsTotal, OrdersCreatedTotal, OrderValueCents)
	})
}

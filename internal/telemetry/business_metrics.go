package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level
// observability of the tax and order flows.
type BusinessMetrics struct {
	TaxQuotes      *prometheus.CounterVec
	TaxExemptions  *prometheus.CounterVec
	ReverseLookups prometheus.Counter

	OrdersCreated *prometheus.CounterVec
	OrderValue    prometheus.Histogram

	InvoicesGenerated *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "upahaar"
	}
	subsystem := "business"

	return &BusinessMetrics{
		TaxQuotes: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tax_quotes_total",
			Help:      "Tax quotes served, by interstate/intrastate transaction type",
		}, []string{"transaction_type"}),

		TaxExemptions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tax_exemptions_total",
			Help:      "Advisory tax exemptions granted, by reason",
		}, []string{"reason"}),

		ReverseLookups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tax_reverse_lookups_total",
			Help:      "Reverse (tax-inclusive) calculations served",
		}),

		OrdersCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "orders_created_total",
			Help:      "Orders created, by interstate/intrastate transaction type",
		}, []string{"transaction_type"}),

		OrderValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "order_value_rupees",
			Help:      "Order grand total in rupees",
			Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000, 25000, 100000},
		}),

		InvoicesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "invoices_generated_total",
			Help:      "Tax invoices generated, by GST type",
		}, []string{"gst_type"}),
	}
}

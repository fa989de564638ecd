package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application counters exposed on /metrics.
type Metrics struct {
	checkoutsTotal    *prometheus.CounterVec
	messagesProcessed *prometheus.CounterVec
	sweepRunsTotal    prometheus.Counter
	dispatchesTotal   *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	factory := promauto.With(reg)

	return &Metrics{
		checkoutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_checkouts_total",
			Help: "Completed checkout attempts by payment method and outcome.",
		}, []string{"payment_method", "outcome"}),
		messagesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_messages_processed_total",
			Help: "Queued messages processed by the sweep dispatcher.",
		}, []string{"type", "status"}),
		sweepRunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_sweep_runs_total",
			Help: "Sweep dispatcher executions.",
		}),
		dispatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_delivery_dispatches_total",
			Help: "Delivery dispatch requests by outcome.",
		}, []string{"outcome"}),
		registry: reg,
	}
}

func (m *Metrics) CheckoutCompleted(paymentMethod, outcome string) {
	m.checkoutsTotal.WithLabelValues(paymentMethod, outcome).Inc()
}

func (m *Metrics) MessageProcessed(messageType, status string) {
	m.messagesProcessed.WithLabelValues(messageType, status).Inc()
}

func (m *Metrics) SweepRun() {
	m.sweepRunsTotal.Inc()
}

func (m *Metrics) DeliveryDispatched(outcome string) {
	m.dispatchesTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the prometheus scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

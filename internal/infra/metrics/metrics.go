package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry      *prometheus.Registry
	ChecksTotal   *prometheus.CounterVec
	InquiriesSent prometheus.Counter
	InquiriesFail prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "giftsafer_checks_total",
			Help: "Check attempts by audit status.",
		}, []string{"status"}),
		InquiriesSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "giftsafer_inquiries_sent_total",
			Help: "Inquiry mails handed to SMTP successfully.",
		}),
		InquiriesFail: factory.NewCounter(prometheus.CounterOpts{
			Name: "giftsafer_inquiries_failed_total",
			Help: "Inquiry mails that failed to dispatch.",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

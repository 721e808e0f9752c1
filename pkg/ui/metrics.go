package ui

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event kinds used as the "kind" label.
const (
	eventKeyPress     = "key_press"
	eventKeyRelease   = "key_release"
	eventMousePress   = "mouse_press"
	eventMouseRelease = "mouse_release"
	eventMouseMove    = "mouse_move"
	eventMouseWheel   = "mouse_wheel"
)

// Metrics holds the manager's prometheus collectors.
type Metrics struct {
	Events         *prometheus.CounterVec
	EventsHandled  *prometheus.CounterVec
	StylesLoaded   prometheus.Counter
	StyleReloads   prometheus.Counter
	WidgetsCreated prometheus.Counter
	QueuePending   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Input events delivered to the root widget.",
		}, []string{"kind"}),
		EventsHandled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_handled_total",
			Help:      "Input events a widget reported as handled.",
		}, []string{"kind"}),
		StylesLoaded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "styles_loaded_total",
			Help:      "Styles registered through ImportStyles.",
		}),
		StyleReloads: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "style_reloads_total",
			Help:      "Style files reloaded after a change on disk.",
		}),
		WidgetsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "widgets_created_total",
			Help:      "Widgets created by LoadUI.",
		}),
		QueuePending: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_pending",
			Help:      "Callbacks waiting for the next turn of the event queue.",
		}),
	}
}

func (m *Metrics) event(kind string, handled bool) bool {
	m.Events.WithLabelValues(kind).Inc()
	if handled {
		m.EventsHandled.WithLabelValues(kind).Inc()
	}
	return handled
}

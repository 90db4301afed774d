package ws

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ws_connections",
		Help: "Currently connected websocket clients.",
	})
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ws_events_total",
		Help: "Events handed to the hub for delivery.",
	}, []string{"event", "audience"})
	droppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ws_dropped_events_total",
		Help: "Events dropped because a client send buffer was full.",
	}, []string{"event"})
)

package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
	)

	OrdersClosedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "orders",
			Name:      "closed_total",
			Help:      "Total number of orders moved to a closing status",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(OrdersCreatedTotal, OrdersClosedTotal)
}

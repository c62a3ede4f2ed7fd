package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts state store activity. A nil registerer disables
// collection, which keeps tests and ad-hoc stores quiet.
type StoreMetrics struct {
	ordersPlaced         prometheus.Counter
	notificationsCreated *prometheus.CounterVec
	cartUnitsAdded       prometheus.Counter
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders placed through the state store.",
	})
	notificationsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "Notifications created, by type.",
	}, []string{"type"})
	cartUnitsAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_units_added_total",
		Help: "Units added to carts.",
	})
	reg.MustRegister(ordersPlaced, notificationsCreated, cartUnitsAdded)
	return &StoreMetrics{
		ordersPlaced:         ordersPlaced,
		notificationsCreated: notificationsCreated,
		cartUnitsAdded:       cartUnitsAdded,
	}
}

// IncOrdersPlaced increments the placed-order counter.
func (s *StoreMetrics) IncOrdersPlaced() {
	if s == nil || s.ordersPlaced == nil {
		return
	}
	s.ordersPlaced.Inc()
}

// IncNotificationsCreated increments the notification counter for the
// given type label.
func (s *StoreMetrics) IncNotificationsCreated(notificationType string) {
	if s == nil || s.notificationsCreated == nil {
		return
	}
	s.notificationsCreated.WithLabelValues(normalizeLabel(notificationType)).Inc()
}

// AddCartUnits records units merged into a cart.
func (s *StoreMetrics) AddCartUnits(units int) {
	if s == nil || s.cartUnitsAdded == nil || units <= 0 {
		return
	}
	s.cartUnitsAdded.Add(float64(units))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

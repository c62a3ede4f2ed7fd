package state

import (
	"github.com/young4chick/kukuhub/pkg/enums"
)

const (
	orderPlacedTitle   = "Order Placed"
	orderPlacedMessage = "Your Order Has Been Placed Successfully"
)

// AddOrder turns the draft into a placed order: fresh id, pending
// status, current timestamp, items deep-copied so later cart mutations
// cannot reach the snapshot. The order is prepended to the history and
// an "Order Placed" success notification is emitted.
func (s *Store) AddOrder(draft OrderDraft) Order {
	s.mu.Lock()

	order := Order{
		ID:          s.newID(),
		Items:       copyLines(draft.Items),
		Subtotal:    draft.Subtotal,
		DeliveryFee: draft.DeliveryFee,
		Discount:    draft.Discount,
		Total:       draft.Total,
		Status:      enums.OrderStatusPending,
		CreatedAt:   s.now(),
	}
	s.orders = append([]Order{order}, s.orders...)
	s.metrics.IncOrdersPlaced()

	s.mu.Unlock()

	s.AddNotification(NotificationDraft{
		Title:   orderPlacedTitle,
		Message: orderPlacedMessage,
		Type:    enums.NotificationTypeSuccess,
	})

	return copyOrder(order)
}

// UpdateOrderStatus sets the order's status. There is no transition
// machine; any valid status is accepted. Absent ids and invalid
// statuses are silent no-ops. Items and totals stay untouched.
func (s *Store) UpdateOrderStatus(orderID string, status enums.OrderStatus) {
	if !status.IsValid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return
		}
	}
}

// Orders returns a copy of the order history, most recent first.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.orders) == 0 {
		return nil
	}
	copied := make([]Order, len(s.orders))
	for i, order := range s.orders {
		copied[i] = copyOrder(order)
	}
	return copied
}

func copyOrder(order Order) Order {
	order.Items = copyLines(order.Items)
	return order
}

package billing

import "senthur/internal/domain"

// ApplyStatusChange returns a snapshot of order carrying newStatus. Settling
// statuses mark the order fully paid; PAID_ADVANCE and CANCEL_REFUNDED leave
// advance and balance as stored. Any status may follow any other.
func ApplyStatusChange(order domain.Order, newStatus domain.OrderStatus) domain.Order {
	next := order.Clone()
	next.Status = newStatus

	if settles(newStatus) {
		next.Advance = next.Total
		next.Balance = 0
	}

	return next
}

func settles(s domain.OrderStatus) bool {
	switch s {
	case domain.OrderStatusFullyPaid, domain.OrderStatusReadyDelivered, domain.OrderStatusCompleted:
		return true
	}
	return false
}

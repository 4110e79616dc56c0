package invoice

import "senthur/internal/domain"

// Seal is the status stamp printed on the last invoice page.
type Seal struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

var defaultSeal = Seal{Label: "OFFICIAL", Class: "seal-slate"}

var seals = map[domain.OrderStatus]Seal{
	domain.OrderStatusPaidAdvance:    {Label: "ADVANCE RECEIVED", Class: "seal-blue"},
	domain.OrderStatusFullyPaid:      {Label: "FULLY PAID", Class: "seal-emerald"},
	domain.OrderStatusReadyDelivered: {Label: "READY TO DELIVER", Class: "seal-amber"},
	domain.OrderStatusCompleted:      {Label: "SUCCESSFULLY COMPLETED", Class: "seal-indigo"},
	domain.OrderStatusCancelRefunded: {Label: "REFUNDED / CANCELLED", Class: "seal-rose"},
}

func SealFor(status domain.OrderStatus) Seal {
	if s, ok := seals[status]; ok {
		return s
	}
	return defaultSeal
}

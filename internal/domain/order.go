package domain

import "time"

// DateLayout is the calendar-date form used for booking and delivery dates.
// Lexicographic and chronological ordering coincide for it.
const DateLayout = "2006-01-02"

type OrderStatus string

const (
	OrderStatusPaidAdvance    OrderStatus = "PAID_ADVANCE"
	OrderStatusFullyPaid      OrderStatus = "FULLY_PAID"
	OrderStatusReadyDelivered OrderStatus = "READY_DELIVERED"
	OrderStatusCompleted      OrderStatus = "ORDER_COMPLETED"
	OrderStatusCancelRefunded OrderStatus = "CANCEL_REFUNDED"
)

// OrderStatuses lists every status in workflow order.
var OrderStatuses = []OrderStatus{
	OrderStatusPaidAdvance,
	OrderStatusFullyPaid,
	OrderStatusReadyDelivered,
	OrderStatusCompleted,
	OrderStatusCancelRefunded,
}

var statusLabels = map[OrderStatus]string{
	OrderStatusPaidAdvance:    "Paid Advance",
	OrderStatusFullyPaid:      "Fully Paid",
	OrderStatusReadyDelivered: "Ready to Deliver",
	OrderStatusCompleted:      "Order Completed Successfully",
	OrderStatusCancelRefunded: "Refunded",
}

// Label returns the human readable name shown on lists and exports.
func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func ParseOrderStatus(v string) (OrderStatus, bool) {
	s := OrderStatus(v)
	return s, s.Valid()
}

type OrderItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	IsComboItem   bool    `json:"isComboItem"`
	IsComboHeader bool    `json:"isComboHeader"`
}

// LineAmount is unitPrice * quantity, ignoring combo membership.
func (i OrderItem) LineAmount() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type Order struct {
	ID               string      `json:"id"`
	OrderNumber      string      `json:"orderNumber"`
	CustomerName     string      `json:"customerName"`
	Mobile           string      `json:"mobile"`
	Address          string      `json:"address"`
	Pincode          string      `json:"pincode"`
	Attendant        string      `json:"attendant"`
	AttendantPhone   string      `json:"attendantPhone"`
	BookingDate      string      `json:"bookingDate"`
	ExpectedDelivery string      `json:"expectedDelivery"`
	Items            []OrderItem `json:"items"`
	Total            float64     `json:"total"`
	Advance          float64     `json:"advance"`
	Balance          float64     `json:"balance"`
	Status           OrderStatus `json:"status"`
	Notes            string      `json:"notes"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// Clone returns a copy whose item slice does not alias the receiver's.
func (o Order) Clone() Order {
	c := o
	if o.Items != nil {
		c.Items = make([]OrderItem, len(o.Items))
		copy(c.Items, o.Items)
	}
	return c
}

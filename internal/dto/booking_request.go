package dto

// BookingRequest is the body of a booking submission or edit. Dates are
// YYYY-MM-DD. A nil ManualTotal means the item total applies.
type BookingRequest struct {
	CustomerName     string        `json:"customerName" validate:"required"`
	Mobile           string        `json:"mobile" validate:"required"`
	Address          string        `json:"address" validate:"required"`
	Pincode          string        `json:"pincode" validate:"required"`
	Attendant        string        `json:"attendant" validate:"required"`
	AttendantPhone   string        `json:"attendantPhone" validate:"required"`
	BookingDate      string        `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	ExpectedDelivery string        `json:"expectedDelivery" validate:"required,datetime=2006-01-02"`
	Items            []BookingItem `json:"items" validate:"required,min=1,dive"`
	ManualTotal      *float64      `json:"manualTotal" validate:"omitempty,gte=0"`
	Advance          float64       `json:"advance" validate:"gte=0"`
	Notes            string        `json:"notes"`
}

type BookingItem struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	UnitPrice     float64 `json:"unitPrice" validate:"gte=0"`
	Quantity      int     `json:"quantity" validate:"gte=1"`
	IsComboItem   bool    `json:"isComboItem" validate:"excluded_if=IsComboHeader true"`
	IsComboHeader bool    `json:"isComboHeader"`
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,oneof=PAID_ADVANCE FULLY_PAID READY_DELIVERED ORDER_COMPLETED CANCEL_REFUNDED"`
}

type QuoteRequest struct {
	Items       []BookingItem `json:"items" validate:"dive"`
	ManualTotal *float64      `json:"manualTotal" validate:"omitempty,gte=0"`
	Advance     float64       `json:"advance" validate:"gte=0"`
}

type OrderFilter struct {
	Query  string
	Status string
}

package dto

import (
	"time"

	apperrors "senthur/internal/errors"
)

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"code"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

type ShareResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type OrderListResponse struct {
	Orders []OrderSummary `json:"orders"`
	Count  int            `json:"count"`
}

// OrderSummary is the row shown in the order history list.
type OrderSummary struct {
	ID           string  `json:"id"`
	OrderNumber  string  `json:"orderNumber"`
	CustomerName string  `json:"customerName"`
	Mobile       string  `json:"mobile"`
	BookingDate  string  `json:"bookingDate"`
	Total        float64 `json:"total"`
	Balance      float64 `json:"balance"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"statusLabel"`
}

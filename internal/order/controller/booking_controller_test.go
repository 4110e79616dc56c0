package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"senthur/internal/billing"
	"senthur/internal/domain"
	"senthur/internal/dto"
	apperrors "senthur/internal/errors"
	"senthur/internal/invoice"
)

type mockBookingUseCase struct {
	CreateFunc          func(ctx context.Context, req dto.BookingRequest) (*domain.Order, error)
	UpdateFunc          func(ctx context.Context, id string, req dto.BookingRequest) (*domain.Order, error)
	ChangeStatusFunc    func(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	GetFunc             func(ctx context.Context, id string) (*domain.Order, error)
	ListFunc            func(ctx context.Context, filter dto.OrderFilter) ([]domain.Order, error)
	QuoteFunc           func(req dto.QuoteRequest) billing.Quote
	ApplyCartActionFunc func(ctx context.Context, req dto.CartRequest) (*dto.CartResponse, error)
}

func (m *mockBookingUseCase) Create(ctx context.Context, req dto.BookingRequest) (*domain.Order, error) {
	return m.CreateFunc(ctx, req)
}

func (m *mockBookingUseCase) Update(ctx context.Context, id string, req dto.BookingRequest) (*domain.Order, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockBookingUseCase) ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return m.ChangeStatusFunc(ctx, id, status)
}

func (m *mockBookingUseCase) Get(ctx context.Context, id string) (*domain.Order, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockBookingUseCase) List(ctx context.Context, filter dto.OrderFilter) ([]domain.Order, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockBookingUseCase) Quote(req dto.QuoteRequest) billing.Quote {
	return m.QuoteFunc(req)
}

func (m *mockBookingUseCase) ApplyCartAction(ctx context.Context, req dto.CartRequest) (*dto.CartResponse, error) {
	return m.ApplyCartActionFunc(ctx, req)
}

func storedOrder() *domain.Order {
	return &domain.Order{
		ID:               "o-1",
		OrderNumber:      "SS-123456",
		CustomerName:     "Ravi",
		Mobile:           "9876543210",
		Address:          "12 Main Road",
		Pincode:          "641601",
		Attendant:        "Mani",
		AttendantPhone:   "9000000000",
		BookingDate:      "2024-05-10",
		ExpectedDelivery: "2024-05-20",
		Items:            []domain.OrderItem{{ID: "tv-1", Name: "3 FT TV BOTTOM", UnitPrice: 5900, Quantity: 2}},
		Total:            11800,
		Advance:          1800,
		Balance:          10000,
		Status:           domain.OrderStatusPaidAdvance,
		CreatedAt:        time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC),
	}
}

func newTestRouter(t *testing.T, uc BookingUseCase) http.Handler {
	t.Helper()
	renderer, err := invoice.NewRenderer()
	require.NoError(t, err)

	c := NewBookingController(uc, renderer,
		invoice.Branding{ShopName: "SRI SENTHUR FURNITURE", City: "ERODE", DefaultNotes: "Thanks"},
		ShareSettings{ShopName: "SRI SENTHUR FURNITURE", CountryCode: "91"},
		zap.NewNop(),
	)

	r := chi.NewRouter()
	r.Post("/orders", c.HandleCreate)
	r.Get("/orders", c.HandleList)
	r.Post("/orders/quote", c.HandleQuote)
	r.Post("/cart", c.HandleCart)
	r.Get("/orders/{orderId}", c.HandleGet)
	r.Put("/orders/{orderId}", c.HandleUpdate)
	r.Patch("/orders/{orderId}/status", c.HandleChangeStatus)
	r.Get("/orders/{orderId}/invoice", c.HandleInvoice)
	r.Get("/orders/{orderId}/invoice.json", c.HandleInvoiceJSON)
	r.Get("/orders/{orderId}/share", c.HandleShare)
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const validBookingJSON = `{
	"customerName": "Ravi",
	"mobile": "9876543210",
	"address": "12 Main Road",
	"pincode": "641601",
	"attendant": "Mani",
	"attendantPhone": "9000000000",
	"bookingDate": "2024-05-10",
	"expectedDelivery": "2024-05-20",
	"advance": 1800,
	"items": [{"id": "tv-1", "name": "3 ft TV Bottom", "unitPrice": 5900, "quantity": 2}]
}`

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleCreate_Success(t *testing.T) {
	uc := &mockBookingUseCase{CreateFunc: func(_ context.Context, req dto.BookingRequest) (*domain.Order, error) {
		assert.Equal(t, "Ravi", req.CustomerName)
		assert.Len(t, req.Items, 1)
		return storedOrder(), nil
	}}

	rec := do(newTestRouter(t, uc), http.MethodPost, "/orders", validBookingJSON)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "SS-123456", got.OrderNumber)
	assert.Equal(t, 10000.0, got.Balance)
}

func TestHandleCreate_InvalidJSON(t *testing.T) {
	rec := do(newTestRouter(t, &mockBookingUseCase{}), http.MethodPost, "/orders", "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.NotEmpty(t, resp.TraceID)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "body", resp.Details[0].Field)
}

func TestHandleCreate_ValidationDetails(t *testing.T) {
	rec := do(newTestRouter(t, &mockBookingUseCase{}), http.MethodPost, "/orders", `{"customerName": "Ravi", "items": []}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	fields := make([]string, len(resp.Details))
	for i, d := range resp.Details {
		fields[i] = d.Field
	}
	assert.Contains(t, fields, "mobile")
	assert.Contains(t, fields, "items")
	assert.NotContains(t, fields, "customerName")
}

func TestHandleUpdate_NotFound(t *testing.T) {
	uc := &mockBookingUseCase{UpdateFunc: func(_ context.Context, id string, _ dto.BookingRequest) (*domain.Order, error) {
		assert.Equal(t, "o-404", id)
		return nil, apperrors.NewNotFoundError("order with id o-404 not found")
	}}

	rec := do(newTestRouter(t, uc), http.MethodPut, "/orders/o-404", validBookingJSON)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestHandleChangeStatus(t *testing.T) {
	uc := &mockBookingUseCase{ChangeStatusFunc: func(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
		o := storedOrder()
		o.Status = status
		o.Advance, o.Balance = o.Total, 0
		return o, nil
	}}
	router := newTestRouter(t, uc)

	t.Run("valid", func(t *testing.T) {
		rec := do(router, http.MethodPatch, "/orders/o-1/status", `{"status": "FULLY_PAID"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.OrderStatusFullyPaid, got.Status)
		assert.Equal(t, 0.0, got.Balance)
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := do(router, http.MethodPatch, "/orders/o-1/status", `{"status": "LOST"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleList(t *testing.T) {
	uc := &mockBookingUseCase{ListFunc: func(_ context.Context, filter dto.OrderFilter) ([]domain.Order, error) {
		assert.Equal(t, "ravi", filter.Query)
		assert.Equal(t, "PAID_ADVANCE", filter.Status)
		return []domain.Order{*storedOrder()}, nil
	}}

	rec := do(newTestRouter(t, uc), http.MethodGet, "/orders?q=ravi&status=PAID_ADVANCE", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Paid Advance", resp.Orders[0].StatusLabel)
}

func TestHandleGet_InternalError(t *testing.T) {
	uc := &mockBookingUseCase{GetFunc: func(context.Context, string) (*domain.Order, error) {
		return nil, errors.New("db down")
	}}

	rec := do(newTestRouter(t, uc), http.MethodGet, "/orders/o-1", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", resp.Code)
	assert.Equal(t, "an unexpected error occurred", resp.Message)
}

func TestHandleQuote(t *testing.T) {
	uc := &mockBookingUseCase{QuoteFunc: func(req dto.QuoteRequest) billing.Quote {
		return billing.Price([]domain.OrderItem{{UnitPrice: req.Items[0].UnitPrice, Quantity: req.Items[0].Quantity}}, req.ManualTotal, req.Advance)
	}}

	rec := do(newTestRouter(t, uc), http.MethodPost, "/orders/quote",
		`{"items": [{"id": "a", "name": "A", "unitPrice": 1000, "quantity": 3}], "advance": 500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var q billing.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, 3000.0, q.Total)
	assert.Equal(t, 2500.0, q.Balance)
}

func TestHandleCart_Conflict(t *testing.T) {
	uc := &mockBookingUseCase{ApplyCartActionFunc: func(context.Context, dto.CartRequest) (*dto.CartResponse, error) {
		return nil, apperrors.NewConflictError("busy")
	}}

	rec := do(newTestRouter(t, uc), http.MethodPost, "/cart", `{"action": "ADD_CUSTOM"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, rec).Code)
}

func TestHandleInvoice(t *testing.T) {
	uc := &mockBookingUseCase{GetFunc: func(context.Context, string) (*domain.Order, error) { return storedOrder(), nil }}
	router := newTestRouter(t, uc)

	t.Run("html", func(t *testing.T) {
		rec := do(router, http.MethodGet, "/orders/o-1/invoice", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, "SS-123456")
		assert.Contains(t, body, "Rupees Eleven Thousand Eight Hundred Only")
		assert.Equal(t, 1, strings.Count(body, `class="a4-page"`))
	})

	t.Run("json", func(t *testing.T) {
		rec := do(router, http.MethodGet, "/orders/o-1/invoice.json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var doc invoice.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		require.Len(t, doc.Pages, 1)
		require.NotNil(t, doc.Pages[0].Footer)
		assert.Equal(t, "ADVANCE RECEIVED", doc.Pages[0].Footer.Seal.Label)
		assert.Equal(t, "10-05-2024", doc.BookingDate)
	})
}

func TestHandleShare(t *testing.T) {
	uc := &mockBookingUseCase{GetFunc: func(context.Context, string) (*domain.Order, error) { return storedOrder(), nil }}

	rec := do(newTestRouter(t, uc), http.MethodGet, "/orders/o-1/share", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ShareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Bill No: SS-123456")
	u, err := url.Parse(resp.URL)
	require.NoError(t, err)
	assert.Equal(t, "/919876543210", u.Path)
	assert.Equal(t, resp.Message, u.Query().Get("text"))
}

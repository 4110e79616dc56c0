package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"senthur/internal/billing"
	"senthur/internal/domain"
	"senthur/internal/dto"
	apperrors "senthur/internal/errors"
	applog "senthur/internal/infrastructure/logger"
	"senthur/internal/invoice"
)

type BookingUseCase interface {
	Create(ctx context.Context, req dto.BookingRequest) (*domain.Order, error)
	Update(ctx context.Context, id string, req dto.BookingRequest) (*domain.Order, error)
	ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]domain.Order, error)
	Quote(req dto.QuoteRequest) billing.Quote
	ApplyCartAction(ctx context.Context, req dto.CartRequest) (*dto.CartResponse, error)
}

// ShareSettings configures the customer share link.
type ShareSettings struct {
	ShopName    string
	CountryCode string
}

type BookingController struct {
	useCase  BookingUseCase
	renderer *invoice.Renderer
	branding invoice.Branding
	share    ShareSettings
	logger   *zap.Logger
}

func NewBookingController(
	useCase BookingUseCase,
	renderer *invoice.Renderer,
	branding invoice.Branding,
	share ShareSettings,
	logger *zap.Logger,
) *BookingController {
	return &BookingController{
		useCase:  useCase,
		renderer: renderer,
		branding: branding,
		share:    share,
		logger:   logger,
	}
}

func (c *BookingController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	var req dto.BookingRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	order, err := c.useCase.Create(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

func (c *BookingController) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)
	orderID := chi.URLParam(r, "orderId")

	var req dto.BookingRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	order, err := c.useCase.Update(r.Context(), orderID, req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *BookingController) HandleChangeStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)
	orderID := chi.URLParam(r, "orderId")

	var req dto.StatusChangeRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	order, err := c.useCase.ChangeStatus(r.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *BookingController) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	filter := dto.OrderFilter{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}

	orders, err := c.useCase.List(r.Context(), filter)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	resp := dto.OrderListResponse{
		Orders: make([]dto.OrderSummary, 0, len(orders)),
		Count:  len(orders),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, dto.OrderSummary{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Mobile:       o.Mobile,
			BookingDate:  o.BookingDate,
			Total:        o.Total,
			Balance:      o.Balance,
			Status:       string(o.Status),
			StatusLabel:  o.Status.Label(),
		})
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *BookingController) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	order, err := c.useCase.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *BookingController) HandleQuote(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	var req dto.QuoteRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	c.writeJSON(w, http.StatusOK, c.useCase.Quote(req))
}

func (c *BookingController) HandleCart(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	var req dto.CartRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	resp, err := c.useCase.ApplyCartAction(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

// decode reads and validates a JSON body, writing the 400 response itself
// when either step fails.
func (c *BookingController) decode(w http.ResponseWriter, r *http.Request, traceID string, dst any, logger *zap.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.handleUseCaseError(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}), logger)
		return false
	}

	if err := dto.Validate(dst); err != nil {
		logger.Warn("request validation failed", zap.Error(err))
		c.handleUseCaseError(w, traceID, err, logger)
		return false
	}

	return true
}

func (c *BookingController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "CONFLICT", err.Error(), nil)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (c *BookingController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string, details []apperrors.ValidationDetail) {
	response := dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, statusCode, response)
}

func (c *BookingController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

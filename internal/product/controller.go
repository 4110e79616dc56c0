package product

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"senthur/internal/dto"
	applog "senthur/internal/infrastructure/logger"
)

type Controller struct {
	useCase SearchUseCase
	logger  *zap.Logger
}

func NewController(useCase SearchUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSearchProducts serves GET /products?q=&category=.
func (c *Controller) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	req := SearchProductsRequest{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	resp, err := c.useCase.SearchProducts(r.Context(), req)
	if err != nil {
		logger.Error("search products failed", zap.String("q", req.Query), zap.String("category", req.Category), zap.Error(err))
		c.writeInternalError(w, traceID)
		return
	}

	logger.Debug("products searched", zap.Int("count", resp.Count))
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	categories, err := c.useCase.ListCategories(r.Context())
	if err != nil {
		logger.Error("list categories failed", zap.Error(err))
		c.writeInternalError(w, traceID)
		return
	}

	c.writeJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}

func (c *Controller) writeInternalError(w http.ResponseWriter, traceID string) {
	c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    http.StatusInternalServerError,
		Code:      "INTERNAL_ERROR",
		Message:   "an unexpected error occurred",
		Timestamp: time.Now().UTC(),
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

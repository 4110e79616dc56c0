package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"senthur/internal/dto"
	apperrors "senthur/internal/errors"
	applog "senthur/internal/infrastructure/logger"
)

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleSummary(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	start, end, err := c.service.ResolveRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	stats, err := c.service.Summary(r.Context(), start, end)
	if err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, stats)
}

func (c *Controller) HandleExport(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	start, end, err := c.service.ResolveRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	orders, err := c.service.ExportOrders(r.Context(), start, end)
	if err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename(start, end)))
	w.WriteHeader(http.StatusOK)
	if err := WriteCSV(w, orders); err != nil {
		logger.Error("failed to write csv export", zap.Error(err))
	}
	logger.Info("report exported", zap.String("start", start), zap.String("end", end), zap.Int("orders", len(orders)))
}

func (c *Controller) writeError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	resp := dto.ErrorResponse{
		TraceID:   traceID,
		Timestamp: time.Now().UTC(),
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		resp.Status = http.StatusBadRequest
		resp.Code = "VALIDATION_ERROR"
		resp.Message = ve.Message
		resp.Details = ve.Details
		c.writeJSON(w, resp.Status, resp)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	resp.Status = http.StatusInternalServerError
	resp.Code = "INTERNAL_ERROR"
	resp.Message = "an unexpected error occurred"
	c.writeJSON(w, resp.Status, resp)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

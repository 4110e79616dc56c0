package controller

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"senthur/internal/dto"
	applog "senthur/internal/infrastructure/logger"
	"senthur/internal/invoice"
	"senthur/internal/report"
)

// HandleInvoice renders the printable estimate as HTML.
func (c *BookingController) HandleInvoice(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	order, err := c.useCase.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	doc := invoice.Build(*order, c.branding)

	var buf bytes.Buffer
	if err := c.renderer.Render(&buf, doc); err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("failed to write invoice", zap.Error(err))
	}
	logger.Info("invoice rendered", zap.String("orderNumber", order.OrderNumber), zap.Int("pages", len(doc.Pages)))
}

func (c *BookingController) HandleInvoiceJSON(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	order, err := c.useCase.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, invoice.Build(*order, c.branding))
}

func (c *BookingController) HandleShare(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := applog.ForRequest(c.logger, traceID)

	order, err := c.useCase.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	msg := report.ShareMessage(*order, c.share.ShopName)
	c.writeJSON(w, http.StatusOK, dto.ShareResponse{
		Message: msg,
		URL:     report.ShareURL(order.Mobile, c.share.CountryCode, msg),
	})
}

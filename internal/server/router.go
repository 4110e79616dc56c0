package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"senthur/internal/order/controller"
	"senthur/internal/product"
	"senthur/internal/report"
)

type Handlers struct {
	Products *product.Controller
	Orders   *controller.BookingController
	Reports  *report.Controller
}

func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.Products.HandleSearchProducts)
		r.Get("/categories", h.Products.HandleListCategories)
	})

	r.Post("/cart", h.Orders.HandleCart)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.Orders.HandleList)
		r.Post("/", h.Orders.HandleCreate)
		r.Post("/quote", h.Orders.HandleQuote)
		r.Route("/{orderId}", func(r chi.Router) {
			r.Get("/", h.Orders.HandleGet)
			r.Put("/", h.Orders.HandleUpdate)
			r.Patch("/status", h.Orders.HandleChangeStatus)
			r.Get("/invoice", h.Orders.HandleInvoice)
			r.Get("/invoice.json", h.Orders.HandleInvoiceJSON)
			r.Get("/share", h.Orders.HandleShare)
		})
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.Reports.HandleSummary)
		r.Get("/export.csv", h.Reports.HandleExport)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

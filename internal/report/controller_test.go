package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"senthur/internal/domain"
	"senthur/internal/dto"
)

func newTestRouter(orders []domain.Order) http.Handler {
	lister := &mockOrderLister{ListFunc: func(context.Context) ([]domain.Order, error) { return orders, nil }}
	ctrl := NewController(newTestService(lister, newMockSummaryCache()), zap.NewNop())

	r := chi.NewRouter()
	r.Get("/reports/summary", ctrl.HandleSummary)
	r.Get("/reports/export.csv", ctrl.HandleExport)
	return r
}

func TestHandleSummary(t *testing.T) {
	router := newTestRouter([]domain.Order{order("2024-05-10", domain.OrderStatusFullyPaid, 3000, 3000)})

	req := httptest.NewRequest(http.MethodGet, "/reports/summary?start=2024-05-01&end=2024-05-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3000.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.Counts[domain.OrderStatusFullyPaid])
}

func TestHandleSummary_BadDate(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/summary?start=yesterday", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.NotEmpty(t, resp.TraceID)
}

func TestHandleExport(t *testing.T) {
	router := newTestRouter([]domain.Order{
		order("2024-05-10", domain.OrderStatusFullyPaid, 3000, 3000),
		order("2024-07-10", domain.OrderStatusFullyPaid, 1, 1),
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/export.csv?start=2024-05-01&end=2024-05-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Sri_Senthur_Report_2024-05-01_to_2024-05-31.csv")
	assert.Len(t, strings.Split(rec.Body.String(), "\n"), 2)
}

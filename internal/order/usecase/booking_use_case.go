package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"senthur/internal/billing"
	"senthur/internal/domain"
	"senthur/internal/dto"
	apperrors "senthur/internal/errors"
)

type OrderStore interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Save(ctx context.Context, order domain.Order) error
}

type ProductCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// ReportInvalidator drops cached report summaries after an order write.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}

type BookingUseCase struct {
	store            OrderStore
	catalog          ProductCatalog
	reports          ReportInvalidator
	logger           *zap.Logger
	maxRetryAttempts int
	numberPrefix     string

	now   func() time.Time
	newID func() string
	sleep func(time.Duration)
}

func NewBookingUseCase(
	store OrderStore,
	catalog ProductCatalog,
	reports ReportInvalidator,
	logger *zap.Logger,
	maxRetryAttempts int,
	numberPrefix string,
) *BookingUseCase {
	return &BookingUseCase{
		store:            store,
		catalog:          catalog,
		reports:          reports,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
		numberPrefix:     numberPrefix,
		now:              time.Now,
		newID:            func() string { return uuid.New().String() },
		sleep:            time.Sleep,
	}
}

// Create books a new order in PAID_ADVANCE.
func (uc *BookingUseCase) Create(ctx context.Context, req dto.BookingRequest) (*domain.Order, error) {
	now := uc.now()
	order := uc.buildOrder(req)
	order.ID = uc.newID()
	order.OrderNumber = fmt.Sprintf("%s%06d", uc.numberPrefix, now.UnixMilli()%1_000_000)
	order.Status = domain.OrderStatusPaidAdvance
	order.CreatedAt = now.UTC()

	uc.logger.Info("booking started", zap.String("orderId", order.ID), zap.String("orderNumber", order.OrderNumber), zap.Int("itemCount", len(order.Items)))

	if err := uc.saveWithRetry(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("booking saved", zap.String("orderId", order.ID), zap.Float64("total", order.Total), zap.Float64("balance", order.Balance))
	return &order, nil
}

// Update replaces an order's editable fields. Identity, status and creation
// time come from the stored order.
func (uc *BookingUseCase) Update(ctx context.Context, id string, req dto.BookingRequest) (*domain.Order, error) {
	existing, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order := uc.buildOrder(req)
	order.ID = existing.ID
	order.OrderNumber = existing.OrderNumber
	order.Status = existing.Status
	order.CreatedAt = existing.CreatedAt

	if err := uc.saveWithRetry(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("booking updated", zap.String("orderId", order.ID), zap.String("orderNumber", order.OrderNumber), zap.Float64("total", order.Total))
	return &order, nil
}

func (uc *BookingUseCase) ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("unknown status %q", status),
		})
	}

	existing, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := billing.ApplyStatusChange(*existing, status)
	if err := uc.saveWithRetry(ctx, next); err != nil {
		return nil, err
	}

	uc.logger.Info("order status changed",
		zap.String("orderId", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(status)),
		zap.Float64("balance", next.Balance),
	)
	return &next, nil
}

func (uc *BookingUseCase) Get(ctx context.Context, id string) (*domain.Order, error) {
	return uc.store.FindByID(ctx, id)
}

// List returns orders newest first, narrowed by free text and status.
func (uc *BookingUseCase) List(ctx context.Context, filter dto.OrderFilter) ([]domain.Order, error) {
	orders, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(filter.Query)
	matched := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if filter.Status != "" && filter.Status != "ALL" && string(o.Status) != filter.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), q) &&
			!strings.Contains(o.Mobile, filter.Query) &&
			!strings.Contains(strings.ToLower(o.OrderNumber), q) {
			continue
		}
		matched = append(matched, o)
	}

	slices.SortStableFunc(matched, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return matched, nil
}

func (uc *BookingUseCase) Quote(req dto.QuoteRequest) billing.Quote {
	return billing.Price(toDomainItems(req.Items), req.ManualTotal, req.Advance)
}

// ApplyCartAction runs one cart edit against the client's current selection.
func (uc *BookingUseCase) ApplyCartAction(ctx context.Context, req dto.CartRequest) (*dto.CartResponse, error) {
	cart := billing.NewCart(toDomainItems(req.Items), req.ManualTotal)

	switch req.Action {
	case dto.CartAddProduct:
		p, err := uc.catalog.GetByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		cart.AddProduct(*p)
	case dto.CartAddComboHeader:
		cart.AddComboHeader("combo-" + uc.newID())
	case dto.CartAddCustomItem:
		cart.AddCustomItem("custom-" + uc.newID())
	case dto.CartRemove:
		cart.Remove(req.ItemID)
	case dto.CartChangeQuantity:
		cart.ChangeQuantity(req.ItemID, req.Delta)
	case dto.CartSetPrice:
		cart.SetPrice(req.ItemID, req.Price)
	case dto.CartRename:
		cart.Rename(req.ItemID, req.Name)
	case dto.CartToggleCombo:
		cart.ToggleCombo(req.ItemID)
	case dto.CartSetManualTotal:
		cart.SetManualTotal(req.Total)
	case dto.CartClearManualTotal:
		cart.ClearManualTotal()
	default:
		return nil, apperrors.NewValidationError("invalid cart action", apperrors.ValidationDetail{
			Field:   "action",
			Message: fmt.Sprintf("unknown action %q", req.Action),
		})
	}

	q := cart.Quote(req.Advance)
	return &dto.CartResponse{
		Items:           cart.Items,
		ManualTotal:     cart.ManualTotal,
		CalculatedTotal: q.CalculatedTotal,
		Total:           q.Total,
		Advance:         q.Advance,
		Balance:         q.Balance,
	}, nil
}

func (uc *BookingUseCase) buildOrder(req dto.BookingRequest) domain.Order {
	items := toDomainItems(req.Items)
	for i := range items {
		items[i].Name = billing.NormalizeName(items[i].Name)
	}
	q := billing.Price(items, req.ManualTotal, req.Advance)

	return domain.Order{
		CustomerName:     strings.TrimSpace(req.CustomerName),
		Mobile:           strings.TrimSpace(req.Mobile),
		Address:          req.Address,
		Pincode:          strings.TrimSpace(req.Pincode),
		Attendant:        strings.TrimSpace(req.Attendant),
		AttendantPhone:   strings.TrimSpace(req.AttendantPhone),
		BookingDate:      req.BookingDate,
		ExpectedDelivery: req.ExpectedDelivery,
		Items:            billing.SortHeadersFirst(items),
		Total:            q.Total,
		Advance:          q.Advance,
		Balance:          q.Balance,
		Notes:            req.Notes,
	}
}

func toDomainItems(items []dto.BookingItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	for i, item := range items {
		out[i] = domain.OrderItem{
			ID:            item.ID,
			Name:          item.Name,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
			IsComboItem:   item.IsComboItem,
			IsComboHeader: item.IsComboHeader,
		}
	}
	return out
}

func (uc *BookingUseCase) saveWithRetry(ctx context.Context, order domain.Order) error {
	maxAttempts := uc.maxRetryAttempts
	// Wait before attempt n is backoffs[n-1], capped at the last entry.
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := uc.store.Save(ctx, order)
		if err == nil {
			uc.invalidateReports(ctx, order.ID)
			return nil
		}

		if isDuplicateKeyError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("order number %s already exists", order.OrderNumber))
		}

		if !isDeadlockError(err) {
			return err
		}

		if attempt < maxAttempts {
			base := backoffs[min(attempt, len(backoffs)-1)]
			// ±20% jitter
			jitter := time.Duration(float64(base) * (rand.Float64()*0.4 - 0.2))
			uc.logger.Warn("deadlock detected, retrying", zap.Int("attempt", attempt), zap.Int("maxAttempts", maxAttempts), zap.String("orderId", order.ID))
			uc.sleep(base + jitter)
		}
	}

	return apperrors.NewConflictError("order store is busy, max retries exceeded")
}

func (uc *BookingUseCase) invalidateReports(ctx context.Context, orderID string) {
	if err := uc.reports.Invalidate(ctx); err != nil {
		uc.logger.Warn("report cache invalidation failed", zap.String("orderId", orderID), zap.Error(err))
	}
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}

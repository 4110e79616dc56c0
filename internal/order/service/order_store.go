package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"senthur/internal/domain"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Upsert(ctx context.Context, tx *sql.Tx, order domain.Order) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, orderID string, position int, item domain.OrderItem) error
	DeleteByOrderID(ctx context.Context, tx *sql.Tx, orderID string) error
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	FindAll(ctx context.Context) (map[string][]domain.OrderItem, error)
}

// OrderStoreService persists whole orders to MySQL. A save rewrites the order
// row and its item list inside one transaction.
type OrderStoreService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewOrderStoreService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderStoreService {
	return &OrderStoreService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

func (s *OrderStoreService) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.orderItemRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (s *OrderStoreService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.orderItemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

func (s *OrderStoreService) Save(ctx context.Context, order domain.Order) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	// MySQL ignores rollback after commit.
	defer tx.Rollback()

	if err := s.orderRepo.Upsert(txCtx, tx, order); err != nil {
		s.logger.Error("failed to upsert order", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	if err := s.orderItemRepo.DeleteByOrderID(txCtx, tx, order.ID); err != nil {
		s.logger.Error("failed to clear order items", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	for pos, item := range order.Items {
		if err := s.orderItemRepo.Insert(txCtx, tx, order.ID, pos, item); err != nil {
			s.logger.Error("failed to insert order item", zap.String("orderId", order.ID), zap.Int("position", pos), zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	s.logger.Debug("order saved", zap.String("orderId", order.ID), zap.Int("itemCount", len(order.Items)))
	return nil
}

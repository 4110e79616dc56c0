package repository

import (
	"context"
	"database/sql"
	"fmt"

	"senthur/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// Insert stores item at position within the order's item list.
func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, orderID string, position int, item domain.OrderItem) error {
	query := `
		INSERT INTO OrderItems (orderId, position, itemId, name, unitPrice, quantity, isComboItem, isComboHeader)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query,
		orderID, position, item.ID, item.Name, item.UnitPrice, item.Quantity,
		item.IsComboItem, item.IsComboHeader,
	)
	if err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}

	return nil
}

func (r *MySQLOrderItemRepository) DeleteByOrderID(ctx context.Context, tx *sql.Tx, orderID string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM OrderItems WHERE orderId = ?`, orderID); err != nil {
		return fmt.Errorf("deleting order items: %w", err)
	}
	return nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT orderId, itemId, name, unitPrice, quantity, isComboItem, isComboHeader
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY position`

	grouped, err := r.query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	return grouped[orderID], nil
}

// FindAll returns every stored item grouped by order id, each group in
// position order.
func (r *MySQLOrderItemRepository) FindAll(ctx context.Context) (map[string][]domain.OrderItem, error) {
	query := `
		SELECT orderId, itemId, name, unitPrice, quantity, isComboItem, isComboHeader
		FROM OrderItems
		ORDER BY orderId, position`

	return r.query(ctx, query)
}

func (r *MySQLOrderItemRepository) query(ctx context.Context, query string, args ...any) (map[string][]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.OrderItem)
	for rows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.ID, &item.Name, &item.UnitPrice, &item.Quantity, &item.IsComboItem, &item.IsComboHeader); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		grouped[orderID] = append(grouped[orderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return grouped, nil
}

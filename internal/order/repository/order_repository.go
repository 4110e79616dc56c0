package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"senthur/internal/domain"
	apperrors "senthur/internal/errors"
)

const orderColumns = `id, orderNumber, customerName, mobile, address, pincode,
		       attendant, attendantPhone, bookingDate, expectedDelivery,
		       total, advance, balance, status, notes, createdAt`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.Mobile, &o.Address, &o.Pincode,
		&o.Attendant, &o.AttendantPhone, &o.BookingDate, &o.ExpectedDelivery,
		&o.Total, &o.Advance, &o.Balance, &o.Status, &o.Notes, &o.CreatedAt,
	)
	return o, err
}

// FindByID returns the order header. Items are loaded separately.
func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM Orders
		WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

// List returns every order header, newest first.
func (r *MySQLOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM Orders
		ORDER BY createdAt DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// Upsert writes the order header, replacing every column of an existing row
// with the same id.
func (r *MySQLOrderRepository) Upsert(ctx context.Context, tx *sql.Tx, o domain.Order) error {
	query := `
		INSERT INTO Orders (` + orderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			orderNumber = VALUES(orderNumber),
			customerName = VALUES(customerName),
			mobile = VALUES(mobile),
			address = VALUES(address),
			pincode = VALUES(pincode),
			attendant = VALUES(attendant),
			attendantPhone = VALUES(attendantPhone),
			bookingDate = VALUES(bookingDate),
			expectedDelivery = VALUES(expectedDelivery),
			total = VALUES(total),
			advance = VALUES(advance),
			balance = VALUES(balance),
			status = VALUES(status),
			notes = VALUES(notes)`

	_, err := tx.ExecContext(ctx, query,
		o.ID, o.OrderNumber, o.CustomerName, o.Mobile, o.Address, o.Pincode,
		o.Attendant, o.AttendantPhone, o.BookingDate, o.ExpectedDelivery,
		o.Total, o.Advance, o.Balance, string(o.Status), o.Notes, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting order: %w", err)
	}

	return nil
}

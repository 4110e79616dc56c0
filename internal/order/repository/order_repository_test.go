package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senthur/internal/domain"
	"senthur/internal/errors"
	"senthur/internal/testutil"
)

var orderRowColumns = []string{
	"id", "orderNumber", "customerName", "mobile", "address", "pincode",
	"attendant", "attendantPhone", "bookingDate", "expectedDelivery",
	"total", "advance", "balance", "status", "notes", "createdAt",
}

func sampleOrder(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:               id,
		OrderNumber:      "SS-" + id,
		CustomerName:     "RAVI",
		Mobile:           "9876543210",
		Address:          "12 MAIN ROAD",
		Pincode:          "641601",
		Attendant:        "MANI",
		AttendantPhone:   "9000000000",
		BookingDate:      "2024-05-10",
		ExpectedDelivery: "2024-05-20",
		Total:            12000,
		Advance:          2000,
		Balance:          10000,
		Status:           domain.OrderStatusPaidAdvance,
		Notes:            "",
		CreatedAt:        createdAt,
	}
}

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestOrderRepository_FindByID_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM Orders\s+WHERE id = \?`).
		WithArgs("o-1").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(
			"o-1", "SS-000001", "RAVI", "9876543210", "12 MAIN ROAD", "641601",
			"MANI", "9000000000", "2024-05-10", "2024-05-20",
			"12000.00", "2000.00", "10000.00", "PAID_ADVANCE", "", created,
		))

	order, err := NewMySQLOrderRepository(db).FindByID(context.Background(), "o-1")

	require.NoError(t, err)
	assert.Equal(t, "SS-000001", order.OrderNumber)
	assert.Equal(t, 12000.0, order.Total)
	assert.Equal(t, domain.OrderStatusPaidAdvance, order.Status)
	assert.Equal(t, created, order.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByID_NotFoundMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM Orders\s+WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	order, err := NewMySQLOrderRepository(db).FindByID(context.Background(), "missing")

	assert.Nil(t, order)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_Upsert_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	o := sampleOrder("o-1", time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Orders (")).
		WithArgs(o.ID, o.OrderNumber, o.CustomerName, o.Mobile, o.Address, o.Pincode,
			o.Attendant, o.AttendantPhone, o.BookingDate, o.ExpectedDelivery,
			o.Total, o.Advance, o.Balance, "PAID_ADVANCE", o.Notes, o.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, NewMySQLOrderRepository(db).Upsert(context.Background(), tx, o))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Integration Tests

func TestOrderRepository_UpsertAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	older := sampleOrder("o-old", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	newer := sampleOrder("o-new", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))

	for _, o := range []domain.Order{older, newer} {
		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(context.Background(), tx, o))
		require.NoError(t, tx.Commit())
	}

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o-new", orders[0].ID)
	assert.Equal(t, "o-old", orders[1].ID)

	// Replacing keeps a single row.
	newer.Status = domain.OrderStatusFullyPaid
	newer.Advance = newer.Total
	newer.Balance = 0
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(context.Background(), tx, newer))
	require.NoError(t, tx.Commit())

	got, err := repo.FindByID(context.Background(), "o-new")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusFullyPaid, got.Status)
	assert.Equal(t, 0.0, got.Balance)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByID(context.Background(), "does-not-exist")
	assert.Error(t, err)
	assert.Nil(t, order)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

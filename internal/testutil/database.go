package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB abre la BD de prueba. Usa TEST_DB_DSN si está definida; si no,
// espera una BD MySQL en localhost:3306 llamada 'senthur_test'.
// Si la BD no responde, el test se salta.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/senthur_test?parseTime=true"
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB limpia la BD de prueba
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "Product"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables crea las tablas necesarias para los tests y las deja vacías
func SetupTestTables(t *testing.T, db *sql.DB) {
	t.Helper()

	createProductTable := `
	CREATE TABLE IF NOT EXISTS Product (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		category VARCHAR(100) NOT NULL,
		name VARCHAR(255) NOT NULL,
		unitPrice BIGINT NOT NULL,
		sortOrder INT NOT NULL DEFAULT 0,
		INDEX idx_category (category),
		INDEX idx_sort (sortOrder)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		orderNumber VARCHAR(32) NOT NULL,
		customerName VARCHAR(150) NOT NULL,
		mobile VARCHAR(20) NOT NULL,
		address VARCHAR(255) NOT NULL,
		pincode VARCHAR(10) NOT NULL,
		attendant VARCHAR(100) NOT NULL,
		attendantPhone VARCHAR(20) NOT NULL,
		bookingDate CHAR(10) NOT NULL,
		expectedDelivery CHAR(10) NOT NULL,
		total DECIMAL(12,2) NOT NULL DEFAULT 0.00,
		advance DECIMAL(12,2) NOT NULL DEFAULT 0.00,
		balance DECIMAL(12,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(32) NOT NULL DEFAULT 'PAID_ADVANCE',
		notes TEXT NOT NULL,
		createdAt DATETIME(3) NOT NULL,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_order_number (orderNumber)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		orderId VARCHAR(36) NOT NULL,
		position INT NOT NULL,
		itemId VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		unitPrice DECIMAL(12,2) NOT NULL DEFAULT 0.00,
		quantity INT NOT NULL DEFAULT 1,
		isComboItem TINYINT(1) NOT NULL DEFAULT 0,
		isComboHeader TINYINT(1) NOT NULL DEFAULT 0,
		PRIMARY KEY (orderId, position),
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Product", createProductTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}

	for _, table := range []string{"OrderItems", "Orders", "Product"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clear table %s: %v", table, err)
		}
	}
}

package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

type table struct {
	name  string
	query string
}

// seq preserves insertion order, which is the ledger's chronological order.
var schema = []table{
	{"Orders", `
	CREATE TABLE IF NOT EXISTS Orders (
		seq BIGINT UNSIGNED NOT NULL AUTO_INCREMENT UNIQUE,
		id VARCHAR(16) NOT NULL PRIMARY KEY,
		customerName VARCHAR(150) NOT NULL,
		customerPhone VARCHAR(30) NOT NULL,
		totalAmount BIGINT NOT NULL,
		orderDate VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'Completed',
		customizationNotes TEXT NOT NULL,
		createdAt DATETIME(3) NOT NULL
	)`},
	{"OrderItems", `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId VARCHAR(16) NOT NULL,
		lineNo INT NOT NULL,
		productId VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(32) NOT NULL,
		variety VARCHAR(255) NOT NULL,
		price BIGINT NOT NULL,
		quantity INT NOT NULL,
		image VARCHAR(512) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId)
	)`},
}

// EnsureSchema creates the ledger tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, tbl := range schema {
		if _, err := db.ExecContext(ctx, tbl.query); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.name, err)
		}
	}
	return nil
}

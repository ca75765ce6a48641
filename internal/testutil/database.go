package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"boutique/internal/infrastructure/mysql"
)

// SetupTestDB opens the test database. It expects MySQL on localhost:3306 with
// a database named boutique_test and skips the test when none is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/boutique_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the ledger tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}
	cleanTables(t, db)
	db.Close()
}

// SetupTestTables creates the ledger tables and removes rows left by an earlier run.
func SetupTestTables(t *testing.T, db *sql.DB) {
	if err := mysql.EnsureSchema(context.Background(), db); err != nil {
		t.Logf("failed to create tables: %v", err)
	}
	cleanTables(t, db)
}

func cleanTables(t *testing.T, db *sql.DB) {
	// children first, the foreign key points at Orders
	for _, table := range []string{"OrderItems", "Orders"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

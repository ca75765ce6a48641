package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"boutique/internal/domain"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Save inserts the order header and its lines in one transaction.
func (r *MySQLOrderRepository) Save(ctx context.Context, order domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO Orders (id, customerName, customerPhone, totalAmount, orderDate,
		                    status, customizationNotes, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, orderQuery,
		order.ID, order.CustomerName, order.CustomerPhone, order.TotalAmount, order.Date,
		string(order.Status), order.CustomizationNotes, order.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	itemQuery := `
		INSERT INTO OrderItems (orderId, lineNo, productId, name, category, variety, price, quantity, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, item := range order.Items {
		_, err = tx.ExecContext(ctx, itemQuery,
			order.ID, i, item.ID, item.Name, string(item.Category), item.Variety,
			item.Price, item.Quantity, item.Image,
		)
		if err != nil {
			return fmt.Errorf("inserting order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}
	return nil
}

// FindAll returns every order in insertion order with its lines attached.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	orderQuery := `
		SELECT id, customerName, customerPhone, totalAmount, orderDate,
		       status, customizationNotes, createdAt
		FROM Orders
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, orderQuery)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	index := make(map[string]int)
	for rows.Next() {
		var (
			o         domain.Order
			status    string
			createdAt time.Time
		)
		err := rows.Scan(
			&o.ID, &o.CustomerName, &o.CustomerPhone, &o.TotalAmount, &o.Date,
			&status, &o.CustomizationNotes, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		o.Status = domain.OrderStatus(status)
		o.CreatedAt = createdAt
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	if err := r.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *MySQLOrderRepository) attachItems(ctx context.Context, orders []domain.Order, index map[string]int) error {
	if len(orders) == 0 {
		return nil
	}

	itemQuery := `
		SELECT orderId, productId, name, category, variety, price, quantity, image
		FROM OrderItems
		ORDER BY orderId ASC, lineNo ASC
	`

	rows, err := r.db.QueryContext(ctx, itemQuery)
	if err != nil {
		return fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  string
			category string
			line     domain.CartLine
		)
		err := rows.Scan(
			&orderID, &line.ID, &line.Name, &category, &line.Variety,
			&line.Price, &line.Quantity, &line.Image,
		)
		if err != nil {
			return fmt.Errorf("scanning order item row: %w", err)
		}
		line.Category = domain.Category(category)

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, line)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating order item rows: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/techstore/internal/database"
	"github.com/safar/techstore/internal/models"
	"github.com/shopspring/decimal"
)

// PlaceOrder records one order for an existing product. The product lookup
// and the order insert run in a single serializable transaction so the
// unit price cannot change, and the product cannot disappear, between the
// two statements. Product stock is informational and is not decremented.
func PlaceOrder(ctx context.Context, db *sql.DB, customerName string, productID int64, quantity int) (*models.Order, error) {
	var order *models.Order

	err := database.WithRetry(ctx, db, database.TxOptions{
		IsolationLevel: sql.LevelSerializable,
		MaxRetries:     3,
	}, func(tx *sql.Tx) error {
		var unitPrice decimal.Decimal
		err := tx.QueryRowContext(ctx,
			`SELECT price FROM products WHERE id = $1`,
			productID).Scan(&unitPrice)
		if err != nil {
			if err == sql.ErrNoRows {
				return database.ErrProductNotFound
			}
			return fmt.Errorf("look up product %d: %w", productID, err)
		}

		totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

		order = &models.Order{
			CustomerName: customerName,
			ProductID:    productID,
			Quantity:     quantity,
			TotalPrice:   totalPrice,
		}
		err = tx.QueryRowContext(ctx,
			`INSERT INTO orders (customer_name, product_id, quantity, total_price)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, order_date`,
			customerName, productID, quantity, totalPrice).Scan(&order.ID, &order.OrderDate)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

func GetOrder(ctx context.Context, db *sql.DB, id int64) (*models.Order, error) {
	order := &models.Order{}

	query := `
		SELECT id, customer_name, product_id, quantity, total_price, order_date
		FROM orders
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.ProductID,
		&order.Quantity,
		&order.TotalPrice,
		&order.OrderDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

func CountOrders(ctx context.Context, db *sql.DB) (int64, error) {
	var count int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

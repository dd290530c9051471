package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Init creates the products and orders tables if they do not exist yet.
// Safe to run on every startup.
func Init(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL,
			price       NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			description TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT '',
			stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0)
		)`)
	if err != nil {
		return fmt.Errorf("create products table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id            BIGSERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			product_id    BIGINT NOT NULL REFERENCES products (id),
			quantity      INTEGER NOT NULL,
			total_price   NUMERIC(12,2) NOT NULL,
			order_date    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}

	return nil
}

type seedProduct struct {
	name        string
	price       string
	description string
	category    string
	stock       int
}

var seedProducts = []seedProduct{
	{"Premium Laptop", "1299.99", "High-performance laptop for professionals", "Electronics", 15},
	{"Wireless Headphones", "199.99", "Noise-cancelling bluetooth headphones", "Electronics", 25},
	{"Office Chair", "349.99", "Ergonomic office chair with lumbar support", "Furniture", 8},
	{"Gaming Monitor", "449.99", "27-inch 4K gaming monitor", "Electronics", 12},
	{"Desk Lamp", "89.99", "LED desk lamp with adjustable brightness", "Furniture", 20},
}

// Seed inserts the sample catalog, but only into an empty products table.
// Running it again against a seeded store is a no-op.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedProducts {
		_, err := db.ExecContext(ctx,
			`INSERT INTO products (name, price, description, category, stock)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.name, p.price, p.description, p.category, p.stock)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
	}

	return nil
}

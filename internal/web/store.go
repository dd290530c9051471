package web

import (
	"context"
	"database/sql"

	"github.com/safar/techstore/internal/models"
	"github.com/safar/techstore/internal/store"
)

// Store is the slice of the persistence layer the handlers need. Handlers
// depend on this interface rather than *sql.DB so tests can swap in a stub.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	PlaceOrder(ctx context.Context, customerName string, productID int64, quantity int) (*models.Order, error)
}

type SQLStore struct {
	DB *sql.DB
}

func (s *SQLStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return store.ListProducts(ctx, s.DB)
}

func (s *SQLStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return store.GetProduct(ctx, s.DB, id)
}

func (s *SQLStore) PlaceOrder(ctx context.Context, customerName string, productID int64, quantity int) (*models.Order, error) {
	return store.PlaceOrder(ctx, s.DB, customerName, productID, quantity)
}

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/safar/techstore/internal/database"
	"github.com/safar/techstore/internal/store"
	"github.com/shopspring/decimal"
)

func TestSchemaInitIsIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// setupTestDB already ran Init once.
	if err := store.Init(ctx, db); err != nil {
		t.Fatalf("Second Init: %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("First seed: %v", err)
	}
	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("Second seed: %v", err)
	}

	products, err := store.ListProducts(ctx, db)
	if err != nil {
		t.Fatalf("List products: %v", err)
	}

	if len(products) != 5 {
		t.Errorf("Expected exactly 5 products after double seed, got %d", len(products))
	}
}

func TestListProductsOrderAndContent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	products, err := store.ListProducts(ctx, db)
	if err != nil {
		t.Fatalf("List products: %v", err)
	}

	wantNames := []string{"Premium Laptop", "Wireless Headphones", "Office Chair", "Gaming Monitor", "Desk Lamp"}
	if len(products) != len(wantNames) {
		t.Fatalf("Expected %d products, got %d", len(wantNames), len(products))
	}
	for i, name := range wantNames {
		if products[i].Name != name {
			t.Errorf("Product %d: expected %q, got %q", i, name, products[i].Name)
		}
	}

	if !products[0].Price.Equal(decimal.RequireFromString("1299.99")) {
		t.Errorf("Expected laptop price 1299.99, got %s", products[0].Price)
	}
}

func TestGetProduct(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	product, err := store.GetProduct(ctx, db, 1)
	if err != nil {
		t.Fatalf("Get product: %v", err)
	}
	if product.Name != "Premium Laptop" {
		t.Errorf("Expected Premium Laptop, got %q", product.Name)
	}
	if product.Stock != 15 {
		t.Errorf("Expected stock 15, got %d", product.Stock)
	}

	_, err = store.GetProduct(ctx, db, 999999)
	if !errors.Is(err, database.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestPlaceOrderComputesTotal(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	order, err := store.PlaceOrder(ctx, db, "John Doe", 1, 2)
	if err != nil {
		t.Fatalf("Place order: %v", err)
	}

	want := decimal.RequireFromString("2599.98")
	if !order.TotalPrice.Equal(want) {
		t.Errorf("Expected total %s, got %s", want, order.TotalPrice)
	}
	if order.OrderDate.IsZero() {
		t.Error("Order date was not set")
	}

	stored, err := store.GetOrder(ctx, db, order.ID)
	if err != nil {
		t.Fatalf("Get order: %v", err)
	}
	if stored.CustomerName != "John Doe" {
		t.Errorf("Expected customer John Doe, got %q", stored.CustomerName)
	}
	if !stored.TotalPrice.Equal(want) {
		t.Errorf("Stored total: expected %s, got %s", want, stored.TotalPrice)
	}

	count, err := store.CountOrders(ctx, db)
	if err != nil {
		t.Fatalf("Count orders: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 order row, got %d", count)
	}
}

func TestPlaceOrderUnknownProductCreatesNoRow(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	_, err := store.PlaceOrder(ctx, db, "John Doe", 999999, 1)
	if !errors.Is(err, database.ErrProductNotFound) {
		t.Fatalf("Expected ErrProductNotFound, got %v", err)
	}

	count, err := store.CountOrders(ctx, db)
	if err != nil {
		t.Fatalf("Count orders: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no order rows, got %d", count)
	}
}

func TestPlaceOrderLeavesStockUntouched(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	before, err := store.GetProduct(ctx, db, 2)
	if err != nil {
		t.Fatalf("Get product: %v", err)
	}

	if _, err := store.PlaceOrder(ctx, db, "Jane Roe", 2, 3); err != nil {
		t.Fatalf("Place order: %v", err)
	}

	after, err := store.GetProduct(ctx, db, 2)
	if err != nil {
		t.Fatalf("Get product: %v", err)
	}
	if after.Stock != before.Stock {
		t.Errorf("Stock changed from %d to %d; it is informational only", before.Stock, after.Stock)
	}
}

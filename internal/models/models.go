package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock"`
}

type Order struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	ProductID    int64           `json:"product_id"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	OrderDate    time.Time       `json:"order_date"`
}

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Derived read-side rows. These are computed per request from the base
// entities and never persisted; they carry no identity beyond the response.

type OrderWithUser struct {
	OrderID     uint            `json:"order_id"`
	UserID      uint            `json:"user_id"`
	UserName    string          `json:"user_name"`
	UserEmail   string          `json:"user_email"`
	UserCity    *string         `json:"user_city"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
	ItemCount   int             `json:"item_count"`
}

type UserOrderSummary struct {
	UserID       uint            `json:"user_id"`
	UserName     string          `json:"user_name"`
	UserEmail    string          `json:"user_email"`
	TotalOrders  int             `json:"total_orders"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	AverageOrder decimal.Decimal `json:"average_order"`
	LastOrder    time.Time       `json:"last_order"`
}

type CategoryAnalytics struct {
	Category        *string         `json:"category"`
	TotalOrders     int             `json:"total_orders"`
	TotalQuantity   int             `json:"total_quantity"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AvgPrice        decimal.Decimal `json:"avg_price"`
	UniqueCustomers int             `json:"unique_customers"`
	AvgCustomerAge  float64         `json:"avg_customer_age"`
}

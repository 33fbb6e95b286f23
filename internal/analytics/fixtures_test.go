package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbench/storefront-api/internal/types"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(d int) time.Time {
	return time.Date(2026, 7, d, 12, 0, 0, 0, time.UTC)
}

// fixtureSnapshot is the shared dataset the view tests read:
//
//	U1 (age 25, Seattle)  O1 completed 100.00  I1 qty1 @100.00 P1 electronics
//	U2 (age 40)           O2 completed  50.00  I2 qty2 @20.00  P2 grocery
//	                                           I3 qty1 @10.00  P1 electronics
//	U2                    O3 pending    75.00  (no items)
//	U3 (no age, no city)  no orders
func fixtureSnapshot() *Snapshot {
	return &Snapshot{
		Users: []types.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com", Age: intPtr(25), City: strPtr("Seattle")},
			{ID: 2, Name: "Bob", Email: "bob@example.com", Age: intPtr(40)},
			{ID: 3, Name: "Carol", Email: "carol@example.com"},
		},
		Orders: []types.Order{
			{ID: 1, UserID: 1, TotalAmount: dec("100.00"), Status: "completed", OrderDate: day(1)},
			{ID: 2, UserID: 2, TotalAmount: dec("50.00"), Status: "completed", OrderDate: day(3)},
			{ID: 3, UserID: 2, TotalAmount: dec("75.00"), Status: "pending", OrderDate: day(10)},
		},
		OrderItems: []types.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 1, Price: dec("100.00")},
			{ID: 2, OrderID: 2, ProductID: 2, Quantity: 2, Price: dec("20.00")},
			{ID: 3, OrderID: 2, ProductID: 1, Quantity: 1, Price: dec("10.00")},
		},
		Products: []types.Product{
			{ID: 1, Name: "Headphones", Price: dec("100.00"), Category: strPtr("electronics"), Stock: 10},
			{ID: 2, Name: "Beans", Price: dec("20.00"), Category: strPtr("grocery"), Stock: 100},
		},
	}
}

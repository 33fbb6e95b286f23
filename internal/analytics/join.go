package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/shopbench/storefront-api/internal/types"
)

// orderUserRow is one output row of the Orders↔Users join. The user side is
// nil when the order's user_id does not resolve; the order itself is always
// retained (left-join semantics, source integrity is the storage layer's
// contract, not ours).
type orderUserRow struct {
	Order types.Order
	User  *types.User
}

func joinOrdersUsers(snap *Snapshot) []orderUserRow {
	usersByID := make(map[uint]*types.User, len(snap.Users))
	for i := range snap.Users {
		usersByID[snap.Users[i].ID] = &snap.Users[i]
	}

	rows := make([]orderUserRow, 0, len(snap.Orders))
	for _, order := range snap.Orders {
		rows = append(rows, orderUserRow{
			Order: order,
			User:  usersByID[order.UserID],
		})
	}
	return rows
}

// categoryRow is one output row of the four-way OrderItem↔Order↔User↔Product
// join. Items whose order or product is missing are dropped: categories are
// defined only through products, so those lines cannot contribute to any
// group. A missing user only blanks the age.
type categoryRow struct {
	Category *string
	OrderID  uint
	UserID   uint
	Quantity int
	Price    decimal.Decimal
	Age      *int
}

func joinCategoryRows(snap *Snapshot, statusFilter *string) []categoryRow {
	ordersByID := make(map[uint]*types.Order, len(snap.Orders))
	for i := range snap.Orders {
		ordersByID[snap.Orders[i].ID] = &snap.Orders[i]
	}
	usersByID := make(map[uint]*types.User, len(snap.Users))
	for i := range snap.Users {
		usersByID[snap.Users[i].ID] = &snap.Users[i]
	}
	productsByID := make(map[uint]*types.Product, len(snap.Products))
	for i := range snap.Products {
		productsByID[snap.Products[i].ID] = &snap.Products[i]
	}

	rows := make([]categoryRow, 0, len(snap.OrderItems))
	for _, item := range snap.OrderItems {
		order, ok := ordersByID[item.OrderID]
		if !ok {
			continue
		}
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}
		if statusFilter != nil && order.Status != *statusFilter {
			continue
		}
		row := categoryRow{
			Category: product.Category,
			OrderID:  order.ID,
			UserID:   order.UserID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if user, ok := usersByID[order.UserID]; ok {
			row.Age = user.Age
		}
		rows = append(rows, row)
	}
	return rows
}

package analytics

import (
	"context"
	"sort"

	"github.com/shopbench/storefront-api/internal/types"
)

// OrdersWithUsers emits one row per order, user fields joined in and the
// order's item count attached, ascending by order id.
func OrdersWithUsers(ctx context.Context, snap *Snapshot, limit, offset int) ([]types.OrderWithUser, error) {
	const op = "analytics.OrdersWithUsers"

	if err := ValidatePage(op, limit, offset); err != nil {
		return nil, err
	}
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	joined := joinOrdersUsers(snap)

	itemCounts := make(map[uint]int, len(snap.Orders))
	for _, item := range snap.OrderItems {
		itemCounts[item.OrderID]++
	}

	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows := make([]types.OrderWithUser, 0, len(joined))
	for _, jr := range joined {
		row := types.OrderWithUser{
			OrderID:     jr.Order.ID,
			UserID:      jr.Order.UserID,
			TotalAmount: jr.Order.TotalAmount,
			Status:      jr.Order.Status,
			OrderDate:   jr.Order.OrderDate,
			ItemCount:   itemCounts[jr.Order.ID],
		}
		if jr.User != nil {
			row.UserName = jr.User.Name
			row.UserEmail = jr.User.Email
			row.UserCity = jr.User.City
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OrderID < rows[j].OrderID
	})

	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	return window(rows, limit, offset), nil
}

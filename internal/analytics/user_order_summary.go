package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbench/storefront-api/internal/types"
)

// UserOrderSummaries emits one row per user, including users with no orders
// at all (those report zero totals and the epoch sentinel as last order).
// Ordering is descending by total amount; ties keep their input order, which
// matters because every zero-order user ties at 0.
func UserOrderSummaries(ctx context.Context, snap *Snapshot, limit, offset int) ([]types.UserOrderSummary, error) {
	const op = "analytics.UserOrderSummaries"

	if err := ValidatePage(op, limit, offset); err != nil {
		return nil, err
	}
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	ordersByUser := make(map[uint][]types.Order, len(snap.Users))
	for _, order := range snap.Orders {
		ordersByUser[order.UserID] = append(ordersByUser[order.UserID], order)
	}

	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows := make([]types.UserOrderSummary, 0, len(snap.Users))
	for _, user := range snap.Users {
		orders := ordersByUser[user.ID]

		amounts := make([]decimal.Decimal, 0, len(orders))
		dates := make([]time.Time, 0, len(orders))
		for _, order := range orders {
			amounts = append(amounts, order.TotalAmount)
			dates = append(dates, order.OrderDate)
		}

		total := sumDecimal(amounts)
		rows = append(rows, types.UserOrderSummary{
			UserID:       user.ID,
			UserName:     user.Name,
			UserEmail:    user.Email,
			TotalOrders:  len(orders),
			TotalAmount:  total,
			AverageOrder: avgDecimal(total, len(orders)),
			LastOrder:    maxTime(dates),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalAmount.GreaterThan(rows[j].TotalAmount)
	})

	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	return window(rows, limit, offset), nil
}

package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopbench/storefront-api/internal/types"
)

// catKey distinguishes the NULL category group from a category literally
// named "".
type catKey struct {
	Valid bool
	Name  string
}

type catAccum struct {
	category *string
	orderIDs []uint
	quantity int
	lines    []decimal.Decimal
	ages     []*int
}

// CategoryAnalytics groups the four-way join by product category (a nil
// category is its own group) and rolls each group up, descending by revenue.
// The full result set is returned; this view has no pagination.
//
// statusFilter restricts the join to orders in that status when non-nil.
//
// unique_customers is the distinct order count, matching the observed
// behavior of this view's reference outputs; the distinct-user reading is an
// unresolved ambiguity upstream and is deliberately not substituted here.
func CategoryAnalytics(ctx context.Context, snap *Snapshot, statusFilter *string) ([]types.CategoryAnalytics, error) {
	const op = "analytics.CategoryAnalytics"

	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	joined := joinCategoryRows(snap, statusFilter)

	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	groups := make(map[catKey]*catAccum)
	keyOrder := make([]catKey, 0)
	for _, row := range joined {
		key := catKey{}
		if row.Category != nil {
			key = catKey{Valid: true, Name: *row.Category}
		}
		acc, ok := groups[key]
		if !ok {
			acc = &catAccum{category: row.Category}
			groups[key] = acc
			keyOrder = append(keyOrder, key)
		}
		acc.orderIDs = append(acc.orderIDs, row.OrderID)
		acc.quantity += row.Quantity
		acc.lines = append(acc.lines, row.Price.Mul(decimal.NewFromInt(int64(row.Quantity))))
		acc.ages = append(acc.ages, row.Age)
	}

	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows := make([]types.CategoryAnalytics, 0, len(groups))
	for _, key := range keyOrder {
		acc := groups[key]
		distinctOrders := distinctCount(acc.orderIDs)
		revenue := sumDecimal(acc.lines)
		rows = append(rows, types.CategoryAnalytics{
			Category:        acc.category,
			TotalOrders:     distinctOrders,
			TotalQuantity:   acc.quantity,
			TotalRevenue:    revenue,
			AvgPrice:        avgDecimal(revenue, len(acc.lines)),
			UniqueCustomers: distinctOrders,
			AvgCustomerAge:  meanAge(acc.ages),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows, nil
}

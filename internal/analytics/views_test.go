package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopbench/storefront-api/internal/types"
)

func TestOrdersWithUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("rows_ascending_with_item_counts", func(t *testing.T) {
		rows, err := OrdersWithUsers(ctx, fixtureSnapshot(), 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("rows=%d, want 3", len(rows))
		}
		wantCounts := []int{1, 2, 0}
		for i, row := range rows {
			if row.OrderID != uint(i+1) {
				t.Fatalf("row %d order_id=%d, want %d", i, row.OrderID, i+1)
			}
			if row.ItemCount != wantCounts[i] {
				t.Fatalf("order %d item_count=%d, want %d", row.OrderID, row.ItemCount, wantCounts[i])
			}
		}
		if rows[0].UserName != "Alice" || rows[0].UserEmail != "alice@example.com" {
			t.Fatalf("order 1 user fields=%q/%q, want Alice", rows[0].UserName, rows[0].UserEmail)
		}
		if rows[0].UserCity == nil || *rows[0].UserCity != "Seattle" {
			t.Fatalf("order 1 user_city=%v, want Seattle", rows[0].UserCity)
		}
		if rows[1].UserCity != nil {
			t.Fatalf("order 2 user has no city, got %v", *rows[1].UserCity)
		}
	})

	t.Run("ascending_even_when_input_is_shuffled", func(t *testing.T) {
		snap := fixtureSnapshot()
		snap.Orders[0], snap.Orders[2] = snap.Orders[2], snap.Orders[0]

		rows, err := OrdersWithUsers(ctx, snap, 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(rows); i++ {
			if rows[i-1].OrderID > rows[i].OrderID {
				t.Fatalf("rows not ascending by order_id: %d before %d", rows[i-1].OrderID, rows[i].OrderID)
			}
		}
	})

	t.Run("window_concatenation", func(t *testing.T) {
		snap := fixtureSnapshot()
		snap.Orders = append(snap.Orders, types.Order{ID: 4, UserID: 3, TotalAmount: dec("9.99"), Status: "pending", OrderDate: day(20)})

		first, err := OrdersWithUsers(ctx, snap, 2, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := OrdersWithUsers(ctx, snap, 2, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		all, err := OrdersWithUsers(ctx, snap, 4, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		concat := append(append([]types.OrderWithUser{}, first...), second...)
		if len(concat) != len(all) {
			t.Fatalf("concat len=%d, all len=%d", len(concat), len(all))
		}
		for i := range all {
			if concat[i].OrderID != all[i].OrderID {
				t.Fatalf("window concat mismatch at %d: %d vs %d", i, concat[i].OrderID, all[i].OrderID)
			}
		}
	})

	t.Run("limit_zero_is_empty", func(t *testing.T) {
		rows, err := OrdersWithUsers(ctx, fixtureSnapshot(), 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("rows=%d, want 0", len(rows))
		}
	})

	t.Run("negative_limit_rejected_before_work", func(t *testing.T) {
		_, err := OrdersWithUsers(ctx, fixtureSnapshot(), -1, 0)
		if !IsCode(err, CodeInvalidPage) {
			t.Fatalf("code=%q, want %q", CodeOf(err), CodeInvalidPage)
		}
	})

	t.Run("cancelled_context_stops_pipeline", func(t *testing.T) {
		cctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := OrdersWithUsers(cctx, fixtureSnapshot(), 10, 0)
		if !IsCode(err, CodeCanceled) {
			t.Fatalf("code=%q, want %q", CodeOf(err), CodeCanceled)
		}
	})
}

func TestUserOrderSummaries(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates_and_descending_order", func(t *testing.T) {
		rows, err := UserOrderSummaries(ctx, fixtureSnapshot(), 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("rows=%d, want 3 (zero-order users included)", len(rows))
		}

		// Bob: 50 + 75 = 125 outranks Alice's 100; Carol trails at 0.
		if rows[0].UserName != "Bob" || rows[1].UserName != "Alice" || rows[2].UserName != "Carol" {
			t.Fatalf("order=%s,%s,%s; want Bob,Alice,Carol", rows[0].UserName, rows[1].UserName, rows[2].UserName)
		}

		bob := rows[0]
		if bob.TotalOrders != 2 {
			t.Fatalf("bob total_orders=%d, want 2", bob.TotalOrders)
		}
		if !bob.TotalAmount.Equal(dec("125.00")) {
			t.Fatalf("bob total_amount=%s, want 125.00", bob.TotalAmount)
		}
		if !bob.AverageOrder.Equal(dec("62.5")) {
			t.Fatalf("bob average_order=%s, want 62.5", bob.AverageOrder)
		}
		if !bob.LastOrder.Equal(day(10)) {
			t.Fatalf("bob last_order=%v, want %v", bob.LastOrder, day(10))
		}
	})

	t.Run("zero_order_user_gets_sentinels", func(t *testing.T) {
		rows, err := UserOrderSummaries(ctx, fixtureSnapshot(), 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		carol := rows[2]
		if carol.TotalOrders != 0 {
			t.Fatalf("carol total_orders=%d, want 0", carol.TotalOrders)
		}
		if !carol.TotalAmount.IsZero() || !carol.AverageOrder.IsZero() {
			t.Fatalf("carol amounts=%s/%s, want 0/0", carol.TotalAmount, carol.AverageOrder)
		}
		if !carol.LastOrder.Equal(time.Unix(0, 0).UTC()) {
			t.Fatalf("carol last_order=%v, want epoch sentinel", carol.LastOrder)
		}
	})

	t.Run("zero_amount_ties_keep_input_order", func(t *testing.T) {
		snap := &Snapshot{
			Users: []types.User{
				{ID: 10, Name: "First", Email: "first@example.com"},
				{ID: 20, Name: "Second", Email: "second@example.com"},
				{ID: 30, Name: "Third", Email: "third@example.com"},
			},
		}
		rows, err := UserOrderSummaries(ctx, snap, 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"First", "Second", "Third"}
		for i, name := range want {
			if rows[i].UserName != name {
				t.Fatalf("tie order broken at %d: got %s, want %s", i, rows[i].UserName, name)
			}
		}
	})

	t.Run("sorted_non_increasing_for_any_input", func(t *testing.T) {
		snap := fixtureSnapshot()
		snap.Users[0], snap.Users[2] = snap.Users[2], snap.Users[0]

		rows, err := UserOrderSummaries(ctx, snap, 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(rows); i++ {
			if rows[i-1].TotalAmount.LessThan(rows[i].TotalAmount) {
				t.Fatalf("not non-increasing: %s before %s", rows[i-1].TotalAmount, rows[i].TotalAmount)
			}
		}
	})

	t.Run("negative_offset_rejected", func(t *testing.T) {
		_, err := UserOrderSummaries(ctx, fixtureSnapshot(), 10, -1)
		if !IsCode(err, CodeInvalidPage) {
			t.Fatalf("code=%q, want %q", CodeOf(err), CodeInvalidPage)
		}
	})
}

func TestCategoryAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("single_line_scenario", func(t *testing.T) {
		snap := &Snapshot{
			Users: []types.User{
				{ID: 1, Name: "Alice", Email: "alice@example.com", Age: intPtr(25)},
			},
			Orders: []types.Order{
				{ID: 1, UserID: 1, TotalAmount: dec("100.00"), Status: "completed", OrderDate: day(1)},
			},
			OrderItems: []types.OrderItem{
				{ID: 1, OrderID: 1, ProductID: 1, Quantity: 1, Price: dec("100.00")},
			},
			Products: []types.Product{
				{ID: 1, Name: "Headphones", Price: dec("100.00"), Category: strPtr("electronics")},
			},
		}

		rows, err := CategoryAnalytics(ctx, snap, strPtr("completed"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("rows=%d, want 1", len(rows))
		}
		row := rows[0]
		if row.Category == nil || *row.Category != "electronics" {
			t.Fatalf("category=%v, want electronics", row.Category)
		}
		if row.TotalOrders != 1 || row.TotalQuantity != 1 || row.UniqueCustomers != 1 {
			t.Fatalf("counts=%d/%d/%d, want 1/1/1", row.TotalOrders, row.TotalQuantity, row.UniqueCustomers)
		}
		if !row.TotalRevenue.Equal(dec("100")) || !row.AvgPrice.Equal(dec("100")) {
			t.Fatalf("revenue/avg=%s/%s, want 100/100", row.TotalRevenue, row.AvgPrice)
		}
		if row.AvgCustomerAge != 25 {
			t.Fatalf("avg_customer_age=%v, want 25", row.AvgCustomerAge)
		}
	})

	t.Run("groups_and_descending_revenue", func(t *testing.T) {
		rows, err := CategoryAnalytics(ctx, fixtureSnapshot(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("rows=%d, want 2", len(rows))
		}

		electronics := rows[0]
		if electronics.Category == nil || *electronics.Category != "electronics" {
			t.Fatalf("top category=%v, want electronics (highest revenue)", electronics.Category)
		}
		// I1: 100x1, I3: 10x1 across orders 1 and 2.
		if !electronics.TotalRevenue.Equal(dec("110.00")) {
			t.Fatalf("electronics revenue=%s, want 110.00", electronics.TotalRevenue)
		}
		if electronics.TotalOrders != 2 || electronics.UniqueCustomers != 2 {
			t.Fatalf("electronics orders/customers=%d/%d, want 2/2", electronics.TotalOrders, electronics.UniqueCustomers)
		}
		if electronics.TotalQuantity != 2 {
			t.Fatalf("electronics quantity=%d, want 2", electronics.TotalQuantity)
		}
		// avg of line-extended prices (100, 10), not of unit prices.
		if !electronics.AvgPrice.Equal(dec("55")) {
			t.Fatalf("electronics avg_price=%s, want 55", electronics.AvgPrice)
		}
		if electronics.AvgCustomerAge != 32.5 {
			t.Fatalf("electronics avg_customer_age=%v, want 32.5", electronics.AvgCustomerAge)
		}

		grocery := rows[1]
		if !grocery.TotalRevenue.Equal(dec("40.00")) {
			t.Fatalf("grocery revenue=%s, want 40.00", grocery.TotalRevenue)
		}
		if grocery.TotalQuantity != 2 {
			t.Fatalf("grocery quantity=%d, want 2", grocery.TotalQuantity)
		}
	})

	t.Run("nil_category_is_its_own_group", func(t *testing.T) {
		snap := fixtureSnapshot()
		snap.Products = append(snap.Products, types.Product{ID: 3, Name: "Mystery", Price: dec("5.00")})
		snap.OrderItems = append(snap.OrderItems, types.OrderItem{ID: 4, OrderID: 1, ProductID: 3, Quantity: 1, Price: dec("5.00")})

		rows, err := CategoryAnalytics(ctx, snap, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("rows=%d, want 3 (nil category grouped separately)", len(rows))
		}
		found := false
		for _, row := range rows {
			if row.Category == nil {
				found = true
				if !row.TotalRevenue.Equal(dec("5.00")) {
					t.Fatalf("nil-category revenue=%s, want 5.00", row.TotalRevenue)
				}
			}
		}
		if !found {
			t.Fatalf("no nil-category group emitted")
		}
	})

	t.Run("recomputation_is_bit_identical", func(t *testing.T) {
		snap := fixtureSnapshot()
		first, err := CategoryAnalytics(ctx, snap, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := CategoryAnalytics(ctx, snap, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].TotalRevenue.String() != second[i].TotalRevenue.String() {
				t.Fatalf("revenue drift at %d: %s vs %s", i, first[i].TotalRevenue, second[i].TotalRevenue)
			}
			if first[i].AvgPrice.String() != second[i].AvgPrice.String() {
				t.Fatalf("avg_price drift at %d: %s vs %s", i, first[i].AvgPrice, second[i].AvgPrice)
			}
		}
	})
}

func TestViewsOnEmptyDataset(t *testing.T) {
	ctx := context.Background()
	snap := &Snapshot{}

	orders, err := OrdersWithUsers(ctx, snap, 10, 0)
	if err != nil {
		t.Fatalf("OrdersWithUsers: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("OrdersWithUsers rows=%d, want 0", len(orders))
	}

	summaries, err := UserOrderSummaries(ctx, snap, 10, 0)
	if err != nil {
		t.Fatalf("UserOrderSummaries: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("UserOrderSummaries rows=%d, want 0", len(summaries))
	}

	categories, err := CategoryAnalytics(ctx, snap, nil)
	if err != nil {
		t.Fatalf("CategoryAnalytics: %v", err)
	}
	if len(categories) != 0 {
		t.Fatalf("CategoryAnalytics rows=%d, want 0", len(categories))
	}
}

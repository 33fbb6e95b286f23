package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/analytics"
	"github.com/shopbench/storefront-api/internal/cache"
	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/repos"
	"github.com/shopbench/storefront-api/internal/types"
)

// Fakes embed the repo interface so only the entity-source methods need real
// implementations; anything else would panic, which is the point.

type fakeUserRepo struct {
	repos.UserRepo
	users []types.User
	calls int
}

func (f *fakeUserRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.User, error) {
	f.calls++
	return f.users, nil
}

type fakeOrderRepo struct {
	repos.OrderRepo
	orders []types.Order
}

func (f *fakeOrderRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.Order, error) {
	return f.orders, nil
}

type fakeOrderItemRepo struct {
	repos.OrderItemRepo
	items []types.OrderItem
}

func (f *fakeOrderItemRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.OrderItem, error) {
	return f.items, nil
}

type fakeProductRepo struct {
	repos.ProductRepo
	products []types.Product
}

func (f *fakeProductRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.Product, error) {
	return f.products, nil
}

type fakeCache struct {
	store map[string]string
	sets  int
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.store[key] = value
	f.sets++
	return nil
}

func (f *fakeCache) Key(operation, variant string) string {
	return "test:" + operation + ":" + variant
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

func strPtr(s string) *string { return &s }

func fixtureService(t *testing.T, viewCache *fakeCache, statusFilter *string) (AnalyticsService, *fakeUserRepo) {
	t.Helper()
	age := 25
	userRepo := &fakeUserRepo{users: []types.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Age: &age},
	}}
	orderRepo := &fakeOrderRepo{orders: []types.Order{
		{ID: 1, UserID: 1, TotalAmount: decimal.RequireFromString("100.00"), Status: "completed", OrderDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
	}}
	itemRepo := &fakeOrderItemRepo{items: []types.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 1, Quantity: 1, Price: decimal.RequireFromString("100.00")},
	}}
	productRepo := &fakeProductRepo{products: []types.Product{
		{ID: 1, Name: "Headphones", Price: decimal.RequireFromString("100.00"), Category: strPtr("electronics")},
	}}

	var c cache.Cache
	if viewCache != nil {
		c = viewCache
	}

	svc := NewAnalyticsService(nil, testLogger(t), userRepo, orderRepo, itemRepo, productRepo, c, AnalyticsConfig{
		StatusFilter: statusFilter,
		CacheTTL:     time.Minute,
	})
	return svc, userRepo
}

func TestAnalyticsServiceInvalidPageShortCircuits(t *testing.T) {
	svc, userRepo := fixtureService(t, nil, nil)

	_, err := svc.ListOrdersWithUsers(context.Background(), -1, 0)
	if !analytics.IsCode(err, analytics.CodeInvalidPage) {
		t.Fatalf("code=%q, want %q", analytics.CodeOf(err), analytics.CodeInvalidPage)
	}
	if userRepo.calls != 0 {
		t.Fatalf("storage touched %d times before validation", userRepo.calls)
	}
}

func TestAnalyticsServiceViews(t *testing.T) {
	svc, _ := fixtureService(t, nil, strPtr("completed"))
	ctx := context.Background()

	orders, err := svc.ListOrdersWithUsers(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListOrdersWithUsers: %v", err)
	}
	if len(orders) != 1 || orders[0].ItemCount != 1 {
		t.Fatalf("orders=%+v, want one row with item_count 1", orders)
	}

	summaries, err := svc.ListUserOrderSummaries(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListUserOrderSummaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].TotalOrders != 1 {
		t.Fatalf("summaries=%+v, want one row with total_orders 1", summaries)
	}

	categories, err := svc.GetCategoryAnalytics(ctx)
	if err != nil {
		t.Fatalf("GetCategoryAnalytics: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("categories=%d rows, want 1", len(categories))
	}
	if !categories[0].TotalRevenue.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("revenue=%s, want 100", categories[0].TotalRevenue)
	}
}

func TestAnalyticsServiceCategoryCache(t *testing.T) {
	viewCache := &fakeCache{store: map[string]string{}}
	svc, _ := fixtureService(t, viewCache, strPtr("completed"))
	ctx := context.Background()

	first, err := svc.GetCategoryAnalytics(ctx)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if viewCache.sets != 1 {
		t.Fatalf("cache sets=%d, want 1", viewCache.sets)
	}

	// Second call must come from the cache, not a recompute.
	second, err := svc.GetCategoryAnalytics(ctx)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if viewCache.sets != 1 {
		t.Fatalf("cache sets=%d after second call, want still 1", viewCache.sets)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("cached result differs from computed:\n%s\n%s", a, b)
	}
}

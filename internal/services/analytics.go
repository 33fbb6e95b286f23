package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/analytics"
	"github.com/shopbench/storefront-api/internal/cache"
	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/repos"
	"github.com/shopbench/storefront-api/internal/types"
)

type AnalyticsService interface {
	ListOrdersWithUsers(ctx context.Context, limit, offset int) ([]types.OrderWithUser, error)
	ListUserOrderSummaries(ctx context.Context, limit, offset int) ([]types.UserOrderSummary, error)
	GetCategoryAnalytics(ctx context.Context) ([]types.CategoryAnalytics, error)
}

// AnalyticsConfig carries the divergent business rules made explicit.
// StatusFilter restricts the category view to orders in that status; nil
// aggregates over every status.
type AnalyticsConfig struct {
	StatusFilter *string
	CacheTTL     time.Duration
}

type analyticsService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	orderRepo     repos.OrderRepo
	orderItemRepo repos.OrderItemRepo
	productRepo   repos.ProductRepo
	viewCache     cache.Cache
	cfg           AnalyticsConfig
}

func NewAnalyticsService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	orderRepo repos.OrderRepo,
	orderItemRepo repos.OrderItemRepo,
	productRepo repos.ProductRepo,
	viewCache cache.Cache,
	cfg AnalyticsConfig,
) AnalyticsService {
	serviceLog := log.With("service", "AnalyticsService")
	return &analyticsService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		viewCache:     viewCache,
		cfg:           cfg,
	}
}

// repoSource adapts the entity repos to the analytics read contract. Each
// view call loads one snapshot through it and computes everything in memory.
type repoSource struct {
	userRepo      repos.UserRepo
	orderRepo     repos.OrderRepo
	orderItemRepo repos.OrderItemRepo
	productRepo   repos.ProductRepo
}

func (s repoSource) FetchUsers(ctx context.Context) ([]types.User, error) {
	return s.userRepo.FetchAll(ctx, nil)
}

func (s repoSource) FetchOrders(ctx context.Context) ([]types.Order, error) {
	return s.orderRepo.FetchAll(ctx, nil)
}

func (s repoSource) FetchOrderItems(ctx context.Context) ([]types.OrderItem, error) {
	return s.orderItemRepo.FetchAll(ctx, nil)
}

func (s repoSource) FetchProducts(ctx context.Context) ([]types.Product, error) {
	return s.productRepo.FetchAll(ctx, nil)
}

func (as *analyticsService) source() analytics.Source {
	return repoSource{
		userRepo:      as.userRepo,
		orderRepo:     as.orderRepo,
		orderItemRepo: as.orderItemRepo,
		productRepo:   as.productRepo,
	}
}

func (as *analyticsService) ListOrdersWithUsers(ctx context.Context, limit, offset int) ([]types.OrderWithUser, error) {
	if err := analytics.ValidatePage("AnalyticsService.ListOrdersWithUsers", limit, offset); err != nil {
		return nil, err
	}
	snap, err := analytics.LoadSnapshot(ctx, as.source())
	if err != nil {
		return nil, err
	}
	return analytics.OrdersWithUsers(ctx, snap, limit, offset)
}

func (as *analyticsService) ListUserOrderSummaries(ctx context.Context, limit, offset int) ([]types.UserOrderSummary, error) {
	if err := analytics.ValidatePage("AnalyticsService.ListUserOrderSummaries", limit, offset); err != nil {
		return nil, err
	}
	snap, err := analytics.LoadSnapshot(ctx, as.source())
	if err != nil {
		return nil, err
	}
	return analytics.UserOrderSummaries(ctx, snap, limit, offset)
}

func (as *analyticsService) GetCategoryAnalytics(ctx context.Context) ([]types.CategoryAnalytics, error) {
	cacheKey := ""
	if as.viewCache != nil {
		variant := "all"
		if as.cfg.StatusFilter != nil {
			variant = *as.cfg.StatusFilter
		}
		cacheKey = as.viewCache.Key("category_analytics", variant)
		if cached, err := as.viewCache.Get(ctx, cacheKey); err != nil {
			as.log.Warn("View cache read failed, computing", "error", err)
		} else if cached != "" {
			var rows []types.CategoryAnalytics
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				return rows, nil
			}
			as.log.Warn("View cache entry unreadable, computing", "key", cacheKey)
		}
	}

	snap, err := analytics.LoadSnapshot(ctx, as.source())
	if err != nil {
		return nil, err
	}
	rows, err := analytics.CategoryAnalytics(ctx, snap, as.cfg.StatusFilter)
	if err != nil {
		return nil, err
	}

	if as.viewCache != nil {
		if payload, err := json.Marshal(rows); err == nil {
			if err := as.viewCache.Set(ctx, cacheKey, string(payload), as.cfg.CacheTTL); err != nil {
				as.log.Warn("View cache write failed", "error", err)
			}
		}
	}
	return rows, nil
}

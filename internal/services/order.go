package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/repos"
	"github.com/shopbench/storefront-api/internal/types"
)

// CreateOrderInput is the write-side shape: an order plus optional line
// items, persisted in one transaction.
type CreateOrderInput struct {
	UserID      uint
	TotalAmount decimal.Decimal
	Status      string
	Items       []CreateOrderItemInput
}

type CreateOrderItemInput struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*types.Order, error)
	GetByID(ctx context.Context, orderID uint) (*types.Order, error)
	GetItems(ctx context.Context, orderID uint) ([]types.OrderItem, error)
	List(ctx context.Context, status string, limit, offset int) ([]types.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) (*types.Order, error)
	Delete(ctx context.Context, orderID uint) error
}

type orderService struct {
	db            *gorm.DB
	log           *logger.Logger
	orderRepo     repos.OrderRepo
	orderItemRepo repos.OrderItemRepo
	userRepo      repos.UserRepo
	productRepo   repos.ProductRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, orderRepo repos.OrderRepo, orderItemRepo repos.OrderItemRepo, userRepo repos.UserRepo, productRepo repos.ProductRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:            db,
		log:           serviceLog,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		userRepo:      userRepo,
		productRepo:   productRepo,
	}
}

func (os *orderService) Create(ctx context.Context, input CreateOrderInput) (*types.Order, error) {
	if input.UserID == 0 {
		return nil, fmt.Errorf("a user_id is required")
	}
	if _, err := os.userRepo.GetByID(ctx, nil, input.UserID); err != nil {
		return nil, fmt.Errorf("order user %d: %w", input.UserID, err)
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("item quantity must be >= 1")
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("item price must not be negative")
		}
		if _, err := os.productRepo.GetByID(ctx, nil, item.ProductID); err != nil {
			return nil, fmt.Errorf("item product %d: %w", item.ProductID, err)
		}
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	// When items are supplied the order total is derived from them; a bare
	// order keeps the amount the caller sent.
	total := input.TotalAmount
	if len(input.Items) > 0 {
		total = decimal.Zero
		for _, item := range input.Items {
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("total_amount must not be negative")
	}

	var created *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := &types.Order{
			UserID:      input.UserID,
			TotalAmount: total,
			Status:      status,
			OrderDate:   time.Now().UTC(),
		}
		order, err := os.orderRepo.Create(ctx, tx, order)
		if err != nil {
			return err
		}
		items := make([]*types.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, &types.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}
		if _, err := os.orderItemRepo.CreateBatch(ctx, tx, items); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (os *orderService) GetByID(ctx context.Context, orderID uint) (*types.Order, error) {
	return os.orderRepo.GetByID(ctx, nil, orderID)
}

func (os *orderService) GetItems(ctx context.Context, orderID uint) ([]types.OrderItem, error) {
	if _, err := os.orderRepo.GetByID(ctx, nil, orderID); err != nil {
		return nil, err
	}
	return os.orderItemRepo.ListByOrder(ctx, nil, orderID)
}

func (os *orderService) List(ctx context.Context, status string, limit, offset int) ([]types.Order, error) {
	return os.orderRepo.List(ctx, nil, status, limit, offset)
}

func (os *orderService) UpdateStatus(ctx context.Context, orderID uint, status string) (*types.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("a status is required")
	}
	return os.orderRepo.UpdateStatus(ctx, nil, orderID, status)
}

func (os *orderService) Delete(ctx context.Context, orderID uint) error {
	return os.orderRepo.Delete(ctx, nil, orderID)
}

package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/types"
)

type OrderItemRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, items []*types.OrderItem) ([]*types.OrderItem, error)
	ListByOrder(ctx context.Context, tx *gorm.DB, orderID uint) ([]types.OrderItem, error)
	FetchAll(ctx context.Context, tx *gorm.DB) ([]types.OrderItem, error)
}

type orderItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderItemRepo(db *gorm.DB, baseLog *logger.Logger) OrderItemRepo {
	repoLog := baseLog.With("repo", "OrderItemRepo")
	return &orderItemRepo{db: db, log: repoLog}
}

func (oir *orderItemRepo) CreateBatch(ctx context.Context, tx *gorm.DB, items []*types.OrderItem) ([]*types.OrderItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = oir.db
	}

	if len(items) == 0 {
		return []*types.OrderItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (oir *orderItemRepo) ListByOrder(ctx context.Context, tx *gorm.DB, orderID uint) ([]types.OrderItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = oir.db
	}

	var results []types.OrderItem
	if err := transaction.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (oir *orderItemRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.OrderItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = oir.db
	}

	var results []types.OrderItem
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

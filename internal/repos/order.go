package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error)
	GetByID(ctx context.Context, tx *gorm.DB, orderID uint) (*types.Order, error)
	List(ctx context.Context, tx *gorm.DB, status string, limit, offset int) ([]types.Order, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uint, status string) (*types.Order, error)
	Delete(ctx context.Context, tx *gorm.DB, orderID uint) error
	FetchAll(ctx context.Context, tx *gorm.DB) ([]types.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if err := transaction.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (or *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, orderID uint) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var result types.Order
	if err := transaction.WithContext(ctx).
		First(&result, orderID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (or *orderRepo) List(ctx context.Context, tx *gorm.DB, status string, limit, offset int) ([]types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	query := transaction.WithContext(ctx).Order("id").Limit(limit).Offset(offset)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var results []types.Order
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uint, status string) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return or.GetByID(ctx, transaction, orderID)
}

func (or *orderRepo) Delete(ctx context.Context, tx *gorm.DB, orderID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	result := transaction.WithContext(ctx).Delete(&types.Order{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (or *orderRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []types.Order
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

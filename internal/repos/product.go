package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/types"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, productID uint) (*types.Product, error)
	List(ctx context.Context, tx *gorm.DB, category string, limit, offset int) ([]types.Product, error)
	Update(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error)
	Delete(ctx context.Context, tx *gorm.DB, productID uint) error
	FetchAll(ctx context.Context, tx *gorm.DB) ([]types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if err := transaction.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (pr *productRepo) GetByID(ctx context.Context, tx *gorm.DB, productID uint) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Product
	if err := transaction.WithContext(ctx).
		First(&result, productID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *productRepo) List(ctx context.Context, tx *gorm.DB, category string, limit, offset int) ([]types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	query := transaction.WithContext(ctx).Order("id").Limit(limit).Offset(offset)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var results []types.Product
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"price":       product.Price,
			"category":    product.Category,
			"stock":       product.Stock,
			"description": product.Description,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return pr.GetByID(ctx, transaction, product.ID)
}

func (pr *productRepo) Delete(ctx context.Context, tx *gorm.DB, productID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	result := transaction.WithContext(ctx).Delete(&types.Product{}, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (pr *productRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []types.Product
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/repos"
	"github.com/shopbench/storefront-api/internal/types"
)

type ProductService interface {
	Create(ctx context.Context, product *types.Product) (*types.Product, error)
	GetByID(ctx context.Context, productID uint) (*types.Product, error)
	List(ctx context.Context, category string, limit, offset int) ([]types.Product, error)
	Update(ctx context.Context, product *types.Product) (*types.Product, error)
	Delete(ctx context.Context, productID uint) error
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func validateProduct(product *types.Product) error {
	if product == nil {
		return fmt.Errorf("no product given")
	}
	if product.Name == "" {
		return fmt.Errorf("a name is required")
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if product.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}

func (ps *productService) Create(ctx context.Context, product *types.Product) (*types.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return ps.productRepo.Create(ctx, nil, product)
}

func (ps *productService) GetByID(ctx context.Context, productID uint) (*types.Product, error) {
	return ps.productRepo.GetByID(ctx, nil, productID)
}

func (ps *productService) List(ctx context.Context, category string, limit, offset int) ([]types.Product, error) {
	return ps.productRepo.List(ctx, nil, category, limit, offset)
}

func (ps *productService) Update(ctx context.Context, product *types.Product) (*types.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return ps.productRepo.Update(ctx, nil, product)
}

func (ps *productService) Delete(ctx context.Context, productID uint) error {
	return ps.productRepo.Delete(ctx, nil, productID)
}

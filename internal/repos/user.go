package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/types"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]types.User, error)
	Update(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
	Delete(ctx context.Context, tx *gorm.DB, userID uint) error
	EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error)
	FetchAll(ctx context.Context, tx *gorm.DB) ([]types.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var result types.User
	if err := transaction.WithContext(ctx).
		First(&result, userID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []types.User
	if err := transaction.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":  user.Name,
			"email": user.Email,
			"age":   user.Age,
			"city":  user.City,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return ur.GetByID(ctx, transaction, user.ID)
}

func (ur *userRepo) Delete(ctx context.Context, tx *gorm.DB, userID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	result := transaction.WithContext(ctx).Delete(&types.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("email = ?", userEmail).
		Count(&count).Error; err != nil {
		return false, err
	}
	exists := count > 0
	return exists, nil
}

func (ur *userRepo) FetchAll(ctx context.Context, tx *gorm.DB) ([]types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []types.User
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

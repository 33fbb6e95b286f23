package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/repos"
	"github.com/shopbench/storefront-api/internal/types"
)

type UserService interface {
	Create(ctx context.Context, user *types.User) (*types.User, error)
	GetByID(ctx context.Context, userID uint) (*types.User, error)
	List(ctx context.Context, limit, offset int) ([]types.User, error)
	Update(ctx context.Context, user *types.User) (*types.User, error)
	Delete(ctx context.Context, userID uint) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) Create(ctx context.Context, user *types.User) (*types.User, error) {
	if user == nil {
		return nil, fmt.Errorf("no user given")
	}
	if user.Name == "" {
		return nil, fmt.Errorf("a name is required")
	}
	if user.Email == "" {
		return nil, fmt.Errorf("an email is required")
	}
	emailExists, err := us.userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return nil, err
	}
	if emailExists {
		return nil, fmt.Errorf("email is already in use")
	}
	return us.userRepo.Create(ctx, nil, user)
}

func (us *userService) GetByID(ctx context.Context, userID uint) (*types.User, error) {
	return us.userRepo.GetByID(ctx, nil, userID)
}

func (us *userService) List(ctx context.Context, limit, offset int) ([]types.User, error) {
	return us.userRepo.List(ctx, nil, limit, offset)
}

func (us *userService) Update(ctx context.Context, user *types.User) (*types.User, error) {
	if user == nil {
		return nil, fmt.Errorf("no user given")
	}
	if user.Name == "" {
		return nil, fmt.Errorf("a name is required")
	}
	if user.Email == "" {
		return nil, fmt.Errorf("an email is required")
	}
	return us.userRepo.Update(ctx, nil, user)
}

func (us *userService) Delete(ctx context.Context, userID uint) error {
	return us.userRepo.Delete(ctx, nil, userID)
}

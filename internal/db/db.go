package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/types"
	"github.com/shopbench/storefront-api/internal/utils"
)

type Service struct {
	db     *gorm.DB
	driver string
	log    *logger.Logger
}

// NewService opens the store configured through the environment.
// DB_DRIVER=sqlite is used by local runs and tests; postgres is the default.
func NewService(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	driver := utils.GetEnv("DB_DRIVER", "postgres", log)

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		sqlitePath := utils.GetEnv("SQLITE_PATH", "file::memory:?cache=shared", log)
		dialector = sqlite.Open(sqlitePath)
	case "postgres":
		postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
		postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
		postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		postgresName := utils.GetEnv("POSTGRES_NAME", "storefront", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	log.Info("Connecting to database...", "driver", driver)
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Service{db: db, driver: driver, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Product{},
		&types.Order{},
		&types.OrderItem{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if s.driver != "postgres" {
		return nil
	}
	s.log.Info("Configuring foreign key relationships...")
	constraints := []struct {
		model interface{}
		name  string
		stmt  string
	}{
		{
			model: &types.Order{},
			name:  "fk_orders_user_id",
			stmt: `ALTER TABLE "orders"
			       ADD CONSTRAINT "fk_orders_user_id"
			       FOREIGN KEY ("user_id") REFERENCES "users"("id")
			       ON DELETE CASCADE`,
		},
		{
			model: &types.OrderItem{},
			name:  "fk_order_items_order_id",
			stmt: `ALTER TABLE "order_items"
			       ADD CONSTRAINT "fk_order_items_order_id"
			       FOREIGN KEY ("order_id") REFERENCES "orders"("id")
			       ON DELETE CASCADE`,
		},
		{
			model: &types.OrderItem{},
			name:  "fk_order_items_product_id",
			stmt: `ALTER TABLE "order_items"
			       ADD CONSTRAINT "fk_order_items_product_id"
			       FOREIGN KEY ("product_id") REFERENCES "products"("id")
			       ON DELETE CASCADE`,
		},
	}
	for _, c := range constraints {
		if s.db.Migrator().HasConstraint(c.model, c.name) {
			continue
		}
		if err := s.db.Exec(c.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/shopbench/storefront-api/internal/db"
	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/types"
	"github.com/shopbench/storefront-api/internal/utils"
)

// Seeds the store from a YAML fixture so every stack under benchmark starts
// from the same dataset. Money is carried as strings in the fixture and
// parsed to decimals here; nothing passes through floats.

type fixture struct {
	Users []struct {
		Name  string  `yaml:"name"`
		Email string  `yaml:"email"`
		Age   *int    `yaml:"age"`
		City  *string `yaml:"city"`
	} `yaml:"users"`
	Products []struct {
		Name        string  `yaml:"name"`
		Price       string  `yaml:"price"`
		Category    *string `yaml:"category"`
		Stock       int     `yaml:"stock"`
		Description string  `yaml:"description"`
	} `yaml:"products"`
	Orders []struct {
		UserIndex int    `yaml:"user_index"`
		Status    string `yaml:"status"`
		OrderDate string `yaml:"order_date"`
		Items     []struct {
			ProductIndex int    `yaml:"product_index"`
			Quantity     int    `yaml:"quantity"`
			Price        string `yaml:"price"`
		} `yaml:"items"`
	} `yaml:"orders"`
}

func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	seedPath := utils.GetEnv("SEED_FILE", "cmd/seed/seed.yaml", log)
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		log.Fatal("Failed to read seed file", "path", seedPath, "error", err)
	}
	var fix fixture
	if err := yaml.Unmarshal(raw, &fix); err != nil {
		log.Fatal("Failed to parse seed file", "path", seedPath, "error", err)
	}

	dbService, err := db.NewService(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Auto migration failed", "error", err)
	}
	theDB := dbService.DB()

	users := make([]*types.User, 0, len(fix.Users))
	for _, u := range fix.Users {
		users = append(users, &types.User{
			Name:  u.Name,
			Email: u.Email,
			Age:   u.Age,
			City:  u.City,
		})
	}
	if len(users) > 0 {
		if err := theDB.Create(&users).Error; err != nil {
			log.Fatal("Failed to seed users", "error", err)
		}
	}

	products := make([]*types.Product, 0, len(fix.Products))
	for _, p := range fix.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			log.Fatal("Bad product price in fixture", "product", p.Name, "price", p.Price, "error", err)
		}
		products = append(products, &types.Product{
			Name:        p.Name,
			Price:       price,
			Category:    p.Category,
			Stock:       p.Stock,
			Description: p.Description,
		})
	}
	if len(products) > 0 {
		if err := theDB.Create(&products).Error; err != nil {
			log.Fatal("Failed to seed products", "error", err)
		}
	}

	orderCount := 0
	itemCount := 0
	for _, o := range fix.Orders {
		if o.UserIndex < 0 || o.UserIndex >= len(users) {
			log.Fatal("Order references unknown user_index", "user_index", o.UserIndex)
		}
		orderDate := time.Now().UTC()
		if o.OrderDate != "" {
			orderDate, err = time.Parse(time.RFC3339, o.OrderDate)
			if err != nil {
				log.Fatal("Bad order_date in fixture", "order_date", o.OrderDate, "error", err)
			}
		}

		total := decimal.Zero
		items := make([]*types.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			if it.ProductIndex < 0 || it.ProductIndex >= len(products) {
				log.Fatal("Item references unknown product_index", "product_index", it.ProductIndex)
			}
			price, err := decimal.NewFromString(it.Price)
			if err != nil {
				log.Fatal("Bad item price in fixture", "price", it.Price, "error", err)
			}
			items = append(items, &types.OrderItem{
				ProductID: products[it.ProductIndex].ID,
				Quantity:  it.Quantity,
				Price:     price,
			})
			total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		order := &types.Order{
			UserID:      users[o.UserIndex].ID,
			TotalAmount: total,
			Status:      o.Status,
			OrderDate:   orderDate,
		}
		if err := theDB.Create(order).Error; err != nil {
			log.Fatal("Failed to seed order", "error", err)
		}
		for _, item := range items {
			item.OrderID = order.ID
		}
		if len(items) > 0 {
			if err := theDB.Create(&items).Error; err != nil {
				log.Fatal("Failed to seed order items", "error", err)
			}
		}
		orderCount++
		itemCount += len(items)
	}

	log.Info("Seed complete",
		"users", len(users),
		"products", len(products),
		"orders", orderCount,
		"order_items", itemCount,
	)
}
